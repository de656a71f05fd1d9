package config

import "github.com/letterbox/tui-go/internal/board"

// AvailableAlphabets returns all alphabet variants a board can be dealt from
func AvailableAlphabets() []AlphabetInfo {
	return []AlphabetInfo{
		{
			ID:          board.AlphabetLatin,
			Name:        "Latin",
			Description: "All 26 letters",
		},
		{
			ID:          board.AlphabetNoQ,
			Name:        "No Q",
			Description: "25 letters, q left out",
		},
		{
			ID:          board.AlphabetQu,
			Name:        "Qu",
			Description: "26 tiles, q always dealt as qu",
		},
	}
}

// AlphabetInfo describes an alphabet option
type AlphabetInfo struct {
	ID          string
	Name        string
	Description string
}

// alphabetKnown reports whether id names an available alphabet
func alphabetKnown(id string) bool {
	for _, a := range AvailableAlphabets() {
		if a.ID == id {
			return true
		}
	}
	return false
}
