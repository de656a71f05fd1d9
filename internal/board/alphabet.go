package board

import "fmt"

// Alphabet is the fixed set of symbols tiles are drawn from
type Alphabet struct {
	Name    string
	Symbols []string
}

// Len returns the number of symbols
func (a Alphabet) Len() int {
	return len(a.Symbols)
}

// Contains reports whether symbol belongs to the alphabet
func (a Alphabet) Contains(symbol string) bool {
	for _, s := range a.Symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// Alphabet names accepted by AlphabetByName
const (
	AlphabetLatin = "latin"
	AlphabetNoQ   = "no-q"
	AlphabetQu    = "qu"
)

// Latin is a–z
func Latin() Alphabet {
	return Alphabet{Name: AlphabetLatin, Symbols: letters(nil)}
}

// NoQ is a–z without q
func NoQ() Alphabet {
	return Alphabet{Name: AlphabetNoQ, Symbols: letters(func(r rune) (string, bool) {
		return "", r != 'q'
	})}
}

// Qu is a–z with q merged into a single "qu" tile
func Qu() Alphabet {
	return Alphabet{Name: AlphabetQu, Symbols: letters(func(r rune) (string, bool) {
		if r == 'q' {
			return "qu", true
		}
		return "", true
	})}
}

// AlphabetByName returns the named alphabet
func AlphabetByName(name string) (Alphabet, error) {
	switch name {
	case AlphabetLatin:
		return Latin(), nil
	case AlphabetNoQ:
		return NoQ(), nil
	case AlphabetQu:
		return Qu(), nil
	default:
		return Alphabet{}, fmt.Errorf("unknown alphabet %q", name)
	}
}

// letters builds a–z, letting mapFn replace (non-empty string) or drop (false) a letter
func letters(mapFn func(r rune) (string, bool)) []string {
	out := make([]string, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		s := string(r)
		if mapFn != nil {
			replaced, keep := mapFn(r)
			if !keep {
				continue
			}
			if replaced != "" {
				s = replaced
			}
		}
		out = append(out, s)
	}
	return out
}
