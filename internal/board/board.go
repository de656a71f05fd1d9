// Package board deals the letter grid.
package board

import (
	"errors"
	"math/rand/v2"
)

var (
	ErrNoRenderer    = errors.New("board: no render target")
	ErrInvalidSize   = errors.New("board: grid size must be at least 1")
	ErrEmptyAlphabet = errors.New("board: alphabet has no symbols")
)

// Renderer displays a full tile set, replacing whatever it showed before
type Renderer interface {
	Render(tiles []string)
}

// Board holds the current tiles of a size×size grid
type Board struct {
	size     int
	alphabet Alphabet
	rng      *rand.Rand
	tiles    []string
	target   Renderer
}

// Option configures a Board
type Option func(*Board)

// WithRand sets the random source for tile draws
func WithRand(rng *rand.Rand) Option {
	return func(b *Board) {
		if rng != nil {
			b.rng = rng
		}
	}
}

// New creates an empty board. Call Regenerate to deal tiles.
func New(size int, alphabet Alphabet, target Renderer, opts ...Option) (*Board, error) {
	if target == nil {
		return nil, ErrNoRenderer
	}
	if size < 1 {
		return nil, ErrInvalidSize
	}
	if alphabet.Len() == 0 {
		return nil, ErrEmptyAlphabet
	}

	b := &Board{
		size:     size,
		alphabet: alphabet,
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		target:   target,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

// Size returns the grid's side length
func (b *Board) Size() int {
	return b.size
}

// TileCount returns size²
func (b *Board) TileCount() int {
	return b.size * b.size
}

// Alphabet returns the alphabet tiles are drawn from
func (b *Board) Alphabet() Alphabet {
	return b.alphabet
}

// Tiles returns a copy of the current tiles
func (b *Board) Tiles() []string {
	return append([]string(nil), b.tiles...)
}

// Regenerate draws a fresh tile for every cell and renders the new set.
// Draws are independent, so repeated letters are expected.
func (b *Board) Regenerate() {
	tiles := make([]string, b.TileCount())
	for i := range tiles {
		tiles[i] = b.alphabet.Symbols[b.rng.IntN(b.alphabet.Len())]
	}
	b.tiles = tiles
	b.target.Render(b.Tiles())
}
