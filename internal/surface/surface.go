// Package surface holds the render targets the game writes into.
//
// A surface is looked up by a stable key, the way a page element is looked up
// by id. The TUI reads the surfaces back when it draws a frame.
package surface

import (
	"errors"
	"fmt"
	"sort"
)

// Key identifies a surface on the page
type Key string

const (
	KeyTime   Key = "time"
	KeyBoard  Key = "board"
	KeyStatus Key = "status"
)

// ErrMissing is returned when a surface is not registered under a key
// or is registered with a different kind
var ErrMissing = errors.New("surface not found")

// Text is a single-line text display
type Text struct {
	text string
}

// SetText replaces the displayed text
func (t *Text) SetText(text string) {
	t.text = text
}

// String returns the displayed text
func (t *Text) String() string {
	return t.text
}

// Grid is a container of tiles laid out in rows
type Grid struct {
	tiles   []string
	renders int
}

// Render clears the grid and fills it with tiles
func (g *Grid) Render(tiles []string) {
	g.tiles = append(g.tiles[:0:0], tiles...)
	g.renders++
}

// Tiles returns a copy of the current tiles
func (g *Grid) Tiles() []string {
	return append([]string(nil), g.tiles...)
}

// Renders returns how many times the grid has been repopulated
func (g *Grid) Renders() int {
	return g.renders
}

// Rows splits the tiles into rows of width cells.
// A trailing partial row is kept.
func (g *Grid) Rows(width int) [][]string {
	if width < 1 {
		return nil
	}
	var rows [][]string
	for start := 0; start < len(g.tiles); start += width {
		end := start + width
		if end > len(g.tiles) {
			end = len(g.tiles)
		}
		rows = append(rows, g.tiles[start:end])
	}
	return rows
}

// Classes is a set of class names, like an element's class list
type Classes struct {
	set map[string]struct{}
}

// Add applies class names
func (c *Classes) Add(names ...string) {
	if c.set == nil {
		c.set = make(map[string]struct{})
	}
	for _, n := range names {
		if n != "" {
			c.set[n] = struct{}{}
		}
	}
}

// Remove clears class names; absent names are ignored
func (c *Classes) Remove(names ...string) {
	for _, n := range names {
		delete(c.set, n)
	}
}

// Has reports whether a class is applied
func (c *Classes) Has(name string) bool {
	_, ok := c.set[name]
	return ok
}

// List returns the applied classes sorted by name
func (c *Classes) List() []string {
	out := make([]string, 0, len(c.set))
	for n := range c.set {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Registry maps keys to surfaces
type Registry struct {
	surfaces map[Key]any
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{surfaces: make(map[Key]any)}
}

// NewPage creates a registry with the time, board and status surfaces
func NewPage() *Registry {
	r := NewRegistry()
	r.Register(KeyTime, &Text{})
	r.Register(KeyBoard, &Grid{})
	r.Register(KeyStatus, &Classes{})
	return r
}

// Register stores a surface under key, replacing any previous one
func (r *Registry) Register(key Key, s any) {
	r.surfaces[key] = s
}

// Text returns the text surface under key
func (r *Registry) Text(key Key) (*Text, error) {
	return lookup[*Text](r, key)
}

// Grid returns the grid surface under key
func (r *Registry) Grid(key Key) (*Grid, error) {
	return lookup[*Grid](r, key)
}

// Classes returns the class list surface under key
func (r *Registry) Classes(key Key) (*Classes, error) {
	return lookup[*Classes](r, key)
}

func lookup[T any](r *Registry, key Key) (T, error) {
	var zero T
	if r == nil {
		return zero, fmt.Errorf("%w: %q (no registry)", ErrMissing, key)
	}
	s, ok := r.surfaces[key]
	if !ok {
		return zero, fmt.Errorf("%w: %q", ErrMissing, key)
	}
	typed, ok := s.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %q has kind %T", ErrMissing, key, s)
	}
	return typed, nil
}
