// Package session coordinates one game on the page: it owns the round clock
// and the board and keeps the status surface in step with them.
package session

import (
	"fmt"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/letterbox/tui-go/internal/board"
	"github.com/letterbox/tui-go/internal/countdown"
	"github.com/letterbox/tui-go/internal/model"
	"github.com/letterbox/tui-go/internal/surface"
	"github.com/rs/zerolog"
)

// Config holds the game rules a session is built with
type Config struct {
	Duration     int           // Round length in seconds
	TickInterval time.Duration // Time between ticks
	GridSize     int           // Tiles per side
	Alphabet     board.Alphabet
	Policy       model.TerminalPolicy
	CueThreshold int // Seconds left at which the cue starts; negative disables
}

// Transition describes one status change
type Transition struct {
	Round string
	From  model.Status
	To    model.Status
	Cause string
}

// Session is the controller for a single page's game
type Session struct {
	cfg    Config
	status model.Status
	round  string

	timer   *countdown.Timer
	board   *board.Board
	classes *surface.Classes

	log       zerolog.Logger
	observers []func(Transition)
}

type options struct {
	log       zerolog.Logger
	observers []func(Transition)
	clock     clockwork.Clock
	cue       countdown.Cue
	rng       *rand.Rand
}

// Option configures a Session
type Option func(*options)

// WithLogger sets the logger for the session and its timer
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithObserver registers fn to be called after every transition
func WithObserver(fn func(Transition)) Option {
	return func(o *options) {
		if fn != nil {
			o.observers = append(o.observers, fn)
		}
	}
}

// WithClock sets the clock the round timer ticks on
func WithClock(c clockwork.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithCue sets the low-time cue
func WithCue(cue countdown.Cue) Option {
	return func(o *options) { o.cue = cue }
}

// WithRand sets the random source for dealing tiles
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// New builds a session on the surfaces of a page and deals the first board.
// It fails when the time, board or status surface cannot be found.
func New(cfg Config, surfaces *surface.Registry, opts ...Option) (*Session, error) {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if cfg.Policy == "" {
		cfg.Policy = model.PolicyDual
	}

	timeText, err := surfaces.Text(surface.KeyTime)
	if err != nil {
		return nil, fmt.Errorf("session: time display: %w", err)
	}
	grid, err := surfaces.Grid(surface.KeyBoard)
	if err != nil {
		return nil, fmt.Errorf("session: board container: %w", err)
	}
	classes, err := surfaces.Classes(surface.KeyStatus)
	if err != nil {
		return nil, fmt.Errorf("session: status indicator: %w", err)
	}

	s := &Session{
		cfg:       cfg,
		status:    model.StatusIdle,
		classes:   classes,
		log:       o.log,
		observers: o.observers,
	}

	timerOpts := []countdown.Option{
		countdown.WithLogger(o.log),
		countdown.WithCue(o.cue, cfg.CueThreshold),
	}
	if o.clock != nil {
		timerOpts = append(timerOpts, countdown.WithClock(o.clock))
	}
	s.timer, err = countdown.New(cfg.Duration, cfg.TickInterval, timeText, s.expired, timerOpts...)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s.board, err = board.New(cfg.GridSize, cfg.Alphabet, grid, board.WithRand(o.rng))
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s.board.Regenerate()
	s.classes.Remove(model.StatusClasses()...)
	return s, nil
}

// Status returns the current status
func (s *Session) Status() model.Status {
	return s.status
}

// Round returns the id of the current round, empty before the first start
func (s *Session) Round() string {
	return s.round
}

// Policy returns the terminal policy in force
func (s *Session) Policy() model.TerminalPolicy {
	return s.cfg.Policy
}

// Timer returns the round timer
func (s *Session) Timer() *countdown.Timer {
	return s.timer
}

// Board returns the board
func (s *Session) Board() *board.Board {
	return s.board
}

// Start deals a new board, resets the clock and starts it.
// Starting during a round begins a new one.
func (s *Session) Start() tea.Cmd {
	s.reset()
	s.round = uuid.NewString()
	cmd := s.timer.Start()
	s.transition(model.StatusInProgress, "start")
	return cmd
}

// Restart deals a new board and resets the clock without starting it
func (s *Session) Restart() {
	s.reset()
	s.transition(model.StatusIdle, "restart")
}

// Stop ends the round in progress. isExpired selects the terminal status
// under the dual policy. It reports whether a round was ended.
func (s *Session) Stop(isExpired bool) bool {
	if s.status != model.StatusInProgress {
		return false
	}
	s.timer.Stop()

	cause := "stop"
	if isExpired {
		cause = "expired"
	}
	s.transition(s.cfg.Policy.StopStatus(isExpired), cause)
	return true
}

// Update routes clock ticks to the timer
func (s *Session) Update(msg tea.Msg) tea.Cmd {
	return s.timer.Update(msg)
}

func (s *Session) expired() {
	s.Stop(true)
}

func (s *Session) reset() {
	s.timer.Restart()
	s.board.Regenerate()
}

// transition swaps the status class: every status class is removed before
// the new one is applied.
func (s *Session) transition(to model.Status, cause string) {
	from := s.status
	s.classes.Remove(model.StatusClasses()...)
	s.classes.Add(to.Class())
	s.status = to

	s.log.Info().
		Str("round", s.round).
		Str("from", from.String()).
		Str("to", to.String()).
		Str("cause", cause).
		Int("remaining", s.timer.Remaining()).
		Msg("session transition")

	tr := Transition{Round: s.round, From: from, To: to, Cause: cause}
	for _, fn := range s.observers {
		fn(tr)
	}
}
