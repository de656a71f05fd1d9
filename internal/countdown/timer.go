// Package countdown implements the round clock: a whole-second countdown that
// ticks through the Bubble Tea event loop and reports expiry exactly once.
package countdown

import (
	"errors"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
)

var (
	// ErrNoDisplay is returned when a timer is built without a time display
	ErrNoDisplay = errors.New("countdown: no time display")
	// ErrInvalidDuration is returned for negative durations
	ErrInvalidDuration = errors.New("countdown: duration must not be negative")
	// ErrInvalidInterval is returned for non-positive tick intervals
	ErrInvalidInterval = errors.New("countdown: tick interval must be positive")
)

// Display receives the formatted remaining time
type Display interface {
	SetText(text string)
}

// Cue is played on each tick at or under the low-time threshold
type Cue interface {
	Play()
}

var lastID atomic.Int64

func nextID() int {
	return int(lastID.Add(1))
}

// TickMsg is delivered once per interval while a timer runs
type TickMsg struct {
	ID   int
	Time time.Time

	tag int
}

// Timer counts down whole seconds.
//
// All methods must be called from the event loop goroutine. Only the command
// returned by Start (and by Update) runs elsewhere, and it touches no timer state.
type Timer struct {
	id  int
	tag int

	duration  int
	remaining int
	running   bool
	interval  time.Duration

	display   Display
	onExpired func()

	cue          Cue
	cueThreshold int

	clock  clockwork.Clock
	cancel chan struct{} // closed to abort the pending tick command
	log    zerolog.Logger
}

// Option configures a Timer
type Option func(*Timer)

// WithClock sets the clock ticks are scheduled on
func WithClock(c clockwork.Clock) Option {
	return func(t *Timer) {
		if c != nil {
			t.clock = c
		}
	}
}

// WithCue plays cue on every tick that leaves threshold seconds or fewer.
// A nil cue or a threshold below zero disables it.
func WithCue(cue Cue, threshold int) Option {
	return func(t *Timer) {
		t.cue = cue
		t.cueThreshold = threshold
	}
}

// WithLogger sets the timer's logger
func WithLogger(l zerolog.Logger) Option {
	return func(t *Timer) {
		t.log = l
	}
}

// New creates a stopped timer holding duration seconds and renders it.
// onExpired may be nil.
func New(duration int, interval time.Duration, display Display, onExpired func(), opts ...Option) (*Timer, error) {
	if display == nil {
		return nil, ErrNoDisplay
	}
	if duration < 0 {
		return nil, ErrInvalidDuration
	}
	if interval <= 0 {
		return nil, ErrInvalidInterval
	}

	t := &Timer{
		id:           nextID(),
		duration:     duration,
		remaining:    duration,
		interval:     interval,
		display:      display,
		onExpired:    onExpired,
		cueThreshold: -1,
		clock:        clockwork.NewRealClock(),
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}

	t.render()
	return t, nil
}

// ID returns the timer's unique id
func (t *Timer) ID() int {
	return t.id
}

// Duration returns the configured duration in seconds
func (t *Timer) Duration() int {
	return t.duration
}

// Remaining returns the seconds left
func (t *Timer) Remaining() int {
	return t.remaining
}

// Running reports whether the timer is ticking
func (t *Timer) Running() bool {
	return t.running
}

// LowTime reports whether the remaining time is within the cue threshold
func (t *Timer) LowTime() bool {
	return t.cueThreshold >= 0 && t.remaining <= t.cueThreshold
}

// Start begins ticking. A tick process that is already live is cancelled
// first, so there is never more than one.
func (t *Timer) Start() tea.Cmd {
	t.halt()
	t.running = true
	t.log.Debug().Int("timer", t.id).Int("remaining", t.remaining).Msg("timer started")
	return t.tick()
}

// Stop cancels the tick process. It is a no-op when the timer is not running.
func (t *Timer) Stop() {
	if !t.running {
		return
	}
	t.halt()
	t.running = false
	t.log.Debug().Int("timer", t.id).Int("remaining", t.remaining).Msg("timer stopped")
}

// Restart stops the timer and restores the full duration without starting it
func (t *Timer) Restart() {
	t.Stop()
	t.remaining = t.duration
	t.render()
}

// Update runs the tick action for a TickMsg addressed to this timer.
// It returns the command for the following tick, or nil once stopped.
func (t *Timer) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(TickMsg)
	if !ok || tick.ID != t.id || tick.tag != t.tag || !t.running {
		return nil
	}

	if t.remaining <= 0 {
		t.expire()
		return nil
	}

	t.remaining--
	t.render()
	if t.cue != nil && t.LowTime() {
		t.cue.Play()
	}

	if t.remaining == 0 {
		t.expire()
		return nil
	}
	return t.tick()
}

func (t *Timer) expire() {
	t.Stop()
	t.log.Info().Int("timer", t.id).Msg("timer expired")
	if t.onExpired != nil {
		t.onExpired()
	}
}

// halt invalidates the live tick process, if any
func (t *Timer) halt() {
	t.tag++
	if t.cancel != nil {
		close(t.cancel)
		t.cancel = nil
	}
}

// tick schedules one tick on the clock. The clock timer is created here, on
// the event loop, so the schedule is fixed when the command is issued.
func (t *Timer) tick() tea.Cmd {
	if t.cancel == nil {
		t.cancel = make(chan struct{})
	}
	id, tag, cancel := t.id, t.tag, t.cancel
	timer := t.clock.NewTimer(t.interval)

	return func() tea.Msg {
		select {
		case now := <-timer.Chan():
			return TickMsg{ID: id, Time: now, tag: tag}
		case <-cancel:
			stopAndDrainTimer(timer)
			return nil
		}
	}
}

func (t *Timer) render() {
	t.display.SetText(FormatTime(t.remaining))
}

// stopAndDrainTimer stops a timer and empties its channel if it already fired
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
