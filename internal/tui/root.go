package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jonboulle/clockwork"
	"github.com/letterbox/tui-go/internal/board"
	"github.com/letterbox/tui-go/internal/config"
	"github.com/letterbox/tui-go/internal/countdown"
	"github.com/letterbox/tui-go/internal/model"
	"github.com/letterbox/tui-go/internal/session"
	"github.com/letterbox/tui-go/internal/surface"
	"github.com/rs/zerolog"
)

const debugPanelWidth = 44

// Deps are the collaborators the root model is built with
type Deps struct {
	Logger zerolog.Logger
	Cue    countdown.Cue   // Nil disables the low-time cue
	Clock  clockwork.Clock // Nil uses the real clock
	Debug  bool            // Start with the debug panel open
}

// Model is the root Bubble Tea model
type Model struct {
	// Terminal dimensions
	width  int
	height int

	// Page surfaces the session renders into
	page     *surface.Registry
	timeText *surface.Text
	grid     *surface.Grid
	classes  *surface.Classes

	cfg     *config.Config
	session *session.Session
	log     zerolog.Logger

	// Key bindings and help
	keys KeyMap
	help help.Model

	debug *DebugPanel

	quitting bool
}

// NewRootModel builds the page surfaces and the game session on them
func NewRootModel(cfg *config.Config, deps Deps) (Model, error) {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	alphabet, err := board.AlphabetByName(cfg.Alphabet)
	if err != nil {
		return Model{}, err
	}

	page := surface.NewPage()
	debug := NewDebugPanel(deps.Debug)

	opts := []session.Option{
		session.WithLogger(deps.Logger),
		session.WithCue(deps.Cue),
		session.WithObserver(debug.AddTransition),
	}
	if deps.Clock != nil {
		opts = append(opts, session.WithClock(deps.Clock))
	}
	if cfg.Seed != 0 {
		opts = append(opts, session.WithRand(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))))
	}

	s, err := session.New(session.Config{
		Duration:     cfg.Duration,
		TickInterval: cfg.TickInterval,
		GridSize:     cfg.GridSize,
		Alphabet:     alphabet,
		Policy:       cfg.Policy,
		CueThreshold: cfg.LowTime.Threshold,
	}, page, opts...)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		page:    page,
		cfg:     cfg,
		session: s,
		log:     deps.Logger,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		debug:   debug,
	}
	m.keys.Stop.SetEnabled(cfg.StopEnabled)

	// The session resolved these already; a failure here cannot happen
	m.timeText, _ = page.Text(surface.KeyTime)
	m.grid, _ = page.Grid(surface.KeyBoard)
	m.classes, _ = page.Classes(surface.KeyStatus)

	debug.AddEvent("ready", fmt.Sprintf("%d×%d %s, %ds", cfg.GridSize, cfg.GridSize, alphabet.Name, cfg.Duration))
	return m, nil
}

// Session returns the game session
func (m Model) Session() *session.Session {
	return m.session
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("letterbox")
}

// Update handles key presses, clock ticks and resizes
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

	case tea.KeyMsg:
		return m.handleKey(msg)

	case countdown.TickMsg:
		return m, m.session.Update(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.session.Stop(false)
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Start):
		return m, m.session.Start()

	case key.Matches(msg, m.keys.Restart):
		m.session.Restart()

	case key.Matches(msg, m.keys.Stop):
		m.session.Stop(false)

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Debug):
		m.debug.Toggle()
	}

	return m, nil
}

// View renders the page
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	game := lipgloss.JoinVertical(lipgloss.Center,
		m.renderHeader(),
		"",
		m.renderClock(),
		"",
		m.renderBoard(),
		"",
		m.renderStatus(),
	)
	body := lipgloss.JoinVertical(lipgloss.Center,
		BoardFrameStyle.Render(game),
		m.help.View(m.keys),
	)

	if m.debug.IsEnabled() {
		panel := m.debug.Render(debugPanelWidth, lipgloss.Height(body))
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", panel)
	}

	if m.width == 0 || m.height == 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m Model) renderHeader() string {
	title := HeaderStyle.Render("LETTERBOX")
	subtitle := SubtitleStyle.Render(fmt.Sprintf(" · %d×%d · %s", m.cfg.GridSize, m.cfg.GridSize, m.cfg.Alphabet))
	return title + subtitle
}

// renderClock draws the time surface, in red once the round is in low time
func (m Model) renderClock() string {
	style := TimerStyle
	if m.session.Status() == model.StatusInProgress && m.session.Timer().LowTime() {
		style = TimerLowStyle
	}
	return style.Render(m.timeText.String())
}

// renderBoard draws the grid surface; tiles are dimmed once the round has ended
func (m Model) renderBoard() string {
	style := TileStyle
	if m.classes.Has(model.StatusOver.Class()) || m.classes.Has(model.StatusStopped.Class()) {
		style = TileDimStyle
	}

	var rows []string
	for _, row := range m.grid.Rows(m.cfg.GridSize) {
		cells := make([]string, len(row))
		for i, tile := range row {
			cells[i] = style.Render(tileLabel(tile))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderStatus draws the status surface as a badge
func (m Model) renderStatus() string {
	status := statusFromClasses(m.classes)
	label := statusLabel(status)

	var style lipgloss.Style
	switch status {
	case model.StatusInProgress:
		style = StatusInProgressStyle
	case model.StatusOver:
		style = StatusOverStyle
	case model.StatusStopped:
		style = StatusStoppedStyle
	default:
		style = StatusIdleStyle
	}
	return style.Render(status.Icon() + " " + label)
}

// statusFromClasses reads the status back from the class list
func statusFromClasses(c *surface.Classes) model.Status {
	for _, s := range []model.Status{model.StatusInProgress, model.StatusOver, model.StatusStopped} {
		if c.Has(s.Class()) {
			return s
		}
	}
	return model.StatusIdle
}

func statusLabel(s model.Status) string {
	switch s {
	case model.StatusInProgress:
		return "In progress"
	case model.StatusOver:
		return "Game over"
	case model.StatusStopped:
		return "Stopped"
	default:
		return "Ready · press s to start"
	}
}

// tileLabel capitalises a tile: "a" → "A", "qu" → "Qu"
func tileLabel(tile string) string {
	if tile == "" {
		return ""
	}
	return strings.ToUpper(tile[:1]) + tile[1:]
}
