// Package ui provides the Bubble Tea terminal interface for vacmate.
package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vacmate/internal/envmap"
	"vacmate/internal/prefs"
	"vacmate/internal/robot"
	"vacmate/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewDashboard View = iota
	ViewControl
	ViewSchedule
	ViewMap
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	API        robot.API
	Store      *state.Store
	MapStore   *envmap.Store
	Scanner    *envmap.Coordinator
	PollTick   time.Duration
	StaleAfter time.Duration
	ThemeName  string
	FanSpeed   string
	PrefsPath  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx        context.Context
	api        robot.API
	store      *state.Store
	mapStore   *envmap.Store
	scanner    *envmap.Coordinator
	pollTick   time.Duration
	staleAfter time.Duration
	prefsPath  string

	// UI state
	theme       Theme
	keys        keyMap
	currentView View
	width       int
	height      int
	ready       bool
	showHelp    bool

	// Data state
	snapshot    state.Snapshot
	mapView     envmap.View
	lastUpdated time.Time
	notice      string // transient command/scan feedback

	// Control state
	fanSpeed string

	// Schedule state
	scheduleIndex int

	// Map state
	zoneIndex int
	adding    bool
	zoneName  textinput.Model
	spin      spinner.Model

	helpView viewport.Model
}

// New creates the root model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}
	staleAfter := opts.StaleAfter
	if staleAfter == 0 {
		staleAfter = 30 * time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Nightfox"
	}
	fanSpeed := opts.FanSpeed
	if fanSpeed == "" {
		fanSpeed = robot.FanStandard
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	input := textinput.New()
	input.Placeholder = "zone name"
	input.CharLimit = 24

	theme := GetTheme(themeName)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Accent))

	return Model{
		ctx:         ctx,
		api:         opts.API,
		store:       opts.Store,
		mapStore:    opts.MapStore,
		scanner:     opts.Scanner,
		pollTick:    pollTick,
		staleAfter:  staleAfter,
		prefsPath:   prefsPath,
		theme:       theme,
		keys:        DefaultKeyMap(),
		currentView: ViewDashboard,
		fanSpeed:    fanSpeed,
		zoneName:    input,
		spin:        spin,
		helpView:    viewport.New(0, 0),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
		m.spin.Tick,
	}
	if m.store != nil {
		cmds = append(cmds, readStoresCmd(m.store, m.mapStore))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = msg.Width
		m.helpView.Height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		cmds := []tea.Cmd{tickCmd(m.pollTick)}
		if m.store != nil {
			cmds = append(cmds, readStoresCmd(m.store, m.mapStore))
		}
		return m, tea.Batch(cmds...)

	case storesMsg:
		m.snapshot = msg.device
		m.mapView = msg.mapView
		m.lastUpdated = time.Now()
		m.clampCursors()
		return m, nil

	case scanDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, envmap.ErrScanInFlight) {
				m.notice = "scan already running"
			} else {
				m.notice = "scan failed: " + msg.err.Error()
			}
		} else {
			m.notice = "map updated"
		}
		return m, readStoresCmd(m.store, m.mapStore)

	case ackMsg:
		if msg.err != nil {
			m.notice = "command failed: " + msg.err.Error()
		} else if msg.ack.Message != "" {
			m.notice = msg.ack.Message
		}
		return m, nil

	case scheduleSavedMsg:
		if msg.err != nil {
			m.notice = "schedule update failed: " + msg.err.Error()
		} else {
			m.notice = "schedule saved"
			m.snapshot.Schedule = msg.entries
			if m.store != nil {
				m.store.SetSchedule(msg.entries)
			}
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderCommandBar()

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 1 {
		contentHeight = 1
	}

	var content string
	switch m.currentView {
	case ViewControl:
		content = m.renderControl(contentHeight)
	case ViewSchedule:
		content = m.renderSchedule(contentHeight)
	case ViewMap:
		content = m.renderMap(contentHeight)
	default:
		content = m.renderDashboard(contentHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

// clampCursors keeps list cursors valid after data changes.
func (m *Model) clampCursors() {
	if n := len(m.snapshot.Schedule); m.scheduleIndex >= n {
		m.scheduleIndex = maxInt(0, n-1)
	}
	if n := len(m.mapView.State.Zones); m.zoneIndex >= n {
		m.zoneIndex = maxInt(0, n-1)
	}
}

// Run boots the UI and blocks until the user quits or ctx is cancelled.
func Run(opts Options) error {
	model := New(opts)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(opts.Context))
	_, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	return nil
}
