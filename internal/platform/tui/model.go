package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-colormix/internal/config"
	"github.com/vovakirdan/tui-colormix/internal/core"
	"github.com/vovakirdan/tui-colormix/internal/game"
	"github.com/vovakirdan/tui-colormix/internal/storage"
)

// Options configures a Model beyond its screen size.
type Options struct {
	Theme         config.Theme
	Store         *storage.Store     // Optional journal; nil disables it
	Player        string             // Recorded with journaled games
	ScreenshotDir string             // Defaults to ~/.colormix/screenshots
	NoScreenshots bool               // Set for remote sessions
	Renderer      *lipgloss.Renderer // Per-session renderer for SSH
}

// Model is the Bubble Tea model for one colormix session.
// All game rules live in game.Reduce; the model only turns gestures into
// actions and keeps the journal in step.
type Model struct {
	config core.RuntimeConfig
	opts   Options
	theme  config.Theme
	styles Styles
	layout Layout
	screen *core.Screen
	keys   KeyMap
	help   help.Model

	state game.State

	cursor game.Coord

	// Mouse press in progress.
	pressed bool
	pressAt game.Coord

	// Drag in progress, from mouse or keyboard.
	dragging bool
	dragFrom game.Coord
	payload  string
	hovering bool
	hover    game.Coord

	status    string
	statusGen int

	gameID   string
	seq      int
	finished bool

	quitting bool
}

// NewModel creates a model with no game started.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	if opts.Theme.Cell.Width == 0 {
		opts.Theme = config.DefaultTheme()
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		config: cfg,
		opts:   opts,
		theme:  opts.Theme,
		styles: NewStyles(opts.Theme, opts.Renderer),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-1),
		keys:   DefaultKeyMap(),
		help:   h,
		cursor: game.At(1, 1),
	}
	m.layout = NewLayout(cfg.ScreenW, cfg.ScreenH-1, m.theme)
	return m
}

// State returns the current game snapshot.
func (m Model) State() game.State {
	return m.state
}

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.theme.Labels.Title)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case clearStatusMsg:
		if msg.gen == m.statusGen {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.keys.MapKey(msg)

	switch in.Action {
	case core.ActionQuit:
		m.finishGame()
		m.quitting = true
		return m, tea.Quit

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case core.ActionUp:
		m.moveCursor(-1, 0)
	case core.ActionDown:
		m.moveCursor(1, 0)
	case core.ActionLeft:
		m.moveCursor(0, -1)
	case core.ActionRight:
		m.moveCursor(0, 1)

	case core.ActionPaint:
		return m.dispatch(game.CrossPaint{At: m.cursor})

	case core.ActionGrab:
		return m.keyboardGrab()

	case core.ActionCancel:
		if m.dragging {
			m.clearDrag()
			return m.setStatus("Drag cancelled")
		}
		m.help.ShowAll = false

	case core.ActionFill:
		palette := game.Palette()
		if in.Index < 0 || in.Index >= len(palette) {
			return m, nil
		}
		return m.dispatch(game.UniformFill{Color: palette[in.Index]})

	case core.ActionStart:
		return m.dispatch(game.Start{})

	case core.ActionScreenshot:
		return m.saveScreenshot()
	}

	return m, nil
}

// moveCursor shifts the cell cursor, staying on the grid.
func (m *Model) moveCursor(dr, dc int) {
	r := core.Clamp(m.cursor.Row+dr, 0, game.Rows-1)
	c := core.Clamp(m.cursor.Col+dc, 0, game.Cols-1)
	m.cursor = game.At(r, c)

	if m.dragging {
		m.hovering = m.cursor != m.dragFrom
		m.hover = m.cursor
	}
}

// keyboardGrab picks up the cursor cell, or drops the held one on it.
func (m Model) keyboardGrab() (tea.Model, tea.Cmd) {
	if !m.dragging {
		if !m.beginDrag(m.cursor) {
			return m.setStatus(m.rejectReason())
		}
		return m, nil
	}

	if m.cursor == m.dragFrom {
		m.clearDrag()
		return m.setStatus("Drag cancelled")
	}
	return m.drop(m.cursor)
}

// handleMouse maps mouse gestures to game actions.
//
// Press on the start control or a swatch acts immediately. Press on a cell
// begins a drag; releasing on the same cell is a click (cross paint),
// releasing on another cell drops the drag there (merge) and releasing
// anywhere else cancels it.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.help.ShowAll {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if m.layout.StartAt(msg.X, msg.Y) {
			m.clearDrag()
			return m.dispatch(game.Start{})
		}
		if color, ok := m.layout.SwatchAt(msg.X, msg.Y); ok {
			m.clearDrag()
			return m.dispatch(game.UniformFill{Color: color})
		}
		at, ok := m.layout.CellAt(msg.X, msg.Y)
		if !ok {
			return m, nil
		}
		m.clearDrag()
		m.cursor = at
		m.pressed = true
		m.pressAt = at
		m.beginDrag(at)
		return m, nil

	case tea.MouseActionMotion:
		if !m.dragging {
			return m, nil
		}
		at, ok := m.layout.CellAt(msg.X, msg.Y)
		m.hovering = ok && at != m.dragFrom
		m.hover = at
		return m, nil

	case tea.MouseActionRelease:
		if !m.pressed {
			return m, nil
		}
		pressAt := m.pressAt
		m.pressed = false

		at, ok := m.layout.CellAt(msg.X, msg.Y)
		switch {
		case !ok:
			dragged := m.dragging
			m.clearDrag()
			if dragged {
				return m.setStatus("Drag cancelled")
			}
			return m, nil
		case at == pressAt:
			m.clearDrag()
			return m.dispatch(game.CrossPaint{At: at})
		default:
			return m.drop(at)
		}
	}

	return m, nil
}

// beginDrag starts a drag from at. The payload is attached only while a
// move would be accepted, so drags started outside a game carry nothing.
func (m *Model) beginDrag(at game.Coord) bool {
	if !m.state.CanMove() {
		return false
	}
	m.dragging = true
	m.dragFrom = at
	m.payload = game.EncodePayload(at)
	m.hovering = false
	return true
}

// drop merges the dragged cell into target. The payload is decoded again
// and the reducer decides whether the move is still allowed.
func (m Model) drop(target game.Coord) (tea.Model, tea.Cmd) {
	payload := m.payload
	m.clearDrag()

	source, ok := game.DecodePayload(payload)
	if !ok {
		return m, nil
	}
	return m.dispatch(game.DragMerge{Source: source, Target: target})
}

func (m *Model) clearDrag() {
	m.pressed = false
	m.dragging = false
	m.payload = ""
	m.hovering = false
}

// dispatch runs a through the reducer and journals the result.
func (m Model) dispatch(a game.Action) (tea.Model, tea.Cmd) {
	next, ok := game.Reduce(m.state, a)

	if _, start := a.(game.Start); start {
		m.finishGame()
		m.state = next
		m.clearDrag()
		m.beginJournal()
		return m.setStatus(fmt.Sprintf("New game: %d moves", game.MoveBudget))
	}

	reason := m.rejectReason()
	m.state = next
	m.recordMove(a, ok)

	if !ok {
		return m.setStatus(reason)
	}
	if m.state.Phase() == game.PhaseExhausted {
		m.finishGame()
	}
	return m, nil
}

// rejectReason explains why a move would be ignored in the current state.
func (m Model) rejectReason() string {
	switch m.state.Phase() {
	case game.PhaseNoSession:
		return "Start a game first"
	case game.PhaseExhausted:
		return "No moves left"
	default:
		return "Move ignored"
	}
}

// beginJournal opens a journal entry for the game that just started.
func (m *Model) beginJournal() {
	m.gameID = fmt.Sprintf("%s-%d", m.opts.Player, time.Now().UnixNano())
	m.seq = 0
	m.finished = false
	if m.opts.Store != nil {
		//nolint:errcheck // Best-effort journal, the game continues regardless
		m.opts.Store.StartGame(m.gameID, m.opts.Player)
	}
}

// recordMove journals one move of the open game.
func (m *Model) recordMove(a game.Action, accepted bool) {
	if m.gameID == "" || m.finished {
		return
	}
	m.seq++
	if m.opts.Store != nil {
		//nolint:errcheck // Best-effort journal, the game continues regardless
		m.opts.Store.RecordMove(m.gameID, m.seq, a.String(), accepted, m.state.MovesLeft)
	}
}

// finishGame closes the open game in the journal, once.
func (m *Model) finishGame() {
	if m.gameID == "" || m.finished {
		return
	}
	m.finished = true
	if m.opts.Store != nil {
		//nolint:errcheck // Best-effort journal, the game continues regardless
		m.opts.Store.FinishGame(m.gameID, m.state.Grid.String(), m.state.MovesUsed())
	}
}

// setStatus shows a transient message on the status line.
func (m Model) setStatus(text string) (tea.Model, tea.Cmd) {
	m.statusGen++
	m.status = text
	return m, clearStatusCmd(m.statusGen)
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-1)
	m.layout = NewLayout(msg.Width, msg.Height-1, m.theme)
	m.help.Width = msg.Width

	// A half-finished mouse gesture cannot be resolved against a new layout.
	m.pressed = false

	return m, nil
}

// saveScreenshot writes the board and the current screen to a text file.
func (m Model) saveScreenshot() (tea.Model, tea.Cmd) {
	if m.opts.NoScreenshots {
		return m.setStatus("Screenshots are disabled")
	}

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return m.setStatus("Screenshot failed: no home directory")
		}
		dir = filepath.Join(home, ".colormix", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return m.setStatus("Screenshot failed: " + err.Error())
	}

	m.draw()
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("colormix_%s.txt", timestamp))
	content := game.RenderASCII(m.state) + "\n" + m.screen.String() + "\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return m.setStatus("Screenshot failed: " + err.Error())
	}
	return m.setStatus("Saved " + path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.help.ShowAll {
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
			lipgloss.Center, lipgloss.Center,
			m.theme.Labels.Title+"\n\n"+m.help.View(m.keys))
	}

	m.draw()
	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, release and drag motion
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		m.finishGame()
	}
	return err
}
