package viz

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/san-kum/ising/internal/command"
	"github.com/san-kum/ising/internal/render"
	"github.com/san-kum/ising/internal/sim"
)

const (
	// headerLines is the number of rows above the lattice in View.
	headerLines = 1
	// cellWidth is the number of terminal columns per lattice cell.
	cellWidth = 2
	// canvasPadLeft matches the horizontal padding of canvasStyle.
	canvasPadLeft = 1
)

type TickMsg time.Time

// Model is the Bubble Tea model driving a simulator.
type Model struct {
	sim      *sim.Simulator
	logger   *log.Logger
	fps      int
	theme    Theme
	showHelp bool
	lastErr  error
	frames   uint64
}

// NewModel wraps s for interactive use at fps frames per second.
func NewModel(s *sim.Simulator, fps int, logger *log.Logger) Model {
	if fps <= 0 {
		fps = 30
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{sim: s, logger: logger, fps: fps, theme: themes[0]}
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd { return m.tick() }

// Update handles input events and advances the simulator on each tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if idx, ok := m.cellAt(msg.X, msg.Y); ok {
				m.apply(command.Command{Kind: command.Toggle, Index: idx})
			}
		}
		return m, nil
	case TickMsg:
		if m.sim.IsRunning() {
			m.apply(command.Command{Kind: command.Tick})
			m.frames++
		}
		return m, m.tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var kind command.Kind
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		kind = command.Start
		if m.sim.IsRunning() {
			kind = command.Stop
		}
	case "s":
		kind = command.Step
	case "r":
		kind = command.Randomise
	case "c":
		kind = command.Clear
	case "+", "=", "up", "k":
		kind = command.IncreaseT
	case "-", "_", "down", "j":
		kind = command.DecreaseT
	case "t":
		m.theme = nextTheme(m.theme)
		return m, nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	default:
		return m, nil
	}
	m.apply(command.Command{Kind: kind})
	return m, nil
}

func (m *Model) apply(c command.Command) {
	if err := command.Apply(m.sim, c); err != nil {
		m.lastErr = err
		m.logger.Error("command failed", "command", c.String(), "err", err)
		return
	}
	m.lastErr = nil
}

// cellAt maps a terminal position onto a flat lattice index.
func (m Model) cellAt(x, y int) (int, bool) {
	w, h := m.sim.Dimensions()
	row := y - headerLines
	col := (x - canvasPadLeft) / cellWidth
	if x < canvasPadLeft || row < 0 || row >= h || col >= w {
		return 0, false
	}
	return row*w + col, true
}

// View renders the lattice next to a status panel.
func (m Model) View() string {
	w, _ := m.sim.Dimensions()
	canvas := canvasStyle.Render(render.Frame(m.sim.Snapshot(), w, m.theme.palette()))

	status := "STOPPED"
	if m.sim.IsRunning() {
		status = "RUNNING"
	}

	var s strings.Builder
	s.WriteString(statusStyle(m.theme, m.sim.IsRunning()).Render(status) + "\n\n")
	s.WriteString(stat("T", fmt.Sprintf("%.2f", m.sim.Temperature())))
	s.WriteString(stat("β", fmt.Sprintf("%.4f", m.sim.Beta())))
	s.WriteString(stat("|M|/N", fmt.Sprintf("%.3f", math.Abs(m.sim.Magnetisation()))))
	s.WriteString(stat("Updates", fmt.Sprintf("%d", m.sim.Steps())))
	s.WriteString(stat("Per tick", fmt.Sprintf("%d", m.sim.BurstSize())))
	s.WriteString(stat("ΔT", fmt.Sprintf("%.3f", m.sim.TempStep())))
	s.WriteString(stat("Frames", fmt.Sprintf("%d", m.frames)))
	s.WriteString(stat("Theme", m.theme.Name))
	if m.lastErr != nil {
		s.WriteString("\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.lastErr.Error()) + "\n")
	}
	s.WriteString(helpStyle.Render("SP:Run/Stop S:Step R:Random\nC:Clear +/-:T T:Theme ?:Help Q:Quit"))

	header := headerStyle(m.theme).Render("2D ISING LATTICE")
	body := lipgloss.JoinHorizontal(lipgloss.Top, canvas, statsStyle.Render(s.String()))
	view := header + "\n" + body

	if m.showHelp {
		return view + "\n" + helpOverlay
	}
	return view
}

func stat(label, value string) string {
	return labelStyle.Render(label) + valueStyle.Render(value) + "\n"
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Start/Stop simulation    ║
║  S        - Single update            ║
║  R        - Randomise spins          ║
║  C        - Clear (all spins down)   ║
║  +/Up     - Raise temperature        ║
║  -/Down   - Lower temperature        ║
║  Click    - Flip a spin              ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the interactive host and blocks until the user quits.
func Run(s *sim.Simulator, fps int, theme Theme, logger *log.Logger) error {
	m := NewModel(s, fps, logger)
	m.theme = theme
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
