package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/ncube"
	"github.com/SeamusWaldron/ncube/internal/recorder"
	"github.com/SeamusWaldron/ncube/internal/storage"
)

var (
	playSize  int
	playSpeed float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube play mode",
	Long: `Start an interactive TUI for turning the cube from the keyboard.

Keyboard shortcuts:
  u d f b r l - Turn the face clockwise
  U D F B R L - Turn the face counter-clockwise
  tab         - Cycle face selection highlight
  esc         - Clear face selection
  ctrl+r      - Reset the cube to solved
  q           - Quit

Every move is recorded to a play session for later review with
'ncube sessions'.`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().IntVar(&playSize, "size", 3, "Cube size (NxNxN, minimum 2)")
	playCmd.Flags().Float64Var(&playSpeed, "speed", 6.0, "Turn animation speed in degrees per tick")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	turnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerColors maps sticker colors to terminal palette entries.
var stickerColors = map[ncube.Color]lipgloss.Color{
	ncube.White:  lipgloss.Color("15"),
	ncube.Yellow: lipgloss.Color("11"),
	ncube.Green:  lipgloss.Color("10"),
	ncube.Blue:   lipgloss.Color("12"),
	ncube.Red:    lipgloss.Color("9"),
	ncube.Orange: lipgloss.Color("208"),
}

type tickMsg time.Time

// selectionOrder is the sequence the tab key cycles through.
var selectionOrder = []ncube.Face{
	ncube.FaceNone,
	ncube.FaceU, ncube.FaceD,
	ncube.FaceF, ncube.FaceB,
	ncube.FaceR, ncube.FaceL,
}

var keyFaces = map[string]ncube.Face{
	"u": ncube.FaceU, "d": ncube.FaceD,
	"f": ncube.FaceF, "b": ncube.FaceB,
	"r": ncube.FaceR, "l": ncube.FaceL,
}

// Model
type playModel struct {
	cube    *ncube.Cube
	spatial *ncube.SpatialCube

	// in-flight and buffered moves; the buffer holds at most one move,
	// a newer key press replaces an older buffered one
	current *ncube.Move
	pending *ncube.Move

	session *recorder.Session
	moves   []ncube.Move

	width    int
	height   int
	err      error
	quitting bool
}

func newPlayModel(size int, session *recorder.Session) *playModel {
	return &playModel{
		cube:    ncube.New(size),
		spatial: ncube.NewSpatial(size, ncube.WithTurnStep(playSpeed)),
		session: session,
	}
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// startMove launches a turn, or buffers it when a turn is already running.
func (m *playModel) startMove(mv ncube.Move) {
	if m.spatial.Animating() {
		m.pending = &mv
		return
	}
	m.spatial.StartFaceTurn(mv.Face, mv.Turn)
	m.current = &mv
}

// finishMove commits a completed turn to the sticker grid and the session.
func (m *playModel) finishMove() {
	if m.current == nil {
		return
	}
	mv := m.current.WithTime(time.Now())
	m.current = nil

	m.cube.Rotate(mv.Face, mv.Turn)
	m.moves = append(m.moves, mv)

	// rotating can move highlighted stickers off the border strips
	if sel := m.cube.Selected(); sel != ncube.FaceNone {
		m.cube.Select(sel)
	}

	if m.session != nil {
		if err := m.session.RecordMove(mv); err != nil {
			m.err = err
		}
	}

	if m.pending != nil {
		next := *m.pending
		m.pending = nil
		m.startMove(next)
	}
}

func (m *playModel) reset() {
	m.cube.Reset()
	m.spatial.Reset()
	m.current = nil
	m.pending = nil
	m.moves = nil
}

func (m *playModel) cycleSelection() {
	cur := m.cube.Selected()
	for i, f := range selectionOrder {
		if f == cur {
			m.cube.Select(selectionOrder[(i+1)%len(selectionOrder)])
			return
		}
	}
	m.cube.Select(selectionOrder[0])
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		switch key {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "tab":
			m.cycleSelection()
			return m, nil

		case "esc":
			m.cube.Select(ncube.FaceNone)
			return m, nil

		case "ctrl+r":
			m.reset()
			return m, nil
		}

		if f, ok := keyFaces[strings.ToLower(key)]; ok && len(key) == 1 {
			turn := ncube.CW
			if key != strings.ToLower(key) {
				turn = ncube.CCW
			}
			m.startMove(ncube.Move{Face: f, Turn: turn})
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		if m.spatial.Animating() {
			if m.spatial.Tick() {
				m.finishMove()
			}
		}
		return m, m.tickCmd()
	}

	return m, nil
}

func (m *playModel) View() string {
	if m.quitting {
		return fmt.Sprintf("Session ended after %d moves.\n", len(m.moves))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("ncube %dx%dx%d", m.cube.Size(), m.cube.Size(), m.cube.Size())))
	b.WriteString("\n\n")

	b.WriteString(m.renderGrid())
	b.WriteString("\n")

	// Status line
	if m.current != nil {
		status := fmt.Sprintf("Turning %s  %5.1f°", m.current.Notation(), m.spatial.Angle())
		if m.pending != nil {
			status += fmt.Sprintf("  (next: %s)", m.pending.Notation())
		}
		b.WriteString(turnStyle.Render(status))
	} else if m.cube.IsSolved() {
		b.WriteString(turnStyle.Render("SOLVED"))
	} else {
		b.WriteString(statusStyle.Render("Ready"))
	}
	b.WriteString("\n")

	if sel := m.cube.Selected(); sel != ncube.FaceNone {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Selected: %s", sel)))
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("Moves: %d\n", len(m.moves)))

	if len(m.moves) > 0 {
		start := 0
		if len(m.moves) > 20 {
			start = len(m.moves) - 20
		}
		var notations []string
		for i := start; i < len(m.moves); i++ {
			notations = append(notations, m.moves[i].Notation())
		}
		prefix := ""
		if start > 0 {
			prefix = "... "
		}
		b.WriteString(prefix)
		b.WriteString(moveStyle.Render(strings.Join(notations, " ")))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("Keys: udfbrl=turn CW  UDFBRL=turn CCW  tab=select  esc=clear  ctrl+r=reset  q=quit"))
	b.WriteString("\n")

	return b.String()
}

// renderGrid draws the unfolded sticker grid: U on top, then the L F R B
// band, then D.
func (m *playModel) renderGrid() string {
	n := m.cube.Size()
	var b strings.Builder

	indent := strings.Repeat(" ", n*2+1)

	for row := 0; row < n; row++ {
		b.WriteString(indent)
		m.renderFaceRow(&b, ncube.FaceU, row)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	band := []ncube.Face{ncube.FaceL, ncube.FaceF, ncube.FaceR, ncube.FaceB}
	for row := 0; row < n; row++ {
		for i, f := range band {
			if i > 0 {
				b.WriteString(" ")
			}
			m.renderFaceRow(&b, f, row)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for row := 0; row < n; row++ {
		b.WriteString(indent)
		m.renderFaceRow(&b, ncube.FaceD, row)
		b.WriteString("\n")
	}

	return b.String()
}

func (m *playModel) renderFaceRow(b *strings.Builder, f ncube.Face, row int) {
	n := m.cube.Size()
	for col := 0; col < n; col++ {
		st := m.cube.Sticker(f, row, col)
		cell := "██"
		switch {
		case st.Selected:
			cell = "▓▓"
		case st.Adjacent:
			cell = "▒▒"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(stickerColors[st.Color]).Render(cell))
	}
}

func runPlay(cmd *cobra.Command, args []string) error {
	if playSize < 2 {
		return fmt.Errorf("cube size must be at least 2, got %d", playSize)
	}

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	session := recorder.NewSession(db)
	sessionID, err := session.Start(playSize, "")
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	model := newPlayModel(playSize, session)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if err := session.End(); err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}

	stats, err := storage.NewSessionRepository(db).Stats(sessionID)
	if err == nil && stats.MoveCount > 0 {
		fmt.Printf("Session %s: %d moves in %s (%.2f TPS)\n",
			sessionID[:8],
			stats.MoveCount,
			formatDuration(time.Duration(stats.DurationMs)*time.Millisecond),
			stats.TPS,
		)
	}

	return nil
}

func formatDuration(d time.Duration) string {
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	mins := int(d.Minutes())
	secs := d.Seconds() - float64(mins*60)
	return fmt.Sprintf("%dm%.1fs", mins, secs)
}
