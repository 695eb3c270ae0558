package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/cubekit/cubekit"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Turn the cube interactively in the terminal",
	Long: `Open an interactive view of the cube. Press a face letter to turn
that face clockwise, hold shift for counter-clockwise.

Keys:
  u r f d l b    clockwise quarter turn
  U R F D L B    counter-clockwise quarter turn
  s              apply a random scramble
  z              undo the last move
  n              reset to solved
  q              quit`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newPlayModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}

var (
	playTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	playStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	playMoveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	playSolvedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("40"))
)

var playKeyFaces = map[string]cubekit.Face{
	"u": cubekit.FaceU, "r": cubekit.FaceR, "f": cubekit.FaceF,
	"d": cubekit.FaceD, "l": cubekit.FaceL, "b": cubekit.FaceB,
}

type playModel struct {
	state    cubekit.State
	moves    []cubekit.Move
	quitting bool
}

func newPlayModel() *playModel {
	return &playModel{state: cubekit.Solved()}
}

func (m *playModel) Init() tea.Cmd {
	return nil
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch s := key.String(); s {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "s":
		r := rand.New(rand.NewSource(time.Now().UnixNano()))
		for _, move := range cubekit.Scramble(r, 25) {
			m.apply(move)
		}

	case "z":
		if n := len(m.moves); n > 0 {
			last := m.moves[n-1]
			m.moves = m.moves[:n-1]
			m.state = m.state.Apply(last.Inverse())
		}

	case "n":
		m.state = cubekit.Solved()
		m.moves = nil

	default:
		if face, ok := playKeyFaces[strings.ToLower(s)]; ok {
			turn := cubekit.CW
			if s != strings.ToLower(s) {
				turn = cubekit.CCW
			}
			m.apply(cubekit.Move{Face: face, Turn: turn})
		}
	}

	return m, nil
}

func (m *playModel) apply(move cubekit.Move) {
	m.state = m.state.Apply(move)
	m.moves = append(m.moves, move)
}

func (m *playModel) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var b strings.Builder

	b.WriteString(playTitleStyle.Render("cubekit"))
	b.WriteString("\n\n")
	b.WriteString(renderState(m.state))
	b.WriteString("\n")

	if m.state.IsSolved() {
		b.WriteString(playSolvedStyle.Render("SOLVED"))
	} else {
		b.WriteString(playStatusStyle.Render(fmt.Sprintf("%d moves", len(m.moves))))
	}
	b.WriteString("\n")

	if len(m.moves) > 0 {
		shown := m.moves
		prefix := ""
		if len(shown) > 20 {
			shown = shown[len(shown)-20:]
			prefix = "... "
		}
		b.WriteString(prefix + playMoveStyle.Render(cubekit.FormatMoves(shown)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(playStatusStyle.Render("u/r/f/d/l/b turn, shift for reverse, s scramble, z undo, n reset, q quit"))
	b.WriteString("\n")

	return b.String()
}
