package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cubekit/cubekit"
)

// One style per sticker color. Black foreground on a colored block
// keeps the letters readable on both light and dark terminals.
var stickerStyles = map[cubekit.Color]lipgloss.Style{
	cubekit.White:  lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
	cubekit.Red:    lipgloss.NewStyle().Background(lipgloss.Color("196")).Foreground(lipgloss.Color("0")),
	cubekit.Green:  lipgloss.NewStyle().Background(lipgloss.Color("40")).Foreground(lipgloss.Color("0")),
	cubekit.Yellow: lipgloss.NewStyle().Background(lipgloss.Color("226")).Foreground(lipgloss.Color("0")),
	cubekit.Orange: lipgloss.NewStyle().Background(lipgloss.Color("208")).Foreground(lipgloss.Color("0")),
	cubekit.Blue:   lipgloss.NewStyle().Background(lipgloss.Color("21")).Foreground(lipgloss.Color("0")),
}

// renderState draws the unfolded cube net with colored sticker blocks.
func renderState(s cubekit.State) string {
	var b strings.Builder

	sticker := func(f cubekit.Face, pos int) string {
		c := s.Sticker(f, pos)
		return stickerStyles[c].Render(" " + c.String() + " ")
	}
	row := func(f cubekit.Face, start int) string {
		return sticker(f, start) + sticker(f, start+1) + sticker(f, start+2)
	}

	pad := strings.Repeat(" ", 9)
	for _, start := range []int{0, 3, 6} {
		b.WriteString(pad + row(cubekit.FaceU, start) + "\n")
	}
	for _, start := range []int{0, 3, 6} {
		b.WriteString(row(cubekit.FaceL, start) + row(cubekit.FaceF, start) +
			row(cubekit.FaceR, start) + row(cubekit.FaceB, start) + "\n")
	}
	for _, start := range []int{0, 3, 6} {
		b.WriteString(pad + row(cubekit.FaceD, start) + "\n")
	}

	return b.String()
}
