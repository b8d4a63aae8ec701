// Package render turns quantized level grids into terminal output. It owns
// all character and color mapping; the signal pipeline only knows about
// level indices.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Levels is the number of discrete cell levels a renderer must support,
// ordered quietest to loudest.
const Levels = 3

// Palette names accepted by NewTermRenderer.
const (
	PaletteEmoji  = "emoji"
	PaletteBlocks = "blocks"
)

// clearScreen moves the cursor home after clearing so each frame redraws in
// place instead of scrolling.
const clearScreen = "\x1b[2J\x1b[H"

var blockStyles = [Levels]lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
}

var emojiCells = [Levels]string{"⬛", "🟨", "🟩"}

// Renderer consumes one quantized grid per capture cycle. Each cell value
// must be in [0, Levels).
type Renderer interface {
	Render(grid [][]int) error
}

// TermRenderer draws the grid to a terminal, clearing the screen before each
// frame. The emoji palette reproduces the Wordle-share look; the blocks
// palette uses lipgloss-colored block characters for terminals without
// emoji-capable fonts.
type TermRenderer struct {
	out   io.Writer
	cells [Levels]string
}

// NewTermRenderer creates a renderer writing to out using the named palette.
func NewTermRenderer(out io.Writer, palette string) (*TermRenderer, error) {
	r := &TermRenderer{out: out}

	switch palette {
	case "", PaletteEmoji:
		r.cells = emojiCells
	case PaletteBlocks:
		for i, style := range blockStyles {
			r.cells[i] = style.Render("██")
		}
	default:
		return nil, fmt.Errorf("unknown palette %q", palette)
	}

	return r, nil
}

// Render clears the screen and prints one cell per grid entry, row by row.
func (r *TermRenderer) Render(grid [][]int) error {
	var b strings.Builder
	b.WriteString(clearScreen)

	for _, row := range grid {
		// Indent so the grid sits away from the terminal edge.
		b.WriteString("\n\t\t")
		for _, level := range row {
			if level < 0 || level >= Levels {
				return fmt.Errorf("cell level %d outside [0, %d)", level, Levels)
			}
			b.WriteString(r.cells[level])
		}
	}
	b.WriteString("\n\n\n")

	_, err := io.WriteString(r.out, b.String())
	return err
}
