package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTermRendererRejectsUnknownPalette(t *testing.T) {
	_, err := NewTermRenderer(&bytes.Buffer{}, "sepia")
	assert.Error(t, err)
}

func TestTermRendererEmojiPalette(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewTermRenderer(&buf, PaletteEmoji)
	require.NoError(t, err)

	require.NoError(t, r.Render([][]int{{0, 1, 2}}))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, clearScreen), "frame must start by clearing the screen")
	assert.Contains(t, out, "⬛🟨🟩")
}

func TestTermRendererDefaultsToEmoji(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewTermRenderer(&buf, "")
	require.NoError(t, err)

	require.NoError(t, r.Render([][]int{{2}}))
	assert.Contains(t, buf.String(), "🟩")
}

func TestTermRendererBlocksPalette(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewTermRenderer(&buf, PaletteBlocks)
	require.NoError(t, err)

	require.NoError(t, r.Render([][]int{{0, 1, 2}, {2, 2, 2}}))
	assert.Contains(t, buf.String(), "██")
}

func TestTermRendererRendersOneRowPerGridRow(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewTermRenderer(&buf, PaletteEmoji)
	require.NoError(t, err)

	grid := [][]int{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
	}
	require.NoError(t, r.Render(grid))

	assert.Equal(t, 3, strings.Count(buf.String(), "\n\t\t"))
}

func TestTermRendererRejectsOutOfRangeLevels(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewTermRenderer(&buf, PaletteEmoji)
	require.NoError(t, err)

	assert.Error(t, r.Render([][]int{{3}}))
	assert.Error(t, r.Render([][]int{{-1}}))
}
