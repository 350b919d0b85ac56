package main

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// markPalette draws ghost cells as '.' so the two layers can be told apart
// without colour.
func markPalette(t *testing.T) palette {
	t.Helper()
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })

	plain := lipgloss.NewStyle()
	return palette{
		base:  plain,
		live:  plain,
		ghost: plain.Transform(func(s string) string { return strings.Repeat(".", len([]rune(s))) }),
		muted: plain,
	}
}

func TestSegmentMasks_CoverDisplayGlyphs(t *testing.T) {
	for _, r := range "0123456789AP~! " {
		_, ok := segmentMasks[r]
		assert.True(t, ok, "missing mask for %q", r)
	}
	assert.Equal(t, segAll, segmentMasks['8'])
	assert.Equal(t, segmentMasks['8'], segmentMasks[ghostGlyph])
	assert.Zero(t, segmentMasks[fillerGlyph])
}

func TestRenderSegments_Dimensions(t *testing.T) {
	pal := markPalette(t)
	for n := minScale; n <= maxScale; n++ {
		out := renderSegments("12:34", ghostTime, n, pal)
		lines := strings.Split(out, "\n")
		require.Len(t, lines, 2*n+1, "scale %d", n)
		want := 4*(n+2) + 1 + 4 // four digits, colon, gaps
		for i, line := range lines {
			assert.Equal(t, want, ansi.StringWidth(line), "scale %d row %d", n, i)
		}
	}
}

func TestRenderSegments_LiveOverGhost(t *testing.T) {
	pal := markPalette(t)

	assert.Equal(t, " _ \n|_|\n|_|", renderSegments("8", "~", 1, pal))
	assert.Equal(t, " . \n..|\n..|", renderSegments("1", "~", 1, pal))
	assert.Equal(t, " . \n...\n...", renderSegments("!", "~", 1, pal))
	assert.Equal(t, "   \n   \n   ", renderSegments("!", "!", 1, pal))
}

func TestRenderSegments_Colon(t *testing.T) {
	pal := markPalette(t)

	assert.Equal(t, " \n•\n•", renderSegments(":", ":", 1, pal))
	assert.Equal(t, " \n.\n.", renderSegments(" ", ":", 1, pal))
}

func TestRenderSegments_ClampsScale(t *testing.T) {
	pal := markPalette(t)
	assert.Equal(t, renderSegments("8", "~", minScale, pal), renderSegments("8", "~", 0, pal))
	assert.Equal(t, renderSegments("8", "~", maxScale, pal), renderSegments("8", "~", 99, pal))
}

func TestOverlayText(t *testing.T) {
	pal := markPalette(t)

	assert.Equal(t, "AM", overlayText("AM", ghostMeridiem, pal))
	assert.Equal(t, "..", overlayText("!!", ghostMeridiem, pal))
	assert.Equal(t, "Thu,.Oct.15", overlayText("Thu,!Oct!15", "~~~~~~~~~~~", pal))
}

func TestPalette_ScanlinesDimOddRows(t *testing.T) {
	p := newPalette(true, tintOff, true)
	assert.False(t, p.liveRow(0).GetFaint())
	assert.True(t, p.liveRow(1).GetFaint())

	p = newPalette(true, tintOff, false)
	assert.False(t, p.liveRow(1).GetFaint())
}

func TestPalette_TintOverridesForeground(t *testing.T) {
	p := newPalette(false, tintAmber, false)
	assert.Equal(t, lipgloss.Color("#FFB000"), p.live.GetForeground())

	p = newPalette(true, tintOff, false)
	assert.Equal(t, lipgloss.Color("#FFFFFF"), p.live.GetForeground())
	assert.Equal(t, lipgloss.Color("#000000"), p.base.GetBackground())
}

func TestParseTint(t *testing.T) {
	for in, want := range map[string]tintMode{"": tintOff, "Green": tintGreen, "amber": tintAmber, "paperwhite": tintWhite} {
		got, err := parseTint(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := parseTint("purple")
	assert.Error(t, err)

	assert.Equal(t, tintOff, tintWhite.next())
	assert.Equal(t, tintGreen, tintOff.next())
}
