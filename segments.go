package main

import (
	"strings"
)

const (
	minScale = 1
	maxScale = 4
)

// Segment bits, named the usual way:
//
//	 aaa
//	f   b
//	 ggg
//	e   c
//	 ddd
const (
	segA = 1 << iota
	segB
	segC
	segD
	segE
	segF
	segG

	segAll = segA | segB | segC | segD | segE | segF | segG
)

var segmentMasks = map[rune]int{
	'0': segA | segB | segC | segD | segE | segF,
	'1': segB | segC,
	'2': segA | segB | segD | segE | segG,
	'3': segA | segB | segC | segD | segG,
	'4': segB | segC | segF | segG,
	'5': segA | segC | segD | segF | segG,
	'6': segA | segC | segD | segE | segF | segG,
	'7': segA | segB | segC,
	'8': segAll,
	'9': segA | segB | segC | segD | segF | segG,
	'A': segA | segB | segC | segE | segF | segG,
	'P': segA | segB | segE | segF | segG,
	'-': segG,

	ghostGlyph:  segAll,
	fillerGlyph: 0,
	' ':         0,
}

func clampScale(n int) int {
	if n < minScale {
		return minScale
	}
	if n > maxScale {
		return maxScale
	}
	return n
}

// segmentAt maps a cell of an n-scaled glyph (2n+1 rows, n+2 columns) to the
// segment drawn there.
func segmentAt(row, col, n int) (int, rune) {
	right := n + 1
	inner := col >= 1 && col <= n
	switch {
	case row == 0:
		if inner {
			return segA, '_'
		}
	case row <= n:
		switch {
		case col == 0:
			return segF, '|'
		case col == right:
			return segB, '|'
		case row == n && inner:
			return segG, '_'
		}
	default:
		switch {
		case col == 0:
			return segE, '|'
		case col == right:
			return segC, '|'
		case row == 2*n && inner:
			return segD, '_'
		}
	}
	return 0, ' '
}

func colonDot(row, n int) bool {
	half := (n + 1) / 2
	return row == half || row == n+half
}

// renderSegments draws live over ghost. A cell lit by the live glyph uses the
// live style; a cell lit only by the ghost glyph uses the ghost style. A ':'
// in the ghost marks a colon column.
func renderSegments(live, ghost string, scale int, pal palette) string {
	n := clampScale(scale)
	lr, gr := []rune(live), []rune(ghost)
	cols := max(len(lr), len(gr))
	height := 2*n + 1

	rows := make([]strings.Builder, height)
	for i := 0; i < cols; i++ {
		l, g := runeAt(lr, i), runeAt(gr, i)
		for row := 0; row < height; row++ {
			b := &rows[row]
			if i > 0 {
				b.WriteString(pal.base.Render(" "))
			}
			if g == ':' || l == ':' {
				b.WriteString(colonCell(row, n, l == ':', g == ':', pal))
				continue
			}
			lm, gm := segmentMasks[l], segmentMasks[g]
			for col := 0; col < n+2; col++ {
				seg, ch := segmentAt(row, col, n)
				switch {
				case seg != 0 && lm&seg != 0:
					b.WriteString(pal.liveRow(row).Render(string(ch)))
				case seg != 0 && gm&seg != 0:
					b.WriteString(pal.ghost.Render(string(ch)))
				default:
					b.WriteString(pal.base.Render(" "))
				}
			}
		}
	}

	lines := make([]string, height)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

func colonCell(row, n int, lit, ghosted bool, pal palette) string {
	if !colonDot(row, n) {
		return pal.base.Render(" ")
	}
	switch {
	case lit:
		return pal.liveRow(row).Render("•")
	case ghosted:
		return pal.ghost.Render("•")
	}
	return pal.base.Render(" ")
}

// overlayText is the single-row version used for the meridiem and the date.
// Filler and blank positions show the ghost cell.
func overlayText(live, ghost string, pal palette) string {
	lr, gr := []rune(live), []rune(ghost)
	var b strings.Builder
	for i := 0; i < max(len(lr), len(gr)); i++ {
		l, g := runeAt(lr, i), runeAt(gr, i)
		switch {
		case l != fillerGlyph && l != ' ':
			b.WriteString(pal.live.Render(string(l)))
		case g == ghostGlyph:
			b.WriteString(pal.ghost.Render("▒"))
		case g != fillerGlyph && g != ' ':
			b.WriteString(pal.ghost.Render(string(g)))
		default:
			b.WriteString(pal.base.Render(" "))
		}
	}
	return b.String()
}

func runeAt(rs []rune, i int) rune {
	if i < len(rs) {
		return rs[i]
	}
	return fillerGlyph
}
