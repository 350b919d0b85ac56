package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ---------- tint ----------

type tintMode int

const (
	tintOff tintMode = iota
	tintGreen
	tintAmber
	tintWhite
)

func (t tintMode) String() string {
	switch t {
	case tintGreen:
		return "Green"
	case tintAmber:
		return "Amber"
	case tintWhite:
		return "Paperwhite"
	default:
		return "Off"
	}
}

func (t tintMode) next() tintMode {
	if t >= tintWhite {
		return tintOff
	}
	return t + 1
}

func parseTint(s string) (tintMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "":
		return tintOff, nil
	case "green":
		return tintGreen, nil
	case "amber":
		return tintAmber, nil
	case "white", "paperwhite":
		return tintWhite, nil
	default:
		return tintOff, fmt.Errorf("invalid tint: %q (use off|green|amber|white)", s)
	}
}

// lipgloss downsamples these for 256 and 16 colour terminals.
func (t tintMode) color() (lipgloss.Color, bool) {
	switch t {
	case tintGreen:
		return lipgloss.Color("#00FF80"), true
	case tintAmber:
		return lipgloss.Color("#FFB000"), true
	case tintWhite:
		return lipgloss.Color("#E6E6E6"), true
	}
	return "", false
}

// ---------- palette ----------

type palette struct {
	base  lipgloss.Style // background fill
	live  lipgloss.Style // lit segments
	ghost lipgloss.Style // unpowered segments
	muted lipgloss.Style // header and footer chrome

	scanlines bool
}

func newPalette(dark bool, tint tintMode, scanlines bool) palette {
	fg, bg := lipgloss.Color("#000000"), lipgloss.Color("#FFFFFF")
	ghost, muted := lipgloss.Color("#E4E4E4"), lipgloss.Color("#8A8A8A")
	if dark {
		fg, bg = lipgloss.Color("#FFFFFF"), lipgloss.Color("#000000")
		ghost, muted = lipgloss.Color("#1C1C1C"), lipgloss.Color("#6C6C6C")
	}
	if c, ok := tint.color(); ok {
		fg = c
	}

	base := lipgloss.NewStyle().Background(bg)
	return palette{
		base:      base,
		live:      base.Foreground(fg),
		ghost:     base.Foreground(ghost),
		muted:     base.Foreground(muted),
		scanlines: scanlines,
	}
}

// liveRow dims every other row when scanlines are on.
func (p palette) liveRow(row int) lipgloss.Style {
	if p.scanlines && row%2 == 1 {
		return p.live.Faint(true)
	}
	return p.live
}

// colorCaps reports the terminal colour depth for the header badge.
func colorCaps() string {
	switch termenv.EnvColorProfile() {
	case termenv.TrueColor:
		return "TC"
	case termenv.ANSI256:
		return "256"
	case termenv.ANSI:
		return "16"
	default:
		return "mono"
	}
}
