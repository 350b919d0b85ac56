package main

import (
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

// Glyphs understood by the segment font. The filler is a full-width blank
// (no segments lit); the ghost glyph lights every segment.
const (
	fillerGlyph = '!'
	ghostGlyph  = '~'

	ghostTime     = "~~:~~"
	ghostMeridiem = "~~"

	dateLayout = "Mon, Jan 2"
)

// DisplayFlags are owned by the UI shell and may change between ticks.
type DisplayFlags struct {
	Is24Hour     bool
	ShowDayMonth bool
	DarkMode     bool
}

// Reading is everything the display needs for one tick.
type Reading struct {
	Hours   int // 0-23
	Minutes int // 0-59

	DisplayHours string
	Separator    rune
	MinutesStr   string
	Time         string // DisplayHours + Separator + MinutesStr, 5 runes

	Meridiem string // "AM" or "PM", computed in 24h mode too
	Date     string // "Thu,!Oct!15"

	GhostTime     string
	GhostMeridiem string
	GhostDate     string
}

// Format builds the reading for now. blink selects ':' over ' ' and is
// flipped by the caller once per tick.
func Format(now time.Time, flags DisplayFlags, blink bool) Reading {
	r := FormatClock(now.Hour(), now.Minute(), flags, blink)
	r.Date = strings.ReplaceAll(now.Format(dateLayout), " ", string(fillerGlyph))
	r.GhostDate = strings.Repeat(string(ghostGlyph), utf8.RuneCountInString(r.Date))
	return r
}

// FormatClock formats raw hour and minute values. Values outside 0-23 and
// 0-59 wrap around instead of producing a malformed readout. The date fields
// are left empty.
func FormatClock(h, m int, flags DisplayFlags, blink bool) Reading {
	h = wrap(h, 24)
	m = wrap(m, 60)

	var hours string
	if flags.Is24Hour {
		hours = padLeft(strconv.Itoa(h), 2, '0')
	} else {
		h12 := h % 12
		if h12 == 0 {
			h12 = 12
		}
		hours = padLeft(strconv.Itoa(h12), 2, fillerGlyph)
	}

	sep := ' '
	if blink {
		sep = ':'
	}
	mins := padLeft(strconv.Itoa(m), 2, '0')

	meridiem := "PM"
	if h < 12 {
		meridiem = "AM"
	}

	return Reading{
		Hours:         h,
		Minutes:       m,
		DisplayHours:  hours,
		Separator:     sep,
		MinutesStr:    mins,
		Time:          hours + string(sep) + mins,
		Meridiem:      meridiem,
		GhostTime:     ghostTime,
		GhostMeridiem: ghostMeridiem,
	}
}

// MeridiemSlots returns the AM row and the PM row. The inactive row is all
// filler so its ghost still shows.
func (r Reading) MeridiemSlots() (am, pm string) {
	blank := strings.Repeat(string(fillerGlyph), 2)
	am, pm = blank, blank
	if r.Meridiem == "AM" {
		am = "AM"
	} else {
		pm = "PM"
	}
	return am, pm
}

// Plain renders the reading as ordinary text, filler glyphs become spaces.
func (r Reading) Plain(flags DisplayFlags) string {
	var b strings.Builder
	b.WriteString(r.Time)
	if !flags.Is24Hour {
		b.WriteByte(' ')
		b.WriteString(r.Meridiem)
	}
	if flags.ShowDayMonth && r.Date != "" {
		b.WriteString("  ")
		b.WriteString(r.Date)
	}
	return strings.ReplaceAll(b.String(), string(fillerGlyph), " ")
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

func padLeft(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(string(pad), width-n) + s
}
