package main

import (
	"github.com/charmbracelet/glamour"
)

// ---------- pager ----------

type screen int

const (
	clockScreen screen = iota
	helpScreen

	screenCount = 2
)

func (s screen) String() string {
	switch s {
	case helpScreen:
		return "Help"
	default:
		return "Clock"
	}
}

// pager walks the screens in a ring.
type pager struct {
	index int
	count int
}

func newPager(count int) pager {
	return pager{count: max(1, count)}
}

func (p pager) current() screen { return screen(p.index) }

func (p pager) next() pager {
	p.index++
	if p.index > p.count-1 {
		p.index = 0
	}
	return p
}

func (p pager) prev() pager {
	p.index--
	if p.index < 0 {
		p.index = p.count - 1
	}
	return p
}

// swipe moves by gesture direction: content dragged left (dx < 0) reveals
// the next screen, dragged right the previous one.
func (p pager) swipe(dx int) pager {
	switch {
	case dx < 0:
		return p.next()
	case dx > 0:
		return p.prev()
	}
	return p
}

// ---------- help screen ----------

const helpMarkdown = `# segclock

A seven-segment clock. Faint segments are the unpowered part of the display.

## Keys

| Key | Action |
|-----|--------|
| d | toggle dark mode |
| t | toggle 24-hour time |
| y | toggle the date line |
| + / - | grow or shrink the digits |
| m | cycle tint: off, green, amber, paperwhite |
| s | toggle scanlines |
| ← / → | previous or next screen (also horizontal scroll) |
| q | quit |

## Environment

` + "`SEGCLOCK_24H`, `SEGCLOCK_DATE`, `SEGCLOCK_DARK`, `SEGCLOCK_SCALE`, `SEGCLOCK_TINT`, `SEGCLOCK_SCANLINES`, `SEGCLOCK_PLAIN` and `SEGCLOCK_LOG`" + ` set the defaults. A ` + "`.env`" + ` file in the working directory is read first.
`

func renderMarkdown(raw string, width int, dark bool) (string, error) {
	style := "light"
	if dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return r.Render(raw)
}
