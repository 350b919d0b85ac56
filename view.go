package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m model) View() string {
	w := m.width
	if w <= 0 {
		w = 80
	}
	bodyHeight := m.bodyHeight()

	var body string
	switch m.pager.current() {
	case helpScreen:
		body = m.view.View()
	default:
		body = m.clockView()
	}
	body = lipgloss.Place(w, bodyHeight, lipgloss.Center, lipgloss.Center, body,
		lipgloss.WithWhitespaceBackground(m.pal.base.GetBackground()))
	// Place only pads; a face larger than the window is cut to it.
	body = lipgloss.NewStyle().MaxWidth(w).MaxHeight(bodyHeight).Render(body)

	if !m.showChrome() {
		return body
	}
	return m.header(w) + "\n" + body + "\n" + m.footerLine(w)
}

func (m model) clockView() string {
	r := m.reading
	face := renderSegments(r.Time, r.GhostTime, m.scale, m.pal)

	if !m.flags.Is24Hour {
		am, pm := r.MeridiemSlots()
		slots := lipgloss.JoinVertical(lipgloss.Left,
			overlayText(am, r.GhostMeridiem, m.pal),
			overlayText(pm, r.GhostMeridiem, m.pal),
		)
		face = lipgloss.JoinHorizontal(lipgloss.Top, face, m.pal.base.Render("  "), slots)
	}

	if m.flags.ShowDayMonth {
		date := overlayText(r.Date, r.GhostDate, m.pal)
		face = lipgloss.JoinVertical(lipgloss.Center, face, "", date)
	}
	return face
}

func (m model) header(w int) string {
	badges := []string{}
	if m.flags.DarkMode {
		badges = append(badges, "Dark")
	}
	if m.flags.Is24Hour {
		badges = append(badges, "24h")
	}
	if m.tint != tintOff {
		badges = append(badges, "Tint:"+m.tint.String())
	}
	if m.scanlines {
		badges = append(badges, "Scanlines")
	}
	left := "segclock"
	if len(badges) > 0 {
		left += "  [" + strings.Join(badges, " | ") + "]"
	}
	right := fmt.Sprintf("%s %d/%d [%s]", m.pager.current(), m.pager.index+1, m.pager.count, m.caps)

	available := max(1, w-ansi.StringWidth(right)-1)
	left = ansi.Truncate(left, available, "")
	line := fmt.Sprintf("%-*s %s", available, left, right)
	return m.pal.muted.Render(ansi.Truncate(line, w, ""))
}

func (m model) footerLine(w int) string {
	return m.pal.muted.Render(ansi.Truncate(m.footer.View(m.keys), w, ""))
}
