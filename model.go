package main

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
)

// ---------- keys ----------

type keyMap struct {
	Dark      key.Binding
	Hour24    key.Binding
	Date      key.Binding
	Bigger    key.Binding
	Smaller   key.Binding
	Tint      key.Binding
	Scanlines key.Binding
	Prev      key.Binding
	Next      key.Binding
	Quit      key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Dark:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "dark")),
		Hour24:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "24h")),
		Date:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "date")),
		Bigger:    key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "bigger")),
		Smaller:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "smaller")),
		Tint:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "tint")),
		Scanlines: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "scanlines")),
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next")),
		Quit:      key.NewBinding(key.WithKeys("q", "Q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Dark, k.Hour24, k.Date, k.Bigger, k.Smaller, k.Tint, k.Prev, k.Next, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Dark, k.Hour24, k.Date},
		{k.Bigger, k.Smaller, k.Tint, k.Scanlines},
		{k.Prev, k.Next, k.Quit},
	}
}

// ---------- model ----------

type tickMsg time.Time

// clockTick fires on the next whole second.
func clockTick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

type model struct {
	flags   DisplayFlags
	blink   bool
	reading Reading
	clock   clockwork.Clock

	scale     int
	tint      tintMode
	scanlines bool
	pal       palette

	pager  pager
	view   viewport.Model // help screen
	keys   keyMap
	footer help.Model

	// help screen renderer; a failure only affects that screen
	markdown func(raw string, width int, dark bool) (string, error)
	helpErr  error

	width  int
	height int
	caps   string
}

func initialModel(cfg Config, clock clockwork.Clock) model {
	tint, _ := parseTint(cfg.Tint)
	m := model{
		flags:     cfg.displayFlags(),
		blink:     true,
		clock:     clock,
		scale:     clampScale(cfg.Scale),
		tint:      tint,
		scanlines: cfg.Scanlines,
		pager:     newPager(screenCount),
		view:      viewport.New(0, 0),
		keys:      defaultKeys(),
		footer:    help.New(),
		width:     80,
		height:    24,
		caps:      colorCaps(),
		markdown:  renderMarkdown,
	}
	m.restyle()
	m.reading = Format(m.clock.Now(), m.flags, m.blink)
	return m
}

func (m model) Init() tea.Cmd {
	return clockTick()
}

// reformat applies changed flags right away without touching the blink.
func (m *model) reformat() {
	m.reading = Format(m.clock.Now(), m.flags, m.blink)
}

func (m *model) restyle() {
	m.pal = newPalette(m.flags.DarkMode, m.tint, m.scanlines)
}

func (m *model) resize(width, height int) {
	m.width, m.height = width, height
	m.view.Width = width
	m.view.Height = m.bodyHeight()
	m.footer.Width = width
	m.renderHelp()
}

func (m *model) renderHelp() {
	out, err := m.markdown(helpMarkdown, max(20, m.width-2), m.flags.DarkMode)
	if err != nil {
		log.Printf("render help: %v", err)
		m.helpErr = err
		m.view.SetContent(fmt.Sprintf("error: %v", err))
		return
	}
	m.helpErr = nil
	m.view.SetContent(out)
}

// showChrome reports whether the header and footer fit around the body.
func (m model) showChrome() bool {
	return m.height >= 3
}

func (m model) bodyHeight() int {
	if m.showChrome() {
		return m.height - 2
	}
	return max(1, m.height)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tickMsg:
		m.blink = !m.blink
		m.reading = Format(time.Time(msg), m.flags, m.blink)
		return m, clockTick()

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		switch msg.Button {
		case tea.MouseButtonWheelRight:
			m.pager = m.pager.swipe(-1)
			return m, nil
		case tea.MouseButtonWheelLeft:
			m.pager = m.pager.swipe(1)
			return m, nil
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.pager = m.pager.next()
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.pager = m.pager.prev()
			return m, nil
		case key.Matches(msg, m.keys.Dark):
			m.flags.DarkMode = !m.flags.DarkMode
			log.Printf("dark mode: %v", m.flags.DarkMode)
			m.restyle()
			m.renderHelp()
			return m, nil
		case key.Matches(msg, m.keys.Hour24):
			m.flags.Is24Hour = !m.flags.Is24Hour
			log.Printf("24-hour: %v", m.flags.Is24Hour)
			m.reformat()
			return m, nil
		case key.Matches(msg, m.keys.Date):
			m.flags.ShowDayMonth = !m.flags.ShowDayMonth
			m.reformat()
			return m, nil
		case key.Matches(msg, m.keys.Bigger):
			m.scale = clampScale(m.scale + 1)
			return m, nil
		case key.Matches(msg, m.keys.Smaller):
			m.scale = clampScale(m.scale - 1)
			return m, nil
		case key.Matches(msg, m.keys.Tint):
			m.tint = m.tint.next()
			m.restyle()
			return m, nil
		case key.Matches(msg, m.keys.Scanlines):
			m.scanlines = !m.scanlines
			m.restyle()
			return m, nil
		}
	}

	if m.pager.current() != helpScreen {
		return m, nil
	}
	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}
