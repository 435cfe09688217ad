package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/chris-regnier/moodmemo/internal/calendar"
	"github.com/chris-regnier/moodmemo/internal/chart"
	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/query"
)

// EntriesChangedMsg tells the browser to reload from its source, for
// example after a change arrives on the realtime feed.
type EntriesChangedMsg struct{}

// TUIConfig holds the settings the browser needs from the app config.
type TUIConfig struct {
	MaxWidth int
	Theme    Theme
	Now      func() time.Time
}

type browserMode int

const (
	modeCalendar browserMode = iota
	modeChart
)

// entryItem adapts an entry for the day list.
type entryItem struct{ e entry.Entry }

func (i entryItem) Title() string {
	return fmt.Sprintf("%s  %s %s", i.e.Time, i.e.Mood.Label(), i.e.ID)
}
func (i entryItem) Description() string { return i.e.Preview(previewWidth) }
func (i entryItem) FilterValue() string { return i.e.Text }

type browserModel struct {
	src      query.Source
	cfg      TUIConfig
	mode     browserMode
	rng      query.RangeKind
	year     int
	month    int
	selected time.Time
	entries  []entry.Entry
	cells    []calendar.Cell
	day      list.Model
	width    int
	height   int
}

func newBrowserModel(src query.Source, cfg TUIConfig) browserModel {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	today := dateutil.Normalize(cfg.Now())
	m := browserModel{
		src:      src,
		cfg:      cfg,
		rng:      query.Week,
		selected: today,
		day:      cfg.Theme.NewList(nil, 40, 8),
	}
	m.day.SetShowHelp(false)
	m.day.SetShowStatusBar(false)
	m.day.SetFilteringEnabled(false)
	m.reload()
	return m
}

// reload re-reads the source and rebuilds the grid for the selected month.
func (m *browserModel) reload() {
	m.entries = m.src.GetAll()
	m.rebuild()
}

func (m *browserModel) rebuild() {
	m.year, m.month = m.selected.Year(), int(m.selected.Month())-1
	m.cells = calendar.Build(m.year, m.month, m.entries, m.cfg.Now())

	key := dateutil.FormatDate(m.selected)
	dayEntries := query.FilterByDate(m.entries, key)
	items := make([]list.Item, len(dayEntries))
	for i, e := range dayEntries {
		items[i] = entryItem{e}
	}
	m.day.SetItems(items)
	m.day.Title = m.selected.Format("Monday, January 2 2006")
}

func (m *browserModel) move(days int) {
	m.selected = m.selected.AddDate(0, 0, days)
	m.rebuild()
}

func (m *browserModel) moveMonth(n int) {
	m.selected = query.Shift(query.Month, m.selected, n)
	m.rebuild()
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EntriesChangedMsg:
		m.reload()
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.day.SetSize(min(m.contentWidth(), 7*cellWidth), max(msg.Height-14, 4))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "c":
			if m.mode == modeChart {
				m.mode = modeCalendar
			} else {
				m.mode = modeChart
			}
		case "w":
			m.rng = query.Week
		case "m":
			m.rng = query.Month
		case "left", "h":
			m.move(-1)
		case "right", "l":
			m.move(1)
		case "up", "k":
			m.move(-7)
		case "down", "j":
			m.move(7)
		case "n", "pgdown":
			m.moveMonth(1)
		case "p", "pgup":
			m.moveMonth(-1)
		case "]":
			m.selected = query.Shift(m.rng, m.selected, 1)
			m.rebuild()
		case "[":
			m.selected = query.Shift(m.rng, m.selected, -1)
			m.rebuild()
		case "t":
			m.selected = dateutil.Normalize(m.cfg.Now())
			m.rebuild()
		}
	}
	return m, nil
}

func (m browserModel) contentWidth() int {
	if m.cfg.MaxWidth > 0 && m.width > m.cfg.MaxWidth {
		return m.cfg.MaxWidth
	}
	return m.width
}

func (m browserModel) View() string {
	theme := m.cfg.Theme
	var b strings.Builder
	switch m.mode {
	case modeChart:
		start, end := query.Window(m.rng, m.selected)
		points := chart.Build(query.FilterByRange(m.entries, start, end))
		b.WriteString(theme.HeaderStyle().Render(fmt.Sprintf("%s to %s", dateutil.FormatDate(start), dateutil.FormatDate(end))))
		b.WriteString("\n\n")
		FormatChart(&b, points, theme)
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle().Render("w week • m month • [/] prev/next • c calendar • q quit"))
	default:
		b.WriteString(RenderCalendar(m.year, m.month, m.cells, theme, dateutil.FormatDate(m.selected)))
		b.WriteString("\n\n")
		b.WriteString(Legend(theme))
		b.WriteString("\n\n")
		b.WriteString(theme.BorderStyle().Render(m.day.View()))
		b.WriteString("\n")
		b.WriteString(theme.HelpStyle().Render("←/→/↑/↓ day • n/p month • t today • c chart • q quit"))
	}
	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return theme.PaintScreen(b.String(), m.width, m.height, m.contentWidth())
}

// Browser is a running calendar browser. Notify is safe to call from other
// goroutines while Run is in progress.
type Browser struct {
	program *tea.Program
}

// NewBrowser builds the full-screen month calendar over src.
func NewBrowser(src query.Source, cfg TUIConfig, opts ...tea.ProgramOption) *Browser {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return &Browser{program: tea.NewProgram(newBrowserModel(src, cfg), opts...)}
}

// Run blocks until the user quits.
func (b *Browser) Run() error {
	_, err := b.program.Run()
	return err
}

// Notify asks the browser to reload its entries.
func (b *Browser) Notify() {
	b.program.Send(EntriesChangedMsg{})
}
