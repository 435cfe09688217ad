package ui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"

	"github.com/chris-regnier/moodmemo/internal/config"
	"github.com/chris-regnier/moodmemo/internal/mood"
)

// Theme holds resolved lipgloss colors for terminal rendering.
type Theme struct {
	Primary       lipgloss.Color
	Secondary     lipgloss.Color
	Accent        lipgloss.Color
	Muted         lipgloss.Color
	Danger        lipgloss.Color
	Background    lipgloss.Color
	MarkdownStyle string
}

const defaultPreset = "default-dark"

var presets = map[string]Theme{
	"default-dark": {
		Primary:       lipgloss.Color("15"),
		Secondary:     lipgloss.Color("243"),
		Accent:        lipgloss.Color("33"),
		Muted:         lipgloss.Color("241"),
		Danger:        lipgloss.Color("9"),
		Background:    lipgloss.Color("235"),
		MarkdownStyle: "dark",
	},
	"default-light": {
		Primary:       lipgloss.Color("0"),
		Secondary:     lipgloss.Color("240"),
		Accent:        lipgloss.Color("27"),
		Muted:         lipgloss.Color("245"),
		Danger:        lipgloss.Color("1"),
		Background:    lipgloss.Color("254"),
		MarkdownStyle: "light",
	},
	// Pastel preset built around the mood palette.
	"pastel": {
		Primary:       lipgloss.Color("#403E43"),
		Secondary:     lipgloss.Color("#8E9196"),
		Accent:        lipgloss.Color("#9b87f5"),
		Muted:         lipgloss.Color("#C8C8C9"),
		Danger:        lipgloss.Color("#ea384c"),
		Background:    lipgloss.Color("#FFFFFF"),
		MarkdownStyle: "light",
	},
	"dracula": {
		Primary:       lipgloss.Color("#F8F8F2"),
		Secondary:     lipgloss.Color("#6272A4"),
		Accent:        lipgloss.Color("#BD93F9"),
		Muted:         lipgloss.Color("#6272A4"),
		Danger:        lipgloss.Color("#FF5555"),
		Background:    lipgloss.Color("#282A36"),
		MarkdownStyle: "dark",
	},
	// Dark counterpart of pastel.
	"dusk": {
		Primary:       lipgloss.Color("#F1F0FB"),
		Secondary:     lipgloss.Color("#7E69AB"),
		Accent:        lipgloss.Color("#D6BCFA"),
		Muted:         lipgloss.Color("#8A898C"),
		Danger:        lipgloss.Color("#ea384c"),
		Background:    lipgloss.Color("#1A1F2C"),
		MarkdownStyle: "dark",
	},
}

// PresetNames lists the built-in themes in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveTheme starts from the configured preset (default-dark when unknown)
// and applies any explicit color overrides.
func ResolveTheme(cfg config.ThemeConfig) Theme {
	theme, ok := presets[cfg.Preset]
	if !ok {
		theme = presets[defaultPreset]
	}

	override := func(dst *lipgloss.Color, v string) {
		if v != "" {
			*dst = lipgloss.Color(v)
		}
	}
	override(&theme.Primary, cfg.Primary)
	override(&theme.Secondary, cfg.Secondary)
	override(&theme.Accent, cfg.Accent)
	override(&theme.Muted, cfg.Muted)
	override(&theme.Danger, cfg.Danger)
	override(&theme.Background, cfg.Background)
	if cfg.MarkdownStyle != "" {
		theme.MarkdownStyle = cfg.MarkdownStyle
	}
	return theme
}

// HelpStyle is used for footers and key hints.
func (t Theme) HelpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Background(t.Background)
}

// HeaderStyle is used for titles such as the month name.
func (t Theme) HeaderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Background(t.Background)
}

func (t Theme) AccentStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Accent).Background(t.Background)
}

func (t Theme) DangerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Danger).Background(t.Background)
}

func (t Theme) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Secondary).
		BorderBackground(t.Background).
		Background(t.Background).
		Foreground(t.Primary)
}

// MoodStyle paints a marker in the mood's palette color. Unknown moods get
// the neutral color.
func (t Theme) MoodStyle(m mood.Mood) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(m.Color())).Background(t.Background)
}

// DayStyle styles a calendar day number: accented and bold for today,
// muted outside the navigated month.
func (t Theme) DayStyle(inMonth, today, selected bool) lipgloss.Style {
	s := lipgloss.NewStyle().Background(t.Background).Foreground(t.Primary)
	switch {
	case today:
		s = s.Foreground(t.Accent).Bold(true)
	case !inMonth:
		s = s.Foreground(t.Muted)
	}
	if selected {
		s = s.Reverse(true)
	}
	return s
}

// bgEscapeCode is the raw ANSI sequence that sets the theme background, for
// use alongside \x1b[K.
func (t Theme) bgEscapeCode() string {
	s := string(t.Background)
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		var r, g, b int
		fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
		return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", r, g, b)
	}
	return "\x1b[48;5;" + s + "m"
}

// PaintScreen pads every line to termWidth, centering content narrower than
// the terminal, and fills to termHeight with background-colored lines.
func (t Theme) PaintScreen(content string, termWidth, termHeight, contentWidth int) string {
	bgPad := lipgloss.NewStyle().Background(t.Background)
	clearEOL := t.bgEscapeCode() + "\x1b[K"

	leftPad := 0
	if contentWidth > 0 && contentWidth < termWidth {
		leftPad = (termWidth - contentWidth) / 2
	}
	leftStr := ""
	if leftPad > 0 {
		leftStr = bgPad.Render(strings.Repeat(" ", leftPad))
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		rightPad := max(termWidth-leftPad-lipgloss.Width(line), 0)
		var b strings.Builder
		b.WriteString(leftStr)
		b.WriteString(line)
		if rightPad > 0 {
			b.WriteString(bgPad.Render(strings.Repeat(" ", rightPad)))
		}
		b.WriteString(clearEOL)
		lines[i] = b.String()
	}

	emptyLine := bgPad.Render(strings.Repeat(" ", termWidth)) + clearEOL
	for len(lines) < termHeight {
		lines = append(lines, emptyLine)
	}
	return strings.Join(lines[:termHeight], "\n")
}

// NewList creates a list.Model styled from the theme.
func (t Theme) NewList(items []list.Item, width, height int) list.Model {
	d := list.NewDefaultDelegate()
	d.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(t.Primary).
		Background(t.Background).
		Padding(0, 0, 0, 2)
	d.Styles.NormalDesc = d.Styles.NormalTitle.Foreground(t.Muted)
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Accent).
		Foreground(t.Accent).
		Background(t.Background).
		Padding(0, 0, 0, 1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Foreground(t.Secondary)

	l := list.New(items, d, width, height)
	s := list.DefaultStyles()
	s.Title = t.HeaderStyle()
	s.TitleBar = lipgloss.NewStyle().Background(t.Background)
	s.PaginationStyle = t.HelpStyle()
	s.HelpStyle = t.HelpStyle()
	s.NoItems = t.HelpStyle()
	l.Styles = s
	return l
}
