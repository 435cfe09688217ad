package ui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// markdownCache holds one glamour renderer, rebuilt when width or style
// changes.
type markdownCache struct {
	mu       sync.Mutex
	renderer *glamour.TermRenderer
	width    int
	style    string
}

var markdown markdownCache

func (c *markdownCache) get(width int, style string) (*glamour.TermRenderer, error) {
	if width < 1 {
		width = 80
	}
	if style == "" {
		style = "dark"
	}
	if c.renderer != nil && c.width == width && c.style == style {
		return c.renderer, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	c.renderer, c.width, c.style = r, width, style
	return r, nil
}

// RenderMarkdown renders entry text for the terminal with the given glamour
// style. On any rendering error the text is returned unchanged.
func RenderMarkdown(content string, width int, style string) string {
	if content == "" {
		return ""
	}
	markdown.mu.Lock()
	defer markdown.mu.Unlock()

	r, err := markdown.get(width, style)
	if err != nil {
		return content
	}
	rendered, err := r.Render(content)
	if err != nil {
		return content
	}
	return strings.TrimRight(rendered, "\n")
}
