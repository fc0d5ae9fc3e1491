package styles

import (
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

// Glamour renderers are expensive to build; cache them by wrap width
var rendererCache sync.Map // map[int]*glamour.TermRenderer

func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// RenderNotes renders project notes as markdown wrapped to width.
// The raw notes are returned when rendering fails.
func RenderNotes(notes string, width int) string {
	if strings.TrimSpace(notes) == "" {
		return ""
	}
	renderer, err := getRenderer(width)
	if err != nil {
		return notes
	}
	rendered, err := renderer.Render(notes)
	if err != nil {
		return notes
	}
	return strings.TrimSpace(rendered)
}
