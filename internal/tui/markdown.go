package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
)

var (
	mdRendererMu sync.Mutex
	// Cache renderers by wrap width. Creating one with WithAutoStyle can
	// trigger terminal queries that block on some terminals, so we pick the
	// style once from the detected background.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// renderNoteBody renders a note's markup for the preview pane. On any
// renderer failure the raw markup is shown instead; the preview must never
// take the board down.
func renderNoteBody(body string, width int) string {
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := "light"
	if hasDarkBackground {
		style = "dark"
	}
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return body
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(body)
	if err != nil {
		return body
	}
	return strings.TrimRight(out, "\n")
}
