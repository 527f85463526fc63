package render

import (
	"html"
	"strings"
	"unicode"

	"github.com/microcosm-cc/bluemonday"

	"github.com/GregMSThompson/factcheck/internal/models"
	"github.com/GregMSThompson/factcheck/internal/presenter"
)

type Panel int

const (
	PanelNone Panel = iota
	PanelLoading
	PanelError
	PanelResult
)

// PanelFor picks the single display panel for the current state.
func PanelFor(snap presenter.Snapshot) Panel {
	switch snap.State {
	case presenter.StateSubmitting:
		return PanelLoading
	case presenter.StateFailed:
		return PanelError
	case presenter.StateSuccess:
		if snap.Result != nil {
			return PanelResult
		}
	}
	return PanelNone
}

var textPolicy = bluemonday.StrictPolicy()

// clean strips markup from provider text. bluemonday escapes what it keeps, and
// the terminal wants plain characters back, minus any control characters that
// could start an escape sequence.
func clean(s string) string {
	return strings.TrimSpace(stripControls(html.UnescapeString(textPolicy.Sanitize(s))))
}

func stripControls(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

// Snapshot renders the display area: loading indicator, error or result.
func Snapshot(snap presenter.Snapshot, spinner string, width int) string {
	switch PanelFor(snap) {
	case PanelLoading:
		return Loading(spinner)
	case PanelError:
		return Error(snap.Error)
	case PanelResult:
		return Result(*snap.Result, width)
	default:
		return ""
	}
}

func Loading(spinner string) string {
	return strings.TrimSpace(spinner + " Verifying...")
}

func Error(message string) string {
	return errorPanelStyle.Render("Error: " + clean(message))
}

func Result(res models.FactCheckResult, width int) string {
	body := bodyStyle
	if width > 8 {
		body = body.Width(width - 8)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Analysis Result"))
	b.WriteString("  ")
	b.WriteString(StyleFor(res.Rating).Render(clean(string(res.Rating))))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(body.Render(clean(res.Summary)))
	b.WriteString("\n")

	b.WriteString(headingStyle.Render("Justification"))
	b.WriteString("\n")
	b.WriteString(body.Render(clean(res.Justification)))

	if len(res.Sources) > 0 {
		b.WriteString("\n")
		b.WriteString(headingStyle.Render("Sources"))
		for _, src := range res.Sources {
			b.WriteString("\n")
			b.WriteString(Source(src))
		}
	}

	panel := panelStyle
	if width > 4 {
		panel = panel.Width(width - 4)
	}
	return panel.Render(b.String())
}

// Source renders one citation as a terminal hyperlink (OSC 8) followed by its URI.
func Source(c models.Citation) string {
	uri := clean(c.URI)
	title := linkStyle.Render(clean(c.Title))
	return "• " + hyperlink(uri, title) + "\n  " + uriStyle.Render(uri)
}

func hyperlink(uri, text string) string {
	return "\x1b]8;;" + uri + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

// Hint describes the submit control for the current state and draft.
func Hint(snap presenter.Snapshot, draft string) string {
	switch {
	case snap.State == presenter.StateSubmitting:
		return mutedStyle.Render("verifying… input disabled")
	case snap.CanSubmit(draft):
		return "ctrl+s fact-check now • esc quit"
	default:
		return mutedStyle.Render("enter a claim or URL • esc quit")
	}
}
