package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dsjohal14/aidocs/internal/scope/progress"
	"github.com/dsjohal14/aidocs/internal/scope/search"
)

// Styles groups the terminal styles shared by the CLI and the browser
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Notice   lipgloss.Style
	Match    lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
}

// DefaultStyles returns the standard palette
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62")),
		Subtitle: lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
		Muted:    lipgloss.NewStyle().Faint(true),
		Notice:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Match:    lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
		Selected: lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
		Done:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

// Highlight styles every occurrence of terms in text with the Match style
func (s Styles) Highlight(text string, terms []string) string {
	return HighlightFunc(text, terms, s.Match.Render)
}

// Status renders a section status as a short badge
func (s Styles) Status(st progress.Status) string {
	switch st {
	case progress.StatusComplete:
		return s.Done.Render("●")
	case progress.StatusPartial:
		return s.Notice.Render("◐")
	case progress.StatusNotStarted:
		return s.Muted.Render("○")
	default:
		return " "
	}
}

// Check renders a checklist box
func (s Styles) Check(done bool) string {
	if done {
		return s.Done.Render("[x]")
	}
	return "[ ]"
}

// private-use runes never occur in content
const (
	markOpen  = "\uE000"
	markClose = "\uE001"
)

// HighlightFunc wraps each match of terms with style. Overlapping matches
// are merged into one styled run.
func HighlightFunc(text string, terms []string, style func(...string) string) string {
	marked := search.Highlighter{Open: markOpen, Close: markClose}.Highlight(text, terms)
	if marked == text {
		return text
	}

	var out, run strings.Builder
	depth := 0
	for len(marked) > 0 {
		switch {
		case strings.HasPrefix(marked, markOpen):
			if depth == 0 {
				out.WriteString(run.String())
				run.Reset()
			}
			depth++
			marked = marked[len(markOpen):]
		case strings.HasPrefix(marked, markClose):
			depth--
			if depth == 0 {
				out.WriteString(style(run.String()))
				run.Reset()
			}
			marked = marked[len(markClose):]
		default:
			i := strings.IndexAny(marked, markOpen+markClose)
			if i < 0 {
				i = len(marked)
			}
			run.WriteString(marked[:i])
			marked = marked[i:]
		}
	}
	out.WriteString(run.String())
	return out.String()
}
