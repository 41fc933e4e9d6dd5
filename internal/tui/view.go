package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dsjohal14/aidocs/internal/scope/content"
	"github.com/dsjohal14/aidocs/internal/scope/guide"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
	"github.com/dsjohal14/aidocs/internal/scope/search"
)

const maxContentW = 96

func (m Model) View() string {
	p := m.tracker.Snapshot()

	var body string
	switch m.mode {
	case modeSearch:
		body = m.input.View() + "\n\n"
		if m.searching {
			body += m.viewResults()
		} else {
			body += m.viewSection(p)
		}
	case modeGuide:
		body = m.viewGuide(p)
	default:
		body = m.viewSection(p)
	}

	if w := m.contentWidth(); w > 0 {
		body = lipgloss.NewStyle().Width(w).Render(body)
	}

	header := m.header(p)
	footer := m.footer()

	lines := strings.Split(body, "\n")
	if m.height > 0 {
		room := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer)-2, 1)
		start := min(m.scroll, max(len(lines)-room, 0))
		lines = lines[start:min(start+room, len(lines))]
	}

	return header + "\n\n" + strings.Join(lines, "\n") + "\n" + footer
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	return min(m.width-2, maxContentW)
}

func (m Model) header(p progress.Progress) string {
	s := progress.Stats(m.doc, p)
	return m.styles.Title.Render("AI Documentation Checklist") + "  " +
		m.styles.Muted.Render(fmt.Sprintf("%d/%d complete (%d%%)", s.Completed, s.Total, s.Percent))
}

func (m Model) footer() string {
	var keys string
	switch m.mode {
	case modeSearch:
		keys = "↑/↓ select • enter open • esc cancel"
	case modeGuide:
		keys = "n next • p previous • e explore section • space toggle • esc leave"
	default:
		keys = "/ search • j/k move • space toggle • [/] section • g guide • R reset • q quit"
	}

	out := m.styles.Muted.Render(keys)
	if m.status != "" {
		out = m.styles.Notice.Render(m.status) + "\n" + out
	}
	return out
}

func (m Model) viewSection(p progress.Progress) string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.view.Title))
	if m.view.Tier != "" {
		b.WriteString("  " + m.styles.Subtitle.Render(m.view.Tier))
	}
	if m.view.Kind == content.KindSubsection {
		b.WriteString("  " + m.styles.Subtitle.Render("in "+m.view.SectionTitle))
	}
	b.WriteString("\n\n")

	idx := 0
	for _, blk := range m.blocks {
		if blk.heading != "" {
			b.WriteString(m.styles.Title.Render(blk.heading) + "\n\n")
		}
		if blk.text != "" {
			b.WriteString(blk.text + "\n\n")
		}
		for _, it := range blk.items {
			b.WriteString(m.checkLine(it, p.Done(it.Key), idx == m.cursor) + "\n")
			idx++
		}
		if len(blk.items) > 0 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) checkLine(it content.Item, done, selected bool) string {
	line := m.styles.Check(done) + " " + it.Title
	if selected {
		return m.styles.Selected.Render("> " + line)
	}
	return "  " + line
}

func (m Model) viewResults() string {
	if len(m.results) == 0 {
		return m.styles.Muted.Render(fmt.Sprintf("No results for %q", m.query))
	}

	terms := search.Tokenize(m.query)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", m.styles.Muted.Render(fmt.Sprintf("%d results", len(m.results))))
	for i, r := range m.results {
		marker := "  "
		if i == m.selected {
			marker = m.styles.Selected.Render(">") + " "
		}
		title := m.styles.Highlight(r.Title, terms)
		if r.ParentTitle != "" {
			title += m.styles.Subtitle.Render(" in " + r.ParentTitle)
		}
		fmt.Fprintf(&b, "%s%s %s\n", marker, title, m.styles.Muted.Render(string(r.Kind)))
		fmt.Fprintf(&b, "    %s\n\n", m.styles.Highlight(r.Snippet, terms))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewGuide(p progress.Progress) string {
	step := m.walker.Step()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(step.Title))
	b.WriteString("  " + m.styles.Muted.Render(fmt.Sprintf("%d/%d", m.walker.Index()+1, guide.Len())))
	b.WriteString("\n\n")

	text, err := m.conv.Markdown(step.Content)
	if err != nil {
		text = search.Flatten(step.Content)
	}
	b.WriteString(text + "\n\n")

	for i, it := range guide.Items(m.doc, step) {
		b.WriteString(m.checkLine(it, p.Done(it.Key), i == m.guideCursor) + "\n")
	}

	if m.walker.Last() {
		b.WriteString("\n" + m.styles.Muted.Render("Press n to finish."))
	}
	return strings.TrimRight(b.String(), "\n")
}
