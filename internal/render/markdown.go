// Package render turns rich-text content and views into terminal output.
package render

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"github.com/dsjohal14/aidocs/internal/scope/nav"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

// Converter turns rich-text content into Markdown
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a converter with table support
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Markdown converts rich text. Blank input yields an empty string.
func (c *Converter) Markdown(rich string) (string, error) {
	if strings.TrimSpace(rich) == "" {
		return "", nil
	}

	md, err := c.conv.ConvertString(rich)
	if err != nil {
		return "", fmt.Errorf("failed to convert content: %w", err)
	}
	return strings.TrimSpace(md), nil
}

// Page renders a navigation view as one Markdown document, marking each
// checklist item from p
func (c *Converter) Page(v nav.View, p progress.Progress) (string, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", v.Title)
	if v.Notice != "" {
		fmt.Fprintf(&b, "> %s\n\n", v.Notice)
	}
	if v.Tier != "" {
		fmt.Fprintf(&b, "_%s_\n\n", v.Tier)
	}

	if err := c.block(&b, v.Content); err != nil {
		return "", err
	}
	writeChecklist(&b, nav.Checklist(v.Checklist, p))

	for _, sub := range v.Subsections {
		fmt.Fprintf(&b, "## %s\n\n", sub.Title)
		if err := c.block(&b, sub.Content); err != nil {
			return "", err
		}
		writeChecklist(&b, nav.Checklist(sub.Checklist, p))
	}

	for i, ex := range v.Examples {
		marker := ""
		if i == v.FocusedExample {
			marker = " (selected)"
		}
		fmt.Fprintf(&b, "## Example: %s%s\n\n", ex.Title, marker)
		if err := c.block(&b, ex.Content); err != nil {
			return "", err
		}
	}

	return strings.TrimRight(b.String(), "\n") + "\n", nil
}

func (c *Converter) block(b *strings.Builder, rich string) error {
	md, err := c.Markdown(rich)
	if err != nil {
		return err
	}
	if md != "" {
		b.WriteString(md)
		b.WriteString("\n\n")
	}
	return nil
}

func writeChecklist(b *strings.Builder, entries []nav.ChecklistEntry) {
	if len(entries) == 0 {
		return
	}
	for _, e := range entries {
		box := " "
		if e.Done {
			box = "x"
		}
		fmt.Fprintf(b, "- [%s] **%s**: %s `%s`\n", box, e.Title, e.Description, e.Key)
	}
	b.WriteString("\n")
}
