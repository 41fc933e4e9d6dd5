// Package nav maps identifiers to displayable views and builds the sidebar tree.
package nav

import (
	"fmt"

	"github.com/dsjohal14/aidocs/internal/scope/content"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

// DefaultSection is the landing section and the fallback for unknown ids
const DefaultSection = "introduction"

// SubsectionView is a subsection rendered inside its section
type SubsectionView struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Checklist []content.Item    `json:"checklist,omitempty"`
	Examples  []content.Example `json:"examples,omitempty"`
}

// View is everything needed to display one navigation target
type View struct {
	ID             string            `json:"id"`
	Kind           content.Kind      `json:"kind"`
	SectionID      string            `json:"section_id"`
	SectionTitle   string            `json:"section_title"`
	Title          string            `json:"title"`
	Tier           string            `json:"tier,omitempty"`
	Content        string            `json:"content"`
	Checklist      []content.Item    `json:"checklist,omitempty"`
	Subsections    []SubsectionView  `json:"subsections,omitempty"`
	Examples       []content.Example `json:"examples,omitempty"`
	FocusedExample int               `json:"focused_example"`
	Notice         string            `json:"notice,omitempty"`
	FellBack       bool              `json:"fell_back"`
}

// Navigator resolves identifiers, falling back to a default section
type Navigator struct {
	doc      *content.Document
	fallback string
}

// NewNavigator creates a navigator. An empty fallback, or one that does not
// name a section, uses DefaultSection, then the first section.
func NewNavigator(doc *content.Document, fallback string) *Navigator {
	if _, ok := doc.Section(fallback); !ok {
		fallback = DefaultSection
	}
	if _, ok := doc.Section(fallback); !ok {
		if ids := doc.IDs(); len(ids) > 0 {
			fallback = ids[0]
		}
	}
	return &Navigator{doc: doc, fallback: fallback}
}

// Fallback returns the landing section id
func (n *Navigator) Fallback() string {
	return n.fallback
}

// Navigate resolves id to a view. Unknown ids yield the fallback section
// with a notice, so navigation never fails.
func (n *Navigator) Navigate(id string) View {
	target, err := n.doc.Resolve(id)
	if err == nil {
		return n.view(target)
	}

	fb, ferr := n.doc.Resolve(n.fallback)
	if ferr != nil {
		return View{ID: id, FocusedExample: -1, FellBack: true, Notice: fmt.Sprintf("section %q not found", id)}
	}
	v := n.view(fb)
	v.FellBack = true
	v.Notice = fmt.Sprintf("section %q not found", id)
	return v
}

func (n *Navigator) view(t content.Target) View {
	s := t.Section
	v := View{
		ID:             t.ID,
		Kind:           t.Kind,
		SectionID:      s.ID,
		SectionTitle:   s.Title,
		Title:          t.Title(),
		Tier:           s.Tier.Label(),
		FocusedExample: t.ExampleIndex,
	}

	items := n.doc.SectionItems(s.ID)

	if t.Kind == content.KindSubsection {
		sub := t.Subsection
		v.Content = sub.Content
		v.Checklist = ownedBy(items, sub.ID)
		v.Examples = sub.Examples
		return v
	}

	// sections and examples render the whole section; examples focus one card
	v.Title = s.Title
	v.Content = s.Content
	v.Checklist = ownedBy(items, "")
	v.Examples = s.Examples
	for _, sub := range s.Subsections {
		v.Subsections = append(v.Subsections, SubsectionView{
			ID:        content.SubsectionID(s.ID, sub.ID),
			Title:     sub.Title,
			Content:   sub.Content,
			Checklist: ownedBy(items, sub.ID),
			Examples:  sub.Examples,
		})
	}
	return v
}

func ownedBy(items []content.Item, subsectionID string) []content.Item {
	var out []content.Item
	for _, it := range items {
		if it.SubsectionID == subsectionID {
			out = append(out, it)
		}
	}
	return out
}

// ChecklistEntry is a checklist item with its completion state
type ChecklistEntry struct {
	content.Item
	Done bool `json:"done"`
}

// Checklist pairs items with their state in p
func Checklist(items []content.Item, p progress.Progress) []ChecklistEntry {
	out := make([]ChecklistEntry, 0, len(items))
	for _, it := range items {
		out = append(out, ChecklistEntry{Item: it, Done: p.Done(it.Key)})
	}
	return out
}
