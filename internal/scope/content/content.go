// Package content provides the read-only documentation model: sections,
// subsections, checklist items and examples, plus identifier resolution.
package content

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Tier is the editorial review-cadence classification of a section
type Tier int

// Tier values. TierNone marks introductory, untiered sections.
const (
	TierNone Tier = iota
	TierFoundations
	TierTypical
	TierBleedingEdge
)

// Label returns the display name of the tier
func (t Tier) Label() string {
	switch t {
	case TierFoundations:
		return "Foundations"
	case TierTypical:
		return "Typical Components"
	case TierBleedingEdge:
		return "Bleeding Edge"
	default:
		return ""
	}
}

// ChecklistItem is a single user-completable documentation task
type ChecklistItem struct {
	ID          string `json:"id" toml:"id"`
	Title       string `json:"title" toml:"title"`
	Description string `json:"description" toml:"description"`
}

// Example is an illustrative block attached to a section or subsection
type Example struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Subsection is a content node nested one level under a Section
type Subsection struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Content   string          `json:"content"`
	Checklist []ChecklistItem `json:"checklist,omitempty"`
	Examples  []Example       `json:"examples,omitempty"`
}

// Section is a top-level content node
type Section struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Tier        Tier            `json:"tier,omitempty"`
	Content     string          `json:"content"`
	Checklist   []ChecklistItem `json:"checklist,omitempty"`
	Examples    []Example       `json:"examples,omitempty"`
	Subsections []*Subsection   `json:"subsections,omitempty"`
}

// Subsection returns the subsection with the given id
func (s *Section) Subsection(id string) (*Subsection, bool) {
	for _, sub := range s.Subsections {
		if sub.ID == id {
			return sub, true
		}
	}
	return nil, false
}

// Example returns the example at index
func (s *Section) Example(index int) (Example, bool) {
	if index < 0 || index >= len(s.Examples) {
		return Example{}, false
	}
	return s.Examples[index], true
}

// Document is the ordered mapping from section id to section.
// It is built once by Load or New and never mutated afterwards.
type Document struct {
	order    []string
	sections map[string]*Section
	items    map[string]Item
	ids      *idTrie
	sum      uint64
}

// New builds a document from sections in declaration order
func New(sections []*Section) (*Document, error) {
	d := &Document{
		order:    make([]string, 0, len(sections)),
		sections: make(map[string]*Section, len(sections)),
		items:    make(map[string]Item),
	}

	for _, s := range sections {
		if err := validateSection(s); err != nil {
			return nil, err
		}
		if _, dup := d.sections[s.ID]; dup {
			return nil, fmt.Errorf("duplicate section id %q", s.ID)
		}
		d.order = append(d.order, s.ID)
		d.sections[s.ID] = s
	}

	for _, it := range d.collectItems() {
		if _, dup := d.items[it.Key]; dup {
			return nil, fmt.Errorf("checklist key %q is not unique", it.Key)
		}
		d.items[it.Key] = it
	}

	d.ids = newIDTrie(d)
	d.sum = fingerprint(d)
	return d, nil
}

func validateSection(s *Section) error {
	if s == nil || strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("section id is required")
	}
	if s.Tier < TierNone || s.Tier > TierBleedingEdge {
		return fmt.Errorf("section %q: tier %d out of range", s.ID, s.Tier)
	}
	if err := validateChecklist(s.ID, s.Checklist); err != nil {
		return err
	}

	seen := make(map[string]bool, len(s.Subsections))
	for _, sub := range s.Subsections {
		if strings.TrimSpace(sub.ID) == "" {
			return fmt.Errorf("section %q: subsection id is required", s.ID)
		}
		if seen[sub.ID] {
			return fmt.Errorf("section %q: duplicate subsection id %q", s.ID, sub.ID)
		}
		seen[sub.ID] = true
		if err := validateChecklist(s.ID+"-"+sub.ID, sub.Checklist); err != nil {
			return err
		}
	}
	return nil
}

func validateChecklist(owner string, items []ChecklistItem) error {
	seen := make(map[string]bool, len(items))
	for _, it := range items {
		if it.ID == "" {
			return fmt.Errorf("%s: checklist item id is required", owner)
		}
		if seen[it.ID] {
			return fmt.Errorf("%s: duplicate checklist item id %q", owner, it.ID)
		}
		seen[it.ID] = true
	}
	return nil
}

// IDs returns section ids in declaration order
func (d *Document) IDs() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Sections returns the sections in declaration order
func (d *Document) Sections() []*Section {
	out := make([]*Section, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.sections[id])
	}
	return out
}

// Section looks up a top-level section by id
func (d *Document) Section(id string) (*Section, bool) {
	s, ok := d.sections[id]
	return s, ok
}

// Len returns the number of top-level sections
func (d *Document) Len() int {
	return len(d.order)
}

// Fingerprint returns a stable hash of the document content
func (d *Document) Fingerprint() uint64 {
	return d.sum
}

func fingerprint(d *Document) uint64 {
	h := xxhash.New()
	for _, u := range d.Units() {
		_, _ = h.WriteString(u.ID())
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(u.Title())
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(u.Body())
		_, _ = h.WriteString("\x00")
	}
	for _, it := range d.collectItems() {
		_, _ = h.WriteString(it.Key)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(it.Title)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(it.Description)
		_, _ = h.WriteString("\x00")
	}
	return h.Sum64()
}
