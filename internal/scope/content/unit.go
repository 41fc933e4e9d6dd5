package content

import "strconv"

// Kind tags the three addressable content unit shapes
type Kind string

// Unit kinds
const (
	KindSection    Kind = "section"
	KindSubsection Kind = "subsection"
	KindExample    Kind = "example"
)

// Unit is an addressable piece of content: a section, a subsection or an example
type Unit interface {
	Kind() Kind
	// ID is the composite identifier understood by Resolve
	ID() string
	Title() string
	// Body is the unit's rich-text content
	Body() string
	// ParentTitle is empty for sections
	ParentTitle() string
}

type sectionUnit struct{ s *Section }

func (u sectionUnit) Kind() Kind          { return KindSection }
func (u sectionUnit) ID() string          { return u.s.ID }
func (u sectionUnit) Title() string       { return u.s.Title }
func (u sectionUnit) Body() string        { return u.s.Content }
func (u sectionUnit) ParentTitle() string { return "" }

type subsectionUnit struct {
	parent *Section
	sub    *Subsection
}

func (u subsectionUnit) Kind() Kind          { return KindSubsection }
func (u subsectionUnit) ID() string          { return SubsectionID(u.parent.ID, u.sub.ID) }
func (u subsectionUnit) Title() string       { return u.sub.Title }
func (u subsectionUnit) Body() string        { return u.sub.Content }
func (u subsectionUnit) ParentTitle() string { return u.parent.Title }

type exampleUnit struct {
	parent *Section
	index  int
}

func (u exampleUnit) Kind() Kind          { return KindExample }
func (u exampleUnit) ID() string          { return ExampleID(u.parent.ID, u.index) }
func (u exampleUnit) Title() string       { return u.parent.Examples[u.index].Title }
func (u exampleUnit) Body() string        { return u.parent.Examples[u.index].Content }
func (u exampleUnit) ParentTitle() string { return u.parent.Title }

// SubsectionID builds the "<section>-<subsection>" identifier
func SubsectionID(sectionID, subsectionID string) string {
	return sectionID + "-" + subsectionID
}

// ExampleID builds the "<section>-example-<N>" identifier
func ExampleID(sectionID string, index int) string {
	return sectionID + "-example-" + strconv.Itoa(index)
}

// Units enumerates every addressable unit in discovery order: each section,
// followed by its subsections and then its examples.
func (d *Document) Units() []Unit {
	var units []Unit
	for _, id := range d.order {
		s := d.sections[id]
		units = append(units, sectionUnit{s: s})
		for _, sub := range s.Subsections {
			units = append(units, subsectionUnit{parent: s, sub: sub})
		}
		for i := range s.Examples {
			units = append(units, exampleUnit{parent: s, index: i})
		}
	}
	return units
}
