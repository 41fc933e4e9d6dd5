package progress

import (
	"math"

	"github.com/dsjohal14/aidocs/internal/scope/content"
)

// Status summarizes the checklist state of one section
type Status string

// Section statuses
const (
	StatusNone       Status = "none" // section has no checklist items
	StatusNotStarted Status = "not-started"
	StatusPartial    Status = "partial"
	StatusComplete   Status = "complete"
)

// Summary is the overall completion of the document
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Percent   int `json:"percent"`
}

// Stats counts completed items across the document. Keys that do not
// belong to any checklist item are ignored.
func Stats(doc *content.Document, p Progress) Summary {
	items := doc.Items()
	s := Summary{Total: len(items)}
	for _, it := range items {
		if p.Done(it.Key) {
			s.Completed++
		}
	}
	if s.Total > 0 {
		s.Percent = int(math.Round(float64(s.Completed) * 100 / float64(s.Total)))
	}
	return s
}

// SectionStatus reports completion of a section's own and subsection checklists
func SectionStatus(doc *content.Document, p Progress, sectionID string) Status {
	items := doc.SectionItems(sectionID)
	if len(items) == 0 {
		return StatusNone
	}

	done := 0
	for _, it := range items {
		if p.Done(it.Key) {
			done++
		}
	}

	switch done {
	case 0:
		return StatusNotStarted
	case len(items):
		return StatusComplete
	default:
		return StatusPartial
	}
}
