package content

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotFound is returned when an identifier does not resolve to any unit
var ErrNotFound = errors.New("content not found")

var examplePattern = regexp.MustCompile(`^(.+)-example-(\d+)$`)

// Target is the result of resolving a composite identifier
type Target struct {
	Kind         Kind
	ID           string
	Section      *Section
	Subsection   *Subsection // set for KindSubsection
	ExampleIndex int         // -1 unless KindExample
}

// Resolve maps an identifier to a section, an example or a subsection.
// The order is fixed: a direct section hit always wins, then the
// "<section>-example-<N>" pattern, then "<section>-<subsection>" splits
// tried at every hyphen from left to right.
func (d *Document) Resolve(id string) (Target, error) {
	if s, ok := d.sections[id]; ok {
		return Target{Kind: KindSection, ID: id, Section: s, ExampleIndex: -1}, nil
	}

	if m := examplePattern.FindStringSubmatch(id); m != nil {
		if s, ok := d.sections[m[1]]; ok {
			if idx, err := strconv.Atoi(m[2]); err == nil {
				if _, ok := s.Example(idx); ok {
					return Target{Kind: KindExample, ID: id, Section: s, ExampleIndex: idx}, nil
				}
			}
		}
	}

	for i := strings.IndexByte(id, '-'); i >= 0; {
		parent, child := id[:i], id[i+1:]
		if s, ok := d.sections[parent]; ok {
			if sub, ok := s.Subsection(child); ok {
				return Target{Kind: KindSubsection, ID: id, Section: s, Subsection: sub, ExampleIndex: -1}, nil
			}
		}
		next := strings.IndexByte(id[i+1:], '-')
		if next < 0 {
			break
		}
		i += next + 1
	}

	return Target{}, fmt.Errorf("resolve %q: %w", id, ErrNotFound)
}

// Title returns the display title of the resolved unit
func (t Target) Title() string {
	switch t.Kind {
	case KindSubsection:
		return t.Subsection.Title
	case KindExample:
		return t.Section.Examples[t.ExampleIndex].Title
	default:
		if t.Section == nil {
			return ""
		}
		return t.Section.Title
	}
}
