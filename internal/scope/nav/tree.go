package nav

import (
	"fmt"

	"github.com/dsjohal14/aidocs/internal/scope/content"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

// Entry is one sidebar link
type Entry struct {
	ID     string          `json:"id"`
	Title  string          `json:"title"`
	Status progress.Status `json:"status"`
}

// Group is a titled block of sidebar entries
type Group struct {
	Title   string       `json:"title"`
	Tier    content.Tier `json:"tier"`
	Entries []Entry      `json:"entries"`
}

var tiers = []content.Tier{
	content.TierNone,
	content.TierFoundations,
	content.TierTypical,
	content.TierBleedingEdge,
}

// Tree groups sections for the sidebar: untiered introduction sections
// first, then tiers one to three. Groups without sections are omitted.
func Tree(doc *content.Document, p progress.Progress) []Group {
	groups := make([]Group, 0, len(tiers))
	for _, tier := range tiers {
		g := Group{Title: groupTitle(tier), Tier: tier}
		for _, s := range doc.Sections() {
			if s.Tier != tier {
				continue
			}
			g.Entries = append(g.Entries, Entry{
				ID:     s.ID,
				Title:  s.Title,
				Status: progress.SectionStatus(doc, p, s.ID),
			})
		}
		if len(g.Entries) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

func groupTitle(t content.Tier) string {
	if t == content.TierNone {
		return "Introduction"
	}
	return fmt.Sprintf("Tier %d: %s", int(t), t.Label())
}
