package content

// Item is a checklist item together with its progress key and owner
type Item struct {
	ChecklistItem
	Key          string `json:"key"`
	SectionID    string `json:"section_id"`
	SubsectionID string `json:"subsection_id,omitempty"`
}

// ItemKey composes the progress key of a checklist item. ownerPath is the
// section id, or "<section>-<subsection>" for subsection checklists.
func ItemKey(ownerPath, itemID string) string {
	return ownerPath + "-" + itemID
}

// Items returns every checklist item in the document in declaration order
func (d *Document) Items() []Item {
	return d.collectItems()
}

// Item looks up a checklist item by its progress key
func (d *Document) Item(key string) (Item, bool) {
	it, ok := d.items[key]
	return it, ok
}

// SectionItems returns the checklist items owned by a section and all of its subsections
func (d *Document) SectionItems(sectionID string) []Item {
	s, ok := d.sections[sectionID]
	if !ok {
		return nil
	}
	return sectionItems(s)
}

func (d *Document) collectItems() []Item {
	var out []Item
	for _, id := range d.order {
		out = append(out, sectionItems(d.sections[id])...)
	}
	return out
}

func sectionItems(s *Section) []Item {
	var out []Item
	for _, ci := range s.Checklist {
		out = append(out, Item{
			ChecklistItem: ci,
			Key:           ItemKey(s.ID, ci.ID),
			SectionID:     s.ID,
		})
	}
	for _, sub := range s.Subsections {
		owner := SubsectionID(s.ID, sub.ID)
		for _, ci := range sub.Checklist {
			out = append(out, Item{
				ChecklistItem: ci,
				Key:           ItemKey(owner, ci.ID),
				SectionID:     s.ID,
				SubsectionID:  sub.ID,
			})
		}
	}
	return out
}
