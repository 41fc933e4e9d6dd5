package content

import (
	"sort"

	"github.com/tchap/go-patricia/v2/patricia"
)

// idTrie indexes navigable identifiers for prefix completion
type idTrie struct {
	trie *patricia.Trie
}

func newIDTrie(d *Document) *idTrie {
	t := patricia.NewTrie()
	for _, u := range d.Units() {
		if u.Kind() == KindExample {
			continue
		}
		t.Insert(patricia.Prefix(u.ID()), u.Kind())
	}
	return &idTrie{trie: t}
}

// Complete returns section and subsection ids starting with prefix, sorted.
// An empty prefix returns every id.
func (d *Document) Complete(prefix string) []string {
	var out []string
	_ = d.ids.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	sort.Strings(out)
	return out
}
