// Package progress tracks checklist completion and persists it to a store.
package progress

// Progress maps a checklist item key to its completion flag. An absent key
// means not completed. Operations return new values and never modify their
// input.
type Progress map[string]bool

// Done reports whether key is completed
func (p Progress) Done(key string) bool {
	return p[key]
}

// Clone returns a copy of p that never aliases it
func (p Progress) Clone() Progress {
	out := make(Progress, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}

// Toggle returns a copy of p with key flipped
func Toggle(p Progress, key string) Progress {
	out := p.Clone()
	out[key] = !p[key]
	return out
}

// Reset returns empty progress
func Reset() Progress {
	return Progress{}
}
