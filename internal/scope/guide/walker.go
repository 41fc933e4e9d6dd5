package guide

// Walker tracks the position in the guided walk. The zero value starts at
// the welcome step.
type Walker struct {
	current int
}

// Index returns the current step index
func (w *Walker) Index() int {
	return w.current
}

// Step returns the current step
func (w *Walker) Step() Step {
	return steps[w.current]
}

// First reports whether the walker is on the welcome step
func (w *Walker) First() bool {
	return w.current == 0
}

// Last reports whether the walker is on the completion step
func (w *Walker) Last() bool {
	return w.current == len(steps)-1
}

// Next advances one step. On the last step it stays put and reports
// finished.
func (w *Walker) Next() (finished bool) {
	if w.Last() {
		return true
	}
	w.current++
	return false
}

// Prev retreats one step; it is a no-op on the first step
func (w *Walker) Prev() {
	if w.current > 0 {
		w.current--
	}
}

// Explore returns the current step's section for jump-to-section
func (w *Walker) Explore() (sectionID string, ok bool) {
	id := steps[w.current].SectionID
	return id, id != ""
}

// Restart returns to the welcome step
func (w *Walker) Restart() {
	w.current = 0
}
