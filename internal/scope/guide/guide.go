// Package guide is the fixed guided walk through the essential sections.
package guide

import (
	"errors"
	"fmt"

	"github.com/dsjohal14/aidocs/internal/scope/content"
)

// ErrNoStep is returned for a step index outside the walk
var ErrNoStep = errors.New("no such guided step")

// Step is one page of the guided walk. SectionID is empty for the
// welcome and completion pages.
type Step struct {
	Index     int    `json:"index"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	SectionID string `json:"section_id,omitempty"`
}

var steps = []Step{
	{
		Title: "Welcome to the Guided Workflow",
		Content: `<p>This guided workflow will help you document your generative AI usage for research projects. We'll walk through the essential documentation sections step by step.</p>
<p>This is especially helpful if you're new to AI documentation or want to ensure you're covering all the necessary aspects.</p>`,
	},
	{
		Title: "Step 1: AI Model Specification",
		Content: `<p>First, document the AI model you used. Like citing the instruments of an experiment, others cannot replicate your work without it.</p>
<p>Complete the checklist below to document your AI model details.</p>`,
		SectionID: "model-specification",
	},
	{
		Title: "Step 2: Generation Parameters",
		Content: `<p>Next, document the settings you used when generating outputs. These parameters act like knobs and dials that shape how the model responds.</p>
<p>Complete the checklist below to document your generation parameters.</p>`,
		SectionID: "generation-parameters",
	},
	{
		Title: "Step 3: Prompt Engineering",
		Content: `<p>Document the exact instructions you gave the model: the questions, instructions and examples that guided its responses.</p>
<p>Complete the checklist below to document your prompts.</p>`,
		SectionID: "prompt-engineering",
	},
	{
		Title: "Step 4: Dataset and Input Documentation",
		Content: `<p>Document all data you provided to the model as input, including datasets and individual documents.</p>
<p>Complete the checklist below to document your datasets and inputs.</p>`,
		SectionID: "dataset-documentation",
	},
	{
		Title: "Step 5: Output Processing and Evaluation",
		Content: `<p>Document how you processed and evaluated the model's outputs, including any filtering or modification.</p>
<p>Complete the checklist below to document your output processing.</p>`,
		SectionID: "output-processing",
	},
	{
		Title: "Step 6: Reproducibility Materials",
		Content: `<p>Finally, document the materials others need to reproduce your work, such as code and scripts.</p>
<p>Complete the checklist below to document your reproducibility materials.</p>`,
		SectionID: "reproducibility-materials",
	},
	{
		Title: "Documentation Complete!",
		Content: `<p>You've completed the essential documentation for your generative AI usage.</p>
<p>You can now explore the full documentation framework to add detail in specific areas or review your work.</p>`,
	},
}

func init() {
	for i := range steps {
		steps[i].Index = i
	}
}

// Len returns the number of steps
func Len() int {
	return len(steps)
}

// Steps returns a copy of the walk
func Steps() []Step {
	out := make([]Step, len(steps))
	copy(out, steps)
	return out
}

// At returns the step at index i
func At(i int) (Step, error) {
	if i < 0 || i >= len(steps) {
		return Step{}, fmt.Errorf("step %d: %w", i, ErrNoStep)
	}
	return steps[i], nil
}

// Items returns the checklist shown on a step: the section's own items,
// excluding its subsections
func Items(doc *content.Document, s Step) []content.Item {
	if s.SectionID == "" {
		return nil
	}
	var out []content.Item
	for _, it := range doc.SectionItems(s.SectionID) {
		if it.SubsectionID == "" {
			out = append(out, it)
		}
	}
	return out
}

// Validate checks that every step's section exists in doc
func Validate(doc *content.Document) error {
	for _, s := range steps {
		if s.SectionID == "" {
			continue
		}
		if _, ok := doc.Section(s.SectionID); !ok {
			return fmt.Errorf("guided step %d: section %q: %w", s.Index, s.SectionID, content.ErrNotFound)
		}
	}
	return nil
}
