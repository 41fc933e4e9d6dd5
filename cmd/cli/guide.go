package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dsjohal14/aidocs/internal/render"
	"github.com/dsjohal14/aidocs/internal/scope/guide"
	"github.com/dsjohal14/aidocs/internal/scope/nav"
)

func (c *cli) newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide [step]",
		Short: "Print a step of the guided workflow",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("step must be an integer: %w", err)
				}
				i = n
			}

			step, err := guide.At(i)
			if err != nil {
				return err
			}

			body, err := render.NewConverter().Markdown(step.Content)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s  %s\n\n%s\n\n", c.styles.Title.Render(step.Title), c.styles.Muted.Render(fmt.Sprintf("(%d/%d)", i+1, guide.Len())), body)

			for _, e := range nav.Checklist(guide.Items(c.app.Doc, step), c.app.Tracker.Snapshot()) {
				fmt.Fprintf(out, "%s %s %s\n", c.styles.Check(e.Done), e.Title, c.styles.Muted.Render(e.Key))
			}

			if step.SectionID != "" {
				fmt.Fprintf(out, "\nExplore: aidocs show %s\n", step.SectionID)
			}
			if i < guide.Len()-1 {
				fmt.Fprintf(out, "Next:    aidocs guide %d\n", i+1)
			}
			return nil
		},
	}
}
