package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsjohal14/aidocs/internal/scope/nav"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

func (c *cli) newSectionsCmd() *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "List sections grouped by tier",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if cmd.Flags().Changed("prefix") {
				for _, id := range c.app.Doc.Complete(prefix) {
					fmt.Fprintln(out, id)
				}
				return nil
			}

			p := c.app.Tracker.Snapshot()
			for _, g := range nav.Tree(c.app.Doc, p) {
				fmt.Fprintln(out, c.styles.Title.Render(g.Title))
				for _, e := range g.Entries {
					fmt.Fprintf(out, " %s %-45s %s\n", c.styles.Status(e.Status), e.Title, c.styles.Muted.Render(e.ID))
				}
				fmt.Fprintln(out)
			}

			s := progress.Stats(c.app.Doc, p)
			fmt.Fprintf(out, "%d/%d items complete (%d%%)\n", s.Completed, s.Total, s.Percent)
			return nil
		},
	}

	cmd.Flags().StringVar(&prefix, "prefix", "", "list section and subsection ids starting with prefix")
	return cmd
}
