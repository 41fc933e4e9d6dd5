package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dsjohal14/aidocs/internal/render"
	"github.com/dsjohal14/aidocs/internal/scope/content"
	"github.com/dsjohal14/aidocs/internal/scope/nav"
)

func (c *cli) newShowCmd() *cobra.Command {
	var outline bool

	cmd := &cobra.Command{
		Use:               "show [id]",
		Short:             "Print a section, subsection or example as Markdown",
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n := nav.NewNavigator(c.app.Doc, c.app.Config.DefaultSection)

			id := n.Fallback()
			if len(args) == 1 {
				id = args[0]
			}
			view := n.Navigate(id)
			out := cmd.OutOrStdout()

			if outline {
				headings, err := render.Outline(view.Content)
				if err != nil {
					return err
				}
				for _, h := range headings {
					fmt.Fprintln(out, h)
				}
				return nil
			}

			page, err := render.NewConverter().Page(view, c.app.Tracker.Snapshot())
			if err != nil {
				return err
			}
			fmt.Fprint(out, page)
			return nil
		},
	}

	cmd.Flags().BoolVar(&outline, "outline", false, "print only the headings")
	return cmd
}

// completeIDs offers section and subsection ids for shell completion
func completeIDs(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	doc, err := content.Load()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return doc.Complete(toComplete), cobra.ShellCompDirectiveNoFileComp
}
