package main

import (
	"bufio"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsjohal14/aidocs/internal/libs/obs"
	"github.com/dsjohal14/aidocs/internal/scope/content"
	"github.com/dsjohal14/aidocs/internal/scope/progress"
)

func (c *cli) newToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <key>",
		Short: "Toggle a checklist item by its key",
		Args:  cobra.ExactArgs(1),
		ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			doc, err := content.Load()
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			var keys []string
			for _, it := range doc.Items() {
				if strings.HasPrefix(it.Key, toComplete) {
					keys = append(keys, it.Key)
				}
			}
			return keys, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			item, ok := c.app.Doc.Item(key)
			if !ok {
				return fmt.Errorf("unknown checklist item %q", key)
			}

			done, err := c.app.Tracker.Toggle(cmd.Context(), key)
			if err != nil {
				return err
			}
			obs.Toggles.WithLabelValues(fmt.Sprint(done)).Inc()

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.styles.Check(done), item.Title)
			return nil
		},
	}
}

func (c *cli) newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all checklist progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			if !yes {
				fmt.Fprint(out, "Reset all checklist progress? This cannot be undone. [y/N] ")
				answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if a := strings.ToLower(strings.TrimSpace(answer)); a != "y" && a != "yes" {
					fmt.Fprintln(out, "Aborted.")
					return nil
				}
			}

			if err := c.app.Tracker.Reset(cmd.Context()); err != nil {
				return err
			}
			obs.Resets.Inc()
			fmt.Fprintln(out, "Progress reset.")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func (c *cli) newProgressCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show checklist completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			p := c.app.Tracker.Snapshot()

			s := progress.Stats(c.app.Doc, p)
			fmt.Fprintf(out, "%d/%d items complete (%d%%)\n\n", s.Completed, s.Total, s.Percent)

			for _, sec := range c.app.Doc.Sections() {
				items := c.app.Doc.SectionItems(sec.ID)
				if len(items) == 0 {
					continue
				}
				fmt.Fprintf(out, "%s %s\n", c.styles.Status(progress.SectionStatus(c.app.Doc, p, sec.ID)), c.styles.Title.Render(sec.Title))
				if !all {
					continue
				}
				for _, it := range items {
					fmt.Fprintf(out, "   %s %s %s\n", c.styles.Check(p.Done(it.Key)), it.Title, c.styles.Muted.Render(it.Key))
				}
			}

			// stored keys that no longer match an item
			var stale []string
			for k, v := range p {
				if _, ok := c.app.Doc.Item(k); !ok && v {
					stale = append(stale, k)
				}
			}
			if len(stale) > 0 {
				sort.Strings(stale)
				fmt.Fprintf(out, "\n%s\n", c.styles.Notice.Render("ignored unknown keys: "+strings.Join(stale, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "list every checklist item")
	return cmd
}
