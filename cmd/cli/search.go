package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dsjohal14/aidocs/internal/libs/obs"
	"github.com/dsjohal14/aidocs/internal/scope/search"
)

func (c *cli) newSearchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <query>...",
		Short: "Search sections, subsections and examples",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			engine := search.NewEngine(c.app.Doc, search.WithSnippetLength(c.app.Config.SnippetLength))

			results, err := engine.Search(query)
			if errors.Is(err, search.ErrEmptyQuery) {
				return nil
			}
			if err != nil {
				return err
			}
			obs.Searches.Inc()

			out := cmd.OutOrStdout()
			if len(results) == 0 {
				fmt.Fprintf(out, "No results for %q\n", query)
				return nil
			}

			total := len(results)
			if limit > 0 && len(results) > limit {
				results = results[:limit]
			}

			terms := search.Tokenize(query)
			for _, r := range results {
				title := c.styles.Highlight(r.Title, terms)
				if r.ParentTitle != "" {
					title += c.styles.Subtitle.Render(" in " + r.ParentTitle)
				}
				fmt.Fprintf(out, "%s  %s\n", title, c.styles.Muted.Render(fmt.Sprintf("[%s %s, %d]", r.Kind, r.ID, r.MatchCount)))
				fmt.Fprintf(out, "  %s\n\n", c.styles.Highlight(r.Snippet, terms))
			}
			if total > len(results) {
				fmt.Fprintf(out, "%d of %d results\n", len(results), total)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum results to print (0 for all)")
	return cmd
}
