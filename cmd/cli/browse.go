package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/dsjohal14/aidocs/internal/tui"
)

func (c *cli) newBrowseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Browse the documentation interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m := tui.New(c.app.Doc, c.app.Tracker, tui.Options{
				DefaultSection: c.app.Config.DefaultSection,
				Debounce:       c.app.Config.SearchDebounce,
				SnippetLength:  c.app.Config.SnippetLength,
				Styles:         c.styles,
			})

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}
}
