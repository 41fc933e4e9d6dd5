// Package main implements the command-line interface for the documentation checklist.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dsjohal14/aidocs/internal/app"
	"github.com/dsjohal14/aidocs/internal/libs/config"
	"github.com/dsjohal14/aidocs/internal/libs/obs"
	"github.com/dsjohal14/aidocs/internal/render"
)

// cli carries state shared by every subcommand
type cli struct {
	dsn    string
	slot   string
	app    *app.App
	styles render.Styles
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{styles: render.DefaultStyles()}

	root := &cobra.Command{
		Use:          "aidocs",
		Short:        "Generative AI documentation checklist",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return c.open(cmd)
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if c.app == nil {
				return nil
			}
			return c.app.Close()
		},
	}

	root.PersistentFlags().StringVar(&c.dsn, "dsn", "", "progress store DSN (overrides PROGRESS_DSN)")
	root.PersistentFlags().StringVar(&c.slot, "slot", "", "progress slot name (overrides PROGRESS_SLOT)")

	root.AddCommand(
		c.newSearchCmd(),
		c.newShowCmd(),
		c.newSectionsCmd(),
		c.newToggleCmd(),
		c.newResetCmd(),
		c.newProgressCmd(),
		c.newGuideCmd(),
		c.newBrowseCmd(),
	)
	return root
}

func (c *cli) open(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if c.dsn != "" {
		cfg.ProgressDSN = c.dsn
	}
	if c.slot != "" {
		cfg.ProgressSlot = c.slot
	}

	// logs go to stderr and stay quiet unless asked for
	if os.Getenv("LOG_LEVEL") == "" {
		cfg.LogLevel = "warn"
	}
	obs.InitLogger(cfg.LogLevel)

	a, err := app.Open(cmd.Context(), cfg, obs.Logger("cli"))
	if err != nil {
		return err
	}
	c.app = a
	return nil
}
