package main

import (
	"github.com/spf13/cobra"

	"github.com/handiism/greetcard/internal/config"
	"github.com/handiism/greetcard/internal/greeter"
	"github.com/handiism/greetcard/internal/logging"
)

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "greetcard",
		Short: "Print a greeting card with album art and a few status lines",
		Long: `greetcard prints the cover of the album that is playing (or a default
image) next to a short greeting, the time, the track or a quote, and the
terminal and shell in use.

Settings are read from GREETCARD_* environment variables, for example
GREETCARD_IMAGE_WIDTH=30 or GREETCARD_DEBUG=1.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := config.Load()
			if err != nil {
				return err
			}

			logger := logging.New(cmd.ErrOrStderr(), settings.Debug)
			g := greeter.New(settings, logger)
			defer g.Close()

			return g.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
