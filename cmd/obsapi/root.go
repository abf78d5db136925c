package main

import (
	"io"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/osc-go/obsapi/internal/logx"
	"github.com/osc-go/obsapi/internal/version"
	"github.com/spf13/cobra"
)

// defaultAPIURL is the API URL used when neither the --apiurl
// flag nor the OBSAPI_APIURL environment variable are set.
const defaultAPIURL = "https://api.opensuse.org"

// globalFlags contains the flags shared by all subcommands.
type globalFlags struct {
	emoji   bool
	verbose bool
}

func newRootCommand(stdout io.Writer) *cobra.Command {
	gf := &globalFlags{}
	root := &cobra.Command{
		Use:           "obsapi",
		Short:         "Fetch, inspect, and save build service API documents",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger, ok := log.Log.(*log.Logger)
			if !ok {
				return
			}
			if gf.verbose {
				logger.Level = log.DebugLevel
			}
			if handler, ok := logger.Handler.(*logx.Handler); ok {
				handler.Emoji = gf.emoji
			}
		},
	}
	root.PersistentFlags().BoolVar(&gf.emoji, "emoji", false, "use emojis instead of bullets in log messages")
	root.PersistentFlags().BoolVarP(&gf.verbose, "verbose", "v", false, "emit debug messages")
	root.AddCommand(newGetCommand(stdout))
	root.AddCommand(newFindCommand(stdout))
	return root
}

// envOr returns the value of the given environment variable or fallback.
func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// defaultTimeout is the default timeout of the whole HTTP exchange.
const defaultTimeout = 60 * time.Second
