package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/toaster/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╦╗┌─┐┌─┐┌─┐┌┬┐┌─┐┬─┐
   ║ │ │├─┤└─┐ │ ├┤ ├┬┘
   ╩ └─┘┴ ┴└─┘ ┴ └─┘┴└─
`

func main() {
	if err := rootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toaster",
		Short: "Toast notification queue engine",
		Long: `Toaster manages short-lived, self-expiring notifications.

Toasts are queued per screen corner, expire on their own or on
user dismissal, and leave after a short exit transition.

  • Four independent corner queues
  • Stacked or list ordering
  • Prometheus metrics and OpenTelemetry spans
  • Optional OS notification mirror`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(
		demoCmd(),
		configCmd(),
		versionCmd(),
	)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.New("T030").Wrap(err)
	})

	return cmd
}
