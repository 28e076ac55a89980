package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

// RootCmd is the stressd command; bare invocation prints help.
var RootCmd = &cobra.Command{
	Use:     "stressd",
	Short:   "A tiny web server that burns CPU on demand",
	Version: version,
	Long: `stressd is a demonstration web server for load tests and autoscaling
demos. GET / answers immediately; GET /stress runs a fixed CPU-bound
computation before answering. SIGTERM makes it log two lines and exit 0.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the stressd version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "stressd %s\n", version)
	},
}

// Execute runs RootCmd once and reports any error on stderr.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func init() {
	RootCmd.AddCommand(newServeCmd())
	RootCmd.AddCommand(newProbeCmd())
	RootCmd.AddCommand(versionCmd)
}
