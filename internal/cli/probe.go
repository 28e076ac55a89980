package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/stressd/internal/output"
	"github.com/wesleyorama2/stressd/internal/probe"
)

func newProbeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Check a running stressd and measure its latency",
		Long: `Send GET requests to a running stressd, verify that each one returns
200 with the expected body, and print latency percentiles.

  stressd probe
  stressd probe --path / -n 100 -c 10
  stressd probe --url http://10.0.0.5:5000 --json`,
		Args: cobra.NoArgs,
		RunE: runProbe,
	}

	cmd.Flags().String("url", "http://localhost:5000", "Base URL of the server")
	cmd.Flags().String("path", "/stress", "Path to request")
	cmd.Flags().IntP("requests", "n", 10, "Total number of requests")
	cmd.Flags().IntP("concurrency", "c", 1, "Requests in flight at once")
	cmd.Flags().DurationP("timeout", "t", 60*time.Second, "Per-request timeout")
	cmd.Flags().Bool("json", false, "Print the report as JSON")
	cmd.Flags().Bool("no-color", false, "Disable colored output")

	return cmd
}

func runProbe(cmd *cobra.Command, args []string) error {
	url, _ := cmd.Flags().GetString("url")
	path, _ := cmd.Flags().GetString("path")
	requests, _ := cmd.Flags().GetInt("requests")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	timeout, _ := cmd.Flags().GetDuration("timeout")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	noColor, _ := cmd.Flags().GetBool("no-color")

	client := probe.NewClient(
		probe.WithBaseURL(url),
		probe.WithTimeout(timeout),
		probe.WithHeader("User-Agent", "stressd-probe/"+version),
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	report, err := probe.Run(ctx, client, probe.Options{
		Path:        path,
		Requests:    requests,
		Concurrency: concurrency,
		ExpectBody:  probe.ExpectedBody(path),
	})
	if report == nil {
		return err
	}

	if jsonOutput {
		data, jsonErr := report.JSON()
		if jsonErr != nil {
			return fmt.Errorf("failed to encode report: %w", jsonErr)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		noColor = output.ColorDisabled(os.Stdout, noColor)
		report.Print(cmd.OutOrStdout(), output.SchemeFor(noColor), noColor)
	}

	if err != nil {
		return fmt.Errorf("probe interrupted: %w", err)
	}
	if !report.Passed() {
		return fmt.Errorf("probe failed: %d of %d requests failed", report.Failed, report.Requests)
	}
	return nil
}
