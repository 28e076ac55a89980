// Package probe exercises a running stressd server: it issues GET requests,
// checks status and body, and summarizes latency with an HDR histogram.
//
// This is a client-side tool. The server itself keeps no metrics.
package probe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/wesleyorama2/stressd/internal/server"
)

// maxReportedErrors caps the distinct failure messages kept in a Report.
const maxReportedErrors = 10

// Options control a probe run.
type Options struct {
	// Path to request, e.g. "/stress"
	Path string

	// Requests is the total number of GETs to issue
	Requests int

	// Concurrency is the number of requests in flight at once
	Concurrency int

	// ExpectBody is the exact body required for success; empty skips the check
	ExpectBody string
}

// ExpectedBody returns the body stressd answers on path, or "" for paths it
// does not serve.
func ExpectedBody(path string) string {
	switch path {
	case "/", "":
		return server.IndexBody
	case "/stress":
		return server.StressBody
	default:
		return ""
	}
}

// Validate checks the options.
func (o Options) Validate() error {
	if o.Requests < 1 {
		return fmt.Errorf("requests must be at least 1, got %d", o.Requests)
	}
	if o.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", o.Concurrency)
	}
	return nil
}

// Run issues opts.Requests GETs against client, at most opts.Concurrency at
// a time. Cancelling ctx stops scheduling new requests; the partial report
// is returned along with ctx.Err().
func Run(ctx context.Context, client *Client, opts Options) (*Report, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	recorder := NewLatencyRecorder()
	report := &Report{Path: opts.Path}
	var mu sync.Mutex

	jobs := make(chan struct{})
	var wg sync.WaitGroup

	start := time.Now()
	for w := 0; w < opts.Concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range jobs {
				err := probeOnce(ctx, client, opts, recorder)

				mu.Lock()
				report.Requests++
				if err != nil {
					report.Failed++
					report.addError(err)
				} else {
					report.Succeeded++
				}
				mu.Unlock()
			}
		}()
	}

	var runErr error
schedule:
	for i := 0; i < opts.Requests; i++ {
		select {
		case jobs <- struct{}{}:
		case <-ctx.Done():
			runErr = ctx.Err()
			break schedule
		}
	}
	close(jobs)
	wg.Wait()

	report.Elapsed = time.Since(start)
	report.Latency = recorder.Snapshot()
	return report, runErr
}

// probeOnce performs one request and records its latency when it got a
// response.
func probeOnce(ctx context.Context, client *Client, opts Options, recorder *LatencyRecorder) error {
	resp, err := client.Get(ctx, opts.Path)
	if err != nil {
		return err
	}
	recorder.Record(resp.Timing.TotalTime)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	if opts.ExpectBody != "" && string(resp.Body) != opts.ExpectBody {
		return errors.New("unexpected response body")
	}
	return nil
}
