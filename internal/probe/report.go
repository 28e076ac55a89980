package probe

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/wesleyorama2/stressd/internal/output"
)

// Report is the outcome of a probe run.
type Report struct {
	Path      string
	Requests  int
	Succeeded int
	Failed    int
	Elapsed   time.Duration
	Latency   LatencySummary
	Errors    []string
}

// Passed reports whether every request succeeded.
func (r *Report) Passed() bool {
	return r.Requests > 0 && r.Failed == 0
}

func (r *Report) addError(err error) {
	msg := err.Error()
	for _, existing := range r.Errors {
		if existing == msg {
			return
		}
	}
	if len(r.Errors) < maxReportedErrors {
		r.Errors = append(r.Errors, msg)
	}
}

type jsonLatency struct {
	MinMs  float64 `json:"minMs"`
	MeanMs float64 `json:"meanMs"`
	P50Ms  float64 `json:"p50Ms"`
	P90Ms  float64 `json:"p90Ms"`
	P99Ms  float64 `json:"p99Ms"`
	MaxMs  float64 `json:"maxMs"`
}

type jsonReport struct {
	Path      string      `json:"path"`
	Requests  int         `json:"requests"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
	Passed    bool        `json:"passed"`
	ElapsedMs float64     `json:"elapsedMs"`
	Latency   jsonLatency `json:"latency"`
	Errors    []string    `json:"errors,omitempty"`
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(jsonReport{
		Path:      r.Path,
		Requests:  r.Requests,
		Succeeded: r.Succeeded,
		Failed:    r.Failed,
		Passed:    r.Passed(),
		ElapsedMs: ms(r.Elapsed),
		Latency: jsonLatency{
			MinMs:  ms(r.Latency.Min),
			MeanMs: ms(r.Latency.Mean),
			P50Ms:  ms(r.Latency.P50),
			P90Ms:  ms(r.Latency.P90),
			P99Ms:  ms(r.Latency.P99),
			MaxMs:  ms(r.Latency.Max),
		},
		Errors: r.Errors,
	}, "", "  ")
}

// Print writes a human readable summary.
func (r *Report) Print(w io.Writer, scheme *output.ColorScheme, noColor bool) {
	icon := output.SuccessIcon(noColor)
	if !r.Passed() {
		icon = output.ErrorIcon(noColor)
	}

	fmt.Fprintf(w, "%s %s %s\n", icon, scheme.Method.Sprint("GET"), scheme.URL.Sprint(r.Path))
	fmt.Fprintf(w, "  %s %d (%s ok, %s failed) in %s\n",
		scheme.Label.Sprint("Requests:"),
		r.Requests,
		scheme.Success.Sprint(r.Succeeded),
		scheme.Error.Sprint(r.Failed),
		r.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "  %s min %s  mean %s  p50 %s  p90 %s  p99 %s  max %s\n",
		scheme.Label.Sprint("Latency:"),
		scheme.Value.Sprint(r.Latency.Min),
		scheme.Value.Sprint(r.Latency.Mean),
		scheme.Value.Sprint(r.Latency.P50),
		scheme.Highlight.Sprint(r.Latency.P90),
		scheme.Highlight.Sprint(r.Latency.P99),
		scheme.Value.Sprint(r.Latency.Max))
	for _, e := range r.Errors {
		fmt.Fprintf(w, "  %s %s\n", scheme.Error.Sprint("error:"), e)
	}
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
