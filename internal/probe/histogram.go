package probe

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram bounds, in microseconds: 1us to 1 hour, 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = 3600000000
	histogramSigFigs = 3
)

// LatencyRecorder records latencies into an HDR histogram.
//
// LatencyRecorder is safe for concurrent use; hdrhistogram.Histogram is
// not, so every access holds mu.
type LatencyRecorder struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

// NewLatencyRecorder creates an empty recorder.
func NewLatencyRecorder() *LatencyRecorder {
	return &LatencyRecorder{
		hist: hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
	}
}

// Record adds one latency, clamped to the histogram range.
func (r *LatencyRecorder) Record(d time.Duration) {
	v := d.Microseconds()
	if v < histogramMin {
		v = histogramMin
	}
	if v > histogramMax {
		v = histogramMax
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	_ = r.hist.RecordValue(v)
}

// Count returns the number of recorded values.
func (r *LatencyRecorder) Count() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hist.TotalCount()
}

// Snapshot summarizes everything recorded so far.
func (r *LatencyRecorder) Snapshot() LatencySummary {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hist.TotalCount() == 0 {
		return LatencySummary{}
	}

	return LatencySummary{
		Min:  micros(r.hist.Min()),
		Mean: time.Duration(r.hist.Mean() * float64(time.Microsecond)),
		P50:  micros(r.hist.ValueAtQuantile(50)),
		P90:  micros(r.hist.ValueAtQuantile(90)),
		P99:  micros(r.hist.ValueAtQuantile(99)),
		Max:  micros(r.hist.Max()),
	}
}

// LatencySummary holds latency statistics.
type LatencySummary struct {
	Min  time.Duration
	Mean time.Duration
	P50  time.Duration
	P90  time.Duration
	P99  time.Duration
	Max  time.Duration
}

func micros(v int64) time.Duration {
	return time.Duration(v) * time.Microsecond
}
