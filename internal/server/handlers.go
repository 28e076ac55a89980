package server

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/wesleyorama2/stressd/internal/load"
)

// Response bodies. Both routes always answer 200 with these exact strings.
const (
	IndexBody  = "Web server is running. Hit the /stress endpoint to generate load."
	StressBody = "CPU load generated successfully!"
)

// IndexHandler answers GET / with IndexBody.
func IndexHandler(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, IndexBody)
}

// StressHandler runs the load generator to completion, then answers with
// StressBody. Nothing is written before the computation returns.
func StressHandler(w http.ResponseWriter, r *http.Request) {
	result := load.Generate()
	LoggerFrom(r).Debug("Load generated",
		zap.Int("iterations", load.Iterations-1),
		zap.Float64("result", result),
	)
	writeText(w, http.StatusOK, StressBody)
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
