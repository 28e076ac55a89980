package server

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
)

// Lines written to stdout when SIGTERM arrives, in this order.
const (
	ShutdownMessage = "SIGTERM received. Application is shutting down gracefully!"
	CleanupMessage  = "Doing some cleanup logic here..."
)

// State is the lifecycle state of the process as seen by the shutdown
// handler.
type State int32

const (
	StateRunning State = iota
	// StateShuttingDown is terminal.
	StateShuttingDown
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "RUNNING"
	case StateShuttingDown:
		return "SHUTTING_DOWN"
	default:
		return fmt.Sprintf("State(%d)", int32(s))
	}
}

// ShutdownHandler reacts to the termination signal: it writes the two
// shutdown lines and exits with status 0. In-flight requests are not
// drained and nothing is released.
type ShutdownHandler struct {
	// Out receives the shutdown lines. Defaults to os.Stdout.
	Out io.Writer
	// Exit terminates the process. Defaults to os.Exit.
	Exit func(code int)

	state atomic.Int32
}

// NewShutdownHandler returns a handler writing to stdout and exiting the
// process.
func NewShutdownHandler() *ShutdownHandler {
	return &ShutdownHandler{Out: os.Stdout, Exit: os.Exit}
}

// State returns the current lifecycle state.
func (h *ShutdownHandler) State() State {
	return State(h.state.Load())
}

// Handle performs the RUNNING -> SHUTTING_DOWN transition. Only the first
// call has any effect.
func (h *ShutdownHandler) Handle(sig os.Signal) {
	if !h.state.CompareAndSwap(int32(StateRunning), int32(StateShuttingDown)) {
		return
	}

	out := h.Out
	if out == nil {
		out = os.Stdout
	}
	fmt.Fprintln(out, ShutdownMessage)
	fmt.Fprintln(out, CleanupMessage)

	exit := h.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(0)
}

// Register installs h as the SIGTERM handler, replacing the default
// action. Other signals are left alone. The returned func unregisters it.
func Register(h *ShutdownHandler) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case sig := <-sigCh:
				h.Handle(sig)
			case <-done:
				return
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			signal.Stop(sigCh)
			close(done)
		})
	}
}
