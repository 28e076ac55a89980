package server

import (
	"bytes"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShutdownHandler_Handle(t *testing.T) {
	var out bytes.Buffer
	exitCode := -1
	h := &ShutdownHandler{Out: &out, Exit: func(code int) { exitCode = code }}

	assert.Equal(t, StateRunning, h.State())

	h.Handle(syscall.SIGTERM)

	assert.Equal(t, StateShuttingDown, h.State())
	assert.Equal(t, 0, exitCode)
	assert.Equal(t,
		"SIGTERM received. Application is shutting down gracefully!\n"+
			"Doing some cleanup logic here...\n",
		out.String())
}

func TestShutdownHandler_OnlyOnce(t *testing.T) {
	var out bytes.Buffer
	exits := 0
	h := &ShutdownHandler{Out: &out, Exit: func(int) { exits++ }}

	h.Handle(syscall.SIGTERM)
	h.Handle(syscall.SIGTERM)

	assert.Equal(t, 1, exits)
	assert.Equal(t, 2, bytes.Count(out.Bytes(), []byte("\n")))
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "RUNNING", StateRunning.String())
	assert.Equal(t, "SHUTTING_DOWN", StateShuttingDown.String())
	assert.Equal(t, "State(7)", State(7).String())
}
