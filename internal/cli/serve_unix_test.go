//go:build !windows

package cli

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wesleyorama2/stressd/internal/server"
)

// The serve tests below re-run the test binary as a child process that
// executes the real serve command, so os.Exit and signal delivery behave
// exactly as they do in stressd.
const (
	serveChildEnv       = "STRESSD_SERVE_CHILD"
	serveChildConfigEnv = "STRESSD_SERVE_CHILD_CONFIG"
)

const shutdownOutput = "SIGTERM received. Application is shutting down gracefully!\n" +
	"Doing some cleanup logic here...\n"

// runServeChild runs serve when the test binary was started by startServeChild.
func runServeChild() {
	args := []string{"--host", "127.0.0.1", "--port", "0", "--no-color"}
	if path := os.Getenv(serveChildConfigEnv); path != "" {
		args = append(args, "--config", path)
	}

	cmd := newServeCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}
	// Serve only returns on failure; reaching here is a bug.
	os.Exit(4)
}

type serveChild struct {
	cmd    *exec.Cmd
	stdout *bufio.Reader
	stderr bytes.Buffer
}

func startServeChild(t *testing.T, testName string, env ...string) *serveChild {
	t.Helper()

	c := &serveChild{cmd: exec.Command(os.Args[0], "-test.run=^"+testName+"$")}
	c.cmd.Env = append(append(os.Environ(), serveChildEnv+"=1"), env...)
	c.cmd.Stderr = &c.stderr

	pipe, err := c.cmd.StdoutPipe()
	require.NoError(t, err)
	c.stdout = bufio.NewReader(pipe)

	require.NoError(t, c.cmd.Start())
	t.Cleanup(func() { _ = c.cmd.Process.Kill() })
	return c
}

// finish signals the child with SIGTERM and returns everything it printed
// afterwards together with its exit code.
func (c *serveChild) finish(t *testing.T) (string, int) {
	t.Helper()

	require.NoError(t, c.cmd.Process.Signal(syscall.SIGTERM))
	rest, err := io.ReadAll(c.stdout)
	require.NoError(t, err)

	waitErr := c.cmd.Wait()
	if _, ok := waitErr.(*exec.ExitError); waitErr != nil && !ok {
		t.Fatalf("waiting for serve: %v", waitErr)
	}
	if !c.cmd.ProcessState.Exited() {
		t.Fatalf("serve did not exit on its own: %v\nstderr:\n%s", c.cmd.ProcessState, c.stderr.String())
	}
	return string(rest), c.cmd.ProcessState.ExitCode()
}

func TestServeCmd_SIGTERMAfterServing(t *testing.T) {
	if os.Getenv(serveChildEnv) == "1" {
		runServeChild()
		return
	}

	child := startServeChild(t, "TestServeCmd_SIGTERMAfterServing")

	var banner []string
	for {
		line, err := child.stdout.ReadString('\n')
		if err != nil {
			_ = child.cmd.Process.Kill()
			_ = child.cmd.Wait()
			t.Fatalf("reading banner: %v\nstderr:\n%s", err, child.stderr.String())
		}
		banner = append(banner, strings.TrimSuffix(line, "\n"))
		if strings.HasPrefix(line, "Send SIGTERM") {
			break
		}
	}

	baseURL, ok := strings.CutPrefix(banner[0], "stressd listening on ")
	require.True(t, ok, "unexpected banner line %q", banner[0])

	httpClient := &http.Client{Timeout: 30 * time.Second}
	resp, err := httpClient.Get(baseURL + "/stress")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, server.StressBody, string(body))

	rest, code := child.finish(t)
	assert.Equal(t, 0, code, "stderr:\n%s", child.stderr.String())
	assert.Equal(t, shutdownOutput, rest)
}

func TestServeCmd_SIGTERMWhileLoadingConfig(t *testing.T) {
	if os.Getenv(serveChildEnv) == "1" {
		runServeChild()
		return
	}

	// Reading a FIFO blocks until a writer opens it, holding the child
	// inside config loading for as long as the test needs.
	fifo := filepath.Join(t.TempDir(), "stressd.yaml")
	require.NoError(t, syscall.Mkfifo(fifo, 0o600))

	child := startServeChild(t, "TestServeCmd_SIGTERMWhileLoadingConfig", serveChildConfigEnv+"="+fifo)

	// Opening for write returns once the child has opened the FIFO for
	// reading, i.e. once it is past startup and loading the config.
	opened := make(chan *os.File, 1)
	go func() {
		w, err := os.OpenFile(fifo, os.O_WRONLY, 0)
		if err == nil {
			opened <- w
		}
	}()

	var writer *os.File
	select {
	case writer = <-opened:
	case <-time.After(30 * time.Second):
		t.Fatal("serve never started reading its config file")
	}
	defer writer.Close()

	rest, code := child.finish(t)
	assert.Equal(t, 0, code, "stderr:\n%s", child.stderr.String())
	assert.Equal(t, shutdownOutput, rest)
}
