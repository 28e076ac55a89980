package cli

import (
	"bytes"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadServeConfig_Defaults(t *testing.T) {
	cmd := newServeCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	cfg, err := loadServeConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadServeConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stressd.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  host: 127.0.0.1
  port: 8080
log:
  level: debug
  format: json
`), 0644))

	cmd := newServeCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--port", "9090"}))

	cfg, err := loadServeConfig(cmd)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Server.Host, "file value kept when flag not set")
	assert.Equal(t, 9090, cfg.Server.Port, "explicit flag wins over file")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadServeConfig_Invalid(t *testing.T) {
	cmd := newServeCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--log-format", "xml"}))

	_, err := loadServeConfig(cmd)
	assert.ErrorContains(t, err, "log.format")

	cmd = newServeCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--config", "/nonexistent.yaml"}))
	_, err = loadServeConfig(cmd)
	assert.ErrorContains(t, err, "error loading config")
}

func TestServeCmd_ListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()
	port := strconv.Itoa(busy.Addr().(*net.TCPAddr).Port)

	var stdout, stderr bytes.Buffer
	cmd := newServeCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"--host", "127.0.0.1", "--port", port, "--no-color"})

	err = cmd.Execute()
	assert.ErrorContains(t, err, "failed to listen on 127.0.0.1:"+port)
	assert.NotContains(t, stdout.String(), "listening on")
}
