package cli

import (
	"bytes"
	"testing"
)

// TestExecute tests the Execute function
func TestExecute(t *testing.T) {
	var buf bytes.Buffer
	RootCmd.SetOut(&buf)
	RootCmd.SetArgs([]string{"version"})
	defer func() {
		RootCmd.SetOut(nil)
		RootCmd.SetArgs(nil)
	}()

	if err := Execute(); err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}
	if got := buf.String(); got != "stressd "+version+"\n" {
		t.Errorf("unexpected version output: %q", got)
	}
}

func TestExecute_UnknownCommand(t *testing.T) {
	RootCmd.SetArgs([]string{"explode"})
	defer RootCmd.SetArgs(nil)

	if err := Execute(); err == nil {
		t.Error("expected an error for an unknown command")
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	for _, name := range []string{"serve", "probe", "version"} {
		cmd, _, err := RootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("expected subcommand %q to be registered", name)
		}
	}
}
