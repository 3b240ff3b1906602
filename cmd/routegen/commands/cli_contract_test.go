package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestCLIContract_RootHelp(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	if err != nil {
		t.Fatalf("root help failed: %v", err)
	}

	out := b.String()
	for _, want := range []string{"resolve", "query", "scan", "version"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in root help", want)
		}
	}
}

func TestCLIContract_Version(t *testing.T) {
	cmd := NewRootCmd()
	b := bytes.NewBufferString("")
	cmd.SetOut(b)
	cmd.SetArgs([]string{"version"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("version command failed: %v", err)
	}
	if !strings.Contains(b.String(), "routegen version") {
		t.Errorf("unexpected version output: %q", b.String())
	}
}
