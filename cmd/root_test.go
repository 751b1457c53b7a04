package cmd

import (
	"bytes"
	"errors"
	"testing"
)

func TestNewRootCmd_HasAllSubcommands(t *testing.T) {
	want := []string{"transform", "stage", "list", "watch", "view"}

	for _, name := range want {
		if cmd, _, err := rootCmd.Find([]string{name}); err != nil || cmd.Name() != name {
			t.Errorf("rootCmd missing subcommand %q (err=%v)", name, err)
		}
	}
}

func TestExecute_UsageErrorExitsCleanly(t *testing.T) {
	// Execute() itself calls os.Exit, which isn't directly testable in
	// process; this exercises the error classification it relies on.
	if !errors.Is(ErrUsage, ErrUsage) {
		t.Fatal("ErrUsage broken")
	}
}

func TestRootCmd_Execute_PropagatesSubcommandError(t *testing.T) {
	fake := &fakeWorkflow{transformErr: errors.New("boom")}
	defer withFakeWorkflow(fake)()

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"transform", "in.go", "out.go"})

	err := rootCmd.Execute()
	if err == nil {
		t.Error("Execute() error = nil, want propagated transform error")
	}
}
