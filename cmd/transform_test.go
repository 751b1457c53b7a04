package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	m "github.com/filedbg/filedbg/internal/model"
)

func TestTransformCmd_Success(t *testing.T) {
	fake := &fakeWorkflow{transformResult: m.TransformResult{Edits: 3, Globals: 2}}
	defer withFakeWorkflow(fake)()

	cmd := newTransformCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"in.go", "out.go"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if fake.transformReq.Input != "in.go" || fake.transformReq.Output != "out.go" {
		t.Errorf("Transform called with %+v", fake.transformReq)
	}

	if got := errOut.String(); !strings.Contains(got, "in.go -> out.go (3 edits, 2 globals)") {
		t.Errorf("stderr summary = %q, missing edit/global counts", got)
	}
}

func TestTransformCmd_PassThroughWarning(t *testing.T) {
	fake := &fakeWorkflow{transformResult: m.TransformResult{PassedThrough: true, Warning: "(no debug needed)"}}
	defer withFakeWorkflow(fake)()

	cmd := newTransformCmd()

	var errOut bytes.Buffer
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{"in.go", "out.go"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := errOut.String(); !strings.Contains(got, "(no debug needed)") {
		t.Errorf("stderr = %q, want pass-through warning", got)
	}
}

func TestTransformCmd_MissingArgs(t *testing.T) {
	fake := &fakeWorkflow{}
	defer withFakeWorkflow(fake)()

	cmd := newTransformCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"only-one-arg"})

	err := cmd.Execute()
	if !errors.Is(err, ErrUsage) {
		t.Errorf("Execute() error = %v, want ErrUsage", err)
	}
}

func TestTransformCmd_PropagatesTransformError(t *testing.T) {
	fake := &fakeWorkflow{transformErr: errors.New("read boom")}
	defer withFakeWorkflow(fake)()

	cmd := newTransformCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"in.go", "out.go"})

	err := cmd.Execute()
	if err == nil || errors.Is(err, ErrUsage) {
		t.Errorf("Execute() error = %v, want non-usage error", err)
	}
}

func TestTransformCmd_Flags(t *testing.T) {
	cmd := newTransformCmd()

	if cmd.Flags().Lookup("step") == nil {
		t.Error("missing --step flag")
	}

	if cmd.Flags().Lookup("runtime-path") == nil {
		t.Error("missing --runtime-path flag")
	}
}
