package rendezvous

import "testing"

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		kind CommandKind
		args []string
	}{
		{"", CommandNone, nil},
		{"   ", CommandNone, nil},
		{"continue", CommandContinue, nil},
		{"c", CommandContinue, nil},
		{"quit", CommandQuit, nil},
		{"q", CommandQuit, nil},
		{"step", CommandStep, nil},
		{"s", CommandStep, nil},
		{"next", CommandNext, nil},
		{"n", CommandNext, nil},
		{"vars", CommandVars, nil},
		{"v", CommandVars, nil},
		{"print x", CommandPrint, []string{"x"}},
		{"print x y", CommandPrint, []string{"x", "y"}},
		{"x.field", CommandQuery, []string{"x.field"}},
	}

	for _, tt := range tests {
		got := ParseCommand(tt.line)

		if got.Kind != tt.kind {
			t.Errorf("ParseCommand(%q).Kind = %v, want %v", tt.line, got.Kind, tt.kind)
		}

		if len(got.Args) != len(tt.args) {
			t.Errorf("ParseCommand(%q).Args = %v, want %v", tt.line, got.Args, tt.args)
			continue
		}

		for i := range tt.args {
			if got.Args[i] != tt.args[i] {
				t.Errorf("ParseCommand(%q).Args[%d] = %q, want %q", tt.line, i, got.Args[i], tt.args[i])
			}
		}
	}
}
