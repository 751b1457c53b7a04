package runtime

import "testing"

func TestParseBreakpointFile_Basic(t *testing.T) {
	src := `breakpoints {
    { file = "main.go", line = 10 },
    { file = "util.go", line = 5, enabled = false },
}
`

	entries, err := ParseBreakpointFile([]byte(src))
	if err != nil {
		t.Fatalf("ParseBreakpointFile() error = %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}

	if entries[0].File != "main.go" || entries[0].Line != 10 || !entries[0].Enabled {
		t.Errorf("entries[0] = %+v", entries[0])
	}

	if entries[1].File != "util.go" || entries[1].Line != 5 || entries[1].Enabled {
		t.Errorf("entries[1] = %+v", entries[1])
	}
}

func TestParseBreakpointFile_EmptyBody(t *testing.T) {
	entries, err := ParseBreakpointFile([]byte("breakpoints {\n}\n"))
	if err != nil {
		t.Fatalf("ParseBreakpointFile() error = %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestParseBreakpointFile_Condition(t *testing.T) {
	src := `breakpoints {
    { file = "main.go", line = 10, condition = "x > 5" },
}
`

	entries, err := ParseBreakpointFile([]byte(src))
	if err != nil {
		t.Fatalf("ParseBreakpointFile() error = %v", err)
	}

	if len(entries) != 1 || entries[0].Condition != "x > 5" {
		t.Errorf("entries = %+v, want condition %q", entries, "x > 5")
	}
}

func TestParseBreakpointFile_IgnoresComments(t *testing.T) {
	src := `breakpoints {
    // a leading comment
    { file = "main.go", line = 10 }, // trailing
}
`

	entries, err := ParseBreakpointFile([]byte(src))
	if err != nil {
		t.Fatalf("ParseBreakpointFile() error = %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("len(entries) = %d, want 1", len(entries))
	}
}

func TestParseBreakpointFile_MissingOpenBrace(t *testing.T) {
	_, err := ParseBreakpointFile([]byte("breakpoints\n"))
	if err == nil {
		t.Fatal("ParseBreakpointFile() error = nil, want a parse error")
	}
}

func TestParseBreakpointFile_NoBreakpointsBlockIsEmpty(t *testing.T) {
	entries, err := ParseBreakpointFile([]byte("// just a comment\n"))
	if err != nil {
		t.Fatalf("ParseBreakpointFile() error = %v", err)
	}

	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}

func TestParseBreakpointFile_DropsEntriesPastLimit(t *testing.T) {
	src := "breakpoints {\n"
	for i := 0; i < MaxBreakpoints+5; i++ {
		src += `    { file = "main.go", line = 1 },` + "\n"
	}
	src += "}\n"

	entries, err := ParseBreakpointFile([]byte(src))
	if err != nil {
		t.Fatalf("ParseBreakpointFile() error = %v", err)
	}

	if len(entries) != MaxBreakpoints {
		t.Errorf("len(entries) = %d, want capped at %d", len(entries), MaxBreakpoints)
	}
}
