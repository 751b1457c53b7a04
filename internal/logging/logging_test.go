package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_WritesTextRecordsWhenNotSilent(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, false)
	log.Info("staged project", "files", 3)

	out := buf.String()
	if !strings.Contains(out, "staged project") || !strings.Contains(out, "files=3") {
		t.Errorf("output = %q, want a text-formatted record with the files attribute", out)
	}
}

func TestNew_DiscardsWhenSilent(t *testing.T) {
	var buf bytes.Buffer

	log := New(&buf, true)
	log.Info("should not appear")

	if buf.Len() != 0 {
		t.Errorf("buf = %q, want nothing written when silent", buf.String())
	}
}
