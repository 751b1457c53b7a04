package rendezvous

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteAtomic_ReadBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.txt")

	if err := WriteAtomic(path, []byte("status=running\n")); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	got, err := ReadIfExists(path)
	if err != nil {
		t.Fatalf("ReadIfExists() error = %v", err)
	}

	if string(got) != "status=running\n" {
		t.Errorf("content = %q", got)
	}
}

func TestWriteAtomic_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "state.txt")

	if err := WriteAtomic(path, []byte("a")); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	if err := WriteAtomic(path, []byte("b")); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("dir has %d entries, want exactly the final file", len(entries))
	}
}

func TestReadIfExists_AbsentFileIsNilNotError(t *testing.T) {
	dir := t.TempDir()

	content, err := ReadIfExists(filepath.Join(dir, "missing.txt"))
	if err != nil {
		t.Fatalf("ReadIfExists() error = %v, want nil", err)
	}

	if content != nil {
		t.Errorf("content = %q, want nil", content)
	}
}

func TestDeleteIfExists_AbsentFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()

	if err := DeleteIfExists(filepath.Join(dir, "missing.txt")); err != nil {
		t.Errorf("DeleteIfExists() error = %v, want nil", err)
	}
}

func TestDeleteIfExists_RemovesPresentFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")

	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := DeleteIfExists(path); err != nil {
		t.Fatalf("DeleteIfExists() error = %v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file still exists after DeleteIfExists")
	}
}

func TestModTime_AbsentFileReportsNotExists(t *testing.T) {
	dir := t.TempDir()

	_, exists := ModTime(filepath.Join(dir, "missing.txt"))
	if exists {
		t.Error("ModTime() exists = true, want false")
	}
}

func TestModTime_ChangesAfterRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")

	if err := WriteAtomic(path, []byte("a")); err != nil {
		t.Fatalf("WriteAtomic() error = %v", err)
	}

	first, exists := ModTime(path)
	if !exists {
		t.Fatal("ModTime() exists = false after write")
	}

	if first == 0 {
		t.Error("ModTime() = 0, want a real timestamp")
	}
}
