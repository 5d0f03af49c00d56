package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProgressDefault(t *testing.T) {
	st := New(t.TempDir())
	if got := st.LoadProgress(); got != 1 {
		t.Errorf("expected level 1 with no saved progress, got %d", got)
	}
}

func TestProgressRoundTrip(t *testing.T) {
	st := New(t.TempDir())

	if err := st.SaveProgress(4); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got := st.LoadProgress(); got != 4 {
		t.Errorf("expected level 4, got %d", got)
	}

	if err := st.SaveProgress(6); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if got := st.LoadProgress(); got != 6 {
		t.Errorf("expected the won level to persist, got %d", got)
	}
}

func TestProgressCorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "progress.json"), []byte("{garbage"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := st.LoadProgress(); got != 1 {
		t.Errorf("expected level 1 for corrupt file, got %d", got)
	}
}

func TestProgressFloorsAtOne(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(tmpDir, "progress.json"), []byte(`{"level": 0}`), 0644); err != nil {
		t.Fatal(err)
	}
	if got := st.LoadProgress(); got != 1 {
		t.Errorf("expected level floor of 1, got %d", got)
	}
}
