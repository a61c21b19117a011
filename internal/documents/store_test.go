package documents

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadMissingFileReturnsPlaceholder(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Bio.txt")
	if got := Load(path); got != path+" not found." {
		t.Fatalf("unexpected placeholder: %q", got)
	}

	text, err := Read(path)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
	if text != Placeholder(path) {
		t.Fatalf("expected placeholder from Read, got %q", text)
	}
}

func TestLoadReturnsFileContent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "Projects.txt")
	content := "Sales Prediction Hybrid Model\r\nGradio demo\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	if got := Load(path); got != content {
		t.Fatalf("expected raw content to be returned unchanged, got %q", got)
	}
}

func TestNewStore(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bio := filepath.Join(dir, "Bio.txt")
	if err := os.WriteFile(bio, []byte("I am your AI career assistant.\n\nComputer Science graduate."), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	core, observed := observer.New(zapcore.WarnLevel)
	store := NewStore([]Source{
		{Section: SectionBio, Path: bio},
		{Section: SectionProjects, Path: filepath.Join(dir, "Projects.txt")},
		{Section: SectionBio, Path: filepath.Join(dir, "other.txt")},
	}, zap.New(core))

	if store.Len() != 2 {
		t.Fatalf("expected 2 documents, got %d", store.Len())
	}

	doc, ok := store.Get(SectionBio)
	if !ok {
		t.Fatalf("expected bio document")
	}
	if doc.Missing {
		t.Fatalf("bio should not be missing")
	}
	if doc.Normalized != "Computer Science graduate." {
		t.Fatalf("unexpected normalized bio: %q", doc.Normalized)
	}

	projects, _ := store.Get(SectionProjects)
	if !projects.Missing {
		t.Fatalf("projects should be missing")
	}
	if store.Raw(SectionProjects) != Placeholder(filepath.Join(dir, "Projects.txt")) {
		t.Fatalf("unexpected projects raw text: %q", store.Raw(SectionProjects))
	}

	if store.Raw(SectionGoals) != "" || store.Normalized(SectionGoals) != "" {
		t.Fatalf("unknown section should be empty")
	}

	docs := store.Documents()
	if docs[0].Section != SectionBio || docs[1].Section != SectionProjects {
		t.Fatalf("documents are not in source order: %+v", docs)
	}

	docs[0].Raw = "mutated"
	if store.Raw(SectionBio) == "mutated" {
		t.Fatalf("documents must be returned as a copy")
	}

	if got := observed.FilterMessage("section document is not available, using placeholder").Len(); got != 1 {
		t.Fatalf("expected 1 missing document warning, got %d", got)
	}
	if got := observed.FilterMessage("duplicate section source ignored").Len(); got != 1 {
		t.Fatalf("expected 1 duplicate warning, got %d", got)
	}
}

func TestDefaultSourcesOrder(t *testing.T) {
	t.Parallel()

	sources := DefaultSources()
	if len(sources) != len(Sections) {
		t.Fatalf("expected %d sources, got %d", len(Sections), len(sources))
	}

	for i, src := range sources {
		if src.Section != Sections[i] {
			t.Fatalf("source %d: expected section %s, got %s", i, Sections[i], src.Section)
		}
	}

	if sources[2].Path != "Career Goals.txt" {
		t.Fatalf("unexpected goals path: %q", sources[2].Path)
	}
}
