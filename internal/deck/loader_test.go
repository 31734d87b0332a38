package deck

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestLoadDirSortsAndSkipsSpecials(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"02_middle.md": "# Middle\n\ntext",
		"01_intro.md":  "# Intro\n\nhello",
		"03_end.md":    "# End",
		"_notes.md":    "speaker notes, not a slide",
		"readme.txt":   "not markdown",
	})

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(d.Pages) != 3 {
		t.Fatalf("expected 3 pages, got %d", len(d.Pages))
	}
	for i, want := range []string{"Intro", "Middle", "End"} {
		if d.Pages[i].Title != want {
			t.Fatalf("page %d title = %q, want %q", i, d.Pages[i].Title, want)
		}
	}
	if d.Pages[0].ID != "01_intro.md" {
		t.Fatalf("expected page IDs to be filenames, got %q", d.Pages[0].ID)
	}
}

func TestLoadDirReadsMeta(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"deck.yaml":   "title: Talk\nauthor: Ada\ntheme: dark\n",
		"01_intro.md": "# Intro",
	})

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if d.Meta.Title != "Talk" || d.Meta.Author != "Ada" || d.Meta.Theme != "dark" {
		t.Fatalf("unexpected meta: %+v", d.Meta)
	}
}

func TestLoadFileSplitsOnSeparators(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.md")
	content := "# One\n\nfirst\n---\n# Two\n\nsecond\n---\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write file: %v", err)
	}

	d, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(d.Pages) != 2 {
		t.Fatalf("expected 2 pages (trailing separator dropped), got %d", len(d.Pages))
	}
	if d.Pages[0].Title != "One" || d.Pages[1].Title != "Two" {
		t.Fatalf("unexpected titles: %q, %q", d.Pages[0].Title, d.Pages[1].Title)
	}
	if d.Pages[0].ID == d.Pages[1].ID {
		t.Fatalf("expected distinct page IDs, both %q", d.Pages[0].ID)
	}
}

func TestLoadMissingPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestPageTitleFallsBackToFilename(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"04_closing-words.md": "no heading here, just text",
	})

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if d.Pages[0].Title != "closing words" {
		t.Fatalf("expected derived title %q, got %q", "closing words", d.Pages[0].Title)
	}
}

func TestFirstHeadingIgnoresDeeperLevels(t *testing.T) {
	title := firstHeading([]byte("text first\n\n## Section *two*\n\n# Later"))
	if title != "Section two" {
		t.Fatalf("expected first heading in document order, got %q", title)
	}
}
