package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vango-go/folio/internal/config"
)

func TestRunWritesIndex(t *testing.T) {
	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "dist")
	cfg.Assets = ""
	cfg.Title = "My Site"
	cfg.Owner = "Jane Roe"

	result, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Files != 1 {
		t.Errorf("Files = %d, want 1", result.Files)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Output, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	html := string(data)
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>My Site</title>",
		"Jane Roe",
		`href="assets/style.css"`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("index.html missing %q", want)
		}
	}
}

func TestRunCopiesAssets(t *testing.T) {
	assets := t.TempDir()
	os.WriteFile(filepath.Join(assets, "style.css"), []byte("body{}"), 0o644)
	os.MkdirAll(filepath.Join(assets, "img"), 0o755)
	os.WriteFile(filepath.Join(assets, "img", "me.png"), []byte{0x89}, 0o644)

	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "dist")
	cfg.Assets = assets

	result, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Files != 3 {
		t.Errorf("Files = %d, want 3", result.Files)
	}

	for _, rel := range []string{
		filepath.Join("assets", "style.css"),
		filepath.Join("assets", "img", "me.png"),
	} {
		if _, err := os.Stat(filepath.Join(cfg.Output, rel)); err != nil {
			t.Errorf("missing copied asset %s: %v", rel, err)
		}
	}
}

func TestRunMissingAssetsDirIsFine(t *testing.T) {
	cfg := config.Default()
	cfg.Output = filepath.Join(t.TempDir(), "dist")
	cfg.Assets = filepath.Join(t.TempDir(), "nope")

	result, err := Run(cfg)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Files != 1 {
		t.Errorf("Files = %d, want 1", result.Files)
	}
}
