// Package build renders the folio site to a static output directory.
package build

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vango-go/folio/internal/config"
	"github.com/vango-go/folio/pkg/page"
	"github.com/vango-go/folio/pkg/render"
)

// Result describes what a build produced.
type Result struct {
	// OutputDir is the directory the site was written to.
	OutputDir string

	// Files is the number of files written, including copied assets.
	Files int
}

// Run renders the page to <output>/index.html and copies the assets
// directory, if present, to <output>/assets.
func Run(cfg *config.Config) (*Result, error) {
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	site := page.DefaultSite()
	if cfg.Owner != "" {
		site.Owner = cfg.Owner
	}
	if cfg.Title != "" {
		site.Title = cfg.Title
	}
	if cfg.Tagline != "" {
		site.Tagline = cfg.Tagline
	}

	doc := page.Build(site)
	html, err := render.PageString(doc, render.PageConfig{
		Title:  site.Title,
		Styles: []string{"assets/style.css"},
	})
	if err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}

	indexPath := filepath.Join(cfg.Output, "index.html")
	if err := os.WriteFile(indexPath, []byte(html), 0o644); err != nil {
		return nil, fmt.Errorf("write index.html: %w", err)
	}

	result := &Result{OutputDir: cfg.Output, Files: 1}

	if cfg.Assets != "" {
		if info, err := os.Stat(cfg.Assets); err == nil && info.IsDir() {
			copied, err := copyTree(cfg.Assets, filepath.Join(cfg.Output, "assets"))
			if err != nil {
				return nil, fmt.Errorf("copy assets: %w", err)
			}
			result.Files += copied
		}
	}

	return result, nil
}

// copyTree copies every regular file under src into dst, preserving
// relative paths. It returns the number of files copied.
func copyTree(src, dst string) (int, error) {
	copied := 0
	err := filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
