// Package scaffold creates new pagewire projects: a copy of the sample site
// plus a pagewire.yaml rendered from the embedded templates.
package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/eringen/pagewire"
)

// Templates contains the project-level template files. Files use Go
// text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS

// SiteDir is the directory, relative to the project, that receives the
// sample site.
const SiteDir = "site"

// Data holds the template variables passed to every template.
type Data struct {
	ProjectName string
	SiteName    string
	SiteDir     string
}

// New creates dir and fills it with a runnable project. It returns the
// created file paths in creation order.
func New(dir string) ([]string, error) {
	if _, err := os.Stat(dir); err == nil {
		return nil, fmt.Errorf("directory %q already exists", dir)
	}

	name := filepath.Base(dir)
	data := Data{ProjectName: name, SiteName: toTitle(name), SiteDir: SiteDir}

	var created []string
	site, err := pagewire.EmbeddedSite()
	if err != nil {
		return nil, err
	}
	err = fs.WalkDir(site, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		outPath := filepath.Join(dir, SiteDir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}
		content, err := fs.ReadFile(site, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		if err := os.WriteFile(outPath, content, 0o644); err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		created = append(created, outPath)
		return nil
	})
	if err != nil {
		return created, err
	}

	err = fs.WalkDir(Templates, "templates", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel("templates", path)
		if err != nil {
			return err
		}
		outPath := strings.TrimSuffix(filepath.Join(dir, rel), ".tmpl")

		content, err := Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return err
		}
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		defer f.Close()
		if err := tmpl.Execute(f, data); err != nil {
			return fmt.Errorf("execute template %s: %w", path, err)
		}
		created = append(created, outPath)
		return nil
	})
	return created, err
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-site" -> "My Site"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
