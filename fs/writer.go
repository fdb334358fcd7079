// Package fs writes exported documentation as Markdown files.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/codewiki"
	"gopkg.in/yaml.v3"
)

// ExportPath returns the relative file path of a repository export.
// Example: acme/widget → github.com/acme/widget.md
func ExportPath(owner, repo string) (string, error) {
	for _, part := range []string{owner, repo} {
		if part == "" || part == "." || part == ".." || strings.ContainsAny(part, `/\`) {
			return "", codewiki.Errorf(codewiki.EINVALID, "invalid path component %q", part)
		}
	}
	return filepath.Join("github.com", owner, repo+".md"), nil
}

// frontmatter is the metadata block written before the Markdown content.
type frontmatter struct {
	Source     string `yaml:"source"`
	Repository string `yaml:"repository"`
	Title      string `yaml:"title"`
	Fetched    string `yaml:"fetched"`
}

// FormatExport formats an export with YAML frontmatter.
func FormatExport(export *codewiki.Export) (string, error) {
	meta, err := yaml.Marshal(frontmatter{
		Source:     export.URL,
		Repository: export.Owner + "/" + export.Repo,
		Title:      export.Title,
		Fetched:    export.FetchedAt.Format("2006-01-02"),
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(export.Content)
	return b.String(), nil
}

// Ensure Writer implements codewiki.ExportWriter at compile time.
var _ codewiki.ExportWriter = (*Writer)(nil)

// Writer writes exports as markdown files below a base directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// Path returns the file an export of owner/repo is written to.
func (w *Writer) Path(owner, repo string) (string, error) {
	relPath, err := ExportPath(owner, repo)
	if err != nil {
		return "", err
	}
	return filepath.Join(w.baseDir, relPath), nil
}

// WriteExport writes an export to disk. The file is replaced atomically so
// a failed write never leaves a partial export behind.
func (w *Writer) WriteExport(ctx context.Context, export *codewiki.Export) error {
	if err := export.Validate(); err != nil {
		return err
	}

	fullPath, err := w.Path(export.Owner, export.Repo)
	if err != nil {
		return err
	}

	content, err := FormatExport(export)
	if err != nil {
		return err
	}

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp := fullPath + ".tmp"
	if err := os.WriteFile(tmp, []byte(content), 0644); err != nil {
		return err
	}
	if err := os.Rename(tmp, fullPath); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
