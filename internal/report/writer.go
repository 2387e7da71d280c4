package report

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"photocast/internal/dashboard"
	"photocast/internal/logger"
)

// Writer saves report files under a per-run timestamped folder.
type Writer struct {
	baseDir     string
	htmlBuilder *HTMLBuilder
}

// NewWriter creates a report writer rooted at baseDir.
func NewWriter(baseDir string) *Writer {
	return &Writer{
		baseDir:     baseDir,
		htmlBuilder: NewHTMLBuilder(),
	}
}

// FolderPath returns the report folder for a given run timestamp.
func (w *Writer) FolderPath(t time.Time) string {
	return filepath.Join(w.baseDir, t.UTC().Format("2006-01-02_15-04"))
}

// Write renders markdown and HTML for the summary and saves both, returning
// the paths written. Chart files are referenced by base name so the HTML page
// works when the folder is moved.
func (w *Writer) Write(s *dashboard.Summary, chartFiles []string) ([]string, error) {
	folder := w.FolderPath(s.GeneratedAt)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create report folder: %w", err)
	}

	markdown := BuildMarkdown(s)

	var chartRefs []string
	for _, cf := range chartFiles {
		chartRefs = append(chartRefs, filepath.Base(cf))
	}

	page, err := w.htmlBuilder.BuildPage("Photography Report: "+s.City, markdown, chartRefs)
	if err != nil {
		return nil, err
	}

	mdPath := filepath.Join(folder, "report.md")
	if err := os.WriteFile(mdPath, []byte(markdown), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write markdown report: %w", err)
	}

	htmlPath := filepath.Join(folder, "report.html")
	if err := os.WriteFile(htmlPath, []byte(page), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write HTML report: %w", err)
	}

	logger.Info("Report saved", map[string]interface{}{
		"folder": folder,
		"files":  2 + len(chartFiles),
	})

	return []string{mdPath, htmlPath}, nil
}
