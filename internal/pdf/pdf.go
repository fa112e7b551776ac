// Package pdf exports course documents as PDF files.
package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mandolyte/mdtopdf"

	"github.com/courseforge/courseforge/internal/course"
)

// ExportCourse renders a course to a PDF at outputPath via its canonical
// markdown form. Returns the absolute path of the written file.
func ExportCourse(c course.Course, outputPath string) (string, error) {
	return ExportMarkdown([]byte(course.Serialize(c)), outputPath)
}

// ExportFile converts a course markdown file to PDF. When outputPath is
// empty the PDF is written next to the markdown file.
func ExportFile(markdownPath, outputPath string) (string, error) {
	if !strings.HasSuffix(markdownPath, ".md") {
		return "", fmt.Errorf("input file must have .md extension: %s", markdownPath)
	}

	content, err := os.ReadFile(markdownPath)
	if err != nil {
		return "", fmt.Errorf("os.ReadFile(%s) > %w", markdownPath, err)
	}

	if outputPath == "" {
		outputPath = strings.TrimSuffix(markdownPath, ".md") + ".pdf"
	}
	return ExportMarkdown(content, outputPath)
}

// ExportMarkdown renders markdown content to a PDF file.
func ExportMarkdown(content []byte, pdfPath string) (string, error) {
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(content); err != nil {
		return "", fmt.Errorf("renderer.Process() > %w", err)
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}

	return absPath, nil
}
