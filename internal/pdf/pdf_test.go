package pdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseforge/courseforge/internal/testutil"
)

func TestExportFile(t *testing.T) {
	tmpDir := t.TempDir()
	markdownPath := filepath.Join(tmpDir, "course.md")
	require.NoError(t, os.WriteFile(markdownPath, []byte(testutil.CourseMarkdown()), 0644))

	got, err := ExportFile(markdownPath, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(tmpDir, "course.pdf"), got)
	info, err := os.Stat(got)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportFile_ExplicitOutput(t *testing.T) {
	tmpDir := t.TempDir()
	markdownPath := filepath.Join(tmpDir, "course.md")
	require.NoError(t, os.WriteFile(markdownPath, []byte(testutil.CourseMarkdown()), 0644))

	outputPath := filepath.Join(tmpDir, "exported.pdf")
	got, err := ExportFile(markdownPath, outputPath)
	require.NoError(t, err)
	assert.Equal(t, outputPath, got)

	_, err = os.Stat(outputPath)
	assert.NoError(t, err)
}

func TestExportFile_RejectsNonMarkdown(t *testing.T) {
	_, err := ExportFile("course.txt", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".md extension")
}

func TestExportFile_MissingInput(t *testing.T) {
	_, err := ExportFile(filepath.Join(t.TempDir(), "absent.md"), "")
	assert.Error(t, err)
}
