// Package testutil provides shared test helpers for creating config files
// and course store fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// SetupTestConfig creates a minimal config file and all required
// directories for testing. Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	dirs := []string{"users", "error_logs"}
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`store:
  directory: %s
generation:
  error_log_directory: %s
  max_requests_per_minute: 100
`,
		filepath.Join(tmpDir, "users"),
		filepath.Join(tmpDir, "error_logs"),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithAPIKey creates a config file with a fake backend API
// key for tests that exercise the generation path.
func SetupTestConfigWithAPIKey(t *testing.T, tmpDir string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte("backend:\n  api_key: fake-key-for-testing\n  model: gpt-4o-mini\n")...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// CourseMarkdown returns a small well-formed course document in the
// canonical markdown form.
func CourseMarkdown() string {
	return "# Intro to Go\n\n" +
		"## Basics\n\n" +
		"### notes - Variables and types.\n\n" +
		"### flashcards\n" +
		"Q: What declares a variable?\n" +
		"A: var or :=\n\n" +
		"### quiz\n" +
		"Q: Which keyword starts a function?\n" +
		"A) func\n" +
		"B) def\n" +
		"C) fn\n" +
		"D) function\n" +
		"CORRECT: A\n\n"
}

// CreateCourseFile writes a course markdown fixture into a user's course
// directory, creating the directory as needed, and returns the full path.
func CreateCourseFile(t *testing.T, storeDir, userID, name, markdown string) string {
	t.Helper()

	courseDir := filepath.Join(storeDir, userID, "courses")
	require.NoError(t, os.MkdirAll(courseDir, 0755))

	path := filepath.Join(courseDir, name)
	require.NoError(t, os.WriteFile(path, []byte(markdown), 0644))
	return path
}
