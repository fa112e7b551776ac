// Package store persists course markdown as flat files, one directory
// per user, with a YAML index per user recording titles and creation
// times. Files are written verbatim; the index is bookkeeping only.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var (
	ErrNotFound    = errors.New("course not found")
	ErrInvalidName = errors.New("invalid name")
)

// Entry is one stored course in a user's index.
type Entry struct {
	Title     string    `yaml:"title" json:"title"`
	Filename  string    `yaml:"filename" json:"filename"`
	CreatedAt time.Time `yaml:"created_at" json:"createdAt"`
}

// Index is the per-user index.yml contents.
type Index struct {
	Courses []Entry `yaml:"courses"`
}

// Store writes and reads per-user course files under a root directory.
type Store struct {
	root string
	now  func() time.Time
}

func New(root string) *Store {
	return &Store{root: root, now: time.Now}
}

// Save writes markdown as a new course file for the user and records it
// in the user's index. The filename is derived from the save time; the
// title comes from the document's "#" heading.
func (s *Store) Save(userID, markdown string) (Entry, error) {
	if !isSafeComponent(userID) {
		return Entry{}, fmt.Errorf("%w: user id %q", ErrInvalidName, userID)
	}

	courseDir := filepath.Join(s.root, userID, "courses")
	if err := os.MkdirAll(courseDir, 0o755); err != nil {
		return Entry{}, fmt.Errorf("os.MkdirAll(%s) > %w", courseDir, err)
	}

	now := s.now()
	entry := Entry{
		Title:     documentTitle(markdown),
		CreatedAt: now.UTC(),
	}

	// Saves within the same millisecond collide on the timestamp, so the
	// file is created exclusively and the name gets a counter suffix on
	// conflict.
	filename, err := writeNewFile(courseDir, now.UnixMilli(), markdown)
	if err != nil {
		return Entry{}, err
	}
	entry.Filename = filename

	index, err := s.readIndex(userID)
	if err != nil {
		return Entry{}, err
	}
	index.Courses = append(index.Courses, entry)
	if err := writeYamlFile(s.indexPath(userID), index); err != nil {
		return Entry{}, fmt.Errorf("writeYamlFile > %w", err)
	}

	return entry, nil
}

// List returns the user's stored courses, newest first. A user with no
// stored courses yields an empty list, not an error.
func (s *Store) List(userID string) ([]Entry, error) {
	if !isSafeComponent(userID) {
		return nil, fmt.Errorf("%w: user id %q", ErrInvalidName, userID)
	}

	index, err := s.readIndex(userID)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(index.Courses))
	copy(entries, index.Courses)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
	return entries, nil
}

// Get returns the verbatim markdown of one stored course.
func (s *Store) Get(userID, name string) (string, error) {
	if !isSafeComponent(userID) {
		return "", fmt.Errorf("%w: user id %q", ErrInvalidName, userID)
	}
	if !isSafeComponent(name) {
		return "", fmt.Errorf("%w: course name %q", ErrInvalidName, name)
	}

	path := filepath.Join(s.root, userID, "courses", name)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", fmt.Errorf("os.ReadFile(%s) > %w", path, err)
	}
	return string(data), nil
}

// writeNewFile creates the course file exclusively, bumping the counter
// suffix until an unused name is found, and returns the chosen filename.
func writeNewFile(courseDir string, millis int64, markdown string) (string, error) {
	for n := 0; ; n++ {
		filename := fmt.Sprintf("course_%d.md", millis)
		if n > 0 {
			filename = fmt.Sprintf("course_%d_%d.md", millis, n)
		}

		path := filepath.Join(courseDir, filename)
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			if os.IsExist(err) {
				continue
			}
			return "", fmt.Errorf("os.OpenFile(%s) > %w", path, err)
		}

		if _, err := file.WriteString(markdown); err != nil {
			_ = file.Close()
			return "", fmt.Errorf("file.WriteString(%s) > %w", path, err)
		}
		if err := file.Close(); err != nil {
			return "", fmt.Errorf("file.Close(%s) > %w", path, err)
		}
		return filename, nil
	}
}

func (s *Store) indexPath(userID string) string {
	return filepath.Join(s.root, userID, "index.yml")
}

func (s *Store) readIndex(userID string) (Index, error) {
	index, err := readYamlFile[Index](s.indexPath(userID))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Index{}, nil
		}
		return Index{}, fmt.Errorf("readYamlFile > %w", err)
	}
	return index, nil
}

// isSafeComponent rejects path components that could escape the store
// root.
func isSafeComponent(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// documentTitle extracts the course title from the top-level heading.
func documentTitle(markdown string) string {
	for _, line := range strings.Split(markdown, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[len("# "):])
		}
	}
	return "Untitled Course"
}
