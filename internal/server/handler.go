// Package server exposes the generation pipeline and the course store
// over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courseforge/courseforge/internal/extract"
	"github.com/courseforge/courseforge/internal/store"
)

// CourseGenerator runs the generation pipeline against extracted text.
type CourseGenerator interface {
	GenerateMarkdown(ctx context.Context, sourceText string) (string, error)
}

type Handler struct {
	generator CourseGenerator
	store     *store.Store
}

func NewHandler(generator CourseGenerator, store *store.Store) *Handler {
	return &Handler{
		generator: generator,
		store:     store,
	}
}

// GenerateCourse accepts a document upload, runs the generation pipeline
// and returns the course markdown. When a user_id form value is present
// the result is also saved to that user's store. Failures return a
// generic message; partial courses are never returned.
func (h *Handler) GenerateCourse(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "missing_file", errors.New("no document file uploaded"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_file", errors.New("uploaded file could not be read"))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	text, err := extractUpload(file, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
	if err != nil {
		respondError(c, http.StatusUnsupportedMediaType, "unsupported_media_type", err)
		return
	}

	markdown, err := h.generator.GenerateMarkdown(c.Request.Context(), text)
	if err != nil {
		slog.Default().Error("course generation failed", "file", fileHeader.Filename, "error", err)
		respondError(c, http.StatusInternalServerError, "generation_failed", errors.New("failed to generate course"))
		return
	}

	if userID := c.PostForm("user_id"); userID != "" {
		entry, err := h.store.Save(userID, markdown)
		if err != nil {
			slog.Default().Error("failed to save generated course", "userID", userID, "error", err)
			respondError(c, http.StatusInternalServerError, "storage_failed", errors.New("failed to save course"))
			return
		}
		c.Header("X-Course-Filename", entry.Filename)
	}

	c.String(http.StatusOK, markdown)
}

// ListCourses returns the user's stored courses. A user with no courses
// gets an empty list, not a 404.
func (h *Handler) ListCourses(c *gin.Context) {
	entries, err := h.store.List(c.Param("userID"))
	if err != nil {
		if errors.Is(err, store.ErrInvalidName) {
			respondError(c, http.StatusBadRequest, "invalid_user_id", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "storage_failed", errors.New("failed to retrieve courses"))
		return
	}
	respondOK(c, entries)
}

// GetCourse returns the verbatim markdown of one stored course.
func (h *Handler) GetCourse(c *gin.Context) {
	markdown, err := h.store.Get(c.Param("userID"), c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			respondError(c, http.StatusNotFound, "not_found", errors.New("course not found"))
		case errors.Is(err, store.ErrInvalidName):
			respondError(c, http.StatusBadRequest, "invalid_name", err)
		default:
			respondError(c, http.StatusInternalServerError, "storage_failed", errors.New("failed to retrieve course"))
		}
		return
	}
	c.String(http.StatusOK, markdown)
}

// SaveCourse stores a markdown body for the user and reports the stored
// filename.
func (h *Handler) SaveCourse(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid_body", errors.New("request body could not be read"))
		return
	}
	if len(body) == 0 {
		respondError(c, http.StatusBadRequest, "empty_body", errors.New("no course content provided"))
		return
	}

	entry, err := h.store.Save(c.Param("userID"), string(body))
	if err != nil {
		if errors.Is(err, store.ErrInvalidName) {
			respondError(c, http.StatusBadRequest, "invalid_user_id", err)
			return
		}
		respondError(c, http.StatusInternalServerError, "storage_failed", errors.New("failed to save course"))
		return
	}
	respondOK(c, entry)
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// extractUpload prefers the declared content type and falls back to the
// file extension when the type is absent or too generic to act on.
func extractUpload(r io.Reader, contentType, filename string) (string, error) {
	if contentType != "" && contentType != "application/octet-stream" {
		text, err := extract.Text(r, contentType)
		if err != nil {
			return "", err
		}
		return text, nil
	}

	text, err := extract.File(r, filename)
	if err != nil {
		return "", fmt.Errorf("extract.File(%s) > %w", filename, err)
	}
	return text, nil
}
