// Package extract turns uploaded documents into plain text for the
// generation pipeline. Plain text passes through as-is; HTML is reduced
// to its block-level text content so paragraph boundaries survive for
// the chunker.
package extract

import (
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

var whitespacePattern = regexp.MustCompile(`\s+`)

// blockElements are the HTML elements whose text content becomes one
// paragraph each.
var blockElements = map[string]bool{
	"p":          true,
	"h1":         true,
	"h2":         true,
	"h3":         true,
	"h4":         true,
	"h5":         true,
	"h6":         true,
	"li":         true,
	"blockquote": true,
	"pre":        true,
	"td":         true,
}

// skippedElements never contribute text.
var skippedElements = map[string]bool{
	"script": true,
	"style":  true,
	"head":   true,
}

// Text extracts plain text from r according to the media type. text/html
// and application/xhtml+xml are parsed as HTML; any other text/* subtype
// passes through unchanged apart from trimming. Everything else is an
// error naming the type.
func Text(r io.Reader, contentType string) (string, error) {
	mediaType := contentType
	if parsed, _, err := mime.ParseMediaType(contentType); err == nil {
		mediaType = parsed
	}

	switch {
	case mediaType == "text/html" || mediaType == "application/xhtml+xml":
		return HTML(r)
	case strings.HasPrefix(mediaType, "text/") || mediaType == "application/json":
		data, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("io.ReadAll > %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	default:
		return "", fmt.Errorf("unsupported content type %q", contentType)
	}
}

// File extracts plain text from a named upload, inferring the media type
// from the file extension.
func File(r io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	contentType := mime.TypeByExtension(ext)
	if contentType == "" {
		switch ext {
		case ".md", ".markdown":
			contentType = "text/markdown"
		case ".txt", "":
			contentType = "text/plain"
		}
	}
	if contentType == "" {
		return "", fmt.Errorf("unsupported file type %q", ext)
	}
	return Text(r, contentType)
}

// HTML reduces an HTML document to the text of its block elements, one
// paragraph per element, joined by blank lines.
func HTML(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("html.Parse > %w", err)
	}

	var paragraphs []string
	collectBlocks(doc, &paragraphs)
	return strings.Join(paragraphs, "\n\n"), nil
}

func collectBlocks(n *html.Node, paragraphs *[]string) {
	if n.Type == html.ElementNode {
		if skippedElements[n.Data] {
			return
		}
		if blockElements[n.Data] {
			if text := cleanText(textContent(n)); text != "" {
				*paragraphs = append(*paragraphs, text)
			}
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectBlocks(c, paragraphs)
	}
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	if n.Type == html.ElementNode && skippedElements[n.Data] {
		return ""
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

func cleanText(text string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
