// Package extract turns uploaded file bytes into the UTF-8 text the classifier consumes.
package extract

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/Veraticus/sift/internal/common"
)

// DefaultMaxPDFPages bounds how much of a PDF is read. Later pages are dropped silently.
const DefaultMaxPDFPages = 20

// Kind is the decoding strategy chosen for a file.
type Kind string

// Decoding strategies.
const (
	KindText Kind = "text"
	KindHTML Kind = "html"
	KindPDF  Kind = "pdf"
)

// Config controls extraction limits.
type Config struct {
	MaxPDFPages int
}

// Extractor decodes files by extension.
type Extractor struct {
	maxPDFPages int
}

// New creates an extractor. A non-positive page cap falls back to DefaultMaxPDFPages.
func New(cfg Config) *Extractor {
	if cfg.MaxPDFPages <= 0 {
		cfg.MaxPDFPages = DefaultMaxPDFPages
	}
	return &Extractor{maxPDFPages: cfg.MaxPDFPages}
}

// MaxPDFPages returns the page cap applied to PDFs.
func (e *Extractor) MaxPDFPages() int {
	return e.maxPDFPages
}

// KindFor picks the decoding strategy for a file name. Unknown extensions are read as text.
func KindFor(name string) Kind {
	switch Extension(name) {
	case "pdf":
		return KindPDF
	case "html", "htm":
		return KindHTML
	default:
		return KindText
	}
}

// Extension returns the lowercase extension of name without the leading dot.
func Extension(name string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
}

// DetectType returns the MIME type for name, defaulting to text/plain.
func DetectType(name string) string {
	ext := filepath.Ext(name)
	if ext == "" {
		return "text/plain"
	}
	if t := mime.TypeByExtension(strings.ToLower(ext)); t != "" {
		return t
	}
	return "text/plain"
}

// Extract returns the text content of a file.
// Failures wrap common.ErrDecodeFailed.
func (e *Extractor) Extract(ctx context.Context, name string, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var (
		text string
		err  error
	)
	switch KindFor(name) {
	case KindPDF:
		text, err = e.extractPDF(ctx, data)
	case KindHTML:
		text, err = extractHTML(data)
	default:
		text = decodeText(data)
	}
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("%w %s: %w", common.ErrDecodeFailed, name, err)
	}

	common.LogDebug("Extracted file text", common.Fields{
		"file":  name,
		"bytes": len(data),
		"chars": len(text),
	})

	return text, nil
}
