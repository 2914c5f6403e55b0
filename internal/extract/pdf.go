package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/sift/internal/common"
	"github.com/ledongthuc/pdf"
)

// pageSource is the slice of a PDF reader the page walker needs.
type pageSource interface {
	NumPage() int
	PageText(num int) (string, error)
}

type pdfDocument struct {
	r *pdf.Reader
}

func (d pdfDocument) NumPage() int {
	return d.r.NumPage()
}

func (d pdfDocument) PageText(num int) (text string, err error) {
	// The parser panics on some malformed content streams.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("page %d: %v", num, r)
		}
	}()

	page := d.r.Page(num)
	if page.V.IsNull() {
		return "", nil
	}
	return page.GetPlainText(nil)
}

func (e *Extractor) extractPDF(ctx context.Context, data []byte) (text string, err error) {
	if len(data) == 0 {
		return "", errors.New("empty pdf")
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("corrupt pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	return collectPages(ctx, pdfDocument{r: r}, e.maxPDFPages)
}

// collectPages joins the text of at most maxPages pages with blank lines.
func collectPages(ctx context.Context, doc pageSource, maxPages int) (string, error) {
	total := doc.NumPage()
	limit := min(total, maxPages)
	if total > limit {
		common.LogDebug("Truncating PDF", common.Fields{"pages": total, "read": limit})
	}

	parts := make([]string, 0, limit)
	for i := 1; i <= limit; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := doc.PageText(i)
		if err != nil {
			return "", err
		}
		parts = append(parts, text)
	}

	return strings.Join(parts, "\n\n"), nil
}
