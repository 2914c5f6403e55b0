package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// extractHTML returns the visible text of an HTML document.
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(decodeText(data)))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, template").Remove()

	var parts []string
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		parts = append(parts, title)
	}
	doc.Find("title").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	parts = append(parts, strings.Fields(body.Text())...)

	return strings.Join(parts, " "), nil
}
