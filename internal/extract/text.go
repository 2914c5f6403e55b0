package extract

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16BE = []byte{0xFE, 0xFF}
	bomUTF16LE = []byte{0xFF, 0xFE}
)

// decodeText converts raw bytes into normalized UTF-8.
// BOM-marked Unicode is honored, valid UTF-8 is kept, and anything else is read as Windows-1252.
func decodeText(data []byte) string {
	var decoded []byte

	switch {
	case hasBOM(data):
		out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
		if err != nil {
			out = bytes.ToValidUTF8(data, []byte("�"))
		}
		decoded = out
	case utf8.Valid(data):
		decoded = data
	default:
		out, err := charmap.Windows1252.NewDecoder().Bytes(data)
		if err != nil {
			out = bytes.ToValidUTF8(data, []byte("�"))
		}
		decoded = out
	}

	return norm.NFKC.String(string(decoded))
}

func hasBOM(data []byte) bool {
	return bytes.HasPrefix(data, bomUTF8) ||
		bytes.HasPrefix(data, bomUTF16BE) ||
		bytes.HasPrefix(data, bomUTF16LE)
}
