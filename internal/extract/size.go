package extract

import "github.com/dustin/go-humanize"

// FormatFileSize renders a byte count with binary units, e.g. "1.5 KiB".
func FormatFileSize(size int64) string {
	if size <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(size))
}
