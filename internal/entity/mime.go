package entity

import (
	"bytes"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// sniffLimit bounds how many bytes the textual heuristic inspects.
var sniffLimit = 1000

// SetSniffLimit overrides the heuristic's byte budget. Zero or
// negative values are ignored.
func SetSniffLimit(n int) {
	if n > 0 {
		sniffLimit = n
	}
}

// MIME classifies the entity's content type on first access and caches
// the result for the entity's lifetime.
//
// Non-file kinds classify as their kind string without touching the
// classifier. Files run through the magic-byte classifier first; when
// it is unavailable or yields no specific type, the textual heuristic
// decides between text/plain and application/octet-stream.
// Classification never fails the caller.
func (e *Entity) MIME() string {
	if e.mime != "" {
		return e.mime
	}
	if e.Kind != KindFile {
		e.mime = string(e.Kind)
		return e.mime
	}

	if mtype, err := mimetype.DetectFile(e.Path); err == nil {
		detected := mtype.String()
		if i := strings.IndexByte(detected, ';'); i >= 0 {
			detected = strings.TrimSpace(detected[:i])
		}
		if detected != "" && detected != "application/octet-stream" {
			e.mime = detected
			return e.mime
		}
	}

	if textual, err := isTextFile(e.Path); err == nil && textual {
		e.mime = "text/plain"
	} else {
		e.mime = "application/octet-stream"
	}
	return e.mime
}

// isTextFile applies the textual heuristic to the first sniffLimit
// bytes of the file.
func isTextFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, sniffLimit)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, err
	}
	return isTextContent(buf[:n]), nil
}

var bomPrefixes = [][]byte{
	{0xEF, 0xBB, 0xBF}, // UTF-8
	{0xFE, 0xFF},       // UTF-16 BE
	{0xFF, 0xFE},       // UTF-16 LE
}

// isTextContent reports whether data, after stripping a leading byte
// order mark, consists solely of printable characters
// (U+0020..U+10FFFF) or carriage returns and line feeds. Empty content
// is text.
func isTextContent(data []byte) bool {
	for _, bom := range bomPrefixes {
		if bytes.HasPrefix(data, bom) {
			data = data[len(bom):]
			break
		}
	}

	for len(data) > 0 {
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size == 1 {
			// Invalid encoding is binary, unless it is a rune
			// truncated by the sniff window itself.
			return len(data) < utf8.UTFMax
		}
		if r != '\r' && r != '\n' && r < 0x20 {
			return false
		}
		data = data[size:]
	}
	return true
}
