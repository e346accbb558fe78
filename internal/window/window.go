package window

import (
	"io"
	"os"

	"github.com/kivkovic/fnsh/internal/shared/errs"
)

// DefaultChunkSize is the fixed read-chunk size in bytes.
const DefaultChunkSize = 10000

// Reader extracts the first or last n lines of a file using bounded
// memory. The zero chunk size selects DefaultChunkSize.
type Reader struct {
	chunkSize int
}

// New creates a Reader with the given chunk size.
func New(chunkSize int) *Reader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &Reader{chunkSize: chunkSize}
}

var defaultReader = New(0)

// Head returns the first n lines of the file at path using the
// default chunk size.
func Head(path string, n int) ([]byte, error) {
	return defaultReader.Head(path, n)
}

// Tail returns the last n lines of the file at path using the
// default chunk size.
func Tail(path string, n int) ([]byte, error) {
	return defaultReader.Tail(path, n)
}

// Head reads forward in fixed-size chunks from offset 0, counting
// newlines left-to-right. Output is truncated at the byte after the
// nth newline. A file with fewer than n lines is returned whole;
// that is a normal terminal condition, not an error.
func (r *Reader) Head(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Classify("head", path, err)
	}
	defer f.Close()

	if n <= 0 {
		return []byte{}, nil
	}

	buf := make([]byte, r.chunkSize)
	out := []byte{}
	count := 0

	for {
		m, err := f.Read(buf)
		if m > 0 {
			chunk := buf[:m]
			satisfied := false
			for i, b := range chunk {
				if b != '\n' {
					continue
				}
				count++
				if count == n {
					out = append(out, chunk[:i+1]...)
					satisfied = true
					break
				}
			}
			if satisfied {
				return out, nil
			}
			out = append(out, chunk...)
		}
		if err == io.EOF {
			return out, nil
		}
		if err != nil {
			return nil, errs.Classify("head", path, err)
		}
	}
}

// Tail seeks to max(0, size-chunk) and scans each chunk right-to-left,
// prepending the relevant suffix and stepping the offset back one full
// chunk per pass. The loop's stopping test uses the pre-clamp offset;
// reads always clamp the start offset to zero. When the offset goes
// below zero before n newlines are found, the whole file is returned.
//
// The terminating newline of the final line is not a boundary: tailing
// one line of "a\nb\n" yields "b\n", not the empty suffix after the
// last byte.
func (r *Reader) Tail(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.Classify("tail", path, err)
	}
	defer f.Close()

	if n <= 0 {
		return []byte{}, nil
	}

	info, err := f.Stat()
	if err != nil {
		return nil, errs.Classify("tail", path, err)
	}
	size := info.Size()
	if size == 0 {
		return []byte{}, nil
	}

	chunk := int64(r.chunkSize)
	buf := make([]byte, r.chunkSize)
	out := []byte{}
	count := 0

	end := size
	offset := size - chunk

	for {
		start := offset
		if start < 0 {
			start = 0
		}
		m := int(end - start)
		if _, err := f.ReadAt(buf[:m], start); err != nil && err != io.EOF {
			return nil, errs.Classify("tail", path, err)
		}
		win := buf[:m]

		for i := m - 1; i >= 0; i-- {
			if win[i] != '\n' {
				continue
			}
			if start+int64(i) == size-1 {
				continue
			}
			count++
			if count == n {
				suffix := make([]byte, 0, (m-i-1)+len(out))
				suffix = append(suffix, win[i+1:]...)
				return append(suffix, out...), nil
			}
		}

		prefixed := make([]byte, 0, m+len(out))
		prefixed = append(prefixed, win...)
		out = append(prefixed, out...)

		if offset <= 0 {
			return out, nil
		}
		end = start
		offset -= chunk
	}
}
