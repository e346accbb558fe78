package entity

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/kivkovic/fnsh/internal/shared/errs"
	"github.com/kivkovic/fnsh/internal/window"
)

// Kind identifies what a path points at.
type Kind string

const (
	KindFile     Kind = "file"
	KindFolder   Kind = "folder"
	KindBlockDev Kind = "block_device"
	KindCharDev  Kind = "character_device"
	KindLink     Kind = "link"
	KindSocket   Kind = "socket"
	KindFIFO     Kind = "fifo"
)

// Entity is a metadata snapshot of one path. Kind, Mode, Created and
// Modified are fixed at construction; Size is set at construction for
// files and by the directory walker when it aggregates folder sizes.
type Entity struct {
	Path      string    `json:"path"`
	Name      string    `json:"name"`
	Directory string    `json:"directory"`
	Kind      Kind      `json:"type"`
	Mode      string    `json:"mode"`
	Size      *int64    `json:"size,omitempty"`
	SizeHuman string    `json:"size_h,omitempty"`
	Created   time.Time `json:"created"`
	Modified  time.Time `json:"modified"`
	Contents  []*Entity `json:"contents,omitempty"`

	mime string
}

// New takes a metadata snapshot of path and classifies it. The
// snapshot uses Lstat so links are classified as links, not as their
// targets. Construction fails hard when the snapshot cannot be taken.
func New(path string) (*Entity, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, errs.Classify("stat", path, err)
	}
	return FromInfo(path, info), nil
}

// FromInfo builds an Entity from an already-taken snapshot. The walker
// uses this to avoid a second stat per directory entry.
func FromInfo(path string, info fs.FileInfo) *Entity {
	e := &Entity{
		Path:      path,
		Name:      filepath.Base(path),
		Directory: filepath.Dir(path),
		Kind:      classify(info.Mode()),
		Mode:      fmt.Sprintf("%03o", info.Mode().Perm()),
		Created:   createdTime(info),
		Modified:  info.ModTime(),
	}
	if e.Kind == KindFile {
		e.SetSize(info.Size())
	}
	return e
}

// classify picks the first matching kind in the fixed priority order.
// A path could satisfy more than one mode predicate depending on
// platform quirks, so order matters.
func classify(mode fs.FileMode) Kind {
	switch {
	case mode.IsRegular():
		return KindFile
	case mode.IsDir():
		return KindFolder
	case mode&fs.ModeDevice != 0 && mode&fs.ModeCharDevice == 0:
		return KindBlockDev
	case mode&fs.ModeCharDevice != 0:
		return KindCharDev
	case mode&fs.ModeSymlink != 0:
		return KindLink
	case mode&fs.ModeSocket != 0:
		return KindSocket
	case mode&fs.ModeNamedPipe != 0:
		return KindFIFO
	}
	return KindFile
}

// SetSize records a byte count and its human rendering. The walker
// calls this when aggregating folder sizes during a recursive walk.
func (e *Entity) SetSize(n int64) {
	e.Size = &n
	e.SizeHuman = HumanSize(n)
}

// HumanSize renders a byte count with binary-1024 scaling.
func HumanSize(n int64) string {
	switch {
	case n <= 10_000:
		return fmt.Sprintf("%d B", n)
	case n <= 10_000_000:
		return fmt.Sprintf("%.2f KB", float64(n)/1024)
	case n <= 10_000_000_000:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	case n <= 10_000_000_000_000:
		return fmt.Sprintf("%.2f GB", float64(n)/(1024*1024*1024))
	default:
		return fmt.Sprintf("%.2f TB", float64(n)/(1024*1024*1024*1024))
	}
}

// ReadAll reads the entire file content synchronously. It re-checks
// existence first: the snapshot may be stale, and a vanished path is
// reported explicitly instead of surfacing as an empty read.
func (e *Entity) ReadAll() ([]byte, error) {
	if e.Kind != KindFile {
		return nil, fmt.Errorf("read %s: not a file (%s)", e.Path, e.Kind)
	}
	if _, err := os.Stat(e.Path); err != nil {
		return nil, fmt.Errorf("read %s: path vanished after snapshot: %w", e.Path, errs.ErrNotFound)
	}
	data, err := os.ReadFile(e.Path)
	if err != nil {
		return nil, errs.Classify("read", e.Path, err)
	}
	return data, nil
}

// Head returns the first n lines of the file. Non-file entities yield
// no result rather than an error.
func (e *Entity) Head(n int) ([]byte, error) {
	if e.Kind != KindFile {
		return nil, nil
	}
	return window.Head(e.Path, n)
}

// Tail returns the last n lines of the file. Non-file entities yield
// no result rather than an error.
func (e *Entity) Tail(n int) ([]byte, error) {
	if e.Kind != KindFile {
		return nil, nil
	}
	return window.Tail(e.Path, n)
}

// ToRecord projects the entity's own fields into a plain key/value
// map. MIME appears only when already computed; serialization never
// forces classification as a side effect.
func (e *Entity) ToRecord() map[string]interface{} {
	rec := map[string]interface{}{
		"path":      e.Path,
		"name":      e.Name,
		"directory": e.Directory,
		"type":      string(e.Kind),
		"mode":      e.Mode,
		"created":   e.Created,
		"modified":  e.Modified,
	}
	if e.Size != nil {
		rec["size"] = *e.Size
		rec["size_h"] = e.SizeHuman
	}
	if e.mime != "" {
		rec["mime"] = e.mime
	}
	if e.Contents != nil {
		contents := make([]map[string]interface{}, len(e.Contents))
		for i, c := range e.Contents {
			contents[i] = c.ToRecord()
		}
		rec["contents"] = contents
	}
	return rec
}
