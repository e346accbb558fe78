package walker

import (
	"os"
	"path/filepath"

	"github.com/kivkovic/fnsh/internal/entity"
	"github.com/kivkovic/fnsh/internal/shared/errs"
)

// Options controls a List walk.
type Options struct {
	// Recurse descends into child folders depth-first.
	Recurse bool
	// Flatten splices recursive results into one flat sequence
	// instead of nesting them under their folder entity.
	Flatten bool
	// MIME forces eager classification of every entity.
	MIME bool
	// Self wraps the result in a single entity for the listed
	// directory itself.
	Self bool
}

// Predicate filters entities during Find.
type Predicate func(*entity.Entity) bool

// List enumerates the direct children of dir in directory order.
//
// With Recurse, child folders are walked with the same options: a
// flattened walk splices their entries inline at the point of
// discovery, otherwise the recursive result becomes the folder's
// Contents and the folder's size is the sum of its direct recursive
// children's sizes. With Self, the whole result is returned as the
// Contents of one wrapping entity for dir, sized (when recursing) as
// the sum of the top-level results.
func List(dir string, opts Options) ([]*entity.Entity, error) {
	out, err := list(dir, opts)
	if err != nil {
		return nil, err
	}

	if opts.Self {
		self, err := entity.New(dir)
		if err != nil {
			return nil, err
		}
		self.Contents = out
		if opts.Recurse {
			self.SetSize(sumSizes(out))
		}
		if opts.MIME {
			self.MIME()
		}
		return []*entity.Entity{self}, nil
	}
	return out, nil
}

func list(dir string, opts Options) ([]*entity.Entity, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errs.Classify("list", dir, err)
	}

	out := []*entity.Entity{}
	for _, de := range entries {
		childPath := filepath.Join(dir, de.Name())
		info, err := de.Info()
		if err != nil {
			// Entry vanished between enumeration and snapshot.
			continue
		}
		child := entity.FromInfo(childPath, info)
		if opts.MIME {
			child.MIME()
		}

		if child.Kind != entity.KindFolder || !opts.Recurse {
			out = append(out, child)
			continue
		}

		sub, err := list(childPath, opts)
		if err != nil {
			return nil, err
		}
		if opts.Flatten {
			out = append(out, child)
			out = append(out, sub...)
		} else {
			child.Contents = sub
			child.SetSize(sumSizes(sub))
			out = append(out, child)
		}
	}
	return out, nil
}

// sumSizes totals the sizes of sized entities; child folders count
// when they were themselves sized by the walk.
func sumSizes(entities []*entity.Entity) int64 {
	var total int64
	for _, e := range entities {
		if e.Size != nil {
			total += *e.Size
		}
	}
	return total
}

// Find returns every transitive entry under dir matching pred. A nil
// predicate returns the unfiltered flattened listing.
func Find(dir string, pred Predicate) ([]*entity.Entity, error) {
	all, err := List(dir, Options{Recurse: true, Flatten: true})
	if err != nil {
		return nil, err
	}
	if pred == nil {
		return all, nil
	}

	out := []*entity.Entity{}
	for _, e := range all {
		if pred(e) {
			out = append(out, e)
		}
	}
	return out, nil
}
