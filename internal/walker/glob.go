package walker

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kivkovic/fnsh/internal/entity"
)

// Glob finds entries under dir whose path relative to dir matches a
// doublestar pattern (e.g. "**/*.go").
func Glob(dir, pattern string) ([]*entity.Entity, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("glob %q: %w", pattern, doublestar.ErrBadPattern)
	}

	return Find(dir, func(e *entity.Entity) bool {
		rel, err := filepath.Rel(dir, e.Path)
		if err != nil {
			return false
		}
		ok, _ := doublestar.Match(pattern, filepath.ToSlash(rel))
		return ok
	})
}
