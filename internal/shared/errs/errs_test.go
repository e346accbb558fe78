package errs

import (
	"errors"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"not exist", fs.ErrNotExist, ErrNotFound},
		{"exist", fs.ErrExist, ErrAlreadyExists},
		{"permission", fs.ErrPermission, ErrPermission},
		{"exdev", syscall.EXDEV, ErrCrossDevice},
		{"wrapped path error", &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}, ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify("stat", "/some/path", tt.err)
			assert.True(t, errors.Is(got, tt.want), "got %v", got)
			assert.Contains(t, got.Error(), "stat /some/path")
		})
	}
}

func TestClassifyNil(t *testing.T) {
	assert.NoError(t, Classify("stat", "/x", nil))
}

func TestClassifyUnknownErrorPassesThrough(t *testing.T) {
	sentinel := errors.New("disk on fire")
	got := Classify("read", "/x", sentinel)

	assert.True(t, errors.Is(got, sentinel))
	assert.False(t, errors.Is(got, ErrNotFound))
}

func TestIsCrossDevice(t *testing.T) {
	linkErr := &os.LinkError{Op: "rename", Old: "/a", New: "/b", Err: syscall.EXDEV}

	assert.True(t, IsCrossDevice(linkErr))
	assert.True(t, IsCrossDevice(syscall.EXDEV))
	assert.False(t, IsCrossDevice(errors.New("other")))
}
