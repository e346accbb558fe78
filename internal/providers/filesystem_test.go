package providers

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFS(t *testing.T) *Filesystem {
	t.Helper()
	return NewFilesystem(0, nil)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFilesystemDefinition(t *testing.T) {
	def := newTestFS(t).Definition()

	assert.Equal(t, "fs", def.ID)
	require.NotEmpty(t, def.Tools)

	seen := make(map[string]bool)
	for _, tool := range def.Tools {
		assert.False(t, seen[tool.ID], "duplicate tool id %s", tool.ID)
		seen[tool.ID] = true
	}
	assert.True(t, seen["fs.list"])
	assert.True(t, seen["fs.tail"])
	assert.True(t, seen["fs.move"])
}

func TestFilesystemList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "hello\n")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "world\n")

	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.list", map[string]interface{}{
		"path": dir,
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, 2, res.Data["count"])
}

func TestFilesystemListRecursiveFlatten(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a.txt"), "hello\n")
	writeFile(t, filepath.Join(dir, "sub", "b.txt"), "world\n")

	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.list", map[string]interface{}{
		"path":    dir,
		"recurse": true,
		"flatten": true,
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, 3, res.Data["count"], "a.txt, sub, sub/b.txt")
}

func TestFilesystemListMissingPath(t *testing.T) {
	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.list", map[string]interface{}{}, nil)
	require.NoError(t, err)

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Contains(t, *res.Error, "path parameter required")
}

func TestFilesystemFindByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "keep.log"), "x")
	writeFile(t, filepath.Join(dir, "skip.txt"), "x")
	writeFile(t, filepath.Join(dir, "nested", "also.log"), "x")

	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.find", map[string]interface{}{
		"path": dir,
		"name": ".log",
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, 2, res.Data["count"])
}

func TestFilesystemGlob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.go"), "package main\n")
	writeFile(t, filepath.Join(dir, "pkg", "util.go"), "package pkg\n")
	writeFile(t, filepath.Join(dir, "notes.md"), "# notes\n")

	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.glob", map[string]interface{}{
		"path":    dir,
		"pattern": "**/*.go",
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, 2, res.Data["count"])
}

func TestFilesystemStat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "f.txt")
	writeFile(t, path, "12345")

	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.stat", map[string]interface{}{
		"path": path,
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	rec, ok := res.Data["entity"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "f.txt", rec["name"])
	assert.Equal(t, int64(5), rec["size"])
	assert.Equal(t, "file", rec["type"])
	assert.Equal(t, dir, rec["directory"])
}

func TestFilesystemStatNotFound(t *testing.T) {
	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.stat", map[string]interface{}{
		"path": filepath.Join(t.TempDir(), "nope"),
	}, nil)
	require.NoError(t, err)

	assert.False(t, res.Success)
}

func TestFilesystemReadHeadTail(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	writeFile(t, path, "one\ntwo\nthree\n")

	fs := newTestFS(t)

	res, err := fs.Execute(context.Background(), "fs.read", map[string]interface{}{"path": path}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "one\ntwo\nthree\n", res.Data["content"])

	res, err = fs.Execute(context.Background(), "fs.head", map[string]interface{}{"path": path, "n": 2}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "one\ntwo\n", res.Data["content"])

	res, err = fs.Execute(context.Background(), "fs.tail", map[string]interface{}{"path": path, "n": 1}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "three\n", res.Data["content"])
}

func TestFilesystemHeadFloatParam(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lines.txt")
	writeFile(t, path, "one\ntwo\n")

	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.head", map[string]interface{}{
		"path": path,
		"n":    float64(1),
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Equal(t, "one\n", res.Data["content"])
}

func TestFilesystemMime(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.txt")
	writeFile(t, path, "plain text content\n")

	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.mime", map[string]interface{}{"path": path}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, "text/plain", res.Data["mime"])
}

func TestFilesystemSize(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "a"), "1234567890")
	writeFile(t, filepath.Join(dir, "sub", "b"), "12345")

	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.size", map[string]interface{}{
		"path":  dir,
		"human": true,
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	assert.Equal(t, int64(15), res.Data["bytes"])
	assert.Equal(t, 2, res.Data["files"])
	assert.Equal(t, "15 B", res.Data["size"])
}

func TestFilesystemMoveAndCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	writeFile(t, src, "payload")

	fs := newTestFS(t)

	copied := filepath.Join(dir, "copy.txt")
	res, err := fs.Execute(context.Background(), "fs.copy", map[string]interface{}{
		"source":      src,
		"destination": copied,
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	moved := filepath.Join(dir, "moved.txt")
	res, err = fs.Execute(context.Background(), "fs.move", map[string]interface{}{
		"source":      src,
		"destination": moved,
	}, nil)
	require.NoError(t, err)
	require.True(t, res.Success)

	_, err = os.Lstat(src)
	assert.True(t, os.IsNotExist(err))
	data, err := os.ReadFile(moved)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
	data, err = os.ReadFile(copied)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestFilesystemMoveRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	writeFile(t, src, "new")
	writeFile(t, dst, "old")

	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.move", map[string]interface{}{
		"source":      src,
		"destination": dst,
	}, nil)
	require.NoError(t, err)

	assert.False(t, res.Success)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data))
}

func TestFilesystemUnknownTool(t *testing.T) {
	fs := newTestFS(t)
	res, err := fs.Execute(context.Background(), "fs.bogus", map[string]interface{}{}, nil)
	require.NoError(t, err)

	assert.False(t, res.Success)
	require.NotNil(t, res.Error)
	assert.Contains(t, *res.Error, "unknown tool")
}
