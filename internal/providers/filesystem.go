package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/kivkovic/fnsh/internal/entity"
	"github.com/kivkovic/fnsh/internal/logging"
	"github.com/kivkovic/fnsh/internal/mutate"
	"github.com/kivkovic/fnsh/internal/shared/types"
	"github.com/kivkovic/fnsh/internal/walker"
	"github.com/kivkovic/fnsh/internal/window"
	"go.uber.org/zap"
)

// Filesystem provides entity, walk, window and mutation operations.
type Filesystem struct {
	window *window.Reader
	log    *logging.Logger
}

// NewFilesystem creates a filesystem provider. chunkSize zero selects
// the reader's default.
func NewFilesystem(chunkSize int, log *logging.Logger) *Filesystem {
	if log == nil {
		log = logging.NewDefault()
	}
	return &Filesystem{
		window: window.New(chunkSize),
		log:    log,
	}
}

// Definition returns service metadata
func (f *Filesystem) Definition() types.Service {
	return types.Service{
		ID:          "fs",
		Name:        "Filesystem Service",
		Description: "Structured file and directory operations",
		Category:    types.CategoryFilesystem,
		Capabilities: []string{
			"list",
			"find",
			"stat",
			"read",
			"head",
			"tail",
			"mime",
			"move",
			"copy",
		},
		Tools: []types.Tool{
			{
				ID:          "fs.list",
				Name:        "List Directory",
				Description: "List directory contents as entity records",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
					{Name: "recurse", Type: "boolean", Description: "Recurse into subfolders", Required: false},
					{Name: "flatten", Type: "boolean", Description: "Splice recursive results into one flat sequence", Required: false},
					{Name: "mime", Type: "boolean", Description: "Eagerly classify MIME types", Required: false},
					{Name: "self", Type: "boolean", Description: "Wrap the result in an entity for the directory itself", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "fs.find",
				Name:        "Find Entries",
				Description: "Flattened recursive listing, optionally filtered by name substring",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Root directory", Required: true},
					{Name: "name", Type: "string", Description: "Name substring filter", Required: false},
				},
				Returns: "array",
			},
			{
				ID:          "fs.glob",
				Name:        "Glob",
				Description: "Find entries matching a ** glob pattern",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Root directory", Required: true},
					{Name: "pattern", Type: "string", Description: "Glob pattern (e.g. '**/*.go')", Required: true},
				},
				Returns: "array",
			},
			{
				ID:          "fs.stat",
				Name:        "Stat Path",
				Description: "Take a metadata snapshot of one path",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File or directory path", Required: true},
				},
				Returns: "object",
			},
			{
				ID:          "fs.read",
				Name:        "Read File",
				Description: "Read entire file contents",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "fs.head",
				Name:        "Head",
				Description: "First n lines without scanning the whole file",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
					{Name: "n", Type: "number", Description: "Line count", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "fs.tail",
				Name:        "Tail",
				Description: "Last n lines without scanning the whole file",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
					{Name: "n", Type: "number", Description: "Line count", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "fs.mime",
				Name:        "MIME Type",
				Description: "Classify content type (magic bytes with textual fallback)",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "File path", Required: true},
				},
				Returns: "string",
			},
			{
				ID:          "fs.size",
				Name:        "Tree Size",
				Description: "Total size of a directory tree",
				Parameters: []types.Parameter{
					{Name: "path", Type: "string", Description: "Directory path", Required: true},
					{Name: "human", Type: "boolean", Description: "Include human-readable rendering", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "fs.move",
				Name:        "Move",
				Description: "Move or rename with overwrite policy and cross-device fallback",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "Source path", Required: true},
					{Name: "destination", Type: "string", Description: "Destination path", Required: true},
					{Name: "overwrite", Type: "boolean", Description: "Allow replacing an existing destination", Required: false},
				},
				Returns: "boolean",
			},
			{
				ID:          "fs.copy",
				Name:        "Copy",
				Description: "Copy file content with overwrite policy",
				Parameters: []types.Parameter{
					{Name: "source", Type: "string", Description: "Source path", Required: true},
					{Name: "destination", Type: "string", Description: "Destination path", Required: true},
					{Name: "overwrite", Type: "boolean", Description: "Allow replacing an existing destination", Required: false},
				},
				Returns: "boolean",
			},
		},
	}
}

// Execute runs a filesystem operation
func (f *Filesystem) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "fs.list":
		return f.list(params)
	case "fs.find":
		return f.find(params)
	case "fs.glob":
		return f.glob(params)
	case "fs.stat":
		return f.stat(params)
	case "fs.read":
		return f.read(params)
	case "fs.head":
		return f.head(params)
	case "fs.tail":
		return f.tail(params)
	case "fs.mime":
		return f.mime(params)
	case "fs.size":
		return f.size(ctx, params)
	case "fs.move":
		return f.move(params)
	case "fs.copy":
		return f.copy(params)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (f *Filesystem) list(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	opts := walker.Options{
		Recurse: boolParam(params, "recurse"),
		Flatten: boolParam(params, "flatten"),
		MIME:    boolParam(params, "mime"),
		Self:    boolParam(params, "self"),
	}

	entities, err := walker.List(path, opts)
	if err != nil {
		return Failure(fmt.Sprintf("list failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"entries": toRecords(entities),
		"count":   len(entities),
	})
}

func (f *Filesystem) find(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	var pred walker.Predicate
	if name, ok := stringParam(params, "name"); ok {
		pred = func(e *entity.Entity) bool {
			return strings.Contains(e.Name, name)
		}
	}

	entities, err := walker.Find(path, pred)
	if err != nil {
		return Failure(fmt.Sprintf("find failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"entries": toRecords(entities),
		"count":   len(entities),
	})
}

func (f *Filesystem) glob(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	pattern, ok := stringParam(params, "pattern")
	if !ok {
		return Failure("pattern parameter required")
	}

	entities, err := walker.Glob(path, pattern)
	if err != nil {
		return Failure(fmt.Sprintf("glob failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"pattern": pattern,
		"entries": toRecords(entities),
		"count":   len(entities),
	})
}

func (f *Filesystem) stat(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	e, err := entity.New(path)
	if err != nil {
		return Failure(fmt.Sprintf("stat failed: %v", err))
	}

	return Success(map[string]interface{}{"path": path, "entity": e.ToRecord()})
}

func (f *Filesystem) read(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	e, err := entity.New(path)
	if err != nil {
		return Failure(fmt.Sprintf("read failed: %v", err))
	}
	data, err := e.ReadAll()
	if err != nil {
		return Failure(fmt.Sprintf("read failed: %v", err))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"content": string(data),
		"size":    len(data),
	})
}

func (f *Filesystem) head(params map[string]interface{}) (*types.Result, error) {
	return f.windowed(params, f.window.Head, "head")
}

func (f *Filesystem) tail(params map[string]interface{}) (*types.Result, error) {
	return f.windowed(params, f.window.Tail, "tail")
}

func (f *Filesystem) windowed(params map[string]interface{}, fn func(string, int) ([]byte, error), op string) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}
	n, ok := intParam(params, "n")
	if !ok {
		return Failure("n parameter required")
	}

	data, err := fn(path, n)
	if err != nil {
		return Failure(fmt.Sprintf("%s failed: %v", op, err))
	}

	return Success(map[string]interface{}{
		"path":    path,
		"n":       n,
		"content": string(data),
	})
}

func (f *Filesystem) mime(params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	e, err := entity.New(path)
	if err != nil {
		return Failure(fmt.Sprintf("mime failed: %v", err))
	}

	return Success(map[string]interface{}{"path": path, "mime": e.MIME()})
}

func (f *Filesystem) size(ctx context.Context, params map[string]interface{}) (*types.Result, error) {
	path, ok := stringParam(params, "path")
	if !ok {
		return Failure("path parameter required")
	}

	total, files, err := walker.TotalSize(ctx, path)
	if err != nil {
		return Failure(fmt.Sprintf("size calculation failed: %v", err))
	}

	result := map[string]interface{}{
		"path":  path,
		"bytes": total,
		"files": files,
	}
	if boolParam(params, "human") {
		result["size"] = entity.HumanSize(total)
	}
	return Success(result)
}

func (f *Filesystem) move(params map[string]interface{}) (*types.Result, error) {
	source, ok := stringParam(params, "source")
	if !ok {
		return Failure("source parameter required")
	}
	destination, ok := stringParam(params, "destination")
	if !ok {
		return Failure("destination parameter required")
	}
	overwrite := boolParam(params, "overwrite")

	if err := mutate.Move(source, destination, overwrite); err != nil {
		return Failure(fmt.Sprintf("move failed: %v", err))
	}

	f.log.Debug("moved path", zap.String("source", source), zap.String("destination", destination))
	return Success(map[string]interface{}{"moved": true, "source": source, "destination": destination})
}

func (f *Filesystem) copy(params map[string]interface{}) (*types.Result, error) {
	source, ok := stringParam(params, "source")
	if !ok {
		return Failure("source parameter required")
	}
	destination, ok := stringParam(params, "destination")
	if !ok {
		return Failure("destination parameter required")
	}
	overwrite := boolParam(params, "overwrite")

	if err := mutate.Copy(source, destination, overwrite); err != nil {
		return Failure(fmt.Sprintf("copy failed: %v", err))
	}

	f.log.Debug("copied path", zap.String("source", source), zap.String("destination", destination))
	return Success(map[string]interface{}{"copied": true, "source": source, "destination": destination})
}

func toRecords(entities []*entity.Entity) []map[string]interface{} {
	records := make([]map[string]interface{}, len(entities))
	for i, e := range entities {
		records[i] = e.ToRecord()
	}
	return records
}
