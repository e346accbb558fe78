package providers

import (
	"context"
	"fmt"

	"github.com/kivkovic/fnsh/internal/logging"
	"github.com/kivkovic/fnsh/internal/runner"
	"github.com/kivkovic/fnsh/internal/shared/types"
	"go.uber.org/zap"
)

// Process provides synchronous command invocation.
type Process struct {
	log *logging.Logger
}

// NewProcess creates a process provider.
func NewProcess(log *logging.Logger) *Process {
	if log == nil {
		log = logging.NewDefault()
	}
	return &Process{log: log}
}

// Definition returns service metadata
func (p *Process) Definition() types.Service {
	return types.Service{
		ID:          "proc",
		Name:        "Process Service",
		Description: "Spawn commands and capture their output",
		Category:    types.CategoryProcess,
		Capabilities: []string{
			"run",
			"run_pty",
		},
		Tools: []types.Tool{
			{
				ID:          "proc.run",
				Name:        "Run Command",
				Description: "Run a command and capture stdout, stderr and exit status",
				Parameters: []types.Parameter{
					{Name: "argv", Type: "array", Description: "Command and arguments", Required: true},
					{Name: "dir", Type: "string", Description: "Working directory", Required: false},
					{Name: "env", Type: "object", Description: "Extra environment variables", Required: false},
					{Name: "stdin", Type: "string", Description: "Input piped to the process", Required: false},
				},
				Returns: "object",
			},
			{
				ID:          "proc.run_pty",
				Name:        "Run in PTY",
				Description: "Run a command attached to a pseudo-terminal",
				Parameters: []types.Parameter{
					{Name: "argv", Type: "array", Description: "Command and arguments", Required: true},
					{Name: "dir", Type: "string", Description: "Working directory", Required: false},
					{Name: "env", Type: "object", Description: "Extra environment variables", Required: false},
					{Name: "stdin", Type: "string", Description: "Input written to the terminal", Required: false},
				},
				Returns: "object",
			},
		},
	}
}

// Execute runs a process operation
func (p *Process) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	switch toolID {
	case "proc.run":
		return p.run(ctx, params, appCtx, runner.Run)
	case "proc.run_pty":
		return p.run(ctx, params, appCtx, runner.RunPTY)
	default:
		return Failure(fmt.Sprintf("unknown tool: %s", toolID))
	}
}

func (p *Process) run(ctx context.Context, params map[string]interface{}, appCtx *types.Context, invoke func(context.Context, []string, runner.Options) (*runner.Result, error)) (*types.Result, error) {
	argv, ok := stringSliceParam(params, "argv")
	if !ok || len(argv) == 0 {
		return Failure("argv parameter required")
	}

	opts := runner.Options{
		Env:   stringMapParam(params, "env"),
		Stdin: stringOrEmpty(params, "stdin"),
	}
	if dir, ok := stringParam(params, "dir"); ok {
		opts.Dir = dir
	} else if appCtx != nil && appCtx.WorkingDir != nil {
		opts.Dir = *appCtx.WorkingDir
	}

	res, err := invoke(ctx, argv, opts)
	if err != nil {
		return Failure(fmt.Sprintf("run failed: %v", err))
	}

	data := map[string]interface{}{
		"stdout": res.Stdout,
		"stderr": res.Stderr,
	}
	if res.Status != nil {
		data["status"] = *res.Status
	} else {
		data["status"] = nil
	}

	p.log.Debug("ran command", zap.String("command", argv[0]))
	return Success(data)
}

func stringOrEmpty(params map[string]interface{}, name string) string {
	v, _ := params[name].(string)
	return v
}
