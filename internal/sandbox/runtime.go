package sandbox

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dop251/goja"
	"github.com/google/uuid"
	"github.com/kivkovic/fnsh/internal/providers"
	"github.com/kivkovic/fnsh/internal/shared/types"
)

// Runtime wraps a goja VM with security controls and the bound
// capability table. Scripts can only reach the host through the
// objects installed from provider definitions.
type Runtime struct {
	vm        *goja.Runtime
	config    Config
	sessionID string
	mu        sync.Mutex

	// Console output
	console   []LogEntry
	consoleMu sync.Mutex

	// Interrupt channel
	interrupt chan struct{}

	// Current invocation context, valid while Execute holds mu.
	ctx    context.Context
	appCtx *types.Context
}

// New creates a sandboxed runtime with the given providers bound as
// global objects.
func New(config Config, provs ...providers.Provider) (*Runtime, error) {
	r := &Runtime{
		vm:        goja.New(),
		config:    config,
		sessionID: uuid.New().String(),
		console:   []LogEntry{},
		interrupt: make(chan struct{}),
	}

	if err := r.setupGlobals(); err != nil {
		return nil, err
	}
	for _, p := range provs {
		if err := r.bind(p); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// SessionID identifies this runtime instance.
func (r *Runtime) SessionID() string {
	return r.sessionID
}

// Execute runs a script with timeout and cancellation. The capability
// table bound at construction is the complete host surface.
func (r *Runtime) Execute(ctx context.Context, script string) (*Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	start := time.Now()
	result := &Result{Console: []LogEntry{}}

	timer := time.NewTimer(r.config.Timeout)
	defer timer.Stop()

	go func() {
		select {
		case <-timer.C:
			r.vm.Interrupt("execution timeout exceeded")
		case <-ctx.Done():
			r.vm.Interrupt("context cancelled")
		case <-r.interrupt:
			return
		}
	}()

	r.consoleMu.Lock()
	r.console = []LogEntry{}
	r.consoleMu.Unlock()

	wd := workingDir()
	r.ctx = ctx
	r.appCtx = &types.Context{SessionID: &r.sessionID, WorkingDir: wd}

	val, err := r.vm.RunString(script)

	r.ctx = nil
	r.appCtx = nil

	close(r.interrupt)
	r.interrupt = make(chan struct{})

	result.Duration = time.Since(start)

	r.consoleMu.Lock()
	result.Console = append([]LogEntry{}, r.console...)
	r.consoleMu.Unlock()

	if err != nil {
		result.Error = err
		return result, err
	}

	result.Value = exportValue(val)
	return result, nil
}

// bind installs one provider as a global object whose methods dispatch
// through Execute. A tool ID "fs.list" becomes fs.list(...) in script.
func (r *Runtime) bind(p providers.Provider) error {
	def := p.Definition()
	obj := r.vm.NewObject()

	for _, tool := range def.Tools {
		dot := strings.IndexByte(tool.ID, '.')
		if dot < 0 || tool.ID[:dot] != def.ID {
			return fmt.Errorf("tool %q does not belong to service %q", tool.ID, def.ID)
		}
		method := tool.ID[dot+1:]
		if err := obj.Set(method, r.makeToolFunc(p, tool)); err != nil {
			return fmt.Errorf("bind %s: %w", tool.ID, err)
		}
	}

	return r.vm.Set(def.ID, obj)
}

// makeToolFunc wraps one tool. Positional arguments map onto the
// declared parameters in order; a trailing object argument merges its
// keys into the parameter map, so fs.list(path, {recurse: true}) and
// fs.list({path: path, recurse: true}) are equivalent.
func (r *Runtime) makeToolFunc(p providers.Provider, tool types.Tool) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		params := make(map[string]interface{}, len(tool.Parameters))

		for i, arg := range call.Arguments {
			exported := exportValue(arg)
			if m, ok := exported.(map[string]interface{}); ok && (i >= len(tool.Parameters) || tool.Parameters[i].Type == "object") {
				if i < len(tool.Parameters) && tool.Parameters[i].Type == "object" {
					params[tool.Parameters[i].Name] = m
					continue
				}
				for k, v := range m {
					params[k] = v
				}
				continue
			}
			if i >= len(tool.Parameters) {
				panic(r.vm.NewGoError(fmt.Errorf("%s: too many arguments", tool.ID)))
			}
			params[tool.Parameters[i].Name] = exported
		}

		res, err := p.Execute(r.ctx, tool.ID, params, r.appCtx)
		if err != nil {
			panic(r.vm.NewGoError(fmt.Errorf("%s: %w", tool.ID, err)))
		}
		if !res.Success {
			msg := "operation failed"
			if res.Error != nil {
				msg = *res.Error
			}
			panic(r.vm.NewGoError(fmt.Errorf("%s: %s", tool.ID, msg)))
		}
		return r.vm.ToValue(res.Data)
	}
}

// setupGlobals configures global objects and security
func (r *Runtime) setupGlobals() error {
	// Remove dangerous globals
	r.vm.Set("require", goja.Undefined())
	r.vm.Set("process", goja.Undefined())
	r.vm.Set("module", goja.Undefined())
	r.vm.Set("exports", goja.Undefined())

	if r.config.EnableConsole {
		console := r.vm.NewObject()
		console.Set("log", r.makeConsoleFunc("log"))
		console.Set("warn", r.makeConsoleFunc("warn"))
		console.Set("error", r.makeConsoleFunc("error"))
		console.Set("info", r.makeConsoleFunc("info"))
		r.vm.Set("console", console)
	}

	// Setup timers (no-op for security)
	r.vm.Set("setTimeout", func(call goja.FunctionCall) goja.Value {
		return goja.Undefined()
	})
	r.vm.Set("setInterval", func(call goja.FunctionCall) goja.Value {
		return goja.Undefined()
	})

	return r.setupBuiltins()
}

// makeConsoleFunc creates a console function
func (r *Runtime) makeConsoleFunc(level string) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		var msg string
		for i, arg := range call.Arguments {
			if i > 0 {
				msg += " "
			}
			msg += arg.String()
		}

		r.consoleMu.Lock()
		r.console = append(r.console, LogEntry{
			Level:   level,
			Message: msg,
			Time:    time.Now(),
		})
		r.consoleMu.Unlock()

		return goja.Undefined()
	}
}

// Reset clears the runtime state, keeping the session identity but
// dropping all bindings. Providers must be rebound by the caller.
func (r *Runtime) Reset() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vm = goja.New()
	r.console = []LogEntry{}
	return r.setupGlobals()
}

// Close releases resources
func (r *Runtime) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vm = nil
	r.console = nil
	return nil
}

// exportValue converts goja value to Go value
func exportValue(val goja.Value) interface{} {
	if val == nil || goja.IsUndefined(val) || goja.IsNull(val) {
		return nil
	}
	return val.Export()
}
