package sandbox

import (
	"fmt"
	"os"
	"strings"

	"github.com/dop251/goja"
	"github.com/kivkovic/fnsh/internal/window"
)

// setupBuiltins installs the polymorphic head/tail helpers. They
// dispatch on the argument shape: strings are windowed by line, arrays
// by element, and entity records (objects carrying a "path") read the
// underlying file in chunks without loading it whole.
func (r *Runtime) setupBuiltins() error {
	if err := r.vm.Set("head", r.makeWindowFunc("head", headOf, window.Head)); err != nil {
		return err
	}
	return r.vm.Set("tail", r.makeWindowFunc("tail", tailOf, window.Tail))
}

func (r *Runtime) makeWindowFunc(name string, inMemory func(interface{}, int) (interface{}, bool), onDisk func(string, int) ([]byte, error)) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		if len(call.Arguments) != 2 {
			panic(r.vm.NewGoError(fmt.Errorf("%s: want (value, n)", name)))
		}
		n := int(call.Arguments[1].ToInteger())
		arg := exportValue(call.Arguments[0])

		if rec, ok := arg.(map[string]interface{}); ok {
			path, ok := rec["path"].(string)
			if !ok {
				panic(r.vm.NewGoError(fmt.Errorf("%s: object has no path", name)))
			}
			data, err := onDisk(path, n)
			if err != nil {
				panic(r.vm.NewGoError(fmt.Errorf("%s %s: %w", name, path, err)))
			}
			return r.vm.ToValue(string(data))
		}

		out, ok := inMemory(arg, n)
		if !ok {
			panic(r.vm.NewGoError(fmt.Errorf("%s: unsupported value type %T", name, arg)))
		}
		return r.vm.ToValue(out)
	}
}

func headOf(v interface{}, n int) (interface{}, bool) {
	switch val := v.(type) {
	case string:
		return strings.Join(splitLines(val)[:clampCount(val, n)], ""), true
	case []interface{}:
		if n > len(val) {
			n = len(val)
		}
		if n < 0 {
			n = 0
		}
		return val[:n], true
	}
	return nil, false
}

func tailOf(v interface{}, n int) (interface{}, bool) {
	switch val := v.(type) {
	case string:
		lines := splitLines(val)
		k := len(lines) - clampCount(val, n)
		return strings.Join(lines[k:], ""), true
	case []interface{}:
		if n > len(val) {
			n = len(val)
		}
		if n < 0 {
			n = 0
		}
		return val[len(val)-n:], true
	}
	return nil, false
}

// splitLines splits after every newline, keeping the terminators, so
// joining the pieces reproduces the input byte for byte.
func splitLines(s string) []string {
	var lines []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			lines = append(lines, s)
			break
		}
		lines = append(lines, s[:i+1])
		s = s[i+1:]
	}
	return lines
}

func clampCount(s string, n int) int {
	total := len(splitLines(s))
	if n > total {
		return total
	}
	if n < 0 {
		return 0
	}
	return n
}

func workingDir() *string {
	wd, err := os.Getwd()
	if err != nil {
		return nil
	}
	return &wd
}
