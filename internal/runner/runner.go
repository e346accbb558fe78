package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/creack/pty"
)

// Result holds the captured outcome of one process invocation.
// Status is nil when the process was terminated by a signal rather
// than exiting normally.
type Result struct {
	Stdout string `json:"stdout"`
	Stderr string `json:"stderr"`
	Status *int   `json:"status"`
}

// Options configures an invocation.
type Options struct {
	Dir   string
	Env   map[string]string
	Stdin string
}

// Run spawns argv[0] with the remaining tokens as arguments and blocks
// until it exits, capturing both streams as text.
func Run(ctx context.Context, argv []string, opts Options) (*Result, error) {
	cmd, err := buildCommand(ctx, argv, opts)
	if err != nil {
		return nil, err
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if opts.Stdin != "" {
		cmd.Stdin = strings.NewReader(opts.Stdin)
	}

	runErr := cmd.Run()
	res := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	return finish(res, argv[0], runErr)
}

// RunPTY spawns the command attached to a pseudo-terminal and captures
// the interleaved terminal output in Stdout.
func RunPTY(ctx context.Context, argv []string, opts Options) (*Result, error) {
	cmd, err := buildCommand(ctx, argv, opts)
	if err != nil {
		return nil, err
	}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("start pty for %s: %w", argv[0], err)
	}

	if opts.Stdin != "" {
		if _, err := ptmx.Write([]byte(opts.Stdin)); err != nil {
			ptmx.Close()
			cmd.Process.Kill()
			cmd.Wait()
			return nil, fmt.Errorf("write pty stdin: %w", err)
		}
	}

	var out bytes.Buffer
	// The copy ends with EIO when the child side closes; that is the
	// normal end-of-session signal, not a failure.
	io.Copy(&out, ptmx)
	ptmx.Close()

	waitErr := cmd.Wait()
	res := &Result{Stdout: out.String()}
	return finish(res, argv[0], waitErr)
}

func buildCommand(ctx context.Context, argv []string, opts Options) (*exec.Cmd, error) {
	if len(argv) == 0 {
		return nil, errors.New("run: empty argv")
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = opts.Dir
	if len(opts.Env) > 0 {
		cmd.Env = os.Environ()
		for k, v := range opts.Env {
			cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", k, v))
		}
	}
	return cmd, nil
}

// finish folds the wait error into the result: exit codes are data,
// spawn failures are errors.
func finish(res *Result, name string, err error) (*Result, error) {
	if err == nil {
		zero := 0
		res.Status = &zero
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code >= 0 {
			res.Status = &code
		}
		return res, nil
	}
	return nil, fmt.Errorf("spawn %s: %w", name, err)
}
