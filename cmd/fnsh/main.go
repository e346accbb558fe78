package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bytedance/sonic"
	"github.com/kivkovic/fnsh/internal/config"
	"github.com/kivkovic/fnsh/internal/entity"
	"github.com/kivkovic/fnsh/internal/logging"
	"github.com/kivkovic/fnsh/internal/providers"
	"github.com/kivkovic/fnsh/internal/sandbox"
	"go.uber.org/zap"
)

func main() {
	// Parse flags
	expr := flag.String("e", "", "Evaluate one expression and exit")
	script := flag.String("f", "", "Evaluate a script file and exit")
	timeout := flag.Duration("timeout", 0, "Per-evaluation timeout (overrides FNSH_TIMEOUT)")
	dev := flag.Bool("dev", false, "Development logging")
	flag.Parse()

	cfg := config.LoadOrDefault()
	if *timeout > 0 {
		cfg.Shell.Timeout = *timeout
	}
	if *dev {
		cfg.Logging.Development = true
	}

	log, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fnsh: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	entity.SetSniffLimit(cfg.Classifier.SniffLimit)
	if cfg.Shell.WorkingDir != "" {
		if err := os.Chdir(cfg.Shell.WorkingDir); err != nil {
			log.Fatal("cannot enter working directory", zap.Error(err))
		}
	}

	rt, err := sandbox.New(sandbox.Config{
		Timeout:       cfg.Shell.Timeout,
		EnableConsole: true,
	},
		providers.NewFilesystem(cfg.Window.ChunkSize, log),
		providers.NewProcess(log),
	)
	if err != nil {
		log.Fatal("cannot create runtime", zap.Error(err))
	}
	defer rt.Close()

	log.Debug("runtime ready", zap.String("session", rt.SessionID()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch {
	case *expr != "":
		os.Exit(evalOnce(ctx, rt, *expr))
	case *script != "":
		src, err := os.ReadFile(*script)
		if err != nil {
			log.Fatal("cannot read script", zap.Error(err))
		}
		os.Exit(evalOnce(ctx, rt, string(src)))
	default:
		repl(ctx, rt)
	}
}

func newLogger(cfg *config.Config) (*logging.Logger, error) {
	if cfg.Logging.Development {
		return logging.NewDevelopment(), nil
	}
	lc := logging.DefaultConfig()
	lc.Level = cfg.Logging.Level
	return logging.New(lc)
}

// evalOnce evaluates one script and renders the result on stdout.
// Returns a process exit code: evaluation errors map to 1.
func evalOnce(ctx context.Context, rt *sandbox.Runtime, src string) int {
	res, err := rt.Execute(ctx, src)
	if res != nil {
		printConsole(res.Console)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "fnsh: %v\n", err)
		return 1
	}
	printValue(res.Value)
	return 0
}

// repl reads lines from stdin and evaluates each one against the same
// runtime, so state persists across lines within a session.
func repl(ctx context.Context, rt *sandbox.Runtime) {
	interactive := isTerminal(os.Stdin)
	scanner := bufio.NewScanner(os.Stdin)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		if interactive {
			fmt.Fprint(os.Stderr, "fnsh> ")
		}
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		if ctx.Err() != nil {
			return
		}

		res, err := rt.Execute(ctx, line)
		if res != nil {
			printConsole(res.Console)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "fnsh: %v\n", err)
			continue
		}
		printValue(res.Value)
	}
}

// printValue renders an evaluation result: strings raw, everything
// else as indented JSON so records stay readable.
func printValue(v interface{}) {
	switch val := v.(type) {
	case nil:
		return
	case string:
		fmt.Println(val)
	default:
		out, err := sonic.MarshalIndent(val, "", "  ")
		if err != nil {
			fmt.Printf("%v\n", val)
			return
		}
		fmt.Println(string(out))
	}
}

func printConsole(entries []sandbox.LogEntry) {
	for _, e := range entries {
		fmt.Fprintf(os.Stderr, "[%s] %s\n", e.Level, e.Message)
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
