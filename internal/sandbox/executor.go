package sandbox

import (
	"bytes"
	"context"
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/traefik/yaegi/interp"

	pkgLog "multi-agent-code-assistant/pkg/log"
)

// DefaultTimeout bounds snippet execution when the caller does not set one.
const DefaultTimeout = 30 * time.Second

// Result is the outcome of one snippet execution. Execution failures are
// reported here, never raised to the caller as an error.
type Result struct {
	Success       bool
	Output        string
	Error         string
	ExecutionTime time.Duration
}

// Executor runs code snippets in a restricted interpreter.
//
// The interpreter is created per execution with no standard library symbol
// table; only the allow-listed helpers below are callable, plus whatever the
// language itself predeclares (len, int, float64, bool, string conversions,
// for/range). Any other name fails resolution and the failure is reported in
// Result.Error. Imports are rejected outright.
//
// This restricts the callable surface only. It does not isolate memory,
// filesystem, or network access, and is not a security boundary against
// adversarial input.
type Executor struct {
	l              pkgLog.Logger
	defaultTimeout time.Duration
}

// New creates a sandbox executor. timeout <= 0 falls back to DefaultTimeout.
func New(l pkgLog.Logger, timeout time.Duration) *Executor {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Executor{
		l:              l,
		defaultTimeout: timeout,
	}
}

// Execute interprets code with stdout/stderr captured into buffers.
// Success is true iff evaluation completed without error and the stderr
// buffer stayed empty. The timeout is enforced: a runaway snippet is stopped
// when the deadline passes.
func (e *Executor) Execute(ctx context.Context, code string, timeout time.Duration) Result {
	start := time.Now()

	if timeout <= 0 {
		timeout = e.defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := rejectImports(code); err != nil {
		return Result{
			Success:       false,
			Error:         err.Error(),
			ExecutionTime: time.Since(start),
		}
	}

	var stdout, stderr bytes.Buffer

	i := interp.New(interp.Options{
		Stdout: &stdout,
		Stderr: &stderr,
	})

	if err := i.Use(allowedSymbols(&stdout)); err != nil {
		e.l.Errorf(ctx, "sandbox: failed to load allow-list: %v", err)
		return Result{
			Success:       false,
			Error:         fmt.Sprintf("failed to initialize sandbox: %v", err),
			ExecutionTime: time.Since(start),
		}
	}
	if _, err := i.Eval(`import . "sandbox"`); err != nil {
		e.l.Errorf(ctx, "sandbox: failed to import allow-list: %v", err)
		return Result{
			Success:       false,
			Error:         fmt.Sprintf("failed to initialize sandbox: %v", err),
			ExecutionTime: time.Since(start),
		}
	}

	_, err := i.EvalWithContext(ctx, code)
	elapsed := time.Since(start)

	if err != nil {
		e.l.Infof(ctx, "sandbox: execution failed after %.3fs: %v", elapsed.Seconds(), err)
		return Result{
			Success:       false,
			Output:        stdout.String(),
			Error:         err.Error(),
			ExecutionTime: elapsed,
		}
	}

	errText := stderr.String()
	return Result{
		Success:       errText == "",
		Output:        stdout.String(),
		Error:         errText,
		ExecutionTime: elapsed,
	}
}

// rejectImports refuses snippets containing import statements: with no
// stdlib loaded every import would fail anyway, but a pre-check gives a
// deterministic message.
func rejectImports(code string) error {
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "import ") || trimmed == "import" || strings.HasPrefix(trimmed, "import(") {
			return fmt.Errorf("imports are not allowed in the sandbox: %s", trimmed)
		}
	}
	return nil
}

// allowedSymbols builds the callable allow-list, dot-imported into snippet
// scope. Helpers that print write to the captured stdout buffer.
func allowedSymbols(stdout *bytes.Buffer) interp.Exports {
	return interp.Exports{
		"sandbox/sandbox": {
			"print": reflect.ValueOf(func(args ...interface{}) {
				fmt.Fprintln(stdout, args...)
			}),
			"str": reflect.ValueOf(func(v interface{}) string {
				return fmt.Sprint(v)
			}),
			"abs": reflect.ValueOf(math.Abs),
			"min": reflect.ValueOf(func(xs ...float64) float64 {
				if len(xs) == 0 {
					return 0
				}
				m := xs[0]
				for _, x := range xs[1:] {
					if x < m {
						m = x
					}
				}
				return m
			}),
			"max": reflect.ValueOf(func(xs ...float64) float64 {
				if len(xs) == 0 {
					return 0
				}
				m := xs[0]
				for _, x := range xs[1:] {
					if x > m {
						m = x
					}
				}
				return m
			}),
			"sum": reflect.ValueOf(func(xs ...float64) float64 {
				var total float64
				for _, x := range xs {
					total += x
				}
				return total
			}),
			"round": reflect.ValueOf(math.Round),
			"sorted": reflect.ValueOf(func(xs ...float64) []float64 {
				out := append([]float64(nil), xs...)
				sort.Float64s(out)
				return out
			}),
		},
	}
}
