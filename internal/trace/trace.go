//go:build debug

// Package trace includes debugging helpers for the tree implementation.
package trace

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/timandy/routine"

	"github.com/arturoga/artree/internal/xflag"
)

// Enabled is true when the binary is built with the debug tag, which
// turns on invariant assertions and trace logging.
const Enabled = true

var (
	tracePattern = xflag.Func("filter", "regexp to filter trace logs by", regexp.Compile)
	nocapture    = flag.Bool("nocapture", false, "disables capturing trace logs as test logs")
)

// Log prints a trace line to stderr, tagged with the caller's package,
// file, line and goroutine id.
//
// context is optional args for fmt.Sprintf that are rendered before
// operation, letting callers tag a family of related trace lines (e.g.
// the node being mutated) before the operation name.
func Log(context []any, operation string, format string, args ...any) {
	skip := 1
again:
	pc, file, line, _ := runtime.Caller(skip)

	fn := runtime.FuncForPC(pc)
	name := fn.Name()
	name = name[strings.LastIndex(name, ".")+1:]
	if strings.HasPrefix(name, "log") || strings.Contains(name, "Log") {
		skip++
		goto again
	}

	pkg := fn.Name()
	pkg = strings.TrimPrefix(pkg, "github.com/arturoga/artree/")
	if idx := strings.Index(pkg, "."); idx >= 0 {
		pkg = pkg[:idx]
	}

	file = filepath.Base(file)

	buf := new(strings.Builder)

	_, _ = fmt.Fprintf(buf, "%s/%s:%d [g%04d", pkg, file, line, routine.Goid())
	if len(context) >= 1 {
		_, _ = fmt.Fprintf(buf, ", "+context[0].(string), context[1:]...)
	}
	_, _ = fmt.Fprintf(buf, "] %s: ", operation)
	_, _ = fmt.Fprintf(buf, format, args...)

	if *tracePattern != nil && !(*tracePattern).MatchString(buf.String()) {
		return
	}

	if t := tls.Get(); !*nocapture && t != nil {
		t.Log(buf.String())
		return
	}

	_, _ = buf.Write([]byte{'\n'})
	_, _ = os.Stderr.WriteString(buf.String())
	_ = os.Stderr.Sync()
}

// Assert panics if cond is false. Only ever compiled into debug builds —
// release builds get the no-op in notrace.go.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("artree: internal assertion failed: "+format, args...))
	}
}

// Value holds a value that only exists in debug builds, such as a
// mutation counter used to detect use-after-free of a demoted node.
type Value[T any] struct {
	x T
}

// Get returns a pointer to the underlying value. Only callable in debug
// builds.
func (v *Value[T]) Get() *T { return &v.x }
