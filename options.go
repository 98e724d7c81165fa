package gofift

import (
	"io"
	"os"

	"github.com/corbinlang/gofift/internal/flushio"
)

// Option configures a Context at construction time, following the same
// functional-options shape as the teacher's VMOption/options.go: each
// Option is an apply-closure rather than a struct field, so New's
// signature never has to grow when a new knob is added.
type Option interface {
	apply(ctx *Context)
}

type optionFunc func(ctx *Context)

func (f optionFunc) apply(ctx *Context) { f(ctx) }

// Options flattens a slice of Options into a single one, the way the
// teacher's options.go composes multiple VMOption values.
func Options(opts ...Option) Option {
	return optionFunc(func(ctx *Context) {
		for _, opt := range opts {
			opt.apply(ctx)
		}
	})
}

// WithEnvironment sets the Environment the interpreter runs against
// (defaults to NewOS()).
func WithEnvironment(env Environment) Option {
	return optionFunc(func(ctx *Context) { ctx.Env = env })
}

// WithOutput sets the interpreter's output stream (defaults to
// os.Stdout).
func WithOutput(w io.Writer) Option {
	return optionFunc(func(ctx *Context) { ctx.Out = flushio.NewWriteFlusher(w) })
}

// WithInput pushes r as a named input source ready for the scheduler to
// read from.
func WithInput(name string, r io.Reader) Option {
	return optionFunc(func(ctx *Context) { ctx.Lexer.PushSource(name, r) })
}

// WithTrace installs a per-resolved-word trace callback, used by the
// CLI's `-trace` flag.
func WithTrace(fn func(format string, args ...interface{})) Option {
	return optionFunc(func(ctx *Context) { ctx.Trace = fn })
}

// New builds a ready-to-run Context: an OS environment, stdout output,
// and no input pushed yet, then applies opts over those defaults.
func New(opts ...Option) *Context {
	ctx := NewContext(NewOS(), flushio.NewWriteFlusher(os.Stdout))
	Options(opts...).apply(ctx)
	return ctx
}
