package gofift

import (
	"github.com/corbinlang/gofift/internal/panicerr"
)

// RunIsolated runs ctx to completion on a separate goroutine, recovering
// any internal panic or runtime.Goexit as a returned error instead of
// taking down the host process, matching the teacher's
// panicerr.Recover("VM", ...) boundary in its api.go.
func RunIsolated(ctx *Context) (exitCode int, err error) {
	runErr := panicerr.Recover("gofift", func() error {
		code, err := ctx.Run()
		ctx.ExitCode = code
		return err
	})
	return ctx.ExitCode, runErr
}
