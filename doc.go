// Package gofift implements a Fift-style interactive interpreter: a
// stack-based, dictionary-driven concatenative language with arbitrary-
// precision integers, content-addressed cells, and first-class
// continuations, run by an iterative continuation-passing scheduler.
//
// A minimal session looks like:
//
//	ctx := gofift.New(gofift.WithEnvironment(gofift.NewOS()))
//	for _, m := range words.All() {
//		if err := m.Init(ctx.Dict); err != nil {
//			log.Fatal(err)
//		}
//	}
//	ctx.Lexer.PushSource("stdin", os.Stdin)
//	code, err := ctx.Run()
//
// The dictionary starts out empty of everything but the scheduler's nop
// singleton: callers install whichever word modules they want (see the
// words package) before pushing any source text.
package gofift
