package words

import (
	"unicode"

	"github.com/corbinlang/gofift"
)

// Control defines the control-flow and compiler words: execute, times,
// if/ifnot/cond, while, until, `{`/`}`, `[`/`]`, the colon-definition
// family, `create`, `'`, find, forget, word, skipspc, abort, quit, bye,
// halt. Grounded on original_source/src/modules/control.rs.
var Control = moduleFunc(func(d *gofift.Dictionary) error {
	tailWords := []struct {
		name string
		fn   func(ctx *gofift.Context) (gofift.Continuation, error)
	}{
		{"execute", func(ctx *gofift.Context) (gofift.Continuation, error) {
			return ctx.Stack.PopCont()
		}},
		{"times", func(ctx *gofift.Context) (gofift.Continuation, error) {
			n, err := ctx.Stack.PopSmallIntRange(0, 1<<30)
			if err != nil {
				return nil, err
			}
			body, err := ctx.Stack.PopCont()
			if err != nil {
				return nil, err
			}
			return &gofift.TimesCont{Body: body, N: int(n)}, nil
		}},
		{"if", func(ctx *gofift.Context) (gofift.Continuation, error) {
			cont, err := ctx.Stack.PopCont()
			if err != nil {
				return nil, err
			}
			flag, err := ctx.Stack.PopBool()
			if err != nil {
				return nil, err
			}
			if flag {
				return cont, nil
			}
			return nil, nil
		}},
		{"ifnot", func(ctx *gofift.Context) (gofift.Continuation, error) {
			cont, err := ctx.Stack.PopCont()
			if err != nil {
				return nil, err
			}
			flag, err := ctx.Stack.PopBool()
			if err != nil {
				return nil, err
			}
			if !flag {
				return cont, nil
			}
			return nil, nil
		}},
		{"cond", func(ctx *gofift.Context) (gofift.Continuation, error) {
			fCont, err := ctx.Stack.PopCont()
			if err != nil {
				return nil, err
			}
			tCont, err := ctx.Stack.PopCont()
			if err != nil {
				return nil, err
			}
			flag, err := ctx.Stack.PopBool()
			if err != nil {
				return nil, err
			}
			if flag {
				return tCont, nil
			}
			return fCont, nil
		}},
		{"while", func(ctx *gofift.Context) (gofift.Continuation, error) {
			body, err := ctx.Stack.PopCont()
			if err != nil {
				return nil, err
			}
			cond, err := ctx.Stack.PopCont()
			if err != nil {
				return nil, err
			}
			return &gofift.WhileCont{Cond: cond, Body: body}, nil
		}},
		{"until", func(ctx *gofift.Context) (gofift.Continuation, error) {
			body, err := ctx.Stack.PopCont()
			if err != nil {
				return nil, err
			}
			return &gofift.UntilCont{Body: body}, nil
		}},
		{"(compile)", func(ctx *gofift.Context) (gofift.Continuation, error) {
			cont, err := ctx.Stack.PopCont()
			if err != nil {
				return nil, err
			}
			return nil, ctx.AppendCompile(cont)
		}},
		{"(execute)", func(ctx *gofift.Context) (gofift.Continuation, error) {
			return ctx.Stack.PopCont()
		}},
	}
	for _, w := range tailWords {
		if err := d.DefineContextTailWord(w.name, w.fn); err != nil {
			return err
		}
	}

	if err := d.DefineActiveContextWord("{", func(ctx *gofift.Context) error {
		ctx.State.BeginCompile()
		ctx.OpenCompileFrame()
		ctx.SetPendingArgcount(0, ctx.Dict.Nop())
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineActiveContextWord("}", func(ctx *gofift.Context) error {
		items, err := ctx.CloseCompileFrame()
		if err != nil {
			return err
		}
		if err := ctx.State.EndCompile(); err != nil {
			return err
		}
		finished := (&gofift.WordList{Items: items}).Finish()
		ctx.Stack.Push(gofift.ContValue(finished))
		ctx.SetPendingArgcount(1, ctx.Dict.Nop())
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineActiveContextWord("[", func(ctx *gofift.Context) error {
		ctx.State.BeginInterpretInternal()
		ctx.SetPendingArgcount(0, ctx.Dict.Nop())
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineActiveContextWord("]", func(ctx *gofift.Context) error {
		if err := ctx.State.EndInterpretInternal(); err != nil {
			return err
		}
		ctx.SetPendingArgcount(0, ctx.Dict.Nop())
		return nil
	}); err != nil {
		return err
	}

	// The colon-definition family is active (it runs immediately while
	// scanning, not compiled), and is itself Fift-style rather than
	// Forth-style: it pops an already-built continuation off the data
	// stack (built by a preceding `{ ... }`), scans only a name from the
	// input, and binds the two immediately — there is no closing word.
	// definesActive controls whether the newly bound word itself runs
	// immediately (`::`/`::_`) or is ordinary (`:`/`:_`); prefix controls
	// whether the bound name gets the trailing-space multi-word-entry
	// convention (`:`/`::`) or is used raw (`:_`/`::_`).
	colonDefs := []struct {
		name          string
		definesActive bool
		prefix        bool
	}{
		{":", false, false},
		{"::", true, false},
		{":_", false, true},
		{"::_", true, true},
	}
	for _, cd := range colonDefs {
		cd := cd
		if err := d.DefineActiveContextWord(cd.name, func(ctx *gofift.Context) error {
			cont, err := ctx.Stack.PopCont()
			if err != nil {
				return err
			}
			name, ok := ctx.Lexer.ScanWord()
			if !ok {
				return gofift.NewAbortError("unexpected eof scanning a definition name")
			}
			if !cd.prefix {
				name += " "
			}
			if err := ctx.Dict.Define(name, cont, cd.definesActive); err != nil {
				return err
			}
			ctx.SetPendingArgcount(0, ctx.Dict.Nop())
			return nil
		}); err != nil {
			return err
		}
	}

	// create is the non-active twin of `:`: it pops a continuation and
	// scans a name exactly the same way, but since it is itself ordinary,
	// using it inside a compiling body defers the pop-and-scan until the
	// compiled body actually runs, rather than performing it immediately.
	if err := d.DefineContextWord("create", func(ctx *gofift.Context) error {
		cont, err := ctx.Stack.PopCont()
		if err != nil {
			return err
		}
		name, ok := ctx.Lexer.ScanWord()
		if !ok {
			return gofift.NewAbortError("unexpected eof scanning a definition name")
		}
		return ctx.Dict.Define(name+" ", cont, false)
	}); err != nil {
		return err
	}

	if err := d.DefineActiveContextWord("'", func(ctx *gofift.Context) error {
		name, ok := ctx.Lexer.ScanWord()
		if !ok {
			return gofift.NewAbortError("unexpected eof scanning a word name")
		}
		entry, found := ctx.Dict.Lookup(name)
		if !found {
			entry, found = ctx.Dict.Lookup(name + " ")
		}
		if !found {
			return gofift.NewUndefinedWordError(name)
		}
		ctx.Stack.Push(gofift.ContValue(entry.Def))
		ctx.SetPendingArgcount(1, ctx.Dict.Nop())
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord("find", func(ctx *gofift.Context) error {
		name, err := ctx.Stack.PopString()
		if err != nil {
			return err
		}
		entry, found := ctx.Dict.Lookup(name)
		if !found {
			entry, found = ctx.Dict.Lookup(name + " ")
		}
		if !found {
			ctx.Stack.PushBool(false)
			return nil
		}
		ctx.Stack.Push(gofift.ContValue(entry.Def))
		ctx.Stack.PushBool(true)
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord("forget", func(ctx *gofift.Context) error {
		name, err := ctx.Stack.PopString()
		if err != nil {
			return err
		}
		if _, found := ctx.Dict.Lookup(name); !found {
			name += " "
		}
		ctx.Dict.Undefine(name)
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord("word", func(ctx *gofift.Context) error {
		delim, err := ctx.Stack.PopInt()
		if err != nil {
			return err
		}
		r := rune(delim.Int64())
		token, _ := ctx.Lexer.ScanWordUntil(func(x rune) bool {
			if r == ' ' {
				return unicode.IsSpace(x)
			}
			return x == r
		})
		ctx.Stack.Push(gofift.StringValue(token))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord("skipspc", func(ctx *gofift.Context) error {
		ctx.Lexer.SkipSpace()
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineContextTailWord("abort", func(ctx *gofift.Context) (gofift.Continuation, error) {
		msg, err := ctx.Stack.PopString()
		if err != nil {
			return nil, err
		}
		return nil, gofift.NewAbortError(msg)
	}); err != nil {
		return err
	}
	if err := d.DefineContextTailWord("quit", func(ctx *gofift.Context) (gofift.Continuation, error) {
		ctx.ExitCode = 0
		ctx.Next = nil
		return nil, nil
	}); err != nil {
		return err
	}
	if err := d.DefineContextTailWord("bye", func(ctx *gofift.Context) (gofift.Continuation, error) {
		ctx.ExitCode = 255
		ctx.Next = nil
		return nil, nil
	}); err != nil {
		return err
	}
	if err := d.DefineContextTailWord("halt", func(ctx *gofift.Context) (gofift.Continuation, error) {
		code, err := ctx.Stack.PopSmallIntRange(0, 255)
		if err != nil {
			return nil, err
		}
		ctx.ExitCode = int(code)
		ctx.Next = nil
		return nil, nil
	}); err != nil {
		return err
	}

	return nil
})
