package words

import (
	"fmt"

	"github.com/corbinlang/gofift"
)

// Debug defines the output/inspection words: `.`, `.s`, `.sl`, `.dump`,
// cr, type, and the sorted dictionary listing `.words`.
// Grounded on original_source/src/modules/debug_utils.rs, writing
// through Context.Out the way the teacher's vmDumper writes through its
// configured io.Writer.
var Debug = moduleFunc(func(d *gofift.Dictionary) error {
	if err := d.DefineContextWord(".", func(ctx *gofift.Context) error {
		v, err := ctx.Stack.Pop()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(ctx.Out, "%s ", rawFormat(v))
		return err
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord(".s", func(ctx *gofift.Context) error {
		return gofift.DumpStack(ctx.Out, ctx.Stack)
	}); err != nil {
		return err
	}
	if err := d.DefineContextWord(".sl", func(ctx *gofift.Context) error {
		return gofift.DumpStackLine(ctx.Out, ctx.Stack)
	}); err != nil {
		return err
	}
	if err := d.DefineContextWord(".dump", func(ctx *gofift.Context) error {
		v, err := ctx.Stack.Top()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(ctx.Out, gofift.FormatValue(v))
		return err
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord("cr", func(ctx *gofift.Context) error {
		_, err := fmt.Fprintln(ctx.Out)
		return err
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord("type", func(ctx *gofift.Context) error {
		str, err := ctx.Stack.PopString()
		if err != nil {
			return err
		}
		_, err = fmt.Fprint(ctx.Out, str)
		return err
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord(".words", func(ctx *gofift.Context) error {
		return gofift.DumpDictionary(ctx.Out, ctx.Dict)
	}); err != nil {
		return err
	}

	return nil
})

// rawFormat renders a Value the bare way `.` prints it: strings and
// atoms unquoted, everything else as FormatValue already would.
func rawFormat(v gofift.Value) string {
	switch v.Kind {
	case gofift.KindString:
		return v.Str
	default:
		return gofift.FormatValue(v)
	}
}
