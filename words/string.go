package words

import (
	"encoding/hex"
	"math/big"
	"strings"
	"unicode"

	"github.com/corbinlang/gofift"
	"github.com/corbinlang/gofift/internal/runeio"
)

// String defines the string/bytes word library: quoted-string and
// byte-literal active words (`"`, `char`, `x{`, `b{`), concatenation,
// splitting, searching, and bytes<->string<->hex conversions. Grounded
// on original_source/src/modules/string_utils.rs, reduced to the
// subset that doesn't depend on a TON-specific elliptic-curve/address
// stack (see SPEC_FULL.md's Supplemented features section).
var String = moduleFunc(func(d *gofift.Dictionary) error {
	if err := d.DefineActiveContextWord(`"`, func(ctx *gofift.Context) error {
		s, ok := ctx.Lexer.ReadUntilByte('"')
		if !ok {
			return gofift.NewAbortError(`unterminated string literal`)
		}
		ctx.Stack.Push(gofift.StringValue(s))
		ctx.SetPendingArgcount(1, ctx.Dict.Nop())
		return nil
	}); err != nil {
		return err
	}

	// `char` accepts a literal rune, a "^X" caret form, or a "<NAME>"
	// mnemonic (runeio.UnquoteRune), falling back to the token's first
	// (and only) rune when it matches none of those, per
	// original_source/src/modules/string_utils.rs's interpret_char.
	if err := d.DefineActiveContextWord("char", func(ctx *gofift.Context) error {
		token, ok := ctx.Lexer.ScanWord()
		if !ok || token == "" {
			return gofift.NewAbortError("unexpected eof scanning a char literal")
		}
		var r rune
		if mnemonic, err := runeio.UnquoteRune(token); err == nil {
			r = mnemonic
		} else {
			runes := []rune(token)
			if len(runes) != 1 {
				return gofift.NewRangeError("expected exactly one character, got %q", token)
			}
			r = runes[0]
		}
		ctx.Stack.Push(gofift.IntFromInt64(int64(r)))
		ctx.SetPendingArgcount(1, ctx.Dict.Nop())
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("(char)", func(s *gofift.Stack) error {
		str, err := s.PopString()
		if err != nil {
			return err
		}
		runes := []rune(str)
		if len(runes) != 1 {
			return gofift.NewRangeError("expected exactly one character")
		}
		s.PushInt(int64(runes[0]))
		return nil
	}); err != nil {
		return err
	}

	hexLiterals := []struct {
		name  string
		close rune
	}{
		{"x{", '}'},
		{"b{", '}'},
	}
	for _, hl := range hexLiterals {
		hl := hl
		if err := d.DefineActiveContextWord(hl.name, func(ctx *gofift.Context) error {
			raw, ok := ctx.Lexer.ReadUntilByte(hl.close)
			if !ok {
				return gofift.NewAbortError("unterminated hex/bit literal")
			}
			data, err := decodeHexOrBits(raw)
			if err != nil {
				return gofift.NewRangeError("%s", err)
			}
			ctx.Stack.Push(gofift.BytesValue(data))
			ctx.SetPendingArgcount(1, ctx.Dict.Nop())
			return nil
		}); err != nil {
			return err
		}
	}

	if err := d.DefineContextWord("emit", func(ctx *gofift.Context) error {
		c, err := ctx.Stack.PopSmallIntRange(0, 0x10FFFF)
		if err != nil {
			return err
		}
		_, err = ctx.Out.Write([]byte(string(rune(c))))
		return err
	}); err != nil {
		return err
	}
	if err := d.DefineContextWord("space", func(ctx *gofift.Context) error {
		_, err := ctx.Out.Write([]byte(" "))
		return err
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("chr", func(s *gofift.Stack) error {
		c, err := s.PopSmallIntRange(0, 0x10FFFF)
		if err != nil {
			return err
		}
		s.Push(gofift.StringValue(string(rune(c))))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("hold", func(s *gofift.Stack) error {
		c, err := s.PopSmallIntRange(0, 0x10FFFF)
		if err != nil {
			return err
		}
		str, err := s.PopString()
		if err != nil {
			return err
		}
		s.Push(gofift.StringValue(str + string(rune(c))))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("$+", func(s *gofift.Stack) error {
		b, err := s.PopString()
		if err != nil {
			return err
		}
		a, err := s.PopString()
		if err != nil {
			return err
		}
		s.Push(gofift.StringValue(a + b))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("$len", func(s *gofift.Stack) error {
		str, err := s.PopString()
		if err != nil {
			return err
		}
		s.PushInt(int64(len(str)))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("$Len", func(s *gofift.Stack) error {
		str, err := s.PopString()
		if err != nil {
			return err
		}
		s.PushInt(int64(len([]rune(str))))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("$=", func(s *gofift.Stack) error {
		b, err := s.PopString()
		if err != nil {
			return err
		}
		a, err := s.PopString()
		if err != nil {
			return err
		}
		s.PushBool(a == b)
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("$cmp", func(s *gofift.Stack) error {
		b, err := s.PopString()
		if err != nil {
			return err
		}
		a, err := s.PopString()
		if err != nil {
			return err
		}
		s.PushInt(int64(strings.Compare(a, b)))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("$reverse", func(s *gofift.Stack) error {
		str, err := s.PopString()
		if err != nil {
			return err
		}
		runes := []rune(str)
		for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
			runes[i], runes[j] = runes[j], runes[i]
		}
		s.Push(gofift.StringValue(string(runes)))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("$pos", func(s *gofift.Stack) error {
		sub, err := s.PopString()
		if err != nil {
			return err
		}
		str, err := s.PopString()
		if err != nil {
			return err
		}
		s.PushInt(int64(strings.Index(str, sub)))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("$|", func(s *gofift.Stack) error {
		at, err := s.PopSmallIntRange(0, 1<<30)
		if err != nil {
			return err
		}
		head, err := s.PopString()
		if err != nil {
			return err
		}
		if int(at) > len(head) {
			return gofift.NewRangeError("index %d out of range", at)
		}
		s.Push(gofift.StringValue(head[:at]))
		s.Push(gofift.StringValue(head[at:]))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("$sub", func(s *gofift.Stack) error {
		y, err := s.PopSmallIntRange(0, 1<<30)
		if err != nil {
			return err
		}
		x, err := s.PopSmallIntRange(0, 1<<30)
		if err != nil {
			return err
		}
		str, err := s.PopString()
		if err != nil {
			return err
		}
		if x > y || int(y) > len(str) {
			return gofift.NewRangeError("x, y must satisfy 0 <= x <= y <= %d", len(str))
		}
		s.Push(gofift.StringValue(str[x:y]))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("$mul", func(s *gofift.Stack) error {
		n, err := s.PopSmallIntRange(0, 1<<16)
		if err != nil {
			return err
		}
		str, err := s.PopString()
		if err != nil {
			return err
		}
		s.Push(gofift.StringValue(strings.Repeat(str, int(n))))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("-trailing", func(s *gofift.Stack) error {
		str, err := s.PopString()
		if err != nil {
			return err
		}
		s.Push(gofift.StringValue(strings.TrimRight(str, " ")))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("$>smth", func(s *gofift.Stack) error {
		str, err := s.PopString()
		if err != nil {
			return err
		}
		trimmed := strings.TrimFunc(str, unicode.IsSpace)
		n, ok := new(big.Int).SetString(trimmed, 0)
		s.PushBool(ok)
		if ok {
			s.Push(gofift.IntValue(n))
		}
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("(number)", func(s *gofift.Stack) error {
		str, err := s.PopString()
		if err != nil {
			return err
		}
		n, ok := new(big.Int).SetString(str, 0)
		if !ok {
			s.PushInt(0)
			return nil
		}
		s.Push(gofift.IntValue(n))
		s.PushInt(1)
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("B|", func(s *gofift.Stack) error {
		at, err := s.PopSmallIntRange(0, 1<<30)
		if err != nil {
			return err
		}
		head, err := s.PopBytes()
		if err != nil {
			return err
		}
		if int(at) > len(head) {
			return gofift.NewRangeError("index %d out of range", at)
		}
		s.Push(gofift.BytesValue(head[:at:at]))
		s.Push(gofift.BytesValue(head[at:]))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("B+", func(s *gofift.Stack) error {
		b, err := s.PopBytes()
		if err != nil {
			return err
		}
		a, err := s.PopBytes()
		if err != nil {
			return err
		}
		out := make([]byte, 0, len(a)+len(b))
		out = append(out, a...)
		out = append(out, b...)
		s.Push(gofift.BytesValue(out))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("B=", func(s *gofift.Stack) error {
		b, err := s.PopBytes()
		if err != nil {
			return err
		}
		a, err := s.PopBytes()
		if err != nil {
			return err
		}
		s.PushBool(string(a) == string(b))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("Blen", func(s *gofift.Stack) error {
		data, err := s.PopBytes()
		if err != nil {
			return err
		}
		s.PushInt(int64(len(data)))
		return nil
	}); err != nil {
		return err
	}

	return nil
})

func decodeHexOrBits(raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	return hex.DecodeString(trimmed)
}
