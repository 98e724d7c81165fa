package gofift

import (
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"github.com/corbinlang/gofift/internal/flushio"
)

// stateKind is one layer of the interpreter's mode stack.
type stateKind int

const (
	stateInterpret stateKind = iota
	stateCompile
	stateInterpretInternal
)

// State tracks interpret/compile/interpret-internal nesting. The
// original Rust design (original_source/src/core/mod.rs) represents
// this as Interpret | Compile(NonZeroU32) | InterpretInternal(NonZeroU32):
// a flat current mode plus a same-kind nesting depth. The Go port
// generalizes that to an explicit mode stack, which carries the same
// information (current mode = top of stack, depth = run-length of the
// same kind at the top) while also handling interleaved nesting
// (`[ ... { ... } ... ]` while compiling) without extra bookkeeping.
type State struct {
	stack []stateKind
}

// Current returns the innermost active mode (Interpret if nothing is
// nested).
func (s *State) Current() stateKind {
	if len(s.stack) == 0 {
		return stateInterpret
	}
	return s.stack[len(s.stack)-1]
}

// IsCompile reports whether the interpreter is currently compiling.
func (s *State) IsCompile() bool { return s.Current() == stateCompile }

// BeginCompile enters a nested compile frame.
func (s *State) BeginCompile() { s.stack = append(s.stack, stateCompile) }

// EndCompile leaves the innermost compile frame.
func (s *State) EndCompile() error {
	if s.Current() != stateCompile {
		return newError(KindUnknown, "} without matching {")
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// BeginInterpretInternal enters a nested `[ ... ]` interpret-in-compile
// frame.
func (s *State) BeginInterpretInternal() { s.stack = append(s.stack, stateInterpretInternal) }

// EndInterpretInternal leaves the innermost such frame.
func (s *State) EndInterpretInternal() error {
	if s.Current() != stateInterpretInternal {
		return newError(KindUnknown, "] without matching [")
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

// Context is the interpreter's whole mutable state: the data stack, the
// dictionary, the lexer's input, the host Environment, output, and the
// scheduler's "what runs after the current step" slot.
type Context struct {
	Stack *Stack
	Dict  *Dictionary
	Lexer *Lexer
	Env   Environment
	Out   flushio.WriteFlusher

	State State
	Next  Continuation

	ExitCode int

	// compileFrames is the stack of in-progress word-list bodies being
	// built by `{`/`}`; the innermost (top) frame is where
	// CompileOrExecuteCont appends compiled continuations.
	compileFrames [][]Continuation

	pendingArgcount int
	pendingCont     Continuation
	pendingSet      bool

	// Trace, when non-nil, receives one line per resolved word, for
	// the `-trace` CLI flag.
	Trace func(format string, args ...interface{})
}

// NewContext builds a Context with fresh Stack/Dict/Lexer and the given
// Environment/output, ready to have Options applied and modules
// installed.
func NewContext(env Environment, out flushio.WriteFlusher) *Context {
	return &Context{
		Stack: NewStack(),
		Dict:  NewDictionary(),
		Lexer: NewLexer(),
		Env:   env,
		Out:   out,
	}
}

// OpenCompileFrame pushes a new, empty word-list body.
func (ctx *Context) OpenCompileFrame() {
	ctx.compileFrames = append(ctx.compileFrames, nil)
}

// AppendCompile appends c to the innermost open compile frame.
func (ctx *Context) AppendCompile(c Continuation) error {
	if len(ctx.compileFrames) == 0 {
		return newError(KindUnknown, "not compiling")
	}
	top := len(ctx.compileFrames) - 1
	ctx.compileFrames[top] = append(ctx.compileFrames[top], c)
	return nil
}

// CloseCompileFrame pops and returns the innermost compile frame's
// accumulated continuations.
func (ctx *Context) CloseCompileFrame() ([]Continuation, error) {
	if len(ctx.compileFrames) == 0 {
		return nil, newError(KindUnknown, "not compiling")
	}
	top := len(ctx.compileFrames) - 1
	items := ctx.compileFrames[top]
	ctx.compileFrames = ctx.compileFrames[:top]
	return items, nil
}

// setPendingArgcount records the (count, continuation) pair the next
// CompileOrExecuteCont step should dispatch, per the argcount calling
// convention (spec's Glossary): count literal values have already been
// pushed onto the data stack; cont is what to run once they're
// accounted for (ordinarily the dictionary's nop).
func (ctx *Context) setPendingArgcount(n int, cont Continuation) {
	ctx.pendingArgcount, ctx.pendingCont, ctx.pendingSet = n, cont, true
}

func (ctx *Context) takePendingArgcount() (int, Continuation) {
	n, cont := ctx.pendingArgcount, ctx.pendingCont
	ctx.pendingArgcount, ctx.pendingCont, ctx.pendingSet = 0, nil, false
	return n, cont
}

// SetPendingArgcount is the exported form of setPendingArgcount, for
// active words defined outside this package (the words package) that
// need to hand a (count, continuation) pair to the following
// CompileOrExecuteCont step instead of branching on ctx.State.IsCompile
// themselves — matching original_source/src/core/stack.rs's
// push_argcount convention.
func (ctx *Context) SetPendingArgcount(n int, cont Continuation) {
	ctx.setPendingArgcount(n, cont)
}

// Run drives the scheduler's iterative trampoline starting from the
// top-level interpreter loop, until no continuation remains (natural
// end of input, or a `quit`/`bye`/`halt` clearing Next). It never
// recurses on the Go call stack to express Fift-level control flow,
// per original_source/src/core/mod.rs's Context::run.
func (ctx *Context) Run() (int, error) {
	var current Continuation = &InterpreterCont{}
	for current != nil {
		next, err := current.Run(ctx)
		if err != nil {
			if e, ok := err.(*Error); ok && e.Position == "" {
				if p := ctx.Lexer.Pos(); p.Name != "" {
					e.Position = p.String()
				}
			}
			if ferr := ctx.Out.Flush(); ferr != nil && err == nil {
				err = ferr
			}
			return ctx.ExitCode, err
		}
		if next == nil {
			next = ctx.Next
			ctx.Next = nil
		}
		current = next
	}
	if err := ctx.Out.Flush(); err != nil {
		return ctx.ExitCode, err
	}
	return ctx.ExitCode, nil
}

// InterpreterCont is the top-level read-resolve-dispatch loop: scan one
// token, resolve it to a dictionary entry (by exact match, trailing-
// space convention, or longest prefix) or a numeric literal, then hand
// off to CompileOrExecuteCont. Active words run their definition
// immediately, but a CompileOrExecuteCont step still follows afterwards
// so the word can participate in the argcount convention via
// Context.SetPendingArgcount instead of branching on compile state
// itself. Grounded on
// original_source/src/continuation.rs's InterpretCont::run_tail, the
// clearest complete statement of this algorithm in the corpus.
type InterpreterCont struct{}

func (c *InterpreterCont) Run(ctx *Context) (Continuation, error) {
	ctx.Lexer.SkipSpace()
	token, ok := ctx.Lexer.ScanWord()
	if !ok {
		ctx.Next = nil
		return nil, nil
	}

	entry, rewind := ctx.resolveEntry(token)
	if ctx.Trace != nil {
		ctx.Trace("%v: %q", ctx.Lexer.Pos(), token)
	}
	if entry == nil {
		values, numOK, err := parseNumber(token)
		if err != nil {
			return nil, err
		}
		if !numOK {
			return nil, errUndefinedWord(token)
		}
		for _, v := range values {
			ctx.Stack.Push(v)
		}
		ctx.setPendingArgcount(len(values), ctx.Dict.Nop())
		ctx.Next = MakeSeq(c, ctx.Next)
		return &CompileOrExecuteCont{}, nil
	}

	if rewind > 0 {
		ctx.Lexer.Rewind(rewind)
	}

	if entry.Active {
		ctx.Next = MakeSeq(&CompileOrExecuteCont{}, MakeSeq(c, ctx.Next))
		return entry.Def, nil
	}

	ctx.setPendingArgcount(0, entry.Def)
	ctx.Next = MakeSeq(c, ctx.Next)
	return &CompileOrExecuteCont{}, nil
}

// resolveEntry looks token up by trying every subtoken of token, longest
// first (which tries the full token itself before any shorter prefix),
// giving back the unconsumed suffix via rewind (measured in runes); only
// once every subtoken has missed does it fall back to the trailing-space
// convention multi-word definitions use. Per the subtoken scan in
// original_source/src/core/lexer.rs and src/continuation.rs:61-77 — the
// ordinary-word form is tried last, not first, so a shorter prefix word
// wins a collision against a longer ordinary word. The one exception is
// a numeric literal: a word that is only a proper prefix of a token that
// parses as a number ("2" in "255", "-" in "-7") does not claim it.
func (ctx *Context) resolveEntry(token string) (entry *DictionaryEntry, rewind int) {
	n := len([]rune(token))
	if e, m, ok := ctx.Dict.LookupPrefix(token); ok {
		if _, isNum, err := parseNumber(token); m == n || err != nil || !isNum {
			return e, n - m
		}
	}
	if e, ok := ctx.Dict.Lookup(token + " "); ok {
		return e, 0
	}
	return nil, 0
}

// CompileOrExecuteCont dispatches the pending (argcount, continuation)
// pair set up by InterpreterCont: in compile mode, it captures any
// already-pushed literal values back off the data stack as compiled
// literal instructions and appends the continuation (unless it is the
// dictionary nop) into the innermost open compile frame; otherwise it
// simply runs the continuation for effect, leaving any literal values
// where the interpreter loop already pushed them. Grounded on
// original_source/src/continuation.rs's CompileExecuteCont.
type CompileOrExecuteCont struct{}

func (c *CompileOrExecuteCont) Run(ctx *Context) (Continuation, error) {
	n, cont := ctx.takePendingArgcount()
	if ctx.State.IsCompile() {
		return nil, ctx.compileValue(n, cont)
	}
	return cont, nil
}

func (ctx *Context) compileValue(n int, cont Continuation) error {
	lits := make([]Value, n)
	for i := n - 1; i >= 0; i-- {
		v, err := ctx.Stack.Pop()
		if err != nil {
			return err
		}
		lits[i] = v
	}
	switch len(lits) {
	case 0:
	case 1:
		if err := ctx.AppendCompile(&LitCont{Value: lits[0]}); err != nil {
			return err
		}
	default:
		if err := ctx.AppendCompile(&MultiLitCont{Values: lits}); err != nil {
			return err
		}
	}
	if !ctx.Dict.IsNop(cont) {
		if err := ctx.AppendCompile(cont); err != nil {
			return err
		}
	}
	return nil
}

// parseNumber attempts to parse token as a Fift numeric literal: either
// a plain (possibly radix-prefixed) integer, or a rational "num/denom".
// ok is false (with no error) when token simply isn't numeric at all, so
// the caller falls through to KindUndefinedWord; err is non-nil only
// when token looked numeric (matched a radix prefix or a '/') but its
// digits were malformed. Grounded on original_source/src/lexer.rs's
// Token::parse_number/parse_single_number.
func parseNumber(token string) ([]Value, bool, error) {
	if i := strings.IndexByte(token, '/'); i >= 0 {
		numPart, denomPart := token[:i], token[i+1:]
		num, numOK, err := parseSingleNumber(numPart)
		if err != nil {
			return nil, false, err
		}
		if !numOK {
			return nil, false, nil
		}
		denom, denomOK, err := parseSingleNumber(denomPart)
		if err != nil {
			return nil, false, err
		}
		if !denomOK {
			return nil, false, fmt.Errorf("malformed rational literal %q", token)
		}
		return []Value{IntValue(num), IntValue(denom)}, true, nil
	}
	n, ok, err := parseSingleNumber(token)
	if err != nil || !ok {
		return nil, ok, err
	}
	return []Value{IntValue(n)}, true, nil
}

func parseSingleNumber(s string) (*big.Int, bool, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	if s == "" {
		return nil, false, nil
	}

	base := 10
	digits := s
	switch {
	case strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X"):
		base, digits = 16, s[2:]
	case strings.HasPrefix(s, "0b") || strings.HasPrefix(s, "0B"):
		base, digits = 2, s[2:]
	default:
		for _, r := range s {
			if !unicode.IsDigit(r) {
				return nil, false, nil
			}
		}
	}

	if digits == "" {
		return nil, false, newError(KindMalformedNumber, "no digits in %q", s)
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, false, newError(KindMalformedNumber, "invalid digits in %q", s)
	}
	if neg {
		n.Neg(n)
	}
	return n, true, nil
}
