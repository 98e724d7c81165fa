package gofift

import "math/big"

// Continuation is the closed sum of executable continuation kinds. Run
// executes one step and returns the next continuation to run (nil means
// "fall through to ctx.Next"), per the iterative trampoline design in
// original_source/src/core/cont.rs and src/core/mod.rs's Context::run:
// there is deliberately no recursive host-stack call chain here.
type Continuation interface {
	Run(ctx *Context) (Continuation, error)
}

// NopCont does nothing; it is the dictionary's singleton nop, looked up
// by pointer identity via Dictionary.IsNop.
type NopCont struct{}

func (c *NopCont) Run(ctx *Context) (Continuation, error) { return nil, nil }

// LitCont pushes a single literal Value, then falls through.
type LitCont struct {
	Value Value
}

func (c *LitCont) Run(ctx *Context) (Continuation, error) {
	ctx.Stack.Push(c.Value)
	return nil, nil
}

// MultiLitCont pushes several literal Values in order, then falls
// through — used for number-literal tokens that push a numerator and
// denominator together.
type MultiLitCont struct {
	Values []Value
}

func (c *MultiLitCont) Run(ctx *Context) (Continuation, error) {
	for _, v := range c.Values {
		ctx.Stack.Push(v)
	}
	return nil, nil
}

// IntLitCont pushes a fixed integer constant, for words like `true`,
// `false`, `bl` defined as raw integer-literal dictionary entries (per
// original_source/src/words/common.rs).
type IntLitCont struct {
	Value *big.Int
}

func (c *IntLitCont) Run(ctx *Context) (Continuation, error) {
	ctx.Stack.Push(IntValue(new(big.Int).Set(c.Value)))
	return nil, nil
}

// SeqCont runs First, then Second. MakeSeq collapses a nil First/Second
// away instead of allocating a node; otherwise it always allocates a new
// SeqCont. No node is ever rewritten in place, uniquely owned or not
// (original_source/src/core/cont.rs does that via Rc::get_mut; Go's
// garbage collector gives no cheap way to ask "am I the only reference
// to this node").
type SeqCont struct {
	First  Continuation
	Second Continuation
}

// MakeSeq builds a continuation that runs first then second, skipping
// either side if nil and never wrapping nil+nil.
func MakeSeq(first, second Continuation) Continuation {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	return &SeqCont{First: first, Second: second}
}

func (c *SeqCont) Run(ctx *Context) (Continuation, error) {
	ctx.Next = MakeSeq(c.Second, ctx.Next)
	return c.First, nil
}

// TimesCont runs Body N times, then falls through.
type TimesCont struct {
	Body Continuation
	N    int
}

func (c *TimesCont) Run(ctx *Context) (Continuation, error) {
	if c.N <= 0 {
		return nil, nil
	}
	rest := &TimesCont{Body: c.Body, N: c.N - 1}
	ctx.Next = MakeSeq(rest, ctx.Next)
	return c.Body, nil
}

// UntilCont repeatedly runs Body, popping a boolean result after each
// run, stopping once that result is true.
type UntilCont struct {
	Body Continuation
}

func (c *UntilCont) Run(ctx *Context) (Continuation, error) {
	check := &untilCheckCont{body: c.Body}
	ctx.Next = MakeSeq(check, ctx.Next)
	return c.Body, nil
}

type untilCheckCont struct{ body Continuation }

func (c *untilCheckCont) Run(ctx *Context) (Continuation, error) {
	done, err := ctx.Stack.PopBool()
	if err != nil {
		return nil, err
	}
	if done {
		return nil, nil
	}
	return (&UntilCont{Body: c.body}).Run(ctx)
}

// WhileCont evaluates Cond; if the popped result is true it runs Body
// then loops back to Cond, otherwise it stops. Grounded on
// original_source/src/core/cont.rs's WhileCont two-phase
// running_body flag, modeled here as two small continuation types
// instead of a mutable flag field.
type WhileCont struct {
	Cond Continuation
	Body Continuation
}

func (c *WhileCont) Run(ctx *Context) (Continuation, error) {
	check := &whileCheckCont{cond: c.Cond, body: c.Body}
	ctx.Next = MakeSeq(check, ctx.Next)
	return c.Cond, nil
}

type whileCheckCont struct{ cond, body Continuation }

func (c *whileCheckCont) Run(ctx *Context) (Continuation, error) {
	again, err := ctx.Stack.PopBool()
	if err != nil {
		return nil, err
	}
	if !again {
		return nil, nil
	}
	loop := &WhileCont{Cond: c.cond, Body: c.body}
	ctx.Next = MakeSeq(loop, ctx.Next)
	return c.body, nil
}

// WordListCont executes each continuation in List in order, then falls
// through. A one-item WordList is collapsed directly to its item by
// WordList.Finish and never reaches this type.
type WordListCont struct {
	List *WordList
}

func (c *WordListCont) Run(ctx *Context) (Continuation, error) {
	if len(c.List.Items) == 0 {
		return nil, nil
	}
	rest := &WordListCont{List: &WordList{Items: c.List.Items[1:]}}
	ctx.Next = MakeSeq(rest, ctx.Next)
	return c.List.Items[0], nil
}

// StackWordCont wraps a built-in that only touches the data stack.
type StackWordCont struct {
	Name string
	Fn   func(*Stack) error
}

func (c *StackWordCont) Run(ctx *Context) (Continuation, error) {
	return nil, c.Fn(ctx.Stack)
}

// ContextWordCont wraps a built-in needing the full Context (env,
// dictionaries, lexer) but not redirecting control flow itself.
type ContextWordCont struct {
	Name string
	Fn   func(*Context) error
}

func (c *ContextWordCont) Run(ctx *Context) (Continuation, error) {
	return nil, c.Fn(ctx)
}

// ContextTailWordCont wraps a built-in that redirects control flow by
// returning the next Continuation to run (e.g. `execute`, `times`,
// `if`), per original_source/src/core/cont.rs's ContextTailWordFunc.
type ContextTailWordCont struct {
	Name string
	Fn   func(*Context) (Continuation, error)
}

func (c *ContextTailWordCont) Run(ctx *Context) (Continuation, error) {
	return c.Fn(ctx)
}
