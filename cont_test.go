package gofift_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbinlang/gofift"
)

// drive runs a Continuation to completion on ctx the same way Context.Run
// drives InterpreterCont, without going through the lexer/dictionary.
func drive(t *testing.T, ctx *gofift.Context, start gofift.Continuation) {
	t.Helper()
	current := start
	for current != nil {
		next, err := current.Run(ctx)
		require.NoError(t, err)
		if next == nil {
			next = ctx.Next
			ctx.Next = nil
		}
		current = next
	}
}

func pushN(n int64) gofift.Continuation {
	return &gofift.StackWordCont{Name: "push", Fn: func(s *gofift.Stack) error {
		s.PushInt(n)
		return nil
	}}
}

func Test_seqContRunsBothInOrder(t *testing.T) {
	var out bytes.Buffer
	ctx := gofift.New(gofift.WithOutput(&out))
	drive(t, ctx, gofift.MakeSeq(pushN(1), pushN(2)))
	b, err := ctx.Stack.PopInt()
	require.NoError(t, err)
	assert.Equal(t, int64(2), b.Int64())
	a, err := ctx.Stack.PopInt()
	require.NoError(t, err)
	assert.Equal(t, int64(1), a.Int64())
}

func Test_makeSeqCollapsesNils(t *testing.T) {
	body := pushN(7)
	assert.Same(t, body, gofift.MakeSeq(body, nil))
	assert.Same(t, body, gofift.MakeSeq(nil, body))
	assert.Nil(t, gofift.MakeSeq(nil, nil))
}

func Test_timesContRunsBodyNTimes(t *testing.T) {
	var out bytes.Buffer
	ctx := gofift.New(gofift.WithOutput(&out))
	calls := 0
	body := &gofift.StackWordCont{Fn: func(s *gofift.Stack) error {
		calls++
		return nil
	}}
	drive(t, ctx, &gofift.TimesCont{Body: body, N: 4})
	assert.Equal(t, 4, calls)
}

func Test_timesContZeroIsNoop(t *testing.T) {
	var out bytes.Buffer
	ctx := gofift.New(gofift.WithOutput(&out))
	calls := 0
	body := &gofift.StackWordCont{Fn: func(s *gofift.Stack) error {
		calls++
		return nil
	}}
	drive(t, ctx, &gofift.TimesCont{Body: body, N: 0})
	assert.Equal(t, 0, calls)
}

func Test_untilContStopsWhenBodyPushesTrue(t *testing.T) {
	var out bytes.Buffer
	ctx := gofift.New(gofift.WithOutput(&out))
	n := 0
	body := &gofift.StackWordCont{Fn: func(s *gofift.Stack) error {
		n++
		s.PushBool(n == 3)
		return nil
	}}
	drive(t, ctx, &gofift.UntilCont{Body: body})
	assert.Equal(t, 3, n)
}

func Test_whileContStopsWhenCondPushesFalse(t *testing.T) {
	var out bytes.Buffer
	ctx := gofift.New(gofift.WithOutput(&out))
	n := 0
	cond := &gofift.StackWordCont{Fn: func(s *gofift.Stack) error {
		s.PushBool(n < 3)
		return nil
	}}
	body := &gofift.StackWordCont{Fn: func(s *gofift.Stack) error {
		n++
		return nil
	}}
	drive(t, ctx, &gofift.WhileCont{Cond: cond, Body: body})
	assert.Equal(t, 3, n)
}

func Test_wordListContRunsItemsInOrderThenFallsThrough(t *testing.T) {
	var out bytes.Buffer
	ctx := gofift.New(gofift.WithOutput(&out))
	drive(t, ctx, &gofift.WordListCont{List: &gofift.WordList{
		Items: []gofift.Continuation{pushN(10), pushN(20), pushN(30)},
	}})
	for _, want := range []int64{30, 20, 10} {
		got, err := ctx.Stack.PopInt()
		require.NoError(t, err)
		assert.Equal(t, want, got.Int64())
	}
}

func Test_wordListContEmptyIsNoop(t *testing.T) {
	var out bytes.Buffer
	ctx := gofift.New(gofift.WithOutput(&out))
	drive(t, ctx, &gofift.WordListCont{List: &gofift.WordList{}})
	assert.Equal(t, 0, ctx.Stack.Depth())
}
