package gofift_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbinlang/gofift"
)

func Test_dumpStackBottomFirst(t *testing.T) {
	ctx := gofift.New()
	ctx.Stack.PushInt(1)
	ctx.Stack.PushInt(2)
	ctx.Stack.PushInt(3)
	var out bytes.Buffer
	require.NoError(t, gofift.DumpStack(&out, ctx.Stack))
	assert.Equal(t, "1\n2\n3\n", out.String())
}

func Test_dumpStackLineSingleLine(t *testing.T) {
	ctx := gofift.New()
	ctx.Stack.PushInt(1)
	ctx.Stack.PushInt(2)
	ctx.Stack.PushInt(3)
	var out bytes.Buffer
	require.NoError(t, gofift.DumpStackLine(&out, ctx.Stack))
	assert.Equal(t, "1 2 3\n", out.String())
}

func Test_dumpDictionarySorted(t *testing.T) {
	d := gofift.NewDictionary()
	require.NoError(t, d.DefineWord("zeta", &gofift.NopCont{}))
	require.NoError(t, d.DefineWord("alpha", &gofift.NopCont{}))
	var out bytes.Buffer
	require.NoError(t, gofift.DumpDictionary(&out, d))
	assert.Equal(t, "alpha\nzeta\n", out.String())
}

func Test_formatValueKinds(t *testing.T) {
	assert.Equal(t, "null", gofift.FormatValue(gofift.Null()))
	assert.Equal(t, "42", gofift.FormatValue(gofift.IntFromInt64(42)))
	assert.Equal(t, `"hi"`, gofift.FormatValue(gofift.StringValue("hi")))
}
