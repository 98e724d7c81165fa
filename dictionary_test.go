package gofift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbinlang/gofift"
)

func Test_dictionaryLookupExact(t *testing.T) {
	d := gofift.NewDictionary()
	require.NoError(t, d.DefineWord("dup", d.Nop()))
	e, ok := d.Lookup("dup")
	require.True(t, ok)
	assert.False(t, e.Active)
}

func Test_dictionaryLongestPrefix(t *testing.T) {
	d := gofift.NewDictionary()
	require.NoError(t, d.DefineWord("+", d.Nop()))
	e, n, ok := d.LookupPrefix("+foo")
	require.True(t, ok)
	assert.Equal(t, 1, n)
	assert.Equal(t, "+", e.Name)
}

func Test_dictionaryPrefixPrefersLongestMatch(t *testing.T) {
	d := gofift.NewDictionary()
	require.NoError(t, d.DefineWord("ab", d.Nop()))
	require.NoError(t, d.DefineWord("a", d.Nop()))
	e, n, ok := d.LookupPrefix("abc")
	require.True(t, ok)
	assert.Equal(t, 2, n)
	assert.Equal(t, "ab", e.Name)
}

func Test_dictionaryUndefine(t *testing.T) {
	d := gofift.NewDictionary()
	require.NoError(t, d.DefineWord("tmp", d.Nop()))
	d.Undefine("tmp")
	_, ok := d.Lookup("tmp")
	assert.False(t, ok)
}

func Test_dictionaryIsNop(t *testing.T) {
	d := gofift.NewDictionary()
	assert.True(t, d.IsNop(d.Nop()))
	assert.False(t, d.IsNop(&gofift.LitCont{Value: gofift.Null()}))
}

func Test_dictionaryRejectsEmptyName(t *testing.T) {
	d := gofift.NewDictionary()
	err := d.DefineWord("", d.Nop())
	assert.Error(t, err)
}
