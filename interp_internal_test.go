package gofift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseSingleNumberDecimal(t *testing.T) {
	n, ok, err := parseSingleNumber("123")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(123), n.Int64())
}

func Test_parseSingleNumberNegative(t *testing.T) {
	n, ok, err := parseSingleNumber("-42")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(-42), n.Int64())
}

func Test_parseSingleNumberHex(t *testing.T) {
	n, ok, err := parseSingleNumber("0xFF")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(255), n.Int64())
}

func Test_parseSingleNumberBinary(t *testing.T) {
	n, ok, err := parseSingleNumber("0b101")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(5), n.Int64())
}

func Test_parseSingleNumberNotANumber(t *testing.T) {
	_, ok, err := parseSingleNumber("foo")
	require.NoError(t, err)
	assert.False(t, ok)
}

func Test_parseSingleNumberMalformedHex(t *testing.T) {
	_, _, err := parseSingleNumber("0x")
	require.Error(t, err)
}

func Test_parseNumberRational(t *testing.T) {
	vals, ok, err := parseNumber("3/4")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, vals, 2)
	assert.Equal(t, int64(3), vals[0].Int.Int64())
	assert.Equal(t, int64(4), vals[1].Int.Int64())
}

func Test_parseNumberMalformedRational(t *testing.T) {
	_, _, err := parseNumber("3/foo")
	assert.Error(t, err)
}

func Test_parseNumberSingle(t *testing.T) {
	vals, ok, err := parseNumber("7")
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, vals, 1)
	assert.Equal(t, int64(7), vals[0].Int.Int64())
}
