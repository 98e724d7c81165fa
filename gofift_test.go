package gofift_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbinlang/gofift"
	"github.com/corbinlang/gofift/words"
)

// run interprets src to completion against a fresh Context with every
// word module installed, returning its stdout and any error, in the
// style of the teacher's vmTest helper driving a whole VM run instead
// of one opcode at a time.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	ctx := gofift.New(gofift.WithOutput(&out), gofift.WithInput("<test>", bytes.NewBufferString(src)))
	for _, m := range words.All() {
		require.NoError(t, m.Init(ctx.Dict))
	}
	_, err := ctx.Run()
	return out.String(), err
}

func Test_arithmetic(t *testing.T) {
	cases := []struct {
		name, src, want string
	}{
		{"add", "2 3 + . cr", "5 \n"},
		{"sub", "5 3 - . cr", "2 \n"},
		{"mul", "6 7 * . cr", "42 \n"},
		{"floordiv", "7 2 / . cr", "3 \n"},
		{"negate floordiv", "-7 2 / . cr", "-4 \n"},
		{"compare true", "2 3 < . cr", "-1 \n"},
		{"compare false", "3 2 < . cr", "0 \n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := run(t, c.src)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func Test_divideByZeroIsRangeError(t *testing.T) {
	_, err := run(t, "1 0 /")
	require.Error(t, err)
}

func Test_stackWords(t *testing.T) {
	got, err := run(t, "1 2 3 swap . . . cr")
	require.NoError(t, err)
	assert.Equal(t, "2 3 1 \n", got)
}

func Test_colonDefinitionAndExecute(t *testing.T) {
	got, err := run(t, "{ dup * } : square 5 square . cr")
	require.NoError(t, err)
	assert.Equal(t, "25 \n", got)
}

func Test_colonDefinitionScenario(t *testing.T) {
	got, err := run(t, "{ dup * } : sq  7 sq .")
	require.NoError(t, err)
	assert.Equal(t, "49 ", got)
}

func Test_ifAndIfnot(t *testing.T) {
	got, err := run(t, "-1 { \"yes\" type } if cr 0 { \"no\" type } ifnot cr")
	require.NoError(t, err)
	assert.Equal(t, "yes\nno\n", got)
}

func Test_timesLoop(t *testing.T) {
	got, err := run(t, "0 { 1+ } 5 times . cr")
	require.NoError(t, err)
	assert.Equal(t, "5 \n", got)
}

func Test_stringWords(t *testing.T) {
	got, err := run(t, `"hello" "world" $+ type cr`)
	require.NoError(t, err)
	assert.Equal(t, "helloworld\n", got)
}

func Test_stringSplit(t *testing.T) {
	got, err := run(t, `"hello" 2 $| type cr type cr`)
	require.NoError(t, err)
	assert.Equal(t, "llo\nhe\n", got)
}

func Test_charLiteralMnemonic(t *testing.T) {
	got, err := run(t, `char <ht> . cr`)
	require.NoError(t, err)
	assert.Equal(t, "9 \n", got)
}

func Test_bytesRoundTripHex(t *testing.T) {
	got, err := run(t, `x{48656c6c6f} B>$ type cr`)
	require.NoError(t, err)
	assert.Equal(t, "Hello\n", got)
}

func Test_tuples(t *testing.T) {
	got, err := run(t, "1 2 3 3 tuple 0 [] . cr")
	require.NoError(t, err)
	assert.Equal(t, "1 \n", got)
}

func Test_undefinedWordIsError(t *testing.T) {
	_, err := run(t, "this-word-does-not-exist")
	require.Error(t, err)
}

func Test_quitStopsCleanly(t *testing.T) {
	got, err := run(t, `"before" type quit "after" type`)
	require.NoError(t, err)
	assert.Equal(t, "before", got)
}
