package words_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbinlang/gofift"
	"github.com/corbinlang/gofift/words"
)

func run(t *testing.T, src string) string {
	t.Helper()
	var out bytes.Buffer
	ctx := gofift.New(gofift.WithOutput(&out), gofift.WithInput("<test>", bytes.NewBufferString(src)))
	for _, m := range words.All() {
		require.NoError(t, m.Init(ctx.Dict))
	}
	_, err := ctx.Run()
	require.NoError(t, err)
	return out.String()
}

func Test_cellBuilderSliceRoundTrip(t *testing.T) {
	got := run(t, "255 <b 8u, b> <s 8u@ . cr")
	assert.Equal(t, "255 \n", got)
}

func Test_cellRefStoreLoad(t *testing.T) {
	got := run(t, "7 <b 8u, b> <b ref, b> <s ref@ <s 8u@ . cr")
	assert.Equal(t, "7 \n", got)
}

func Test_cryptoSha256Hex(t *testing.T) {
	got := run(t, `"" sha256 B>x type cr`)
	assert.Equal(t, "a7ffc6f8bf1ed76651c14756a061d662f580ff4de43b49fa82d80a4b80f8434a\n", got)
}

func Test_cryptoBase64RoundTrip(t *testing.T) {
	got := run(t, `"hello" base64 base64>B B>$ type cr`)
	assert.Equal(t, "hello\n", got)
}

func Test_cryptoHexRoundTrip(t *testing.T) {
	got := run(t, `"hi" $>B B>x x>B B>$ type cr`)
	assert.Equal(t, "hi\n", got)
}

func Test_dictTypePredicates(t *testing.T) {
	got := run(t, "null integer? . cr null null? . cr 5 integer? . cr")
	assert.Equal(t, "0 \n-1 \n-1 \n", got)
}

func Test_dictEmptyTupleAndPush(t *testing.T) {
	got := run(t, "| 1 , 2 , count . cr")
	assert.Equal(t, "2 \n", got)
}

func Test_stackRot(t *testing.T) {
	got := run(t, "1 2 3 rot . . . cr")
	assert.Equal(t, "1 3 2 \n", got)
}

func Test_controlFindAndExecute(t *testing.T) {
	got := run(t, `{ dup + } : double "double" find { 21 swap execute . cr } { drop } cond`)
	assert.Equal(t, "42 \n", got)
}

func Test_controlForgetRemovesWord(t *testing.T) {
	got := run(t, `{ 1 } : temp "temp" forget "temp" find { 1 } { 0 } cond . cr`)
	assert.Equal(t, "0 \n", got)
}

func Test_controlWordCustomDelimiter(t *testing.T) {
	got := run(t, `bl word abc type cr`)
	assert.Equal(t, "abc\n", got)
}
