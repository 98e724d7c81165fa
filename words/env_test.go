package words_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbinlang/gofift"
	"github.com/corbinlang/gofift/words"
)

// stubEnv is a minimal in-memory Environment, used to test the words that
// expose spec.md's Environment interface without touching the real
// filesystem or clock.
type stubEnv struct {
	files map[string]string
}

func (e *stubEnv) NowMS() int64 { return 1234 }

func (e *stubEnv) GetEnv(name string) (string, bool) {
	v, ok := map[string]string{"FOO": "bar"}[name]
	return v, ok
}

func (e *stubEnv) FileExists(path string) bool { _, ok := e.files[path]; return ok }
func (e *stubEnv) ReadFile(path string) ([]byte, error) {
	data, ok := e.files[path]
	if !ok {
		return nil, errors.New("not found")
	}
	return []byte(data), nil
}
func (e *stubEnv) ReadFilePart(path string, offset, length int64) ([]byte, error) {
	data, err := e.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return data[offset : offset+length], nil
}
func (e *stubEnv) WriteFile(path string, data []byte) error {
	if e.files == nil {
		e.files = map[string]string{}
	}
	e.files[path] = string(data)
	return nil
}
func (e *stubEnv) Include(name string) (gofift.ReadCloserNamed, string, error) {
	data, ok := e.files[name]
	if !ok {
		return nil, "", errors.New("not found")
	}
	return &stubReadCloser{Reader: strings.NewReader(data), name: name}, name, nil
}

type stubReadCloser struct {
	io.Reader
	name string
}

func (r *stubReadCloser) Close() error { return nil }
func (r *stubReadCloser) Name() string { return r.name }

func runWithEnv(t *testing.T, env gofift.Environment, src string) string {
	t.Helper()
	var out bytes.Buffer
	ctx := gofift.New(gofift.WithEnvironment(env), gofift.WithOutput(&out), gofift.WithInput("<test>", bytes.NewBufferString(src)))
	for _, m := range words.All() {
		require.NoError(t, m.Init(ctx.Dict))
	}
	_, err := ctx.Run()
	require.NoError(t, err)
	return out.String()
}

func Test_getenvWords(t *testing.T) {
	env := &stubEnv{}
	got := runWithEnv(t, env, `"FOO" getenv type cr "MISSING" getenv? . cr`)
	assert.Equal(t, "bar\n0 \n", got)
}

func Test_fileExistsAndReadFile(t *testing.T) {
	env := &stubEnv{files: map[string]string{"a.txt": "hello"}}
	got := runWithEnv(t, env, `"a.txt" file-exists? . cr "a.txt" read-file B>$ type cr`)
	assert.Equal(t, "-1 \nhello\n", got)
}

func Test_writeFileThenReadBack(t *testing.T) {
	env := &stubEnv{}
	got := runWithEnv(t, env, `"hi" $>B "out.txt" write-file "out.txt" read-file B>$ type cr`)
	assert.Equal(t, "hi\n", got)
}

func Test_includePushesSourceOntoLexer(t *testing.T) {
	env := &stubEnv{files: map[string]string{"lib.fif": `"from include" type cr`}}
	got := runWithEnv(t, env, `"lib.fif" include`)
	assert.Equal(t, "from include\n", got)
}
