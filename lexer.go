package gofift

import (
	"io"
	"strings"
	"unicode"

	"github.com/corbinlang/gofift/internal/runeio"
)

// sourceBlock is one named input source on the lexer's block stack:
// a line-buffered rune reader (internal/runeio.NewReader) plus the
// position bookkeeping needed for error messages, stacked so each
// nested include/source gets its own Location, per
// original_source/src/core/lexer.rs's SourceBlockState.
type sourceBlock struct {
	name    string
	line    int
	lineOff int // rune offset already consumed within the current line buffer
	runes   []rune
	rd      io.RuneReader
	eof     bool
}

func newSourceBlock(name string, r io.Reader) *sourceBlock {
	return &sourceBlock{name: name, line: 1, rd: runeio.NewReader(r)}
}

// fill reads one more line of runes into the block's buffer if the
// current buffer is exhausted. Returns false at true EOF.
func (b *sourceBlock) fill() bool {
	for b.lineOff >= len(b.runes) {
		if b.eof {
			return false
		}
		b.runes = b.runes[:0]
		b.lineOff = 0
		for {
			r, _, err := b.rd.ReadRune()
			if err != nil {
				b.eof = true
				break
			}
			if r == '\n' {
				break
			}
			b.runes = append(b.runes, r)
		}
		if len(b.runes) == 0 && b.eof {
			return false
		}
	}
	return true
}

// Lexer scans whitespace-delimited tokens off a stack of named input
// blocks, supporting a rewind of partially-consumed tokens (for
// prefix/subtoken dictionary lookups), per
// original_source/src/core/lexer.rs.
type Lexer struct {
	blocks []*sourceBlock
}

// NewLexer returns an empty Lexer (no source pushed yet).
func NewLexer() *Lexer { return &Lexer{} }

// PushSource pushes a new named input source onto the block stack; it
// becomes the lexer's current source until it is exhausted or popped.
func (lx *Lexer) PushSource(name string, r io.Reader) {
	lx.blocks = append(lx.blocks, newSourceBlock(name, r))
}

// PushString pushes an in-memory string as a source, used for `include`
// of a dynamically-built string, and in tests.
func (lx *Lexer) PushString(name, s string) {
	lx.PushSource(name, strings.NewReader(s))
}

// PopSource discards the current (topmost) block, e.g. when an included
// file reaches EOF mid-word and control returns to the includer.
func (lx *Lexer) PopSource() {
	if len(lx.blocks) > 0 {
		lx.blocks = lx.blocks[:len(lx.blocks)-1]
	}
}

// Depth returns the number of source blocks currently stacked.
func (lx *Lexer) Depth() int { return len(lx.blocks) }

// Position describes the lexer's current location, for error messages.
type Position struct {
	Name string
	Line int
}

func (p Position) String() string {
	if p.Name == "" {
		return "<input>"
	}
	return p.Name
}

// Pos returns the current top block's position.
func (lx *Lexer) Pos() Position {
	if len(lx.blocks) == 0 {
		return Position{}
	}
	b := lx.blocks[len(lx.blocks)-1]
	return Position{Name: b.name, Line: b.line}
}

func (lx *Lexer) top() *sourceBlock {
	for len(lx.blocks) > 0 {
		b := lx.blocks[len(lx.blocks)-1]
		if b.fill() {
			return b
		}
		lx.blocks = lx.blocks[:len(lx.blocks)-1]
	}
	return nil
}

// SkipSpace advances past whitespace in the current block (the
// `skipspc` word), not crossing block boundaries.
func (lx *Lexer) SkipSpace() {
	b := lx.top()
	if b == nil {
		return
	}
	for b.lineOff < len(b.runes) && unicode.IsSpace(b.runes[b.lineOff]) {
		b.lineOff++
	}
}

// ScanWord scans the next whitespace-delimited token, skipping leading
// whitespace first. Returns ok=false at end of all input.
func (lx *Lexer) ScanWord() (token string, ok bool) {
	return lx.ScanWordUntil(unicode.IsSpace)
}

// ScanWordUntil scans a token up to (not including) the first rune
// satisfying delim, first skipping any leading delim runes, matching
// original_source/src/core/lexer.rs's scan_word_until semantics used by
// the `word` built-in for custom delimiters.
func (lx *Lexer) ScanWordUntil(delim func(rune) bool) (token string, ok bool) {
	for {
		b := lx.top()
		if b == nil {
			return "", false
		}
		for b.lineOff < len(b.runes) && delim(b.runes[b.lineOff]) {
			b.lineOff++
		}
		if b.lineOff >= len(b.runes) {
			lx.advanceLine(b)
			continue
		}
		start := b.lineOff
		for b.lineOff < len(b.runes) && !delim(b.runes[b.lineOff]) {
			b.lineOff++
		}
		return string(b.runes[start:b.lineOff]), true
	}
}

// ReadLine reads the remainder of the current line verbatim, without
// treating internal spaces as delimiters. None of the bundled words
// calls it.
func (lx *Lexer) ReadLine() (string, bool) {
	b := lx.top()
	if b == nil {
		return "", false
	}
	s := string(b.runes[b.lineOff:])
	lx.advanceLine(b)
	return s, true
}

// ReadUntilByte reads runes up to and including the first occurrence of
// delim, returning the text before it (without delim), crossing line
// boundaries within the current block as needed — used by the active
// `"` (quoted string) word.
func (lx *Lexer) ReadUntilByte(delim rune) (string, bool) {
	var sb strings.Builder
	for {
		b := lx.top()
		if b == nil {
			return sb.String(), false
		}
		for b.lineOff < len(b.runes) {
			r := b.runes[b.lineOff]
			b.lineOff++
			if r == delim {
				return sb.String(), true
			}
			sb.WriteRune(r)
		}
		if b.eof {
			return sb.String(), false
		}
		sb.WriteRune('\n')
		lx.advanceLine(b)
	}
}

// ReadN reads exactly n runes from the current block (crossing lines);
// returns false if input runs out first. None of the bundled words calls
// it.
func (lx *Lexer) ReadN(n int) (string, bool) {
	var sb strings.Builder
	for n > 0 {
		b := lx.top()
		if b == nil {
			return sb.String(), false
		}
		for n > 0 && b.lineOff < len(b.runes) {
			sb.WriteRune(b.runes[b.lineOff])
			b.lineOff++
			n--
		}
		if n == 0 {
			break
		}
		if b.eof {
			return sb.String(), false
		}
		sb.WriteRune('\n')
		n--
		lx.advanceLine(b)
	}
	return sb.String(), true
}

func (lx *Lexer) advanceLine(b *sourceBlock) {
	b.lineOff = len(b.runes)
	b.line++
}

// Rewind moves the current block's read position back by n runes,
// giving back characters already consumed by ScanWord so a shorter
// subtoken match can be retried against the rest, per
// original_source/src/core/lexer.rs's rewind (driven by Token.delta()).
func (lx *Lexer) Rewind(n int) {
	if n <= 0 || len(lx.blocks) == 0 {
		return
	}
	b := lx.blocks[len(lx.blocks)-1]
	b.lineOff -= n
	if b.lineOff < 0 {
		b.lineOff = 0
	}
}
