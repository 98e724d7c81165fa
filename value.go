package gofift

import (
	"fmt"
	"math/big"

	"github.com/corbinlang/gofift/cell"
)

// ValueKind discriminates the closed Value sum type.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindInt
	KindCell
	KindBuilder
	KindSlice
	KindString
	KindBytes
	KindTuple
	KindCont
	KindWordList
	KindSharedBox
	KindAtom
)

func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "integer"
	case KindCell:
		return "cell"
	case KindBuilder:
		return "builder"
	case KindSlice:
		return "slice"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindTuple:
		return "tuple"
	case KindCont:
		return "continuation"
	case KindWordList:
		return "wordlist"
	case KindSharedBox:
		return "box"
	case KindAtom:
		return "atom"
	default:
		return "unknown"
	}
}

// Value is the universal stack/slot value. Exactly one of the typed
// fields is meaningful, selected by Kind; this mirrors the closed Rust
// enum this design is grounded on (original_source/src/core/stack.rs)
// more cheaply than an interface-per-kind would in Go, while still
// giving each kind its own accessor for caller ergonomics.
type Value struct {
	Kind ValueKind

	Int      *big.Int
	Cell     *cell.Cell
	Builder  *cell.Builder
	Slice    *cell.Slice
	Str      string
	Bytes    []byte
	Tuple    *Tuple
	Cont     Continuation
	WordList *WordList
	Box      *SharedBox
	Atom     *Atom
}

// Tuple is a reference-counted-by-sharing slice of Values. It is copied
// on first mutation (append/index-set) when held from more than one
// place, matching Rc<Vec<...>>'s copy-on-write in the original.
type Tuple struct {
	Items []Value
}

func (t *Tuple) clone() *Tuple {
	items := make([]Value, len(t.Items))
	copy(items, t.Items)
	return &Tuple{Items: items}
}

// SharedBox is a single mutable reference-shared slot ("hole").
type SharedBox struct {
	value Value
}

// NewSharedBox creates a box holding v (Null if the zero Value is passed).
func NewSharedBox(v Value) *SharedBox { return &SharedBox{value: v} }

// Fetch returns the box's current content.
func (b *SharedBox) Fetch() Value { return b.value }

// Store replaces the box's content.
func (b *SharedBox) Store(v Value) { b.value = v }

// WordList is an in-progress or finished `{ ... }` bracketed list of
// continuations, collapsed to its single element by Finish when it
// holds exactly one, per original_source/src/core/stack.rs's
// `WordList::finish`.
type WordList struct {
	Items []Continuation
}

// Finish collapses a one-item WordList down to that item's
// continuation directly; a WordList with any other length is wrapped
// as a WordListCont.
func (wl *WordList) Finish() Continuation {
	if len(wl.Items) == 1 {
		return wl.Items[0]
	}
	return &WordListCont{List: wl}
}

// Atom is an interned identifier: named atoms compare equal by name,
// anonymous atoms are unique per allocation.
type Atom struct {
	name string
	anon bool
}

func (a *Atom) String() string {
	if a.anon {
		return fmt.Sprintf("#%p", a)
	}
	return a.name
}

// Null returns the Null value.
func Null() Value { return Value{Kind: KindNull} }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.Kind == KindNull }

// IntValue wraps i as an Int Value.
func IntValue(i *big.Int) Value { return Value{Kind: KindInt, Int: i} }

// IntFromInt64 wraps a plain int64 as an Int Value.
func IntFromInt64(i int64) Value { return Value{Kind: KindInt, Int: big.NewInt(i)} }

// BoolValue encodes b per the interpreter's boolean convention: true is
// -1, false is 0.
func BoolValue(b bool) Value {
	if b {
		return IntFromInt64(-1)
	}
	return IntFromInt64(0)
}

// IsTrue reports whether v is a truthy Int: the boolean convention is
// true = -1, false = 0, so truthiness is negativity, not non-zeroness.
func (v Value) IsTrue() bool {
	return v.Kind == KindInt && v.Int.Sign() < 0
}

// StringValue wraps s as a String Value.
func StringValue(s string) Value { return Value{Kind: KindString, Str: s} }

// BytesValue wraps b as a Bytes Value.
func BytesValue(b []byte) Value { return Value{Kind: KindBytes, Bytes: b} }

// CellValue wraps c as a Cell Value.
func CellValue(c *cell.Cell) Value { return Value{Kind: KindCell, Cell: c} }

// BuilderValue wraps b as a Builder Value.
func BuilderValue(b *cell.Builder) Value { return Value{Kind: KindBuilder, Builder: b} }

// SliceValue wraps s as a Slice Value.
func SliceValue(s *cell.Slice) Value { return Value{Kind: KindSlice, Slice: s} }

// TupleValue wraps t as a Tuple Value.
func TupleValue(t *Tuple) Value { return Value{Kind: KindTuple, Tuple: t} }

// ContValue wraps c as a Continuation Value.
func ContValue(c Continuation) Value { return Value{Kind: KindCont, Cont: c} }

// WordListValue wraps wl as a WordList Value.
func WordListValue(wl *WordList) Value { return Value{Kind: KindWordList, WordList: wl} }

// BoxValue wraps b as a SharedBox Value.
func BoxValue(b *SharedBox) Value { return Value{Kind: KindSharedBox, Box: b} }

// AtomValue wraps a as an Atom Value.
func AtomValue(a *Atom) Value { return Value{Kind: KindAtom, Atom: a} }

// IsEqual implements the `eq?` word: identity equality for reference
// kinds (Cell, Builder, Slice, Tuple, Continuation, WordList,
// SharedBox), and eqv? for every other kind (matching
// original_source/src/modules/mod.rs's interpret_is_eq via
// StackValue::is_equal).
func (v Value) IsEqual(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindCell, KindBuilder, KindSlice, KindTuple, KindCont, KindWordList, KindSharedBox:
		return v.Cell == o.Cell && v.Builder == o.Builder && v.Slice == o.Slice &&
			v.Tuple == o.Tuple && v.Cont == o.Cont && v.WordList == o.WordList && v.Box == o.Box
	}
	return v.IsEqv(o)
}

// IsEqv implements the `eqv?` word: per-kind value equality, false
// across differing kinds or for reference kinds with no value sense.
func (v Value) IsEqv(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindAtom:
		return v.Atom == o.Atom
	case KindInt:
		return v.Int.Cmp(o.Int) == 0
	case KindString:
		return v.Str == o.Str
	default:
		return false
	}
}
