package gofift

import (
	"math/big"

	"github.com/corbinlang/gofift/cell"
)

// Stack is the interpreter's data stack: an unbounded LIFO of Values (no
// capacity limit is enforced on Push), plus
// the atom table (atoms are interned per-Stack the way
// original_source/src/core/stack.rs keeps an AtomsMut alongside the
// value vector).
type Stack struct {
	values []Value
	atoms  *atomTable
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{atoms: newAtomTable()}
}

// Atoms returns the stack's atom table, for use by words like `anon`
// and `(atom)`.
func (s *Stack) Atoms() *atomTable { return s.atoms }

// Depth returns the number of values currently on the stack.
func (s *Stack) Depth() int { return len(s.values) }

// Push pushes a Value.
func (s *Stack) Push(v Value) { s.values = append(s.values, v) }

// PushInt pushes an integer literal.
func (s *Stack) PushInt(i int64) { s.Push(IntFromInt64(i)) }

// PushBool pushes the -1/0 encoding of a boolean.
func (s *Stack) PushBool(b bool) { s.Push(BoolValue(b)) }

// Pop pops the top Value, or returns errStackUnderflow.
func (s *Stack) Pop() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, errStackUnderflow()
	}
	v := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return v, nil
}

// Top returns the top Value without popping it.
func (s *Stack) Top() (Value, error) {
	if len(s.values) == 0 {
		return Value{}, errStackUnderflow()
	}
	return s.values[len(s.values)-1], nil
}

// At returns the value n deep (0 = top), without popping, for words
// like `pick`.
func (s *Stack) At(n int) (Value, error) {
	if n < 0 || n >= len(s.values) {
		return Value{}, errRange("stack index %d out of range (depth %d)", n, len(s.values))
	}
	return s.values[len(s.values)-1-n], nil
}

// expect pops and type-checks against kind.
func (s *Stack) expect(kind ValueKind) (Value, error) {
	v, err := s.Pop()
	if err != nil {
		return Value{}, err
	}
	if v.Kind != kind {
		return Value{}, errTypeMismatch(kind, v.Kind)
	}
	return v, nil
}

// PopInt pops an Int value.
func (s *Stack) PopInt() (*big.Int, error) {
	v, err := s.expect(KindInt)
	if err != nil {
		return nil, err
	}
	return v.Int, nil
}

// PopBool pops an Int and interprets it per the -1/0 boolean convention
// (any negative value is true; zero and positive values are false).
func (s *Stack) PopBool() (bool, error) {
	i, err := s.PopInt()
	if err != nil {
		return false, err
	}
	return i.Sign() < 0, nil
}

// PopSmallIntRange pops an Int, verifying it fits in [lo, hi] and
// returning it as a platform int, for words like `roll`/`tuple` that
// take small count arguments.
func (s *Stack) PopSmallIntRange(lo, hi int64) (int64, error) {
	i, err := s.PopInt()
	if err != nil {
		return 0, err
	}
	if !i.IsInt64() {
		return 0, errRange("value out of range [%d, %d]", lo, hi)
	}
	n := i.Int64()
	if n < lo || n > hi {
		return 0, errRange("value %d out of range [%d, %d]", n, lo, hi)
	}
	return n, nil
}

// PopString pops a String value.
func (s *Stack) PopString() (string, error) {
	v, err := s.expect(KindString)
	if err != nil {
		return "", err
	}
	return v.Str, nil
}

// PopBytes pops a Bytes value.
func (s *Stack) PopBytes() ([]byte, error) {
	v, err := s.expect(KindBytes)
	if err != nil {
		return nil, err
	}
	return v.Bytes, nil
}

// PopTuple pops a Tuple value, giving a mutable (copy-on-write) handle:
// since the caller is about to mutate, it eagerly clones so two stack
// slots never alias the same backing slice.
func (s *Stack) PopTuple() (*Tuple, error) {
	v, err := s.expect(KindTuple)
	if err != nil {
		return nil, err
	}
	return v.Tuple.clone(), nil
}

// PopCell pops a Cell value.
func (s *Stack) PopCell() (*cell.Cell, error) {
	v, err := s.expect(KindCell)
	if err != nil {
		return nil, err
	}
	return v.Cell, nil
}

// PopBuilder pops a Builder value, cloning it for copy-on-write mutation.
func (s *Stack) PopBuilder() (*cell.Builder, error) {
	v, err := s.expect(KindBuilder)
	if err != nil {
		return nil, err
	}
	return v.Builder.Clone(), nil
}

// PopSlice pops a Slice value, cloning it so the cursor mutates
// independently of any other reference to it.
func (s *Stack) PopSlice() (*cell.Slice, error) {
	v, err := s.expect(KindSlice)
	if err != nil {
		return nil, err
	}
	return v.Slice.Clone(), nil
}

// PopSharedBox pops a SharedBox value.
func (s *Stack) PopSharedBox() (*SharedBox, error) {
	v, err := s.expect(KindSharedBox)
	if err != nil {
		return nil, err
	}
	return v.Box, nil
}

// PopAtom pops an Atom value.
func (s *Stack) PopAtom() (*Atom, error) {
	v, err := s.expect(KindAtom)
	if err != nil {
		return nil, err
	}
	return v.Atom, nil
}

// PopCont pops a Continuation value.
func (s *Stack) PopCont() (Continuation, error) {
	v, err := s.expect(KindCont)
	if err != nil {
		return nil, err
	}
	return v.Cont, nil
}
