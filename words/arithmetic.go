package words

import (
	"math/big"

	"github.com/corbinlang/gofift"
)

// Arithmetic defines the integer arithmetic and logical words: +, -,
// negate, 1+, 1-, *, /, and/or/xor/not, plus the integer constants
// defined as raw literal dictionary entries (false, true, 0, 1, -1,
// bl). Grounded on original_source/src/words/common.rs.
var Arithmetic = moduleFunc(func(d *gofift.Dictionary) error {
	binOps := []struct {
		name string
		fn   func(a, b *big.Int) *big.Int
	}{
		{"+", func(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }},
		{"-", func(a, b *big.Int) *big.Int { return new(big.Int).Sub(a, b) }},
		{"*", func(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }},
		{"and", func(a, b *big.Int) *big.Int { return new(big.Int).And(a, b) }},
		{"or", func(a, b *big.Int) *big.Int { return new(big.Int).Or(a, b) }},
		{"xor", func(a, b *big.Int) *big.Int { return new(big.Int).Xor(a, b) }},
	}
	for _, op := range binOps {
		op := op
		if err := d.DefineStackWord(op.name, func(s *gofift.Stack) error {
			b, err := s.PopInt()
			if err != nil {
				return err
			}
			a, err := s.PopInt()
			if err != nil {
				return err
			}
			s.Push(gofift.IntValue(op.fn(a, b)))
			return nil
		}); err != nil {
			return err
		}
	}

	if err := d.DefineStackWord("/", func(s *gofift.Stack) error {
		b, err := s.PopInt()
		if err != nil {
			return err
		}
		a, err := s.PopInt()
		if err != nil {
			return err
		}
		if b.Sign() == 0 {
			return gofift.NewRangeError("division by zero")
		}
		q, r := new(big.Int).QuoRem(a, b, new(big.Int))
		if r.Sign() != 0 && (r.Sign() < 0) != (b.Sign() < 0) {
			q.Sub(q, big.NewInt(1))
		}
		s.Push(gofift.IntValue(q))
		return nil
	}); err != nil {
		return err
	}

	unary := []struct {
		name string
		fn   func(a *big.Int) *big.Int
	}{
		{"negate", func(a *big.Int) *big.Int { return new(big.Int).Neg(a) }},
		{"1+", func(a *big.Int) *big.Int { return new(big.Int).Add(a, big.NewInt(1)) }},
		{"1-", func(a *big.Int) *big.Int { return new(big.Int).Sub(a, big.NewInt(1)) }},
		{"2+", func(a *big.Int) *big.Int { return new(big.Int).Add(a, big.NewInt(2)) }},
		{"2-", func(a *big.Int) *big.Int { return new(big.Int).Sub(a, big.NewInt(2)) }},
		{"not", func(a *big.Int) *big.Int { return new(big.Int).Not(a) }},
	}
	for _, op := range unary {
		op := op
		if err := d.DefineStackWord(op.name, func(s *gofift.Stack) error {
			a, err := s.PopInt()
			if err != nil {
				return err
			}
			s.Push(gofift.IntValue(op.fn(a)))
			return nil
		}); err != nil {
			return err
		}
	}

	cmps := []struct {
		name string
		fn   func(cmp int) bool
	}{
		{"=", func(c int) bool { return c == 0 }},
		{"<>", func(c int) bool { return c != 0 }},
		{"<", func(c int) bool { return c < 0 }},
		{">", func(c int) bool { return c > 0 }},
		{"<=", func(c int) bool { return c <= 0 }},
		{">=", func(c int) bool { return c >= 0 }},
	}
	for _, op := range cmps {
		op := op
		if err := d.DefineStackWord(op.name, func(s *gofift.Stack) error {
			b, err := s.PopInt()
			if err != nil {
				return err
			}
			a, err := s.PopInt()
			if err != nil {
				return err
			}
			s.PushBool(op.fn(a.Cmp(b)))
			return nil
		}); err != nil {
			return err
		}
	}

	consts := []struct {
		name string
		val  int64
	}{
		{"false", 0},
		{"true", -1},
		{"0", 0},
		{"1", 1},
		{"2", 2},
		{"-1", -1},
		{"bl", 32},
	}
	for _, c := range consts {
		if err := d.DefineWord(c.name, &gofift.IntLitCont{Value: big.NewInt(c.val)}); err != nil {
			return err
		}
	}

	return nil
})
