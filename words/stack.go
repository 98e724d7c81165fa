package words

import (
	"github.com/corbinlang/gofift"
)

// Stack defines the data-stack manipulation words: drop, dup, swap,
// rot, pick, roll, tuck, nip, exch, depth, ?dup, and their 2-prefixed
// pair-wise variants. Grounded on
// original_source/src/words/common.rs's stack-manipulation entries.
var Stack = moduleFunc(func(d *gofift.Dictionary) error {
	defs := []struct {
		name string
		fn   func(*gofift.Stack) error
	}{
		{"drop", func(s *gofift.Stack) error { _, err := s.Pop(); return err }},
		{"2drop", func(s *gofift.Stack) error {
			if _, err := s.Pop(); err != nil {
				return err
			}
			_, err := s.Pop()
			return err
		}},
		{"dup", func(s *gofift.Stack) error {
			v, err := s.Top()
			if err != nil {
				return err
			}
			s.Push(v)
			return nil
		}},
		{"2dup", func(s *gofift.Stack) error {
			b, err := s.At(1)
			if err != nil {
				return err
			}
			a, err := s.At(0)
			if err != nil {
				return err
			}
			s.Push(b)
			s.Push(a)
			return nil
		}},
		{"over", func(s *gofift.Stack) error {
			v, err := s.At(1)
			if err != nil {
				return err
			}
			s.Push(v)
			return nil
		}},
		{"2over", func(s *gofift.Stack) error {
			v, err := s.At(3)
			if err != nil {
				return err
			}
			w, err := s.At(2)
			if err != nil {
				return err
			}
			s.Push(v)
			s.Push(w)
			return nil
		}},
		{"swap", func(s *gofift.Stack) error {
			a, err := s.Pop()
			if err != nil {
				return err
			}
			b, err := s.Pop()
			if err != nil {
				return err
			}
			s.Push(a)
			s.Push(b)
			return nil
		}},
		{"2swap", func(s *gofift.Stack) error {
			d, err := s.Pop()
			if err != nil {
				return err
			}
			c, err := s.Pop()
			if err != nil {
				return err
			}
			b, err := s.Pop()
			if err != nil {
				return err
			}
			a, err := s.Pop()
			if err != nil {
				return err
			}
			s.Push(c)
			s.Push(d)
			s.Push(a)
			s.Push(b)
			return nil
		}},
		{"tuck", func(s *gofift.Stack) error {
			a, err := s.Pop()
			if err != nil {
				return err
			}
			b, err := s.Pop()
			if err != nil {
				return err
			}
			s.Push(a)
			s.Push(b)
			s.Push(a)
			return nil
		}},
		{"nip", func(s *gofift.Stack) error {
			a, err := s.Pop()
			if err != nil {
				return err
			}
			if _, err := s.Pop(); err != nil {
				return err
			}
			s.Push(a)
			return nil
		}},
		{"rot", func(s *gofift.Stack) error {
			c, err := s.Pop()
			if err != nil {
				return err
			}
			b, err := s.Pop()
			if err != nil {
				return err
			}
			a, err := s.Pop()
			if err != nil {
				return err
			}
			s.Push(b)
			s.Push(c)
			s.Push(a)
			return nil
		}},
		{"-rot", func(s *gofift.Stack) error {
			c, err := s.Pop()
			if err != nil {
				return err
			}
			b, err := s.Pop()
			if err != nil {
				return err
			}
			a, err := s.Pop()
			if err != nil {
				return err
			}
			s.Push(c)
			s.Push(a)
			s.Push(b)
			return nil
		}},
		{"exch", func(s *gofift.Stack) error {
			n, err := s.PopSmallIntRange(0, 1<<20)
			if err != nil {
				return err
			}
			if n == 0 {
				return nil
			}
			top, err := s.Pop()
			if err != nil {
				return err
			}
			other, err := s.At(int(n) - 1)
			if err != nil {
				return err
			}
			if err := setAt(s, int(n)-1, top); err != nil {
				return err
			}
			s.Push(other)
			return nil
		}},
		{"exch2", func(s *gofift.Stack) error {
			j, err := s.PopSmallIntRange(0, 1<<20)
			if err != nil {
				return err
			}
			i, err := s.PopSmallIntRange(0, 1<<20)
			if err != nil {
				return err
			}
			a, err := s.At(int(i))
			if err != nil {
				return err
			}
			b, err := s.At(int(j))
			if err != nil {
				return err
			}
			if err := setAt(s, int(i), b); err != nil {
				return err
			}
			if err := setAt(s, int(j), a); err != nil {
				return err
			}
			return nil
		}},
		{"depth", func(s *gofift.Stack) error {
			s.PushInt(int64(s.Depth()))
			return nil
		}},
		{"?dup", func(s *gofift.Stack) error {
			v, err := s.Top()
			if err != nil {
				return err
			}
			if v.IsTrue() {
				s.Push(v)
			}
			return nil
		}},
		{"pick", func(s *gofift.Stack) error {
			n, err := s.PopSmallIntRange(0, 1<<20)
			if err != nil {
				return err
			}
			v, err := s.At(int(n))
			if err != nil {
				return err
			}
			s.Push(v)
			return nil
		}},
		{"roll", func(s *gofift.Stack) error {
			return rollN(s, false)
		}},
		{"-roll", func(s *gofift.Stack) error {
			return rollN(s, true)
		}},
		{"reverse", func(s *gofift.Stack) error {
			n, err := s.PopSmallIntRange(0, 1<<20)
			if err != nil {
				return err
			}
			items := make([]gofift.Value, n)
			for i := int64(0); i < n; i++ {
				v, err := s.Pop()
				if err != nil {
					return err
				}
				items[i] = v
			}
			for _, v := range items {
				s.Push(v)
			}
			return nil
		}},
	}
	for _, def := range defs {
		if err := d.DefineStackWord(def.name, def.fn); err != nil {
			return err
		}
	}
	return nil
})

// setAt overwrites the value n-deep (0 = top) without otherwise
// disturbing the stack, used by exch/exch2.
func setAt(s *gofift.Stack, n int, v gofift.Value) error {
	// Stack has no direct random-access store, so rebuild the affected
	// slice via pop/push: pop down to n, remember, replace, push back.
	saved := make([]gofift.Value, 0, n+1)
	for i := 0; i <= n; i++ {
		p, err := s.Pop()
		if err != nil {
			return err
		}
		saved = append(saved, p)
	}
	saved[n] = v
	for i := len(saved) - 1; i >= 0; i-- {
		s.Push(saved[i])
	}
	return nil
}

func rollN(s *gofift.Stack, reverse bool) error {
	n, err := s.PopSmallIntRange(0, 1<<20)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if reverse {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		if err := insertAt(s, int(n)-1, v); err != nil {
			return err
		}
		return nil
	}
	v, err := s.At(int(n) - 1)
	if err != nil {
		return err
	}
	if err := removeAt(s, int(n)-1); err != nil {
		return err
	}
	s.Push(v)
	return nil
}

func removeAt(s *gofift.Stack, n int) error {
	saved := make([]gofift.Value, 0, n)
	for i := 0; i < n; i++ {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		saved = append(saved, v)
	}
	if _, err := s.Pop(); err != nil {
		return err
	}
	for i := len(saved) - 1; i >= 0; i-- {
		s.Push(saved[i])
	}
	return nil
}

func insertAt(s *gofift.Stack, n int, v gofift.Value) error {
	saved := make([]gofift.Value, 0, n)
	for i := 0; i < n; i++ {
		p, err := s.Pop()
		if err != nil {
			return err
		}
		saved = append(saved, p)
	}
	s.Push(v)
	for i := len(saved) - 1; i >= 0; i-- {
		s.Push(saved[i])
	}
	return nil
}
