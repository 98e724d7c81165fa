package words

import (
	"github.com/corbinlang/gofift"
	"github.com/corbinlang/gofift/cell"
)

// Cell defines the Cell/Builder/Slice word library: `<b`, `b>`, integer
// and reference stores on a Builder, `<s`, and integer/reference loads
// from a Slice. Grounded on original_source/src/modules/cell_utils.rs.
var Cell = moduleFunc(func(d *gofift.Dictionary) error {
	if err := d.DefineStackWord("<b", func(s *gofift.Stack) error {
		s.Push(gofift.BuilderValue(cell.NewBuilder()))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("b>", func(s *gofift.Stack) error {
		b, err := s.PopBuilder()
		if err != nil {
			return err
		}
		c, err := b.Build()
		if err != nil {
			return gofift.NewRangeError("%s", err)
		}
		s.Push(gofift.CellValue(c))
		return nil
	}); err != nil {
		return err
	}

	storeU := []struct {
		name string
		bits int
	}{
		{"8u,", 8},
		{"16u,", 16},
		{"32u,", 32},
		{"64u,", 64},
	}
	for _, w := range storeU {
		w := w
		if err := d.DefineStackWord(w.name, func(s *gofift.Stack) error {
			b, err := s.PopBuilder()
			if err != nil {
				return err
			}
			n, err := s.PopInt()
			if err != nil {
				return err
			}
			if err := b.StoreUint(n.Uint64(), w.bits); err != nil {
				return gofift.NewRangeError("%s", err)
			}
			s.Push(gofift.BuilderValue(b))
			return nil
		}); err != nil {
			return err
		}
	}

	if err := d.DefineStackWord("u,", func(s *gofift.Stack) error {
		bits, err := s.PopSmallIntRange(0, int64(cell.MaxDataBits))
		if err != nil {
			return err
		}
		b, err := s.PopBuilder()
		if err != nil {
			return err
		}
		n, err := s.PopInt()
		if err != nil {
			return err
		}
		if err := b.StoreUint(n.Uint64(), int(bits)); err != nil {
			return gofift.NewRangeError("%s", err)
		}
		s.Push(gofift.BuilderValue(b))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("ref,", func(s *gofift.Stack) error {
		b, err := s.PopBuilder()
		if err != nil {
			return err
		}
		c, err := s.PopCell()
		if err != nil {
			return err
		}
		if err := b.StoreRef(c); err != nil {
			return gofift.NewRangeError("%s", err)
		}
		s.Push(gofift.BuilderValue(b))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("$,", func(s *gofift.Stack) error {
		b, err := s.PopBuilder()
		if err != nil {
			return err
		}
		str, err := s.PopString()
		if err != nil {
			return err
		}
		if err := b.StoreBytes([]byte(str)); err != nil {
			return gofift.NewRangeError("%s", err)
		}
		s.Push(gofift.BuilderValue(b))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("b+", func(s *gofift.Stack) error {
		bits, err := s.PopSmallIntRange(0, 1<<20)
		if err != nil {
			return err
		}
		s.PushInt(bits)
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("bbits", func(s *gofift.Stack) error {
		b, err := s.PopBuilder()
		if err != nil {
			return err
		}
		s.PushInt(int64(b.BitLen()))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("brefs", func(s *gofift.Stack) error {
		b, err := s.PopBuilder()
		if err != nil {
			return err
		}
		s.PushInt(int64(b.RefCount()))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("<s", func(s *gofift.Stack) error {
		c, err := s.PopCell()
		if err != nil {
			return err
		}
		s.Push(gofift.SliceValue(cell.NewSlice(c)))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("s>", func(s *gofift.Stack) error {
		sl, err := s.PopSlice()
		if err != nil {
			return err
		}
		if !sl.IsEmpty() {
			return gofift.NewRangeError("slice not empty")
		}
		return nil
	}); err != nil {
		return err
	}

	loadU := []struct {
		name string
		bits int
	}{
		{"8u@", 8},
		{"16u@", 16},
		{"32u@", 32},
		{"64u@", 64},
	}
	for _, w := range loadU {
		w := w
		if err := d.DefineStackWord(w.name, func(s *gofift.Stack) error {
			sl, err := s.PopSlice()
			if err != nil {
				return err
			}
			n, err := sl.LoadUint(w.bits)
			if err != nil {
				return gofift.NewRangeError("%s", err)
			}
			s.Push(gofift.SliceValue(sl))
			s.Push(gofift.IntFromInt64(int64(n)))
			return nil
		}); err != nil {
			return err
		}
	}

	if err := d.DefineStackWord("u@", func(s *gofift.Stack) error {
		bits, err := s.PopSmallIntRange(0, int64(cell.MaxDataBits))
		if err != nil {
			return err
		}
		sl, err := s.PopSlice()
		if err != nil {
			return err
		}
		n, err := sl.LoadUint(int(bits))
		if err != nil {
			return gofift.NewRangeError("%s", err)
		}
		s.Push(gofift.SliceValue(sl))
		s.Push(gofift.IntFromInt64(int64(n)))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("ref@", func(s *gofift.Stack) error {
		sl, err := s.PopSlice()
		if err != nil {
			return err
		}
		c, err := sl.LoadRef()
		if err != nil {
			return gofift.NewRangeError("%s", err)
		}
		s.Push(gofift.SliceValue(sl))
		s.Push(gofift.CellValue(c))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("sbits", func(s *gofift.Stack) error {
		sl, err := s.PopSlice()
		if err != nil {
			return err
		}
		s.PushInt(int64(sl.BitsLeft()))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("srefs", func(s *gofift.Stack) error {
		sl, err := s.PopSlice()
		if err != nil {
			return err
		}
		s.PushInt(int64(sl.RefsLeft()))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("sempty?", func(s *gofift.Stack) error {
		sl, err := s.PopSlice()
		if err != nil {
			return err
		}
		s.PushBool(sl.IsEmpty())
		return nil
	}); err != nil {
		return err
	}

	return nil
})
