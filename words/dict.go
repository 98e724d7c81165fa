package words

import (
	"fmt"
	"io"

	"github.com/corbinlang/gofift"
)

// Dict defines dictionary and value introspection words: type
// predicates, box/hole/@/!, atom interning, tuple construction and
// indexing, eq?/eqv?, and the environment-facing now/getenv words.
// Grounded on original_source/src/modules/mod.rs's BaseModule.
var Dict = moduleFunc(func(d *gofift.Dictionary) error {
	if err := d.DefineStackWord("null", func(s *gofift.Stack) error {
		s.Push(gofift.Null())
		return nil
	}); err != nil {
		return err
	}

	typePreds := []struct {
		name string
		kind gofift.ValueKind
	}{
		{"null?", gofift.KindNull},
		{"integer?", gofift.KindInt},
		{"string?", gofift.KindString},
		{"tuple?", gofift.KindTuple},
		{"box?", gofift.KindSharedBox},
		{"atom?", gofift.KindAtom},
	}
	for _, tp := range typePreds {
		tp := tp
		if err := d.DefineStackWord(tp.name, func(s *gofift.Stack) error {
			v, err := s.Pop()
			if err != nil {
				return err
			}
			s.PushBool(v.Kind == tp.kind)
			return nil
		}); err != nil {
			return err
		}
	}

	if err := d.DefineStackWord("hole", func(s *gofift.Stack) error {
		s.Push(gofift.BoxValue(gofift.NewSharedBox(gofift.Null())))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("box", func(s *gofift.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		s.Push(gofift.BoxValue(gofift.NewSharedBox(v)))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("@", func(s *gofift.Stack) error {
		box, err := s.PopSharedBox()
		if err != nil {
			return err
		}
		s.Push(box.Fetch())
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("!", func(s *gofift.Stack) error {
		box, err := s.PopSharedBox()
		if err != nil {
			return err
		}
		v, err := s.Pop()
		if err != nil {
			return err
		}
		box.Store(v)
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("anon", func(s *gofift.Stack) error {
		s.Push(gofift.AtomValue(s.Atoms().Anon()))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("(atom)", func(s *gofift.Stack) error {
		create, err := s.PopBool()
		if err != nil {
			return err
		}
		name, err := s.PopString()
		if err != nil {
			return err
		}
		atom := s.Atoms().Get(name)
		if atom == nil && create {
			atom = s.Atoms().Named(name)
		}
		exists := atom != nil
		if atom != nil {
			s.Push(gofift.AtomValue(atom))
		}
		s.PushBool(exists)
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("atom>$", func(s *gofift.Stack) error {
		a, err := s.PopAtom()
		if err != nil {
			return err
		}
		s.Push(gofift.StringValue(a.String()))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("eq?", func(s *gofift.Stack) error {
		y, err := s.Pop()
		if err != nil {
			return err
		}
		x, err := s.Pop()
		if err != nil {
			return err
		}
		s.PushBool(x.IsEqual(y))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("eqv?", func(s *gofift.Stack) error {
		y, err := s.Pop()
		if err != nil {
			return err
		}
		x, err := s.Pop()
		if err != nil {
			return err
		}
		s.PushBool(x.IsEqv(y))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("|", func(s *gofift.Stack) error {
		s.Push(gofift.TupleValue(&gofift.Tuple{}))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord(",", func(s *gofift.Stack) error {
		v, err := s.Pop()
		if err != nil {
			return err
		}
		t, err := s.PopTuple()
		if err != nil {
			return err
		}
		t.Items = append(t.Items, v)
		s.Push(gofift.TupleValue(t))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("tpop", func(s *gofift.Stack) error {
		t, err := s.PopTuple()
		if err != nil {
			return err
		}
		if len(t.Items) == 0 {
			return gofift.NewRangeError("tuple underflow")
		}
		last := t.Items[len(t.Items)-1]
		t.Items = t.Items[:len(t.Items)-1]
		s.Push(gofift.TupleValue(t))
		s.Push(last)
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("[]", func(s *gofift.Stack) error {
		idx, err := s.PopSmallIntRange(0, 1<<30)
		if err != nil {
			return err
		}
		t, err := s.PopTuple()
		if err != nil {
			return err
		}
		if idx < 0 || int(idx) >= len(t.Items) {
			return gofift.NewRangeError("index %d is out of the tuple range", idx)
		}
		s.Push(t.Items[idx])
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("[]=", func(s *gofift.Stack) error {
		idx, err := s.PopSmallIntRange(0, 1<<30)
		if err != nil {
			return err
		}
		v, err := s.Pop()
		if err != nil {
			return err
		}
		t, err := s.PopTuple()
		if err != nil {
			return err
		}
		if idx < 0 || int(idx) >= len(t.Items) {
			return gofift.NewRangeError("index %d is out of the tuple range", idx)
		}
		t.Items[idx] = v
		s.Push(gofift.TupleValue(t))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("count", func(s *gofift.Stack) error {
		t, err := s.PopTuple()
		if err != nil {
			return err
		}
		s.PushInt(int64(len(t.Items)))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("tuple", func(s *gofift.Stack) error {
		n, err := s.PopSmallIntRange(0, 255)
		if err != nil {
			return err
		}
		items := make([]gofift.Value, n)
		for i := n - 1; i >= 0; i-- {
			v, err := s.Pop()
			if err != nil {
				return err
			}
			items[i] = v
		}
		s.Push(gofift.TupleValue(&gofift.Tuple{Items: items}))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("untuple", func(s *gofift.Stack) error {
		n, err := s.PopSmallIntRange(0, 255)
		if err != nil {
			return err
		}
		t, err := s.PopTuple()
		if err != nil {
			return err
		}
		if int64(len(t.Items)) != n {
			return gofift.NewRangeError("tuple size mismatch: expected %d, actual %d", n, len(t.Items))
		}
		for _, v := range t.Items {
			s.Push(v)
		}
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("explode", func(s *gofift.Stack) error {
		t, err := s.PopTuple()
		if err != nil {
			return err
		}
		n := len(t.Items)
		if n > 255 {
			return gofift.NewRangeError("cannot explode a tuple with %d items", n)
		}
		for _, v := range t.Items {
			s.Push(v)
		}
		s.PushInt(int64(n))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("allot", func(s *gofift.Stack) error {
		n, err := s.PopSmallIntRange(0, 1<<24)
		if err != nil {
			return err
		}
		items := make([]gofift.Value, n)
		for i := range items {
			items[i] = gofift.BoxValue(gofift.NewSharedBox(gofift.Null()))
		}
		s.Push(gofift.TupleValue(&gofift.Tuple{Items: items}))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord("now", func(ctx *gofift.Context) error {
		ctx.Stack.PushInt(ctx.Env.NowMS() / 1000)
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineContextWord("now_ms", func(ctx *gofift.Context) error {
		ctx.Stack.PushInt(ctx.Env.NowMS())
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineContextWord("getenv", func(ctx *gofift.Context) error {
		name, err := ctx.Stack.PopString()
		if err != nil {
			return err
		}
		value, _ := ctx.Env.GetEnv(name)
		ctx.Stack.Push(gofift.StringValue(value))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineContextWord("getenv?", func(ctx *gofift.Context) error {
		name, err := ctx.Stack.PopString()
		if err != nil {
			return err
		}
		value, ok := ctx.Env.GetEnv(name)
		if ok {
			ctx.Stack.Push(gofift.StringValue(value))
		}
		ctx.Stack.PushBool(ok)
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord("file-exists?", func(ctx *gofift.Context) error {
		name, err := ctx.Stack.PopString()
		if err != nil {
			return err
		}
		ctx.Stack.PushBool(ctx.Env.FileExists(name))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineContextWord("read-file", func(ctx *gofift.Context) error {
		name, err := ctx.Stack.PopString()
		if err != nil {
			return err
		}
		data, err := ctx.Env.ReadFile(name)
		if err != nil {
			return gofift.NewAbortError(fmt.Sprintf("read-file %s: %v", name, err))
		}
		ctx.Stack.Push(gofift.BytesValue(data))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineContextWord("read-file-part", func(ctx *gofift.Context) error {
		length, err := ctx.Stack.PopInt()
		if err != nil {
			return err
		}
		offset, err := ctx.Stack.PopInt()
		if err != nil {
			return err
		}
		name, err := ctx.Stack.PopString()
		if err != nil {
			return err
		}
		data, err := ctx.Env.ReadFilePart(name, offset.Int64(), length.Int64())
		if err != nil {
			return gofift.NewAbortError(fmt.Sprintf("read-file-part %s: %v", name, err))
		}
		ctx.Stack.Push(gofift.BytesValue(data))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineContextWord("write-file", func(ctx *gofift.Context) error {
		name, err := ctx.Stack.PopString()
		if err != nil {
			return err
		}
		data, err := ctx.Stack.PopBytes()
		if err != nil {
			return err
		}
		if err := ctx.Env.WriteFile(name, data); err != nil {
			return gofift.NewAbortError(fmt.Sprintf("write-file %s: %v", name, err))
		}
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord("include", func(ctx *gofift.Context) error {
		name, err := ctx.Stack.PopString()
		if err != nil {
			return err
		}
		r, resolved, err := ctx.Env.Include(name)
		if err != nil {
			return gofift.NewAbortError(fmt.Sprintf("include %s: %v", name, err))
		}
		data, err := io.ReadAll(r)
		closeErr := r.Close()
		if err != nil {
			return gofift.NewAbortError(fmt.Sprintf("include %s: %v", name, err))
		}
		if closeErr != nil {
			return gofift.NewAbortError(fmt.Sprintf("include %s: %v", name, closeErr))
		}
		ctx.Lexer.PushString(resolved, string(data))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineContextWord("words", func(ctx *gofift.Context) error {
		for _, name := range ctx.Dict.Names() {
			if _, err := ctx.Out.Write([]byte(name + " ")); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		return err
	}

	return nil
})
