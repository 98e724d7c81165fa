package gofift

import (
	"fmt"
	"io"
	"sort"
)

// DumpStack writes the data stack, bottom first, one value per line,
// formatted with FormatValue. Backs the `.s` word. Adapted from the
// teacher's vmDumper.dumpStack against the Value/Stack model instead of
// a flat memory array.
func DumpStack(w io.Writer, s *Stack) error {
	for i := s.Depth() - 1; i >= 0; i-- {
		v, err := s.At(i)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, FormatValue(v)); err != nil {
			return err
		}
	}
	return nil
}

// DumpStackLine writes the data stack on a single line, top last. Backs
// the `.sl` word.
func DumpStackLine(w io.Writer, s *Stack) error {
	for i := s.Depth() - 1; i >= 0; i-- {
		v, err := s.At(i)
		if err != nil {
			return err
		}
		if i != s.Depth()-1 {
			if _, err := io.WriteString(w, " "); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, FormatValue(v)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// DumpDictionary writes the dictionary's defined word names in sorted
// order, one per line. Backs the `.words` introspection word. Adapted
// from the teacher's vmDumper.dump "dict:" summary line.
func DumpDictionary(w io.Writer, d *Dictionary) error {
	names := d.Names()
	sort.Strings(names)
	for _, n := range names {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}

// FormatValue renders a Value the way `.s`/`.sl`/`.dump` print it.
func FormatValue(v Value) string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return v.Int.String()
	case KindString:
		return fmt.Sprintf("%q", v.Str)
	case KindBytes:
		return fmt.Sprintf("x{%X}", v.Bytes)
	case KindAtom:
		return v.Atom.String()
	case KindCell:
		return fmt.Sprintf("Cell[%d bits, %d refs]{%s}", v.Cell.BitLen(), v.Cell.RefCount(), v.Cell.Hash())
	case KindBuilder:
		return fmt.Sprintf("Builder[%d bits, %d refs]", v.Builder.BitLen(), v.Builder.RefCount())
	case KindSlice:
		return fmt.Sprintf("Slice[%d bits left, %d refs left]", v.Slice.BitsLeft(), v.Slice.RefsLeft())
	case KindTuple:
		return formatTuple(v.Tuple)
	case KindCont:
		return "Continuation"
	case KindWordList:
		return fmt.Sprintf("WordList[%d]", len(v.WordList.Items))
	case KindSharedBox:
		return "Box"
	default:
		return "?"
	}
}

func formatTuple(t *Tuple) string {
	s := "("
	for i, item := range t.Items {
		if i > 0 {
			s += " "
		}
		s += FormatValue(item)
	}
	return s + ")"
}
