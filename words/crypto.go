package words

import (
	"encoding/base64"
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/corbinlang/gofift"
)

// Crypto defines hashing and base64/hex encoding helpers over the
// Bytes/String value kinds, grounded on original_source/src/modules/crypto.rs
// and built on the same golang.org/x/crypto/sha3 package the Cell store
// uses for content addressing.
var Crypto = moduleFunc(func(d *gofift.Dictionary) error {
	if err := d.DefineStackWord("sha256", func(s *gofift.Stack) error {
		data, err := popBytesOrString(s)
		if err != nil {
			return err
		}
		sum := sha3.Sum256(data)
		s.Push(gofift.BytesValue(sum[:]))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("base64", func(s *gofift.Stack) error {
		data, err := popBytesOrString(s)
		if err != nil {
			return err
		}
		s.Push(gofift.StringValue(base64.StdEncoding.EncodeToString(data)))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("base64>B", func(s *gofift.Stack) error {
		str, err := s.PopString()
		if err != nil {
			return err
		}
		data, err := base64.StdEncoding.DecodeString(str)
		if err != nil {
			return gofift.NewRangeError("%s", err)
		}
		s.Push(gofift.BytesValue(data))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("base64url", func(s *gofift.Stack) error {
		data, err := popBytesOrString(s)
		if err != nil {
			return err
		}
		s.Push(gofift.StringValue(base64.URLEncoding.EncodeToString(data)))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("B>x", func(s *gofift.Stack) error {
		data, err := s.PopBytes()
		if err != nil {
			return err
		}
		s.Push(gofift.StringValue(hex.EncodeToString(data)))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("x>B", func(s *gofift.Stack) error {
		str, err := s.PopString()
		if err != nil {
			return err
		}
		data, err := hex.DecodeString(str)
		if err != nil {
			return gofift.NewRangeError("%s", err)
		}
		s.Push(gofift.BytesValue(data))
		return nil
	}); err != nil {
		return err
	}

	if err := d.DefineStackWord("B>$", func(s *gofift.Stack) error {
		data, err := s.PopBytes()
		if err != nil {
			return err
		}
		s.Push(gofift.StringValue(string(data)))
		return nil
	}); err != nil {
		return err
	}
	if err := d.DefineStackWord("$>B", func(s *gofift.Stack) error {
		str, err := s.PopString()
		if err != nil {
			return err
		}
		s.Push(gofift.BytesValue([]byte(str)))
		return nil
	}); err != nil {
		return err
	}

	return nil
})

// popBytesOrString accepts either a Bytes or a String value for words
// that treat both as raw octets (hashing, base64 encoding).
func popBytesOrString(s *gofift.Stack) ([]byte, error) {
	v, err := s.Pop()
	if err != nil {
		return nil, err
	}
	switch v.Kind {
	case gofift.KindBytes:
		return v.Bytes, nil
	case gofift.KindString:
		return []byte(v.Str), nil
	default:
		return nil, gofift.NewRangeError("expected bytes or string, got %s", v.Kind)
	}
}
