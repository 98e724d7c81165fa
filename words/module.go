// Package words provides the bundled ordinary/active word libraries:
// stack manipulation, arithmetic, control/compiler words, dictionary
// introspection, strings, cells, crypto/base64 helpers, and debug
// printing. Each is a Module installed into a gofift.Dictionary, the
// way original_source/src/modules/mod.rs's BaseModule and friends are
// installed into a Rust Dictionary, generalized from the teacher's
// single compileBuiltins() call into one Module per concern.
package words

import "github.com/corbinlang/gofift"

// Module installs a set of word definitions into a Dictionary.
type Module interface {
	Init(d *gofift.Dictionary) error
}

type moduleFunc func(d *gofift.Dictionary) error

func (f moduleFunc) Init(d *gofift.Dictionary) error { return f(d) }

// All returns the bundled modules in their intended registration order.
func All() []Module {
	return []Module{
		Stack,
		Arithmetic,
		Control,
		Dict,
		String,
		Cell,
		Crypto,
		Debug,
	}
}
