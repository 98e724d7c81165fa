package gofift

// DictionaryEntry binds a dictionary name to a definition continuation,
// with the active/ordinary distinction spec.md §4.3 describes: active
// words run immediately during lexing, before the normal
// compile-or-execute dispatch.
type DictionaryEntry struct {
	Name   string
	Def    Continuation
	Active bool
}

// Dictionary maps names to entries. The entries map is plain Go state,
// not itself a Value, and is not reachable through Dictionary.Box: that
// SharedBox (holding Null) only marks the dictionary's identity, so the
// word table cannot be swapped or shared through it (unlike
// original_source/src/core/dictionary.rs's `words: Rc<SharedBox>`).
type Dictionary struct {
	entries map[string]*DictionaryEntry
	box     *SharedBox
	nop     Continuation
}

// NewDictionary returns an empty Dictionary, pre-seeded with its `nop`
// singleton continuation (looked up by pointer identity via IsNop).
func NewDictionary() *Dictionary {
	d := &Dictionary{
		entries: make(map[string]*DictionaryEntry),
		nop:     &NopCont{},
	}
	d.box = NewSharedBox(Null())
	return d
}

// Nop returns the dictionary's singleton no-op continuation.
func (d *Dictionary) Nop() Continuation { return d.nop }

// IsNop reports whether c is the dictionary's nop singleton, by pointer
// identity (not structural equality), per
// original_source/src/core/dictionary.rs's `is_nop`.
func (d *Dictionary) IsNop(c Continuation) bool {
	return c == d.nop
}

// Box returns the SharedBox marking the dictionary's identity. The box
// holds Null; storing into it does not redirect or replace the
// dictionary's entries.
func (d *Dictionary) Box() *SharedBox { return d.box }

// Define installs name -> def, replacing any prior entry (the base case
// shared by `:`, `create`, and the built-in module installers).
func (d *Dictionary) Define(name string, def Continuation, active bool) error {
	if name == "" {
		return newError(KindUnknown, "cannot define an empty word name")
	}
	d.entries[name] = &DictionaryEntry{Name: name, Def: def, Active: active}
	return nil
}

// DefineWord is Define with active=false, for ordinary words.
func (d *Dictionary) DefineWord(name string, def Continuation) error {
	return d.Define(name, def, false)
}

// DefineActiveWord is Define with active=true.
func (d *Dictionary) DefineActiveWord(name string, def Continuation) error {
	return d.Define(name, def, true)
}

// DefineStackWord wraps a plain stack-manipulating function as a
// StackWordCont entry, per original_source/src/core/cont.rs's
// StackWordFunc.
func (d *Dictionary) DefineStackWord(name string, fn func(*Stack) error) error {
	return d.DefineWord(name, &StackWordCont{Name: name, Fn: fn})
}

// DefineContextWord wraps a function taking the whole Context, per
// ContextWordFunc.
func (d *Dictionary) DefineContextWord(name string, fn func(*Context) error) error {
	return d.DefineWord(name, &ContextWordCont{Name: name, Fn: fn})
}

// DefineActiveContextWord is DefineContextWord for an active word (one
// that runs immediately during lexing, such as `:` or `{`).
func (d *Dictionary) DefineActiveContextWord(name string, fn func(*Context) error) error {
	return d.DefineActiveWord(name, &ContextWordCont{Name: name, Fn: fn})
}

// DefineContextTailWord wraps a function that may itself redirect
// control flow by returning a next Continuation, per
// ContextTailWordFunc.
func (d *Dictionary) DefineContextTailWord(name string, fn func(*Context) (Continuation, error)) error {
	return d.DefineWord(name, &ContextTailWordCont{Name: name, Fn: fn})
}

// Undefine removes name from the dictionary (the `forget` word).
func (d *Dictionary) Undefine(name string) {
	delete(d.entries, name)
}

// Lookup finds the entry exactly matching name.
func (d *Dictionary) Lookup(name string) (*DictionaryEntry, bool) {
	e, ok := d.entries[name]
	return e, ok
}

// LookupPrefix implements the lexer's longest-prefix match: it tries
// name, then name with its last rune repeatedly dropped, returning the
// matched entry along with how many runes of name were actually
// consumed. Mirrors original_source/src/core/lexer.rs's Token::subtokens
// driving original_source/src/core/dictionary.rs's Dictionary::lookup.
func (d *Dictionary) LookupPrefix(name string) (*DictionaryEntry, int, bool) {
	runes := []rune(name)
	for n := len(runes); n > 0; n-- {
		candidate := string(runes[:n])
		if e, ok := d.entries[candidate]; ok {
			return e, n, true
		}
	}
	return nil, 0, false
}

// Names returns all defined word names, for the `words` introspection
// word.
func (d *Dictionary) Names() []string {
	names := make([]string, 0, len(d.entries))
	for n := range d.entries {
		names = append(names, n)
	}
	return names
}
