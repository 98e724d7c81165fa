// Package cell implements the immutable content-addressed Cell, and its
// mutable Builder/read-only Slice companions, that back the Cell/Builder/
// Slice Value kinds.
//
// Cells are identified by a 256-bit hash of their content (data bits plus
// child cell hashes), computed with golang.org/x/crypto/sha3. A process-
// wide LRU interns cells by hash so structurally identical cells built
// independently share storage, the way Tosca's lfvm code cache
// (go/interpreter/lfvm/converter.go) dedupes by hash.
package cell

import (
	"encoding/binary"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/crypto/sha3"
)

// MaxDataBits and MaxRefs bound a single cell's content, per the data
// model's invariant that a cell holds at most 1023 data bits and 4 child
// cells.
const (
	MaxDataBits = 1023
	MaxRefs     = 4
)

// Hash identifies a Cell by the content hash of its data and its
// children's hashes.
type Hash [32]byte

func (h Hash) String() string { return fmt.Sprintf("%x", h[:]) }

// Cell is an immutable node: up to MaxDataBits of data and up to MaxRefs
// child cells.
type Cell struct {
	data    []byte // bit-packed, most-significant-bit first
	bits    int
	refs    [MaxRefs]*Cell
	nrefs   int
	hash    Hash
	hashSet bool
}

// BitLen returns the number of data bits stored in the cell.
func (c *Cell) BitLen() int { return c.bits }

// RefCount returns the number of child cells.
func (c *Cell) RefCount() int { return c.nrefs }

// Ref returns the i'th child cell, or nil if out of range.
func (c *Cell) Ref(i int) *Cell {
	if i < 0 || i >= c.nrefs {
		return nil
	}
	return c.refs[i]
}

// Data returns the raw bit-packed data bytes (length is (BitLen()+7)/8).
func (c *Cell) Data() []byte { return c.data }

// Hash returns the cell's 256-bit content hash, computing and caching it
// on first call.
func (c *Cell) Hash() Hash {
	if c.hashSet {
		return c.hash
	}
	h := sha3.New256()
	var lenBuf [8]byte
	binary.BigEndian.PutUint64(lenBuf[:], uint64(c.bits))
	h.Write(lenBuf[:])
	h.Write(c.data)
	var countBuf [8]byte
	binary.BigEndian.PutUint64(countBuf[:], uint64(c.nrefs))
	h.Write(countBuf[:])
	for i := 0; i < c.nrefs; i++ {
		ch := c.refs[i].Hash()
		h.Write(ch[:])
	}
	sum := h.Sum(nil)
	copy(c.hash[:], sum)
	c.hashSet = true
	return c.hash
}

// store interns cells by content hash so equal cells built independently
// share one backing *Cell.
var store *lru.Cache[Hash, *Cell]

func init() {
	var err error
	store, err = lru.New[Hash, *Cell](1 << 16)
	if err != nil {
		panic(err)
	}
}

func intern(c *Cell) *Cell {
	h := c.Hash()
	if existing, ok := store.Get(h); ok {
		return existing
	}
	store.Add(h, c)
	return c
}

// Builder accumulates data bits and child cell references before being
// finalized into an immutable Cell with Build.
type Builder struct {
	data []byte
	bits int
	refs []*Cell
}

// NewBuilder returns an empty Builder (the `<b` word).
func NewBuilder() *Builder { return &Builder{} }

// Clone returns an independent copy, used to give Builder copy-on-write
// semantics when shared on the stack.
func (b *Builder) Clone() *Builder {
	nb := &Builder{bits: b.bits}
	nb.data = append(nb.data, b.data...)
	nb.refs = append(nb.refs, b.refs...)
	return nb
}

// BitLen returns the number of data bits stored so far.
func (b *Builder) BitLen() int { return b.bits }

// RefCount returns the number of child cells stored so far.
func (b *Builder) RefCount() int { return len(b.refs) }

// StoreUint appends an n-bit big-endian unsigned integer.
func (b *Builder) StoreUint(value uint64, n int) error {
	if b.bits+n > MaxDataBits {
		return fmt.Errorf("cell overflow: %d + %d > %d data bits", b.bits, n, MaxDataBits)
	}
	for i := n - 1; i >= 0; i-- {
		bit := (value >> uint(i)) & 1
		b.appendBit(bit == 1)
	}
	return nil
}

func (b *Builder) appendBit(set bool) {
	byteIdx := b.bits / 8
	for len(b.data) <= byteIdx {
		b.data = append(b.data, 0)
	}
	if set {
		b.data[byteIdx] |= 1 << uint(7-b.bits%8)
	}
	b.bits++
}

// StoreRef appends a reference to a child cell (the `ref,` word).
func (b *Builder) StoreRef(c *Cell) error {
	if len(b.refs) >= MaxRefs {
		return fmt.Errorf("cell overflow: more than %d references", MaxRefs)
	}
	b.refs = append(b.refs, c)
	return nil
}

// StoreBytes appends whole bytes of data (e.g. a string's UTF-8 bytes).
func (b *Builder) StoreBytes(data []byte) error {
	for _, by := range data {
		if err := b.StoreUint(uint64(by), 8); err != nil {
			return err
		}
	}
	return nil
}

// Build finalizes the builder into an immutable, interned Cell (`b>`).
func (b *Builder) Build() (*Cell, error) {
	if b.bits > MaxDataBits || len(b.refs) > MaxRefs {
		return nil, fmt.Errorf("cell overflow")
	}
	c := &Cell{bits: b.bits, nrefs: len(b.refs)}
	c.data = append(c.data, b.data...)
	for i, r := range b.refs {
		c.refs[i] = r
	}
	return intern(c), nil
}

// Slice is a read cursor over a Cell's data and references (`<s`).
type Slice struct {
	src     *Cell
	bitPos  int
	refPos  int
}

// NewSlice returns a Slice positioned at the start of c.
func NewSlice(c *Cell) *Slice { return &Slice{src: c} }

// Clone returns an independent copy so that copying the cursor doesn't
// alias the original slice's position.
func (s *Slice) Clone() *Slice {
	return &Slice{src: s.src, bitPos: s.bitPos, refPos: s.refPos}
}

// BitsLeft returns the count of unread data bits.
func (s *Slice) BitsLeft() int { return s.src.bits - s.bitPos }

// RefsLeft returns the count of unread child references.
func (s *Slice) RefsLeft() int { return s.src.nrefs - s.refPos }

// IsEmpty reports whether both bits and refs are exhausted (the
// assertion made by `s>`).
func (s *Slice) IsEmpty() bool { return s.BitsLeft() == 0 && s.RefsLeft() == 0 }

// LoadUint reads an n-bit big-endian unsigned integer and advances the
// cursor.
func (s *Slice) LoadUint(n int) (uint64, error) {
	if n > s.BitsLeft() {
		return 0, fmt.Errorf("cell underflow: need %d bits, have %d", n, s.BitsLeft())
	}
	var value uint64
	for i := 0; i < n; i++ {
		byteIdx := s.bitPos / 8
		bit := (s.src.data[byteIdx] >> uint(7-s.bitPos%8)) & 1
		value = value<<1 | uint64(bit)
		s.bitPos++
	}
	return value, nil
}

// LoadRef reads the next child cell reference and advances the cursor.
func (s *Slice) LoadRef() (*Cell, error) {
	if s.RefsLeft() == 0 {
		return nil, fmt.Errorf("cell underflow: no references left")
	}
	c := s.src.refs[s.refPos]
	s.refPos++
	return c, nil
}
