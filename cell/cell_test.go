package cell_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corbinlang/gofift/cell"
)

func Test_builderRoundTrip(t *testing.T) {
	b := cell.NewBuilder()
	require.NoError(t, b.StoreUint(0xAB, 8))
	require.NoError(t, b.StoreUint(0x3, 2))
	c, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 10, c.BitLen())

	s := cell.NewSlice(c)
	v, err := s.LoadUint(8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0xAB), v)
	v, err = s.LoadUint(2)
	require.NoError(t, err)
	assert.Equal(t, uint64(0x3), v)
	assert.True(t, s.IsEmpty())
}

func Test_equalCellsIntern(t *testing.T) {
	b1 := cell.NewBuilder()
	require.NoError(t, b1.StoreUint(42, 16))
	c1, err := b1.Build()
	require.NoError(t, err)

	b2 := cell.NewBuilder()
	require.NoError(t, b2.StoreUint(42, 16))
	c2, err := b2.Build()
	require.NoError(t, err)

	assert.Same(t, c1, c2)
	assert.Equal(t, c1.Hash(), c2.Hash())
}

func Test_refs(t *testing.T) {
	leafB := cell.NewBuilder()
	require.NoError(t, leafB.StoreUint(1, 8))
	leaf, err := leafB.Build()
	require.NoError(t, err)

	rootB := cell.NewBuilder()
	require.NoError(t, rootB.StoreRef(leaf))
	root, err := rootB.Build()
	require.NoError(t, err)
	assert.Equal(t, 1, root.RefCount())

	s := cell.NewSlice(root)
	ref, err := s.LoadRef()
	require.NoError(t, err)
	assert.Same(t, leaf, ref)
}

func Test_overflow(t *testing.T) {
	b := cell.NewBuilder()
	err := b.StoreUint(1, cell.MaxDataBits+1)
	assert.Error(t, err)

	b2 := cell.NewBuilder()
	for i := 0; i < cell.MaxRefs; i++ {
		require.NoError(t, b2.StoreRef(nil))
	}
	assert.Error(t, b2.StoreRef(nil))
}

func Test_cloneIndependence(t *testing.T) {
	b := cell.NewBuilder()
	require.NoError(t, b.StoreUint(1, 1))
	clone := b.Clone()
	require.NoError(t, clone.StoreUint(0, 1))
	assert.Equal(t, 1, b.BitLen())
	assert.Equal(t, 2, clone.BitLen())
}
