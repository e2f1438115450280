package molstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/molstore"
	"github.com/outofforest/molstore/test"
	"github.com/outofforest/molstore/types"
)

func key(model int, chain string, resName string, resNo int32) molstore.ResidueKey {
	return molstore.ResidueKey{Model: model, ChainName: chain, ResName: resName, ResNo: resNo}
}

func TestBuilder(t *testing.T) {
	requireT := require.New(t)
	ctx := test.NewContext(t)

	b := molstore.NewBuilder(molstore.BuilderConfig{AtomCapacity: 4, ResidueCapacity: 2})
	requireT.NoError(b.AddAtom(key(0, "A", "ALA", 1), molstore.AtomData{Name: "CA", Serial: 10, BFactor: 3}))
	requireT.NoError(b.AddAtom(key(0, "A", "ALA", 2), molstore.AtomData{Name: "CA", Serial: 11}))
	requireT.NoError(b.AddAtom(key(0, "A", "ALA", 2), molstore.AtomData{Name: "CB", Serial: 12}))
	requireT.NoError(b.AddAtom(molstore.ResidueKey{ChainName: "A", ResName: "ALA", ResNo: 2, InsCode: 'A'},
		molstore.AtomData{Name: "CA", Serial: 13}))
	requireT.NoError(b.AddAtom(key(0, "B", "ZN", 1), molstore.AtomData{Name: "ZN", Element: "zn"}))
	requireT.NoError(b.AddAtom(key(1, "A", "ALA", 1), molstore.AtomData{Name: "CA"}))

	s, err := b.Build(ctx)
	requireT.NoError(err)
	t.Cleanup(s.Dispose)

	requireT.Equal(2, s.ModelCount())
	requireT.Equal(3, s.ChainCount())
	requireT.Equal(5, s.ResidueCount())
	requireT.Equal(6, s.AtomCount())
	requireT.Equal(0, s.BondCount())

	// Residues with equal names and atoms share the type.
	requireT.Equal(s.Residue(0).ResidueTypeID(), s.Residue(2).ResidueTypeID())
	requireT.Equal(s.Residue(0).ResidueTypeID(), s.Residue(4).ResidueTypeID())
	requireT.NotEqual(s.Residue(0).ResidueTypeID(), s.Residue(1).ResidueTypeID())
	requireT.Equal(3, s.ResidueTypes.Len())
	requireT.Equal(3, s.AtomTypes.Len())

	requireT.Equal(byte('A'), s.Residue(2).InsCode())
	requireT.Equal(int32(13), s.Atom(3).Serial())
	requireT.InDelta(3, s.Atom(0).BFactor(), 1e-6)

	zn := s.Atom(4)
	requireT.Equal("ZN", zn.Element())
	requireT.True(zn.IsMetal())
	requireT.True(zn.IsIon())
	requireT.Equal(types.IonType, zn.Residue().MoleculeType())

	requireT.Equal(1, s.Chain(2).ModelIndex())
	requireT.Equal("A", s.Chain(2).ChainName())
	requireT.Equal(2, s.Model(1).ChainOffset())
}

func TestBuilderBuildsBonds(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, true, test.Tripeptide())
	requireT.Equal(15, s.BondCount())
}

func TestBuilderEmpty(t *testing.T) {
	requireT := require.New(t)

	s, err := molstore.NewBuilder(molstore.BuilderConfig{BuildBonds: true}).Build(test.NewContext(t))
	requireT.NoError(err)
	requireT.Equal(0, s.ModelCount())
	requireT.Equal(0, s.AtomCount())
	requireT.Empty(test.CollectAtomIndices(s, ""))
}

func TestBuilderRejectsNonContiguousHierarchy(t *testing.T) {
	tests := []struct {
		name string
		keys []molstore.ResidueKey
	}{
		{
			name: "model",
			keys: []molstore.ResidueKey{key(0, "A", "ALA", 1), key(1, "A", "ALA", 1), key(0, "B", "ALA", 1)},
		},
		{
			name: "chain",
			keys: []molstore.ResidueKey{key(0, "A", "ALA", 1), key(0, "B", "ALA", 1), key(0, "A", "ALA", 2)},
		},
		{
			name: "residue",
			keys: []molstore.ResidueKey{key(0, "A", "ALA", 1), key(0, "A", "GLY", 2), key(0, "A", "ALA", 1)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			requireT := require.New(t)

			b := molstore.NewBuilder(molstore.BuilderConfig{})
			last := len(tc.keys) - 1
			for _, k := range tc.keys[:last] {
				requireT.NoError(b.AddAtom(k, molstore.AtomData{Name: "CA"}))
			}
			requireT.Error(b.AddAtom(tc.keys[last], molstore.AtomData{Name: "CA"}))
		})
	}
}

func TestBuilderCannotBeReused(t *testing.T) {
	requireT := require.New(t)
	ctx := test.NewContext(t)

	b := molstore.NewBuilder(molstore.BuilderConfig{})
	requireT.NoError(b.AddAtom(key(0, "A", "ALA", 1), molstore.AtomData{Name: "CA"}))
	_, err := b.Build(ctx)
	requireT.NoError(err)

	_, err = b.Build(ctx)
	requireT.Error(err)
	requireT.Error(b.AddAtom(key(0, "A", "ALA", 2), molstore.AtomData{Name: "CA"}))
}

func TestBuilderRejectsLongNames(t *testing.T) {
	requireT := require.New(t)
	ctx := test.NewContext(t)

	b := molstore.NewBuilder(molstore.BuilderConfig{})
	requireT.Error(b.AddAtom(key(0, "A", "ALA", 1), molstore.AtomData{Name: "CATOOLONG"}))

	b = molstore.NewBuilder(molstore.BuilderConfig{})
	requireT.NoError(b.AddAtom(key(0, "A", "LIGANDXYZ", 1), molstore.AtomData{Name: "C1"}))
	_, err := b.Build(ctx)
	requireT.Error(err)
}
