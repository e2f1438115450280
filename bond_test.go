package molstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/molstore"
	"github.com/outofforest/molstore/store"
	"github.com/outofforest/molstore/test"
)

func bondedAtoms(a *molstore.Atom) []int {
	indices := []int{}
	a.EachBondedAtom(func(b *molstore.Atom) {
		indices = append(indices, b.Index())
	})
	return indices
}

func TestBuildBonds(t *testing.T) {
	requireT := require.New(t)
	ctx := test.NewContext(t)
	s := test.Build(ctx, t, false, test.Tripeptide())

	requireT.Equal(0, s.BondCount())
	requireT.False(s.Atom(0).IsBonded())
	requireT.Empty(bondedAtoms(s.Atom(0)))
	requireT.Empty(test.CollectAtomIndices(s, "bonded"))

	s.BuildBonds(ctx)
	requireT.Equal(15, s.BondCount())
	requireT.Equal(store.BondRow{AtomIndex1: 0, AtomIndex2: 1, BondOrder: 1}, s.Bond(0).Record())
	requireT.Equal(0, s.Bond(0).Atom1().Index())
	requireT.Equal(1, s.Bond(0).Atom2().Index())

	for i := range s.BondCount() {
		b := s.Bond(i)
		requireT.Less(b.Atom1().Index(), b.Atom2().Index())
		if i > 0 {
			prev := s.Bond(i - 1)
			requireT.True(prev.Atom1().Index() < b.Atom1().Index() ||
				(prev.Atom1().Index() == b.Atom1().Index() && prev.Atom2().Index() < b.Atom2().Index()))
		}
	}

	requireT.Equal([]int{2, 5, 9}, bondedAtoms(s.Atom(4)))
	requireT.Equal([]int{4, 6, 8}, bondedAtoms(s.Atom(5)))
	requireT.Equal([]int{14}, bondedAtoms(s.Atom(15)))
	for ai := range s.AtomCount() {
		requireT.True(s.Atom(ai).IsBonded())
	}

	// Rebuilding produces the same bonds.
	s.BuildBonds(ctx)
	requireT.Equal(15, s.BondCount())
}

func TestBuildBondsWithUnbondedAtoms(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, true, test.WaterAndIon())

	requireT.Equal(2, s.BondCount())
	requireT.Equal([]int{1, 2}, bondedAtoms(s.Atom(0)))
	requireT.Equal([]int{0, 1, 2}, test.CollectAtomIndices(s, "bonded"))
	requireT.Equal([]int{3}, test.CollectAtomIndices(s, "not bonded"))
}

func TestBuildBondsCyclic(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, true, test.CyclicTrace())

	requireT.Equal(4, s.BondCount())
	requireT.Equal([]int{1, 3}, bondedAtoms(s.Atom(0)))
	requireT.Equal([]int{0, 2}, bondedAtoms(s.Atom(1)))
}

func TestAtomConnectivity(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, false, test.Tripeptide())

	requireT.True(s.Atom(0).ConnectedTo(s.Atom(1)))
	requireT.True(s.Atom(1).ConnectedTo(s.Atom(0)))
	requireT.False(s.Atom(0).ConnectedTo(s.Atom(0)))
	requireT.False(s.Atom(0).ConnectedTo(s.Atom(2)))
	requireT.InDelta(2.1236, s.Atom(0).DistanceSquared(s.Atom(1)), 1e-4)

	s.Atoms.AltLoc.Data[0] = 'A'
	s.Atoms.AltLoc.Data[1] = 'B'
	requireT.False(s.Atom(0).ConnectedTo(s.Atom(1)))
	s.Atoms.AltLoc.Data[1] = 'A'
	requireT.True(s.Atom(0).ConnectedTo(s.Atom(1)))
	s.Atoms.AltLoc.Data[1] = ' '
	requireT.True(s.Atom(0).ConnectedTo(s.Atom(1)))
}
