package molstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/molstore/selection"
	"github.com/outofforest/molstore/test"
	"github.com/outofforest/molstore/types"
)

func TestExtract(t *testing.T) {
	requireT := require.New(t)
	ctx := test.NewContext(t)
	s := test.Build(ctx, t, true, test.Tripeptide(), test.WaterAndIon())

	e, err := s.Extract(ctx, selection.New("2 or water"))
	requireT.NoError(err)
	t.Cleanup(e.Dispose)

	requireT.Equal(1, e.ModelCount())
	requireT.Equal(2, e.ChainCount())
	requireT.Equal(2, e.ResidueCount())
	requireT.Equal(9, e.AtomCount())
	requireT.Equal(8, e.AtomTypes.Len())
	requireT.Equal(2, e.ResidueTypes.Len())

	ala := e.Residue(0)
	requireT.Equal("ALA", ala.ResName())
	requireT.Equal(int32(2), ala.ResNo())
	requireT.Equal("A", ala.ChainName())
	requireT.Equal(0, ala.AtomOffset())
	requireT.Equal(6, ala.AtomCount())
	requireT.True(ala.HasBackbone())
	requireT.Equal(types.ProteinBackboneType, ala.BackboneType())

	hoh := e.Residue(1)
	requireT.Equal("HOH", hoh.ResName())
	requireT.Equal("W", hoh.ChainName())
	requireT.True(hoh.IsWater())
	requireT.True(hoh.IsHetero())

	for ai := range e.AtomCount() {
		src := s.Atom(ai + 4)
		if ai >= 6 {
			src = s.Atom(ai + 10)
		}
		dst := e.Atom(ai)
		requireT.Equal(src.AtomName(), dst.AtomName())
		requireT.Equal(src.Element(), dst.Element())
		requireT.Equal(src.Position(), dst.Position())
	}

	requireT.Equal(7, e.BondCount())
	requireT.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8}, test.CollectAtomIndices(e, "bonded"))
	requireT.Equal([]int{5, 7, 8}, test.CollectAtomIndices(e, "polarh"))
}

func TestExtractSplitsResidueTypes(t *testing.T) {
	requireT := require.New(t)
	ctx := test.NewContext(t)
	s := test.Build(ctx, t, false, test.Tripeptide())

	e, err := s.Extract(ctx, selection.New(".CA and (1 or 3)"))
	requireT.NoError(err)

	requireT.Equal(1, e.ChainCount())
	requireT.Equal(2, e.ResidueCount())
	requireT.Equal(2, e.AtomCount())
	requireT.Equal(0, e.BondCount())
	requireT.Equal([]int32{1, 3}, test.CollectResNos(e, ""))
	requireT.True(e.Residue(0).IsCg())
	requireT.Equal(types.CgProteinBackboneType, e.Residue(1).BackboneType())
	requireT.Equal(0, e.Residue(0).TraceAtomIndex())
	requireT.Equal(1, e.Residue(1).TraceAtomIndex())

	// The original structure is not affected.
	requireT.False(s.Residue(0).IsCg())
	requireT.Equal(16, s.AtomCount())
}

func TestExtractAll(t *testing.T) {
	requireT := require.New(t)
	ctx := test.NewContext(t)
	s := test.Build(ctx, t, false,
		test.InModel(0, test.Tripeptide()),
		test.InModel(1, test.WaterAndIon()),
	)

	e, err := s.Extract(ctx, nil)
	requireT.NoError(err)

	requireT.Equal(s.ModelCount(), e.ModelCount())
	requireT.Equal(s.ChainCount(), e.ChainCount())
	requireT.Equal(s.ResidueCount(), e.ResidueCount())
	requireT.Equal(s.AtomCount(), e.AtomCount())
	for ai := range s.AtomCount() {
		requireT.Equal(s.Atom(ai).Record(), e.Atom(ai).Record())
	}
	for ri := range s.ResidueCount() {
		requireT.Equal(s.Residue(ri).Record(), e.Residue(ri).Record())
	}
	for ci := range s.ChainCount() {
		requireT.Equal(s.Chain(ci).Record(), e.Chain(ci).Record())
	}
	for mi := range s.ModelCount() {
		requireT.Equal(s.Model(mi).Record(), e.Model(mi).Record())
	}
}

func TestExtractNothing(t *testing.T) {
	requireT := require.New(t)
	ctx := test.NewContext(t)
	s := test.Build(ctx, t, true, test.WaterAndIon())

	e, err := s.Extract(ctx, selection.New("water and ion"))
	requireT.NoError(err)
	requireT.Equal(0, e.ModelCount())
	requireT.Equal(0, e.AtomCount())
	requireT.Equal(0, e.BondCount())
}
