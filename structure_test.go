package molstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/molstore"
	"github.com/outofforest/molstore/selection"
	"github.com/outofforest/molstore/test"
	"github.com/outofforest/molstore/types"
)

func TestChainSelection(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, true, test.Tripeptide())

	requireT.Equal([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}, test.CollectAtomIndices(s, ":A"))
	requireT.Equal([]int{4, 5, 6, 7, 8, 9}, test.CollectAtomIndices(s, "2"))
	requireT.Equal([]int{0, 1, 2, 3, 10, 11, 12, 13, 14, 15}, test.CollectAtomIndices(s, "not 2"))
	requireT.Empty(test.CollectAtomIndices(s, ":B"))

	requireT.Equal([]int32{1, 2, 3}, test.CollectResNos(s, ":A"))
	requireT.Equal([]int32{2}, test.CollectResNos(s, "2"))
	requireT.Equal([]int32{1, 3}, test.CollectResNos(s, "not 2"))
}

func TestAtomSelections(t *testing.T) {
	s := test.Build(test.NewContext(t), t, true, test.Tripeptide())

	tests := []struct {
		sel      string
		expected []int
	}{
		{sel: "", expected: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}},
		{sel: "*", expected: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}},
		{sel: "ALA", expected: []int{4, 5, 6, 7, 8, 9}},
		{sel: "[GLY,SER]", expected: []int{0, 1, 2, 3, 10, 11, 12, 13, 14, 15}},
		{sel: ".CA", expected: []int{1, 5, 11}},
		{sel: "2.CA", expected: []int{5}},
		{sel: "1-2", expected: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}},
		{sel: "sidechain", expected: []int{8, 14, 15}},
		{sel: "protein and not backbone", expected: []int{8, 14, 15}},
		{sel: "polarh", expected: []int{9}},
		{sel: "hydrogen", expected: []int{9}},
		{sel: "_O", expected: []int{3, 7, 13, 15}},
		{sel: "bonded", expected: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15}},
		{sel: "water", expected: []int{}},
		{sel: "(", expected: []int{}},
	}

	for _, tc := range tests {
		t.Run(tc.sel, func(t *testing.T) {
			require.Equal(t, tc.expected, test.CollectAtomIndices(s, tc.sel))
		})
	}
}

func TestWaterAndIonSelection(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, false, test.WaterAndIon())

	requireT.Equal([]int{0, 1, 2}, test.CollectAtomIndices(s, "water"))
	requireT.Equal([]int{3}, test.CollectAtomIndices(s, "ion"))
	requireT.Equal([]int{0, 1, 2, 3}, test.CollectAtomIndices(s, "water or ion"))
	requireT.Empty(test.CollectAtomIndices(s, "water and ion"))

	requireT.Equal([]int32{1}, test.CollectResNos(s, "water"))
	requireT.Equal([]int32{2}, test.CollectResNos(s, "ion"))
	requireT.Equal([]int32{1, 2}, test.CollectResNos(s, "water or ion"))
	requireT.Empty(test.CollectResNos(s, "water and ion"))

	requireT.Equal("NA", s.Atom(3).Element())
	requireT.True(s.Atom(3).IsMetal())
	requireT.Equal("H", s.Atom(1).Element())
	requireT.True(s.Atom(1).IsPolarHydrogen())
	requireT.True(s.Atom(2).IsPolarHydrogen())
	requireT.False(s.Atom(0).IsPolarHydrogen())
}

func TestAtomIndexSelection(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, false, test.Ligand())

	requireT.Equal(10, s.AtomCount())
	requireT.Equal([]int{2, 5, 7}, test.CollectAtomIndices(s, "@2,5,7"))
	requireT.Equal([]int{2, 5, 7}, test.CollectAtomIndices(s, "@7,2,5"))
	requireT.Equal([]int{2, 5, 7}, s.AtomIndices(selection.New("@5,7,2,5")))

	requireT.Equal([]int32{1}, test.CollectResNos(s, "@2,5,7"))
	requireT.Equal([]int32{1}, test.CollectResNos(s, "@0,1,2,3,4,5,6,7,8,9"))
	requireT.Empty(test.CollectResNos(s, "@20"))
}

func TestModels(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, false,
		test.InModel(0, test.Tripeptide()),
		test.InModel(1, test.Tripeptide()),
	)

	requireT.Equal(2, s.ModelCount())
	requireT.Equal(2, s.ChainCount())
	requireT.Equal(6, s.ResidueCount())
	requireT.Equal(32, s.AtomCount())

	requireT.Equal(test.CollectAtomIndices(s, "")[16:], test.CollectAtomIndices(s, "/1"))
	requireT.Equal([]int{1, 5, 11}, test.CollectAtomIndices(s, ".CA/0"))
	requireT.Equal([]int{17, 21, 27}, test.CollectAtomIndices(s, ".CA/1"))

	var models []int
	s.EachModel(func(m *molstore.Model) {
		models = append(models, m.Index())
	}, selection.New("/1"))
	requireT.Equal([]int{1}, models)

	models = nil
	s.EachModel(func(m *molstore.Model) {
		models = append(models, m.Index())
	}, selection.New("2"))
	requireT.Equal([]int{0, 1}, models)

	var chains []int
	s.EachChain(func(c *molstore.Chain) {
		chains = append(chains, c.Index())
	}, selection.New(":A/1"))
	requireT.Equal([]int{1}, chains)

	chains = nil
	s.EachChain(func(c *molstore.Chain) {
		chains = append(chains, c.Index())
	}, nil)
	requireT.Equal([]int{0, 1}, chains)
}

func TestHierarchy(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, false, test.Tripeptide(), test.WaterAndIon())

	requireT.Equal(1, s.ModelCount())
	requireT.Equal(2, s.ChainCount())
	requireT.Equal(5, s.ResidueCount())
	requireT.Equal(20, s.AtomCount())

	m := s.Model(0)
	requireT.Equal(0, m.ChainOffset())
	requireT.Equal(2, m.ChainCount())
	requireT.Equal(0, m.ResidueOffset())
	requireT.Equal(5, m.ResidueCount())
	requireT.Equal(0, m.AtomOffset())
	requireT.Equal(20, m.AtomCount())

	var chainNames []string
	for c := range m.Chains() {
		chainNames = append(chainNames, c.ChainName())
	}
	requireT.Equal([]string{"A", "W"}, chainNames)

	c := s.Chain(1)
	requireT.Equal(3, c.ResidueOffset())
	requireT.Equal(2, c.ResidueCount())
	requireT.Equal(16, c.AtomOffset())
	requireT.Equal(4, c.AtomCount())

	var atomNames []string
	for a := range s.Residue(1).Atoms() {
		atomNames = append(atomNames, a.AtomName())
	}
	requireT.Equal([]string{"N", "CA", "C", "O", "CB", "H"}, atomNames)

	// Every atom points to the residue owning it, every residue to the chain and every chain to the model.
	for r := range m.Residues() {
		for a := range r.Atoms() {
			requireT.Equal(r.Index(), a.ResidueIndex())
			requireT.Equal(r.ChainIndex(), a.ChainIndex())
		}
		chain := r.Chain()
		requireT.GreaterOrEqual(r.Index(), chain.ResidueOffset())
		requireT.Less(r.Index(), chain.ResidueOffset()+chain.ResidueCount())
		requireT.Equal(0, r.ModelIndex())
	}

	a := s.Atom(5)
	requireT.Equal("CA", a.AtomName())
	requireT.Equal("C", a.Element())
	requireT.Equal("ALA", a.ResName())
	requireT.Equal(int32(2), a.ResNo())
	requireT.Equal("A", a.ChainName())
	requireT.Equal(1, a.ResidueIndex())
	requireT.Equal(0, a.ModelIndex())
	requireT.True(a.IsProtein())
	requireT.True(a.IsBackbone())
	requireT.False(a.IsHetero())
	requireT.InDelta(4.6, a.X(), 1e-5)
	requireT.InDelta(1.06, a.Y(), 1e-5)
}

func TestRecords(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, false, test.Tripeptide())

	ar := s.Atom(5).Record()
	requireT.Equal(5, ar.Index)
	requireT.Equal(1, ar.ResidueIndex)
	requireT.Equal("CA", ar.Name)
	requireT.Equal("ALA", ar.ResName)
	requireT.Equal("A", ar.ChainName)
	requireT.InDelta(4.6, ar.X, 1e-5)
	requireT.InDelta(1.0, ar.Occupancy, 1e-5)

	rr := s.Residue(1).Record()
	requireT.Equal(molstore.ResidueRecord{
		Index:        1,
		ChainIndex:   0,
		ModelIndex:   0,
		AtomOffset:   4,
		AtomCount:    6,
		ResName:      "ALA",
		ResNo:        2,
		MoleculeType: types.ProteinType,
		BackboneType: types.ProteinBackboneType,
		ChainName:    "A",
	}, rr)

	cr := s.Chain(0).Record()
	requireT.Equal("A", cr.Name)
	requireT.Equal(0, cr.ResidueOffset)
	requireT.Equal(3, cr.ResidueCount)

	mr := s.Model(0).Record()
	requireT.Equal(molstore.ModelRecord{Index: 0, ChainOffset: 0, ChainCount: 1, AtomOffset: 0, AtomCount: 16}, mr)
}

func TestCursorsAreReused(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, false, test.Tripeptide())

	var reused, cloned []*molstore.Atom
	s.EachAtom(func(a *molstore.Atom) {
		reused = append(reused, a)
		cloned = append(cloned, a.Clone())
	}, selection.New(".CA"))

	requireT.Len(cloned, 3)
	requireT.Same(reused[0], reused[2])
	requireT.Equal(1, cloned[0].Index())
	requireT.Equal(5, cloned[1].Index())
	requireT.Equal(11, cloned[2].Index())
}

func TestNestedIteration(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, false, test.Tripeptide(), test.WaterAndIon())

	var chainNames []string
	s.EachChain(func(c *molstore.Chain) {
		s.EachAtom(func(a *molstore.Atom) {}, selection.New(":W"))
		chainNames = append(chainNames, c.ChainName())
	}, selection.New(":A"))
	requireT.Equal([]string{"A"}, chainNames)

	var residues []int
	s.EachResidue(func(r *molstore.Residue) {
		s.EachAtom(func(a *molstore.Atom) {}, nil)
		s.EachResidue(func(r *molstore.Residue) {}, selection.New("water"))
		residues = append(residues, r.Index())
	}, selection.New("protein"))
	requireT.Equal([]int{0, 1, 2}, residues)

	var atoms []int
	s.EachAtom(func(a *molstore.Atom) {
		s.EachAtom(func(a *molstore.Atom) {}, selection.New("NA"))
		atoms = append(atoms, a.Index())
	}, selection.New(".CA"))
	requireT.Equal([]int{1, 5, 11}, atoms)

	var models []int
	s.EachModel(func(m *molstore.Model) {
		s.EachChain(func(c *molstore.Chain) {}, nil)
		models = append(models, m.Index())
	}, nil)
	requireT.Equal([]int{0}, models)
}

func TestChainNameEquals(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, false, test.Tripeptide(), test.WaterAndIon())

	requireT.True(s.Atom(5).ChainNameEquals("A"))
	requireT.False(s.Atom(5).ChainNameEquals("W"))
	requireT.False(s.Atom(5).ChainNameEquals("AB"))
	requireT.True(s.Residue(3).ChainNameEquals("W"))
	requireT.True(s.Chain(1).ChainNameEquals("W"))
	requireT.False(s.Chain(1).ChainNameEquals(""))
}

func TestChainTestDoesNotAllocate(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, false, []test.Atom{
		{Key: molstore.ResidueKey{ChainName: "AB", ResName: "ALA", ResNo: 1}, Data: molstore.AtomData{Name: "CA"}},
	})

	sel := selection.New(":AB")
	a := s.Atom(0)
	r := s.Residue(0)
	requireT.Equal(selection.True, sel.TestAtom(a))
	requireT.Equal(selection.True, sel.TestResidue(r))

	allocs := testing.AllocsPerRun(100, func() {
		sel.TestAtom(a)
		sel.TestResidue(r)
	})
	requireT.Zero(allocs)
}

func TestSetPositionAndSStruc(t *testing.T) {
	requireT := require.New(t)
	s := test.Build(test.NewContext(t), t, false, test.Tripeptide())

	s.Atom(0).SetPosition(1, 2, 3)
	requireT.Equal([3]float32{1, 2, 3}, s.Atom(0).Position())

	requireT.Empty(test.CollectResNos(s, "helix"))
	s.Residue(1).SetSStruc(types.SStrucAlphaHelix)
	requireT.Equal([]int32{2}, test.CollectResNos(s, "helix"))
	requireT.True(s.Atom(5).IsHelix())
}
