package molstore

import (
	"github.com/outofforest/molstore/intern"
	"github.com/outofforest/molstore/selection"
	"github.com/outofforest/molstore/store"
)

func newStructure(atomCapacity, residueCapacity int) *Structure {
	atomTypes := intern.NewAtomTypeTable()
	return &Structure{
		Atoms:        store.NewAtomStore(atomCapacity),
		Residues:     store.NewResidueStore(residueCapacity),
		Chains:       store.NewChainStore(0),
		Models:       store.NewModelStore(0),
		Bonds:        store.NewBondStore(0),
		AtomTypes:    atomTypes,
		ResidueTypes: intern.NewResidueTypeTable(atomTypes),
	}
}

// Structure stores models, chains, residues and atoms in columnar stores.
// Models own contiguous runs of chains, chains own contiguous runs of residues
// and residues own contiguous runs of atoms.
type Structure struct {
	Atoms    *store.AtomStore
	Residues *store.ResidueStore
	Chains   *store.ChainStore
	Models   *store.ModelStore
	Bonds    *store.BondStore

	AtomTypes    *intern.AtomTypeTable
	ResidueTypes *intern.ResidueTypeTable

	bonded      []uint64
	bondOffsets []int32
	bondAtoms   []int32
}

// AtomCount returns the number of atoms.
func (s *Structure) AtomCount() int {
	return s.Atoms.Count
}

// ResidueCount returns the number of residues.
func (s *Structure) ResidueCount() int {
	return s.Residues.Count
}

// ChainCount returns the number of chains.
func (s *Structure) ChainCount() int {
	return s.Chains.Count
}

// ModelCount returns the number of models.
func (s *Structure) ModelCount() int {
	return s.Models.Count
}

// BondCount returns the number of bonds.
func (s *Structure) BondCount() int {
	return s.Bonds.Count
}

// Atom returns new cursor pointing to the atom.
func (s *Structure) Atom(index int) *Atom {
	return &Atom{s: s, index: index}
}

// Residue returns new cursor pointing to the residue.
func (s *Structure) Residue(index int) *Residue {
	return &Residue{s: s, index: index}
}

// Chain returns new cursor pointing to the chain.
func (s *Structure) Chain(index int) *Chain {
	return &Chain{s: s, index: index}
}

// Model returns new cursor pointing to the model.
func (s *Structure) Model(index int) *Model {
	return &Model{s: s, index: index}
}

// Bond returns new cursor pointing to the bond.
func (s *Structure) Bond(index int) *Bond {
	return &Bond{s: s, index: index}
}

// EachModel calls fn for every selected model.
// Model is selected if its model-level test is true or, when the test is inapplicable, any of its atoms is selected.
// Cursor passed to fn is reused between calls of fn, use Clone to keep it.
func (s *Structure) EachModel(fn func(m *Model), sel *selection.Selection) {
	cs := s.newCursors()
	m := &cs.model
	for mi := range s.Models.Count {
		m.index = mi
		if sel != nil {
			switch sel.TestModel(m) {
			case selection.False:
				continue
			case selection.Inapplicable:
				if !cs.anyAtom(m.AtomOffset(), m.AtomCount(), sel) {
					continue
				}
			}
		}
		fn(m)
	}
}

// EachChain calls fn for every selected chain.
// Cursor passed to fn is reused between calls of fn, use Clone to keep it.
func (s *Structure) EachChain(fn func(c *Chain), sel *selection.Selection) {
	cs := s.newCursors()
	c := &cs.chain
	for mi := range s.Models.Count {
		if !cs.modelMayMatch(mi, sel) {
			continue
		}
		chainOffset, chainCount := s.modelChains(mi)
		for ci := chainOffset; ci < chainOffset+chainCount; ci++ {
			c.index = ci
			if sel != nil {
				switch sel.TestChain(c) {
				case selection.False:
					continue
				case selection.Inapplicable:
					if !cs.anyAtom(c.AtomOffset(), c.AtomCount(), sel) {
						continue
					}
				}
			}
			fn(c)
		}
	}
}

// EachResidue calls fn for every selected residue.
// Cursor passed to fn is reused between calls of fn, use Clone to keep it.
func (s *Structure) EachResidue(fn func(r *Residue), sel *selection.Selection) {
	cs := s.newCursors()
	r := &cs.residue
	cs.eachResidueIndex(sel, func(ri int) {
		r.index = ri
		if sel != nil {
			switch sel.TestResidue(r) {
			case selection.False:
				return
			case selection.Inapplicable:
				if !cs.anyAtom(r.AtomOffset(), r.AtomCount(), sel) {
					return
				}
			}
		}
		fn(r)
	})
}

// EachAtom calls fn for every selected atom in ascending index order.
// Cursor passed to fn is reused between calls of fn, use Clone to keep it.
func (s *Structure) EachAtom(fn func(a *Atom), sel *selection.Selection) {
	cs := s.newCursors()
	a := &cs.atom
	if sel == nil || sel.IsAll() {
		for ai := range s.Atoms.Count {
			a.index = ai
			fn(a)
		}
		return
	}

	r := &cs.residue
	cs.eachResidueIndex(sel, func(ri int) {
		r.index = ri
		if sel.TestResidueOnly(r) == selection.False {
			return
		}
		atomOffset, atomCount := s.residueAtoms(ri)
		for ai := atomOffset; ai < atomOffset+atomCount; ai++ {
			a.index = ai
			if sel.TestAtom(a) == selection.True {
				fn(a)
			}
		}
	})
}

// AtomIndices returns indices of selected atoms in ascending order.
func (s *Structure) AtomIndices(sel *selection.Selection) []int {
	var indices []int
	s.EachAtom(func(a *Atom) {
		indices = append(indices, a.index)
	}, sel)
	return indices
}

// cursors holds the cursors owned by a single iteration, so iterations may be nested.
type cursors struct {
	s *Structure

	atom    Atom
	residue Residue
	chain   Chain
	model   Model
}

func (s *Structure) newCursors() *cursors {
	cs := &cursors{s: s}
	cs.atom.s = s
	cs.residue.s = s
	cs.chain.s = s
	cs.model.s = s
	return cs
}

// eachResidueIndex calls fn for residues of models and chains not excluded by level-only tests.
func (cs *cursors) eachResidueIndex(sel *selection.Selection, fn func(ri int)) {
	s := cs.s
	c := &cs.chain
	for mi := range s.Models.Count {
		if !cs.modelMayMatch(mi, sel) {
			continue
		}
		chainOffset, chainCount := s.modelChains(mi)
		for ci := chainOffset; ci < chainOffset+chainCount; ci++ {
			if sel != nil {
				c.index = ci
				if sel.TestChainOnly(c) == selection.False {
					continue
				}
			}
			residueOffset, residueCount := s.chainResidues(ci)
			for ri := residueOffset; ri < residueOffset+residueCount; ri++ {
				fn(ri)
			}
		}
	}
}

func (cs *cursors) modelMayMatch(mi int, sel *selection.Selection) bool {
	if sel == nil {
		return true
	}
	cs.model.index = mi
	return sel.TestModelOnly(&cs.model) != selection.False
}

func (cs *cursors) anyAtom(atomOffset, atomCount int, sel *selection.Selection) bool {
	a := &cs.atom
	for ai := atomOffset; ai < atomOffset+atomCount; ai++ {
		a.index = ai
		if sel.TestAtom(a) == selection.True {
			return true
		}
	}
	return false
}

func (s *Structure) residueType(ri int) *intern.ResidueType {
	return s.ResidueTypes.Get(s.Residues.ResidueTypeID.Data[ri])
}

func (s *Structure) residueChain(ri int) int {
	return int(s.Residues.ChainIndex.Data[ri])
}

func (s *Structure) chainModel(ci int) int {
	return int(s.Chains.ModelIndex.Data[ci])
}

func (s *Structure) residueAtoms(ri int) (int, int) {
	return int(s.Residues.AtomOffset.Data[ri]), int(s.Residues.AtomCount.Data[ri])
}

func (s *Structure) chainResidues(ci int) (int, int) {
	return int(s.Chains.ResidueOffset.Data[ci]), int(s.Chains.ResidueCount.Data[ci])
}

func (s *Structure) modelChains(mi int) (int, int) {
	return int(s.Models.ChainOffset.Data[mi]), int(s.Models.ChainCount.Data[mi])
}

// chainAtoms returns the atom range of the chain.
func (s *Structure) chainAtoms(ci int) (int, int) {
	residueOffset, residueCount := s.chainResidues(ci)
	if residueCount == 0 {
		return 0, 0
	}
	atomOffset, _ := s.residueAtoms(residueOffset)
	lastOffset, lastCount := s.residueAtoms(residueOffset + residueCount - 1)
	return atomOffset, lastOffset + lastCount - atomOffset
}

// modelAtoms returns the atom range of the model.
func (s *Structure) modelAtoms(mi int) (int, int) {
	chainOffset, chainCount := s.modelChains(mi)
	if chainCount == 0 {
		return 0, 0
	}
	atomOffset, _ := s.chainAtoms(chainOffset)
	lastOffset, lastCount := s.chainAtoms(chainOffset + chainCount - 1)
	return atomOffset, lastOffset + lastCount - atomOffset
}

// Dispose releases memory of all the stores.
func (s *Structure) Dispose() {
	s.Atoms.Dispose()
	s.Residues.Dispose()
	s.Chains.Dispose()
	s.Models.Dispose()
	s.Bonds.Dispose()
	s.bonded = nil
	s.bondOffsets = nil
	s.bondAtoms = nil
}
