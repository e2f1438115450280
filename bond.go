package molstore

import (
	"context"

	"github.com/outofforest/logger"
	"go.uber.org/zap"

	"github.com/outofforest/molstore/store"
)

// Bond is the cursor reading bond attributes from the bond store.
type Bond struct {
	s     *Structure
	index int
}

// Index returns the index of the bond.
func (b *Bond) Index() int {
	return b.index
}

// Atom1 returns the atom with lower index.
func (b *Bond) Atom1() *Atom {
	return b.s.Atom(int(b.s.Bonds.AtomIndex1.Data[b.index]))
}

// Atom2 returns the atom with higher index.
func (b *Bond) Atom2() *Atom {
	return b.s.Atom(int(b.s.Bonds.AtomIndex2.Data[b.index]))
}

// BondOrder returns the order of the bond.
func (b *Bond) BondOrder() uint8 {
	return b.s.Bonds.BondOrder.Data[b.index]
}

// Record returns the plain copy of the bond.
func (b *Bond) Record() store.BondRow {
	return b.s.Bonds.Row(b.index)
}

// BuildBonds computes covalent bonds from atom distances.
// Bonds are created between connected atoms of each residue and between linkage atoms of connected
// consecutive residues, including the link closing cyclic chains.
func (s *Structure) BuildBonds(ctx context.Context) {
	s.Bonds.Clear()

	a1 := &Atom{s: s}
	a2 := &Atom{s: s}
	for ri := range s.Residues.Count {
		atomOffset, atomCount := s.residueAtoms(ri)
		for i := atomOffset; i < atomOffset+atomCount; i++ {
			a1.index = i
			for j := i + 1; j < atomOffset+atomCount; j++ {
				a2.index = j
				if a1.ConnectedTo(a2) {
					s.Bonds.Add(store.BondRow{AtomIndex1: i, AtomIndex2: j, BondOrder: 1})
				}
			}
		}
	}

	r1 := &Residue{s: s}
	r2 := &Residue{s: s}
	for ci := range s.Chains.Count {
		residueOffset, residueCount := s.chainResidues(ci)
		if residueCount < 2 {
			continue
		}
		for ri := residueOffset; ri < residueOffset+residueCount; ri++ {
			r1.index = ri
			r2.index = ri + 1
			if r2.index == residueOffset+residueCount {
				r2.index = residueOffset
			}
			if r1.ConnectedTo(r2) {
				s.Bonds.Add(store.BondRow{
					AtomIndex1: r1.BackboneEndAtomIndex(),
					AtomIndex2: r2.BackboneStartAtomIndex(),
					BondOrder:  1,
				})
			}
		}
	}

	s.Bonds.SortAndCompact()
	s.indexBonds()

	logger.Get(ctx).Debug("Bonds built", zap.Int("atoms", s.Atoms.Count), zap.Int("bonds", s.Bonds.Count))
}

// indexBonds builds the bonded atom bitset and per-atom adjacency lists.
func (s *Structure) indexBonds() {
	s.bonded = make([]uint64, (s.Atoms.Count+63)/64)
	s.bondOffsets = make([]int32, s.Atoms.Count+1)

	for i := range s.Bonds.Count {
		a1 := s.Bonds.AtomIndex1.Data[i]
		a2 := s.Bonds.AtomIndex2.Data[i]
		s.bonded[a1/64] |= 1 << (a1 % 64)
		s.bonded[a2/64] |= 1 << (a2 % 64)
		s.bondOffsets[a1+1]++
		s.bondOffsets[a2+1]++
	}
	for i := 1; i < len(s.bondOffsets); i++ {
		s.bondOffsets[i] += s.bondOffsets[i-1]
	}

	s.bondAtoms = make([]int32, 2*s.Bonds.Count)
	next := make([]int32, s.Atoms.Count)
	copy(next, s.bondOffsets)
	for i := range s.Bonds.Count {
		a1 := s.Bonds.AtomIndex1.Data[i]
		a2 := s.Bonds.AtomIndex2.Data[i]
		s.bondAtoms[next[a1]] = int32(a2)
		next[a1]++
		s.bondAtoms[next[a2]] = int32(a1)
		next[a2]++
	}
}
