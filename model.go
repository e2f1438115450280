package molstore

import "iter"

// ModelRecord is the plain copy of the model decoupled from the stores.
type ModelRecord struct {
	Index       int
	ChainOffset int
	ChainCount  int
	AtomOffset  int
	AtomCount   int
}

// Model is the cursor reading model attributes from the stores.
type Model struct {
	s     *Structure
	index int
}

// Structure returns the structure model belongs to.
func (m *Model) Structure() *Structure {
	return m.s
}

// Index returns the index of the model.
func (m *Model) Index() int {
	return m.index
}

// Clone returns new cursor pointing to the same model.
func (m *Model) Clone() *Model {
	return &Model{s: m.s, index: m.index}
}

// ChainOffset returns the index of the first chain.
func (m *Model) ChainOffset() int {
	return int(m.s.Models.ChainOffset.Data[m.index])
}

// ChainCount returns the number of chains.
func (m *Model) ChainCount() int {
	return int(m.s.Models.ChainCount.Data[m.index])
}

// ResidueOffset returns the index of the first residue.
func (m *Model) ResidueOffset() int {
	offset, _ := m.residues()
	return offset
}

// ResidueCount returns the number of residues.
func (m *Model) ResidueCount() int {
	_, count := m.residues()
	return count
}

// AtomOffset returns the index of the first atom.
func (m *Model) AtomOffset() int {
	offset, _ := m.s.modelAtoms(m.index)
	return offset
}

// AtomCount returns the number of atoms.
func (m *Model) AtomCount() int {
	_, count := m.s.modelAtoms(m.index)
	return count
}

// Chains iterates over chains of the model. Yielded cursor is reused.
func (m *Model) Chains() iter.Seq[*Chain] {
	return func(yield func(*Chain) bool) {
		offset, count := m.s.modelChains(m.index)
		c := &Chain{s: m.s}
		for c.index = offset; c.index < offset+count; c.index++ {
			if !yield(c) {
				return
			}
		}
	}
}

// Residues iterates over residues of the model. Yielded cursor is reused.
func (m *Model) Residues() iter.Seq[*Residue] {
	offset, count := m.residues()
	return residueRange(m.s, offset, count)
}

// Atoms iterates over atoms of the model. Yielded cursor is reused.
func (m *Model) Atoms() iter.Seq[*Atom] {
	offset, count := m.s.modelAtoms(m.index)
	return atomRange(m.s, offset, count)
}

// Record returns the plain copy of the model.
func (m *Model) Record() ModelRecord {
	atomOffset, atomCount := m.s.modelAtoms(m.index)
	return ModelRecord{
		Index:       m.index,
		ChainOffset: m.ChainOffset(),
		ChainCount:  m.ChainCount(),
		AtomOffset:  atomOffset,
		AtomCount:   atomCount,
	}
}

func (m *Model) residues() (int, int) {
	chainOffset, chainCount := m.s.modelChains(m.index)
	if chainCount == 0 {
		return 0, 0
	}
	offset, _ := m.s.chainResidues(chainOffset)
	lastOffset, lastCount := m.s.chainResidues(chainOffset + chainCount - 1)
	return offset, lastOffset + lastCount - offset
}
