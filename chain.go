package molstore

import "iter"

// ChainRecord is the plain copy of the chain decoupled from the stores.
type ChainRecord struct {
	Index         int
	ModelIndex    int
	EntityIndex   int
	ResidueOffset int
	ResidueCount  int
	Name          string
	ID            string
}

// Chain is the cursor reading chain attributes from the stores.
type Chain struct {
	s     *Structure
	index int
}

// Structure returns the structure chain belongs to.
func (c *Chain) Structure() *Structure {
	return c.s
}

// Index returns the index of the chain.
func (c *Chain) Index() int {
	return c.index
}

// Clone returns new cursor pointing to the same chain.
func (c *Chain) Clone() *Chain {
	return &Chain{s: c.s, index: c.index}
}

// ModelIndex returns the index of the model.
func (c *Chain) ModelIndex() int {
	return c.s.chainModel(c.index)
}

// Model returns the model.
func (c *Chain) Model() *Model {
	return &Model{s: c.s, index: c.ModelIndex()}
}

// EntityIndex returns the index of the entity.
func (c *Chain) EntityIndex() int {
	return int(c.s.Chains.EntityIndex.Data[c.index])
}

// ChainName returns the name of the chain.
func (c *Chain) ChainName() string {
	return c.s.Chains.Name(c.index)
}

// ChainNameEquals compares the name of the chain without allocating.
func (c *Chain) ChainNameEquals(name string) bool {
	return c.s.Chains.NameEquals(c.index, name)
}

// ChainID returns the id of the chain.
func (c *Chain) ChainID() string {
	return c.s.Chains.ID(c.index)
}

// ResidueOffset returns the index of the first residue.
func (c *Chain) ResidueOffset() int {
	return int(c.s.Chains.ResidueOffset.Data[c.index])
}

// ResidueCount returns the number of residues.
func (c *Chain) ResidueCount() int {
	return int(c.s.Chains.ResidueCount.Data[c.index])
}

// AtomOffset returns the index of the first atom.
func (c *Chain) AtomOffset() int {
	offset, _ := c.s.chainAtoms(c.index)
	return offset
}

// AtomCount returns the number of atoms.
func (c *Chain) AtomCount() int {
	_, count := c.s.chainAtoms(c.index)
	return count
}

// Residues iterates over residues of the chain. Yielded cursor is reused.
func (c *Chain) Residues() iter.Seq[*Residue] {
	return residueRange(c.s, c.ResidueOffset(), c.ResidueCount())
}

// Atoms iterates over atoms of the chain. Yielded cursor is reused.
func (c *Chain) Atoms() iter.Seq[*Atom] {
	offset, count := c.s.chainAtoms(c.index)
	return atomRange(c.s, offset, count)
}

// IsCyclic returns true if the last residue is connected to the first one.
func (c *Chain) IsCyclic() bool {
	offset, count := c.s.chainResidues(c.index)
	if count < 2 {
		return false
	}
	return c.s.Residue(offset + count - 1).ConnectedTo(c.s.Residue(offset))
}

// EachPolymer calls fn for every polymer of the chain.
// Polymer is the maximal run of at least two consecutive residues having backbone, each connected to the next one.
func (c *Chain) EachPolymer(fn func(p *Polymer)) {
	offset, count := c.s.chainResidues(c.index)

	start := -1
	prev := &Residue{s: c.s}
	current := &Residue{s: c.s}
	flush := func(end int) {
		if start != -1 && end-start >= 2 {
			fn(NewPolymer(c.s, start, end))
		}
	}

	for ri := offset; ri < offset+count; ri++ {
		current.index = ri
		if !current.HasBackbone() {
			flush(ri)
			start = -1
			continue
		}
		if start != -1 && !prev.ConnectedTo(current) {
			flush(ri)
			start = -1
		}
		if start == -1 {
			start = ri
		}
		prev.index = ri
	}
	flush(offset + count)
}

// Polymers returns all the polymers of the chain.
func (c *Chain) Polymers() []*Polymer {
	var polymers []*Polymer
	c.EachPolymer(func(p *Polymer) {
		polymers = append(polymers, p)
	})
	return polymers
}

// Record returns the plain copy of the chain.
func (c *Chain) Record() ChainRecord {
	return ChainRecord{
		Index:         c.index,
		ModelIndex:    c.ModelIndex(),
		EntityIndex:   c.EntityIndex(),
		ResidueOffset: c.ResidueOffset(),
		ResidueCount:  c.ResidueCount(),
		Name:          c.ChainName(),
		ID:            c.ChainID(),
	}
}

func residueRange(s *Structure, offset, count int) iter.Seq[*Residue] {
	return func(yield func(*Residue) bool) {
		r := &Residue{s: s}
		for r.index = offset; r.index < offset+count; r.index++ {
			if !yield(r) {
				return
			}
		}
	}
}
