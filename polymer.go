package molstore

import "iter"

// NewPolymer creates polymer over residues [start, end) of one chain.
func NewPolymer(s *Structure, start, end int) *Polymer {
	p := &Polymer{
		s:          s,
		start:      start,
		end:        end,
		chainIndex: s.residueChain(start),
	}

	first := s.Residue(start)
	last := s.Residue(end - 1)
	_, p.isPrevConnected = first.PreviousConnectedResidue()
	_, p.isNextConnected = last.NextConnectedResidue()
	p.isCyclic = last.ConnectedTo(first)
	return p
}

// Polymer is the view over the connected run of residues within one chain.
type Polymer struct {
	s          *Structure
	start      int
	end        int
	chainIndex int

	isPrevConnected bool
	isNextConnected bool
	isCyclic        bool
}

// Start returns the index of the first residue.
func (p *Polymer) Start() int {
	return p.start
}

// End returns the index following the last residue.
func (p *Polymer) End() int {
	return p.end
}

// ResidueCount returns the number of residues.
func (p *Polymer) ResidueCount() int {
	return p.end - p.start
}

// ChainIndex returns the index of the chain.
func (p *Polymer) ChainIndex() int {
	return p.chainIndex
}

// Chain returns the chain.
func (p *Polymer) Chain() *Chain {
	return p.s.Chain(p.chainIndex)
}

// IsPrevConnected returns true if residue preceding the polymer is connected to its first residue.
func (p *Polymer) IsPrevConnected() bool {
	return p.isPrevConnected
}

// IsNextConnected returns true if residue following the polymer is connected to its last residue.
func (p *Polymer) IsNextConnected() bool {
	return p.isNextConnected
}

// IsCyclic returns true if the last residue is connected to the first one.
func (p *Polymer) IsCyclic() bool {
	return p.isCyclic
}

// IsProtein returns true for polypeptides.
func (p *Polymer) IsProtein() bool {
	return p.s.residueType(p.start).IsProtein()
}

// IsNucleic returns true for polynucleotides.
func (p *Polymer) IsNucleic() bool {
	return p.s.residueType(p.start).IsNucleic()
}

// IsCg returns true for coarse-grained polymers.
func (p *Polymer) IsCg() bool {
	return p.s.residueType(p.start).IsCg()
}

// Residues iterates over residues of the polymer. Yielded cursor is reused.
func (p *Polymer) Residues() iter.Seq[*Residue] {
	return residueRange(p.s, p.start, p.end-p.start)
}

// Atoms iterates over atoms of the polymer. Yielded cursor is reused.
func (p *Polymer) Atoms() iter.Seq[*Atom] {
	offset, _ := p.s.residueAtoms(p.start)
	lastOffset, lastCount := p.s.residueAtoms(p.end - 1)
	return atomRange(p.s, offset, lastOffset+lastCount-offset)
}

// TraceAtomIndices returns indices of trace atoms of the residues, types.NoIndex for residues without one.
func (p *Polymer) TraceAtomIndices() []int {
	indices := make([]int, 0, p.ResidueCount())
	for r := range p.Residues() {
		indices = append(indices, r.TraceAtomIndex())
	}
	return indices
}
