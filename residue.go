package molstore

import (
	"iter"

	"github.com/outofforest/molstore/intern"
	"github.com/outofforest/molstore/types"
)

// ResidueRecord is the plain copy of the residue decoupled from the stores.
type ResidueRecord struct {
	Index        int
	ChainIndex   int
	ModelIndex   int
	AtomOffset   int
	AtomCount    int
	ResName      string
	ResNo        int32
	InsCode      byte
	SStruc       byte
	Hetero       bool
	MoleculeType types.MoleculeType
	BackboneType types.BackboneType
	ChainName    string
}

// Residue is the cursor reading residue attributes from the stores.
type Residue struct {
	s     *Structure
	index int
}

// Structure returns the structure residue belongs to.
func (r *Residue) Structure() *Structure {
	return r.s
}

// Index returns the index of the residue.
func (r *Residue) Index() int {
	return r.index
}

// Clone returns new cursor pointing to the same residue.
func (r *Residue) Clone() *Residue {
	return &Residue{s: r.s, index: r.index}
}

// ChainIndex returns the index of the chain.
func (r *Residue) ChainIndex() int {
	return r.s.residueChain(r.index)
}

// Chain returns the chain.
func (r *Residue) Chain() *Chain {
	return &Chain{s: r.s, index: r.ChainIndex()}
}

// ModelIndex returns the index of the model.
func (r *Residue) ModelIndex() int {
	return r.s.chainModel(r.ChainIndex())
}

// Model returns the model.
func (r *Residue) Model() *Model {
	return &Model{s: r.s, index: r.ModelIndex()}
}

// ChainName returns the name of the chain.
func (r *Residue) ChainName() string {
	return r.s.Chains.Name(r.ChainIndex())
}

// ChainNameEquals compares the name of the chain without allocating.
func (r *Residue) ChainNameEquals(name string) bool {
	return r.s.Chains.NameEquals(r.ChainIndex(), name)
}

// AtomOffset returns the index of the first atom.
func (r *Residue) AtomOffset() int {
	return int(r.s.Residues.AtomOffset.Data[r.index])
}

// AtomCount returns the number of atoms.
func (r *Residue) AtomCount() int {
	return int(r.s.Residues.AtomCount.Data[r.index])
}

// Atoms iterates over atoms of the residue. Yielded cursor is reused.
func (r *Residue) Atoms() iter.Seq[*Atom] {
	return atomRange(r.s, r.AtomOffset(), r.AtomCount())
}

// ResidueTypeID returns the id of residue type.
func (r *Residue) ResidueTypeID() types.ResidueTypeID {
	return r.s.Residues.ResidueTypeID.Data[r.index]
}

// Type returns the residue type. Returned record must not be modified.
func (r *Residue) Type() *intern.ResidueType {
	return r.s.residueType(r.index)
}

// ResName returns the name of the residue.
func (r *Residue) ResName() string {
	return r.Type().Name
}

// ResNo returns the number of the residue.
func (r *Residue) ResNo() int32 {
	return r.s.Residues.ResNo.Data[r.index]
}

// InsCode returns the insertion code.
func (r *Residue) InsCode() byte {
	return r.s.Residues.InsCode.Data[r.index]
}

// SStruc returns the secondary structure code.
func (r *Residue) SStruc() byte {
	return r.s.Residues.SStruc.Data[r.index]
}

// SetSStruc sets the secondary structure code.
func (r *Residue) SetSStruc(sstruc byte) {
	r.s.Residues.SStruc.Data[r.index] = sstruc
}

// MoleculeType returns the molecule type.
func (r *Residue) MoleculeType() types.MoleculeType {
	return r.Type().MoleculeType
}

// BackboneType returns the backbone type of the residue in the middle of a polymer.
func (r *Residue) BackboneType() types.BackboneType {
	return r.Type().BackboneType
}

// IsProtein returns true for amino acids.
func (r *Residue) IsProtein() bool {
	return r.Type().IsProtein()
}

// IsNucleic returns true for nucleotides.
func (r *Residue) IsNucleic() bool {
	return r.Type().IsNucleic()
}

// IsRna returns true for ribonucleotides.
func (r *Residue) IsRna() bool {
	return r.Type().IsRna()
}

// IsDna returns true for deoxyribonucleotides.
func (r *Residue) IsDna() bool {
	return r.Type().IsDna()
}

// IsPolymer returns true for residues building polymers.
func (r *Residue) IsPolymer() bool {
	return r.Type().IsPolymer()
}

// IsWater returns true for solvent.
func (r *Residue) IsWater() bool {
	return r.Type().IsWater()
}

// IsIon returns true for ions.
func (r *Residue) IsIon() bool {
	return r.Type().IsIon()
}

// IsSaccharide returns true for sugars.
func (r *Residue) IsSaccharide() bool {
	return r.Type().IsSaccharide()
}

// IsHetero returns true for hetero residues.
func (r *Residue) IsHetero() bool {
	return r.Type().Hetero
}

// IsCg returns true for coarse-grained residues.
func (r *Residue) IsCg() bool {
	return r.Type().IsCg()
}

// IsHelix returns true if residue belongs to a helix.
func (r *Residue) IsHelix() bool {
	return types.IsHelix(r.SStruc())
}

// IsSheet returns true if residue belongs to a sheet.
func (r *Residue) IsSheet() bool {
	return types.IsSheet(r.SStruc())
}

// IsTurn returns true for protein residues outside helices and sheets.
func (r *Residue) IsTurn() bool {
	return r.IsProtein() && types.IsTurn(r.SStruc())
}

// HasBackbone returns true if residue forms a backbone at any position of a polymer.
func (r *Residue) HasBackbone() bool {
	return r.Type().HasBackbone()
}

// TraceAtomIndex returns the index of the trace atom or types.NoIndex.
func (r *Residue) TraceAtomIndex() int {
	return r.absolute(r.Type().TraceAtomIndex)
}

// Direction1AtomIndex returns the index of the first direction atom or types.NoIndex.
func (r *Residue) Direction1AtomIndex() int {
	return r.absolute(r.Type().Direction1AtomIndex)
}

// Direction2AtomIndex returns the index of the second direction atom or types.NoIndex.
func (r *Residue) Direction2AtomIndex() int {
	return r.absolute(r.Type().Direction2AtomIndex)
}

// BackboneStartAtomIndex returns the index of the atom linking to the previous residue or types.NoIndex.
func (r *Residue) BackboneStartAtomIndex() int {
	return r.absolute(r.Type().BackboneStartAtomIndex)
}

// BackboneEndAtomIndex returns the index of the atom linking to the next residue or types.NoIndex.
func (r *Residue) BackboneEndAtomIndex() int {
	return r.absolute(r.Type().BackboneEndAtomIndex)
}

func (r *Residue) absolute(index int) int {
	if index == types.NoIndex {
		return types.NoIndex
	}
	return r.AtomOffset() + index
}

// ConnectedTo returns true if backbone end atom of this residue is connected to backbone start atom of next.
func (r *Residue) ConnectedTo(next *Residue) bool {
	end := r.BackboneEndAtomIndex()
	start := next.BackboneStartAtomIndex()
	if end == types.NoIndex || start == types.NoIndex {
		return false
	}
	return r.s.Atom(end).ConnectedTo(next.s.Atom(start))
}

// NextConnectedResidue returns the next residue of the chain if it is connected to this one.
// Last residue of the chain is followed by the first one, so cyclic chains wrap around.
func (r *Residue) NextConnectedResidue() (*Residue, bool) {
	residueOffset, residueCount := r.s.chainResidues(r.ChainIndex())
	if residueCount < 2 {
		return nil, false
	}
	nextIndex := r.index + 1
	if nextIndex == residueOffset+residueCount {
		nextIndex = residueOffset
	}
	next := &Residue{s: r.s, index: nextIndex}
	if !r.ConnectedTo(next) {
		return nil, false
	}
	return next, true
}

// PreviousConnectedResidue returns the previous residue of the chain if it is connected to this one.
// First residue of the chain is preceded by the last one, so cyclic chains wrap around.
func (r *Residue) PreviousConnectedResidue() (*Residue, bool) {
	residueOffset, residueCount := r.s.chainResidues(r.ChainIndex())
	if residueCount < 2 {
		return nil, false
	}
	prevIndex := r.index - 1
	if r.index == residueOffset {
		prevIndex = residueOffset + residueCount - 1
	}
	prev := &Residue{s: r.s, index: prevIndex}
	if !prev.ConnectedTo(r) {
		return nil, false
	}
	return prev, true
}

// Record returns the plain copy of the residue.
func (r *Residue) Record() ResidueRecord {
	rt := r.Type()
	ci := r.ChainIndex()
	return ResidueRecord{
		Index:        r.index,
		ChainIndex:   ci,
		ModelIndex:   r.s.chainModel(ci),
		AtomOffset:   r.AtomOffset(),
		AtomCount:    r.AtomCount(),
		ResName:      rt.Name,
		ResNo:        r.ResNo(),
		InsCode:      r.InsCode(),
		SStruc:       r.SStruc(),
		Hetero:       rt.Hetero,
		MoleculeType: rt.MoleculeType,
		BackboneType: rt.BackboneType,
		ChainName:    r.s.Chains.Name(ci),
	}
}

func atomRange(s *Structure, offset, count int) iter.Seq[*Atom] {
	return func(yield func(*Atom) bool) {
		a := &Atom{s: s}
		for a.index = offset; a.index < offset+count; a.index++ {
			if !yield(a) {
				return
			}
		}
	}
}
