package molstore

import (
	"github.com/outofforest/molstore/intern"
	"github.com/outofforest/molstore/types"
)

const (
	// bondTolerance is the allowed deviation from the sum of covalent radii.
	bondTolerance = 0.3

	// cgBondDistanceSquared is the squared distance below which coarse-grained atoms are connected.
	cgBondDistanceSquared = 64
)

// AtomRecord is the plain copy of the atom decoupled from the stores.
type AtomRecord struct {
	Index        int
	ResidueIndex int
	ChainIndex   int
	ModelIndex   int
	Name         string
	Element      string
	ResName      string
	ResNo        int32
	InsCode      byte
	ChainName    string
	X, Y, Z      float32
	Serial       int32
	BFactor      float32
	AltLoc       byte
	Occupancy    float32
}

// Atom is the cursor reading atom attributes from the stores.
type Atom struct {
	s     *Structure
	index int
}

// Structure returns the structure atom belongs to.
func (a *Atom) Structure() *Structure {
	return a.s
}

// Index returns the index of the atom.
func (a *Atom) Index() int {
	return a.index
}

// Clone returns new cursor pointing to the same atom.
func (a *Atom) Clone() *Atom {
	return &Atom{s: a.s, index: a.index}
}

// ResidueIndex returns the index of the residue.
func (a *Atom) ResidueIndex() int {
	return int(a.s.Atoms.ResidueIndex.Data[a.index])
}

// Residue returns the residue.
func (a *Atom) Residue() *Residue {
	return &Residue{s: a.s, index: a.ResidueIndex()}
}

// ChainIndex returns the index of the chain, derived through the residue.
func (a *Atom) ChainIndex() int {
	return a.s.residueChain(a.ResidueIndex())
}

// Chain returns the chain.
func (a *Atom) Chain() *Chain {
	return &Chain{s: a.s, index: a.ChainIndex()}
}

// ModelIndex returns the index of the model, derived through the residue and chain.
func (a *Atom) ModelIndex() int {
	return a.s.chainModel(a.ChainIndex())
}

// Model returns the model.
func (a *Atom) Model() *Model {
	return &Model{s: a.s, index: a.ModelIndex()}
}

// AtomTypeID returns the id of atom type.
func (a *Atom) AtomTypeID() types.AtomTypeID {
	return a.s.Atoms.AtomTypeID.Data[a.index]
}

func (a *Atom) atomType() *intern.AtomType {
	return a.s.AtomTypes.Get(a.AtomTypeID())
}

func (a *Atom) residueType() *intern.ResidueType {
	return a.s.residueType(a.ResidueIndex())
}

// AtomName returns the name of the atom.
func (a *Atom) AtomName() string {
	return a.atomType().Name
}

// Element returns the upper-case element symbol.
func (a *Atom) Element() string {
	return a.atomType().Element
}

// CovalentRadius returns the covalent radius of the element.
func (a *Atom) CovalentRadius() float32 {
	return a.atomType().CovalentRadius
}

// X returns x coordinate.
func (a *Atom) X() float32 {
	return a.s.Atoms.X.Data[a.index]
}

// Y returns y coordinate.
func (a *Atom) Y() float32 {
	return a.s.Atoms.Y.Data[a.index]
}

// Z returns z coordinate.
func (a *Atom) Z() float32 {
	return a.s.Atoms.Z.Data[a.index]
}

// Position returns coordinates of the atom.
func (a *Atom) Position() [3]float32 {
	return [3]float32{a.X(), a.Y(), a.Z()}
}

// SetPosition sets coordinates of the atom.
func (a *Atom) SetPosition(x, y, z float32) {
	a.s.Atoms.X.Data[a.index] = x
	a.s.Atoms.Y.Data[a.index] = y
	a.s.Atoms.Z.Data[a.index] = z
}

// Serial returns the serial number.
func (a *Atom) Serial() int32 {
	return a.s.Atoms.Serial.Data[a.index]
}

// BFactor returns the temperature factor.
func (a *Atom) BFactor() float32 {
	return a.s.Atoms.BFactor.Data[a.index]
}

// AltLoc returns the alternate location code, 0 if there is none.
func (a *Atom) AltLoc() byte {
	return a.s.Atoms.AltLoc.Data[a.index]
}

// Occupancy returns the occupancy.
func (a *Atom) Occupancy() float32 {
	return a.s.Atoms.Occupancy.Data[a.index]
}

// ResName returns the name of the residue.
func (a *Atom) ResName() string {
	return a.residueType().Name
}

// ResNo returns the number of the residue.
func (a *Atom) ResNo() int32 {
	return a.s.Residues.ResNo.Data[a.ResidueIndex()]
}

// InsCode returns the insertion code of the residue.
func (a *Atom) InsCode() byte {
	return a.s.Residues.InsCode.Data[a.ResidueIndex()]
}

// SStruc returns the secondary structure code of the residue.
func (a *Atom) SStruc() byte {
	return a.s.Residues.SStruc.Data[a.ResidueIndex()]
}

// ChainName returns the name of the chain.
func (a *Atom) ChainName() string {
	return a.s.Chains.Name(a.ChainIndex())
}

// ChainNameEquals compares the name of the chain without allocating.
func (a *Atom) ChainNameEquals(name string) bool {
	return a.s.Chains.NameEquals(a.ChainIndex(), name)
}

// IsProtein returns true if atom belongs to an amino acid.
func (a *Atom) IsProtein() bool {
	return a.residueType().IsProtein()
}

// IsNucleic returns true if atom belongs to a nucleotide.
func (a *Atom) IsNucleic() bool {
	return a.residueType().IsNucleic()
}

// IsRna returns true if atom belongs to a ribonucleotide.
func (a *Atom) IsRna() bool {
	return a.residueType().IsRna()
}

// IsDna returns true if atom belongs to a deoxyribonucleotide.
func (a *Atom) IsDna() bool {
	return a.residueType().IsDna()
}

// IsPolymer returns true if atom belongs to a polymer residue.
func (a *Atom) IsPolymer() bool {
	return a.residueType().IsPolymer()
}

// IsWater returns true if atom belongs to solvent.
func (a *Atom) IsWater() bool {
	return a.residueType().IsWater()
}

// IsIon returns true if atom belongs to an ion.
func (a *Atom) IsIon() bool {
	return a.residueType().IsIon()
}

// IsSaccharide returns true if atom belongs to a sugar.
func (a *Atom) IsSaccharide() bool {
	return a.residueType().IsSaccharide()
}

// IsHetero returns true if atom belongs to a hetero residue.
func (a *Atom) IsHetero() bool {
	return a.residueType().Hetero
}

// IsHelix returns true if atom belongs to a helix.
func (a *Atom) IsHelix() bool {
	return types.IsHelix(a.SStruc())
}

// IsSheet returns true if atom belongs to a sheet.
func (a *Atom) IsSheet() bool {
	return types.IsSheet(a.SStruc())
}

// IsTurn returns true if atom belongs to a protein residue outside helices and sheets.
func (a *Atom) IsTurn() bool {
	return a.IsProtein() && types.IsTurn(a.SStruc())
}

// IsCg returns true if atom belongs to a coarse-grained residue.
func (a *Atom) IsCg() bool {
	return a.residueType().IsCg()
}

// IsBackbone returns true for backbone atoms of polymer residues.
func (a *Atom) IsBackbone() bool {
	ri := a.ResidueIndex()
	return a.s.residueType(ri).IsBackbone(a.index - int(a.s.Residues.AtomOffset.Data[ri]))
}

// IsSidechain returns true for atoms of polymer residues outside of the backbone.
func (a *Atom) IsSidechain() bool {
	return a.IsPolymer() && !a.IsBackbone()
}

// IsMetal returns true for metal atoms.
func (a *Atom) IsMetal() bool {
	return a.atomType().IsMetal
}

// IsHydrogen returns true for hydrogen atoms.
func (a *Atom) IsHydrogen() bool {
	return a.atomType().IsHydrogen
}

// IsPolarHydrogen returns true for hydrogen connected to nitrogen, oxygen or sulfur of the same residue.
func (a *Atom) IsPolarHydrogen() bool {
	if !a.IsHydrogen() {
		return false
	}

	atomOffset, atomCount := a.s.residueAtoms(a.ResidueIndex())
	other := Atom{s: a.s}
	for i := atomOffset; i < atomOffset+atomCount; i++ {
		other.index = i
		if i != a.index && other.atomType().IsPolarHeavy && a.ConnectedTo(&other) {
			return true
		}
	}
	return false
}

// IsBonded returns true if atom takes part in any bond computed by BuildBonds.
func (a *Atom) IsBonded() bool {
	word := a.index / 64
	return word < len(a.s.bonded) && a.s.bonded[word]&(1<<(a.index%64)) != 0
}

// EachBondedAtom calls fn for every atom bonded to this one.
// Cursor passed to fn is reused, use Clone to keep it.
func (a *Atom) EachBondedAtom(fn func(b *Atom)) {
	if a.index+1 >= len(a.s.bondOffsets) {
		return
	}
	b := &Atom{s: a.s}
	for _, bi := range a.s.bondAtoms[a.s.bondOffsets[a.index]:a.s.bondOffsets[a.index+1]] {
		b.index = int(bi)
		fn(b)
	}
}

// DistanceSquared returns the squared distance between atoms.
func (a *Atom) DistanceSquared(other *Atom) float32 {
	dx := a.X() - other.X()
	dy := a.Y() - other.Y()
	dz := a.Z() - other.Z()
	return dx*dx + dy*dy + dz*dz
}

// ConnectedTo returns true if atoms are close enough to be covalently bonded.
// Atoms with different alternate locations are never connected.
func (a *Atom) ConnectedTo(other *Atom) bool {
	if a.s == other.s && a.index == other.index {
		return false
	}
	if !altLocsCompatible(a.AltLoc(), other.AltLoc()) {
		return false
	}

	distSq := a.DistanceSquared(other)
	if a.IsCg() || other.IsCg() {
		return distSq < cgBondDistanceSquared
	}

	d := a.CovalentRadius() + other.CovalentRadius()
	return distSq >= (d-bondTolerance)*(d-bondTolerance) && distSq <= (d+bondTolerance)*(d+bondTolerance)
}

// Record returns the plain copy of the atom.
func (a *Atom) Record() AtomRecord {
	ri := a.ResidueIndex()
	ci := a.s.residueChain(ri)
	return AtomRecord{
		Index:        a.index,
		ResidueIndex: ri,
		ChainIndex:   ci,
		ModelIndex:   a.s.chainModel(ci),
		Name:         a.AtomName(),
		Element:      a.Element(),
		ResName:      a.ResName(),
		ResNo:        a.ResNo(),
		InsCode:      a.InsCode(),
		ChainName:    a.s.Chains.Name(ci),
		X:            a.X(),
		Y:            a.Y(),
		Z:            a.Z(),
		Serial:       a.Serial(),
		BFactor:      a.BFactor(),
		AltLoc:       a.AltLoc(),
		Occupancy:    a.Occupancy(),
	}
}

func altLocsCompatible(a, b byte) bool {
	return a == 0 || a == ' ' || b == 0 || b == ' ' || a == b
}
