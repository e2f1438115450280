package types

// NoIndex marks an absent row, e.g. a residue without a trace atom.
const NoIndex = -1

type (
	// AtomTypeID identifies an interned (atom name, element) pair.
	AtomTypeID uint16

	// ResidueTypeID identifies an interned (residue name, atom types, hetero) combination.
	ResidueTypeID uint16
)

// MoleculeType classifies residue types.
type MoleculeType uint8

const (
	// UnknownType is used when no other classification applies.
	UnknownType MoleculeType = iota

	// WaterType is the type of solvent molecules.
	WaterType

	// IonType is the type of single-atom ions.
	IonType

	// ProteinType is the type of amino acids.
	ProteinType

	// RnaType is the type of ribonucleotides.
	RnaType

	// DnaType is the type of deoxyribonucleotides.
	DnaType

	// SaccharideType is the type of sugars.
	SaccharideType
)

// BackboneType classifies the polymer backbone a residue type takes part in.
type BackboneType uint8

const (
	// UnknownBackboneType means residue is not part of any known backbone.
	UnknownBackboneType BackboneType = iota

	// ProteinBackboneType is the full-atom amino acid backbone.
	ProteinBackboneType

	// RnaBackboneType is the full-atom ribonucleotide backbone.
	RnaBackboneType

	// DnaBackboneType is the full-atom deoxyribonucleotide backbone.
	DnaBackboneType

	// CgProteinBackboneType is the coarse-grained amino acid backbone (CA or BB only).
	CgProteinBackboneType

	// CgRnaBackboneType is the coarse-grained ribonucleotide backbone.
	CgRnaBackboneType

	// CgDnaBackboneType is the coarse-grained deoxyribonucleotide backbone.
	CgDnaBackboneType
)

// IsCg returns true if backbone type is coarse-grained.
func (bt BackboneType) IsCg() bool {
	return bt == CgProteinBackboneType || bt == CgRnaBackboneType || bt == CgDnaBackboneType
}

// Position is the place of residue in a polymer, used to decide which backbone atoms are required.
type Position int8

const (
	// PositionStart is the first residue of a polymer, it may miss the incoming linkage atom.
	PositionStart Position = iota - 1

	// PositionMiddle is any residue in the middle of a polymer.
	PositionMiddle

	// PositionEnd is the last residue of a polymer, it may miss the outgoing linkage atom.
	PositionEnd
)

// Secondary structure codes stored per residue.
const (
	SStrucNone       byte = 0
	SStrucAlphaHelix byte = 'h'
	SStruc310Helix   byte = 'g'
	SStrucPiHelix    byte = 'i'
	SStrucStrand     byte = 'e'
	SStrucBridge     byte = 'b'
	SStrucBend       byte = 's'
	SStrucTurn       byte = 't'
	SStrucLoop       byte = 'l'
)

// IsHelix returns true if secondary structure code denotes any kind of helix.
func IsHelix(sstruc byte) bool {
	return sstruc == SStrucAlphaHelix || sstruc == SStruc310Helix || sstruc == SStrucPiHelix
}

// IsSheet returns true if secondary structure code denotes a sheet.
func IsSheet(sstruc byte) bool {
	return sstruc == SStrucStrand || sstruc == SStrucBridge
}

// IsTurn returns true if secondary structure code denotes a turn or coil.
func IsTurn(sstruc byte) bool {
	return sstruc == SStrucBend || sstruc == SStrucTurn || sstruc == SStrucLoop || sstruc == SStrucNone ||
		sstruc == ' '
}
