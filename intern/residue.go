package intern

import (
	"hash"
	"slices"
	"unsafe"

	"github.com/cespare/xxhash"
	"github.com/outofforest/photon"
	"github.com/pkg/errors"

	"github.com/outofforest/molstore/chem"
	"github.com/outofforest/molstore/index"
	"github.com/outofforest/molstore/types"
)

// ResidueType is the interned (residue name, atom types, hetero) combination together with
// its classification.
type ResidueType struct {
	Name        string
	AtomTypeIDs []types.AtomTypeID
	Hetero      bool

	MoleculeType types.MoleculeType

	// BackboneType is the backbone type of the residue placed in the middle of a polymer.
	BackboneType types.BackboneType

	// StartBackboneType is the backbone type of the residue placed at the start of a polymer.
	StartBackboneType types.BackboneType

	// EndBackboneType is the backbone type of the residue placed at the end of a polymer.
	EndBackboneType types.BackboneType

	// Indices below are relative to the first atom of the residue or types.NoIndex.
	TraceAtomIndex         int
	Direction1AtomIndex    int
	Direction2AtomIndex    int
	BackboneStartAtomIndex int
	BackboneEndAtomIndex   int

	backbone []bool
}

// IsBackbone returns true if atom at index relative to the residue is a backbone atom.
func (rt *ResidueType) IsBackbone(atomIndex int) bool {
	return rt.backbone[atomIndex]
}

// IsProtein returns true for amino acids.
func (rt *ResidueType) IsProtein() bool {
	return rt.MoleculeType == types.ProteinType
}

// IsRna returns true for ribonucleotides.
func (rt *ResidueType) IsRna() bool {
	return rt.MoleculeType == types.RnaType
}

// IsDna returns true for deoxyribonucleotides.
func (rt *ResidueType) IsDna() bool {
	return rt.MoleculeType == types.DnaType
}

// IsNucleic returns true for nucleotides.
func (rt *ResidueType) IsNucleic() bool {
	return rt.IsRna() || rt.IsDna()
}

// IsPolymer returns true for residue types building polymers.
func (rt *ResidueType) IsPolymer() bool {
	return rt.IsProtein() || rt.IsNucleic()
}

// IsWater returns true for solvent.
func (rt *ResidueType) IsWater() bool {
	return rt.MoleculeType == types.WaterType
}

// IsIon returns true for ions.
func (rt *ResidueType) IsIon() bool {
	return rt.MoleculeType == types.IonType
}

// IsSaccharide returns true for sugars.
func (rt *ResidueType) IsSaccharide() bool {
	return rt.MoleculeType == types.SaccharideType
}

// IsCg returns true if residue type is coarse-grained.
func (rt *ResidueType) IsCg() bool {
	return rt.resolvedBackboneType().IsCg()
}

// HasBackbone returns true if residue type forms a backbone at any position.
func (rt *ResidueType) HasBackbone() bool {
	return rt.BackboneType != types.UnknownBackboneType ||
		rt.StartBackboneType != types.UnknownBackboneType ||
		rt.EndBackboneType != types.UnknownBackboneType
}

// NewResidueTypeTable creates new residue type table.
func NewResidueTypeTable(atomTypes *AtomTypeTable) *ResidueTypeTable {
	return &ResidueTypeTable{
		atomTypes: atomTypes,
		ids:       index.New[residueTypeKey, types.ResidueTypeID](),
		digest:    xxhash.New(),
	}
}

// residueTypeKey identifies residue type by its name and the digest of hetero flag and atom types.
type residueTypeKey struct {
	Name   [8]byte
	Digest uint64
}

var heteroFlags = [2][]byte{{0}, {1}}

// ResidueTypeTable interns residue types.
type ResidueTypeTable struct {
	atomTypes *AtomTypeTable
	ids       *index.Map[residueTypeKey, types.ResidueTypeID]
	digest    hash.Hash64
	records   []ResidueType
}

// Len returns the number of interned residue types.
func (t *ResidueTypeTable) Len() int {
	return len(t.records)
}

// Add returns the id of the residue type, creating and classifying it if it does not exist yet.
func (t *ResidueTypeTable) Add(
	name string,
	atomTypeIDs []types.AtomTypeID,
	hetero bool,
) (types.ResidueTypeID, error) {
	var key residueTypeKey
	if len(name) > len(key.Name) {
		return 0, errors.Errorf("residue name %q is longer than %d bytes", name, len(key.Name))
	}
	copy(key.Name[:], name)
	key.Digest = t.digestOf(atomTypeIDs, hetero)

	if id, exists := t.ids.Get(key); exists {
		if r := &t.records[id]; r.Hetero != hetero || !slices.Equal(r.AtomTypeIDs, atomTypeIDs) {
			return 0, errors.Errorf("digest collision between residue types %q", name)
		}
		return id, nil
	}

	if len(t.records) >= maxTypes {
		return 0, errors.Errorf("too many residue types, limit is %d", maxTypes)
	}

	for _, atID := range atomTypeIDs {
		if int(atID) >= t.atomTypes.Len() {
			return 0, errors.Errorf("atom type %d does not exist", atID)
		}
	}

	id := types.ResidueTypeID(len(t.records))
	t.records = append(t.records, t.newResidueType(name, slices.Clone(atomTypeIDs), hetero))
	t.ids.Set(key, id)

	return id, nil
}

func (t *ResidueTypeTable) digestOf(atomTypeIDs []types.AtomTypeID, hetero bool) uint64 {
	t.digest.Reset()
	flag := heteroFlags[0]
	if hetero {
		flag = heteroFlags[1]
	}
	_, _ = t.digest.Write(flag)
	if len(atomTypeIDs) > 0 {
		_, _ = t.digest.Write(photon.SliceFromPointer[byte](unsafe.Pointer(unsafe.SliceData(atomTypeIDs)),
			len(atomTypeIDs)*int(unsafe.Sizeof(atomTypeIDs[0]))))
	}
	return t.digest.Sum64()
}

// Get returns the residue type. Returned record must not be modified.
func (t *ResidueTypeTable) Get(id types.ResidueTypeID) *ResidueType {
	return &t.records[id]
}

func (t *ResidueTypeTable) newResidueType(name string, atomTypeIDs []types.AtomTypeID, hetero bool) ResidueType {
	atomNames := make(map[string]int, len(atomTypeIDs))
	for i, atID := range atomTypeIDs {
		if _, exists := atomNames[t.atomTypes.Get(atID).Name]; !exists {
			atomNames[t.atomTypes.Get(atID).Name] = i
		}
	}

	rt := ResidueType{
		Name:                   name,
		AtomTypeIDs:            atomTypeIDs,
		Hetero:                 hetero,
		MoleculeType:           moleculeType(name, atomNames),
		TraceAtomIndex:         types.NoIndex,
		Direction1AtomIndex:    types.NoIndex,
		Direction2AtomIndex:    types.NoIndex,
		BackboneStartAtomIndex: types.NoIndex,
		BackboneEndAtomIndex:   types.NoIndex,
		backbone:               make([]bool, len(atomTypeIDs)),
	}

	rt.BackboneType = backboneType(rt.MoleculeType, types.PositionMiddle, atomNames)
	rt.StartBackboneType = backboneType(rt.MoleculeType, types.PositionStart, atomNames)
	rt.EndBackboneType = backboneType(rt.MoleculeType, types.PositionEnd, atomNames)

	if bt := rt.resolvedBackboneType(); bt != types.UnknownBackboneType {
		names := chem.BackboneAtoms(bt)
		rt.TraceAtomIndex = firstIndex(names.Trace, atomNames)
		rt.Direction1AtomIndex = firstIndex(names.Direction1, atomNames)
		rt.Direction2AtomIndex = firstIndex(names.Direction2, atomNames)
		rt.BackboneStartAtomIndex = firstIndex(names.BackboneStart, atomNames)
		rt.BackboneEndAtomIndex = firstIndex(names.BackboneEnd, atomNames)
	}

	var backboneNames chem.NameSet
	switch {
	case rt.IsProtein():
		backboneNames = chem.ProteinBackboneAtoms
	case rt.IsNucleic():
		backboneNames = chem.NucleicBackboneAtoms
	}
	if backboneNames != nil {
		for i, atID := range atomTypeIDs {
			rt.backbone[i] = backboneNames.Contains(t.atomTypes.Get(atID).Name)
		}
	}

	return rt
}

func (rt *ResidueType) resolvedBackboneType() types.BackboneType {
	switch {
	case rt.BackboneType != types.UnknownBackboneType:
		return rt.BackboneType
	case rt.StartBackboneType != types.UnknownBackboneType:
		return rt.StartBackboneType
	default:
		return rt.EndBackboneType
	}
}

func moleculeType(name string, atomNames map[string]int) types.MoleculeType {
	switch {
	case chem.WaterNames.Contains(name):
		return types.WaterType
	case chem.IonNames.Contains(name):
		return types.IonType
	case chem.RnaNames.Contains(name):
		return types.RnaType
	case chem.DnaNames.Contains(name):
		return types.DnaType
	case chem.ProteinNames.Contains(name) || hasAll(atomNames, "CA", "C", "N"):
		return types.ProteinType
	case chem.SaccharideNames.Contains(name):
		return types.SaccharideType
	default:
		return types.UnknownType
	}
}

var backboneCandidates = map[types.MoleculeType][]types.BackboneType{
	types.ProteinType: {types.ProteinBackboneType, types.CgProteinBackboneType},
	types.RnaType:     {types.RnaBackboneType, types.CgRnaBackboneType},
	types.DnaType:     {types.DnaBackboneType, types.CgDnaBackboneType},
}

func backboneType(mt types.MoleculeType, position types.Position, atomNames map[string]int) types.BackboneType {
	for _, bt := range backboneCandidates[mt] {
		if hasBackboneAtoms(bt, position, atomNames) {
			return bt
		}
	}
	return types.UnknownBackboneType
}

func hasBackboneAtoms(bt types.BackboneType, position types.Position, atomNames map[string]int) bool {
	names := chem.BackboneAtoms(bt)
	required := [][]string{names.Trace, names.Direction1, names.Direction2}
	switch position {
	case types.PositionStart:
		required = append(required, names.BackboneEnd)
	case types.PositionEnd:
		required = append(required, names.BackboneStart)
	}
	for _, candidates := range required {
		if len(candidates) > 0 && firstIndex(candidates, atomNames) == types.NoIndex {
			return false
		}
	}
	return true
}

func firstIndex(candidates []string, atomNames map[string]int) int {
	for _, n := range candidates {
		if i, exists := atomNames[n]; exists {
			return i
		}
	}
	return types.NoIndex
}

func hasAll(atomNames map[string]int, names ...string) bool {
	for _, n := range names {
		if _, exists := atomNames[n]; !exists {
			return false
		}
	}
	return true
}
