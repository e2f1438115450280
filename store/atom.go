package store

import "github.com/outofforest/molstore/types"

// AtomRow is the plain copy of one atom row.
type AtomRow struct {
	ResidueIndex int
	AtomTypeID   types.AtomTypeID
	X, Y, Z      float32
	Serial       int32
	BFactor      float32
	AltLoc       byte
	Occupancy    float32
}

// NewAtomStore creates new atom store with space for length rows.
func NewAtomStore(length int) *AtomStore {
	s := &AtomStore{}
	s.ResidueIndex = NewField[uint32](&s.Store, "residueIndex", 1)
	s.AtomTypeID = NewField[types.AtomTypeID](&s.Store, "atomTypeId", 1)
	s.X = NewField[float32](&s.Store, "x", 1)
	s.Y = NewField[float32](&s.Store, "y", 1)
	s.Z = NewField[float32](&s.Store, "z", 1)
	s.Serial = NewField[int32](&s.Store, "serial", 1)
	s.BFactor = NewField[float32](&s.Store, "bfactor", 1)
	s.AltLoc = NewField[uint8](&s.Store, "altloc", 1)
	s.Occupancy = NewField[float32](&s.Store, "occupancy", 1)
	if length > 0 {
		s.Resize(length)
	}
	return s
}

// AtomStore stores atoms.
type AtomStore struct {
	Store

	ResidueIndex *Field[uint32]
	AtomTypeID   *Field[types.AtomTypeID]
	X            *Field[float32]
	Y            *Field[float32]
	Z            *Field[float32]
	Serial       *Field[int32]
	BFactor      *Field[float32]
	AltLoc       *Field[uint8]
	Occupancy    *Field[float32]
}

// Add appends the atom and returns its index.
func (s *AtomStore) Add(row AtomRow) int {
	s.GrowIfFull()
	i := s.Count
	s.Set(i, row)
	s.Count++
	return i
}

// Set stores the atom in row i.
func (s *AtomStore) Set(i int, row AtomRow) {
	s.ResidueIndex.Data[i] = uint32(row.ResidueIndex)
	s.AtomTypeID.Data[i] = row.AtomTypeID
	s.X.Data[i] = row.X
	s.Y.Data[i] = row.Y
	s.Z.Data[i] = row.Z
	s.Serial.Data[i] = row.Serial
	s.BFactor.Data[i] = row.BFactor
	s.AltLoc.Data[i] = row.AltLoc
	s.Occupancy.Data[i] = row.Occupancy
}

// Row returns the copy of row i.
func (s *AtomStore) Row(i int) AtomRow {
	return AtomRow{
		ResidueIndex: int(s.ResidueIndex.Data[i]),
		AtomTypeID:   s.AtomTypeID.Data[i],
		X:            s.X.Data[i],
		Y:            s.Y.Data[i],
		Z:            s.Z.Data[i],
		Serial:       s.Serial.Data[i],
		BFactor:      s.BFactor.Data[i],
		AltLoc:       s.AltLoc.Data[i],
		Occupancy:    s.Occupancy.Data[i],
	}
}
