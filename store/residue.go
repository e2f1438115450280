package store

import "github.com/outofforest/molstore/types"

// ResidueRow is the plain copy of one residue row.
type ResidueRow struct {
	ChainIndex    int
	AtomOffset    int
	AtomCount     int
	ResidueTypeID types.ResidueTypeID
	ResNo         int32
	SStruc        byte
	InsCode       byte
}

// NewResidueStore creates new residue store with space for length rows.
func NewResidueStore(length int) *ResidueStore {
	s := &ResidueStore{}
	s.ChainIndex = NewField[uint32](&s.Store, "chainIndex", 1)
	s.AtomOffset = NewField[uint32](&s.Store, "atomOffset", 1)
	s.AtomCount = NewField[uint32](&s.Store, "atomCount", 1)
	s.ResidueTypeID = NewField[types.ResidueTypeID](&s.Store, "residueTypeId", 1)
	s.ResNo = NewField[int32](&s.Store, "resno", 1)
	s.SStruc = NewField[uint8](&s.Store, "sstruc", 1)
	s.InsCode = NewField[uint8](&s.Store, "inscode", 1)
	if length > 0 {
		s.Resize(length)
	}
	return s
}

// ResidueStore stores residues.
type ResidueStore struct {
	Store

	ChainIndex    *Field[uint32]
	AtomOffset    *Field[uint32]
	AtomCount     *Field[uint32]
	ResidueTypeID *Field[types.ResidueTypeID]
	ResNo         *Field[int32]
	SStruc        *Field[uint8]
	InsCode       *Field[uint8]
}

// Add appends the residue and returns its index.
func (s *ResidueStore) Add(row ResidueRow) int {
	s.GrowIfFull()
	i := s.Count
	s.Set(i, row)
	s.Count++
	return i
}

// Set stores the residue in row i.
func (s *ResidueStore) Set(i int, row ResidueRow) {
	s.ChainIndex.Data[i] = uint32(row.ChainIndex)
	s.AtomOffset.Data[i] = uint32(row.AtomOffset)
	s.AtomCount.Data[i] = uint32(row.AtomCount)
	s.ResidueTypeID.Data[i] = row.ResidueTypeID
	s.ResNo.Data[i] = row.ResNo
	s.SStruc.Data[i] = row.SStruc
	s.InsCode.Data[i] = row.InsCode
}

// Row returns the copy of row i.
func (s *ResidueStore) Row(i int) ResidueRow {
	return ResidueRow{
		ChainIndex:    int(s.ChainIndex.Data[i]),
		AtomOffset:    int(s.AtomOffset.Data[i]),
		AtomCount:     int(s.AtomCount.Data[i]),
		ResidueTypeID: s.ResidueTypeID.Data[i],
		ResNo:         s.ResNo.Data[i],
		SStruc:        s.SStruc.Data[i],
		InsCode:       s.InsCode.Data[i],
	}
}
