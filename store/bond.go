package store

// BondRow is the plain copy of one bond row.
type BondRow struct {
	AtomIndex1 int
	AtomIndex2 int
	BondOrder  uint8
}

// NewBondStore creates new bond store with space for length rows.
func NewBondStore(length int) *BondStore {
	s := &BondStore{}
	s.AtomIndex1 = NewField[uint32](&s.Store, "atomIndex1", 1)
	s.AtomIndex2 = NewField[uint32](&s.Store, "atomIndex2", 1)
	s.BondOrder = NewField[uint8](&s.Store, "bondOrder", 1)
	if length > 0 {
		s.Resize(length)
	}
	return s
}

// BondStore stores bonds between atoms.
type BondStore struct {
	Store

	AtomIndex1 *Field[uint32]
	AtomIndex2 *Field[uint32]
	BondOrder  *Field[uint8]
}

// Add appends the bond and returns its index. Atom indices are stored in ascending order.
func (s *BondStore) Add(row BondRow) int {
	if row.AtomIndex1 > row.AtomIndex2 {
		row.AtomIndex1, row.AtomIndex2 = row.AtomIndex2, row.AtomIndex1
	}
	s.GrowIfFull()
	i := s.Count
	s.AtomIndex1.Data[i] = uint32(row.AtomIndex1)
	s.AtomIndex2.Data[i] = uint32(row.AtomIndex2)
	s.BondOrder.Data[i] = row.BondOrder
	s.Count++
	return i
}

// Row returns the copy of row i.
func (s *BondStore) Row(i int) BondRow {
	return BondRow{
		AtomIndex1: int(s.AtomIndex1.Data[i]),
		AtomIndex2: int(s.AtomIndex2.Data[i]),
		BondOrder:  s.BondOrder.Data[i],
	}
}

// Compare orders bonds by first and then second atom index.
func (s *BondStore) Compare(i, j int) int {
	if d := int(s.AtomIndex1.Data[i]) - int(s.AtomIndex1.Data[j]); d != 0 {
		return d
	}
	return int(s.AtomIndex2.Data[i]) - int(s.AtomIndex2.Data[j])
}

// SortAndCompact sorts bonds and removes duplicates keeping the first occurrence.
func (s *BondStore) SortAndCompact() {
	s.Sort(s.Compare)

	if s.Count < 2 {
		return
	}

	n := 1
	for i := 1; i < s.Count; i++ {
		if s.Compare(i, n-1) == 0 {
			continue
		}
		if i != n {
			s.CopyWithin(n, i, 1)
		}
		n++
	}
	s.Count = n
}
