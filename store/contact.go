package store

// ContactType classifies contacts between atoms.
type ContactType uint8

const (
	// UnknownContact is the contact detected by distance only.
	UnknownContact ContactType = iota

	// HydrogenBondContact is the contact between polar heavy atoms.
	HydrogenBondContact

	// MetalContact is the contact involving a metal atom.
	MetalContact
)

// ContactRow is the plain copy of one contact row.
type ContactRow struct {
	Index1 int
	Index2 int
	Type   ContactType
}

// NewContactStore creates new contact store with space for length rows.
func NewContactStore(length int) *ContactStore {
	s := &ContactStore{}
	s.Index1 = NewField[uint32](&s.Store, "index1", 1)
	s.Index2 = NewField[uint32](&s.Store, "index2", 1)
	s.Type = NewField[ContactType](&s.Store, "type", 1)
	if length > 0 {
		s.Resize(length)
	}
	return s
}

// ContactStore stores contacts between atoms.
type ContactStore struct {
	Store

	Index1 *Field[uint32]
	Index2 *Field[uint32]
	Type   *Field[ContactType]
}

// Add appends the contact and returns its index.
func (s *ContactStore) Add(row ContactRow) int {
	s.GrowIfFull()
	i := s.Count
	s.Index1.Data[i] = uint32(row.Index1)
	s.Index2.Data[i] = uint32(row.Index2)
	s.Type.Data[i] = row.Type
	s.Count++
	return i
}

// Row returns the copy of row i.
func (s *ContactStore) Row(i int) ContactRow {
	return ContactRow{
		Index1: int(s.Index1.Data[i]),
		Index2: int(s.Index2.Data[i]),
		Type:   s.Type.Data[i],
	}
}

// Compare orders contacts by atom indices.
func (s *ContactStore) Compare(i, j int) int {
	if d := int(s.Index1.Data[i]) - int(s.Index1.Data[j]); d != 0 {
		return d
	}
	return int(s.Index2.Data[i]) - int(s.Index2.Data[j])
}
