package store

// ModelRow is the plain copy of one model row.
type ModelRow struct {
	ChainOffset int
	ChainCount  int
}

// NewModelStore creates new model store with space for length rows.
func NewModelStore(length int) *ModelStore {
	s := &ModelStore{}
	s.ChainOffset = NewField[uint32](&s.Store, "chainOffset", 1)
	s.ChainCount = NewField[uint32](&s.Store, "chainCount", 1)
	if length > 0 {
		s.Resize(length)
	}
	return s
}

// ModelStore stores models.
type ModelStore struct {
	Store

	ChainOffset *Field[uint32]
	ChainCount  *Field[uint32]
}

// Add appends the model and returns its index.
func (s *ModelStore) Add(row ModelRow) int {
	s.GrowIfFull()
	i := s.Count
	s.Set(i, row)
	s.Count++
	return i
}

// Set stores the model in row i.
func (s *ModelStore) Set(i int, row ModelRow) {
	s.ChainOffset.Data[i] = uint32(row.ChainOffset)
	s.ChainCount.Data[i] = uint32(row.ChainCount)
}

// Row returns the copy of row i.
func (s *ModelStore) Row(i int) ModelRow {
	return ModelRow{
		ChainOffset: int(s.ChainOffset.Data[i]),
		ChainCount:  int(s.ChainCount.Data[i]),
	}
}
