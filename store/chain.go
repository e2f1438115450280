package store

// CodeLength is the number of bytes reserved for chain name and id.
const CodeLength = 4

// ChainRow is the plain copy of one chain row.
type ChainRow struct {
	EntityIndex   int
	ModelIndex    int
	ResidueOffset int
	ResidueCount  int
	Name          string
	ID            string
}

// NewChainStore creates new chain store with space for length rows.
func NewChainStore(length int) *ChainStore {
	s := &ChainStore{}
	s.EntityIndex = NewField[uint16](&s.Store, "entityIndex", 1)
	s.ModelIndex = NewField[uint16](&s.Store, "modelIndex", 1)
	s.ResidueOffset = NewField[uint32](&s.Store, "residueOffset", 1)
	s.ResidueCount = NewField[uint32](&s.Store, "residueCount", 1)
	s.ChainName = NewField[uint8](&s.Store, "chainname", CodeLength)
	s.ChainID = NewField[uint8](&s.Store, "chainid", CodeLength)
	if length > 0 {
		s.Resize(length)
	}
	return s
}

// ChainStore stores chains.
type ChainStore struct {
	Store

	EntityIndex   *Field[uint16]
	ModelIndex    *Field[uint16]
	ResidueOffset *Field[uint32]
	ResidueCount  *Field[uint32]
	ChainName     *Field[uint8]
	ChainID       *Field[uint8]
}

// Add appends the chain and returns its index.
func (s *ChainStore) Add(row ChainRow) int {
	s.GrowIfFull()
	i := s.Count
	s.Set(i, row)
	s.Count++
	return i
}

// Set stores the chain in row i. Codes longer than 4 bytes are truncated.
func (s *ChainStore) Set(i int, row ChainRow) {
	s.EntityIndex.Data[i] = uint16(row.EntityIndex)
	s.ModelIndex.Data[i] = uint16(row.ModelIndex)
	s.ResidueOffset.Data[i] = uint32(row.ResidueOffset)
	s.ResidueCount.Data[i] = uint32(row.ResidueCount)
	setCode(s.ChainName.Row(i), row.Name)
	setCode(s.ChainID.Row(i), row.ID)
}

// Row returns the copy of row i.
func (s *ChainStore) Row(i int) ChainRow {
	return ChainRow{
		EntityIndex:   int(s.EntityIndex.Data[i]),
		ModelIndex:    int(s.ModelIndex.Data[i]),
		ResidueOffset: int(s.ResidueOffset.Data[i]),
		ResidueCount:  int(s.ResidueCount.Data[i]),
		Name:          s.Name(i),
		ID:            s.ID(i),
	}
}

// Name returns the chain name.
func (s *ChainStore) Name(i int) string {
	return getCode(s.ChainName.Row(i))
}

// ID returns the chain id.
func (s *ChainStore) ID(i int) string {
	return getCode(s.ChainID.Row(i))
}

// NameEquals compares chain name with the string without allocating.
func (s *ChainStore) NameEquals(i int, name string) bool {
	return codeEquals(s.ChainName.Row(i), name)
}

func setCode(dst []uint8, code string) {
	n := copy(dst, code)
	clear(dst[n:])
}

func codeLength(code []uint8) int {
	for i, b := range code {
		if b == 0 {
			return i
		}
	}
	return len(code)
}

func getCode(code []uint8) string {
	return string(code[:codeLength(code)])
}

func codeEquals(code []uint8, s string) bool {
	return string(code[:codeLength(code)]) == s
}
