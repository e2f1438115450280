package store

import (
	"github.com/stretchr/testify/require"
)

// CheckedStore wraps the store to verify row access in tests.
type CheckedStore struct {
	t require.TestingT
	s *Store
}

// NewCheckedStore creates checked view of the store.
func NewCheckedStore(t require.TestingT, s *Store) *CheckedStore {
	return &CheckedStore{t: t, s: s}
}

// CheckRow fails the test if row i is not valid.
func (cs *CheckedStore) CheckRow(i int) bool {
	if i < 0 || i >= cs.s.Count {
		require.Failf(cs.t, "row out of range", "row %d, count %d", i, cs.s.Count)
		return false
	}
	return true
}

// CheckedRow returns row of the field after verifying it is valid. Nil is returned if it is not.
func CheckedRow[T Number](cs *CheckedStore, f *Field[T], i int) []T {
	if !cs.CheckRow(i) {
		return nil
	}
	return f.Row(i)
}
