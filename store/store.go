package store

import (
	"math"
)

const minLength = 256

// Number lists the element types allowed in store fields.
type Number interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~float32 | ~float64
}

type column interface {
	Name() string
	resize(length int)
	copyWithin(dst, src, n int)
	copyFrom(src column, dst, srcOffset, n int)
	scratch() column
	dispose()
}

// Store is the columnar table. Each field is one array holding a fixed number of items per row.
// Rows [0, Count) are valid, rows [Count, Length) are allocated but unused.
type Store struct {
	Count  int
	Length int

	fields []column
}

// NewField creates new field and registers it in the store.
// Fields must be registered before the store is resized for the first time.
func NewField[T Number](s *Store, name string, width int) *Field[T] {
	f := &Field[T]{
		name:  name,
		Width: width,
	}
	if s.Length > 0 {
		f.resize(s.Length)
	}
	s.fields = append(s.fields, f)
	return f
}

// Fields returns the names of fields in registration order.
func (s *Store) Fields() []string {
	names := make([]string, 0, len(s.fields))
	for _, f := range s.fields {
		names = append(names, f.Name())
	}
	return names
}

// Resize reallocates every field to hold length rows, preserving the overlapping prefix.
func (s *Store) Resize(length int) {
	for _, f := range s.fields {
		f.resize(length)
	}
	s.Length = length
	if s.Count > length {
		s.Count = length
	}
}

// GrowIfFull grows the store by 1.5 times (but to at least 256 rows) if there is no free row.
func (s *Store) GrowIfFull() bool {
	if s.Count < s.Length {
		return false
	}
	s.Resize(max(minLength, int(math.Round(float64(s.Length)*1.5))))
	return true
}

// CopyFrom copies n rows of other store, starting at otherOffset, into this store at thisOffset.
// Both stores must have the same field layout.
func (s *Store) CopyFrom(other *Store, thisOffset, otherOffset, n int) {
	for i, f := range s.fields {
		f.copyFrom(other.fields[i], thisOffset, otherOffset, n)
	}
}

// CopyWithin copies n rows starting at src to dst. Ranges may overlap.
func (s *Store) CopyWithin(dst, src, n int) {
	for _, f := range s.fields {
		f.copyWithin(dst, src, n)
	}
}

// Sort sorts valid rows in place. cmp returns negative value if row i goes before row j.
func (s *Store) Sort(cmp func(i, j int) int) {
	if s.Count < 2 {
		return
	}

	scratch := s.scratch()
	s.quicksort(0, s.Count-1, cmp, scratch)
}

// swap swaps two rows using the scratch store of one row.
func (s *Store) swap(i, j int, scratch *Store) {
	scratch.CopyFrom(s, 0, i, 1)
	s.CopyWithin(i, j, 1)
	s.CopyFrom(scratch, j, 0, 1)
}

func (s *Store) quicksort(lo, hi int, cmp func(i, j int) int, scratch *Store) {
	for lo < hi {
		if mid := lo + (hi-lo)/2; mid != hi {
			s.swap(mid, hi, scratch)
		}

		// Pivot is kept at hi, rows in [lo, p) are smaller than the pivot.
		p := lo
		for j := lo; j < hi; j++ {
			if cmp(j, hi) < 0 {
				if j != p {
					s.swap(j, p, scratch)
				}
				p++
			}
		}
		if p != hi {
			s.swap(p, hi, scratch)
		}

		if p-lo < hi-p {
			s.quicksort(lo, p-1, cmp, scratch)
			lo = p + 1
		} else {
			s.quicksort(p+1, hi, cmp, scratch)
			hi = p - 1
		}
	}
}

// Clear marks all the rows as invalid without releasing memory.
func (s *Store) Clear() {
	s.Count = 0
}

// Dispose releases all the field arrays.
func (s *Store) Dispose() {
	for _, f := range s.fields {
		f.dispose()
	}
	s.Count = 0
	s.Length = 0
}

func (s *Store) scratch() *Store {
	scratch := &Store{
		Count:  1,
		Length: 1,
		fields: make([]column, 0, len(s.fields)),
	}
	for _, f := range s.fields {
		scratch.fields = append(scratch.fields, f.scratch())
	}
	return scratch
}

// Field is a named column of the store. Row i occupies Data[i*Width:(i+1)*Width].
type Field[T Number] struct {
	name  string
	Width int
	Data  []T
}

// Name returns the name of the field.
func (f *Field[T]) Name() string {
	return f.name
}

// Row returns items stored for the row.
func (f *Field[T]) Row(i int) []T {
	return f.Data[i*f.Width : (i+1)*f.Width]
}

func (f *Field[T]) resize(length int) {
	data := make([]T, length*f.Width)
	copy(data, f.Data)
	f.Data = data
}

func (f *Field[T]) copyWithin(dst, src, n int) {
	copy(f.Data[dst*f.Width:(dst+n)*f.Width], f.Data[src*f.Width:(src+n)*f.Width])
}

func (f *Field[T]) copyFrom(src column, dst, srcOffset, n int) {
	s := src.(*Field[T])
	copy(f.Data[dst*f.Width:(dst+n)*f.Width], s.Data[srcOffset*f.Width:(srcOffset+n)*f.Width])
}

func (f *Field[T]) scratch() column {
	return &Field[T]{
		name:  f.name,
		Width: f.Width,
		Data:  make([]T, f.Width),
	}
}

func (f *Field[T]) dispose() {
	f.Data = nil
}
