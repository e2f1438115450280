package intern

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/outofforest/molstore/chem"
	"github.com/outofforest/molstore/index"
	"github.com/outofforest/molstore/types"
)

const maxTypes = 1 << 16

// AtomType is the interned (atom name, element) pair.
type AtomType struct {
	Name           string
	Element        string
	CovalentRadius float32
	IsMetal        bool
	IsHydrogen     bool
	IsPolarHeavy   bool
}

// NewAtomTypeTable creates new atom type table.
func NewAtomTypeTable() *AtomTypeTable {
	return &AtomTypeTable{
		ids: index.New[atomTypeKey, types.AtomTypeID](),
	}
}

type atomTypeKey struct {
	Name    [8]byte
	Element [4]byte
}

// AtomTypeTable interns atom types.
type AtomTypeTable struct {
	ids     *index.Map[atomTypeKey, types.AtomTypeID]
	records []AtomType
}

// Len returns the number of interned atom types.
func (t *AtomTypeTable) Len() int {
	return len(t.records)
}

// Add returns the id of the atom type, creating it if it does not exist yet.
// Element is upper-cased.
func (t *AtomTypeTable) Add(name, element string) (types.AtomTypeID, error) {
	element = strings.ToUpper(element)

	var key atomTypeKey
	if len(name) > len(key.Name) {
		return 0, errors.Errorf("atom name %q is longer than %d bytes", name, len(key.Name))
	}
	if len(element) > len(key.Element) {
		return 0, errors.Errorf("element %q is longer than %d bytes", element, len(key.Element))
	}
	copy(key.Name[:], name)
	copy(key.Element[:], element)

	if id, exists := t.ids.Get(key); exists {
		return id, nil
	}

	if len(t.records) >= maxTypes {
		return 0, errors.Errorf("too many atom types, limit is %d", maxTypes)
	}

	id := types.AtomTypeID(len(t.records))
	t.records = append(t.records, AtomType{
		Name:           name,
		Element:        element,
		CovalentRadius: chem.CovalentRadius(element),
		IsMetal:        chem.IsMetal(element),
		IsHydrogen:     chem.IsHydrogen(element),
		IsPolarHeavy:   chem.IsPolarHeavy(element),
	})
	t.ids.Set(key, id)

	return id, nil
}

// Get returns the atom type. Returned record must not be modified.
func (t *AtomTypeTable) Get(id types.AtomTypeID) *AtomType {
	return &t.records[id]
}
