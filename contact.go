package molstore

import (
	"math"

	"github.com/outofforest/molstore/selection"
	"github.com/outofforest/molstore/store"
)

type cell [3]int32

// FindContacts returns pairs of selected atoms from different residues closer than maxDistance.
// Contacts are ordered by atom indices.
func (s *Structure) FindContacts(sel *selection.Selection, maxDistance float32) *store.ContactStore {
	contacts := store.NewContactStore(0)
	if maxDistance <= 0 {
		return contacts
	}

	indices := s.AtomIndices(sel)
	grid := map[cell][]int{}
	a := &Atom{s: s}
	for _, ai := range indices {
		a.index = ai
		c := gridCell(a, maxDistance)
		grid[c] = append(grid[c], ai)
	}

	maxDistSq := maxDistance * maxDistance
	b := &Atom{s: s}
	for _, ai := range indices {
		a.index = ai
		c := gridCell(a, maxDistance)
		residueIndex := a.ResidueIndex()
		for dx := int32(-1); dx <= 1; dx++ {
			for dy := int32(-1); dy <= 1; dy++ {
				for dz := int32(-1); dz <= 1; dz++ {
					for _, bi := range grid[cell{c[0] + dx, c[1] + dy, c[2] + dz}] {
						if bi <= ai {
							continue
						}
						b.index = bi
						if b.ResidueIndex() == residueIndex || a.DistanceSquared(b) > maxDistSq {
							continue
						}
						contacts.Add(store.ContactRow{Index1: ai, Index2: bi, Type: contactType(a, b)})
					}
				}
			}
		}
	}

	contacts.Sort(contacts.Compare)
	return contacts
}

func gridCell(a *Atom, size float32) cell {
	return cell{
		int32(math.Floor(float64(a.X() / size))),
		int32(math.Floor(float64(a.Y() / size))),
		int32(math.Floor(float64(a.Z() / size))),
	}
}

func contactType(a, b *Atom) store.ContactType {
	switch {
	case a.IsMetal() || b.IsMetal():
		return store.MetalContact
	case isDonorAcceptor(a) && isDonorAcceptor(b):
		return store.HydrogenBondContact
	default:
		return store.UnknownContact
	}
}

func isDonorAcceptor(a *Atom) bool {
	e := a.Element()
	return e == "N" || e == "O"
}
