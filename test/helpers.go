package test

import (
	"context"
	"sort"
	"testing"

	"github.com/outofforest/logger"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"

	"github.com/outofforest/molstore"
	"github.com/outofforest/molstore/selection"
)

// NewContext returns context carrying the logger, cancelled when test finishes.
func NewContext(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(logger.WithLogger(context.Background(), logger.New(logger.DefaultConfig)))
	t.Cleanup(cancel)
	return ctx
}

// Atom is the atom of the fixture.
type Atom struct {
	Key  molstore.ResidueKey
	Data molstore.AtomData
}

// Build builds structure from atoms.
func Build(ctx context.Context, t testing.TB, buildBonds bool, atoms ...[]Atom) *molstore.Structure {
	requireT := require.New(t)

	b := molstore.NewBuilder(molstore.BuilderConfig{BuildBonds: buildBonds})
	for _, group := range atoms {
		for _, a := range group {
			requireT.NoError(b.AddAtom(a.Key, a.Data))
		}
	}
	s, err := b.Build(ctx)
	requireT.NoError(err)
	t.Cleanup(s.Dispose)
	return s
}

// Residue generates atoms of the residue placed at origin.
func Residue(key molstore.ResidueKey, origin [3]float32, atoms ...AtomAt) []Atom {
	result := make([]Atom, 0, len(atoms))
	for _, a := range atoms {
		result = append(result, Atom{
			Key: key,
			Data: molstore.AtomData{
				Name:      a.Name,
				X:         origin[0] + a.Offset[0],
				Y:         origin[1] + a.Offset[1],
				Z:         origin[2] + a.Offset[2],
				Occupancy: 1,
			},
		})
	}
	return result
}

// AtomAt is the atom name with its offset from the residue origin.
type AtomAt struct {
	Name   string
	Offset [3]float32
}

// Backbone atoms of amino acid with N at origin, peptide bond to N of the next residue placed 3.6 A along X.
var (
	N  = AtomAt{Name: "N"}
	CA = AtomAt{Name: "CA", Offset: [3]float32{1.0, 1.06, 0}}
	C  = AtomAt{Name: "C", Offset: [3]float32{2.3, 0.27, 0}}
	O  = AtomAt{Name: "O", Offset: [3]float32{1.8, -0.85, 0}}
	CB = AtomAt{Name: "CB", Offset: [3]float32{1.0, 1.06, 1.53}}
	OG = AtomAt{Name: "OG", Offset: [3]float32{1.0, 1.06, 2.95}}
	H  = AtomAt{Name: "H", Offset: [3]float32{0, -1.01, 0}}
)

// ResidueSpacing is the distance between N atoms of consecutive residues.
const ResidueSpacing = 3.6

// Tripeptide returns GLY1, ALA2 and SER3 bonded consecutively in chain A.
func Tripeptide() []Atom {
	key := func(resName string, resNo int32) molstore.ResidueKey {
		return molstore.ResidueKey{ChainName: "A", ResName: resName, ResNo: resNo}
	}

	var atoms []Atom
	atoms = append(atoms, Residue(key("GLY", 1), [3]float32{0, 0, 0}, N, CA, C, O)...)
	atoms = append(atoms, Residue(key("ALA", 2), [3]float32{ResidueSpacing, 0, 0}, N, CA, C, O, CB, H)...)
	atoms = append(atoms, Residue(key("SER", 3), [3]float32{2 * ResidueSpacing, 0, 0}, N, CA, C, O, CB, OG)...)
	return atoms
}

// WaterAndIon returns HOH and NA residues in chain W.
func WaterAndIon() []Atom {
	var atoms []Atom
	atoms = append(atoms, Residue(molstore.ResidueKey{ChainName: "W", ResName: "HOH", ResNo: 1, Hetero: true},
		[3]float32{0, 0, 0},
		AtomAt{Name: "O"},
		AtomAt{Name: "H1", Offset: [3]float32{0.96, 0, 0}},
		AtomAt{Name: "H2", Offset: [3]float32{-0.24, 0.93, 0}},
	)...)
	atoms = append(atoms, Residue(molstore.ResidueKey{ChainName: "W", ResName: "NA", ResNo: 2, Hetero: true},
		[3]float32{10, 0, 0},
		AtomAt{Name: "NA"},
	)...)
	return atoms
}

// Ligand returns hetero residue LIG of ten carbon atoms placed 5 A apart.
func Ligand() []Atom {
	atoms := make([]AtomAt, 0, 10)
	for i := range 10 {
		atoms = append(atoms, AtomAt{Name: "C" + string(rune('0'+i)), Offset: [3]float32{5 * float32(i), 0, 0}})
	}
	return Residue(molstore.ResidueKey{ChainName: "L", ResName: "LIG", ResNo: 1, Hetero: true},
		[3]float32{0, 0, 0}, atoms...)
}

// TraceAndFullResidue returns CA-only ALA1 followed by GLY2 with N placed at the distance from CA.
func TraceAndFullResidue(distance float32) []Atom {
	var atoms []Atom
	atoms = append(atoms, Residue(molstore.ResidueKey{ChainName: "A", ResName: "ALA", ResNo: 1},
		[3]float32{0, 0, 0}, AtomAt{Name: "CA"})...)
	atoms = append(atoms, Residue(molstore.ResidueKey{ChainName: "A", ResName: "GLY", ResNo: 2},
		[3]float32{distance, 0, 0}, N, CA, C, O)...)
	return atoms
}

// CyclicTrace returns four CA-only residues placed in the corners of 3.8 A square.
func CyclicTrace() []Atom {
	corners := [][3]float32{{0, 0, 0}, {3.8, 0, 0}, {3.8, 3.8, 0}, {0, 3.8, 0}}
	var atoms []Atom
	for i, corner := range corners {
		atoms = append(atoms, Residue(molstore.ResidueKey{ChainName: "C", ResName: "ALA", ResNo: int32(i + 1)},
			corner, AtomAt{Name: "CA"})...)
	}
	return atoms
}

// InModel moves atoms to the model.
func InModel(model int, atoms []Atom) []Atom {
	result := make([]Atom, 0, len(atoms))
	for _, a := range atoms {
		a.Key.Model = model
		result = append(result, a)
	}
	return result
}

// CollectAtomIndices collects indices of atoms selected by the selection.
func CollectAtomIndices(s *molstore.Structure, sel string) []int {
	indices := []int{}
	s.EachAtom(func(a *molstore.Atom) {
		indices = append(indices, a.Index())
	}, selectionOf(sel))
	return indices
}

// CollectResNos collects residue numbers of residues selected by the selection.
func CollectResNos(s *molstore.Structure, sel string) []int32 {
	resNos := []int32{}
	s.EachResidue(func(r *molstore.Residue) {
		resNos = append(resNos, r.ResNo())
	}, selectionOf(sel))
	return resNos
}

func selectionOf(str string) *selection.Selection {
	if str == "" {
		return nil
	}
	return selection.New(str)
}

// Sorted returns sorted copy of values.
func Sorted[T constraints.Ordered](values []T) []T {
	result := append([]T{}, values...)
	sort.Slice(result, func(i, j int) bool {
		return result[i] < result[j]
	})
	return result
}
