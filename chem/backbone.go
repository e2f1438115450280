package chem

import "github.com/outofforest/molstore/types"

// BackboneAtomNames lists candidate names of special backbone atoms for one backbone type.
// Empty list means the backbone type does not define that atom.
type BackboneAtomNames struct {
	Trace         []string
	Direction1    []string
	Direction2    []string
	BackboneStart []string
	BackboneEnd   []string
}

var (
	nucleicBackbone = BackboneAtomNames{
		Trace:         []string{"C4'", "C4*"},
		Direction1:    []string{"C1'", "C1*"},
		Direction2:    []string{"C3'", "C3*", "O3'", "O3*"},
		BackboneStart: []string{"P"},
		BackboneEnd:   []string{"O3'", "O3*"},
	}
	cgNucleicBackbone = BackboneAtomNames{
		Trace:         []string{"C4'", "C4*", "P"},
		BackboneStart: []string{"C4'", "C4*", "P"},
		BackboneEnd:   []string{"C4'", "C4*", "P"},
	}
)

var backboneAtomNames = map[types.BackboneType]BackboneAtomNames{
	types.ProteinBackboneType: {
		Trace:         []string{"CA"},
		Direction1:    []string{"C"},
		Direction2:    []string{"O", "OC1", "O1", "OX1", "OXT", "OT1", "OT"},
		BackboneStart: []string{"N"},
		BackboneEnd:   []string{"C"},
	},
	types.RnaBackboneType: nucleicBackbone,
	types.DnaBackboneType: nucleicBackbone,
	types.CgProteinBackboneType: {
		Trace:         []string{"CA", "BB"},
		BackboneStart: []string{"CA", "BB"},
		BackboneEnd:   []string{"CA", "BB"},
	},
	types.CgRnaBackboneType: cgNucleicBackbone,
	types.CgDnaBackboneType: cgNucleicBackbone,
}

// BackboneAtoms returns candidate names of special backbone atoms.
func BackboneAtoms(bt types.BackboneType) BackboneAtomNames {
	return backboneAtomNames[bt]
}
