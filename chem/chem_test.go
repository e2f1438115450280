package chem_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/outofforest/molstore/chem"
	"github.com/outofforest/molstore/types"
)

func TestGuessElement(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal("C", chem.GuessElement("CA", "ALA"))
	requireT.Equal("CA", chem.GuessElement("CA", "CA"))
	requireT.Equal("N", chem.GuessElement(" N  ", "GLY"))
	requireT.Equal("H", chem.GuessElement("1HB", "ALA"))
	requireT.Equal("FE", chem.GuessElement("FE", "HEM"))
	requireT.Equal("F", chem.GuessElement("FEA", "XXX"))
	requireT.Equal("SE", chem.GuessElement("SE", "MSE"))
	requireT.Equal("NA", chem.GuessElement("NA", "NA"))
	requireT.Equal("N", chem.GuessElement("NA", "HEM"))
	requireT.Equal("", chem.GuessElement("12", "ALA"))
}

func TestNormalizeElement(t *testing.T) {
	requireT := require.New(t)

	requireT.Equal("ZN", chem.NormalizeElement("zn", "X", "ALA"))
	requireT.Equal("O", chem.NormalizeElement(" ", "OXT", "ALA"))
}

func TestCovalentRadius(t *testing.T) {
	requireT := require.New(t)

	requireT.InDelta(0.76, chem.CovalentRadius("C"), 1e-6)
	requireT.InDelta(0.71, chem.CovalentRadius("N"), 1e-6)
	requireT.InDelta(chem.DefaultCovalentRadius, chem.CovalentRadius("XX"), 1e-6)
}

func TestElementPredicates(t *testing.T) {
	requireT := require.New(t)

	requireT.True(chem.IsMetal("ZN"))
	requireT.True(chem.IsMetal("NA"))
	requireT.False(chem.IsMetal("C"))
	requireT.True(chem.IsHydrogen("D"))
	requireT.False(chem.IsHydrogen("HG"))
	requireT.True(chem.IsPolarHeavy("S"))
	requireT.False(chem.IsPolarHeavy("C"))
}

func TestNameTables(t *testing.T) {
	requireT := require.New(t)

	requireT.True(chem.WaterNames.Contains("HOH"))
	requireT.True(chem.IonNames.Contains("NA"))
	requireT.True(chem.ProteinNames.Contains("GLY"))
	requireT.True(chem.RnaNames.Contains("U"))
	requireT.True(chem.DnaNames.Contains("DA"))
	requireT.True(chem.SaccharideNames.Contains("NAG"))
	requireT.False(chem.ProteinNames.Contains("HOH"))
	requireT.True(chem.ProteinBackboneAtoms.Contains("OXT"))
	requireT.True(chem.NucleicBackboneAtoms.Contains("O3*"))
}

func TestBackboneAtoms(t *testing.T) {
	requireT := require.New(t)

	protein := chem.BackboneAtoms(types.ProteinBackboneType)
	requireT.Equal([]string{"CA"}, protein.Trace)
	requireT.Equal([]string{"N"}, protein.BackboneStart)
	requireT.Equal([]string{"C"}, protein.BackboneEnd)

	cg := chem.BackboneAtoms(types.CgProteinBackboneType)
	requireT.Empty(cg.Direction1)
	requireT.Equal([]string{"CA", "BB"}, cg.BackboneEnd)

	requireT.Equal(chem.BackboneAtoms(types.RnaBackboneType), chem.BackboneAtoms(types.DnaBackboneType))
	requireT.Empty(chem.BackboneAtoms(types.UnknownBackboneType).Trace)
}
