package selection

import (
	"slices"
	"sort"
)

// Result is the tri-state outcome of the selection test.
type Result uint8

const (
	// False means proxy is not selected.
	False Result = iota

	// True means proxy is selected.
	True

	// Inapplicable means the test cannot be decided at the level of the proxy.
	Inapplicable
)

func (r Result) String() string {
	switch r {
	case False:
		return "false"
	case True:
		return "true"
	default:
		return "inapplicable"
	}
}

// Test is the compiled selection test.
type Test[P any] func(p P) Result

// Model is the model as seen by selection tests.
type Model interface {
	Index() int
	AtomOffset() int
	AtomCount() int
}

// Chain is the chain as seen by selection tests.
type Chain interface {
	ChainNameEquals(name string) bool
	ModelIndex() int
	AtomOffset() int
	AtomCount() int
}

// Residue is the residue as seen by selection tests.
type Residue interface {
	residueFields

	AtomOffset() int
	AtomCount() int
}

type residueFields interface {
	ChainNameEquals(name string) bool
	ModelIndex() int
	ResName() string
	ResNo() int32
	InsCode() byte
	IsProtein() bool
	IsNucleic() bool
	IsRna() bool
	IsDna() bool
	IsPolymer() bool
	IsWater() bool
	IsIon() bool
	IsSaccharide() bool
	IsHetero() bool
	IsHelix() bool
	IsSheet() bool
	IsTurn() bool
}

// Atom is the atom as seen by selection tests.
type Atom interface {
	residueFields

	Index() int
	AtomName() string
	Element() string
	AltLoc() byte
	IsBackbone() bool
	IsSidechain() bool
	IsBonded() bool
	IsMetal() bool
	IsPolarHydrogen() bool
}

// CompileAtom compiles rule into the atom test.
func CompileAtom(rule *Rule) Test[Atom] {
	return compile(rule, atomLevel, false, testAtom)
}

// CompileResidue compiles rule into the residue test.
// If levelOnly is true, subtrees which can't be judged at residue level are not evaluated.
func CompileResidue(rule *Rule, levelOnly bool) Test[Residue] {
	return compile(rule, residueLevel, levelOnly, testResidue)
}

// CompileChain compiles rule into the chain test.
// If levelOnly is true, subtrees which can't be judged at chain level are not evaluated.
func CompileChain(rule *Rule, levelOnly bool) Test[Chain] {
	return compile(rule, chainLevel, levelOnly, testChain)
}

// CompileModel compiles rule into the model test.
// If levelOnly is true, subtrees which can't be judged at model level are not evaluated.
func CompileModel(rule *Rule, levelOnly bool) Test[Model] {
	return compile(rule, modelLevel, levelOnly, testModel)
}

type level uint8

const (
	atomLevel level = iota
	residueLevel
	chainLevel
	modelLevel
)

// judges returns true if leaf may be decided at the level.
func judges(l level, r *Rule) bool {
	switch l {
	case atomLevel:
		return true
	case residueLevel:
		switch r.Kind {
		case KeywordKind:
			switch r.Keyword {
			case Backbone, Sidechain, Bonded, Metal, PolarH:
				return false
			default:
				return true
			}
		case AtomNameKind, ElementKind, AltLocKind:
			return false
		default:
			return true
		}
	case chainLevel:
		switch r.Kind {
		case ChainNameKind, ModelKind, AtomIndexKind:
			return true
		case KeywordKind:
			return r.Keyword == All
		default:
			return false
		}
	default:
		switch r.Kind {
		case ModelKind, AtomIndexKind:
			return true
		case KeywordKind:
			return r.Keyword == All
		default:
			return false
		}
	}
}

// judgeable returns true if any leaf of the rule may be decided at the level.
func judgeable(l level, r *Rule) bool {
	if r.IsLeaf() {
		return judges(l, r)
	}
	if len(r.Rules) == 0 {
		return true
	}
	return slices.ContainsFunc(r.Rules, func(child *Rule) bool {
		return judgeable(l, child)
	})
}

func compile[P any](rule *Rule, l level, levelOnly bool, leaf func(r *Rule, p P) Result) Test[P] {
	t, f := True, False
	if rule.Negate {
		t, f = False, True
	}

	if rule.IsLeaf() {
		return func(p P) Result {
			switch leaf(rule, p) {
			case True:
				return t
			case False:
				return f
			default:
				return Inapplicable
			}
		}
	}

	if len(rule.Rules) == 0 {
		return func(p P) Result {
			return t
		}
	}

	// Pruned subtrees count as children which are always inapplicable.
	var pruned bool
	children := make([]Test[P], 0, len(rule.Rules))
	for _, child := range rule.Rules {
		if levelOnly && !judgeable(l, child) {
			pruned = true
			continue
		}
		children = append(children, compile(child, l, levelOnly, leaf))
	}

	if rule.Operator == And {
		return func(p P) Result {
			na := pruned
			for _, child := range children {
				switch child(p) {
				case False:
					return f
				case Inapplicable:
					na = true
				}
			}
			if na {
				return Inapplicable
			}
			return t
		}
	}

	return func(p P) Result {
		na := pruned
		for _, child := range children {
			switch child(p) {
			case True:
				return t
			case Inapplicable:
				na = true
			}
		}
		if na {
			return Inapplicable
		}
		return f
	}
}

func boolResult(b bool) Result {
	if b {
		return True
	}
	return False
}

// atomRangeResult returns True if all atoms in the range are listed, False if none is.
func atomRangeResult(indices []int, offset, count int) Result {
	if count == 0 {
		return False
	}
	first := sort.SearchInts(indices, offset)
	last := sort.SearchInts(indices, offset+count)
	switch last - first {
	case 0:
		return False
	case count:
		return True
	default:
		return Inapplicable
	}
}

func testModel(r *Rule, m Model) Result {
	switch r.Kind {
	case KeywordKind:
		if r.Keyword == All {
			return True
		}
	case ModelKind:
		return boolResult(m.Index() == r.Model)
	case AtomIndexKind:
		return atomRangeResult(r.AtomIndices, m.AtomOffset(), m.AtomCount())
	}
	return Inapplicable
}

func testChain(r *Rule, c Chain) Result {
	switch r.Kind {
	case KeywordKind:
		if r.Keyword == All {
			return True
		}
	case ModelKind:
		return boolResult(c.ModelIndex() == r.Model)
	case ChainNameKind:
		return boolResult(c.ChainNameEquals(r.ChainName))
	case AtomIndexKind:
		return atomRangeResult(r.AtomIndices, c.AtomOffset(), c.AtomCount())
	}
	return Inapplicable
}

func testResidue(r *Rule, res Residue) Result {
	if r.Kind == AtomIndexKind {
		return atomRangeResult(r.AtomIndices, res.AtomOffset(), res.AtomCount())
	}
	return testResidueFields(r, res)
}

func testResidueFields(r *Rule, res residueFields) Result {
	switch r.Kind {
	case KeywordKind:
		return testResidueKeyword(r.Keyword, res)
	case ResNameKind:
		return boolResult(slices.Contains(r.ResNames, res.ResName()))
	case ResNoKind:
		resNo := res.ResNo()
		return boolResult(resNo >= r.ResNoStart && resNo <= r.ResNoEnd)
	case InsCodeKind:
		return boolResult(res.InsCode() == r.InsCode)
	case ChainNameKind:
		return boolResult(res.ChainNameEquals(r.ChainName))
	case ModelKind:
		return boolResult(res.ModelIndex() == r.Model)
	}
	return Inapplicable
}

func testResidueKeyword(k Keyword, res residueFields) Result {
	switch k {
	case All:
		return True
	case Protein:
		return boolResult(res.IsProtein())
	case Nucleic:
		return boolResult(res.IsNucleic())
	case Rna:
		return boolResult(res.IsRna())
	case Dna:
		return boolResult(res.IsDna())
	case Polymer:
		return boolResult(res.IsPolymer())
	case Water:
		return boolResult(res.IsWater())
	case Ion:
		return boolResult(res.IsIon())
	case Saccharide:
		return boolResult(res.IsSaccharide())
	case Hetero:
		return boolResult(res.IsHetero())
	case Helix:
		return boolResult(res.IsHelix())
	case Sheet:
		return boolResult(res.IsSheet())
	case Turn:
		return boolResult(res.IsTurn())
	}
	return Inapplicable
}

func testAtom(r *Rule, a Atom) Result {
	switch r.Kind {
	case KeywordKind:
		switch r.Keyword {
		case Backbone:
			return boolResult(a.IsBackbone())
		case Sidechain:
			return boolResult(a.IsSidechain())
		case Bonded:
			return boolResult(a.IsBonded())
		case Metal:
			return boolResult(a.IsMetal())
		case PolarH:
			return boolResult(a.IsPolarHydrogen())
		}
		return testResidueKeyword(r.Keyword, a)
	case AtomIndexKind:
		_, found := slices.BinarySearch(r.AtomIndices, a.Index())
		return boolResult(found)
	case AtomNameKind:
		return boolResult(a.AtomName() == r.AtomName)
	case ElementKind:
		return boolResult(a.Element() == r.Element)
	case AltLocKind:
		return boolResult(a.AltLoc() == r.AltLoc)
	}
	return testResidueFields(r, a)
}
