package selection

// New parses and compiles the selection string.
// Malformed string produces selection selecting nothing, the parse error is available through Err.
func New(str string) *Selection {
	s := &Selection{str: str}

	rule, err := Parse(str)
	if err != nil {
		s.err = err
		s.rule = &Rule{}
		s.atomTest = func(Atom) Result { return False }
		s.residueTest = func(Residue) Result { return False }
		s.chainTest = func(Chain) Result { return False }
		s.modelTest = func(Model) Result { return False }
		s.residueOnlyTest = s.residueTest
		s.chainOnlyTest = s.chainTest
		s.modelOnlyTest = s.modelTest
		return s
	}

	s.rule = rule
	s.atomTest = CompileAtom(rule)
	s.residueTest = CompileResidue(rule, false)
	s.chainTest = CompileChain(rule, false)
	s.modelTest = CompileModel(rule, false)
	s.residueOnlyTest = CompileResidue(rule, true)
	s.chainOnlyTest = CompileChain(rule, true)
	s.modelOnlyTest = CompileModel(rule, true)
	return s
}

// Selection is the parsed selection string together with its compiled tests.
type Selection struct {
	str  string
	rule *Rule
	err  error

	atomTest        Test[Atom]
	residueTest     Test[Residue]
	chainTest       Test[Chain]
	modelTest       Test[Model]
	residueOnlyTest Test[Residue]
	chainOnlyTest   Test[Chain]
	modelOnlyTest   Test[Model]
}

// Err returns the parse error.
func (s *Selection) Err() error {
	return s.err
}

// Source returns the string selection was created from.
func (s *Selection) Source() string {
	return s.str
}

// Rule returns the rule tree.
func (s *Selection) Rule() *Rule {
	return s.rule
}

// String returns the canonical form of the selection.
func (s *Selection) String() string {
	if s.err != nil {
		return s.str
	}
	return s.rule.String()
}

// IsAll returns true if selection matches everything without evaluating any rule.
func (s *Selection) IsAll() bool {
	return s.err == nil && len(s.rule.Rules) == 0
}

// TestAtom tests the atom.
func (s *Selection) TestAtom(a Atom) Result {
	return s.atomTest(a)
}

// TestResidue tests the residue.
func (s *Selection) TestResidue(r Residue) Result {
	return s.residueTest(r)
}

// TestChain tests the chain.
func (s *Selection) TestChain(c Chain) Result {
	return s.chainTest(c)
}

// TestModel tests the model.
func (s *Selection) TestModel(m Model) Result {
	return s.modelTest(m)
}

// TestResidueOnly runs the residue test evaluating only subtrees judgeable at residue level.
func (s *Selection) TestResidueOnly(r Residue) Result {
	return s.residueOnlyTest(r)
}

// TestChainOnly runs the chain test evaluating only subtrees judgeable at chain level.
func (s *Selection) TestChainOnly(c Chain) Result {
	return s.chainOnlyTest(c)
}

// TestModelOnly runs the model test evaluating only subtrees judgeable at model level.
func (s *Selection) TestModelOnly(m Model) Result {
	return s.modelOnlyTest(m)
}
