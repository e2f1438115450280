package selection

import (
	"slices"
	"strconv"
	"strings"

	"github.com/outofforest/mass"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const maxAtomNameLength = 4

type frameKind uint8

const (
	rootFrame frameKind = iota
	parenFrame
	notFrame
	andFrame
)

type frame struct {
	kind frameKind
	rule *Rule
}

// not states of the parser.
const (
	notIdle     = -1
	notOpened   = 1
	notConsumed = 2
)

type parser struct {
	massRule      *mass.Mass[Rule]
	stack         []frame
	not           int
	expectOperand bool
}

// Parse parses the selection string into the rule tree.
// Empty string produces empty root rule matching everything.
func Parse(str string) (*Rule, error) {
	str = strings.ReplaceAll(strings.ReplaceAll(str, "(", " ( "), ")", " ) ")
	tokens := strings.Fields(str)

	p := &parser{
		massRule:      mass.New[Rule](64),
		not:           notIdle,
		expectOperand: true,
	}
	root := p.newRule()
	p.stack = append(p.stack, frame{kind: rootFrame, rule: root})

	for _, token := range tokens {
		if err := p.token(token); err != nil {
			return nil, err
		}
	}

	if len(tokens) > 0 && p.expectOperand {
		return nil, errors.New("selection ends with dangling operator")
	}
	if p.not == notConsumed {
		p.closeNot()
	}
	for p.top().kind == andFrame {
		p.pop()
	}
	if p.top().kind != rootFrame {
		return nil, errors.New("unclosed parenthesis")
	}

	return root, nil
}

func (p *parser) token(token string) error {
	if token == ")" {
		return p.closeParen()
	}

	switch p.not {
	case notConsumed:
		p.closeNot()
	case notOpened:
		if token == "(" {
			p.not = notIdle
		} else if !strings.EqualFold(token, "NOT") {
			p.not = notConsumed
		}
	}

	upper := strings.ToUpper(token)
	switch upper {
	case "(":
		p.expectOperand = true
		p.push(parenFrame, p.newRule())
		return nil
	case "NOT":
		p.expectOperand = true
		p.not = notOpened
		r := p.newRule()
		r.Negate = true
		p.push(notFrame, r)
		return nil
	case "AND":
		return p.and()
	case "OR":
		return p.or()
	}

	r, err := p.leaf(token, upper)
	if err != nil {
		return err
	}
	p.expectOperand = false
	p.top().rule.Rules = append(p.top().rule.Rules, r)
	return nil
}

func (p *parser) and() error {
	if p.expectOperand {
		return errors.New("dangling operator AND")
	}
	p.expectOperand = true

	current := p.top().rule
	if current.Operator != Or {
		current.Operator = And
		return nil
	}

	last := current.Rules[len(current.Rules)-1]
	current.Rules = current.Rules[:len(current.Rules)-1]
	r := p.newRule()
	r.Operator = And
	r.Rules = append(r.Rules, last)
	p.push(andFrame, r)
	return nil
}

func (p *parser) or() error {
	if p.expectOperand {
		return errors.New("dangling operator OR")
	}
	p.expectOperand = true

	f := p.top()
	if f.rule.Operator != And {
		f.rule.Operator = Or
		return nil
	}

	if f.kind == andFrame {
		p.pop()
		return nil
	}

	r := p.newRule()
	r.Operator = And
	r.Rules = f.rule.Rules
	f.rule.Rules = []*Rule{r}
	f.rule.Operator = Or
	return nil
}

func (p *parser) closeParen() error {
	if p.expectOperand {
		return errors.New("dangling operator before closing parenthesis")
	}
	if p.not == notConsumed {
		p.closeNot()
	}
	for p.top().kind == andFrame {
		p.pop()
	}
	if p.top().kind != parenFrame {
		return errors.New("unmatched closing parenthesis")
	}
	p.pop()
	for p.top().kind == notFrame {
		p.pop()
	}
	return nil
}

func (p *parser) closeNot() {
	p.not = notIdle
	for p.top().kind == notFrame {
		p.pop()
	}
}

func (p *parser) top() *frame {
	return &p.stack[len(p.stack)-1]
}

func (p *parser) push(kind frameKind, r *Rule) {
	p.top().rule.Rules = append(p.top().rule.Rules, r)
	p.stack = append(p.stack, frame{kind: kind, rule: r})
}

func (p *parser) pop() {
	p.stack = p.stack[:len(p.stack)-1]
}

func (p *parser) newRule() *Rule {
	return p.massRule.New()
}

func (p *parser) leaf(token, upper string) (*Rule, error) {
	if upper == "*" {
		return p.keyword(All), nil
	}
	if k, exists := keywords[upper]; exists {
		return p.keyword(k), nil
	}
	if m, exists := macros[upper]; exists {
		return m(p), nil
	}

	switch token[0] {
	case '@':
		return p.atomIndices(token[1:])
	case '_', '#':
		if len(token) == 1 {
			return nil, errors.Errorf("empty element in %q", token)
		}
		return p.element(upper[1:]), nil
	}

	if isResnameShortcut(token) {
		return p.resNames(upper), nil
	}

	return p.compound(token)
}

func (p *parser) atomIndices(list string) (*Rule, error) {
	if list == "" {
		return nil, errors.New("empty atom index list")
	}
	parts := strings.Split(list, ",")
	indices := make([]int, 0, len(parts))
	for _, part := range parts {
		index, err := strconv.Atoi(part)
		if err != nil || index < 0 {
			return nil, errors.Errorf("invalid atom index %q", part)
		}
		indices = append(indices, index)
	}
	slices.Sort(indices)

	r := p.newRule()
	r.Kind = AtomIndexKind
	r.AtomIndices = lo.Uniq(indices)
	return r, nil
}

// compound parses tokens like "10-20^A:B.CA%C/0", each present part becomes an AND-ed leaf.
func (p *parser) compound(token string) (*Rule, error) {
	var leaves []*Rule

	rest, model, found := strings.Cut(token, "/")
	if found {
		m, ok := parseInt(model)
		if !ok {
			return nil, errors.Errorf("invalid model %q in %q", model, token)
		}
		r := p.newRule()
		r.Kind = ModelKind
		r.Model = m
		leaves = append(leaves, r)
	}

	rest, altLoc, found := strings.Cut(rest, "%")
	if found {
		if len(altLoc) != 1 {
			return nil, errors.Errorf("altloc %q in %q must be one character", altLoc, token)
		}
		r := p.newRule()
		r.Kind = AltLocKind
		r.AltLoc = altLoc[0]
		leaves = append(leaves, r)
	}

	rest, atomName, found := strings.Cut(rest, ".")
	if found {
		if atomName == "" || len(atomName) > maxAtomNameLength {
			return nil, errors.Errorf("atom name %q in %q must be one to four characters", atomName, token)
		}
		leaves = append(leaves, p.atomName(strings.ToUpper(atomName)))
	}

	rest, chainName, found := strings.Cut(rest, ":")
	if found {
		if chainName == "" {
			return nil, errors.Errorf("empty chain name in %q", token)
		}
		r := p.newRule()
		r.Kind = ChainNameKind
		r.ChainName = chainName
		leaves = append(leaves, r)
	}

	rest, insCode, found := strings.Cut(rest, "^")
	if found {
		if len(insCode) != 1 {
			return nil, errors.Errorf("insertion code %q in %q must be one character", insCode, token)
		}
		r := p.newRule()
		r.Kind = InsCodeKind
		r.InsCode = insCode[0]
		leaves = append(leaves, r)
	}

	if rest != "" {
		r, err := p.residue(rest, token)
		if err != nil {
			return nil, err
		}
		leaves = append(leaves, r)
	}

	switch len(leaves) {
	case 0:
		return nil, errors.Errorf("invalid token %q", token)
	case 1:
		return leaves[0], nil
	}

	slices.Reverse(leaves)
	r := p.newRule()
	r.Operator = And
	r.Rules = leaves
	return r, nil
}

// residue parses residue number, inclusive residue number range or residue name.
// Leading "-" negates the start and "--" negates the end of the range, e.g. "-5--2".
func (p *parser) residue(str, token string) (*Rule, error) {
	if str[0] == '[' {
		if len(str) < 3 || str[len(str)-1] != ']' {
			return nil, errors.Errorf("invalid residue name list %q", token)
		}
		return p.resNames(str[1 : len(str)-1]), nil
	}

	s := str
	negStart := strings.HasPrefix(s, "-")
	if negStart {
		s = s[1:]
	}
	negEnd := strings.Contains(s, "--")
	if negEnd {
		s = strings.ReplaceAll(s, "--", "-")
	}

	parts := strings.Split(s, "-")
	if len(parts) > 2 {
		return nil, errors.Errorf("invalid residue range %q", token)
	}

	start, ok := parseInt(parts[0])
	if !ok {
		if !negStart && !negEnd && len(parts) == 1 {
			return p.resNames(strings.ToUpper(str)), nil
		}
		return nil, errors.Errorf("invalid residue number %q", token)
	}
	if negStart {
		start = -start
	}
	end := start
	if len(parts) == 2 {
		end, ok = parseInt(parts[1])
		if !ok {
			return nil, errors.Errorf("invalid residue range end %q", token)
		}
		if negEnd {
			end = -end
		}
	}

	r := p.newRule()
	r.Kind = ResNoKind
	r.ResNoStart = int32(start)
	r.ResNoEnd = int32(end)
	return r, nil
}

func (p *parser) keyword(k Keyword) *Rule {
	r := p.newRule()
	r.Kind = KeywordKind
	r.Keyword = k
	return r
}

func (p *parser) element(element string) *Rule {
	r := p.newRule()
	r.Kind = ElementKind
	r.Element = element
	return r
}

func (p *parser) atomName(name string) *Rule {
	r := p.newRule()
	r.Kind = AtomNameKind
	r.AtomName = name
	return r
}

// resNames creates leaf matching comma-separated list of residue names.
func (p *parser) resNames(list string) *Rule {
	r := p.newRule()
	r.Kind = ResNameKind
	r.ResNames = lo.Map(strings.Split(list, ","), func(name string, _ int) string {
		return strings.ToUpper(name)
	})
	return r
}

func (p *parser) group(op Operator, negate bool, rules ...*Rule) *Rule {
	r := p.newRule()
	r.Operator = op
	r.Negate = negate
	r.Rules = rules
	return r
}

var keywords = map[string]Keyword{
	"ALL":        All,
	"SIDECHAIN":  Sidechain,
	"BACKBONE":   Backbone,
	"BONDED":     Bonded,
	"PROTEIN":    Protein,
	"NUCLEIC":    Nucleic,
	"RNA":        Rna,
	"DNA":        Dna,
	"POLYMER":    Polymer,
	"WATER":      Water,
	"ION":        Ion,
	"SACCHARIDE": Saccharide,
	"HELIX":      Helix,
	"SHEET":      Sheet,
	"TURN":       Turn,
	"HETERO":     Hetero,
	"METAL":      Metal,
	"POLARH":     PolarH,
}

// isResnameShortcut returns true for short tokens like "ALA" or "HOH" which are not numbers.
func isResnameShortcut(token string) bool {
	if len(token) > 4 || strings.ContainsAny(token, "^:.%/[-") {
		return false
	}
	_, ok := parseInt(token)
	return !ok
}

// parseInt parses the whole string as an integer with optional sign.
// Tokens like "1MA" are not numbers, so they are matched as residue names.
func parseInt(s string) (int, bool) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return v, true
}
