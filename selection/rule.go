package selection

import (
	"strconv"
	"strings"
)

// Operator combines child rules.
type Operator uint8

const (
	// NoOperator is used when rules are juxtaposed, evaluated like Or.
	NoOperator Operator = iota

	// And requires all child rules to match.
	And

	// Or requires any child rule to match.
	Or
)

// Kind is the kind of constraint stored in a leaf rule.
type Kind uint8

// Rule kinds.
const (
	GroupKind Kind = iota
	KeywordKind
	AtomIndexKind
	ElementKind
	ResNameKind
	ResNoKind
	InsCodeKind
	ChainNameKind
	AtomNameKind
	AltLocKind
	ModelKind
)

// Keyword is the named predicate.
type Keyword uint8

// Keywords.
const (
	NoKeyword Keyword = iota
	All
	Sidechain
	Backbone
	Bonded
	Protein
	Nucleic
	Rna
	Dna
	Polymer
	Water
	Ion
	Saccharide
	Helix
	Sheet
	Turn
	Hetero
	Metal
	PolarH
)

var keywordNames = map[Keyword]string{
	All:        "all",
	Sidechain:  "sidechain",
	Backbone:   "backbone",
	Bonded:     "bonded",
	Protein:    "protein",
	Nucleic:    "nucleic",
	Rna:        "rna",
	Dna:        "dna",
	Polymer:    "polymer",
	Water:      "water",
	Ion:        "ion",
	Saccharide: "saccharide",
	Helix:      "helix",
	Sheet:      "sheet",
	Turn:       "turn",
	Hetero:     "hetero",
	Metal:      "metal",
	PolarH:     "polarh",
}

func (k Keyword) String() string {
	return keywordNames[k]
}

// Rule is the node of selection tree.
// Group rules combine Rules using Operator, leaf rules hold exactly one constraint selected by Kind.
type Rule struct {
	Operator Operator
	Negate   bool
	Rules    []*Rule

	Kind        Kind
	Keyword     Keyword
	AtomIndices []int
	Element     string
	ResNames    []string
	ResNoStart  int32
	ResNoEnd    int32
	InsCode     byte
	ChainName   string
	AtomName    string
	AltLoc      byte
	Model       int
}

// IsLeaf returns true if rule holds a constraint instead of child rules.
func (r *Rule) IsLeaf() bool {
	return r.Kind != GroupKind
}

// String returns the canonical form of the rule, parseable back to an equivalent tree.
func (r *Rule) String() string {
	var sb strings.Builder
	r.format(&sb, true)
	return sb.String()
}

func (r *Rule) format(sb *strings.Builder, top bool) {
	if r.IsLeaf() {
		if r.Negate {
			sb.WriteString("not ")
		}
		r.formatLeaf(sb)
		return
	}

	if !r.Negate && len(r.Rules) == 1 {
		r.Rules[0].format(sb, top)
		return
	}

	group := r
	for len(group.Rules) == 1 && !group.Rules[0].IsLeaf() && !group.Rules[0].Negate {
		group = group.Rules[0]
	}

	switch {
	case r.Negate:
		sb.WriteString("not (")
	case !top:
		sb.WriteString("(")
	}

	sep := " or "
	if group.Operator == And {
		sep = " and "
	}
	for i, child := range group.Rules {
		if i > 0 {
			sb.WriteString(sep)
		}
		child.format(sb, false)
	}

	if r.Negate || !top {
		sb.WriteString(")")
	}
}

func (r *Rule) formatLeaf(sb *strings.Builder) {
	switch r.Kind {
	case KeywordKind:
		sb.WriteString(r.Keyword.String())
	case AtomIndexKind:
		sb.WriteString("@")
		for i, index := range r.AtomIndices {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(strconv.Itoa(index))
		}
	case ElementKind:
		sb.WriteString("_")
		sb.WriteString(r.Element)
	case ResNameKind:
		sb.WriteString("[")
		sb.WriteString(strings.Join(r.ResNames, ","))
		sb.WriteString("]")
	case ResNoKind:
		sb.WriteString(strconv.FormatInt(int64(r.ResNoStart), 10))
		if r.ResNoEnd != r.ResNoStart {
			sb.WriteString("-")
			sb.WriteString(strconv.FormatInt(int64(r.ResNoEnd), 10))
		}
	case InsCodeKind:
		sb.WriteString("^")
		sb.WriteByte(r.InsCode)
	case ChainNameKind:
		sb.WriteString(":")
		sb.WriteString(r.ChainName)
	case AtomNameKind:
		sb.WriteString(".")
		sb.WriteString(r.AtomName)
	case AltLocKind:
		sb.WriteString("%")
		sb.WriteByte(r.AltLoc)
	case ModelKind:
		sb.WriteString("/")
		sb.WriteString(strconv.Itoa(r.Model))
	}
}
