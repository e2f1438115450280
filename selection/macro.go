package selection

import (
	"github.com/samber/lo"

	"github.com/outofforest/molstore/chem"
)

var macros = map[string]func(p *parser) *Rule{
	"HYDROGEN": func(p *parser) *Rule {
		return p.group(Or, false, p.element("H"), p.element("D"))
	},
	"SMALL":        resNameMacro(chem.SmallResnames),
	"NUCLEOPHILIC": resNameMacro(chem.NucleophilicResnames),
	"HYDROPHOBIC":  resNameMacro(chem.HydrophobicResnames),
	"AROMATIC":     resNameMacro(chem.AromaticResnames),
	"AMIDE":        resNameMacro(chem.AmideResnames),
	"ACIDIC":       resNameMacro(chem.AcidicResnames),
	"BASIC":        resNameMacro(chem.BasicResnames),
	"CHARGED":      resNameMacro(chem.ChargedResnames),
	"POLAR":        resNameMacro(chem.PolarResnames),
	"NONPOLAR":     resNameMacro(chem.NonpolarResnames),
	"CYCLIC":       resNameMacro(chem.CyclicResnames),
	"ALIPHATIC":    resNameMacro(chem.AliphaticResnames),
	"SIDECHAINATTACHED": func(p *parser) *Rule {
		return p.group(Or, false,
			p.keyword(Sidechain),
			p.group(And, false,
				p.keyword(Protein),
				p.group(Or, false, p.atomName("CA"), p.atomName("BB")),
			),
			p.group(And, false,
				p.resNames("PRO"),
				p.atomName("N"),
			),
			p.group(And, false,
				p.keyword(Nucleic),
				p.group(Or, true, lo.Map(nucleicLinkAtoms, func(name string, _ int) *Rule {
					return p.atomName(name)
				})...),
			),
		)
	},
	"APOLARH": func(p *parser) *Rule {
		return p.group(And, false,
			p.element("H"),
			p.group(NoOperator, true, p.keyword(PolarH)),
		)
	},
	"LIGAND": func(p *parser) *Rule {
		return p.group(And, false,
			p.group(Or, false,
				p.group(And, false,
					p.keyword(Hetero),
					p.group(NoOperator, true, p.keyword(Polymer)),
				),
				p.group(NoOperator, true, p.keyword(Polymer)),
			),
			p.group(Or, true, p.keyword(Water), p.keyword(Ion)),
		)
	},
}

// nucleicLinkAtoms are the phosphate and sugar atoms linking nucleotides.
var nucleicLinkAtoms = []string{
	"P", "OP1", "OP2", "O3'", "O3*", "HO3'", "O5'", "O5*", "HO5'", "C5'", "C5*", "H5'", "H5''",
}

func resNameMacro(names []string) func(p *parser) *Rule {
	return func(p *parser) *Rule {
		r := p.newRule()
		r.Kind = ResNameKind
		r.ResNames = names
		return r
	}
}
