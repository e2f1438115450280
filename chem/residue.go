package chem

// Residue names used to classify residue types.
var (
	WaterNames = names("SOL", "WAT", "HOH", "H2O", "W", "DOD", "D3O", "TIP", "TIP3", "TIP4", "SPC")

	IonNames = names("118", "119", "1AL", "1CU", "2FK", "2HP", "2OF", "3CO", "3MT", "3NI", "3OF", "3P8",
		"4MO", "4PU", "543", "6MO", "ACT", "AG", "AL", "ALF", "AM", "ATH", "AU", "AU3", "AUC", "AZI",
		"BA", "BCT", "BEF", "BF4", "BO4", "BR", "BS3", "BSY", "CA", "CAC", "CD", "CD1", "CD3", "CD5",
		"CE", "CHT", "CL", "CO", "CO3", "CO5", "CON", "CR", "CS", "CSB", "CU", "CU1", "CU3", "CUA",
		"CUZ", "CYN", "DME", "DMI", "DSC", "DTI", "DY", "E4N", "EDR", "EMC", "ER3", "EU", "EU3", "F",
		"FE", "FE2", "FPO", "GA", "GD3", "GEP", "HAI", "HG", "HGC", "IN", "IOD", "IR", "IR3", "IRI",
		"IUM", "K", "KO4", "LA", "LCO", "LCP", "LI", "LU", "MAC", "MG", "MH2", "MH3", "MLI", "MMC",
		"MN", "MN3", "MN5", "MN6", "MO1", "MO2", "MO3", "MO4", "MO5", "MO6", "MOO", "MOS", "MOW", "MW1",
		"MW2", "MW3", "NA", "NA2", "NA5", "NA6", "NAO", "NAW", "NET", "NI", "NI1", "NI2", "NI3", "NO2",
		"NO3", "NRU", "O4M", "OAA", "OC1", "OC2", "OC3", "OC4", "OC5", "OC6", "OC7", "OC8", "OCL",
		"OCM", "OCN", "OCO", "OF1", "OF2", "OF3", "OH", "OS", "OS4", "OXL", "PB", "PBM", "PD", "PDV",
		"PER", "PI", "PO3", "PO4", "PR", "PT", "PT4", "PTN", "RB", "RH3", "RHD", "RU", "SB", "SE4",
		"SEK", "SM", "SMO", "SO3", "SO4", "SR", "T1A", "TB", "TBA", "TCN", "TEA", "TH", "THE", "TL",
		"TMA", "TRA", "UNX", "V", "VN3", "VO4", "W", "WO5", "Y1", "YB", "YB2", "YH", "YT3", "ZCM",
		"ZN", "ZN2", "ZN3", "ZNO", "ZO3")

	ProteinNames = names("ALA", "ARG", "ASN", "ASP", "CYS", "GLN", "GLU", "GLY", "HIS", "ILE", "LEU",
		"LYS", "MET", "PHE", "PRO", "SER", "THR", "TRP", "TYR", "VAL", "SEC", "PYL", "ASX", "GLX",
		"MSE", "HID", "HIE", "HIP", "HSD", "HSE", "HSP", "CYX", "CYM", "ASH", "GLH", "LYN", "UNK")

	RnaNames = names("A", "C", "T", "G", "U", "I", "PSU", "N", "RA", "RC", "RG", "RU")

	DnaNames = names("DA", "DC", "DT", "DG", "DU", "DI")

	SaccharideNames = names("GLC", "BGC", "MAN", "BMA", "GAL", "GLA", "NAG", "NDG", "NGA", "A2G",
		"FUC", "FUL", "SIA", "SLB", "XYS", "XYP", "RIB", "FRU", "SUC", "LAT", "MAL", "TRE", "GCU",
		"IDS", "SGN", "BDP", "ARA", "RAM", "KDO", "NAN")
)

// Residue property groups used by selection macros.
var (
	SmallResnames        = []string{"ALA", "GLY", "SER"}
	NucleophilicResnames = []string{"CYS", "SER", "THR"}
	HydrophobicResnames  = []string{"ALA", "ILE", "LEU", "MET", "PHE", "PRO", "TRP", "VAL"}
	AromaticResnames     = []string{"PHE", "TRP", "TYR", "HIS"}
	AmideResnames        = []string{"ASN", "GLN"}
	AcidicResnames       = []string{"ASP", "GLU"}
	BasicResnames        = []string{"HIS", "LYS", "ARG"}
	ChargedResnames      = []string{"ASP", "GLU", "HIS", "LYS", "ARG"}
	PolarResnames        = []string{
		"ASP", "CYS", "GLY", "GLU", "HIS", "LYS", "ARG", "ASN", "GLN", "SER", "THR", "TYR",
	}
	NonpolarResnames  = []string{"ALA", "ILE", "LEU", "MET", "PHE", "PRO", "TRP", "VAL"}
	CyclicResnames    = []string{"HIS", "PHE", "PRO", "TRP", "TYR"}
	AliphaticResnames = []string{"ALA", "GLY", "ILE", "LEU", "VAL"}
)

// Backbone atom names.
var (
	ProteinBackboneAtoms = names("CA", "C", "N", "O", "O1", "O2", "OC1", "OC2", "OX1", "OXT", "OT1",
		"OT2", "H", "H1", "H2", "H3", "HA", "HN", "BB")

	NucleicBackboneAtoms = names("P", "OP1", "OP2", "HOP2", "HOP3", "O2'", "O3'", "O4'", "O5'", "C1'",
		"C2'", "C3'", "C4'", "C5'", "H1'", "H2'", "H2''", "HO2'", "H3'", "H4'", "H5'", "H5''", "HO3'",
		"HO5'", "O2*", "O3*", "O4*", "O5*", "C1*", "C2*", "C3*", "C4*", "C5*")
)

// NameSet is a set of names.
type NameSet map[string]struct{}

// Contains returns true if name is in the set.
func (ns NameSet) Contains(name string) bool {
	_, exists := ns[name]
	return exists
}

func names(list ...string) NameSet {
	ns := make(NameSet, len(list))
	for _, n := range list {
		ns[n] = struct{}{}
	}
	return ns
}
