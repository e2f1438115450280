package chem

import "strings"

// DefaultCovalentRadius is used for elements missing in the table.
const DefaultCovalentRadius = 1.6

var covalentRadii = map[string]float32{
	"H": 0.31, "D": 0.31, "T": 0.31, "HE": 0.28,
	"LI": 1.28, "BE": 0.96, "B": 0.84, "C": 0.76, "N": 0.71, "O": 0.66, "F": 0.57, "NE": 0.58,
	"NA": 1.66, "MG": 1.41, "AL": 1.21, "SI": 1.11, "P": 1.07, "S": 1.05, "CL": 1.02, "AR": 1.06,
	"K": 2.03, "CA": 1.76, "SC": 1.70, "TI": 1.60, "V": 1.53, "CR": 1.39, "MN": 1.39, "FE": 1.32,
	"CO": 1.26, "NI": 1.24, "CU": 1.32, "ZN": 1.22, "GA": 1.22, "GE": 1.20, "AS": 1.19, "SE": 1.20,
	"BR": 1.20, "KR": 1.16, "RB": 2.20, "SR": 1.95, "Y": 1.90, "ZR": 1.75, "NB": 1.64, "MO": 1.54,
	"TC": 1.47, "RU": 1.46, "RH": 1.42, "PD": 1.39, "AG": 1.45, "CD": 1.44, "IN": 1.42, "SN": 1.39,
	"SB": 1.39, "TE": 1.38, "I": 1.39, "XE": 1.40, "CS": 2.44, "BA": 2.15, "LA": 2.07, "CE": 2.04,
	"PR": 2.03, "ND": 2.01, "SM": 1.98, "EU": 1.98, "GD": 1.96, "TB": 1.94, "DY": 1.92, "HO": 1.92,
	"ER": 1.89, "TM": 1.90, "YB": 1.87, "LU": 1.87, "HF": 1.75, "TA": 1.70, "W": 1.62, "RE": 1.51,
	"OS": 1.44, "IR": 1.41, "PT": 1.36, "AU": 1.36, "HG": 1.32, "TL": 1.45, "PB": 1.46, "BI": 1.48,
	"U": 1.96,
}

var metals = map[string]struct{}{
	"LI": {}, "NA": {}, "K": {}, "RB": {}, "CS": {}, "BE": {}, "MG": {}, "CA": {}, "SR": {}, "BA": {},
	"AL": {}, "GA": {}, "IN": {}, "TL": {}, "SN": {}, "PB": {}, "BI": {},
	"SC": {}, "TI": {}, "V": {}, "CR": {}, "MN": {}, "FE": {}, "CO": {}, "NI": {}, "CU": {}, "ZN": {},
	"Y": {}, "ZR": {}, "NB": {}, "MO": {}, "TC": {}, "RU": {}, "RH": {}, "PD": {}, "AG": {}, "CD": {},
	"HF": {}, "TA": {}, "W": {}, "RE": {}, "OS": {}, "IR": {}, "PT": {}, "AU": {}, "HG": {},
	"LA": {}, "CE": {}, "PR": {}, "ND": {}, "SM": {}, "EU": {}, "GD": {}, "TB": {}, "DY": {}, "HO": {},
	"ER": {}, "TM": {}, "YB": {}, "LU": {}, "U": {},
}

// CovalentRadius returns covalent radius of the element in angstroms.
func CovalentRadius(element string) float32 {
	if r, exists := covalentRadii[element]; exists {
		return r
	}
	return DefaultCovalentRadius
}

// IsMetal returns true if element is a metal.
func IsMetal(element string) bool {
	_, exists := metals[element]
	return exists
}

// IsHydrogen returns true for hydrogen and its isotopes.
func IsHydrogen(element string) bool {
	return element == "H" || element == "D" || element == "T"
}

// IsPolarHeavy returns true for heavy atoms making polar hydrogens polar.
func IsPolarHeavy(element string) bool {
	return element == "N" || element == "O" || element == "S"
}

var twoLetterNames = names("FE", "ZN", "MG", "MN", "CL", "BR", "NI", "SE", "CU")

// NormalizeElement returns upper-case element symbol, guessing it from the atom and residue names
// if element is empty.
func NormalizeElement(element, atomName, resname string) string {
	if element = strings.ToUpper(strings.TrimSpace(element)); element != "" {
		return element
	}
	return GuessElement(atomName, resname)
}

// GuessElement guesses the element from the atom name.
// Atoms of ion residues take the whole name if it is a known element, e.g. "CA" in residue "CA".
func GuessElement(atomName, resname string) string {
	name := strings.ToUpper(strings.TrimLeft(strings.TrimSpace(atomName), "0123456789"))
	if name == "" {
		return ""
	}
	if IonNames.Contains(strings.ToUpper(resname)) {
		if _, exists := covalentRadii[name]; exists {
			return name
		}
	}
	if len(name) >= 2 && twoLetterNames.Contains(name[:2]) && (len(name) == 2 || !isLetter(name[2])) {
		return name[:2]
	}
	return name[:1]
}

func isLetter(b byte) bool {
	return b >= 'A' && b <= 'Z'
}
