// Package atomic resolves element identifiers (symbol, name, or atomic
// number) to atomic numbers and back.
package atomic

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrUnknownElement indicates an identifier that maps to no known element.
var ErrUnknownElement = errors.New("atomic: unknown element")

// symbols[z-1] is the symbol for atomic number z.
var symbols = []string{
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm",
	"Md", "No", "Lr", "Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds",
	"Rg", "Cn", "Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

// names[z-1] is the lowercase element name for atomic number z.
var names = []string{
	"hydrogen", "helium", "lithium", "beryllium", "boron",
	"carbon", "nitrogen", "oxygen", "fluorine", "neon",
	"sodium", "magnesium", "aluminium", "silicon", "phosphorus",
	"sulfur", "chlorine", "argon", "potassium", "calcium",
	"scandium", "titanium", "vanadium", "chromium", "manganese",
	"iron", "cobalt", "nickel", "copper", "zinc",
	"gallium", "germanium", "arsenic", "selenium", "bromine",
	"krypton", "rubidium", "strontium", "yttrium", "zirconium",
	"niobium", "molybdenum", "technetium", "ruthenium", "rhodium",
	"palladium", "silver", "cadmium", "indium", "tin",
	"antimony", "tellurium", "iodine", "xenon", "caesium",
	"barium", "lanthanum", "cerium", "praseodymium", "neodymium",
	"promethium", "samarium", "europium", "gadolinium", "terbium",
	"dysprosium", "holmium", "erbium", "thulium", "ytterbium",
	"lutetium", "hafnium", "tantalum", "tungsten", "rhenium",
	"osmium", "iridium", "platinum", "gold", "mercury",
	"thallium", "lead", "bismuth", "polonium", "astatine",
	"radon", "francium", "radium", "actinium", "thorium",
	"protactinium", "uranium", "neptunium", "plutonium", "americium",
	"curium", "berkelium", "californium", "einsteinium", "fermium",
	"mendelevium", "nobelium", "lawrencium", "rutherfordium", "dubnium",
	"seaborgium", "bohrium", "hassium", "meitnerium", "darmstadtium",
	"roentgenium", "copernicium", "nihonium", "flerovium", "moscovium",
	"livermorium", "tennessine", "oganesson",
}

var bySymbol = func() map[string]int {
	m := make(map[string]int, len(symbols))
	for i, s := range symbols {
		m[s] = i + 1
	}
	return m
}()

var byName = func() map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		m[n] = i + 1
	}
	return m
}()

// MaxZ is the largest atomic number in the table.
const MaxZ = 118

// AtomicNumber resolves an element identifier to its atomic number. The
// identifier may be a symbol ("Fe", "fe"), a full name ("iron", "Iron"),
// or a decimal atomic number ("26"). Symbols are capitalized before lookup.
func AtomicNumber(identifier string) (int, error) {
	id := strings.TrimSpace(identifier)
	if id == "" {
		return 0, fmt.Errorf("%w: empty identifier", ErrUnknownElement)
	}
	if z, err := strconv.Atoi(id); err == nil {
		if err := ValidZ(z); err != nil {
			return 0, err
		}
		return z, nil
	}
	if z, ok := bySymbol[capitalize(id)]; ok {
		return z, nil
	}
	if z, ok := byName[strings.ToLower(id)]; ok {
		return z, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownElement, identifier)
}

// ValidZ reports whether z is within the periodic table.
func ValidZ(z int) error {
	if z < 1 || z > MaxZ {
		return fmt.Errorf("%w: atomic number %d", ErrUnknownElement, z)
	}
	return nil
}

// Symbol returns the symbol for atomic number z.
func Symbol(z int) (string, error) {
	if err := ValidZ(z); err != nil {
		return "", err
	}
	return symbols[z-1], nil
}

// Name returns the lowercase element name for atomic number z.
func Name(z int) (string, error) {
	if err := ValidZ(z); err != nil {
		return "", err
	}
	return names[z-1], nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
