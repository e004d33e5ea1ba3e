package ioneq

import (
	"fmt"
	"strings"

	"github.com/san-kum/ioneq/internal/atomic"
	"github.com/san-kum/ioneq/internal/rates"
)

// Element is the ordered collection of rate providers for every ionization
// stage of one element, from neutral to bare nucleus. It is immutable
// after construction; all derived quantities are computed on demand.
type Element struct {
	z      int
	symbol string
	name   string

	temperature rates.TemperatureGrid
	ions        []rates.Provider
}

// New constructs an element from an identifier (symbol, name, or decimal
// atomic number), a temperature grid, and a provider configuration. The
// configuration is passed through to every stage provider; on any failure
// no element is returned.
func New(identifier string, grid rates.TemperatureGrid, cfg rates.ProviderConfig) (*Element, error) {
	z, err := atomic.AtomicNumber(identifier)
	if err != nil {
		return nil, err
	}
	return NewZ(z, grid, cfg)
}

// NewZ constructs an element directly from its atomic number.
func NewZ(z int, grid rates.TemperatureGrid, cfg rates.ProviderConfig) (*Element, error) {
	if err := atomic.ValidZ(z); err != nil {
		return nil, err
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	symbol, err := atomic.Symbol(z)
	if err != nil {
		return nil, err
	}
	name, err := atomic.Name(z)
	if err != nil {
		return nil, err
	}

	ions := make([]rates.Provider, 0, z+1)
	for stage := 1; stage <= z+1; stage++ {
		p, err := cfg.Build(z, stage, grid)
		if err != nil {
			return nil, fmt.Errorf("stage %d of %s: %w", stage, symbol, err)
		}
		ions = append(ions, p)
	}

	return &Element{
		z:           z,
		symbol:      symbol,
		name:        name,
		temperature: grid.Clone(),
		ions:        ions,
	}, nil
}

// AtomicNumber is the element's atomic number Z.
func (e *Element) AtomicNumber() int { return e.z }

// Symbol is the element symbol, e.g. "Fe".
func (e *Element) Symbol() string { return e.symbol }

// Name is the element name, e.g. "iron".
func (e *Element) Name() string { return e.name }

// Temperature is the shared temperature grid.
func (e *Element) Temperature() rates.TemperatureGrid { return e.temperature }

// Len is the number of ionization stages, Z+1.
func (e *Element) Len() int { return len(e.ions) }

// Ion returns the stage provider at 0-based position i (0 = neutral).
func (e *Element) Ion(i int) (rates.Provider, error) {
	if i < 0 || i >= len(e.ions) {
		return nil, fmt.Errorf("%w: %d (element has %d stages)", ErrStageRange, i, len(e.ions))
	}
	return e.ions[i], nil
}

// Ions returns the stage providers in stage order.
func (e *Element) Ions() []rates.Provider {
	out := make([]rates.Provider, len(e.ions))
	copy(out, e.ions)
	return out
}

// Get resolves a stage key to its provider.
func (e *Element) Get(k Key) (rates.Provider, error) {
	return e.Ion(k.Index())
}

// Lookup resolves a symbolic stage key such as "Fe 9" or "Fe 8+".
func (e *Element) Lookup(key string) (rates.Provider, error) {
	k, err := ParseKey(key)
	if err != nil {
		return nil, err
	}
	return e.Get(k)
}

// RateMatrix assembles the ionization balance operator for every sample of
// the temperature grid.
func (e *Element) RateMatrix() (*RateMatrix, error) {
	return BuildRateMatrix(e.ions, e.temperature)
}

// EquilibriumIonization computes the equilibrium population fraction of
// every ionization stage at every grid temperature.
func (e *Element) EquilibriumIonization() (*FractionTable, error) {
	m, err := e.RateMatrix()
	if err != nil {
		return nil, err
	}
	return SolveEquilibrium(m)
}

// EquilibriumIonizationFrom solves against a caller-supplied rate matrix
// instead of building one, for repeated solves against perturbed rates.
func (e *Element) EquilibriumIonizationFrom(m *RateMatrix) (*FractionTable, error) {
	if m.Stages() != e.Len() || m.Samples() != len(e.temperature) {
		return nil, fmt.Errorf("%w: got %dx%d stages x samples, want %dx%d",
			ErrShapeMismatch, m.Stages(), m.Samples(), e.Len(), len(e.temperature))
	}
	return SolveEquilibrium(m)
}

func (e *Element) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d) -- %s\n", e.symbol, e.z, e.name)
	for _, ion := range e.ions {
		fmt.Fprintf(&b, "  %s\n", ion.Name())
	}
	return b.String()
}
