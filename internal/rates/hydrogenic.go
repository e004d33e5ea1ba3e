package rates

import (
	"fmt"
	"math"

	"github.com/san-kum/ioneq/internal/atomic"
)

// Physical constants for the hydrogenic fits.
const (
	// boltzmannEV is the Boltzmann constant in eV/K.
	boltzmannEV = 8.617333262e-5
	// rydbergEV is the hydrogen ionization potential in eV.
	rydbergEV = 13.605693
)

// Hydrogenic is the built-in rate provider. Ionization uses a Seaton-style
// collisional fit with a hydrogenic ionization potential I = 13.6 eV (q+1)^2
// for charge q; recombination uses a radiative power law
// alpha = 2.6e-13 q^2 (1e4 K / T)^0.8 cm^3/s. These are order-of-magnitude
// approximations, adequate for qualitative balance curves only.
type Hydrogenic struct {
	z      int
	stage  int
	symbol string
	grid   TemperatureGrid

	ionScale float64
	recScale float64
}

// NewHydrogenic constructs the built-in provider for one stage. It is a
// rates.Factory. Recognized cfg.Params keys: "ionization_scale" and
// "recombination_scale", multiplicative adjustments defaulting to 1.
func NewHydrogenic(z, stage int, grid TemperatureGrid, cfg ProviderConfig) (Provider, error) {
	if err := atomic.ValidZ(z); err != nil {
		return nil, err
	}
	if stage < 1 || stage > z+1 {
		return nil, fmt.Errorf("rates: stage %d out of range for Z=%d", stage, z)
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}
	sym, err := atomic.Symbol(z)
	if err != nil {
		return nil, err
	}

	h := &Hydrogenic{
		z:        z,
		stage:    stage,
		symbol:   sym,
		grid:     grid.Clone(),
		ionScale: 1,
		recScale: 1,
	}
	if v, ok := cfg.Params["ionization_scale"]; ok {
		h.ionScale = v
	}
	if v, ok := cfg.Params["recombination_scale"]; ok {
		h.recScale = v
	}
	return h, nil
}

func (h *Hydrogenic) AtomicNumber() int { return h.z }
func (h *Hydrogenic) Stage() int        { return h.stage }

func (h *Hydrogenic) Name() string {
	return fmt.Sprintf("%s %d", h.symbol, h.stage)
}

// IonizationRate evaluates the collisional ionization fit over the grid.
// The bare stage cannot ionize further and reports zero.
func (h *Hydrogenic) IonizationRate() Quantity {
	vals := make([]float64, len(h.grid))
	if h.stage <= h.z {
		charge := float64(h.stage - 1)
		potential := rydbergEV * (charge + 1) * (charge + 1)
		for i, t := range h.grid {
			kt := boltzmannEV * t
			u := potential / kt
			vals[i] = h.ionScale * 2.5e-8 * math.Sqrt(kt/potential) *
				math.Exp(-u) / (potential * potential)
		}
	}
	return Quantity{Values: vals, Unit: CentimetersCubedPerSecond}
}

// RecombinationRate evaluates the radiative recombination fit over the
// grid. The neutral stage cannot recombine and reports zero.
func (h *Hydrogenic) RecombinationRate() Quantity {
	vals := make([]float64, len(h.grid))
	if h.stage > 1 {
		charge := float64(h.stage - 1)
		for i, t := range h.grid {
			vals[i] = h.recScale * 2.6e-13 * charge * charge *
				math.Pow(1e4/t, 0.8)
		}
	}
	return Quantity{Values: vals, Unit: CentimetersCubedPerSecond}
}
