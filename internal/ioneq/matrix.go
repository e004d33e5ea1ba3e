package ioneq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/ioneq/internal/rates"
)

// RateMatrix is the ionization balance operator: one (Z+1)x(Z+1) slice per
// temperature sample. Row i of a slice balances flow into stage i+1 from
// ionization of the stage below and recombination of the stage above
// against flow out of the stage itself, so each slice is tridiagonal.
type RateMatrix struct {
	// Temperature is the grid the slices were evaluated on.
	Temperature rates.TemperatureGrid
	// Slices holds one operator per temperature sample.
	Slices []*mat.Dense
	// Unit is the rate unit stamped from the first stage's ionization
	// rate. The builder assumes all providers agree and does not verify.
	Unit rates.Unit
}

// Stages is the per-slice dimension, Z+1.
func (m *RateMatrix) Stages() int {
	if len(m.Slices) == 0 {
		return 0
	}
	r, _ := m.Slices[0].Dims()
	return r
}

// Samples is the number of temperature slices.
func (m *RateMatrix) Samples() int { return len(m.Slices) }

// BuildRateMatrix assembles the balance operator from an ordered provider
// chain (stage 1 first) over a shared temperature grid. Chains of one or
// two providers produce 1x1 or 2x2 slices; the off-diagonal writes are
// skipped when the neighboring stage does not exist.
func BuildRateMatrix(providers []rates.Provider, grid rates.TemperatureGrid) (*RateMatrix, error) {
	n := len(providers)
	if n == 0 {
		return nil, ErrNoProviders
	}
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	ion := make([][]float64, n)
	rec := make([][]float64, n)
	first := providers[0].IonizationRate()
	ion[0] = first.Values
	rec[0] = providers[0].RecombinationRate().Values
	for i := 1; i < n; i++ {
		ion[i] = providers[i].IonizationRate().Values
		rec[i] = providers[i].RecombinationRate().Values
	}
	for i := 0; i < n; i++ {
		if len(ion[i]) != len(grid) || len(rec[i]) != len(grid) {
			return nil, fmt.Errorf("%w: provider %d rates have %d/%d samples, grid has %d",
				ErrShapeMismatch, i, len(ion[i]), len(rec[i]), len(grid))
		}
	}

	slices := make([]*mat.Dense, len(grid))
	for t := range grid {
		a := mat.NewDense(n, n, nil)
		for i := 1; i < n-1; i++ {
			a.Set(i, i, -(ion[i][t] + rec[i][t]))
			a.Set(i, i-1, ion[i-1][t])
			a.Set(i, i+1, rec[i+1][t])
		}
		a.Set(0, 0, -(ion[0][t] + rec[0][t]))
		a.Set(n-1, n-1, -(ion[n-1][t] + rec[n-1][t]))
		if n > 1 {
			a.Set(0, 1, rec[1][t])
			a.Set(n-1, n-2, ion[n-2][t])
		}
		slices[t] = a
	}

	return &RateMatrix{
		Temperature: grid.Clone(),
		Slices:      slices,
		Unit:        first.Unit,
	}, nil
}

// MaxColumnImbalance returns the largest absolute column sum across all
// slices, normalized by the largest entry magnitude of the slice. For a
// physically consistent chain (no recombination below neutral, no
// ionization above bare) every column sums to zero and this is ~0; a
// significantly nonzero value means the operator is not mass-conserving
// and the equilibrium solve will silently approximate.
func (m *RateMatrix) MaxColumnImbalance() float64 {
	worst := 0.0
	for _, a := range m.Slices {
		n, _ := a.Dims()
		scale := 0.0
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				scale = math.Max(scale, math.Abs(a.At(i, j)))
			}
		}
		if scale == 0 {
			continue
		}
		for j := 0; j < n; j++ {
			sum := 0.0
			for i := 0; i < n; i++ {
				sum += a.At(i, j)
			}
			worst = math.Max(worst, math.Abs(sum)/scale)
		}
	}
	return worst
}
