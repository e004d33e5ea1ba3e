package ioneq

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/ioneq/internal/rates"
)

// FractionTable holds the equilibrium ionization fractions over a
// temperature grid. Each row is non-negative and sums to one.
type FractionTable struct {
	// Temperature is the grid the fractions were solved on.
	Temperature rates.TemperatureGrid
	// Fractions is indexed [sample][stage], stage 0 = neutral.
	Fractions [][]float64
	// SmallestSingular is the smallest singular value of each slice,
	// a diagnostic for how close the operator was to exact rank
	// deficiency. The solve itself never inspects it.
	SmallestSingular []float64
}

// Stages is the number of ionization stages per row.
func (f *FractionTable) Stages() int {
	if len(f.Fractions) == 0 {
		return 0
	}
	return len(f.Fractions[0])
}

// Stage returns the fraction of stage i (0 = neutral) at every grid
// temperature.
func (f *FractionTable) Stage(i int) ([]float64, error) {
	if i < 0 || i >= f.Stages() {
		return nil, fmt.Errorf("%w: %d", ErrStageRange, i)
	}
	out := make([]float64, len(f.Fractions))
	for t, row := range f.Fractions {
		out[t] = row[i]
	}
	return out, nil
}

// SolveEquilibrium finds the steady-state population distribution for every
// temperature slice of a rate matrix.
//
// Each slice is decomposed independently by singular value decomposition;
// the right singular vector of the smallest singular value spans the null
// space of the balance operator. Mass conservation makes the operator
// exactly rank-deficient for a consistent provider chain, in which case the
// vector is the exact equilibrium. The decomposition fixes the vector only
// up to sign, so components are made non-negative by absolute value before
// normalizing each row to sum to one.
//
// If the operator is not rank-deficient the selected vector is a silent
// approximation of unspecified accuracy; SmallestSingular on the result is
// the only signal. Slices are independent and solved concurrently; the
// result does not depend on scheduling order.
func SolveEquilibrium(m *RateMatrix) (*FractionTable, error) {
	if m == nil || len(m.Slices) == 0 {
		return nil, ErrNoProviders
	}

	out := &FractionTable{
		Temperature:      m.Temperature.Clone(),
		Fractions:        make([][]float64, len(m.Slices)),
		SmallestSingular: make([]float64, len(m.Slices)),
	}
	errs := make([]error, len(m.Slices))

	var wg sync.WaitGroup
	for t := range m.Slices {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			out.Fractions[idx], out.SmallestSingular[idx], errs[idx] = solveSlice(m.Slices[idx])
		}(t)
	}
	wg.Wait()

	for t, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("slice %d (T=%g K): %w", t, m.Temperature[t], err)
		}
	}
	return out, nil
}

func solveSlice(a *mat.Dense) ([]float64, float64, error) {
	n, _ := a.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(a, mat.SVDThin); !ok {
		return nil, 0, ErrNoConvergence
	}

	var v mat.Dense
	svd.VTo(&v)
	values := svd.Values(nil)

	// Singular values come back in descending order, so the null-space
	// vector is the last column of V.
	x := make([]float64, n)
	sum := 0.0
	for i := 0; i < n; i++ {
		x[i] = math.Abs(v.At(i, n-1))
		sum += x[i]
	}
	for i := range x {
		x[i] /= sum
	}
	return x, values[len(values)-1], nil
}
