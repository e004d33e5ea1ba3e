package rates

import (
	"errors"
	"fmt"
	"math"
)

// ErrBadGrid indicates an empty or non-positive temperature grid.
var ErrBadGrid = errors.New("rates: temperature grid must be nonempty and positive")

// TemperatureGrid is an ordered sequence of sample temperatures in kelvin.
// Every stage provider of an element evaluates over the same grid.
type TemperatureGrid []float64

// Linspace returns n evenly spaced temperatures from min to max inclusive.
func Linspace(min, max float64, n int) TemperatureGrid {
	if n <= 1 {
		return TemperatureGrid{min}
	}
	g := make(TemperatureGrid, n)
	step := (max - min) / float64(n-1)
	for i := range g {
		g[i] = min + float64(i)*step
	}
	return g
}

// Logspace returns n logarithmically spaced temperatures from min to max
// inclusive.
func Logspace(min, max float64, n int) TemperatureGrid {
	if n <= 1 {
		return TemperatureGrid{min}
	}
	g := make(TemperatureGrid, n)
	lo, hi := math.Log10(min), math.Log10(max)
	step := (hi - lo) / float64(n-1)
	for i := range g {
		g[i] = math.Pow(10, lo+float64(i)*step)
	}
	return g
}

// Validate checks that the grid is nonempty and strictly positive.
func (g TemperatureGrid) Validate() error {
	if len(g) == 0 {
		return ErrBadGrid
	}
	for i, t := range g {
		if t <= 0 || math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("%w: sample %d = %g K", ErrBadGrid, i, t)
		}
	}
	return nil
}

// Clone returns an independent copy of the grid.
func (g TemperatureGrid) Clone() TemperatureGrid {
	out := make(TemperatureGrid, len(g))
	copy(out, g)
	return out
}
