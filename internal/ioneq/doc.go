// Package ioneq computes equilibrium ionization fractions for an element.
//
// The central type is [Element], an ordered collection of per-stage rate
// providers sharing one temperature grid:
//
//   - [Element]: all ionization stages of one element
//   - [RateMatrix]: the per-temperature ionization balance operator
//   - [FractionTable]: equilibrium stage populations per temperature
//   - [Key]: position or "Fe 9"-style lookup into the stage collection
//
// # Example
//
//	grid := rates.Logspace(1e4, 1e8, 100)
//	el, _ := ioneq.New("Fe", grid, rates.DefaultProviderConfig())
//	frac, _ := el.EquilibriumIonization()
//
// The equilibrium distribution at each temperature is the null vector of
// the rate matrix, found by singular value decomposition. When the matrix
// is not exactly rank-deficient the result is a silent approximation; see
// [SolveEquilibrium].
package ioneq
