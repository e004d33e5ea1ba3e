// Package rates defines the per-ion-stage rate provider contract used by
// the ionization balance core.
//
// The fundamental types are:
//
//   - [TemperatureGrid]: ordered sample temperatures, shared by every stage
//   - [Quantity]: rate coefficients evaluated over the grid, tagged with a unit
//   - [Provider]: ionization and recombination rates for one stage
//   - [ProviderConfig]: explicit construction options threaded through to
//     every stage provider
//
// A built-in semi-empirical provider, [Hydrogenic], is included so the
// toolkit is usable without an external atomic database. Its fits are
// rough (order-of-magnitude); swap in a real dataset via
// [ProviderConfig.Factory] for production work.
package rates
