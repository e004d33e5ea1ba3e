package rates

// Default provider configuration values.
const (
	DefaultDataset   = "hydrogenic"
	DefaultAbundance = "sun_photospheric"
)

// Factory constructs the provider for one ionization stage. stage is
// 1-based; grid is the shared temperature grid.
type Factory func(z, stage int, grid TemperatureGrid, cfg ProviderConfig) (Provider, error)

// ProviderConfig carries construction options through the element
// constructor to every stage provider. The core never interprets it beyond
// picking the factory; everything else is passed through.
type ProviderConfig struct {
	// Dataset names the rate dataset version.
	Dataset string `yaml:"dataset"`
	// Abundance names the abundance set.
	Abundance string `yaml:"abundance"`
	// Params holds free-form provider options.
	Params map[string]float64 `yaml:"params,omitempty"`
	// Factory overrides the built-in provider. Nil selects NewHydrogenic.
	Factory Factory `yaml:"-"`
}

// DefaultProviderConfig returns the documented defaults: the built-in
// hydrogenic dataset with photospheric abundances.
func DefaultProviderConfig() ProviderConfig {
	return ProviderConfig{
		Dataset:   DefaultDataset,
		Abundance: DefaultAbundance,
	}
}

// Build constructs the stage provider using the configured factory.
func (c ProviderConfig) Build(z, stage int, grid TemperatureGrid) (Provider, error) {
	f := c.Factory
	if f == nil {
		f = NewHydrogenic
	}
	return f(z, stage, grid, c)
}
