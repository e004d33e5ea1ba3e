package rates

// Unit labels the physical unit of a rate quantity.
type Unit string

// CentimetersCubedPerSecond is the conventional unit for collisional rate
// coefficients.
const CentimetersCubedPerSecond Unit = "cm3 / s"

// Quantity is a rate coefficient evaluated over a temperature grid.
type Quantity struct {
	Values []float64
	Unit   Unit
}

// Provider supplies ionization and recombination rate coefficients for a
// single ionization stage of an element, evaluated over the shared
// temperature grid. Stage numbering is spectroscopic: stage 1 is the
// neutral atom, stage Z+1 the bare nucleus.
type Provider interface {
	// AtomicNumber is the element's atomic number Z.
	AtomicNumber() int
	// Stage is the 1-based ionization stage.
	Stage() int
	// Name is the spectroscopic label, e.g. "Fe 9".
	Name() string
	// IonizationRate is the rate coefficient for losing an electron,
	// shape matching the temperature grid. Zero for the bare stage.
	IonizationRate() Quantity
	// RecombinationRate is the rate coefficient for capturing an electron,
	// shape matching the temperature grid. Zero for the neutral stage.
	RecombinationRate() Quantity
}
