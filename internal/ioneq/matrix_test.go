package ioneq

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/san-kum/ioneq/internal/rates"
)

// stubIon is a hand-fed rate provider for exercising the builder directly,
// including degenerate chains no real element produces.
type stubIon struct {
	z, stage int
	ion, rec []float64
}

func (s *stubIon) AtomicNumber() int { return s.z }
func (s *stubIon) Stage() int        { return s.stage }
func (s *stubIon) Name() string      { return fmt.Sprintf("X %d", s.stage) }

func (s *stubIon) IonizationRate() rates.Quantity {
	return rates.Quantity{Values: s.ion, Unit: rates.CentimetersCubedPerSecond}
}

func (s *stubIon) RecombinationRate() rates.Quantity {
	return rates.Quantity{Values: s.rec, Unit: rates.CentimetersCubedPerSecond}
}

func buildOxygenMatrix(t *testing.T, grid rates.TemperatureGrid) *RateMatrix {
	t.Helper()
	el, err := NewZ(8, grid, rates.DefaultProviderConfig())
	if err != nil {
		t.Fatalf("NewZ(8) failed: %v", err)
	}
	m, err := el.RateMatrix()
	if err != nil {
		t.Fatalf("RateMatrix failed: %v", err)
	}
	return m
}

func TestRateMatrixShape(t *testing.T) {
	grid := rates.Logspace(1e4, 1e8, 7)
	m := buildOxygenMatrix(t, grid)

	if m.Samples() != len(grid) {
		t.Errorf("Samples() = %d, want %d", m.Samples(), len(grid))
	}
	if m.Stages() != 9 {
		t.Errorf("Stages() = %d, want 9", m.Stages())
	}
	if m.Unit != rates.CentimetersCubedPerSecond {
		t.Errorf("Unit = %q", m.Unit)
	}
}

func TestRateMatrixTridiagonal(t *testing.T) {
	grid := rates.Logspace(1e4, 1e8, 5)
	m := buildOxygenMatrix(t, grid)

	for ti, a := range m.Slices {
		n, _ := a.Dims()
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				v := a.At(i, j)
				switch {
				case i == j:
					if v > 0 {
						t.Errorf("slice %d: diagonal (%d,%d) = %g, want <= 0", ti, i, j, v)
					}
				case j == i-1 || j == i+1:
					if v < 0 {
						t.Errorf("slice %d: off-diagonal (%d,%d) = %g, want >= 0", ti, i, j, v)
					}
				default:
					if v != 0 {
						t.Errorf("slice %d: entry (%d,%d) = %g, want 0", ti, i, j, v)
					}
				}
			}
		}
	}
}

func TestRateMatrixEntries(t *testing.T) {
	grid := rates.TemperatureGrid{1e6}
	el, err := NewZ(8, grid, rates.DefaultProviderConfig())
	if err != nil {
		t.Fatalf("NewZ(8) failed: %v", err)
	}
	m, err := el.RateMatrix()
	if err != nil {
		t.Fatalf("RateMatrix failed: %v", err)
	}
	a := m.Slices[0]

	ions := el.Ions()
	ion := func(i int) float64 { return ions[i].IonizationRate().Values[0] }
	rec := func(i int) float64 { return ions[i].RecombinationRate().Values[0] }

	n := el.Len()
	for i := 0; i < n; i++ {
		if got, want := a.At(i, i), -(ion(i) + rec(i)); got != want {
			t.Errorf("diagonal %d: got %g, want %g", i, got, want)
		}
		if i > 0 {
			if got, want := a.At(i, i-1), ion(i-1); got != want {
				t.Errorf("subdiagonal %d: got %g, want %g", i, got, want)
			}
		}
		if i < n-1 {
			if got, want := a.At(i, i+1), rec(i+1); got != want {
				t.Errorf("superdiagonal %d: got %g, want %g", i, got, want)
			}
		}
	}
}

func TestRateMatrixColumnBalance(t *testing.T) {
	grid := rates.Logspace(1e4, 1e8, 9)
	m := buildOxygenMatrix(t, grid)

	if imb := m.MaxColumnImbalance(); imb > 1e-12 {
		t.Errorf("column imbalance %g, want ~0", imb)
	}
}

func TestRateMatrixHydrogen(t *testing.T) {
	grid := rates.Logspace(1e3, 1e6, 4)
	el, err := NewZ(1, grid, rates.DefaultProviderConfig())
	if err != nil {
		t.Fatalf("NewZ(1) failed: %v", err)
	}
	m, err := el.RateMatrix()
	if err != nil {
		t.Fatalf("RateMatrix failed: %v", err)
	}

	if m.Stages() != 2 || m.Samples() != 4 {
		t.Fatalf("got %d stages x %d samples, want 2x4", m.Stages(), m.Samples())
	}
	if imb := m.MaxColumnImbalance(); imb > 1e-12 {
		t.Errorf("column imbalance %g, want ~0", imb)
	}
}

func TestRateMatrixSingleStage(t *testing.T) {
	// A one-provider chain has no neighbor stages at all; the builder
	// must fill the 1x1 slice from the diagonal term alone.
	grid := rates.TemperatureGrid{1e5, 1e6}
	p := &stubIon{z: 1, stage: 1, ion: []float64{2, 3}, rec: []float64{0, 0}}

	m, err := BuildRateMatrix([]rates.Provider{p}, grid)
	if err != nil {
		t.Fatalf("BuildRateMatrix failed: %v", err)
	}
	if m.Stages() != 1 || m.Samples() != 2 {
		t.Fatalf("got %d stages x %d samples, want 1x2", m.Stages(), m.Samples())
	}
	if got := m.Slices[0].At(0, 0); got != -2 {
		t.Errorf("slice 0: got %g, want -2", got)
	}
	if got := m.Slices[1].At(0, 0); got != -3 {
		t.Errorf("slice 1: got %g, want -3", got)
	}
}

func TestBuildRateMatrixErrors(t *testing.T) {
	grid := rates.TemperatureGrid{1e5, 1e6}

	if _, err := BuildRateMatrix(nil, grid); !errors.Is(err, ErrNoProviders) {
		t.Errorf("empty chain: got %v, want ErrNoProviders", err)
	}

	short := &stubIon{z: 1, stage: 1, ion: []float64{1}, rec: []float64{0}}
	full := &stubIon{z: 1, stage: 2, ion: []float64{0, 0}, rec: []float64{1, 1}}
	if _, err := BuildRateMatrix([]rates.Provider{short, full}, grid); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("short provider: got %v, want ErrShapeMismatch", err)
	}

	if _, err := BuildRateMatrix([]rates.Provider{short}, rates.TemperatureGrid{}); err == nil {
		t.Error("empty grid: expected error")
	}
}

func TestMaxColumnImbalanceDetectsLeak(t *testing.T) {
	grid := rates.TemperatureGrid{1e6}
	// Neutral stage that recombines downward out of the chain: column 0
	// no longer balances.
	leaky := &stubIon{z: 1, stage: 1, ion: []float64{1}, rec: []float64{0.5}}
	bare := &stubIon{z: 1, stage: 2, ion: []float64{0}, rec: []float64{1}}

	m, err := BuildRateMatrix([]rates.Provider{leaky, bare}, grid)
	if err != nil {
		t.Fatalf("BuildRateMatrix failed: %v", err)
	}
	if imb := m.MaxColumnImbalance(); math.Abs(imb-0.5/1.5) > 1e-12 {
		t.Errorf("imbalance = %g, want %g", imb, 0.5/1.5)
	}
}
