package ioneq

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/san-kum/ioneq/internal/atomic"
	"github.com/san-kum/ioneq/internal/rates"
)

func testGrid() rates.TemperatureGrid {
	return rates.Logspace(1e4, 1e8, 10)
}

func TestNewElement(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"symbol", "Fe"},
		{"lowercase symbol", "fe"},
		{"element name", "iron"},
		{"atomic number", "26"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el, err := New(tt.in, testGrid(), rates.DefaultProviderConfig())
			if err != nil {
				t.Fatalf("New(%q) failed: %v", tt.in, err)
			}
			if el.AtomicNumber() != 26 || el.Symbol() != "Fe" || el.Name() != "iron" {
				t.Errorf("identity mismatch: Z=%d %s %s", el.AtomicNumber(), el.Symbol(), el.Name())
			}
			if el.Len() != 27 {
				t.Errorf("Len() = %d, want 27", el.Len())
			}
		})
	}
}

func TestNewElementUnresolvable(t *testing.T) {
	_, err := New("unobtanium", testGrid(), rates.DefaultProviderConfig())
	if !errors.Is(err, atomic.ErrUnknownElement) {
		t.Errorf("got %v, want ErrUnknownElement", err)
	}
}

func TestNewElementBadGrid(t *testing.T) {
	if _, err := New("Fe", rates.TemperatureGrid{}, rates.DefaultProviderConfig()); err == nil {
		t.Error("empty grid: expected error")
	}
	if _, err := New("Fe", rates.TemperatureGrid{-1}, rates.DefaultProviderConfig()); err == nil {
		t.Error("negative temperature: expected error")
	}
}

func TestElementStageOrdering(t *testing.T) {
	el, err := New("O", testGrid(), rates.DefaultProviderConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for i, ion := range el.Ions() {
		if ion.Stage() != i+1 {
			t.Errorf("position %d holds stage %d, want %d", i, ion.Stage(), i+1)
		}
	}
}

func TestElementLookupEquivalence(t *testing.T) {
	el, err := New("Fe", testGrid(), rates.DefaultProviderConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	byPos, err := el.Ion(0)
	if err != nil {
		t.Fatalf("Ion(0) failed: %v", err)
	}
	byStage, err := el.Lookup("Fe 1")
	if err != nil {
		t.Fatalf(`Lookup("Fe 1") failed: %v`, err)
	}
	byCharge, err := el.Lookup("Fe 0+")
	if err != nil {
		t.Fatalf(`Lookup("Fe 0+") failed: %v`, err)
	}

	if byPos != byStage || byPos != byCharge {
		t.Error("position, stage, and charge lookups resolved to different providers")
	}
}

func TestElementLookupErrors(t *testing.T) {
	el, err := New("Fe", testGrid(), rates.DefaultProviderConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := el.Lookup("Fe"); !errors.Is(err, ErrBadKey) {
		t.Errorf(`Lookup("Fe"): got %v, want ErrBadKey`, err)
	}
	if _, err := el.Lookup("Fe 40"); !errors.Is(err, ErrStageRange) {
		t.Errorf(`Lookup("Fe 40"): got %v, want ErrStageRange`, err)
	}
	if _, err := el.Ion(-1); !errors.Is(err, ErrStageRange) {
		t.Errorf("Ion(-1): got %v, want ErrStageRange", err)
	}
	if _, err := el.Ion(27); !errors.Is(err, ErrStageRange) {
		t.Errorf("Ion(27): got %v, want ErrStageRange", err)
	}
}

func TestElementFactoryFailure(t *testing.T) {
	cfg := rates.DefaultProviderConfig()
	cfg.Factory = func(z, stage int, grid rates.TemperatureGrid, c rates.ProviderConfig) (rates.Provider, error) {
		if stage == 3 {
			return nil, fmt.Errorf("dataset missing stage %d", stage)
		}
		return rates.NewHydrogenic(z, stage, grid, c)
	}

	el, err := New("O", testGrid(), cfg)
	if err == nil {
		t.Fatal("expected construction failure")
	}
	if el != nil {
		t.Error("partial element returned on failure")
	}
}

func TestElementString(t *testing.T) {
	el, err := New("He", testGrid(), rates.DefaultProviderConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	s := el.String()
	for _, want := range []string{"He (2) -- helium", "He 1", "He 2", "He 3"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
