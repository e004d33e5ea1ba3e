package storage

import (
	"math"
	"testing"

	"github.com/san-kum/ioneq/internal/ioneq"
	"github.com/san-kum/ioneq/internal/rates"
)

func sampleTable(t *testing.T) *ioneq.FractionTable {
	t.Helper()
	grid := rates.Logspace(1e4, 1e6, 8)
	el, err := ioneq.New("He", grid, rates.DefaultProviderConfig())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	frac, err := el.EquilibriumIonization()
	if err != nil {
		t.Fatalf("EquilibriumIonization failed: %v", err)
	}
	return frac
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	frac := sampleTable(t)
	runID, err := st.Save("He", 2, "hydrogenic", frac)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if meta.Element != "He" || meta.AtomicNumber != 2 || meta.Stages != 3 {
		t.Errorf("metadata mismatch: %+v", meta)
	}
	if meta.Points != 8 || meta.Dataset != "hydrogenic" {
		t.Errorf("metadata mismatch: %+v", meta)
	}

	loaded, err := st.LoadFractions(runID)
	if err != nil {
		t.Fatalf("LoadFractions failed: %v", err)
	}
	if len(loaded.Fractions) != len(frac.Fractions) {
		t.Fatalf("expected %d rows, got %d", len(frac.Fractions), len(loaded.Fractions))
	}
	for i, row := range loaded.Fractions {
		for j, v := range row {
			if math.Abs(v-frac.Fractions[i][j]) > 1e-7 {
				t.Errorf("fraction [%d][%d] = %g, want %g", i, j, v, frac.Fractions[i][j])
			}
		}
	}
}

func TestListEmpty(t *testing.T) {
	st := New(t.TempDir() + "/absent")
	runs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	frac := sampleTable(t)
	if _, err := st.Save("He", 2, "hydrogenic", frac); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Element != "He" {
		t.Errorf("unexpected runs: %+v", runs)
	}
}

func TestLoadMissingRun(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("he_0"); err == nil {
		t.Error("expected error for missing run")
	}
	if _, err := st.LoadFractions("he_0"); err == nil {
		t.Error("expected error for missing run")
	}
}
