package plotting

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeSheet(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write stylesheet: %v", err)
	}
	return path
}

func TestLoadStyleSheet(t *testing.T) {
	path := writeSheet(t, "width: 1200\nheight: 400\nsweep_alpha: 0.3\ngrid: false\nlegend: true\n")
	got, err := LoadStyleSheet(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	alpha := 0.3
	grid := false
	legend := true
	want := &StyleSheet{Width: 1200, Height: 400, SweepAlpha: &alpha, Grid: &grid, Legend: &legend}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("stylesheet mismatch (-want +got):\n%s", diff)
	}
}

func TestStyleSheetApplyOverridesOnlySetFields(t *testing.T) {
	alpha := 0.2
	s := &StyleSheet{Width: 800, SweepAlpha: &alpha}
	o := s.Apply(DefaultProfileOptions())
	if o.Width != 800 || o.SweepAlpha != 0.2 {
		t.Fatalf("overrides not applied: %+v", o)
	}
	if !o.Grid || !o.PlotMean {
		t.Fatalf("unset fields must keep defaults: %+v", o)
	}
}

func TestLoadStyleSheetRejectsBadAlpha(t *testing.T) {
	path := writeSheet(t, "sweep_alpha: 1.7\n")
	if _, err := LoadStyleSheet(path); err == nil {
		t.Fatal("expected error for sweep_alpha outside [0,1]")
	}
}

func TestLoadStyleSheetMissingFile(t *testing.T) {
	if _, err := LoadStyleSheet(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing stylesheet")
	}
}
