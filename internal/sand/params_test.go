package sand

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestParamsClamp(t *testing.T) {
	p := Params{Gravity: -1, BrushRadius: -3, Density: math.NaN(), CellSize: 0}.Clamp()
	if p.Gravity != 0 || p.BrushRadius != 0 || p.Density != 0 || p.CellSize != 1 {
		t.Fatalf("unexpected clamp %+v", p)
	}
	if got := DefaultParams().Clamp(); got != DefaultParams() {
		t.Fatalf("defaults should already be valid, got %+v", got)
	}
}

func TestParamsFromMap(t *testing.T) {
	p := ParamsFromMap(map[string]string{"gravity": "3", "brush": "x", "density": "0.4", "cell": "99"})
	want := Params{Gravity: 3, BrushRadius: 10, Density: 0.4, CellSize: MaxCellSize}
	if p != want {
		t.Fatalf("got %+v want %+v", p, want)
	}
	if ParamsFromMap(nil) != DefaultParams() {
		t.Fatal("nil map should give defaults")
	}
}

func TestGravityIsNotCappedAtConfiguration(t *testing.T) {
	if got := (Params{Gravity: 500, CellSize: 1}).Clamp().Gravity; got != 500 {
		t.Fatalf("clamp should only bound gravity below, got %d", got)
	}
	if got := ParamsFromMap(map[string]string{"gravity": "120"}).Gravity; got != 120 {
		t.Fatalf("key=value gravity should pass through, got %d", got)
	}
	path := filepath.Join(t.TempDir(), "steep.json")
	if err := os.WriteFile(path, []byte(`{"gravity": 75}`), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Gravity != 75 {
		t.Fatalf("preset gravity should pass through, got %d", p.Gravity)
	}
}

func TestPresetRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "preset.json")
	want := Params{Gravity: 4, BrushRadius: 6, Density: 0.35, CellSize: 2}
	if err := SavePreset(path, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadPreset(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestLoadPresetMissingAndInvalid(t *testing.T) {
	dir := t.TempDir()
	p, err := LoadPreset(filepath.Join(dir, "absent.json"))
	if err != nil || p != DefaultParams() {
		t.Fatalf("missing preset should give defaults, got %+v %v", p, err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{gravity"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadPreset(bad); err == nil {
		t.Fatal("malformed preset should fail")
	}

	partial := filepath.Join(dir, "partial.json")
	if err := os.WriteFile(partial, []byte(`{"gravity": -7}`), 0o644); err != nil {
		t.Fatal(err)
	}
	p, err = LoadPreset(partial)
	if err != nil {
		t.Fatalf("partial preset: %v", err)
	}
	if p.Gravity != 0 || p.BrushRadius != DefaultParams().BrushRadius {
		t.Fatalf("partial preset should clamp and keep defaults, got %+v", p)
	}
}
