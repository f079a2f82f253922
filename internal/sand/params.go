package sand

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
)

// Parameter bounds. MaxGravity only limits the HUD buttons; configured
// gravity is unbounded above.
const (
	MaxGravity     = 32
	MaxBrushRadius = 64
	MaxCellSize    = 16
	DensityStep    = 0.05
)

// Params holds the tunables read by the driver at the start of every tick.
type Params struct {
	Gravity     int     `json:"gravity"`
	BrushRadius int     `json:"brush_radius"`
	Density     float64 `json:"density"`
	CellSize    int     `json:"cell_size"`
}

// DefaultParams returns the standard configuration.
func DefaultParams() Params {
	return Params{Gravity: 8, BrushRadius: 10, Density: 0.7, CellSize: 1}
}

// Clamp returns p with every field forced into its valid range.
func (p Params) Clamp() Params {
	if p.Gravity < 0 {
		p.Gravity = 0
	}
	p.BrushRadius = clampInt(p.BrushRadius, 0, MaxBrushRadius)
	p.CellSize = clampInt(p.CellSize, 1, MaxCellSize)
	switch {
	case math.IsNaN(p.Density):
		p.Density = 0
	case p.Density < 0:
		p.Density = 0
	case p.Density > 1:
		p.Density = 1
	}
	return p
}

// ParamsFromMap populates Params from flag-style key/value pairs. Unknown keys
// and unparsable values keep their defaults.
func ParamsFromMap(cfg map[string]string) Params {
	p := DefaultParams()
	if cfg == nil {
		return p
	}
	if v, ok := cfg[KeyGravity]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.Gravity = parsed
		}
	}
	if v, ok := cfg[KeyBrush]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.BrushRadius = parsed
		}
	}
	if v, ok := cfg[KeyDensity]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			p.Density = parsed
		}
	}
	if v, ok := cfg[KeyCellSize]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.CellSize = parsed
		}
	}
	return p.Clamp()
}

// LoadPreset reads Params from a JSON file. A missing file yields the
// defaults.
func LoadPreset(path string) (Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultParams(), nil
		}
		return Params{}, fmt.Errorf("read preset %s: %w", path, err)
	}
	p := DefaultParams()
	if err := json.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("decode preset %s: %w", path, err)
	}
	return p.Clamp(), nil
}

// SavePreset writes p as indented JSON.
func SavePreset(path string, p Params) error {
	data, err := json.MarshalIndent(p.Clamp(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode preset: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write preset %s: %w", path, err)
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
