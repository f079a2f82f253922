package sand

import "mad-sand/internal/core"

// Parameter keys shared by the HUD, flags and key=value overrides.
const (
	KeyGravity  = "gravity"
	KeyBrush    = "brush"
	KeyDensity  = "density"
	KeyCellSize = "cell"
	KeyRunning  = "running"
)

// Parameters reports the current tunables for the HUD.
func (d *Driver) Parameters() core.ParameterSnapshot {
	p := d.state.Params
	size := d.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Physics",
			Params: []core.Parameter{
				core.IntParam(KeyGravity, "Gravity", p.Gravity),
				core.BoolParam(KeyRunning, "Running", d.state.Running),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				core.IntParam(KeyBrush, "Brush size", p.BrushRadius),
				core.FloatParam(KeyDensity, "Density", p.Density),
			},
		},
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam(KeyCellSize, "Cell size", p.CellSize),
				core.IntParam("w", "Width", size.W),
				core.IntParam("h", "Height", size.H),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable parameters.
func (d *Driver) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeyGravity, Label: "Gravity", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxGravity, HasMin: true, HasMax: true},
		{Key: KeyBrush, Label: "Brush size", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: MaxBrushRadius, HasMin: true, HasMax: true},
		{Key: KeyDensity, Label: "Density", Type: core.ParamTypeFloat, Step: DensityStep, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: KeyCellSize, Label: "Cell size", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: MaxCellSize, HasMin: true, HasMax: true},
	}
}

// SetIntParameter applies an integer HUD adjustment.
func (d *Driver) SetIntParameter(key string, value int) bool {
	p := d.state.Params
	switch key {
	case KeyGravity:
		p.Gravity = value
	case KeyBrush:
		p.BrushRadius = value
	case KeyCellSize:
		p.CellSize = value
	default:
		return false
	}
	d.SetParams(p)
	return true
}

// SetFloatParameter applies a floating point HUD adjustment.
func (d *Driver) SetFloatParameter(key string, value float64) bool {
	if key != KeyDensity {
		return false
	}
	p := d.state.Params
	p.Density = value
	d.SetParams(p)
	return true
}
