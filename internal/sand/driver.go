package sand

import "mad-sand/internal/core"

// PointerSample is one pointer reading in device coordinates.
type PointerSample struct {
	Pressed bool
	X, Y    int
}

// PointerState is the pointer as the driver last saw it. LastX and LastY are
// grid coordinates derived from the device position DeviceX, DeviceY.
type PointerState struct {
	Held  bool
	LastX int
	LastY int

	DeviceX, DeviceY int
}

// SimulationState is everything one simulation owns between ticks.
type SimulationState struct {
	Grid    *Grid
	back    *Grid
	Params  Params
	Running bool
	Pointer PointerState
	Color   Color

	DeviceW, DeviceH int
}

// TickResult reports what a tick did.
type TickResult struct {
	Grid      *Grid
	Advanced  bool
	Deposited int
}

// Driver sequences deposition, advancement and rendering hand-off for one
// simulation. It is not safe for concurrent use.
type Driver struct {
	state SimulationState
	rng   core.Rand
	ticks uint64
}

// NewDriver creates a running simulation sized for a deviceW x deviceH
// surface.
func NewDriver(deviceW, deviceH int, p Params, rng core.Rand) *Driver {
	p = p.Clamp()
	d := &Driver{
		state: SimulationState{
			Grid:    &Grid{},
			back:    &Grid{},
			Params:  p,
			Running: true,
		},
		rng: rng,
	}
	d.state.Color = RandomColor(rng)
	d.Resize(deviceW, deviceH)
	return d
}

// Name identifies the simulation.
func (d *Driver) Name() string { return "sand" }

// Grid returns the current read buffer. It is replaced on every advancing
// tick; callers must not hold it across ticks.
func (d *Driver) Grid() *Grid { return d.state.Grid }

// Size returns the grid dimensions.
func (d *Driver) Size() core.Size { return d.state.Grid.Size() }

// Params returns the active parameters.
func (d *Driver) Params() Params { return d.state.Params }

// Pointer returns the last folded pointer state.
func (d *Driver) Pointer() PointerState { return d.state.Pointer }

// Color returns the color of the current press.
func (d *Driver) Color() Color { return d.state.Color }

// Ticks returns the number of ticks that advanced the grid.
func (d *Driver) Ticks() uint64 { return d.ticks }

// Running reports whether ticks advance the grid.
func (d *Driver) Running() bool { return d.state.Running }

// SetRunning pauses or resumes advancement.
func (d *Driver) SetRunning(running bool) { d.state.Running = running }

// TogglePause flips the run state and returns the new value of Running.
func (d *Driver) TogglePause() bool {
	d.state.Running = !d.state.Running
	return d.state.Running
}

// SetParams installs new parameters, clamped. Changing the cell size
// reallocates the grid.
func (d *Driver) SetParams(p Params) {
	p = p.Clamp()
	resize := p.CellSize != d.state.Params.CellSize
	d.state.Params = p
	if resize {
		d.Resize(d.state.DeviceW, d.state.DeviceH)
	}
}

// Resize records a new device surface and reallocates an empty grid for it.
func (d *Driver) Resize(deviceW, deviceH int) {
	if deviceW < 0 {
		deviceW = 0
	}
	if deviceH < 0 {
		deviceH = 0
	}
	d.state.DeviceW, d.state.DeviceH = deviceW, deviceH
	cs := d.state.Params.CellSize
	d.state.Grid.Resize(deviceW/cs, deviceH/cs)
	d.state.back.Resize(deviceW/cs, deviceH/cs)
	ptr := &d.state.Pointer
	ptr.LastX, ptr.LastY = d.ToGrid(ptr.DeviceX, ptr.DeviceY)
}

// Clear empties the grid, keeping its size.
func (d *Driver) Clear() {
	d.state.Grid.Clear()
}

// ToGrid maps device coordinates onto grid coordinates.
func (d *Driver) ToGrid(x, y int) (int, int) {
	cs := d.state.Params.CellSize
	return core.FloorDiv(x, cs), core.FloorDiv(y, cs)
}

// Sample folds one pointer reading into the pointer state. A fresh press picks
// a new color and paints; moving while held paints at the new position. It
// returns the number of grains deposited.
func (d *Driver) Sample(s PointerSample) int {
	gx, gy := d.ToGrid(s.X, s.Y)
	ptr := &d.state.Pointer
	ptr.DeviceX, ptr.DeviceY = s.X, s.Y
	if !s.Pressed {
		ptr.Held = false
		ptr.LastX, ptr.LastY = gx, gy
		return 0
	}
	if !ptr.Held {
		d.state.Color = RandomColor(d.rng)
		ptr.Held = true
		ptr.LastX, ptr.LastY = gx, gy
		return d.deposit()
	}
	if gx == ptr.LastX && gy == ptr.LastY {
		return 0
	}
	ptr.LastX, ptr.LastY = gx, gy
	return d.deposit()
}

// Tick runs one frame: advance when running, then keep painting while the
// pointer is held.
func (d *Driver) Tick() TickResult {
	res := TickResult{}
	if d.state.Running {
		d.advance()
		res.Advanced = true
	}
	if d.state.Pointer.Held {
		res.Deposited = d.deposit()
	}
	res.Grid = d.state.Grid
	return res
}

// Step advances exactly once regardless of the run state.
func (d *Driver) Step() *Grid {
	d.advance()
	return d.state.Grid
}

func (d *Driver) advance() {
	AdvanceInto(d.state.back, d.state.Grid, d.state.Params.Gravity, d.rng)
	d.state.Grid, d.state.back = d.state.back, d.state.Grid
	d.ticks++
}

func (d *Driver) deposit() int {
	p := d.state.Params
	ptr := d.state.Pointer
	return Deposit(d.state.Grid, ptr.LastX, ptr.LastY, p.BrushRadius, p.CellSize, p.Density, d.state.Color, d.rng)
}
