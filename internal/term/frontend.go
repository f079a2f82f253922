// Package term runs the sand simulation inside a terminal using tcell.
package term

import (
	"log"
	"math"
	"time"

	"mad-sand/internal/audio"
	"mad-sand/internal/core"
	"mad-sand/internal/sand"

	"github.com/gdamore/tcell/v2"
)

// Frontend owns a tcell screen and the driver it displays.
type Frontend struct {
	screen tcell.Screen
	driver *sand.Driver
	step   *core.FixedStep
	sound  *audio.Pourer
	preset string
}

// New prepares a frontend on an initialized screen.
func New(screen tcell.Screen, p sand.Params, rng core.Rand, tps int) *Frontend {
	w, h := DeviceSize(screen.Size())
	return &Frontend{
		screen: screen,
		driver: sand.NewDriver(w, h, p, rng),
		step:   core.NewFixedStep(tps),
	}
}

// SetSound attaches pouring feedback.
func (f *Frontend) SetSound(p *audio.Pourer) { f.sound = p }

// SetPreset sets the file the 's' key saves parameters to.
func (f *Frontend) SetPreset(path string) { f.preset = path }

// Driver exposes the simulation driver.
func (f *Frontend) Driver() *sand.Driver { return f.driver }

// Run processes events and frames until the user quits.
func (f *Frontend) Run() error {
	f.screen.EnableMouse(tcell.MouseDragEvents)
	f.screen.HideCursor()

	events := make(chan tcell.Event, 64)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Millisecond * 4)
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			if !f.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			if f.step.ShouldStep() {
				f.Frame()
			}
		}
	}
}

// HandleEvent applies one tcell event. It returns false when the user asked
// to quit.
func (f *Frontend) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.HandleKey(ev.Key(), ev.Rune())
	case *tcell.EventMouse:
		col, row := ev.Position()
		f.HandleMouse(col, row, ev.Buttons()&tcell.Button1 != 0)
	case *tcell.EventResize:
		f.Resize()
	}
	return true
}

// HandleKey applies a key press. It returns false on quit keys.
func (f *Frontend) HandleKey(key tcell.Key, r rune) bool {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	switch r {
	case 'q', 'Q':
		return false
	case 'p', 'P', ' ':
		f.driver.TogglePause()
	case 'r', 'R', 'c', 'C':
		f.driver.Clear()
	case 'n', 'N':
		if !f.driver.Running() {
			f.driver.Step()
		}
	case 's', 'S':
		f.savePreset()
	case '+', '=':
		f.adjust(sand.KeyGravity, 1)
	case '-', '_':
		f.adjust(sand.KeyGravity, -1)
	case ']':
		f.adjust(sand.KeyBrush, 1)
	case '[':
		f.adjust(sand.KeyBrush, -1)
	case '.':
		f.adjust(sand.KeyDensity, 1)
	case ',':
		f.adjust(sand.KeyDensity, -1)
	case '>':
		f.adjust(sand.KeyCellSize, 1)
	case '<':
		f.adjust(sand.KeyCellSize, -1)
	}
	return true
}

// HandleMouse records a pointer sample in terminal coordinates and feeds it to
// the driver. Clicks on the status line do not paint.
func (f *Frontend) HandleMouse(col, row int, pressed bool) {
	_, rows := f.screen.Size()
	if pressed && !f.driver.Pointer().Held && row >= rows-1 {
		pressed = false
	}
	x, y := DevicePoint(col, row)
	f.sound.Pour(f.driver.Sample(sand.PointerSample{Pressed: pressed, X: x, Y: y}))
}

// Resize reallocates the grid for the current screen size.
func (f *Frontend) Resize() {
	f.driver.Resize(DeviceSize(f.screen.Size()))
	f.screen.Sync()
}

// Frame advances one tick and redraws.
func (f *Frontend) Frame() {
	res := f.driver.Tick()
	f.sound.Pour(res.Deposited)
	f.Draw()
}

// Draw renders the grid and status line.
func (f *Frontend) Draw() {
	DrawGrid(f.screen, f.driver.Grid(), f.driver.Params().CellSize)
	DrawStatus(f.screen, statusLine(f.driver))
	f.screen.Show()
}

// adjust moves a parameter one control step. Increases stop at the control
// range, matching the HUD buttons.
func (f *Frontend) adjust(key string, direction int) {
	for _, ctrl := range f.driver.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		if ctrl.Type == core.ParamTypeFloat {
			v := f.driver.Params().Density + float64(direction)*ctrl.Step
			f.driver.SetFloatParameter(key, math.Round(v/ctrl.Step)*ctrl.Step)
			return
		}
		target := f.intValue(key) + direction*int(ctrl.Step)
		if direction > 0 && ctrl.HasMax && float64(target) > ctrl.Max {
			return
		}
		f.driver.SetIntParameter(key, target)
		return
	}
}

func (f *Frontend) intValue(key string) int {
	p := f.driver.Params()
	switch key {
	case sand.KeyGravity:
		return p.Gravity
	case sand.KeyBrush:
		return p.BrushRadius
	case sand.KeyCellSize:
		return p.CellSize
	}
	return 0
}

func (f *Frontend) savePreset() {
	if f.preset == "" {
		return
	}
	if err := sand.SavePreset(f.preset, f.driver.Params()); err != nil {
		log.Printf("save preset: %v", err)
	}
}
