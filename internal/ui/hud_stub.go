//go:build !ebiten

package ui

import "mad-sand/internal/core"

// Source is the simulation the HUD inspects.
type Source interface {
	Name() string
	Size() core.Size
}

// Commands are the run controls exposed as HUD buttons.
type Commands interface {
	Clear()
	TogglePause() bool
	Running() bool
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(Source, Commands, int) *HUD { return nil }

// Width is always zero in the headless build.
func (h *HUD) Width() int { return 0 }

// Captures never claims the pointer in the headless build.
func (h *HUD) Captures(int, int) bool { return false }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
