//go:build !ebiten

package ui

import "mad-sand/internal/sand"

// Overlay is a no-op placeholder for headless builds.
type Overlay struct{}

// NewOverlay returns nil in the headless build.
func NewOverlay(*sand.Driver) *Overlay { return nil }

// Update is a no-op in the headless build.
func (o *Overlay) Update(int, int, bool) {}

// Draw is a no-op in the headless build.
func (o *Overlay) Draw(any) {}
