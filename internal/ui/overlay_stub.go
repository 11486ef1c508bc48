//go:build !ebiten

package ui

import (
	"slopelight/internal/core"
	"slopelight/internal/render"
	"slopelight/internal/terrain"
)

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(*terrain.Path, []render.Point, core.Sim) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
