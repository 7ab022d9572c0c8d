// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggsurface

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ortskurve"
)

// ErrNilCanvas is returned by DrawCanvas for a nil canvas.
var ErrNilCanvas = errors.New("ggsurface: nil canvas")

// NewCanvas creates a GPU window canvas of the given size.
// The provider usually comes from gogpu.App.GPUContextProvider().
func NewCanvas(provider gpucontext.DeviceProvider, width, height int) (*ggcanvas.Canvas, error) {
	c, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("ggsurface: %w", err)
	}
	return c, nil
}

// DrawCanvas runs draw on the canvas's gg.Context and marks the canvas dirty
// so that the next Flush uploads the result. The error returned by draw is
// returned unchanged.
//
// Example:
//
//	err := ggsurface.DrawCanvas(canvas, func(dc ortskurve.DrawingContext) error {
//	    return ortskurve.Render(dc, 270, 135, 100)
//	})
func DrawCanvas(c *ggcanvas.Canvas, draw func(ortskurve.DrawingContext) error) error {
	if c == nil {
		return ErrNilCanvas
	}
	var drawErr error
	if err := c.Draw(func(dc *gg.Context) {
		drawErr = draw(New(dc))
	}); err != nil {
		return fmt.Errorf("ggsurface: %w", err)
	}
	return drawErr
}
