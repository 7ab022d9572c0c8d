// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package coords

import "fmt"

// Axes holds the pixel end points of the coordinate axes of a range.
type Axes struct {
	XStart, XEnd Point // (MinX, 0) to (MaxX, 0)
	YStart, YEnd Point // (0, MinY) to (0, MaxY)
}

// NewAxes converts the axes of r to pixels.
func NewAxes(r Range, c *Converter) Axes {
	return Axes{
		XStart: c.Pixel(Pt(r.MinX, 0)),
		XEnd:   c.Pixel(Pt(r.MaxX, 0)),
		YStart: c.Pixel(Pt(0, r.MinY)),
		YEnd:   c.Pixel(Pt(0, r.MaxY)),
	}
}

func (a Axes) String() string {
	return fmt.Sprintf("x: %v-%v; y: %v-%v", a.XStart, a.XEnd, a.YStart, a.YEnd)
}
