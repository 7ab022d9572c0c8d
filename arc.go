// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ortskurve

import "math"

// ArcSweep returns the signed angle an arc covers when drawn from startAngle
// to endAngle, following the HTML canvas rules: clockwise arcs (increasing
// angle) have a non-negative sweep, counterclockwise arcs a non-positive one.
// A requested span of 2π or more in the drawing direction is a full circle;
// anything shorter is reduced modulo 2π.
//
// Backends whose arc primitive lacks a direction flag use ArcSweep to translate
// DrawingContext.Arc calls.
func ArcSweep(startAngle, endAngle float64, counterclockwise bool) float64 {
	const twoPi = 2 * math.Pi

	d := endAngle - startAngle
	if counterclockwise {
		d = -d
	}
	if d >= twoPi {
		d = twoPi
	} else {
		d = math.Mod(d, twoPi)
		if d < 0 {
			d += twoPi
		}
	}
	if counterclockwise {
		return -d
	}
	return d
}
