// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ortskurve draws locus curves ("Ortskurven") onto 2D drawing surfaces.
//
// # Overview
//
// A locus curve is rendered as a circle outline with a small crosshair marking
// its center. The drawing surface is anything that implements [DrawingContext],
// an immediate-mode API in the style of the HTML canvas:
//
//	rec := recording.NewRecorder()
//	if err := ortskurve.Render(rec, 100, 100, 50); err != nil {
//	    return err
//	}
//
// The color defaults to [DefaultColor] and can be chosen per call:
//
//	ortskurve.Render(dc, 100, 100, 50, ortskurve.WithColor("#ff0000"))
//	ortskurve.RenderColor(dc, 100, 100, 50, "#ff0000")
//
// # Figures
//
// [NewFigure] lays out a complete plot from measured points and a circle given
// in real coordinates: it dimensions a coordinate system that contains the
// points, the circle and the origin, converts everything to pixels with
// package coords, and draws axes, measurement markers and the locus.
//
// # Backends
//
// Adapters for concrete surfaces live under integration/:
//   - integration/ggsurface: gogpu/gg contexts and GPU window canvases
//   - integration/fogleman: fogleman/gg contexts
//   - integration/svgcanvas: SVG documents written with ajstarks/svgo
//   - integration/plotvg: gonum/plot vector canvases
//
// Package recording provides a DrawingContext that records every call, used
// for testing and for replaying a drawing onto several surfaces.
//
// # Logging
//
// ortskurve is silent by default. See [SetLogger].
package ortskurve
