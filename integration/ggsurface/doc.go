// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ggsurface draws ortskurve figures with gogpu/gg.
//
// Surface adapts a *gg.Context to ortskurve.DrawingContext:
//
//	dc := gg.NewContext(540, 270)
//	s := ggsurface.New(dc)
//	if err := ortskurve.Render(s, 270, 135, 100); err != nil {
//	    return err
//	}
//	_ = dc.SavePNG("locus.png")
//
// For GPU-accelerated windows, DrawCanvas runs a drawing on a
// ggcanvas.Canvas and marks it for upload:
//
//	canvas, err := ggsurface.NewCanvas(app.GPUContextProvider(), 540, 270)
//	err = ggsurface.DrawCanvas(canvas, fig.Draw)
//	canvas.RenderTo(dc)
//
// # Canvas Semantics
//
// gg clears its path on Stroke and has no arc direction flag. Surface keeps
// the HTML canvas behavior instead: Stroke leaves the path alone (BeginPath
// clears it), arcs follow the counterclockwise flag, and an arc is joined to
// the current point by a straight line.
//
// # Thread Safety
//
// Surface is NOT safe for concurrent use, like the gg.Context it wraps.
package ggsurface
