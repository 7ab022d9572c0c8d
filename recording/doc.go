// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package recording provides a DrawingContext that records drawing calls.
//
// Calls are stored as typed Command values in the order they were issued,
// including state changes such as SetLineWidth, so a Recording is an exact
// transcript of what a renderer did. Recordings can be compared, printed, and
// replayed onto any other ortskurve.DrawingContext.
//
// # Example
//
//	rec := recording.NewRecorder()
//	_ = ortskurve.Render(rec, 100, 100, 50)
//	r := rec.FinishRecording()
//
//	for _, cmd := range r.Commands() {
//	    fmt.Println(cmd)
//	}
//
//	// Replay onto a raster surface
//	_ = r.Playback(surface)
package recording
