// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package coords maps real-valued plot coordinates onto a pixel area.
//
// A plot is dimensioned in three steps:
//
//	r, err := coords.AxisRange(points)        // value range incl. origin
//	conv, err := coords.NewConverter(r, 540, 270)
//	axes := coords.NewAxes(r, conv)
//
// The converter uses one scale factor for both dimensions so circles stay
// circles, centers the range along the dimension with spare pixels, and flips
// the y axis so that pixel y grows downward.
package coords
