// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package coords

import (
	"errors"
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Abs(b))
}

func TestNewConverter(t *testing.T) {
	tests := []struct {
		name      string
		r         Range
		wantScale float64
		wantOrig  Point
	}{
		{
			name:      "y limits, centered in x",
			r:         Range{MinX: 0, MaxX: 10, MinY: -10, MaxY: 10},
			wantScale: 10,
			wantOrig:  Pt(50, 100),
		},
		{
			name:      "x limits, centered in y",
			r:         Range{MinX: -30, MaxX: 10, MinY: -15, MaxY: 5},
			wantScale: 5,
			wantOrig:  Pt(150, 75),
		},
		{
			name:      "x limits, origin on right border",
			r:         Range{MinX: -20, MaxX: 0, MinY: -5, MaxY: 5},
			wantScale: 10,
			wantOrig:  Pt(200, 100),
		},
		{
			name:      "x limits, origin on left border",
			r:         Range{MinX: 0, MaxX: 20, MinY: -2.5, MaxY: 7.5},
			wantScale: 10,
			wantOrig:  Pt(0, 125),
		},
		{
			name:      "y limits, origin on top border",
			r:         Range{MinX: -2.5, MaxX: 2.5, MinY: -10, MaxY: 0},
			wantScale: 20,
			wantOrig:  Pt(100, 0),
		},
		{
			name:      "y limits, origin on bottom border",
			r:         Range{MinX: -2.5, MaxX: 2.5, MinY: 0, MaxY: 20},
			wantScale: 10,
			wantOrig:  Pt(100, 200),
		},
		{
			name:      "zero height",
			r:         Range{MinX: -1, MaxX: 1, MinY: 0, MaxY: 0},
			wantScale: 100,
			wantOrig:  Pt(100, 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewConverter(tt.r, 200, 200)
			if err != nil {
				t.Fatalf("NewConverter() error = %v", err)
			}
			if !near(c.Scale(), tt.wantScale) {
				t.Errorf("Scale() = %g, want %g", c.Scale(), tt.wantScale)
			}
			got := c.Origin()
			if !near(got.X, tt.wantOrig.X) || !near(got.Y, tt.wantOrig.Y) {
				t.Errorf("Origin() = %v, want %v", got, tt.wantOrig)
			}
		})
	}
}

func TestNewConverterErrors(t *testing.T) {
	valid := Range{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1}
	tests := []struct {
		name          string
		r             Range
		width, height float64
		want          error
	}{
		{"zero width", valid, 0, 100, ErrInvalidSize},
		{"negative height", valid, 100, -1, ErrInvalidSize},
		{"NaN width", valid, math.NaN(), 100, ErrInvalidSize},
		{"point range", Range{}, 100, 100, ErrEmptyRange},
		{"inverted", Range{MinX: 1, MaxX: -1, MinY: -1, MaxY: 1}, 100, 100, ErrEmptyRange},
		{"infinite", Range{MinX: math.Inf(-1), MaxX: 1, MinY: -1, MaxY: 1}, 100, 100, ErrEmptyRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewConverter(tt.r, tt.width, tt.height)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewConverter() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestConverterPixel(t *testing.T) {
	c, err := NewConverter(Range{MinX: 0, MaxX: 10, MinY: -10, MaxY: 10}, 200, 200)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		in, want Point
	}{
		{Pt(0, 0), Pt(50, 100)},
		{Pt(10, 10), Pt(150, 0)},
		{Pt(10, -10), Pt(150, 200)},
		{Pt(2.5, 5), Pt(75, 50)},
	}
	for _, tt := range tests {
		got := c.Pixel(tt.in)
		if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
			t.Errorf("Pixel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}

	all := c.Pixels([]Point{tests[0].in, tests[1].in})
	if len(all) != 2 || all[1] != c.Pixel(tests[1].in) {
		t.Errorf("Pixels() = %v", all)
	}

	if got := c.Length(3); !near(got, 30) {
		t.Errorf("Length(3) = %g, want 30", got)
	}
}

func TestNewAxes(t *testing.T) {
	r := Range{MinX: -30, MaxX: 10, MinY: -15, MaxY: 5}
	c, err := NewConverter(r, 200, 200)
	if err != nil {
		t.Fatal(err)
	}

	a := NewAxes(r, c)
	want := Axes{
		XStart: Pt(0, 75),
		XEnd:   Pt(200, 75),
		YStart: Pt(150, 150),
		YEnd:   Pt(150, 50),
	}
	for _, p := range []struct {
		name      string
		got, want Point
	}{
		{"XStart", a.XStart, want.XStart},
		{"XEnd", a.XEnd, want.XEnd},
		{"YStart", a.YStart, want.YStart},
		{"YEnd", a.YEnd, want.YEnd},
	} {
		if !near(p.got.X, p.want.X) || !near(p.got.Y, p.want.Y) {
			t.Errorf("%s = %v, want %v", p.name, p.got, p.want)
		}
	}
}
