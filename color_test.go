// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ortskurve

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#00cc00", color.NRGBA{R: 0x00, G: 0xcc, B: 0x00, A: 0xff}},
		{"#FF0000", color.NRGBA{R: 0xff, A: 0xff}},
		{"#abc", color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}},
		{"#abc8", color.NRGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0x88}},
		{"#11223344", color.NRGBA{R: 0x11, G: 0x22, B: 0x33, A: 0x44}},
		{"  #000000 ", color.NRGBA{A: 0xff}},
		{"green", color.NRGBA{G: 0x80, A: 0xff}},
		{"Green", color.NRGBA{G: 0x80, A: 0xff}},
		{"STEELBLUE", color.NRGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}},
		{"transparent", color.NRGBA{}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#1234567", "#123456789", "#gg0000", "00cc00", "notacolor"} {
		if _, err := ParseColor(in); !errors.Is(err, ErrInvalidColor) {
			t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", in, err)
		}
	}
}

func TestParseColorDefault(t *testing.T) {
	if _, err := ParseColor(DefaultColor); err != nil {
		t.Errorf("ParseColor(DefaultColor) error = %v", err)
	}
	if _, err := ParseColor(DefaultAxisColor); err != nil {
		t.Errorf("ParseColor(DefaultAxisColor) error = %v", err)
	}
	if _, err := ParseColor(DefaultMeasurementColor); err != nil {
		t.Errorf("ParseColor(DefaultMeasurementColor) error = %v", err)
	}
}
