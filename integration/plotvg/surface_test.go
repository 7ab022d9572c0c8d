// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package plotvg

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/ortskurve"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"
)

// fakeCanvas records the state used by Surface.
type fakeCanvas struct {
	w, h    vg.Length
	width   vg.Length
	col     color.Color
	ops     []string
	strokes []vg.Path
	colors  []color.Color
}

func (c *fakeCanvas) Size() (vg.Length, vg.Length)           { return c.w, c.h }
func (c *fakeCanvas) SetLineWidth(w vg.Length)               { c.width = w }
func (c *fakeCanvas) SetLineDash([]vg.Length, vg.Length)     {}
func (c *fakeCanvas) SetColor(col color.Color)               { c.col = col }
func (c *fakeCanvas) Rotate(float64)                         {}
func (c *fakeCanvas) Translate(pt vg.Point)                  { c.ops = append(c.ops, "translate") }
func (c *fakeCanvas) Scale(x, y float64)                     { c.ops = append(c.ops, "scale") }
func (c *fakeCanvas) Push()                                  { c.ops = append(c.ops, "push") }
func (c *fakeCanvas) Pop()                                   { c.ops = append(c.ops, "pop") }
func (c *fakeCanvas) Fill(vg.Path)                           {}
func (c *fakeCanvas) FillString(font.Face, vg.Point, string) {}
func (c *fakeCanvas) DrawImage(vg.Rectangle, image.Image)    {}

func (c *fakeCanvas) Stroke(p vg.Path) {
	c.ops = append(c.ops, "stroke")
	c.strokes = append(c.strokes, append(vg.Path(nil), p...))
	c.colors = append(c.colors, c.col)
}

func TestRender(t *testing.T) {
	c := &fakeCanvas{w: 200, h: 100}
	if err := ortskurve.Render(New(c), 100, 50, 20); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if len(c.strokes) != 2 {
		t.Fatalf("strokes = %d, want 2", len(c.strokes))
	}

	circle := c.strokes[0]
	if len(circle) != 2 || circle[0].Type != vg.MoveComp || circle[1].Type != vg.ArcComp {
		t.Fatalf("circle path = %+v, want move and arc", circle)
	}
	if got := circle[0].Pos; got != (vg.Point{X: 120, Y: 50}) {
		t.Errorf("circle start = %v, want (120, 50)", got)
	}
	if arc := circle[1]; arc.Radius != 20 || arc.Start != 0 || arc.Angle != 2*math.Pi {
		t.Errorf("arc = radius %v start %v angle %v, want 20 0 2π", arc.Radius, arc.Start, arc.Angle)
	}

	cross := c.strokes[1]
	want := []vg.PathComp{
		{Type: vg.MoveComp, Pos: vg.Point{X: 95, Y: 50}},
		{Type: vg.LineComp, Pos: vg.Point{X: 105, Y: 50}},
		{Type: vg.MoveComp, Pos: vg.Point{X: 100, Y: 45}},
		{Type: vg.LineComp, Pos: vg.Point{X: 100, Y: 55}},
	}
	if len(cross) != len(want) {
		t.Fatalf("crosshair path = %+v, want %d components", cross, len(want))
	}
	for i := range want {
		if cross[i].Type != want[i].Type || cross[i].Pos != want[i].Pos {
			t.Errorf("crosshair[%d] = %+v, want %+v", i, cross[i], want[i])
		}
	}

	green := color.NRGBA{G: 0xcc, A: 0xff}
	for i, col := range c.colors {
		if col != green {
			t.Errorf("stroke %d color = %v, want %v", i, col, green)
		}
	}
	if c.width != 1 {
		t.Errorf("line width = %v, want 1", c.width)
	}
}

func TestStrokeFlipsY(t *testing.T) {
	c := &fakeCanvas{w: 10, h: 10}
	s := New(c)
	s.MoveTo(0, 0)
	s.LineTo(1, 1)
	_ = s.Stroke()
	want := []string{"push", "translate", "scale", "stroke", "pop"}
	if strings.Join(c.ops, ",") != strings.Join(want, ",") {
		t.Errorf("ops = %v, want %v", c.ops, want)
	}
}

func TestArcJoinAndDirection(t *testing.T) {
	c := &fakeCanvas{w: 10, h: 10}
	s := New(c)
	s.MoveTo(0, 0)
	s.Arc(0, 0, 10, 0, math.Pi/2, true)
	_ = s.Stroke()

	p := c.strokes[0]
	if len(p) != 3 || p[1].Type != vg.LineComp {
		t.Fatalf("path = %+v, want move, line, arc", p)
	}
	if got, want := p[2].Angle, -3*math.Pi/2; math.Abs(got-want) > 1e-12 {
		t.Errorf("arc angle = %v, want %v", got, want)
	}
}

func TestBeginPathAndEmptyStroke(t *testing.T) {
	c := &fakeCanvas{w: 10, h: 10}
	s := New(c)
	s.LineTo(1, 1)
	s.BeginPath()
	if err := s.Stroke(); err != nil {
		t.Fatal(err)
	}
	if len(c.strokes) != 0 {
		t.Errorf("strokes = %d, want none for an empty path", len(c.strokes))
	}
}

func TestInvalidStrokeStyle(t *testing.T) {
	c := &fakeCanvas{w: 10, h: 10}
	s := New(c)
	s.SetStrokeStyle("navy")
	s.SetStrokeStyle("no such color")
	if want := (color.NRGBA{B: 0x80, A: 0xff}); c.col != want {
		t.Errorf("color = %v, want %v", c.col, want)
	}
}

func TestSVG(t *testing.T) {
	c := vgsvg.New(200, 100)
	if err := ortskurve.Render(New(c), 100, 50, 20); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		t.Fatalf("WriteTo() error = %v", err)
	}
	if n := strings.Count(buf.String(), "<path"); n < 2 {
		t.Errorf("svg has %d paths, want at least 2\n%s", n, buf.String())
	}
}
