// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"fmt"
	"strconv"
)

// CommandType identifies the type of a command.
// Each command type corresponds to one DrawingContext method.
type CommandType uint8

const (
	CmdBeginPath      CommandType = iota // Discard the current path
	CmdArc                               // Add a circular arc
	CmdMoveTo                            // Start a subpath
	CmdLineTo                            // Add a line
	CmdSetLineWidth                      // Set stroke width
	CmdSetStrokeStyle                    // Set stroke color token
	CmdStroke                            // Stroke the current path
)

// String returns the DrawingContext method name of the command type.
func (t CommandType) String() string {
	switch t {
	case CmdBeginPath:
		return "BeginPath"
	case CmdArc:
		return "Arc"
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdSetLineWidth:
		return "SetLineWidth"
	case CmdSetStrokeStyle:
		return "SetStrokeStyle"
	case CmdStroke:
		return "Stroke"
	default:
		return "CommandType(" + strconv.Itoa(int(t)) + ")"
	}
}

// Command is one recorded call. Only the fields used by Type are set:
//   - Arc: X, Y, Radius, Start, End, CCW
//   - MoveTo, LineTo: X, Y
//   - SetLineWidth: Width
//   - SetStrokeStyle: Style
type Command struct {
	Type CommandType

	X, Y       float64
	Radius     float64
	Start, End float64
	CCW        bool
	Width      float64
	Style      string
}

// BeginPath returns a BeginPath command.
func BeginPath() Command { return Command{Type: CmdBeginPath} }

// Arc returns an Arc command.
func Arc(x, y, radius, start, end float64, ccw bool) Command {
	return Command{Type: CmdArc, X: x, Y: y, Radius: radius, Start: start, End: end, CCW: ccw}
}

// MoveTo returns a MoveTo command.
func MoveTo(x, y float64) Command { return Command{Type: CmdMoveTo, X: x, Y: y} }

// LineTo returns a LineTo command.
func LineTo(x, y float64) Command { return Command{Type: CmdLineTo, X: x, Y: y} }

// SetLineWidth returns a SetLineWidth command.
func SetLineWidth(width float64) Command { return Command{Type: CmdSetLineWidth, Width: width} }

// SetStrokeStyle returns a SetStrokeStyle command.
func SetStrokeStyle(style string) Command { return Command{Type: CmdSetStrokeStyle, Style: style} }

// Stroke returns a Stroke command.
func Stroke() Command { return Command{Type: CmdStroke} }

// String formats the command as a method call, e.g. "MoveTo(95, 100)".
func (c Command) String() string {
	switch c.Type {
	case CmdArc:
		return fmt.Sprintf("Arc(%g, %g, %g, %g, %g, %t)", c.X, c.Y, c.Radius, c.Start, c.End, c.CCW)
	case CmdMoveTo, CmdLineTo:
		return fmt.Sprintf("%s(%g, %g)", c.Type, c.X, c.Y)
	case CmdSetLineWidth:
		return fmt.Sprintf("SetLineWidth(%g)", c.Width)
	case CmdSetStrokeStyle:
		return fmt.Sprintf("SetStrokeStyle(%q)", c.Style)
	default:
		return c.Type.String() + "()"
	}
}
