// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package recording

import (
	"slices"
	"strings"

	"github.com/gogpu/ortskurve"
)

// Ensure Recorder implements ortskurve.DrawingContext.
var _ ortskurve.DrawingContext = (*Recorder)(nil)

// Recorder captures DrawingContext calls as commands.
// Use FinishRecording to obtain an immutable Recording.
//
// Example:
//
//	rec := recording.NewRecorder()
//	rec.BeginPath()
//	rec.MoveTo(0, 0)
//	rec.LineTo(10, 0)
//	_ = rec.Stroke()
//	r := rec.FinishRecording()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	commands []Command

	// Injected failure
	failAt  int
	failErr error
	strokes int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 16),
	}
}

// FailStroke makes the n-th Stroke call (counting from 1) return err.
// The failing Stroke is still recorded. n <= 0 disables the failure.
func (r *Recorder) FailStroke(n int, err error) {
	r.failAt = n
	r.failErr = err
}

// BeginPath records a BeginPath call.
func (r *Recorder) BeginPath() {
	r.commands = append(r.commands, BeginPath())
}

// Arc records an Arc call.
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	r.commands = append(r.commands, Arc(x, y, radius, startAngle, endAngle, counterclockwise))
}

// MoveTo records a MoveTo call.
func (r *Recorder) MoveTo(x, y float64) {
	r.commands = append(r.commands, MoveTo(x, y))
}

// LineTo records a LineTo call.
func (r *Recorder) LineTo(x, y float64) {
	r.commands = append(r.commands, LineTo(x, y))
}

// SetLineWidth records a SetLineWidth call.
func (r *Recorder) SetLineWidth(width float64) {
	r.commands = append(r.commands, SetLineWidth(width))
}

// SetStrokeStyle records a SetStrokeStyle call. The token is stored verbatim.
func (r *Recorder) SetStrokeStyle(style string) {
	r.commands = append(r.commands, SetStrokeStyle(style))
}

// Stroke records a Stroke call and returns the injected error, if any.
func (r *Recorder) Stroke() error {
	r.commands = append(r.commands, Stroke())
	r.strokes++
	if r.failAt > 0 && r.strokes == r.failAt {
		return r.failErr
	}
	return nil
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset discards all recorded commands and the stroke counter.
// An injected failure stays configured.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.strokes = 0
}

// FinishRecording returns a Recording of all commands so far.
// The Recorder can keep recording; later calls do not affect the result.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{commands: slices.Clone(r.commands)}
}

// Recording is an immutable sequence of recorded commands.
type Recording struct {
	commands []Command
}

// NewRecording creates a Recording from a list of commands, typically the
// expected sequence in a test.
func NewRecording(cmds ...Command) *Recording {
	return &Recording{commands: slices.Clone(cmds)}
}

// Commands returns a copy of the recorded commands.
func (r *Recording) Commands() []Command {
	return slices.Clone(r.commands)
}

// Len returns the number of commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type == t {
			n++
		}
	}
	return n
}

// Equal reports whether both recordings hold the same command sequence.
func (r *Recording) Equal(other *Recording) bool {
	return slices.Equal(r.commands, other.commands)
}

// String lists the commands, one per line.
func (r *Recording) String() string {
	var b strings.Builder
	for _, c := range r.commands {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Playback replays the recording onto dc. It stops at the first Stroke error
// and returns it.
func (r *Recording) Playback(dc ortskurve.DrawingContext) error {
	for _, c := range r.commands {
		switch c.Type {
		case CmdBeginPath:
			dc.BeginPath()
		case CmdArc:
			dc.Arc(c.X, c.Y, c.Radius, c.Start, c.End, c.CCW)
		case CmdMoveTo:
			dc.MoveTo(c.X, c.Y)
		case CmdLineTo:
			dc.LineTo(c.X, c.Y)
		case CmdSetLineWidth:
			dc.SetLineWidth(c.Width)
		case CmdSetStrokeStyle:
			dc.SetStrokeStyle(c.Style)
		case CmdStroke:
			if err := dc.Stroke(); err != nil {
				return err
			}
		}
	}
	return nil
}
