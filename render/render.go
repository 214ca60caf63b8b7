// Package render turns prepared dense tables into animated output.
//
// The package deliberately splits policy from drawing: a FrameRenderer
// draws exactly one time slice, and the Driver owns the animation loop,
// calling the renderer once per integer time step and assembling the
// results into a single artifact. The preparation pipeline never depends
// on a concrete renderer, so it stays testable without any drawing
// facility present.
package render

import "github.com/arloliu/vizu/table"

// Frame is one time slice of a prepared dense table.
type Frame struct {
	// Time is the integer time step this frame shows.
	Time int

	// Data holds only the rows of the prepared table at Time.
	Data *table.Table

	// Title is the chart title, forwarded untouched from the session.
	Title string
}

// FrameRenderer draws a single static frame.
//
// Implementations receive one time slice per call and must not retain the
// frame's table between calls.
type FrameRenderer interface {
	RenderFrame(f Frame) (string, error)
}

// FrameRendererFunc adapts a function into a FrameRenderer.
type FrameRendererFunc func(f Frame) (string, error)

// RenderFrame implements the FrameRenderer interface.
func (fn FrameRendererFunc) RenderFrame(f Frame) (string, error) {
	return fn(f)
}
