// Package output provides the Output implementations this repository
// ships: an in-memory Recorder for tests and a terminal preview that
// renders each pixel as a 24-bit ANSI background-colour escape.
package output

import (
	"context"
	"fmt"
	"io"

	"github.com/fooker/photonic/buffer"
	"github.com/fooker/photonic/color"
)

// Recorder is an Output that copies every rendered frame into an
// in-memory buffer, for tests and for the concrete end-to-end
// scenarios that want to assert on rendered pixel values without a
// real device attached.
type Recorder struct {
	Frames [][]color.RGB
}

// Render implements photonic.Output.
func (r *Recorder) Render(ctx context.Context, frame buffer.BufferReader[color.RGB]) error {
	captured := make([]color.RGB, frame.Size())
	for i := range captured {
		captured[i] = frame.Get(i)
	}
	r.Frames = append(r.Frames, captured)
	return nil
}

// Last returns the most recently rendered frame, or nil if none has
// rendered yet.
func (r *Recorder) Last() []color.RGB {
	if len(r.Frames) == 0 {
		return nil
	}
	return r.Frames[len(r.Frames)-1]
}

// Terminal is an Output that renders each frame as a single line of
// ANSI 24-bit background-coloured spaces, one per pixel, to an
// io.Writer - a cheap way to preview a scene without real hardware.
// Waterfall mode instead writes each frame on its own line, building a
// scrolling history, which only makes sense against a real terminal
// (a plain file or pipe has no scrollback to take advantage of).
type Terminal struct {
	w         io.Writer
	waterfall bool
}

// NewTerminal returns a Terminal output writing to w. waterfall, when
// true, prints each frame as a new line rather than overwriting the
// previous one in place.
func NewTerminal(w io.Writer, waterfall bool) *Terminal {
	return &Terminal{w: w, waterfall: waterfall}
}

// Render implements photonic.Output.
func (t *Terminal) Render(ctx context.Context, frame buffer.BufferReader[color.RGB]) error {
	if !t.waterfall {
		if _, err := fmt.Fprint(t.w, "\r"); err != nil {
			return err
		}
	}

	for i := 0; i < frame.Size(); i++ {
		c := frame.Get(i)
		r, g, b := to8(c.R), to8(c.G), to8(c.B)
		if _, err := fmt.Fprintf(t.w, "\x1b[48;2;%d;%d;%dm ", r, g, b); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprint(t.w, "\x1b[0m"); err != nil {
		return err
	}
	if t.waterfall {
		_, err := fmt.Fprintln(t.w)
		return err
	}
	return nil
}

func to8(v float32) int {
	n := int(v*255 + 0.5)
	if n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return n
}
