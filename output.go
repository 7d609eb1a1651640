package photonic

import (
	"context"

	"github.com/fooker/photonic/buffer"
	"github.com/fooker/photonic/color"
)

// Output is the boundary a rendered scene is delivered through each
// frame, whether that is a real fixture driver, a terminal preview, or
// a test recorder. Scenes in this package always render to RGB; a
// fixture-specific driver is responsible for any further colour-space
// or channel-layout conversion of its own.
//
// A Render error is treated as a transient I/O failure by default: the
// Loop logs it and keeps rendering subsequent frames. An Output that
// knows a failure is unrecoverable - a closed connection, a device that
// will never come back - should wrap it in Fatal so the Loop
// terminates instead of retrying forever against a dead output.
type Output interface {
	Render(ctx context.Context, frame buffer.BufferReader[color.RGB]) error
}

// Fatal marks an error returned from Output.Render as unrecoverable.
// Loop.Frame propagates a Fatal-wrapped error instead of logging and
// swallowing it the way an ordinary Render error is handled.
type Fatal struct {
	Cause error
}

func (f *Fatal) Error() string { return f.Cause.Error() }
func (f *Fatal) Unwrap() error { return f.Cause }

// Interface is an external control surface - anything that listens for
// commands and forwards them to a scene's registered inputs. Listen
// runs until ctx is cancelled or an unrecoverable error occurs; the
// Loop runs every registered Interface concurrently with the render
// loop itself.
type Interface interface {
	Listen(ctx context.Context, introspection *Introspection) error
}
