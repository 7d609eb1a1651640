package photonic

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/fooker/photonic/color"
)

// Loop drives a Scene at a fixed frame rate, rendering each frame to
// an Output and running any registered Interfaces concurrently. There
// is only ever one goroutine advancing scene state: Loop.Run's own,
// cooperatively yielding at tick boundaries and at Output.Render -
// Interfaces run on their own goroutines but only ever reach the scene
// through an input.Input's thread-safe Send, never by touching node or
// attribute state directly.
type Loop struct {
	scene *Scene
	root  NodeHandle[color.RGB]
	out   Output
	ifs   []Interface
	intro *Introspection
	cfg   Config
}

// NewLoop returns a Loop that will render scene's root node to out.
func NewLoop(scene *Scene, root NodeHandle[color.RGB], intro *Introspection, out Output, ifs []Interface, opts ...Option) *Loop {
	cfg := configDefaults
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Loop{scene: scene, root: root, out: out, ifs: ifs, intro: intro, cfg: cfg}
}

// frameStats accumulates per-frame render durations between log lines.
type frameStats struct {
	count          int
	min, max, total time.Duration
}

func (s *frameStats) observe(d time.Duration) {
	if s.count == 0 || d < s.min {
		s.min = d
	}
	if d > s.max {
		s.max = d
	}
	s.total += d
	s.count++
}

func (s *frameStats) reset() {
	*s = frameStats{}
}

// Frame renders exactly one frame, advancing scene state by dt and
// delivering the result to the output. It is exposed directly so
// tests and embedders that want to drive frames manually (rather than
// through Run's ticker) can do so deterministically. A non-fatal
// Output error is logged and swallowed here - the frame was still
// rendered, only its delivery failed - so Frame returns nil and the
// caller's loop keeps going; a Fatal-wrapped Output error is returned
// instead, terminating the loop.
func (l *Loop) Frame(ctx context.Context, dt time.Duration) error {
	if err := l.scene.renderFrame(RenderContext{Elapsed: dt}); err != nil {
		return err
	}

	frame := l.root.Buffer(l.scene.full())
	if err := l.out.Render(ctx, frame); err != nil {
		var fatal *Fatal
		if errors.As(err, &fatal) {
			return wrapError(ErrFatal, fatal.Cause, "output failed fatally")
		}
		log.Printf("output render failed, skipping frame: %v", wrapError(ErrOutputIO, err, "rendering frame to output"))
	}
	return nil
}

// Run starts every registered Interface and then renders frames at the
// configured frame rate until ctx is cancelled or a frame returns an
// unrecoverable error. It returns the error that stopped it, or nil if
// ctx was cancelled normally.
func (l *Loop) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, len(l.ifs))
	for _, iface := range l.ifs {
		iface := iface
		go func() {
			errs <- iface.Listen(ctx, l.intro)
		}()
	}

	period := time.Second / time.Duration(l.cfg.fps)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	var stats frameStats
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-errs:
			if err != nil {
				return wrapError(ErrFatal, err, "interface stopped")
			}

		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now

			start := time.Now()
			if err := l.Frame(ctx, dt); err != nil {
				return err
			}
			stats.observe(time.Since(start))

			if l.cfg.logInterval > 0 && stats.count >= l.cfg.logInterval {
				log.Printf("frame stats: min=%s max=%s avg=%s",
					stats.min, stats.max, stats.total/time.Duration(stats.count))
				stats.reset()
			}
		}
	}
}
