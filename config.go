package photonic

// config.go reduces the Loop construction API footprint using
// functional options.
// See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

// Config holds the render loop's runtime parameters.
type Config struct {
	fps         int // target frames per second
	logInterval int // frames between stats log lines, 0 disables logging
}

var configDefaults = Config{
	fps:         30,
	logInterval: 0,
}

// Option configures a Loop. For use with NewLoop.
type Option func(*Config)

// WithFPS sets the target render rate. For use in NewLoop().
func WithFPS(fps int) Option {
	return func(c *Config) {
		if fps > 0 {
			c.fps = fps
		}
	}
}

// WithLogInterval enables periodic frame-rate statistics logging every
// n frames. n <= 0 disables logging.
func WithLogInterval(n int) Option {
	return func(c *Config) { c.logInterval = n }
}
