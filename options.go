package ncube

// Option configures a SpatialCube.
type Option func(*config)

type config struct {
	turnStep float64
	snapTol  float64
}

func defaultConfig() *config {
	return &config{
		turnStep: 6.0,  // degrees advanced per tick
		snapTol:  1e-6, // lattice coordinate comparison tolerance
	}
}

// WithTurnStep sets the angle in degrees a turn animation advances per tick.
// Higher values animate faster. The step is independent of cube size.
func WithTurnStep(degrees float64) Option {
	return func(c *config) {
		c.turnStep = degrees
	}
}

// WithSnapTolerance sets the numeric tolerance used when comparing cubie
// coordinates against lattice values during slice selection.
func WithSnapTolerance(eps float64) Option {
	return func(c *config) {
		c.snapTol = eps
	}
}
