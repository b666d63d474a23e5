// internal/config/normalize.go
package config

// Defaults for a nice!view panel on the simulator.
const (
	DefaultWidth       = 160
	DefaultHeight      = 68
	DefaultHz          = 2_000_000
	DefaultScale       = 4
	DefaultDepth       = 16
	DefaultSubscribers = 4
)

// Normalize applies post-validation defaults.
// It is allowed to mutate configuration.
// It MUST be called only after Validate().
func Normalize(cfg *Config) {
	if cfg == nil {
		return
	}

	if cfg.Role == "" {
		cfg.Role = RoleCentral
	}
	if cfg.Role == RoleCentral && cfg.Variant == "" {
		cfg.Variant = VariantStatus
	}

	p := &cfg.Panel
	if p.Driver == "" {
		p.Driver = DriverSim
	}
	if p.Width == 0 {
		p.Width = DefaultWidth
	}
	if p.Height == 0 {
		p.Height = DefaultHeight
	}
	if p.Hz == 0 {
		p.Hz = DefaultHz
	}

	if cfg.Output.Scale == 0 {
		cfg.Output.Scale = DefaultScale
	}
	if cfg.Bus.Depth == 0 {
		cfg.Bus.Depth = DefaultDepth
	}
	if cfg.Bus.Subscribers == 0 {
		cfg.Bus.Subscribers = DefaultSubscribers
	}
}
