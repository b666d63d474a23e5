// internal/config/validate.go
package config

import (
	"fmt"

	"github.com/nicekb/niceview/internal/script"
)

// Validate checks configuration correctness.
// Zero values are accepted; Normalize fills them in.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	switch cfg.Role {
	case "", RoleCentral, RolePeripheral:
	default:
		return fmt.Errorf("role %q: must be %q or %q", cfg.Role, RoleCentral, RolePeripheral)
	}

	switch cfg.Variant {
	case "", VariantStatus, VariantLog:
	default:
		return fmt.Errorf("variant %q: must be %q or %q", cfg.Variant, VariantStatus, VariantLog)
	}
	if cfg.Role == RolePeripheral && cfg.Variant != "" {
		return fmt.Errorf("variant %q: peripheral halves have no screen variant", cfg.Variant)
	}

	// ------------------------------------------------------------
	// PANEL
	// ------------------------------------------------------------

	p := cfg.Panel
	switch p.Driver {
	case "", DriverSim:
		if p.SPI != "" || p.CS != "" || p.DISP != "" {
			return fmt.Errorf("panel: spi, cs and disp only apply to driver %q", DriverSPI)
		}
	case DriverSPI:
		if p.CS == "" {
			return fmt.Errorf("panel: driver %q requires cs", DriverSPI)
		}
	default:
		return fmt.Errorf("panel: driver %q: must be %q or %q", p.Driver, DriverSim, DriverSPI)
	}

	if p.Width < 0 || p.Width > 400 || p.Width%8 != 0 {
		return fmt.Errorf("panel: width %d must be a multiple of 8 up to 400", p.Width)
	}
	if p.Height < 0 || p.Height > 240 {
		return fmt.Errorf("panel: height %d must be between 1 and 240", p.Height)
	}
	if p.Hz < 0 {
		return fmt.Errorf("panel: hz must not be negative")
	}

	// ------------------------------------------------------------
	// OUTPUT / BUS
	// ------------------------------------------------------------

	if cfg.Output.Scale < 0 || cfg.Output.Scale > 16 {
		return fmt.Errorf("output: scale %d must be between 1 and 16", cfg.Output.Scale)
	}
	if cfg.Bus.Depth < 0 {
		return fmt.Errorf("bus: depth must not be negative")
	}
	if cfg.Bus.Subscribers < 0 {
		return fmt.Errorf("bus: subscribers must not be negative")
	}

	// ------------------------------------------------------------
	// SCRIPT
	// ------------------------------------------------------------

	if err := script.Validate(cfg.Script); err != nil {
		return fmt.Errorf("script: %w", err)
	}

	return nil
}
