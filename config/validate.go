package config

import (
	"go/types"

	"github.com/teranos/staticproof/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Check.Compiler != "gc" && c.Check.Compiler != "gccgo" {
		return errors.Wrapf(errors.ErrInvalidConfig,
			"check.compiler must be \"gc\" or \"gccgo\", got %q", c.Check.Compiler)
	}

	// SizesFor knows every compiler/arch pair the toolchain can size;
	// a nil result means size obligations would be unevaluable
	if types.SizesFor(c.Check.Compiler, c.Check.GOARCH) == nil {
		return errors.WithHint(
			errors.Wrapf(errors.ErrInvalidConfig,
				"no size model for compiler %q on arch %q", c.Check.Compiler, c.Check.GOARCH),
			"check.goarch must name a supported Go architecture, e.g. amd64 or arm64")
	}

	if c.Check.GOOS == "" {
		return errors.Wrap(errors.ErrInvalidConfig, "check.goos cannot be empty")
	}

	if len(c.Check.Packages) == 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "check.packages cannot be empty")
	}

	if c.Watch.DebounceMS < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig,
			"watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	return nil
}
