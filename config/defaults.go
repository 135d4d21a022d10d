package config

import (
	"runtime"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Check defaults: size obligations are evaluated against the host
	// platform unless a cross-compilation target is pinned
	v.SetDefault("check.goos", runtime.GOOS)
	v.SetDefault("check.goarch", runtime.GOARCH)
	v.SetDefault("check.compiler", "gc")
	v.SetDefault("check.deprecation_notices", true)
	v.SetDefault("check.packages", []string{"./..."})

	// Watch defaults
	v.SetDefault("watch.debounce_ms", 500) // Debounce rapid file changes
}
