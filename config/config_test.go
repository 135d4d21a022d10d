package config

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	// Run from a directory with no staticproof.toml anywhere above it
	tmp := t.TempDir()
	chdir(t, tmp)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, runtime.GOOS, cfg.Check.GOOS)
	assert.Equal(t, runtime.GOARCH, cfg.Check.GOARCH)
	assert.Equal(t, "gc", cfg.Check.Compiler)
	assert.True(t, cfg.Check.DeprecationNotices)
	assert.Equal(t, []string{"./..."}, cfg.Check.Packages)
	assert.Equal(t, 500, cfg.Watch.DebounceMS)

	require.NoError(t, cfg.Validate())
}

func TestLoadFromFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
[check]
goarch = "arm64"
deprecation_notices = false
packages = ["./internal/...", "./cmd/..."]

[watch]
debounce_ms = 250
`), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "arm64", cfg.Check.GOARCH)
	assert.False(t, cfg.Check.DeprecationNotices)
	assert.Equal(t, []string{"./internal/...", "./cmd/..."}, cfg.Check.Packages)
	assert.Equal(t, 250, cfg.Watch.DebounceMS)

	// Unset keys keep their defaults
	assert.Equal(t, "gc", cfg.Check.Compiler)
	require.NoError(t, cfg.Validate())
}

func TestProjectConfigDiscoveredFromSubdirectory(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ConfigFileName), []byte(`
[check]
goarch = "386"
`), 0o644))

	sub := filepath.Join(tmp, "pkg", "frame")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	chdir(t, sub)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "386", cfg.Check.GOARCH)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"bad compiler", func(c *Config) { c.Check.Compiler = "tinygo" }, "check.compiler"},
		{"bad arch", func(c *Config) { c.Check.GOARCH = "vax" }, "no size model"},
		{"empty goos", func(c *Config) { c.Check.GOOS = "" }, "check.goos"},
		{"no packages", func(c *Config) { c.Check.Packages = nil }, "check.packages"},
		{"negative debounce", func(c *Config) { c.Watch.DebounceMS = -1 }, "watch.debounce_ms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Check: CheckConfig{
					GOOS:     runtime.GOOS,
					GOARCH:   runtime.GOARCH,
					Compiler: "gc",
					Packages: []string{"./..."},
				},
				Watch: WatchConfig{DebounceMS: 500},
			}
			require.NoError(t, cfg.Validate())

			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestWatcherDebouncesBursts(t *testing.T) {
	tmp := t.TempDir()
	file := filepath.Join(tmp, "frame.go")
	require.NoError(t, os.WriteFile(file, []byte("package frame\n"), 0o644))

	w, err := NewWatcher([]string{tmp}, 50*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Stop() })

	var fired atomic.Int32
	var wg sync.WaitGroup
	wg.Add(1)
	var once sync.Once
	w.OnChange(func() {
		fired.Add(1)
		once.Do(wg.Done)
	})
	w.Start()

	// A burst of writes should collapse into one callback
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(file, []byte("package frame\n// edit\n"), 0o644))
		time.Sleep(5 * time.Millisecond)
	}

	wg.Wait()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int32(1), fired.Load())
}

func TestWatcherIgnoresIrrelevantFiles(t *testing.T) {
	assert.True(t, isRelevantFile("/src/frame/codec.go"))
	assert.True(t, isRelevantFile("/src/frame/"+ConfigFileName))
	assert.False(t, isRelevantFile("/src/frame/codec.go~"))
	assert.False(t, isRelevantFile("/src/frame/.codec.go.swp"))
	assert.False(t, isRelevantFile("/src/frame/notes.md"))
}

// chdir switches the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
