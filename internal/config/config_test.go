package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/gravsim/internal/dynamo"
	"github.com/san-kum/gravsim/internal/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 1e-6, cfg.GravitationalConstant)
	assert.Equal(t, 20.0, cfg.RadMassFactor)
	assert.True(t, cfg.Merge)
	assert.Equal(t, BoundarySquare, cfg.Boundary.Mode)
	assert.Equal(t, 0.5, cfg.Boundary.Damping)
	assert.Equal(t, GeneratorOutward, cfg.Generator.Mode)
	assert.Equal(t, 400, cfg.Generator.Count)
	assert.Equal(t, 1.02, cfg.View.ZoomRatio)
	assert.NoError(t, cfg.Validate())
}

func TestDefaultsMatchPhysics(t *testing.T) {
	cfg := DefaultConfig()
	params := physics.DefaultParams()

	assert.Equal(t, params.G, cfg.GravitationalConstant)
	assert.Equal(t, params.RadMassFactor, cfg.RadMassFactor)
	assert.Equal(t, params.MinSeparation, cfg.MinSeparation)
	assert.Equal(t, params.Merge, cfg.Merge)
}

func TestPresetsAreValid(t *testing.T) {
	for _, name := range ListPresets() {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, GetPreset(name).Validate())
		})
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("belt")
	require.NotNil(t, cfg)
	assert.Equal(t, GeneratorAsteroidBelt, cfg.Generator.Mode)
	assert.Equal(t, BoundaryNone, cfg.Boundary.Mode)

	cfg.Generator.Count = 1
	assert.Equal(t, 300, GetPreset("belt").Generator.Count, "presets are copied")

	assert.Nil(t, GetPreset("nonexistent"))
}

func TestListPresetsSorted(t *testing.T) {
	names := ListPresets()
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)
	assert.Contains(t, names, "default")
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	data := []byte(`
gravitational_constant: 2.0e-6
merge: false
boundary:
  mode: circular
generator:
  mode: asteroid-belt
  count: 50
view:
  zoom: 0.5
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 2e-6, cfg.GravitationalConstant)
	assert.False(t, cfg.Merge)
	assert.Equal(t, BoundaryCircular, cfg.Boundary.Mode)
	assert.Equal(t, DefaultExtent, cfg.Boundary.Extent, "unset keys keep defaults")
	assert.Equal(t, 50, cfg.Generator.Count)
	assert.Equal(t, 2.9, cfg.Generator.OuterRadius)
	assert.Equal(t, 0.5, cfg.View.Zoom)
	assert.Equal(t, DefaultZoomRatio, cfg.View.ZoomRatio)
}

func TestLoadIntoKeepsBase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tweaks.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 9\ngenerator:\n  count: 40\n"), 0644))

	cfg := GetPreset("belt")
	require.NoError(t, LoadInto(path, cfg))

	assert.Equal(t, int64(9), cfg.Seed)
	assert.Equal(t, 40, cfg.Generator.Count)
	assert.Equal(t, GeneratorAsteroidBelt, cfg.Generator.Mode, "keys missing from the file keep the preset's values")
	assert.Equal(t, BoundaryNone, cfg.Boundary.Mode)
	assert.Equal(t, 0.3, cfg.View.Zoom)
	assert.Equal(t, 300, Presets["belt"].Generator.Count, "the preset table is untouched")
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ticks: [1, 2"), 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	cfg := GetPreset("ring")
	cfg.Seed = 99

	require.NoError(t, Save(path, cfg))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidateAggregates(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GravitationalConstant = -1
	cfg.Boundary.Mode = "donut"
	cfg.Generator.Mode = "spiral"
	cfg.Generator.Count = -3
	cfg.View.ZoomRatio = 0

	err := cfg.Validate()
	require.Error(t, err)

	errs := multierr.Errors(err)
	assert.Len(t, errs, 5)
	assert.True(t, errors.Is(err, dynamo.ErrUnknownMode))
	assert.True(t, errors.Is(err, dynamo.ErrParameterBounds))
	assert.Contains(t, err.Error(), `boundary "donut"`)
	assert.Contains(t, err.Error(), `generator "spiral"`)
}

func TestValidateBelt(t *testing.T) {
	cfg := GetPreset("belt")
	cfg.Generator.InnerRadius = 3
	cfg.Generator.OuterRadius = 2

	err := cfg.Validate()
	assert.True(t, errors.Is(err, dynamo.ErrParameterBounds))
	assert.Contains(t, err.Error(), "inner <= outer")
}

func TestCycleMode(t *testing.T) {
	modes := []string{"a", "b", "c"}
	assert.Equal(t, "b", CycleMode(modes, "a", 1))
	assert.Equal(t, "c", CycleMode(modes, "a", -1))
	assert.Equal(t, "a", CycleMode(modes, "c", 1))
	assert.Equal(t, "b", CycleMode(modes, "a", -5))
	assert.Equal(t, "a", CycleMode(modes, "zzz", 1))
}
