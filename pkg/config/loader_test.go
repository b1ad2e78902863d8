package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ijinpress/intake/pkg/config"
)

type testConfig struct {
	Name    string `env:"TEST_CFG_NAME" envDefault:"fallback"`
	Port    int    `env:"TEST_CFG_PORT" envDefault:"8080"`
	Secret  string `env:"TEST_CFG_SECRET"`
	Enabled bool   `env:"TEST_CFG_ENABLED" envDefault:"true"`
}

type requiredConfig struct {
	Token string `env:"TEST_CFG_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "fallback", cfg.Name)
		assert.Equal(t, 8080, cfg.Port)
		assert.Empty(t, cfg.Secret)
		assert.True(t, cfg.Enabled)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_CFG_NAME", "from-env")
		t.Setenv("TEST_CFG_PORT", "9090")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "from-env", cfg.Name)
		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		var cfg *testConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		assert.Panics(t, func() {
			config.MustLoad(&cfg)
		})
	})

	t.Run("does not panic when satisfied", func(t *testing.T) {
		t.Setenv("TEST_CFG_REQUIRED_TOKEN", "tok")

		var cfg requiredConfig
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg)
		})
		assert.Equal(t, "tok", cfg.Token)
	})
}
