package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"inverted year range", func(c *Config) { c.YearMin = 2100; c.YearMax = 1950 }},
		{"zero year min", func(c *Config) { c.YearMin = 0 }},
		{"zero value length", func(c *Config) { c.MinValueLength = 0 }},
		{"negative look-ahead", func(c *Config) { c.LookAheadLines = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestNewRulesRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinValueLength = 0

	_, err := NewRules(cfg)
	assert.Error(t, err)
}

func TestConfigSnapshot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.YearMin = 1960

	r, err := NewRules(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, r.ConfigSnapshot())
}

func TestMustRules(t *testing.T) {
	assert.NotNil(t, MustRules())
}
