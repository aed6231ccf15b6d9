package synth

import "github.com/cwbudde/algo-analog/filter/poles"

// Config holds synthesis settings.
type Config struct {
	Poles poles.Source
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig uses the canonical pole tables.
func DefaultConfig() Config {
	return Config{Poles: poles.Canonical}
}

// WithPoleSource replaces the pole table provider. A nil source is ignored.
func WithPoleSource(src poles.Source) Option {
	return func(cfg *Config) {
		if src != nil {
			cfg.Poles = src
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
