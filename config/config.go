package config

import (
	"hearts/meta"

	"github.com/rs/zerolog"
)

// Config holds the training hyperparameters and the enabled model heads.
type Config struct {
	Batch  int  `json:"batch"`
	Epochs int  `json:"epochs"`
	Score  bool `json:"score"`
	Moon   bool `json:"moon"`
	Trick  bool `json:"trick"`
}

// Default returns the configuration used when no DECK_* variable is set.
func Default() Config {
	return Config{
		Batch:  defaults[BatchEnvVar],
		Epochs: defaults[EpochsEnvVar],
		Score:  Flag(defaults[ScoreEnvVar]),
		Moon:   Flag(defaults[MoonEnvVar]),
		Trick:  Flag(defaults[TrickEnvVar]),
	}
}

// Load resolves the configuration from the process environment.
func Load() (Config, error) {
	var r Resolver
	return r.Load()
}

// Load resolves every variable, stopping at the first malformed one.
func (r *Resolver) Load() (Config, error) {
	var cfg Config

	ints := []struct {
		name string
		dst  *int
	}{
		{BatchEnvVar, &cfg.Batch},
		{EpochsEnvVar, &cfg.Epochs},
	}
	for _, v := range ints {
		val, err := r.Value(v.name)
		if err != nil {
			return Config{}, err
		}
		*v.dst = val
	}

	flags := []struct {
		name string
		dst  *bool
	}{
		{ScoreEnvVar, &cfg.Score},
		{MoonEnvVar, &cfg.Moon},
		{TrickEnvVar, &cfg.Trick},
	}
	for _, v := range flags {
		val, err := r.Value(v.name)
		if err != nil {
			return Config{}, err
		}
		*v.dst = Flag(val)
	}

	return cfg, nil
}

// Heads returns the output keys of the enabled model heads.
func (c Config) Heads() []string {
	var heads []string
	if c.Score {
		heads = append(heads, meta.ExpectedScore)
	}
	if c.Moon {
		heads = append(heads, meta.MoonProb)
	}
	if c.Trick {
		heads = append(heads, meta.WinTrickProb)
	}
	return heads
}

func (c Config) MarshalZerologObject(e *zerolog.Event) {
	e.Int("batch", c.Batch).
		Int("epochs", c.Epochs).
		Bool("score", c.Score).
		Bool("moon", c.Moon).
		Bool("trick", c.Trick)
}
