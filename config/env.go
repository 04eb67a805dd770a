package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"regexp"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

// Environment variables read at startup.
const (
	BatchEnvVar  = "DECK_BATCH"
	EpochsEnvVar = "DECK_EPOCHS"
	ScoreEnvVar  = "DECK_SCORE"
	MoonEnvVar   = "DECK_MOON"
	TrickEnvVar  = "DECK_TRICK"
)

var defaults = map[string]int{
	BatchEnvVar:  64 * 1024,
	EpochsEnvVar: 100,
	ScoreEnvVar:  1,
	MoonEnvVar:   1,
	TrickEnvVar:  1,
}

var numberRe = regexp.MustCompile(`^([0-9]+)([KM]?)$`)

var ErrInvalidConfiguration = errors.New("invalid configuration")

var ErrUnknownVariable = errors.New("unknown configuration variable")

// InvalidConfigurationError reports an environment variable whose value is not
// an integer with an optional K or M suffix.
type InvalidConfigurationError struct {
	Name  string
	Value string
	Err   error
}

func (e *InvalidConfigurationError) Error() string {
	msg := fmt.Sprintf("env var %s must be integer with optional K or M suffix, given: %q", e.Name, e.Value)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Err
}

// Names returns the known variable names in sorted order.
func Names() []string {
	names := make([]string, 0, len(defaults))
	for name := range defaults {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// DefaultValue returns the value used when name is not set.
func DefaultValue(name string) (int, bool) {
	val, ok := defaults[name]
	return val, ok
}

// ParseUnitInt parses a decimal integer with an optional K (x1024) or
// M (x1024*1024) suffix. No sign, whitespace or fraction is accepted.
func ParseUnitInt(s string) (int, error) {
	m := numberRe.FindStringSubmatch(s)
	if m == nil {
		return 0, errors.New("malformed number")
	}
	val, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, err
	}

	multiplier := 1
	switch m[2] {
	case "K":
		multiplier = 1024
	case "M":
		multiplier = 1024 * 1024
	}
	if val > math.MaxInt/multiplier {
		return 0, fmt.Errorf("value %s overflows int", s)
	}
	return val * multiplier, nil
}

// Flag converts a resolved value to a boolean. Only exactly 1 is true.
func Flag(val int) bool {
	return val == 1
}

// Resolver looks up configuration variables. The zero value reads the
// process environment and logs through the global logger.
type Resolver struct {
	Lookup func(string) (string, bool)
	Logger *zerolog.Logger
}

// NewResolver returns a resolver over a fixed set of variables, logging
// nothing. It is meant for tests and headless callers.
func NewResolver(env map[string]string) *Resolver {
	nop := zerolog.Nop()
	return &Resolver{
		Lookup: func(name string) (string, bool) {
			val, ok := env[name]
			return val, ok
		},
		Logger: &nop,
	}
}

func (r *Resolver) lookup(name string) (string, bool) {
	if r.Lookup == nil {
		return os.LookupEnv(name)
	}
	return r.Lookup(name)
}

func (r *Resolver) logger() *zerolog.Logger {
	if r.Logger == nil {
		return &log.Logger
	}
	return r.Logger
}

// Value resolves name from the environment, falling back to its default.
// A variable that is set but malformed is always an error, even when empty.
func (r *Resolver) Value(name string) (int, error) {
	raw, ok := r.lookup(name)
	if !ok {
		val, known := defaults[name]
		if !known {
			return 0, fmt.Errorf("%w: %s", ErrUnknownVariable, name)
		}
		return val, nil
	}

	if !numberRe.MatchString(raw) {
		return 0, &InvalidConfigurationError{Name: name, Value: raw}
	}
	val, err := ParseUnitInt(raw)
	if err != nil {
		return 0, &InvalidConfigurationError{Name: name, Value: raw, Err: err}
	}

	r.logger().Info().Str("var", name).Int("value", val).Msgf("Set %s to %d", name, val)
	return val, nil
}

// EnvVal resolves name from the process environment.
func EnvVal(name string) (int, error) {
	var r Resolver
	return r.Value(name)
}
