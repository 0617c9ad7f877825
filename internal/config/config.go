// Package config holds the advisor's threshold configuration. A Config is
// a value object: loading merges partial yaml over the defaults into a new
// value, and nothing downstream ever mutates one in place.
package config

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/rxtech-lab/argo-advisor/internal/indicator"
	"github.com/rxtech-lab/argo-advisor/pkg/errors"
)

// OscillatorConfig sets the relative strength oscillator period and bands.
type OscillatorConfig struct {
	Period     int     `yaml:"period" json:"period" jsonschema:"title=Period,description=Lookback period for the oscillator,minimum=2" validate:"required,gt=1"`
	Oversold   float64 `yaml:"oversold" json:"oversold" jsonschema:"title=Oversold,description=Readings below this score bullish,minimum=0,maximum=100" validate:"required,gt=0,lt=100"`
	Overbought float64 `yaml:"overbought" json:"overbought" jsonschema:"title=Overbought,description=Readings above this score bearish,minimum=0,maximum=100" validate:"required,gtfield=Oversold,lt=100"`
}

// MovingAverageConfig sets the short and long simple moving average periods.
type MovingAverageConfig struct {
	ShortPeriod int `yaml:"short_period" json:"short_period" jsonschema:"title=Short Period,minimum=1" validate:"required,gt=0"`
	LongPeriod  int `yaml:"long_period" json:"long_period" jsonschema:"title=Long Period,minimum=2" validate:"required,gtfield=ShortPeriod"`
}

// Weights blend the three sub-scores. They are expected to sum to roughly
// 1.0; the engine normalizes before scoring so partial overrides stay safe.
type Weights struct {
	RSI        float64 `yaml:"rsi" json:"rsi" jsonschema:"title=Oscillator Weight,minimum=0" validate:"gte=0"`
	MA         float64 `yaml:"ma" json:"ma" jsonschema:"title=Moving Average Weight,minimum=0" validate:"gte=0"`
	Volatility float64 `yaml:"volatility" json:"volatility" jsonschema:"title=Volatility Weight,minimum=0" validate:"gte=0"`
}

// Sum returns the total of the weights.
func (w Weights) Sum() float64 {
	return w.RSI + w.MA + w.Volatility
}

// Normalize scales the weights to sum to 1.0. Zero weights stay zero; an
// all-zero set normalizes to the zero value.
func (w Weights) Normalize() Weights {
	sum := w.Sum()
	if sum == 0 {
		return Weights{}
	}

	return Weights{
		RSI:        w.RSI / sum,
		MA:         w.MA / sum,
		Volatility: w.Volatility / sum,
	}
}

// SwingConfig sets the drawdown policy: the episode detection threshold,
// the rebound ratio that restarts a cycle, and the minimum correction depth
// before a buy recommendation is allowed through.
type SwingConfig struct {
	DrawdownThreshold float64 `yaml:"drawdown_threshold" json:"drawdown_threshold" jsonschema:"title=Drawdown Threshold,description=Fractional decline that opens an episode,minimum=0,maximum=1" validate:"required,gt=0,lt=1"`
	ReboundReset      float64 `yaml:"rebound_reset" json:"rebound_reset" jsonschema:"title=Rebound Reset,description=Fractional rebound off the trough that ends an episode,minimum=0" validate:"required,gt=0"`
	BuyGate           float64 `yaml:"buy_gate" json:"buy_gate" jsonschema:"title=Buy Gate,description=Minimum fractional drawdown before buy signals pass,minimum=0,maximum=1" validate:"required,gt=0,lt=1"`
}

// Config is the full threshold configuration consumed by the signal engine
// and produced (in part) by the historical profiler.
type Config struct {
	Oscillator    OscillatorConfig           `yaml:"oscillator" json:"oscillator" validate:"required"`
	MovingAverage MovingAverageConfig        `yaml:"moving_average" json:"moving_average" validate:"required"`
	Volatility    indicator.RegimeThresholds `yaml:"volatility" json:"volatility" validate:"required"`
	Weights       Weights                    `yaml:"weights" json:"weights" validate:"required"`
	Swing         SwingConfig                `yaml:"swing" json:"swing" validate:"required"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Oscillator: OscillatorConfig{
			Period:     14,
			Oversold:   30,
			Overbought: 70,
		},
		MovingAverage: MovingAverageConfig{
			ShortPeriod: 50,
			LongPeriod:  200,
		},
		Volatility: indicator.RegimeThresholds{
			Normal:      20,
			Fear:        25,
			HighFear:    30,
			ExtremeFear: 40,
		},
		Weights: Weights{
			RSI:        1.0 / 3.0,
			MA:         1.0 / 3.0,
			Volatility: 1.0 / 3.0,
		},
		Swing: SwingConfig{
			DrawdownThreshold: 0.10,
			ReboundReset:      0.5,
			BuyGate:           0.10,
		},
	}
}

// New builds a validated Config from its four threshold sections and the
// swing policy. Callers that only want to tweak one section should prefer
// Parse, which merges over the defaults.
func New(osc OscillatorConfig, ma MovingAverageConfig, vol indicator.RegimeThresholds, weights Weights, swing SwingConfig) (Config, error) {
	cfg := Config{
		Oscillator:    osc,
		MovingAverage: ma,
		Volatility:    vol,
		Weights:       weights,
		Swing:         swing,
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse unmarshals yaml over the default configuration and validates the
// result, so partial documents override only the keys they name.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config yaml", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseFile reads and parses a yaml configuration file.
func ParseFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeDataFileMissing, err, "failed to read config file %s", path)
	}

	return Parse(data)
}

// Validate checks every section's constraints.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return nil
}

// WithThresholds returns a copy of c with the oscillator bands and
// volatility levels replaced, leaving periods, weights and the swing policy
// untouched. The profiler uses this to apply its recommendation without
// mutating the caller's config.
func (c Config) WithThresholds(oversold, overbought float64, vol indicator.RegimeThresholds) Config {
	out := c
	out.Oscillator.Oversold = oversold
	out.Oscillator.Overbought = overbought
	out.Volatility = vol

	return out
}

// GenerateSchemaJSON produces the JSON schema for a Config document.
func (c Config) GenerateSchemaJSON() (string, error) {
	schema := jsonschema.Reflect(&Config{})
	schema.Title = "argo-advisor-config"

	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}
