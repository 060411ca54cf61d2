// Package config assembles the immutable run configuration from an optional
// TOML defaults file, a JSON environment override, and the command line.
package config

import (
	"encoding/json"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/BurntSushi/toml"

	"github.com/root-xghostx/wordgen/internal/logger"
)

// EnvConfigJSON overrides the file-based defaults with a JSON document.
const EnvConfigJSON = "WORDGEN_CONFIG_JSON"

var validate = validator.New()

// Default returns the configuration used when no file and no flags are given.
func Default() Config {
	return Config{
		MinLength: DefaultMinLength,
		MaxLength: DefaultMaxLength,
		Generator: Generator{
			ConfirmThreshold: DefaultConfirmThreshold,
			ProgressInterval: DefaultProgressInterval,
		},
		Log: logger.DefaultLog(),
	}
}

// Read the defaults file at path, if any, on top of the built-in defaults.
func Read(path string) (Config, error) {
	var (
		c   = Default()
		err error
	)

	if path != "" {
		if _, err = toml.DecodeFile(path, &c); err != nil {
			return Config{}, errors.Wrap(err, "failed to read config file")
		}
	}

	// override it from env
	JSONConfigEnv := os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, nil
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to decode "+EnvConfigJSON)
	}

	return c, nil
}

// FinalizeGenerate validates the config for the generate operation, which
// additionally requires an output path.
func (c *Config) FinalizeGenerate() error {
	if c.Output == "" {
		return ErrNoOutput
	}

	return c.finalize()
}

// FinalizeEstimate validates the config for the estimate operation.
func (c *Config) FinalizeEstimate() error {
	return c.finalize()
}

// finalize applies the fixed-length shorthand and validates the result. All
// checks run before any generation work starts.
func (c *Config) finalize() error {
	if c.Charset == "" && c.Pattern == "" &&
		!c.Lower && !c.Upper && !c.Digits && !c.Symbols {
		return ErrNoCharacterSource
	}

	if c.Length != 0 {
		if c.MinLength != DefaultMinLength || c.MaxLength != DefaultMaxLength {
			return ErrConflictingLengths
		}

		c.MinLength = c.Length
		c.MaxLength = c.Length
	}

	if c.Generator.ProgressInterval == 0 {
		c.Generator.ProgressInterval = DefaultProgressInterval
	}

	if c.Generator.ConfirmThreshold == 0 {
		c.Generator.ConfirmThreshold = DefaultConfirmThreshold
	}

	if err := validate.Struct(c); err != nil {
		return sentinelFor(err)
	}

	return nil
}

// sentinelFor maps struct validation failures onto the user-facing errors.
func sentinelFor(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "invalid config")
	}

	for _, fieldErr := range verrs {
		switch fieldErr.Field() {
		case "MinLength":
			return ErrMinBelowOne
		case "MaxLength":
			return ErrMinAboveMax
		}
	}

	return errors.Wrap(verrs, "invalid config")
}
