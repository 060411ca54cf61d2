package config

import (
	"github.com/root-xghostx/wordgen/internal/logger"
)

// Defaults for the length range and the verbose-mode generator knobs.
const (
	DefaultMinLength = 1
	DefaultMaxLength = 4

	DefaultConfirmThreshold = 1_000_000
	DefaultProgressInterval = 10_000
)

// Generator holds the verbose-mode generation knobs.
type Generator struct {
	// ConfirmThreshold is the combination count above which verbose mode asks
	// for confirmation before writing anything.
	ConfirmThreshold uint64 `toml:"confirmThreshold" json:"confirmThreshold"`

	// ProgressInterval is how many generated words pass between progress logs.
	ProgressInterval uint64 `toml:"progressInterval" json:"progressInterval"`
}

// Config overall data structure. Built once from the defaults file and the
// command line, finalized, and read-only afterwards.
type Config struct {
	Charset string `toml:"charset" json:"charset"` // explicit characters to draw from
	Pattern string `toml:"pattern" json:"pattern"` // pattern with ? wildcards, takes precedence

	Lower   bool `toml:"lower" json:"lower"`     // include a-z
	Upper   bool `toml:"upper" json:"upper"`     // include A-Z
	Digits  bool `toml:"digits" json:"digits"`   // include 0-9
	Symbols bool `toml:"symbols" json:"symbols"` // include common symbols

	// Length fixes every word to one length. Zero means unset; setting it
	// together with a non-default range is rejected.
	Length    int `toml:"length" json:"length"`
	MinLength int `toml:"minLength" json:"minLength" validate:"min=1"`
	MaxLength int `toml:"maxLength" json:"maxLength" validate:"gtefield=MinLength"`

	Output  string `toml:"output" json:"output"` // output file path
	Verbose bool   `toml:"verbose" json:"verbose"`

	Generator Generator  `toml:"generator" json:"generator"`
	Log       logger.Log `toml:"log" json:"log"`
}
