// Package config loads the CUE configuration file.
//
// The file is unified with an embedded schema that supplies every default,
// so a missing file and an empty file both yield the default configuration.
// The schema is closed: unknown fields are rejected instead of ignored.
//
// Example advent.cue:
//
//	inputs: "inputs"
//	days: "11": "inputs/monkeys.txt"
//	monkey: modular_rounds: 10000
//	rope_knots: 10
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
)

// DefaultPath is the configuration file read when no path is given.
const DefaultPath = "advent.cue"

//go:embed schema.cue
var schemaSource string

// Config is the decoded configuration.
type Config struct {
	// Inputs is the directory holding dayNN.txt input files.
	Inputs string `json:"inputs"`

	// Days overrides the input path of individual days, keyed by day number.
	Days map[string]string `json:"days"`

	Monkey MonkeyConfig `json:"monkey"`

	// RopeKnots is the rope length for the second rope answer.
	RopeKnots int `json:"rope_knots"`
}

// MonkeyConfig parameterizes the two simulator variants.
type MonkeyConfig struct {
	ReliefRounds  int    `json:"relief_rounds"`
	ReliefDivisor uint64 `json:"relief_divisor"`
	ModularRounds int    `json:"modular_rounds"`
}

// Error is a configuration failure, with the CUE position when known.
type Error struct {
	Message string
	Pos     token.Pos
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Message)
	}
	return e.Message
}

// InputPath returns the input file for day.
func (c *Config) InputPath(day int) string {
	if p, ok := c.Days[strconv.Itoa(day)]; ok && p != "" {
		return p
	}
	return filepath.Join(c.Inputs, fmt.Sprintf("day%02d.txt", day))
}

// Default returns the configuration with every default applied.
func Default() *Config {
	cfg, err := Parse(DefaultPath, nil)
	if err != nil {
		// The embedded schema is part of the build; failing here is a bug.
		panic(fmt.Sprintf("config: embedded schema is invalid: %v", err))
	}
	return cfg
}

// Load reads the configuration at path.
//
// If path is empty, DefaultPath is tried. A missing DefaultPath yields the
// defaults; a missing explicit path is an error.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return Default(), nil
	}
	if err != nil {
		return nil, &Error{Message: fmt.Sprintf("reading config: %v", err)}
	}
	return Parse(path, data)
}

// Parse unifies src with the schema and decodes the result.
// filename is only used for error positions.
func Parse(filename string, src []byte) (*Config, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	def := schema.LookupPath(cue.ParsePath("#Config"))

	if len(src) == 0 {
		src = []byte("{}")
	}
	data := ctx.CompileBytes(src, cue.Filename(filename))
	if err := data.Err(); err != nil {
		return nil, formatCUEError(err)
	}

	v := def.Unify(data)
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, formatCUEError(err)
	}

	var cfg Config
	if err := v.Decode(&cfg); err != nil {
		return nil, formatCUEError(err)
	}
	if cfg.Days == nil {
		cfg.Days = map[string]string{}
	}
	return &cfg, nil
}

// formatCUEError keeps the first CUE error and its position.
func formatCUEError(err error) error {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return &Error{Message: err.Error()}
	}

	first := errs[0]
	out := &Error{Message: first.Error()}
	if positions := cueerrors.Positions(first); len(positions) > 0 {
		out.Pos = positions[0]
	}
	return out
}
