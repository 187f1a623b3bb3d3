/*
Package config loads the configuration of the golox command-line tool from a
YAML file.

A configuration file looks like this:

    trace: Info             # Debug | Info | Error
    prompt: "lox> "
    history: /tmp/golox.history
    nil_equals_nil: false
    max_call_depth: 1024
    show_ast: false

All keys are optional. A missing configuration file is not an error; an
invalid one is.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/golox/interpreter"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the name of the configuration file looked for in the
// working directory.
const DefaultFile = ".golox.yaml"

// Config holds the settings of the command-line tool.
type Config struct {
	Trace        string `yaml:"trace"`
	Prompt       string `yaml:"prompt"`
	History      string `yaml:"history"`
	NilEqualsNil bool   `yaml:"nil_equals_nil"`
	MaxCallDepth int    `yaml:"max_call_depth"`
	ShowAST      bool   `yaml:"show_ast"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Trace:        "Error",
		Prompt:       "> ",
		MaxCallDepth: interpreter.DefaultMaxCallDepth,
	}
}

// Load reads a configuration file. If path is empty, DefaultFile is used and
// may be missing, in which case the default configuration is returned.
func Load(path string) (*Config, error) {
	mustExist := path != ""
	if path == "" {
		path = DefaultFile
	}
	f, err := os.Open(path)
	if err != nil {
		if !mustExist && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()
	c, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Read decodes a configuration from YAML. Unset keys keep their default
// values. Unknown keys are an error.
func Read(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse: %w", err)
	}
	if c.MaxCallDepth < 1 {
		return nil, fmt.Errorf("max_call_depth must be positive, is %d", c.MaxCallDepth)
	}
	return c, nil
}

// InterpreterOptions converts the configuration to interpreter options.
func (c *Config) InterpreterOptions() []interpreter.Option {
	return []interpreter.Option{
		interpreter.NilEqualsNil(c.NilEqualsNil),
		interpreter.MaxCallDepth(c.MaxCallDepth),
	}
}
