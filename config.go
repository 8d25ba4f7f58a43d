package main

import (
	"github.com/BurntSushi/toml"
)

// Config provides defaults for the gen command, so that a project can
// commit its generation settings next to its instruction table.
type Config struct {
	Gen GenConfig `toml:"gen"`
}

type GenConfig struct {
	Table    string `toml:"table"`
	Out      string `toml:"out"`
	Stubs    string `toml:"stubs"`
	Package  string `toml:"package"`
	Variant  string `toml:"variant"`
	Registry string `toml:"registry"`
}

const cfgFilename = "optab.toml"

// loadConfigOrDefault loads the configuration from path when given,
// from optab.toml in the working directory otherwise. A missing
// implicit config file is not an error; a missing explicit one is.
func loadConfigOrDefault(path string) Config {
	var cfg Config
	if path != "" {
		_, err := toml.DecodeFile(path, &cfg)
		checkf(err, "failed to load config %s", path)
		return cfg
	}
	if _, err := toml.DecodeFile(cfgFilename, &cfg); err != nil {
		return Config{}
	}
	return cfg
}

// fallback returns the first non-empty value.
func fallback(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
