package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// fileConfig mirrors the subset of fjsonfmt's TOML config file that sets
// default layout flags. Each is combined with the matching command-line
// flag by logical OR (see resolveFlags), so the command line can add a
// flag but not clear one set here.
type fileConfig struct {
	Pretty         bool `toml:"pretty"`
	Tab            bool `toml:"tab"`
	Spaced         bool `toml:"spaced"`
	NoTrailingZero bool `toml:"no_trailing_zero"`
	Gzip           bool `toml:"gzip"`
}

func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
