package config

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// Default returns the built-in configuration: the classic 4x4 board with
// a four-row key grid mirroring the board layout.
func Default() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		// The embedded file is part of the build; failing to parse it is
		// a packaging bug.
		panic("config: embedded default is invalid: " + err.Error())
	}
	return cfg
}
