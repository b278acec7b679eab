package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type config struct {
	OutputFormat       string          `toml:"output-format" validate:"required,oneof=bind nsd knot"`
	OutputFile         string          `toml:"output-file" validate:"required"`
	ZoneDir            string          `toml:"zonedir"`
	CacheDir           string          `toml:"cache-dir" validate:"omitempty,dir"`
	Template           string          `toml:"template"` // knot only
	ACL                string          `toml:"acl"`      // knot only
	ReconfigureCommand string          `toml:"reconfigure-command"`
	Peers              map[string]feed `toml:"peers" validate:"required,min=1,dive"`
}

type feed struct {
	Source string `toml:"source" validate:"required"` // URL or file, checked after expansion
	Format string `toml:"format" validate:"required,oneof=xml json yaml"`
}

// LoadConfig reads a config file and returns the decoded and validated structure.
func loadConfig(name string) (config, error) {
	var c config
	f, err := os.Open(name)
	if err != nil {
		return c, err
	}
	defer f.Close()
	if _, err = toml.DecodeReader(f, &c); err != nil {
		return c, err
	}
	return c, validate.Struct(c)
}
