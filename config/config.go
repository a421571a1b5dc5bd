package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Output  *OutputConfig  `yaml:"output"`
	Font    string         `yaml:"font"`
	Colours []string       `yaml:"colours"`
	Publish *PublishConfig `yaml:"publish"`
}

// OutputConfig controls where charts land and how they are encoded.
type OutputConfig struct {
	Format string `yaml:"format"` // svg (default) or png
	Dir    string `yaml:"dir"`
}

// PublishConfig configures the optional chart upload target.
type PublishConfig struct {
	TokenURL     string `yaml:"tokenUrl"`
	ClientID     string `yaml:"clientId"`
	ClientSecret string `yaml:"secret"`
	UploadURL    string `yaml:"uploadUrl"`
}

func Load(path string) (*Config, error) {
	useDefaultConf := (path == "")

	if useDefaultConf {
		path = ".daycircle.yaml"
	}

	conf := Config{}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && useDefaultConf {
			// No config was found, but no config path was specified either
			return &conf, nil // return an empty config
		}
		return nil, fmt.Errorf("os.ReadFile: %w", err)
	}

	err = yaml.Unmarshal(data, &conf)
	if err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	return &conf, nil
}
