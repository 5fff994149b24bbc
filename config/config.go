package config

import (
	"bytes"
	"os"

	"github.com/annikahug/cadenza/pkg/auth"
	"github.com/annikahug/cadenza/pkg/provider"

	"golang.org/x/time/rate"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Authorizers []auth.Provider

	Study Study

	describer   map[string]provider.Describer
	synthesizer map[string]provider.Synthesizer
}

func Parse(path string) (*Config, error) {
	file, err := parseFile(path)

	if err != nil {
		return nil, err
	}

	c := &Config{
		Address: ":8080",
	}

	if file.Address != "" {
		c.Address = file.Address
	}

	if err := c.registerAuthorizer(file); err != nil {
		return nil, err
	}

	if err := c.registerDescribers(file); err != nil {
		return nil, err
	}

	if err := c.registerSynthesizers(file); err != nil {
		return nil, err
	}

	if err := c.registerStudy(file); err != nil {
		return nil, err
	}

	return c, nil
}

type configFile struct {
	Address string `yaml:"address"`

	Authorizers []authorizerConfig `yaml:"authorizers"`

	Describers   yaml.Node `yaml:"describers"`
	Synthesizers yaml.Node `yaml:"synthesizers"`

	Study studyConfig `yaml:"study"`
}

func parseFile(path string) (*configFile, error) {
	data, err := os.ReadFile(path)

	if err != nil {
		return nil, err
	}

	data = []byte(os.ExpandEnv(string(data)))

	var config configFile

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func createLimiter(limit *int) *rate.Limiter {
	if limit == nil {
		return nil
	}

	return rate.NewLimiter(rate.Limit(*limit), *limit)
}
