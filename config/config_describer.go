package config

import (
	"errors"
	"strings"

	"github.com/annikahug/cadenza/pkg/limiter"
	"github.com/annikahug/cadenza/pkg/otel"
	"github.com/annikahug/cadenza/pkg/provider"
	"github.com/annikahug/cadenza/pkg/provider/anthropic"
	"github.com/annikahug/cadenza/pkg/provider/google"
	"github.com/annikahug/cadenza/pkg/provider/openai"
)

func (c *Config) RegisterDescriber(id string, p provider.Describer) {
	if c.describer == nil {
		c.describer = make(map[string]provider.Describer)
	}

	if _, ok := c.describer[""]; !ok {
		c.describer[""] = p
	}

	c.describer[id] = p
}

func (c *Config) Describer(id string) (provider.Describer, error) {
	if c.describer != nil {
		if p, ok := c.describer[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("describer not found: " + id)
}

type describerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Model string `yaml:"model"`

	Limit *int `yaml:"limit"`
}

func (c *Config) registerDescribers(f *configFile) error {
	var configs map[string]describerConfig

	if err := f.Describers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Describers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		describer, err := createDescriber(config)

		if err != nil {
			return err
		}

		if limit := createLimiter(config.Limit); limit != nil {
			describer = limiter.NewDescriber(limit, describer)
		}

		if _, ok := describer.(otel.Describer); !ok {
			describer = otel.NewDescriber(config.Type, config.Model, describer)
		}

		c.RegisterDescriber(id, describer)
	}

	return nil
}

func createDescriber(cfg describerConfig) (provider.Describer, error) {
	switch strings.ToLower(cfg.Type) {
	case "openai":
		return openai.NewDescriber(cfg.URL, cfg.Model, openai.WithToken(cfg.Token))

	case "anthropic":
		return anthropic.NewDescriber(cfg.URL, cfg.Model, anthropic.WithToken(cfg.Token))

	case "google":
		return google.NewDescriber(cfg.Model, google.WithToken(cfg.Token))

	default:
		return nil, errors.New("invalid describer type: " + cfg.Type)
	}
}
