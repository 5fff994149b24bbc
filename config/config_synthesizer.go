package config

import (
	"errors"
	"strings"

	"github.com/annikahug/cadenza/pkg/limiter"
	"github.com/annikahug/cadenza/pkg/otel"
	"github.com/annikahug/cadenza/pkg/provider"
	"github.com/annikahug/cadenza/pkg/provider/azure"
	"github.com/annikahug/cadenza/pkg/provider/custom"
	"github.com/annikahug/cadenza/pkg/provider/openai"
)

func (c *Config) RegisterSynthesizer(id string, p provider.Synthesizer) {
	if c.synthesizer == nil {
		c.synthesizer = make(map[string]provider.Synthesizer)
	}

	if _, ok := c.synthesizer[""]; !ok {
		c.synthesizer[""] = p
	}

	c.synthesizer[id] = p
}

func (c *Config) Synthesizer(id string) (provider.Synthesizer, error) {
	if c.synthesizer != nil {
		if p, ok := c.synthesizer[id]; ok {
			return p, nil
		}
	}

	return nil, errors.New("synthesizer not found: " + id)
}

type synthesizerConfig struct {
	Type string `yaml:"type"`

	URL   string `yaml:"url"`
	Token string `yaml:"token"`

	Region string `yaml:"region"`

	Model string `yaml:"model"`

	Limit *int `yaml:"limit"`
}

func (c *Config) registerSynthesizers(f *configFile) error {
	var configs map[string]synthesizerConfig

	if err := f.Synthesizers.Decode(&configs); err != nil {
		return err
	}

	for _, node := range f.Synthesizers.Content {
		id := node.Value

		config, ok := configs[node.Value]

		if !ok {
			continue
		}

		synthesizer, err := createSynthesizer(config)

		if err != nil {
			return err
		}

		if limit := createLimiter(config.Limit); limit != nil {
			synthesizer = limiter.NewSynthesizer(limit, synthesizer)
		}

		if _, ok := synthesizer.(otel.Synthesizer); !ok {
			synthesizer = otel.NewSynthesizer(config.Type, config.Model, synthesizer)
		}

		c.RegisterSynthesizer(id, synthesizer)
	}

	return nil
}

func createSynthesizer(cfg synthesizerConfig) (provider.Synthesizer, error) {
	switch strings.ToLower(cfg.Type) {
	case "azure":
		var options []azure.Option

		if cfg.Token != "" {
			options = append(options, azure.WithToken(cfg.Token))
		}

		if cfg.Region != "" {
			options = append(options, azure.WithRegion(cfg.Region))
		}

		return azure.NewSynthesizer(cfg.URL, options...)

	case "openai":
		return openai.NewSynthesizer(cfg.URL, cfg.Model, openai.WithToken(cfg.Token))

	case "custom":
		var options []custom.Option

		if cfg.Token != "" {
			options = append(options, custom.WithToken(cfg.Token))
		}

		return custom.NewSynthesizer(cfg.URL, options...)

	default:
		return nil, errors.New("invalid synthesizer type: " + cfg.Type)
	}
}
