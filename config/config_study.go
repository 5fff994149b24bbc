package config

import (
	"github.com/annikahug/cadenza/pkg/study"
	"github.com/annikahug/cadenza/pkg/study/sqlite"
)

// Study carries the study-wide settings shared by all sessions.
type Study struct {
	Voice    string
	Language string

	// registry ids of the synthesizers used per condition
	PlainSynthesizer  string
	MarkupSynthesizer string

	ToneFrequency float64

	Instructions string

	Store study.Store
}

type studyConfig struct {
	Database string `yaml:"database"`

	Voice    string `yaml:"voice"`
	Language string `yaml:"language"`

	PlainSynthesizer  string `yaml:"plain_synthesizer"`
	MarkupSynthesizer string `yaml:"markup_synthesizer"`

	ToneFrequency float64 `yaml:"tone_frequency"`

	Instructions string `yaml:"instructions"`
}

func (c *Config) registerStudy(f *configFile) error {
	cfg := f.Study

	if cfg.Database == "" {
		cfg.Database = "cadenza.db"
	}

	if cfg.Voice == "" {
		cfg.Voice = "en-US-JennyNeural"
	}

	if cfg.Language == "" {
		cfg.Language = "en-US"
	}

	if cfg.ToneFrequency == 0 {
		cfg.ToneFrequency = 220
	}

	store, err := sqlite.New(cfg.Database)

	if err != nil {
		return err
	}

	c.Study = Study{
		Voice:    cfg.Voice,
		Language: cfg.Language,

		PlainSynthesizer:  cfg.PlainSynthesizer,
		MarkupSynthesizer: cfg.MarkupSynthesizer,

		ToneFrequency: cfg.ToneFrequency,

		Instructions: cfg.Instructions,

		Store: store,
	}

	return nil
}
