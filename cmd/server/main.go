package main

import (
	"flag"
	"log/slog"

	"github.com/annikahug/cadenza/config"
	"github.com/annikahug/cadenza/pkg/otel"
	"github.com/annikahug/cadenza/server"
)

func main() {
	configFlag := flag.String("config", "config.yaml", "configuration file")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	if err := otel.Setup("cadenza", "1.0.0"); err != nil {
		panic(err)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		panic(err)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		panic(err)
	}

	slog.Info("server starting", "address", cfg.Address)

	if err := s.ListenAndServe(); err != nil {
		panic(err)
	}
}
