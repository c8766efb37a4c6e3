package main

import (
	"fmt"
	"os"
	"webserver/internal/bootstrap"
	"webserver/internal/config"

	"go.uber.org/zap"
)

func main() {
	conf, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %s\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(conf.Debug())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %s\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := bootstrap.New(conf, logger)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}

	if err = app.Run(); err != nil {
		logger.Fatal("Application error", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
