package bootstrap

import (
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"webserver/internal/config"
	"webserver/internal/controller"
	"webserver/internal/registry"
	"webserver/internal/transport"
	"webserver/internal/version"

	"go.uber.org/zap"
)

type Bootstrap struct {
	Config     config.Config
	Routes     registry.Registry
	Logger     *zap.Logger
	ErrChan    chan error
	SignalChan chan os.Signal
}

// New registers every controller route and freezes the registry; nothing can
// be added once the server is running.
func New(conf config.Config, logger *zap.Logger) (*Bootstrap, error) {
	routes := registry.New()
	if err := controller.NewIndex(conf.ViewsDir()).Register(routes); err != nil {
		return nil, fmt.Errorf("register routes: %w", err)
	}
	routes.Freeze()

	return &Bootstrap{
		Config:     conf,
		Routes:     routes,
		Logger:     logger,
		ErrChan:    make(chan error, 1),
		SignalChan: make(chan os.Signal, 1),
	}, nil
}

func (b *Bootstrap) Run() error {
	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(b.SignalChan)

	for _, w := range b.Config.Warnings() {
		b.Logger.Warn(w)
	}

	dispatcher := transport.NewDispatcher(b.Routes, b.Logger, b.Config.BufferSize())
	httpServer := transport.NewHTTPServer(b.Config.Address(), dispatcher, b.Logger)

	ln, err := httpServer.Listen()
	if err != nil {
		return fmt.Errorf("failed to start http server: %w", err)
	}
	defer func() {
		if err := ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			b.Logger.Warn("Error closing listener", zap.Error(err))
		}
	}()

	go func() {
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, net.ErrClosed) {
			b.ErrChan <- fmt.Errorf("error when serving http server: %w", err)
		}
	}()

	b.Logger.Info("All services started successfully",
		zap.String("version", version.GetVersion()),
		zap.Stringer("addr", ln.Addr()),
		zap.Strings("routes", b.Routes.Paths()))

	select {
	case err = <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		b.Logger.Info("Received signal, initiating graceful shutdown", zap.Stringer("signal", sig))
		return nil
	}
}
