package transport

import (
	"bufio"
	"fmt"
	"io"
	"webserver/internal/http/request"
	"webserver/internal/http/response"
	"webserver/internal/registry"

	"go.uber.org/zap"
)

var (
	ErrHandler = fmt.Errorf("handler failed")
	ErrWrite   = fmt.Errorf("write response")
)

type dispatcher struct {
	routes     registry.Registry
	logger     *zap.Logger
	bufferSize int
}

func NewDispatcher(routes registry.Registry, logger *zap.Logger, bufferSize int) Dispatcher {
	return &dispatcher{
		routes:     routes,
		logger:     logger,
		bufferSize: bufferSize,
	}
}

// Dispatch parses one request from conn, runs the handler registered for its
// path (or answers 404) and writes the serialized response back. Nothing is
// written when parsing or the handler fails; the caller decides what to send.
func (d *dispatcher) Dispatch(conn io.ReadWriter) error {
	req, err := request.Parse(bufio.NewReaderSize(conn, d.bufferSize))
	if err != nil {
		return err
	}
	d.logger.Debug("request received",
		zap.Stringer("method", req.Method()),
		zap.String("target", req.Line().Target()),
		zap.String("version", req.Version()))

	resp, err := d.respond(req)
	if err != nil {
		return err
	}
	d.logger.Debug("response ready",
		zap.String("path", req.Path()),
		zap.Stringer("status", resp.StatusLine()))

	if _, err = conn.Write(resp.Bytes()); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

func (d *dispatcher) respond(req *request.Request) (*response.Response, error) {
	handler, ok := d.routes.Resolve(req.Path())
	if !ok {
		return response.NotFound(), nil
	}

	resp, err := handler()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrHandler, req.Path(), err)
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: %s: nil response", ErrHandler, req.Path())
	}
	return resp, nil
}
