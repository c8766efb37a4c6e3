package transport

import (
	"errors"
	"io"
	"net"
	"webserver/internal/http/response"

	"go.uber.org/zap"
)

type httpServer struct {
	addr       string
	dispatcher Dispatcher
	logger     *zap.Logger
}

func NewHTTPServer(addr string, dispatcher Dispatcher, logger *zap.Logger) Transport {
	return &httpServer{
		addr:       addr,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (hs *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", hs.addr)
}

// Serve accepts connections one at a time and handles each to completion
// before accepting the next. It returns when the listener is closed.
func (hs *httpServer) Serve(listener net.Listener) error {
	hs.logger.Info("HTTP server is starting", zap.Stringer("addr", listener.Addr()))
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			hs.logger.Error("Error accepting connection", zap.Error(err))
			continue
		}

		hs.handle(conn)
	}
}

func (hs *httpServer) handle(conn net.Conn) {
	defer hs.closeConnection(conn)

	if err := hs.dispatcher.Dispatch(conn); err != nil {
		hs.fail(conn, err)
	}
}

// fail applies the error policy for a connection whose dispatch failed:
// parse errors get a 400, handler errors a 500, write errors nothing.
func (hs *httpServer) fail(conn io.Writer, err error) {
	var resp *response.Response
	switch {
	case errors.Is(err, ErrWrite):
		hs.logger.Error("Failed to write response", zap.Error(err))
		return
	case errors.Is(err, ErrHandler):
		hs.logger.Warn("Handler failed", zap.Error(err))
		resp = response.InternalServerError()
	default:
		hs.logger.Warn("Failed to parse request", zap.Error(err))
		resp = response.BadRequest()
	}

	if _, werr := conn.Write(resp.Bytes()); werr != nil {
		hs.logger.Debug("Failed to write error response", zap.Error(werr))
	}
}

func (hs *httpServer) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		hs.logger.Warn("Error closing connection", zap.Error(err))
	}
}
