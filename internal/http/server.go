package http

import (
	"context"
	"errors"
	"net/http"

	"bankist/internal/core"
)

type Logger interface {
	InfoContext(ctx context.Context, msg string, args ...any)
	ErrorContext(ctx context.Context, msg string, args ...any)
}

func loggingMiddleware(logger Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.InfoContext(
			r.Context(),
			"request",
			"method", r.Method,
			"path", r.URL.Path,
		)

		next.ServeHTTP(w, r)
	})
}

type Server struct {
	httpServer *http.Server
	handler    Handler
	logger     Logger
}

func NewServer(
	engine SessionEngine,
	events *EventLog,
	logger core.Logger,
	config Config,
) *Server {
	handler := NewHandler(engine, events, logger)

	httpServer := &http.Server{
		Addr:         config.Address,
		Handler:      loggingMiddleware(logger, NewRouter(handler)),
		ReadTimeout:  config.Timeout,
		WriteTimeout: config.Timeout,
	}

	return &Server{
		httpServer: httpServer,
		handler:    handler,
		logger:     logger,
	}
}

func NewRouter(handler Handler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /session", handler.PostSession)
	mux.HandleFunc("GET /session", handler.GetSession)
	mux.HandleFunc("DELETE /session", handler.DeleteSession)
	mux.HandleFunc("POST /session/close", handler.PostSessionClose)
	mux.HandleFunc("POST /session/sort", handler.PostSessionSort)
	mux.HandleFunc("POST /transfers", handler.PostTransfers)
	mux.HandleFunc("POST /loans", handler.PostLoans)
	mux.HandleFunc("GET /events", handler.GetEvents)

	return mux
}

func (s *Server) Start(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Starting HTTP server", "address", s.httpServer.Addr)

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.ErrorContext(ctx, "HTTP server error", "error", err)
		}
	}()

	return nil
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.InfoContext(ctx, "Stopping HTTP server")
	return s.httpServer.Shutdown(ctx)
}
