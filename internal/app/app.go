package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/cours-de-latin/morphdict"
	"github.com/cours-de-latin/morphdict/internal/config"
	"github.com/cours-de-latin/morphdict/internal/transport/middleware"
	"github.com/cours-de-latin/morphdict/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, initializes
// the logger, loads the dictionary and serves the REST API until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("dictionary", cfg.Dictionary.Path),
	)

	dict, err := OpenDictionary(cfg.Dictionary, logger)
	if err != nil {
		return err
	}

	ln, err := net.Listen("tcp", cfg.Server.Addr())
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.Server.Addr(), err)
	}
	return Serve(ctx, ln, NewServer(cfg, dict, logger), cfg.Server, logger)
}

// OpenDictionary loads the dictionary directory described by cfg.
func OpenDictionary(cfg config.DictionaryConfig, logger *slog.Logger) (*morphdict.Dictionary, error) {
	opts := []morphdict.Option{
		morphdict.WithLogger(logger.With(slog.String("component", "dictionary"))),
		morphdict.WithGramtabFormat(cfg.GramtabFormat),
		morphdict.WithLayout(morphdict.Layout{
			Words:          cfg.WordsIndex,
			PredictionBase: cfg.PredictionBase,
			PredictionExt:  cfg.PredictionExt,
		}),
	}
	if cfg.StrictVersion {
		opts = append(opts, morphdict.WithStrictVersion())
	}
	dict, err := morphdict.Open(cfg.Path, opts...)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", cfg.Path, err)
	}
	return dict, nil
}

// NewServer wires the REST handler behind the middleware chain.
func NewServer(cfg *config.Config, dict rest.Dictionary, logger *slog.Logger) *http.Server {
	api := rest.NewHandler(dict, rest.Options{
		CompleteLimit: cfg.Dictionary.CompleteLimit,
		Version:       Version,
		Logger:        logger,
	})

	handler := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	)(api)

	return &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}
}

// Serve runs srv on ln until ctx is done, then shuts it down gracefully
// within cfg.ShutdownTimeout.
func Serve(ctx context.Context, ln net.Listener, srv *http.Server, cfg config.ServerConfig, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", ln.Addr().String()))
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
