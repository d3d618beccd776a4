package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"llmcalc/internal/config"
	"llmcalc/internal/httpapi"
	"llmcalc/internal/service"
)

const shutdownTimeout = 5 * time.Second

// serve runs the HTTP API until ctx is cancelled, then shuts down gracefully.
func serve(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	svc := service.New(service.Config{
		ModelsDir: cfg.ModelsDir,
		Scan:      fnScan,
		Defaults:  service.Defaults(cfg.Defaults),
	})
	// readyz reports loading until the first scan finished
	go func() {
		if err := svc.Refresh(); err != nil {
			log.Error().Err(err).Msg("model scan failed")
			return
		}
		if cfg.ModelsDir != "" {
			log.Info().Str("dir", cfg.ModelsDir).Int("models", len(svc.ListModels())).Msg("models loaded")
		}
	}()

	httpapi.SetLogger(log)
	httpapi.SetDefaultLogLevel(cfg.LogLevel)
	httpapi.SetMaxBodyBytes(cfg.MaxBodyBytes)
	httpapi.SetCORSOptions(cfg.CORS.Enabled, cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           httpapi.NewMux(svc),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("llmcalc listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown error")
		return err
	}
	log.Info().Msg("server stopped")
	return nil
}
