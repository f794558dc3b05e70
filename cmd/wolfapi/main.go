package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wolfpack/internal/adapters/auth/introspect"
	"wolfpack/internal/platform/config"
	"wolfpack/internal/platform/logger"
	"wolfpack/internal/ports/auth"
	"wolfpack/internal/router"
)

// @title wolfapi
// @version 1.0
// @description API de lobos y manadas para desarrollo local del cliente wolfpack.
// @BasePath /
func main() {
	cfg := config.LoadServer()
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stores, err := router.OpenStores(ctx, cfg.DSN, cfg.SQLitePath)
	if err != nil {
		log.Error("storage init failed", map[string]any{"err": err})
		os.Exit(1)
	}
	defer func() { _ = stores.Close() }()

	verifier := tokenVerifier(cfg)

	srv := &http.Server{
		Addr: cfg.Addr,
		Handler: router.NewRouter(router.Options{
			Verifier: verifier,
			Wolves:   stores.Wolves,
			Packs:    stores.Packs,
			Log:      log,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{
		"addr":  cfg.Addr,
		"store": stores.Kind,
		"auth":  verifier != nil,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"err": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}

// tokenVerifier elige la verificación: introspección remota, token fijo o nada (modo dev).
func tokenVerifier(cfg config.Server) auth.TokenVerifier {
	switch {
	case cfg.IntrospectURL != "":
		client := introspect.NewClient(introspect.Config{URL: cfg.IntrospectURL, APIKey: cfg.IntrospectKey})
		return introspect.NewVerifier(client, cfg.IntrospectScope)
	case cfg.APIToken != "":
		return auth.NewStaticVerifier(cfg.APIToken)
	default:
		return nil
	}
}
