package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/AdityaSingh6666/Chat-Room/internal/config"
	"github.com/AdityaSingh6666/Chat-Room/internal/handler"
	"github.com/AdityaSingh6666/Chat-Room/internal/hub"
	"github.com/AdityaSingh6666/Chat-Room/internal/registry"
	"github.com/AdityaSingh6666/Chat-Room/internal/service"
	pkglog "github.com/AdityaSingh6666/Chat-Room/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		l := pkglog.L()
		l.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Initialize structured logger
	pkglog.Init(pkglog.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty, ServiceName: "chat-room"})
	logger := pkglog.L()

	logger.Info().Str("host", cfg.Server.Host).Int("port", cfg.Server.Port).Msg("starting chat-room server")

	// Wire the presence core: registry, room index, hub, coordinator
	reg := registry.New()
	rooms := registry.NewRoomIndex(reg)
	wsHub := hub.New(rooms)
	presenceSvc := service.NewPresenceService(reg, rooms, wsHub)

	// Routes: websocket endpoint, health check, static client
	wsHandler := handler.NewWSHandler(wsHub, presenceSvc, cfg)

	router := mux.NewRouter()
	wsHandler.RegisterRoutes(router)

	router.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.Static.Dir)))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info().Str("addr", server.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down chat-room server")

	// Graceful shutdown: stop accepting new connections, then close the
	// remaining websockets (hijacked connections are not covered by
	// Shutdown).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("server forced to shutdown")
	}
	wsHub.Shutdown()

	logger.Info().Msg("chat-room server stopped")
}
