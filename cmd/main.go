package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"teams-api/internal/app"
	"teams-api/internal/configs"
	"teams-api/internal/infra/storage/memory"
	"teams-api/internal/infra/transport/rest/gen"
	"teams-api/internal/infra/transport/rest/handlers"
	"teams-api/internal/infra/transport/rest/middleware"
	"teams-api/pkg/logger"
)

func main() {
	cfg := configs.MustLoad()

	log, err := logger.New(cfg.Debug)
	if err != nil {
		panic(err)
	}
	defer func() {
		_ = log.Sync()
	}()

	// Initialize the store with the startup data set
	teamRepo := memory.NewTeamStorage()
	teamRepo.Seed(memory.SeedTeams())

	// Initialize service
	svc := app.NewService(teamRepo)

	// Initialize handlers
	h := handlers.NewHandlers(svc)

	// Setup router
	router := chi.NewRouter()
	router.Use(middleware.RequestLogger(log))

	// Register handlers
	handlers.RegisterDocs(router)
	gen.HandlerWithOptions(h, gen.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: handlers.BindingErrorHandler,
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	// Start server
	go func() {
		log.Infow("server starting", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed to start", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Infow("server exited")
}
