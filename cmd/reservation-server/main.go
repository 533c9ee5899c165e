package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shiva/reservation/config"
	"github.com/shiva/reservation/internal/manager"
	"github.com/shiva/reservation/internal/rpc"
	"github.com/shiva/reservation/pkg/cache"
	"github.com/shiva/reservation/pkg/db"
)

func main() {
	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		log.Fatalf("failed to load config: %v", cfgErr)
	}

	ctx := context.Background()

	pgPool, err := db.NewPostgresPool(ctx, cfg.Db)
	if err != nil {
		log.Fatalf("failed to connect to PostgreSQL: %v", err)
	}
	defer pgPool.Close()
	log.Println("postgres connected")

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		log.Printf("redis unavailable, listen and get-cache disabled: %v", err)
		redisClient = nil
	} else {
		defer redisClient.Close()
		log.Println("redis connected")
	}

	mgr := manager.New(pgPool, redisClient)
	router := rpc.NewRouter(mgr, pgPool, redisClient)

	srv := &http.Server{
		Addr:         cfg.Server.ServerAddr(),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 0, // streaming responses (query/listen) are open-ended
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("reservation server listening on %s", cfg.Server.ServerAddr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server gracefully stopped")
}
