package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/meur/mctiers/internal/api"
	"github.com/meur/mctiers/internal/avatar"
	"github.com/meur/mctiers/internal/config"
	"github.com/meur/mctiers/internal/state"
	"github.com/meur/mctiers/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	port := flag.String("port", cfg.Port, "Server port")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize storage
	store, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	if err := store.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	// The change feed runs on its own connection so the pool stays free.
	feed := func(ctx context.Context, fn func(table string)) (func(), error) {
		listener, err := storage.Listen(ctx, cfg.DatabaseURL, logger, fn)
		if err != nil {
			return nil, err
		}
		return listener.Close, nil
	}

	container := state.New(store, feed, cfg.OwnerDiscordID, logger)
	if err := container.Load(ctx); err != nil {
		log.Fatalf("Failed to load initial snapshot: %v", err)
	}
	unsubscribe, err := container.Subscribe(ctx)
	if err != nil {
		log.Fatalf("Failed to subscribe to change feed: %v", err)
	}
	defer unsubscribe()

	// Create router
	r := api.New(container, avatar.New(cfg.AvatarBaseURL))

	srv := &http.Server{Addr: ":" + *port, Handler: r}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("🚀 MCTiers API starting on http://localhost:%s", *port)
	log.Printf("📦 Database: connected, snapshot loaded")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server failed: %v", err)
	}
}
