package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tictacnext/tictacnext/internal/config"
	"github.com/tictacnext/tictacnext/internal/db"
	"github.com/tictacnext/tictacnext/internal/handler"
	"github.com/tictacnext/tictacnext/internal/repository"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.Mongo.URI == "" {
		log.Fatal("MONGO_URI is required")
	}

	// No degraded mode: an unreachable store at startup is fatal.
	log.Println("Connecting to MongoDB...")
	mongo, err := db.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB successfully")

	store := repository.New(mongo)
	router := handler.NewRouter(store)

	startServer(ctx, cfg.Server.Addr, router)

	// The HTTP server has drained; release the store connection last.
	closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := mongo.Close(closeCtx); err != nil {
		log.Printf("error closing MongoDB connection: %v", err)
	} else {
		log.Println("MongoDB connection closed")
	}
}

func startServer(ctx context.Context, addr string, router http.Handler) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("[api] game-session API listening on %s", addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
