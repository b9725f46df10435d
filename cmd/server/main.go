package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"notes-server/internal/config"
	"notes-server/internal/events"
	"notes-server/internal/handler"
	"notes-server/internal/middleware"
	"notes-server/internal/repository"
	"notes-server/internal/service"
	"notes-server/pkg/logger"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	notesCollection = "notes"
	shutdownGrace   = 10 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logg := logger.New(cfg.Server.Env, cfg.Logging.Level)
	defer logg.Sync()

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelConnect()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.Mongo.DSN))
	if err != nil {
		logg.Fatal("failed to connect to MongoDB", zap.Error(err))
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		logg.Fatal("failed to ping MongoDB", zap.Error(err))
	}
	logg.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	coll := client.Database(cfg.Mongo.Database).Collection(notesCollection)

	hub := events.NewHub(logg)
	go hub.Run()

	noteRepo := repository.NewNoteRepository(coll)
	noteService := service.NewNoteService(noteRepo, hub)

	noteHandler := handler.NewNoteHandler(noteService, logg)
	wsHandler := handler.NewWebSocketHandler(hub, logg)

	r := mux.NewRouter()

	r.Use(middleware.Logger(logg))
	r.Use(middleware.Recovery(logg))
	r.Use(middleware.CORS(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/notes", noteHandler.List).Methods("GET", "OPTIONS")
	api.HandleFunc("/notes", noteHandler.Create).Methods("POST", "OPTIONS")
	api.HandleFunc("/notes/{id}", noteHandler.Get).Methods("GET", "OPTIONS")
	api.HandleFunc("/notes/{id}", noteHandler.Update).Methods("PATCH", "OPTIONS")
	api.HandleFunc("/notes/{id}", noteHandler.Delete).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/ws", wsHandler.HandleConnection)
	r.HandleFunc("/health", healthHandler).Methods("GET")

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logg.Info("starting notes server", zap.String("addr", addr), zap.String("env", cfg.Server.Env))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logg.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Info("shutting down server")

	// Stop accepting new requests and drain in-flight ones; past the grace
	// period the process is terminated instead of hanging.
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logg.Fatal("shutdown grace period exceeded, forcing exit", zap.Error(err))
	}

	if err := client.Disconnect(ctx); err != nil {
		logg.Error("failed to disconnect from MongoDB", zap.Error(err))
		os.Exit(1)
	}

	logg.Info("server stopped gracefully")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"notes-server"}`))
}
