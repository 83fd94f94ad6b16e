package main

import (
	"log/slog"
	"net/http"
	"os"

	"vehicle-manager/internal/config"
	"vehicle-manager/internal/fakeinventory"

	"github.com/gorilla/handlers"
	"github.com/spf13/pflag"
)

func main() {
	flags := pflag.NewFlagSet("fake-inventory", pflag.ExitOnError)
	flags.String("port", "8080", "port to listen on")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.Parse(os.Args[1:])

	cfg, err := config.Load(flags)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Setup structured JSON logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	handler := fakeinventory.NewHandler(fakeinventory.NewStore())
	router := handler.NewRouter()

	// Add CORS for browser tooling and keep panics from killing the process
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
	recovery := handlers.RecoveryHandler(handlers.PrintRecoveryStack(true))

	slog.Info("Fake inventory starting", "port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, recovery(cors(router))); err != nil {
		slog.Error("Fake inventory failed to start", "error", err)
		os.Exit(1)
	}
}
