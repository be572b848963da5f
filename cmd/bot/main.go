package main

import (
	"log/slog"
	"os"

	"mythic-notifier/internal/config"
)

func main() {
	InitLogger()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	defer app.Shutdown()

	if err := app.Run(); err != nil {
		slog.Error("Failed to start application", "error", err)
		os.Exit(1)
	}

	WaitForShutdown()
}
