package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"deskshell/internal/app"
	"deskshell/internal/config"
	"deskshell/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := newLogger(cfg)
	appLogger.Info("Main", "starting", map[string]interface{}{
		"version":  app.AppVersion,
		"platform": cfg.Platform,
	})

	application, err := app.New(cfg, appLogger)
	if err != nil {
		log.Fatalf("application initialization failed: %v", err)
	}

	setupSignalHandling(application, appLogger)

	if err := application.Run(); err != nil {
		log.Fatalf("application execution failed: %v", err)
	}

	appLogger.Info("Main", "terminated", nil)
}

func newLogger(cfg config.Config) logger.Logger {
	level := logger.ParseLevel(cfg.LogLevel)
	if cfg.JSONLogs {
		return logger.NewJSONLogger(level)
	}
	return logger.NewConsoleLogger(level)
}

func setupSignalHandling(application *app.Application, appLogger logger.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		appLogger.Info("Main", "signal received, quitting", map[string]interface{}{
			"signal": sig.String(),
		})
		application.Quit()
	}()
}
