package main

import (
	"bytes"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"reviewer/handler"
	"reviewer/helper"
	"reviewer/session"
	"reviewer/upload"

	"github.com/labstack/echo/v4"
)

// main is the entry point of the reviewer service. It initializes the review handler,
// sets up routes, and starts the Echo server with the port from the environment variable REVIEWER_PORT.
func main() {
	ReviewServer(helper.GetEnvOrDefault("REVIEWER_PORT", "3000"))
}

// ReviewServer initializes the review handler, sets up routes, and starts the Echo server.
func ReviewServer(port string) {
	rh, err := InitReviewHandler()
	if err != nil {
		log.Fatalf("Failed to initialize review handler: %v", err)
	}

	e := echo.New()
	SetupRoutes(e, rh)

	e.Logger.Fatal(e.Start(":" + port))
}

// InitReviewHandler creates and configures the review handler, including setting up the
// filesystem, the session registry and seeding a sample CSV if one is specified.
// It returns the initialized review handler or an error if initialization fails.
func InitReviewHandler() (*handler.ReviewHandler, error) {
	// Create filesystem from environment variables
	filesystem, err := upload.CreateFilesystemFromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create filesystem: %w", err)
	}

	// Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Session registry with configurable idle timeout
	maxIdle := helper.GetEnvDurationOrDefault("REVIEWER_SESSION_TTL", 12*time.Hour)
	sessions := session.NewRegistry(maxIdle, logger)

	// Seed a sample CSV into storage if a path is provided
	samplePath := helper.GetEnvOrDefault("REVIEWER_SAMPLE_CSV", "")
	if samplePath != "" {
		if err := seedSampleCSV(samplePath, filesystem, logger); err != nil {
			return nil, fmt.Errorf("failed to seed sample CSV: %w", err)
		}
	}

	return handler.NewReviewHandler(filesystem, sessions, logger), nil
}

func seedSampleCSV(filePath string, filesystem upload.Filesystem, logger *slog.Logger) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	filename := filepath.Base(filePath)
	if !helper.IsCSV(filename) {
		return fmt.Errorf("sample file %s is not a CSV", filename)
	}

	err = filesystem.Write(filename, bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return err
	}

	logger.Info("Sample CSV loaded into storage", "file", filename, "size", len(data))
	return nil
}
