package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/terraincognita07/fitlog/internal/cli"
	"github.com/terraincognita07/fitlog/internal/config"
	"github.com/terraincognita07/fitlog/internal/db"
	"github.com/terraincognita07/fitlog/internal/models"
	"github.com/terraincognita07/fitlog/internal/services"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("fitlog: %v", err)
	}
}

func run() error {
	settings, err := config.LoadConfig(config.DefaultSearchPaths()...)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, err := newLogger(settings.Log)
	if err != nil {
		return fmt.Errorf("logger init failed: %w", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	location := mustLoadLocation(settings.Timezone, logger)

	database, err := db.OpenSQLite(settings.Data.Path, logger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Warn("database close failed", zap.Error(err))
		}
	}()
	logger.Info("fitlog started", zap.String("db", settings.Data.Path), zap.String("tz", location.String()))

	repositories := db.NewRepositories(database)
	shell := cli.NewShell(cli.Services{
		Auth:    services.NewAuthService(repositories.Users, logger.Named("auth")),
		Goals:   services.NewGoalService(repositories.Weights, location, logger.Named("goals")),
		Plans:   services.NewPlanService(models.DefaultPlanCatalog()),
		Records: services.NewRecordService(repositories.Foods, repositories.Workouts, logger.Named("records")),
		Stats:   services.NewStatsService(repositories.Weights, repositories.Foods, repositories.Workouts),
		Exports: services.NewExportService(repositories.Weights, repositories.Foods, repositories.Workouts),
	}, os.Stdin, os.Stdout, cli.Options{
		Location: location,
		Logger:   logger.Named("shell"),
	})
	return shell.Run()
}

func newLogger(settings config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(settings.Level)
	if err != nil {
		return nil, err
	}

	output := "stderr"
	if settings.Path != "" {
		if err := os.MkdirAll(filepath.Dir(settings.Path), 0o755); err != nil {
			return nil, err
		}
		output = settings.Path
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = zap.NewAtomicLevelAt(level)
	loggerConfig.Encoding = "console"
	loggerConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	loggerConfig.Sampling = nil
	loggerConfig.OutputPaths = []string{output}
	loggerConfig.ErrorOutputPaths = []string{"stderr"}
	return loggerConfig.Build()
}

func mustLoadLocation(name string, logger *zap.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		logger.Warn("invalid timezone, falling back to UTC", zap.String("timezone", name))
		return time.UTC
	}
	return location
}
