package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hance08/pesa/internal/classifier"
	"github.com/hance08/pesa/internal/config"
	"github.com/hance08/pesa/internal/logger"
	"github.com/hance08/pesa/internal/service"
	"github.com/rs/zerolog"
)

const appName = "pesa"

type App struct {
	Service *service.Service
	Logger  zerolog.Logger
}

// NewApp validates config, opens the logger and builds the services.
func NewApp(cfg *config.Config) (*App, func(), error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	log, closeLog, err := logger.New(cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	svc := service.NewService(classifier.New(), cfg)

	cleanup := func() {
		if err := closeLog(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing log file: %v\n", err)
		}
	}

	return &App{
		Service: svc,
		Logger:  log,
	}, cleanup, nil
}

// DataDir is where the default config file lives.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, "."+appName), nil
	}

	return filepath.Join(configDir, appName), nil
}
