package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/uacscan/internal/ctxlog"
	"github.com/vk/uacscan/internal/reportcfg"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	errW   io.Writer
	inR    io.Reader
	logger *slog.Logger

	config    *Config
	reportCfg *reportcfg.Config
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Reports go to outW,
// logs to errW, and inR supplies the dump when no input path is configured.
func NewApp(outW, errW io.Writer, inR io.Reader, appConfig *Config) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, appConfig.Quiet, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reportCfg := reportcfg.Default()
	if appConfig.ReportConfigPath != "" {
		loaded, err := reportcfg.Load(ctx, appConfig.ReportConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load report configuration: %w", err)
		}
		reportCfg = loaded
	}

	// An explicit -format flag takes precedence over the report config file.
	if appConfig.Format != "" {
		reportCfg.Format = appConfig.Format
	} else {
		appConfig.Format = reportCfg.Format
	}

	return &App{
		outW:      outW,
		errW:      errW,
		inR:       inR,
		logger:    logger,
		config:    appConfig,
		reportCfg: reportCfg,
	}, nil
}

// ReportConfig returns the effective report configuration. This is primarily
// for testing.
func (a *App) ReportConfig() *reportcfg.Config {
	return a.reportCfg
}
