package config

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/araddon/dateparse"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
)

// AnalyzeConfig represents the configuration for a single analysis run.
type AnalyzeConfig struct {
	Stdout      io.Writer
	StartTime   time.Time
	EndTime     time.Time
	PathToLog   string
	ProjectPath string
	JSON        bool
}

// setAnalyzeConfig builds the analysis configuration from command-line
// arguments.
func setAnalyzeConfig(ctx *cli.Context) (*AnalyzeConfig, error) {
	cfg := &AnalyzeConfig{
		Stdout:    os.Stdout,
		PathToLog: ctx.String("session-file"),
		JSON:      ctx.Bool("json"),
	}

	start := ctx.String("start")
	if start != "" {
		dateTime, err := dateparse.ParseAny(start)
		if err != nil {
			return nil, errInvalidStartDate.Wrap(err)
		}

		cfg.StartTime = dateTime
	}

	if cfg.StartTime.IsZero() {
		return nil, errInvalidStartDate
	}

	end := ctx.String("end")
	if end != "" {
		dateTime, err := dateparse.ParseAny(end)
		if err != nil {
			return nil, err
		}

		cfg.EndTime = dateTime
	}

	// A zero end time leaves the reporting window unbounded above
	if !cfg.EndTime.IsZero() && cfg.EndTime.Before(cfg.StartTime) {
		return nil, errInvalidDateRange
	}

	projectPath, err := filepath.Abs(ctx.String("project-path"))
	if err != nil {
		return nil, err
	}

	cfg.ProjectPath = projectPath

	return cfg, nil
}

// Analyze initializes and returns the analysis configuration from
// command-line arguments.
func Analyze(ctx *cli.Context) *AnalyzeConfig {
	cfg, err := setAnalyzeConfig(ctx)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	return cfg
}
