package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/carlrannaberg/claudekit/config"
	"github.com/carlrannaberg/claudekit/discovery"
	"github.com/carlrannaberg/claudekit/internal/sessionlog"
	"github.com/carlrannaberg/claudekit/internal/ui"
	"github.com/carlrannaberg/claudekit/report"
	"github.com/carlrannaberg/claudekit/stats"
)

const (
	envNoColor    = "NO_COLOR"
	envAppNoColor = "CLAUDEKIT_NO_COLOR"
	envDebug      = "CLAUDEKIT_DEBUG"
)

// initLogger routes slog output to a rotated log file.
func initLogger() {
	logFile := &lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	level := slog.LevelInfo

	if _, found := os.LookupEnv(envDebug); found {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: level}),
	))
}

// analyzeAction computes and reports the session metrics for the
// specified time window.
func analyzeAction(ctx *cli.Context) error {
	cfg := config.Analyze(ctx)

	settings := config.App()

	ui.DarkTheme = settings.DarkTheme

	pathToLog := cfg.PathToLog
	if pathToLog == "" {
		var err error

		pathToLog, err = discovery.FindSessionFile(
			settings.LogsDir,
			cfg.ProjectPath,
			cfg.StartTime,
		)
		if err != nil {
			return err
		}
	}

	slog.Info("analyzing session file", slog.String("path", pathToLog))

	if !cfg.JSON {
		pterm.Info.Printfln("Analyzing session: %s", pathToLog)
	}

	timestamps, err := sessionlog.ReadTimestamps(
		pathToLog,
		cfg.StartTime,
		cfg.EndTime,
	)
	if err != nil {
		return err
	}

	metrics, err := stats.Compute(timestamps, stats.Opts{
		ShortGapMins:          settings.ShortGapMins,
		LongGapMins:           settings.LongGapMins,
		BaselineEventsPerHour: settings.BaselineEventsPerHour,
	})
	if err != nil {
		return err
	}

	slog.Debug(spew.Sdump(metrics))

	if cfg.JSON {
		b, err := metrics.ToJSON()
		if err != nil {
			return err
		}

		fmt.Fprintln(cfg.Stdout, string(b))

		return nil
	}

	report.Render(cfg.Stdout, metrics)

	return nil
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	initLogger()

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if CLAUDEKIT_NO_COLOR is set
	if _, exists := os.LookupEnv(envAppNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.InfoContext(ctx.Context, "exiting claudekit")

	return nil
}
