// Package config is responsible for setting the program config from
// the config file and command-line arguments
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"
	"github.com/pterm/pterm"
	"github.com/spf13/viper"
)

const Version = "v0.1.0"

const envAppEnv = "CLAUDEKIT_ENV"

var (
	configDir      = "claudekit"
	configFileName = "config.yml"
	logFileName    = "claudekit.log"
	configFilePath string
	logFilePath    string
)

const (
	keyShortGapMins          = "analysis.short_gap_mins"
	keyLongGapMins           = "analysis.long_gap_mins"
	keyBaselineEventsPerHour = "analysis.baseline_events_per_hour"
	keyDarkTheme             = "display.dark_theme"
	keyLogsDir               = "logs.dir"
)

// Settings holds the values read from the configuration file.
type Settings struct {
	LogsDir               string
	ShortGapMins          float64
	LongGapMins           float64
	BaselineEventsPerHour float64
	DarkTheme             bool
}

var (
	settings *Settings
	once     sync.Once
)

func ConfigFilePath() string {
	return configFilePath
}

func LogFilePath() string {
	return logFilePath
}

// InitializePaths resolves the config and log file locations. The
// CLAUDEKIT_ENV environment variable suffixes the file names so that
// test runs never clobber the real configuration.
func InitializePaths() {
	appEnv := strings.TrimSpace(os.Getenv(envAppEnv))
	if appEnv != "" {
		configFileName = fmt.Sprintf("config_%s.yml", appEnv)
		logFileName = fmt.Sprintf("claudekit_%s.log", appEnv)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	logFilePath = filepath.Join(dataDir, "log", logFileName)
}

// defaultLogsDir is where Claude Code keeps per-project session logs.
func defaultLogsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".claude", "projects")
}

// App initializes and returns the application settings, writing a
// default config file on first run.
func App() *Settings {
	once.Do(func() {
		settings = &Settings{}

		if err := loadSettings(settings); err != nil {
			pterm.Error.Println(err)
			os.Exit(1)
		}
	})

	return settings
}

func loadSettings(s *Settings) error {
	v := viper.New()

	v.SetConfigFile(configFilePath)
	v.SetConfigType("yaml")

	v.SetDefault(keyShortGapMins, 5)
	v.SetDefault(keyLongGapMins, 30)
	v.SetDefault(keyBaselineEventsPerHour, 400)
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyLogsDir, "")

	err := v.ReadInConfig()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}
	}

	s.ShortGapMins = v.GetFloat64(keyShortGapMins)
	s.LongGapMins = v.GetFloat64(keyLongGapMins)
	s.BaselineEventsPerHour = v.GetFloat64(keyBaselineEventsPerHour)
	s.DarkTheme = v.GetBool(keyDarkTheme)

	s.LogsDir = v.GetString(keyLogsDir)
	if s.LogsDir == "" {
		s.LogsDir = defaultLogsDir()
	}

	return nil
}
