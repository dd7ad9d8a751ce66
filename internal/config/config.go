// Package config assembles runtime configuration from an optional YAML
// file, environment variables and CLI flags, in increasing order of
// precedence.
package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/rentroll/internal/app"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// fileConfig mirrors the YAML config file layout.
type fileConfig struct {
	DataFile      string `yaml:"data_file"`
	HistoryDB     string `yaml:"history_db"`
	StateFile     string `yaml:"state_file"`
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Footer        *bool  `yaml:"footer"`
	WatchInterval string `yaml:"watch_interval"`
	LogFile       string `yaml:"log_file"`
	Trace         *bool  `yaml:"trace"`
}

const (
	envConfigFile    = "RENTROLL_CONFIG"
	envDataFile      = "RENTROLL_DATA_FILE"
	envHistoryDB     = "RENTROLL_HISTORY_DB"
	envStateFile     = "RENTROLL_STATE_FILE"
	envWidth         = "RENTROLL_WIDTH"
	envHeight        = "RENTROLL_HEIGHT"
	envShowFooter    = "RENTROLL_FOOTER"
	envTrace         = "RENTROLL_TRACE"
	envLogFile       = "RENTROLL_LOG_FILE"
	envWatchInterval = "RENTROLL_WATCH_INTERVAL"
)

const (
	defaultDataFile      = "rentroll.json"
	defaultHistoryDB     = "rentroll-history.db"
	defaultStateFile     = "rentroll-window.json"
	defaultWatchInterval = 1500 * time.Millisecond
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	file, err := loadFileConfig(configFilePath(args, env))
	if err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("rentroll", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", "", "path to a YAML config file")
	dataFile := fs.String("data-file", envOrDefault(env, envDataFile, orDefault(file.DataFile, defaultDataFile)), "path to the client book data file")
	historyDB := fs.String("history-db", envOrDefault(env, envHistoryDB, orDefault(file.HistoryDB, defaultHistoryDB)), "path to the command history database")
	stateFile := fs.String("state-file", envOrDefault(env, envStateFile, orDefault(file.StateFile, defaultStateFile)), "path to the persisted window state file")
	width := fs.Int("width", envOrInt(env, envWidth, file.Width), "initial viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, file.Height), "initial viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, orBool(file.Footer, true)), "show the key-hint footer row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, orBool(file.Trace, false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, file.LogFile), "path to the log file")
	watch := fs.Duration("watch-interval", envOrDuration(env, envWatchInterval, fileDuration(file.WatchInterval, defaultWatchInterval)), "poll interval for external data file changes (0 disables)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if *watch < 0 {
		return Config{}, fmt.Errorf("watch-interval must be >= 0 (got %s)", *watch)
	}
	if strings.TrimSpace(*dataFile) == "" {
		return Config{}, fmt.Errorf("data-file must not be empty")
	}

	cfg := Config{
		App: app.Config{
			DataFile:      *dataFile,
			HistoryDB:     *historyDB,
			StateFile:     *stateFile,
			Width:         *width,
			Height:        *height,
			ShowFooter:    *footer,
			WatchInterval: *watch,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"dataFile":      *dataFile,
			"historyDB":     *historyDB,
			"stateFile":     *stateFile,
			"width":         strconv.Itoa(*width),
			"height":        strconv.Itoa(*height),
			"footer":        strconv.FormatBool(*footer),
			"trace":         strconv.FormatBool(*trace),
			"logFile":       *logFile,
			"watchInterval": watch.String(),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configFilePath finds the -config flag value without running the full flag
// parse, so the file's values can seed the flag defaults.
func configFilePath(args []string, env map[string]string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		name, value, hasValue := strings.Cut(arg, "=")
		if name != "-config" && name != "--config" {
			continue
		}
		if hasValue {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return env[envConfigFile]
}

func loadFileConfig(path string) (fileConfig, error) {
	if strings.TrimSpace(path) == "" {
		return fileConfig{}, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("read config file: %w", err)
	}
	var file fileConfig
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return fileConfig{}, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return file, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func orBool(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}
	return *value
}

func fileDuration(value string, fallback time.Duration) time.Duration {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}
