package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"noprint.dev/pkg/noprint/internal/adapter"
	"noprint.dev/pkg/noprint/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "noprint"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	jobsFlagName       = "jobs"
	firstOnlyFlagName  = "first-only"
	errorOutFlagName   = "error-out"
	verboseFlagName    = "verbose"
	quietFlagName      = "quiet"
	noCwdFlagName      = "no-cwd"
	pathFlagName       = "path"
	pythonFlagName     = "python"
	reservedFlagName   = "reserved"
	maxDepthFlagName   = "max-depth"
	reportFlagName     = "report"
	logFileFlagName    = "log-file"
	logVerboseFlagName = "log-verbose"

	jobsConfigKey        = "check.jobs"
	firstOnlyConfigKey   = "check.first_only"
	errorOutConfigKey    = "check.error_out"
	verbosityConfigKey   = "check.verbosity"
	reservedConfigKey    = "check.reserved"
	searchPathsKey       = "search.paths"
	searchCwdKey         = "search.cwd"
	searchMaxDepthKey    = "search.max_depth"
	searchInterpreterKey = "search.interpreter"
	searchPythonPathKey  = "search.pythonpath"
	searchVirtualEnvKey  = "search.virtualenv"
	reportPathKey        = "report.path"

	defaultJobs        = 1
	defaultFirstOnly   = false
	defaultErrorOut    = false
	defaultVerbosity   = 1
	defaultSearchCwd   = true
	defaultInterpreter = "python3"
	defaultPythonPath  = true
	defaultVirtualEnv  = true
	defaultReportPath  = ""

	envPrefix = "NOPRINT"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".noprint.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	initConfig()
}

// initConfig sets up the config file lookup, environment binding and defaults.
func initConfig() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		slog.Warn("Failed to read config file", "file", viper.ConfigFileUsed(), "error", err)
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)

	viper.SetDefault(jobsConfigKey, defaultJobs)
	viper.SetDefault(firstOnlyConfigKey, defaultFirstOnly)
	viper.SetDefault(errorOutConfigKey, defaultErrorOut)
	viper.SetDefault(verbosityConfigKey, defaultVerbosity)
	viper.SetDefault(reservedConfigKey, adapter.DefaultReservedWord)

	viper.SetDefault(searchPathsKey, []string{})
	viper.SetDefault(searchCwdKey, defaultSearchCwd)
	viper.SetDefault(searchMaxDepthKey, domain.DefaultMaxDepth)
	viper.SetDefault(searchInterpreterKey, defaultInterpreter)
	viper.SetDefault(searchPythonPathKey, defaultPythonPath)
	viper.SetDefault(searchVirtualEnvKey, defaultVirtualEnv)

	viper.SetDefault(reportPathKey, defaultReportPath)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Numeric slog levels, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// resolveVerbosity combines the configured base level with -v and -q.
func resolveVerbosity(base int, verboseCount int, quiet bool) int {
	if quiet {
		return domain.VerbosityQuiet
	}

	verbosity := base + verboseCount
	if verbosity < domain.VerbosityQuiet {
		return domain.VerbosityQuiet
	}

	return verbosity
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
