package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	m "textaug.dev/pkg/textaug/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "textaug"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	threadsFlagName     = "parallel"
	countFlagName       = "count"
	seedFlagName        = "seed"
	strictFlagName      = "strict"
	outputFlagName      = "output"
	diffFlagName        = "diff"
	tuiFlagName         = "tui"
	metricsFileFlagName = "metrics-file"
	minCharsFlagName    = "min-chars"
	stopwordsFlagName   = "stopwords"
	excludeFlagName     = "exclude"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"

	threadsConfigKey     = "augment.threads"
	countConfigKey       = "augment.n"
	seedConfigKey        = "augment.seed"
	strictConfigKey      = "augment.strict"
	outputConfigKey      = "augment.output"
	diffConfigKey        = "augment.diff"
	tuiConfigKey         = "augment.tui"
	metricsFileConfigKey = "augment.metrics_file"
	minCharsConfigKey    = "filter.min_chars"
	stopwordsConfigKey   = "filter.stopwords"
	excludeConfigKey     = "paths.exclude"

	charCountConfigPrefix = "count.char"
	wordCountConfigPrefix = "count.word"

	defaultThreads = 1
	defaultCount   = 1

	envPrefix = "TEXTAUG"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".textaug.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(threadsConfigKey, defaultThreads)
	viper.SetDefault(countConfigKey, defaultCount)
	viper.SetDefault(strictConfigKey, false)
	viper.SetDefault(outputConfigKey, "")
	viper.SetDefault(diffConfigKey, false)
	viper.SetDefault(tuiConfigKey, false)
	viper.SetDefault(metricsFileConfigKey, "")
	viper.SetDefault(stopwordsConfigKey, []string{})
	viper.SetDefault(excludeConfigKey, []string{})

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Debug("Config file not loaded", "error", err)
		}
	}
}

// policyFromConfig reads count.<level>.{min,max,p}. Keys that are not set by
// a flag, the config file or the environment stay nil so the preset applies.
func policyFromConfig(prefix string) m.CountPolicy {
	var policy m.CountPolicy

	if key := prefix + ".min"; viper.IsSet(key) {
		policy.Min = m.Int(viper.GetInt(key))
	}

	if key := prefix + ".max"; viper.IsSet(key) {
		policy.Max = m.Int(viper.GetInt(key))
	}

	if key := prefix + ".p"; viper.IsSet(key) {
		policy.Fraction = m.Float(viper.GetFloat64(key))
	}

	return policy
}

func optionalInt(key string) *int {
	if !viper.IsSet(key) {
		return nil
	}

	return m.Int(viper.GetInt(key))
}

func optionalSeed() *uint64 {
	if !viper.IsSet(seedConfigKey) {
		return nil
	}

	seed := viper.GetUint64(seedConfigKey)

	return &seed
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

	// Numeric slog levels work too, e.g. -4 for debug.
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
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
	if verbose || viper.GetBool(logVerboseKey) {
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
