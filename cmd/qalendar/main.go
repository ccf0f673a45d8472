package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/username/calendar-layout/internal/config"
	"github.com/username/calendar-layout/internal/event"
	"github.com/username/calendar-layout/internal/source"
)

var (
	configPath string
	cfg        *config.Config
	logger     = zap.NewNop()
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "qalendar",
		Short:         "Calendar layout engine",
		Long:          "Lay out full-day events of a week into lanes and position timed events within the day",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}

			if cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger(cfg.Log.Level) // Fallback to console
				}
			} else {
				initLogger(cfg.Log.Level)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ., $HOME/.qalendar, /etc/qalendar)")

	rootCmd.AddCommand(weekCmd())
	rootCmd.AddCommand(percentCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(seedCmd())

	return rootCmd
}

// loadEvents reads events from the given files, falling back to the configured ones
func loadEvents(eventsFile, icsFile string) ([]event.Event, error) {
	if eventsFile == "" {
		eventsFile = cfg.Events.File
	}
	if icsFile == "" {
		icsFile = cfg.Events.ICSFile
	}

	var sources []source.Source
	for _, path := range []string{eventsFile, icsFile} {
		if path == "" {
			continue
		}
		src, err := source.Open(path, logger)
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}

	switch len(sources) {
	case 0:
		return nil, fmt.Errorf("no event source: pass --events or set events.file in the config")
	case 1:
		return sources[0].Load()
	default:
		return source.NewCompositeSource(logger, sources...).Load()
	}
}

func initLogger(level string) {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err == nil {
		config.Level = zap.NewAtomicLevelAt(zapLevel)
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
