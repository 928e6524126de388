// Package common provides shared functionality for the keyleek command tree.
package common

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/CompassSecurity/keyleek/pkg/format"
	"github.com/CompassSecurity/keyleek/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version information - set via ldflags during build
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Log configuration
var (
	JsonLogoutput bool
	LogFile       string
	LogColor      bool
	LogDebug      bool
	LogLevel      string
	ConfigFile    string
)

// lineWriter terminates every log line with the platform newline.
type lineWriter struct {
	out io.Writer
}

func (w *lineWriter) Write(p []byte) (n int, err error) {
	newline := format.GetPlatformAgnosticNewline()
	line := make([]byte, 0, len(p)+len(newline))
	line = append(line, bytes.TrimSuffix(p, []byte("\n"))...)
	line = append(line, newline...)

	// necessary as to: https://github.com/rs/zerolog/blob/master/log.go#L474
	written, err := w.out.Write(line)
	if err != nil {
		return 0, err
	}
	if written != len(line) {
		return 0, io.ErrShortWrite
	}
	return len(p), nil
}

// levelColors are the ANSI colors of the console level column. The hit level
// is magenta so candidates stand out from warnings.
var levelColors = map[string]string{
	"trace": "\x1b[90m",
	"info":  "\x1b[32m",
	"warn":  "\x1b[33m",
	"hit":   "\x1b[35m",
	"error": "\x1b[31m",
	"fatal": "\x1b[31m",
	"panic": "\x1b[31m",
}

func formatLevel(colorEnabled bool) zerolog.Formatter {
	return func(i interface{}) string {
		level, ok := i.(string)
		if !ok {
			return ""
		}
		if color, found := levelColors[level]; found && colorEnabled {
			return color + level + "\x1b[0m"
		}
		return level
	}
}

// colorOutput decides whether console logs are colored. An explicit --color
// wins, otherwise color is only used when writing to a terminal.
func colorOutput(cmd *cobra.Command, toFile bool) bool {
	if cmd.Root().PersistentFlags().Changed("color") {
		return LogColor
	}
	if toFile {
		return false
	}
	return LogColor && term.IsTerminal(int(os.Stdout.Fd()))
}

// InitLogger initializes the zerolog logger with the configured options
func InitLogger(cmd *cobra.Command) error {
	var out io.Writer = &lineWriter{out: os.Stdout}

	if LogFile != "" {
		// #nosec G304 - User-provided log file path via --logfile flag, user controls their own filesystem
		runLogFile, err := os.OpenFile(LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, format.FileUserReadWrite)
		if err != nil {
			return fmt.Errorf("failed opening log file: %w", err)
		}
		out = &lineWriter{out: runLogFile}
	}

	if !JsonLogoutput {
		colorEnabled := colorOutput(cmd, LogFile != "")
		out = zerolog.ConsoleWriter{
			Out:         out,
			TimeFormat:  time.RFC3339,
			NoColor:     !colorEnabled,
			FormatLevel: formatLevel(colorEnabled),
		}
	}

	// the hit writer rewrites the level before the console writer formats it
	hitWriter := logging.NewHitLevelWriter(out)
	logging.SetGlobalHitWriter(hitWriter)
	log.Logger = zerolog.New(hitWriter).With().Timestamp().Logger()
	return nil
}

// SetGlobalLogLevel sets the global log level based on the configured options
func SetGlobalLogLevel() {
	level, source := zerolog.InfoLevel, "default"

	switch {
	case LogLevel != "":
		parsed, err := logging.ParseLevel(LogLevel)
		if err != nil {
			log.Warn().Str("logLevelSpecified", LogLevel).Msg("Invalid log level, defaulting to info")
			break
		}
		level, source = parsed, "explicit"
	case LogDebug:
		level, source = zerolog.DebugLevel, "-v"
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("level", level.String()).Str("source", source).Msg("Log level set")
}

// AddCommonFlags adds the common logging and output flags to a cobra command
func AddCommonFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&JsonLogoutput, "json", "", false, "Use JSON as log output format")
	cmd.PersistentFlags().StringVarP(&LogFile, "logfile", "l", "", "Log output to a file")
	cmd.PersistentFlags().BoolVarP(&LogDebug, "verbose", "v", false, "Enable debug logging (shortcut for --log-level=debug)")
	cmd.PersistentFlags().StringVar(&LogLevel, "log-level", "", "Set log level globally (debug, info, warn, error, hit). Example: --log-level=hit")
	cmd.PersistentFlags().BoolVar(&LogColor, "color", true, "Enable colored log output (auto-disabled when not writing to a terminal)")
	cmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default: ./keyleek.yaml or ~/.config/keyleek/keyleek.yaml)")
}

// SetupPersistentPreRun sets up the PersistentPreRun handler for config and logging initialization
func SetupPersistentPreRun(cmd *cobra.Command) {
	cmd.PersistentPreRunE = func(c *cobra.Command, args []string) error {
		configFile, err := InitConfig(c)
		if err != nil {
			return err
		}
		if err := InitLogger(c); err != nil {
			return err
		}
		SetGlobalLogLevel()
		if configFile != "" {
			log.Debug().Str("file", configFile).Msg("Using config file")
		}
		return nil
	}
}

// Run executes the root command and exits non-zero on failure
func Run(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
