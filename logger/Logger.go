package logger

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log = &Logger{}

type Logger struct {
	echo bool
}

// Settings mirrors logger.properties.
type Settings struct {
	Filename   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Level      string
	Echo       bool
}

func defaultSettings() Settings {
	return Settings{
		Filename:   "logs/pong.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   false,
		Level:      "Info",
	}
}

// ReadSettings loads <dir>/logger.properties. A missing file yields the defaults.
func ReadSettings(dir string) (Settings, error) {
	settings := defaultSettings()

	v := viper.New()
	v.SetConfigName("logger")
	v.SetConfigType("properties")
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return settings, nil
		}
		return settings, fmt.Errorf("read logger properties: %w", err)
	}

	if v.IsSet("logFilename") {
		settings.Filename = cast.ToString(v.Get("logFilename"))
	}
	if v.IsSet("maxSize") {
		settings.MaxSize = cast.ToInt(v.Get("maxSize"))
	}
	if v.IsSet("maxBackups") {
		settings.MaxBackups = cast.ToInt(v.Get("maxBackups"))
	}
	if v.IsSet("maxAge") {
		settings.MaxAge = cast.ToInt(v.Get("maxAge"))
	}
	if v.IsSet("compress") {
		settings.Compress = cast.ToBool(v.Get("compress"))
	}
	if v.IsSet("level") {
		settings.Level = cast.ToString(v.Get("level"))
	}
	if v.IsSet("echo") {
		settings.Echo = cast.ToBool(v.Get("echo"))
	}
	return settings, nil
}

func (l *Logger) Init(dir string) error {
	settings, err := ReadSettings(dir)
	if err != nil {
		return err
	}
	l.Apply(settings, &lumberjack.Logger{
		Filename:   settings.Filename,
		MaxSize:    settings.MaxSize,
		MaxBackups: settings.MaxBackups,
		MaxAge:     settings.MaxAge,
		Compress:   settings.Compress,
	})
	return nil
}

// Apply configures logrus to write JSON lines to out at the configured level.
func (l *Logger) Apply(settings Settings, out io.Writer) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(out)
	logrus.SetLevel(ParseLevel(settings.Level))
	l.echo = settings.Echo
}

func ParseLevel(level string) logrus.Level {
	switch cast.ToString(level) {
	case "Trace":
		return logrus.TraceLevel
	case "Info":
		return logrus.InfoLevel
	case "Warn":
		return logrus.WarnLevel
	case "Error":
		return logrus.ErrorLevel
	case "Fatal":
		return logrus.FatalLevel
	default:
		return logrus.DebugLevel
	}
}

// WithFields starts a structured entry.
func (l *Logger) WithFields(fields logrus.Fields) *logrus.Entry {
	return logrus.WithFields(fields)
}

func (l *Logger) Info(message string) {
	logrus.Info(message)
	l.print("Info:", message)
}

func (l *Logger) Error(message string) {
	logrus.Error(message)
	l.print("Error:", message)
}

func (l *Logger) Debug(message string) {
	logrus.Debug(message)
	l.print("Debug:", message)
}

func (l *Logger) Warn(message string) {
	logrus.Warn(message)
	l.print("Warn:", message)
}

// Fatal logs and exits the process.
func (l *Logger) Fatal(message string) {
	l.print("Fatal:", message)
	logrus.Fatal(message)
}

// print mirrors to stdout. Off while the terminal screen owns stdout.
func (l *Logger) print(prefix, message string) {
	if l.echo {
		fmt.Fprintln(os.Stdout, prefix, message)
	}
}
