package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
)

// Logger printf-style логгер поверх logrus.
// Пишет в stdout и, если задан путь, дополнительно в файл.
type Logger struct {
	log  *logrus.Logger
	file *os.File
}

// New создает логгер с выводом в stdout и в файл filePath (если путь не пустой)
func New(filePath, level string) (*Logger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	var (
		out  io.Writer = os.Stdout
		file *os.File
	)

	if filePath != "" {
		if dir := filepath.Dir(filePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logger: create log dir: %w", err)
			}
		}

		file, err = os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("logger: open log file: %w", err)
		}
		out = io.MultiWriter(os.Stdout, file)
	}

	l := NewWithWriter(out, lvl.String())
	l.file = file
	return l, nil
}

// NewWithWriter создает логгер, пишущий в произвольный writer.
// Некорректный уровень трактуется как info.
func NewWithWriter(w io.Writer, level string) *Logger {
	lvl, err := parseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
		DisableColors:   true,
	})

	return &Logger{log: log}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.log.Debugf(format, v...)
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.log.Infof(format, v...)
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.log.Warnf(format, v...)
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.log.Errorf(format, v...)
}

// Fatal логирует сообщение и завершает процесс с кодом 1
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.log.Fatalf(format, v...)
}

// Close закрывает файл логов, если он был открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func parseLevel(level string) (logrus.Level, error) {
	if strings.TrimSpace(level) == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(strings.ToLower(level))
	if err != nil {
		return logrus.InfoLevel, fmt.Errorf("logger: unknown level %q: %w", level, err)
	}
	return lvl, nil
}
