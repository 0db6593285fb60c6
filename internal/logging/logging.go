package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/gommon/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const header = "${time_rfc3339} ${level} ${prefix} ${short_file}:${line}"

var ErrUnknownLevel = errors.New("unknown log level")

// Logger is a gommon logger that also owns its rotating log file, if any.
type Logger struct {
	*log.Logger
	LogFile string

	file *lumberjack.Logger
}

func ParseLevel(level string) (log.Lvl, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, level)
	}
}

// New returns a logger writing to stdout and, if dir is non-empty, to a
// size-rotated mayday.log in dir.
func New(prefix string, level log.Lvl, dir string) *Logger {
	return newLogger(prefix, level, dir, os.Stdout)
}

func newLogger(prefix string, level log.Lvl, dir string, console io.Writer) *Logger {
	l := &Logger{Logger: log.New(prefix)}
	l.SetHeader(header)
	l.SetLevel(level)

	var w io.Writer = console
	if dir != "" {
		l.file = &lumberjack.Logger{
			Filename:   filepath.Join(dir, "mayday.log"),
			MaxSize:    32, // MB
			MaxBackups: 3,
		}
		l.LogFile = l.file.Filename
		w = io.MultiWriter(console, l.file)
	}
	l.SetOutput(w)
	return l
}

// Discard returns a logger that drops everything.
func Discard() *Logger {
	return newLogger("discard", log.OFF, "", io.Discard)
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
