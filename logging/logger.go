// Package logging is a small leveled logger on top of the standard log package
// with coloured level tags.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/fatih/color"
)

type Level int32

const (
	Debug Level = iota
	Info
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Debug:
		return "DEBUG"
	case Info:
		return "INFO"
	case Warn:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return ""
	}
}

var levelColors = map[Level]*color.Color{
	Debug: color.New(color.FgCyan),
	Info:  color.New(color.FgGreen),
	Warn:  color.New(color.FgYellow),
	Error: color.New(color.FgRed, color.Bold),
}

type Logger struct {
	level Level
	base  *log.Logger
}

func New(level Level, writer io.Writer) *Logger {
	return &Logger{
		level: level,
		base:  log.New(writer, "", log.LstdFlags),
	}
}

var (
	defaultLogger = New(Warn, os.Stderr)
	mu            sync.Mutex
)

func Default() *Logger {
	mu.Lock()
	defer mu.Unlock()
	return defaultLogger
}

func SetDefault(l *Logger) {
	mu.Lock()
	defer mu.Unlock()
	defaultLogger = l
}

func (l *Logger) Level() Level {
	return l.level
}

func (l *Logger) Debug(format string, args ...interface{}) {
	l.write(Debug, format, args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.write(Info, format, args...)
}

func (l *Logger) Warn(format string, args ...interface{}) {
	l.write(Warn, format, args...)
}

func (l *Logger) Error(format string, args ...interface{}) {
	l.write(Error, format, args...)
}

func (l *Logger) write(level Level, format string, args ...interface{}) {
	if level < l.level {
		return
	}

	tag := levelColors[level].Sprintf("[%s]", level)
	l.base.Output(3, fmt.Sprintf("%s %s", tag, fmt.Sprintf(format, args...)))
}
