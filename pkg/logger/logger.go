// Package logger простой файловый логгер с уровнями логирования
package logger

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// ParseLevel парсит уровень логирования из строки конфигурации
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug, nil
	case "INFO", "":
		return LevelInfo, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "ERROR":
		return LevelError, nil
	case "FATAL":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
}

// Logger логгер с уровнями, пишущий одновременно в файл и stdout
type Logger struct {
	level Level
	l     *log.Logger
	file  *os.File
}

// New создает логгер. Если path пустой, лог пишется только в stdout.
func New(path string, levelStr string) (*Logger, error) {
	level, err := ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}

	lg := &Logger{level: level}

	if path == "" {
		lg.l = log.New(os.Stdout, "", log.LstdFlags)
		return lg, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	lg.file = file
	lg.l = log.New(multiWriter{file}, "", log.LstdFlags)
	return lg, nil
}

// Close закрывает файл лога
func (lg *Logger) Close() error {
	if lg.file != nil {
		return lg.file.Close()
	}
	return nil
}

// Debug логирует сообщение с уровнем DEBUG
func (lg *Logger) Debug(format string, v ...interface{}) {
	lg.logf(LevelDebug, "DEBUG", format, v...)
}

// Info логирует сообщение с уровнем INFO
func (lg *Logger) Info(format string, v ...interface{}) {
	lg.logf(LevelInfo, "INFO", format, v...)
}

// Warn логирует сообщение с уровнем WARN
func (lg *Logger) Warn(format string, v ...interface{}) {
	lg.logf(LevelWarn, "WARN", format, v...)
}

// Error логирует сообщение с уровнем ERROR
func (lg *Logger) Error(format string, v ...interface{}) {
	lg.logf(LevelError, "ERROR", format, v...)
}

// Fatal логирует сообщение с уровнем FATAL и завершает процесс
func (lg *Logger) Fatal(format string, v ...interface{}) {
	lg.logf(LevelFatal, "FATAL", format, v...)
	os.Exit(1)
}

func (lg *Logger) logf(level Level, tag string, format string, v ...interface{}) {
	if level < lg.level {
		return
	}
	lg.l.Printf("[%s] %s", tag, fmt.Sprintf(format, v...))
}

// multiWriter дублирует записи в файл и stdout
type multiWriter struct {
	file *os.File
}

func (w multiWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	return w.file.Write(p)
}
