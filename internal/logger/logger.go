package logger

import (
	"log"
	"os"
)

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

type Logger struct {
	min level
}

func New(levelName string) *Logger {
	min := levelInfo
	switch levelName {
	case "debug":
		min = levelDebug
	case "warn":
		min = levelWarn
	case "error":
		min = levelError
	}
	return &Logger{min: min}
}

func (l *Logger) Debug(msg string, args ...interface{}) {
	l.print(levelDebug, "[DEBUG] ", msg, args...)
}

func (l *Logger) Info(msg string, args ...interface{}) {
	l.print(levelInfo, "[INFO] ", msg, args...)
}

func (l *Logger) Warn(msg string, args ...interface{}) {
	l.print(levelWarn, "[WARN] ", msg, args...)
}

func (l *Logger) Error(msg string, args ...interface{}) {
	l.print(levelError, "[ERROR] ", msg, args...)
}

func (l *Logger) Fatal(msg string, args ...interface{}) {
	log.Printf("[FATAL] "+msg, args...)
	os.Exit(1)
}

func (l *Logger) print(lv level, prefix, msg string, args ...interface{}) {
	if lv < l.min {
		return
	}
	log.Printf(prefix+msg, args...)
}
