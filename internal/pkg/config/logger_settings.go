package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// LoggerSettings holds configuration settings for logging, including log
// level, type and, for the file logger, path and rotation limits.
type LoggerSettings struct {
	LogLevel   string `validate:"required,oneof=info debug error warning"`
	LogType    string `validate:"required,oneof=console file"`
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType == LogTypeFile && s.FilePath == "" {
		return fmt.Errorf("file path is required for file logger")
	}

	return nil
}

// ConsoleLoggerSettings returns the settings the CLI uses when no log file
// is configured.
func ConsoleLoggerSettings(level string) *LoggerSettings {
	return &LoggerSettings{
		LogLevel: level,
		LogType:  LogTypeConsole,
	}
}

// FileLoggerSettings returns settings for a rotated log file with the
// default rotation limits.
func FileLoggerSettings(level, filePath string) *LoggerSettings {
	return &LoggerSettings{
		LogLevel:   level,
		LogType:    LogTypeFile,
		FilePath:   filePath,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}
