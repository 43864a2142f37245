// Package logger is the arena's structured logging facade over log/slog.
package logger

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// loggingFile wraps Config for YAML parsing. Pointers distinguish an
// explicit false from an omitted key.
type loggingFile struct {
	Logging struct {
		Level          string `yaml:"level"`
		ConsoleEnabled *bool  `yaml:"console_enabled"`
		ConsoleFormat  string `yaml:"console_format"`
		FileEnabled    *bool  `yaml:"file_enabled"`
		FilePath       string `yaml:"file_path"`
		FileFormat     string `yaml:"file_format"`
		FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
		FileMaxBackups int    `yaml:"file_max_backups"`
		FileMaxAgeDays int    `yaml:"file_max_age_days"`
	} `yaml:"logging"`
}

// DefaultConfig returns console-only WARNING logging, so an interactive
// arena session is not drowned in duel chatter.
func DefaultConfig() Config {
	return Config{
		Level:          "WARNING",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/arena.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads logging configuration from a YAML file
// and applies environment variable overrides
func LoadConfig(configPath string) (Config, error) {
	config := DefaultConfig()

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err == nil {
			var file loggingFile
			if err := yaml.Unmarshal(data, &file); err == nil {
				l := file.Logging
				if l.Level != "" {
					config.Level = l.Level
				}
				if l.ConsoleEnabled != nil {
					config.ConsoleEnabled = *l.ConsoleEnabled
				}
				if l.ConsoleFormat != "" {
					config.ConsoleFormat = l.ConsoleFormat
				}
				if l.FileEnabled != nil {
					config.FileEnabled = *l.FileEnabled
				}
				if l.FilePath != "" {
					config.FilePath = l.FilePath
				}
				if l.FileFormat != "" {
					config.FileFormat = l.FileFormat
				}
				if l.FileMaxSizeMB > 0 {
					config.FileMaxSizeMB = l.FileMaxSizeMB
				}
				if l.FileMaxBackups > 0 {
					config.FileMaxBackups = l.FileMaxBackups
				}
				if l.FileMaxAgeDays > 0 {
					config.FileMaxAgeDays = l.FileMaxAgeDays
				}
			}
		}
		// Silently use defaults if file doesn't exist or can't be parsed
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.Level = logLevel
	}

	if consoleFormat := os.Getenv("LOG_CONSOLE_FORMAT"); consoleFormat != "" {
		config.ConsoleFormat = consoleFormat
	}

	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}

	if filePath := os.Getenv("LOG_FILE_PATH"); filePath != "" {
		config.FilePath = filePath
	}

	return config, nil
}
