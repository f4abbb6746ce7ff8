package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the weave tool.
type Config struct {
	Index   IndexConfig   `yaml:"index"`
	Lexer   LexerConfig   `yaml:"lexer"`
	Logging LoggingConfig `yaml:"logging"`
}

// IndexConfig holds file selection configuration.
type IndexConfig struct {
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// LexerConfig holds classification configuration.
type LexerConfig struct {
	// Language forces a language for every file; "auto" resolves from the
	// in-file directive or the file extension.
	Language string `yaml:"language"`
	// Fallback controls what happens to files of unknown language: "code"
	// treats the whole file as one code block, "skip" ignores the file.
	Fallback string `yaml:"fallback"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Index: IndexConfig{
			Includes: []string{
				"**/*.c", "**/*.cc", "**/*.cpp", "**/*.h", "**/*.hh", "**/*.hpp",
				"**/*.cs", "**/*.css", "**/*.go", "**/*.html", "**/*.htm",
				"**/*.js", "**/*.mjs", "**/*.cjs", "**/*.json", "**/*.py",
				"**/*.rs", "**/*.sql", "**/*.swift", "**/*.toml", "**/*.ts",
				"**/*.mts", "**/*.tsx", "**/*.v", "**/*.yaml", "**/*.yml",
				"**/*.cchtml", "**/*.md",
			},
			Excludes: []string{
				"**/node_modules/**", "**/vendor/**", "**/.git/**",
				"**/dist/**", "**/build/**", "**/__pycache__/**",
				"**/.weave/**", "**/*.min.js",
			},
		},
		Lexer: LexerConfig{
			Language: "auto",
			Fallback: "code",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file, falling back to defaults when
// the file does not exist.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFromDir loads configuration from a directory (looks for weave.yaml,
// then .weave/config.yaml).
func LoadFromDir(dir string) (*Config, error) {
	path := filepath.Join(dir, "weave.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	path = filepath.Join(dir, ".weave", "config.yaml")
	if _, err := os.Stat(path); err == nil {
		return Load(path)
	}

	return DefaultConfig(), nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// IndexDBPath returns the path to the coverage index database.
func IndexDBPath(dir string) string {
	return filepath.Join(dir, ".weave", "index.db")
}

// EnsureWeaveDir ensures the .weave directory exists.
func EnsureWeaveDir(dir string) error {
	return os.MkdirAll(filepath.Join(dir, ".weave"), 0755)
}
