package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/spend-dev/spend/internal/log"
)

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "spend.yaml"

// Environment variables that override file settings.
const (
	EnvExpenses = "SPEND_EXPENSES"
	EnvBudgets  = "SPEND_BUDGETS"
	EnvLogLevel = "SPEND_LOG_LEVEL"
)

// Config represents the top-level spend.yaml configuration.
type Config struct {
	Store    StoreConfig    `yaml:"store"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Display  DisplayConfig  `yaml:"display"`
	Log      LogConfig      `yaml:"log"`
}

// StoreConfig locates the two JSON stores.
type StoreConfig struct {
	Expenses string `yaml:"expenses"`
	Budgets  string `yaml:"budgets"`
}

// DefaultsConfig holds values applied when a command omits them.
type DefaultsConfig struct {
	Category   string `yaml:"category"`
	ExportFile string `yaml:"export_file"`
}

// DisplayConfig controls how amounts are printed.
type DisplayConfig struct {
	Currency string `yaml:"currency"`
}

// LogConfig controls diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a Config with the stock file names and defaults.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Expenses: "expenses.json",
			Budgets:  "budgets.json",
		},
		Defaults: DefaultsConfig{
			Category:   "Other",
			ExportFile: "expenses_export.csv",
		},
		Display: DisplayConfig{
			Currency: "$",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Load reads a spend.yaml file from disk on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOptional loads path if it exists and returns the defaults otherwise.
func LoadOptional(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// ResolveStorePaths makes relative store paths relative to baseDir, the
// directory holding the config file.
func (c *Config) ResolveStorePaths(baseDir string) {
	if c.Store.Expenses != "" && !filepath.IsAbs(c.Store.Expenses) {
		c.Store.Expenses = filepath.Join(baseDir, c.Store.Expenses)
	}
	if c.Store.Budgets != "" && !filepath.IsAbs(c.Store.Budgets) {
		c.Store.Budgets = filepath.Join(baseDir, c.Store.Budgets)
	}
}

// ApplyEnv overrides settings from the environment. lookup is os.LookupEnv in
// production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvExpenses); ok && v != "" {
		c.Store.Expenses = v
	}
	if v, ok := lookup(EnvBudgets); ok && v != "" {
		c.Store.Budgets = v
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = v
	}
}

// Validate reports every invalid setting in one error.
func (c *Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Store.Expenses) == "" {
		problems = append(problems, "store.expenses must not be empty")
	}
	if strings.TrimSpace(c.Store.Budgets) == "" {
		problems = append(problems, "store.budgets must not be empty")
	}
	if c.Store.Expenses != "" && c.Store.Expenses == c.Store.Budgets {
		problems = append(problems, "store.expenses and store.budgets must be different files")
	}
	if c.Defaults.Category == "" {
		problems = append(problems, "defaults.category must not be empty")
	}
	if c.Defaults.ExportFile == "" {
		problems = append(problems, "defaults.export_file must not be empty")
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		problems = append(problems, fmt.Sprintf("log.level: %v", err))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}
