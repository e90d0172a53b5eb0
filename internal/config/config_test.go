package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Store.Expenses = "data/expenses.json"
	cfg.Display.Currency = "€"

	path := filepath.Join(t.TempDir(), DefaultFile)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Store, got.Store)
	assert.Equal(t, cfg.Defaults, got.Defaults)
	assert.Equal(t, "€", got.Display.Currency)
	assert.Equal(t, cfg.Log.Level, got.Log.Level)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "expenses.json", cfg.Store.Expenses)
	assert.Equal(t, "budgets.json", cfg.Store.Budgets)
	assert.Equal(t, "Other", cfg.Defaults.Category)
	assert.Equal(t, "expenses_export.csv", cfg.Defaults.ExportFile)
	assert.Equal(t, "$", cfg.Display.Currency)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("store:\n  expenses: mine.json\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mine.json", cfg.Store.Expenses)
	assert.Equal(t, "budgets.json", cfg.Store.Budgets)
	assert.Equal(t, "Other", cfg.Defaults.Category)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOptional_Missing(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("store: [unclosed"), 0o644))

	_, err := LoadOptional(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "expenses: expenses.json")
	assert.Contains(t, contents, "budgets: budgets.json")
	assert.Contains(t, contents, "category: Other")
	assert.Contains(t, contents, "export_file: expenses_export.csv")
	assert.Contains(t, contents, "level: warn")
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	cfg.ApplyEnv(envMap(map[string]string{
		EnvExpenses: "/tmp/e.json",
		EnvBudgets:  "",
		EnvLogLevel: "debug",
	}))

	assert.Equal(t, "/tmp/e.json", cfg.Store.Expenses)
	assert.Equal(t, "budgets.json", cfg.Store.Budgets, "empty values are ignored")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"empty expenses path", func(c *Config) { c.Store.Expenses = " " }, "store.expenses must not be empty"},
		{"same file", func(c *Config) { c.Store.Budgets = c.Store.Expenses }, "must be different files"},
		{"empty category", func(c *Config) { c.Defaults.Category = "" }, "defaults.category"},
		{"empty export file", func(c *Config) { c.Defaults.ExportFile = "" }, "defaults.export_file"},
		{"bad level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAll(t *testing.T) {
	cfg := Default()
	cfg.Defaults.Category = ""
	cfg.Log.Level = "chatty"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "defaults.category")
	assert.Contains(t, err.Error(), "log.level")
}

func TestResolveStorePaths(t *testing.T) {
	cfg := Default()
	cfg.Store.Budgets = "/abs/budgets.json"
	cfg.ResolveStorePaths(filepath.Join("home", "me"))

	assert.Equal(t, filepath.Join("home", "me", "expenses.json"), cfg.Store.Expenses)
	assert.Equal(t, "/abs/budgets.json", cfg.Store.Budgets)

	cwd := Default()
	cwd.ResolveStorePaths(".")
	assert.Equal(t, "expenses.json", cwd.Store.Expenses)
}
