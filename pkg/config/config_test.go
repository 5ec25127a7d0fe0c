package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
)

func TestParseEnvOverrides(t *testing.T) {
	is := is.New(t)
	td := t.TempDir()
	is.NoErr(os.Setenv("RADIOCARBON_NAME", "Test Workspace"))
	is.NoErr(os.Setenv("RADIOCARBON_DATA_PATH", td))
	is.NoErr(os.Setenv("RADIOCARBON_DB_DRIVER", "postgres"))
	t.Cleanup(func() {
		is.NoErr(os.Unsetenv("RADIOCARBON_NAME"))
		is.NoErr(os.Unsetenv("RADIOCARBON_DATA_PATH"))
		is.NoErr(os.Unsetenv("RADIOCARBON_DB_DRIVER"))
	})
	cfg := DefaultConfig()
	is.NoErr(cfg.ParseEnv())
	is.Equal(cfg.Name, "Test Workspace")
	is.Equal(cfg.DataPath, td)
	is.Equal(cfg.DB.Driver, "postgres")
}

func TestWriteThenParseFile(t *testing.T) {
	is := is.New(t)
	cfg := DefaultConfig()
	cfg.DataPath = t.TempDir()
	cfg.Name = "Round Trip"
	is.NoErr(cfg.WriteConfig())

	got := DefaultConfig()
	got.DataPath = cfg.DataPath
	is.NoErr(got.ParseFile())
	is.Equal(got.Name, "Round Trip")
	is.Equal(len(got.Auth.Credentials), len(cfg.Auth.Credentials))
}

func TestValidatePaths(t *testing.T) {
	is := is.New(t)
	cfg := &Config{
		DataPath: t.TempDir(),
		DB:       DBConfig{Driver: "sqlite", DataSource: "app.db"},
		Auth:     AuthConfig{KeyPath: filepath.Join("auth", "key")},
	}
	is.NoErr(cfg.Validate())
	is.True(filepath.IsAbs(cfg.DB.DataSource))
	is.True(filepath.IsAbs(cfg.Auth.KeyPath))
}

func TestValidateNil(t *testing.T) {
	var cfg *Config
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() on nil config => nil error, want error")
	}
}

func TestFromContextFallback(t *testing.T) {
	is := is.New(t)
	cfg := FromContext(testContext(t))
	is.True(cfg != nil)
}
