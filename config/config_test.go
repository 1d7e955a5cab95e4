package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ammkrn/pretty-simple/config"
)

// clearEnv unsets the config variables for the duration of a test so
// results do not depend on the caller's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PRETTY_WIDTH", "PRETTY_INDENT"} {
		old, ok := os.LookupEnv(key)
		os.Unsetenv(key)
		t.Cleanup(func() {
			if ok {
				os.Setenv(key, old)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// chdir changes the working directory for the duration of a test and
// restores it afterwards (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Width)
	assert.Equal(t, 2, cfg.Indent)
}

func TestLoadTOMLFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "pretty.toml", "width = 66\nindent = 4\n")

	cfg, err := config.Load(&config.Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 66, cfg.Width)
	assert.Equal(t, 4, cfg.Indent)
}

func TestPartialTOMLKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "pretty.toml", "width = 120\n")

	cfg, err := config.Load(&config.Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 120, cfg.Width)
	assert.Equal(t, 2, cfg.Indent)
}

func TestDefaultPathPickedUpFromWorkingDirectory(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.DefaultPath), []byte("width = 44\n"), 0o644))
	chdir(t, dir)

	cfg, err := config.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 44, cfg.Width)
}

func TestExplicitPathMustExist(t *testing.T) {
	clearEnv(t)
	_, err := config.Load(&config.Options{Path: filepath.Join(t.TempDir(), "missing.toml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestMalformedTOML(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "pretty.toml", "width = [nope\n")

	_, err := config.Load(&config.Options{Path: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestEnvironmentOverridesFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "pretty.toml", "width = 66\nindent = 4\n")
	t.Setenv("PRETTY_WIDTH", "100")

	cfg, err := config.Load(&config.Options{Path: path})
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.Width)
	assert.Equal(t, 4, cfg.Indent)
}

func TestEnvFileFeedsEnvironment(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	path := writeFile(t, "demo.env", "PRETTY_WIDTH=55\n")

	cfg, err := config.Load(&config.Options{EnvFilePath: path})
	require.NoError(t, err)
	assert.Equal(t, 55, cfg.Width)
}

func TestMissingEnvFileIsNotFatal(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())

	cfg, err := config.Load(&config.Options{EnvFilePath: "nope.env"})
	require.NoError(t, err)
	assert.Equal(t, 80, cfg.Width)
}

func TestNegativeWidthRejected(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, "pretty.toml", "width = -1\n")

	_, err := config.Load(&config.Options{Path: path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "width must be non-negative")
}

func TestNegativeIndentRejected(t *testing.T) {
	clearEnv(t)
	chdir(t, t.TempDir())
	t.Setenv("PRETTY_INDENT", "-3")

	_, err := config.Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "indent must be non-negative")
}
