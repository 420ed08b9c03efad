package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"fileops/internal/config"
	"fileops/internal/dialog"
	"fileops/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a temporary YAML config file
func createTestYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const (
	validYAML = `
dialog:
  show_path: true
  allow_link: false
tasks:
  root_command: [pkexec]
  max_parallel: 2
templates:
  dir: /srv/templates
  include: ["*.md", "*.txt"]
log:
  debug: true
theme:
  name: dark
`
	invalidSyntaxYAML = `
dialog:
  show_path: [true
tasks: {
`
	invalidValueYAML = `
tasks:
  max_parallel: 0
`
	relativeShellYAML = `
tasks:
  shell: sh
`
	unknownThemeYAML = `
theme:
  name: neon
`
)

func TestLoadConfigFile(t *testing.T) {
	t.Run("load valid config", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(createTestYAML(t, validYAML))
		require.NoError(t, err)
		require.NotNil(t, cfg)

		assert.True(t, cfg.Dialog.ShowPath)
		assert.False(t, cfg.Dialog.AllowLink)
		assert.Equal(t, []string{"pkexec"}, cfg.Tasks.RootCommand)
		assert.Equal(t, 2, cfg.Tasks.MaxParallel)
		assert.Equal(t, "/srv/templates", cfg.Templates.Dir)
		assert.Equal(t, []string{"*.md", "*.txt"}, cfg.Templates.Include)
		assert.True(t, cfg.Log.Debug)
		assert.Equal(t, "dark", cfg.Theme.Name)

		// Keys the file leaves out keep their defaults
		assert.True(t, cfg.Dialog.ShowName)
		assert.True(t, cfg.Dialog.AllowCopy)
		assert.Equal(t, "/bin/sh", cfg.Tasks.Shell)
		assert.Equal(t, []string{".*", "*~"}, cfg.Templates.Exclude)
	})

	t.Run("load non-existent file", func(t *testing.T) {
		cfg, err := config.LoadConfigFile(filepath.Join(t.TempDir(), "does_not_exist.yaml"))
		require.NoError(t, err, "a missing file yields the defaults")
		assert.Equal(t, config.New(), cfg)
	})

	t.Run("load file with invalid YAML syntax", func(t *testing.T) {
		_, err := config.LoadConfigFile(createTestYAML(t, invalidSyntaxYAML))
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
		assert.Contains(t, err.Error(), "error parsing config file")
	})

	t.Run("load file with invalid values", func(t *testing.T) {
		for _, content := range []string{invalidValueYAML, relativeShellYAML, unknownThemeYAML} {
			_, err := config.LoadConfigFile(createTestYAML(t, content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid configuration")
			assert.True(t, errors.IsInvalidConfig(err), err.Error())
		}
	})
}

func TestValidate(t *testing.T) {
	var nilCfg *config.Config
	assert.Error(t, nilCfg.Validate())

	cfg := config.New()
	require.NoError(t, cfg.Validate())

	cfg.Tasks.RootCommand = []string{"sudo", ""}
	err := cfg.Validate()
	require.Error(t, err)

	var cfgErr *errors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "tasks.root_command", cfgErr.Param())

	cfg = config.New()
	cfg.Templates.Exclude = append(cfg.Templates.Exclude, "")
	assert.Error(t, cfg.Validate())
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := config.New()
	cfg.Dialog.ShowRootOption = true
	cfg.Tasks.MaxParallel = 8
	require.NoError(t, config.SaveConfig(cfg, path))

	loaded, err := config.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDialogOptions(t *testing.T) {
	assert.Equal(t, dialog.DefaultOptions(), config.New().DialogOptions())

	cfg := config.New()
	cfg.Dialog.AllowCopy = false
	assert.False(t, cfg.DialogOptions().AllowCopy)
}

func TestThemes(t *testing.T) {
	assert.Equal(t, []string{"dark", "default", "light", "monochrome"}, config.ListThemes())
	assert.Equal(t, config.GetTheme("default"), config.GetTheme("no-such-theme"))
	assert.NotEqual(t, config.GetTheme("default"), config.GetTheme("dark"))
}
