package config

import (
	"fmt"
	"os"
	"path/filepath"

	"fileops/internal/dialog"
	"fileops/internal/errors"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It holds the dialog toggles, the task executor settings, where templates
// are looked up and how logging is set up.
type Config struct {
	Dialog struct {
		ShowName       bool `yaml:"show_name"`        // Show the name field
		ShowExtension  bool `yaml:"show_extension"`   // Show the extension field
		ShowParent     bool `yaml:"show_parent"`      // Show the parent directory field
		ShowPath       bool `yaml:"show_path"`        // Show the full path field
		ShowTarget     bool `yaml:"show_target"`      // Show a symlink's target
		ShowTemplate   bool `yaml:"show_template"`    // Offer templates for new files
		ShowRootOption bool `yaml:"show_root_option"` // Offer "as root"
		AllowCopy      bool `yaml:"allow_copy"`       // Offer copy operations
		AllowLink      bool `yaml:"allow_link"`       // Offer link operations
		ConfirmMkdir   bool `yaml:"confirm_mkdir"`    // Ask before creating a missing parent
	} `yaml:"dialog"`
	Tasks struct {
		Shell       string   `yaml:"shell"`        // Shell that runs command lines
		RootCommand []string `yaml:"root_command"` // Prefix for "as root" tasks, e.g. [sudo, -n]
		MaxParallel int      `yaml:"max_parallel"` // Tasks allowed to run at once
	} `yaml:"tasks"`
	Templates struct {
		Dir     string   `yaml:"dir"`     // Directory holding templates
		Include []string `yaml:"include"` // Glob patterns a template must match
		Exclude []string `yaml:"exclude"` // Glob patterns that hide a template
	} `yaml:"templates"`
	Log struct {
		Debug bool `yaml:"debug"` // Enable debug output
		JSON  bool `yaml:"json"`  // Log as JSON lines
	} `yaml:"log"`
	Theme struct {
		Name string `yaml:"name"` // Theme name (default, dark, light, monochrome)
	} `yaml:"theme"`
}

// DefaultPath returns ~/.config/fileops/config.yaml
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fileops", "config.yaml"), nil
}

// LoadConfig loads configuration from the default location
// (~/.config/fileops/config.yaml).
func LoadConfig() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadConfigFile(path)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Decoding over the defaults keeps every key the file leaves out
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.NewConfigError("error parsing config file", path, errors.InvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	opts := dialog.DefaultOptions()
	cfg.Dialog.ShowName = opts.ShowName
	cfg.Dialog.ShowExtension = opts.ShowExtension
	cfg.Dialog.ShowParent = opts.ShowParent
	cfg.Dialog.ShowPath = opts.ShowPath
	cfg.Dialog.ShowTarget = opts.ShowTarget
	cfg.Dialog.ShowTemplate = opts.ShowTemplate
	cfg.Dialog.ShowRootOption = opts.ShowRootOption
	cfg.Dialog.AllowCopy = opts.AllowCopy
	cfg.Dialog.AllowLink = opts.AllowLink
	cfg.Dialog.ConfirmMkdir = opts.ConfirmMkdir

	cfg.Tasks.Shell = "/bin/sh"
	cfg.Tasks.RootCommand = []string{"sudo", "-n", "--"}
	cfg.Tasks.MaxParallel = 4

	cfg.Templates.Dir = defaultTemplatesDir()
	cfg.Templates.Include = []string{}
	cfg.Templates.Exclude = []string{".*", "*~"}

	cfg.Theme.Name = "default"

	return cfg
}

func defaultTemplatesDir() string {
	if dir := os.Getenv("XDG_TEMPLATES_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "Templates")
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.NewConfigError("nil config", "", errors.InvalidConfig, nil)
	}

	if c.Tasks.Shell == "" {
		return errors.NewConfigError("shell is required", "tasks.shell", errors.InvalidConfig, nil)
	}
	if !filepath.IsAbs(c.Tasks.Shell) {
		return errors.NewConfigError("shell must be an absolute path", "tasks.shell", errors.InvalidConfig, nil)
	}
	if c.Tasks.MaxParallel < 1 {
		return errors.NewConfigError("max_parallel must be >= 1", "tasks.max_parallel", errors.InvalidConfig, nil)
	}
	for i, word := range c.Tasks.RootCommand {
		if word == "" {
			return errors.NewConfigError(fmt.Sprintf("root_command word %d is empty", i), "tasks.root_command", errors.InvalidConfig, nil)
		}
	}

	for _, p := range append(append([]string{}, c.Templates.Include...), c.Templates.Exclude...) {
		if p == "" {
			return errors.NewConfigError("empty template pattern", "templates", errors.InvalidConfig, nil)
		}
	}

	if _, ok := themes[c.Theme.Name]; !ok && c.Theme.Name != "" {
		return errors.NewConfigError(fmt.Sprintf("unknown theme: %s", c.Theme.Name), "theme.name", errors.InvalidConfig, nil)
	}

	return nil
}

// DialogOptions converts the dialog section into projector options
func (c *Config) DialogOptions() dialog.Options {
	return dialog.Options{
		ShowName:       c.Dialog.ShowName,
		ShowExtension:  c.Dialog.ShowExtension,
		ShowParent:     c.Dialog.ShowParent,
		ShowPath:       c.Dialog.ShowPath,
		ShowTarget:     c.Dialog.ShowTarget,
		ShowTemplate:   c.Dialog.ShowTemplate,
		ShowRootOption: c.Dialog.ShowRootOption,
		AllowCopy:      c.Dialog.AllowCopy,
		AllowLink:      c.Dialog.AllowLink,
		ConfirmMkdir:   c.Dialog.ConfirmMkdir,
	}
}

// New creates a new configuration instance with default values.
func New() *Config {
	return defaultConfig()
}
