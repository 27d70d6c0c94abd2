package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/doeshing/coach-go/assets"
	"github.com/doeshing/coach-go/internal/domain"
	"github.com/doeshing/coach-go/internal/pkg/filesystem"
	"github.com/doeshing/coach-go/internal/ports"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "COACH_CONFIG"

// FileLoader loads YAML configuration from ~/.coach/config.yaml (overridable via COACH_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// Load implements ports.ConfigProvider. A missing file is created from the
// embedded defaults.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, err
		}
		if err := writeDefault(path); err != nil {
			return domain.Config{}, err
		}
		data = assets.DefaultConfigYAML
	}

	cfg, err := Parse(data)
	if err != nil {
		return domain.Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Path resolves the config file location.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandHome(l.overridePath)
	}
	if custom := os.Getenv(EnvConfigPath); custom != "" {
		return filesystem.ExpandHome(custom)
	}
	return filepath.Join(filesystem.AppDir(), "config.yaml")
}

// Parse decodes YAML and fills unset fields.
func Parse(data []byte) (domain.Config, error) {
	var cfg domain.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.Config{}, err
	}
	return hydrateDefaults(cfg), nil
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() domain.Config {
	cfg, err := Parse(assets.DefaultConfigYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded default config: %v", err))
	}
	return cfg
}

// Save writes cfg back as YAML.
func Save(path string, cfg domain.Config) error {
	raw, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return filesystem.WriteFileAtomic(path, raw, domain.SecureFilePermissions)
}

// Save writes cfg to the loader's path.
func (l *FileLoader) Save(cfg domain.Config) error {
	return Save(l.Path(), cfg)
}

// Backup copies the current file next to itself with a .bak suffix.
func (l *FileLoader) Backup() (string, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	backup := path + ".bak"
	if err := filesystem.WriteFileAtomic(backup, data, domain.SecureFilePermissions); err != nil {
		return "", err
	}
	return backup, nil
}

// Reset overwrites the file with the embedded defaults.
func (l *FileLoader) Reset() (domain.Config, error) {
	if err := filesystem.WriteFileAtomic(l.Path(), assets.DefaultConfigYAML, domain.SecureFilePermissions); err != nil {
		return domain.Config{}, err
	}
	return DefaultConfig(), nil
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions); err != nil {
		return err
	}
	return os.WriteFile(path, assets.DefaultConfigYAML, domain.SecureFilePermissions)
}

func hydrateDefaults(cfg domain.Config) domain.Config {
	if cfg.ConfigFormatVersion == "" {
		cfg.ConfigFormatVersion = "1"
	}
	if len(cfg.Models) == 0 {
		cfg.Models = []domain.ModelDefinition{{
			Name:       domain.DefaultModelID,
			Provider:   string(domain.ProviderKindGemini),
			Endpoint:   "https://generativelanguage.googleapis.com/v1beta",
			AuthEnvVar: "GEMINI_API_KEY",
			ModelID:    domain.DefaultModelID,
		}}
	}
	if cfg.Preferences.DefaultModel == "" {
		cfg.Preferences.DefaultModel = cfg.Models[0].Name
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = cfg.GetServerAddr()
	}
	if cfg.Server.MetricsPath == "" {
		cfg.Server.MetricsPath = cfg.GetMetricsPath()
	}
	cfg.History.Backend = cfg.GetHistoryBackend()
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
	return cfg
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
