package domain

// Config mirrors ~/.coach/config.yaml.
type Config struct {
	ConfigFormatVersion string            `yaml:"config_format_version"`
	Server              ServerSettings    `yaml:"server"`
	Preferences         Preferences       `yaml:"preferences"`
	Models              []ModelDefinition `yaml:"models"`
	History             HistorySettings   `yaml:"history"`
	Logging             LoggingSettings   `yaml:"logging"`
}

// ServerSettings configures `coach serve`.
type ServerSettings struct {
	Addr        string   `yaml:"addr"`
	Mode        string   `yaml:"mode"`
	CORSOrigins []string `yaml:"cors_origins"`
	Metrics     bool     `yaml:"metrics"`
	MetricsPath string   `yaml:"metrics_path"`
}

// Preferences captures user level toggles.
type Preferences struct {
	DefaultModel string `yaml:"default_model"`
	// TimeoutSeconds bounds a provider call; 0 leaves it to the transport.
	TimeoutSeconds int `yaml:"timeout"`
}

// HistorySettings selects the client-local history medium.
type HistorySettings struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// LoggingSettings configures the zap logger.
type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// History backends.
const (
	HistoryBackendFile   = "file"
	HistoryBackendSQLite = "sqlite"
)
