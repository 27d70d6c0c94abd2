package assets

import (
	_ "embed"
)

// DefaultConfigYAML contains the embedded default configuration.
//
//go:embed defaults/config.yaml
var DefaultConfigYAML []byte

// IndexHTML is the single-page client served at GET /.
//
//go:embed web/index.html
var IndexHTML []byte
