package configs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is the syntax of the configuration text.
type Format int

const (
	FormatYAML Format = iota
	FormatTOML
)

func (f Format) String() string {
	if f == FormatTOML {
		return "toml"
	}
	return "yaml"
}

// FormatFromPath picks the format from a file extension. Anything other than
// .toml is read as YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}
	return FormatYAML
}

// ParseFormat parses a --format flag value. "" falls back to FormatFromPath(path).
func ParseFormat(value, path string) (Format, error) {
	switch strings.ToLower(value) {
	case "":
		return FormatFromPath(path), nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	default:
		return FormatYAML, fmt.Errorf("unknown config format '%s': use yaml or toml", value)
	}
}

func decode(text string, format Format) (*RawConfig, error) {
	if format == FormatTOML {
		return decodeTOML(text)
	}
	return decodeYAML(text)
}

func decodeEnvironments(text string, format Format) (map[string]map[string]string, error) {
	if format == FormatTOML {
		return decodeTOMLEnvironments(text)
	}
	return decodeYAMLEnvironments(text)
}
