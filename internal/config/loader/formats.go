package loader

import (
	"encoding/json"
	"errors"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported formats.
var (
	TOML = Format{
		Name:      "toml",
		Unmarshal: toml.Unmarshal,
		position: func(err error) (int, int) {
			var de *toml.DecodeError
			if errors.As(err, &de) {
				return de.Position()
			}
			return 0, 0
		},
	}

	YAML = Format{
		Name:      "yaml",
		Unmarshal: yaml.Unmarshal,
	}

	JSON = Format{
		Name:      "json",
		Unmarshal: json.Unmarshal,
	}
)

// NewTOMLLoader creates a TOML loader for path.
func NewTOMLLoader(path string) *FormatLoader {
	return NewFormatLoader(DefaultFS(), path, TOML)
}

// NewYAMLLoader creates a YAML loader for path.
func NewYAMLLoader(path string) *FormatLoader {
	return NewFormatLoader(DefaultFS(), path, YAML)
}

// NewJSONLoader creates a JSON loader for path.
func NewJSONLoader(path string) *FormatLoader {
	return NewFormatLoader(DefaultFS(), path, JSON)
}
