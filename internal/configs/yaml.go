package configs

import (
	"errors"
	"io"
	"strings"

	kerrors "github.com/PolarWolf314/sskeys/internal/errors"

	"gopkg.in/yaml.v3"
)

// decodeYAML decodes text strictly: unknown fields and type mismatches fail.
func decodeYAML(text string) (*RawConfig, error) {
	dec := yaml.NewDecoder(strings.NewReader(text))
	dec.KnownFields(true)

	raw := &RawConfig{}
	if err := dec.Decode(raw); err != nil {
		if errors.Is(err, io.EOF) {
			// Empty document.
			return raw, nil
		}
		return nil, &kerrors.InvalidConfigError{Reason: yamlReason(err)}
	}
	return raw, nil
}

func decodeYAMLEnvironments(text string) (map[string]map[string]string, error) {
	var probe struct {
		Environments map[string]map[string]string `yaml:"environments"`
	}
	if err := yaml.Unmarshal([]byte(text), &probe); err != nil {
		return nil, &kerrors.InvalidConfigError{Reason: yamlReason(err)}
	}
	return probe.Environments, nil
}

func yamlReason(err error) string {
	var typeErr *yaml.TypeError
	if errors.As(err, &typeErr) {
		reasons := make([]string, len(typeErr.Errors))
		for i, e := range typeErr.Errors {
			reasons[i] = strings.TrimPrefix(e, "yaml: ")
		}
		return strings.Join(reasons, "; ")
	}
	return strings.TrimPrefix(err.Error(), "yaml: ")
}
