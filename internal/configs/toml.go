package configs

import (
	"strings"

	kerrors "github.com/PolarWolf314/sskeys/internal/errors"

	"github.com/BurntSushi/toml"
)

// decodeTOML decodes text strictly: keys the schema does not know fail.
func decodeTOML(text string) (*RawConfig, error) {
	raw := &RawConfig{}
	md, err := toml.Decode(text, raw)
	if err != nil {
		return nil, &kerrors.InvalidConfigError{Reason: tomlReason(err)}
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		fields := make([]string, len(undecoded))
		for i, key := range undecoded {
			fields[i] = "'" + key.String() + "'"
		}
		return nil, &kerrors.InvalidConfigError{
			Reason: "unknown field(s) " + strings.Join(fields, ", "),
		}
	}

	return raw, nil
}

func decodeTOMLEnvironments(text string) (map[string]map[string]string, error) {
	var probe struct {
		Environments map[string]map[string]string `toml:"environments"`
	}
	if _, err := toml.Decode(text, &probe); err != nil {
		return nil, &kerrors.InvalidConfigError{Reason: tomlReason(err)}
	}
	return probe.Environments, nil
}

func tomlReason(err error) string {
	return strings.TrimPrefix(err.Error(), "toml: ")
}
