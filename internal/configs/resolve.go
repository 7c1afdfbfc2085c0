package configs

import (
	"regexp"
	"strings"

	kerrors "github.com/PolarWolf314/sskeys/internal/errors"
)

var placeholderPattern = regexp.MustCompile(`\$\{(\w+)\}`)

// resolveKeys substitutes placeholders in every value. Keys are visited in
// sorted order and each value is scanned left to right, so the first
// unresolved name reported is the same on every run.
func resolveKeys(keys map[string]string, lookup LookupFunc) (map[string]string, error) {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}

	resolved := make(map[string]string, len(keys))
	for _, name := range keyNames(keys) {
		value, err := resolvePlaceholders(keys[name], lookup)
		if err != nil {
			return nil, err
		}
		resolved[name] = value
	}
	return resolved, nil
}

// resolvePlaceholders makes a single pass over value. Substituted text is
// not scanned again.
func resolvePlaceholders(value string, lookup LookupFunc) (string, error) {
	matches := placeholderPattern.FindAllStringSubmatchIndex(value, -1)
	if len(matches) == 0 {
		return value, nil
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		name := value[m[2]:m[3]]
		replacement, ok := lookup(name)
		if !ok {
			return "", &kerrors.EnvVarUnresolvedError{Name: name}
		}
		b.WriteString(value[last:m[0]])
		b.WriteString(replacement)
		last = m[1]
	}
	b.WriteString(value[last:])

	return b.String(), nil
}
