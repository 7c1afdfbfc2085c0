// Package sanitize maps configuration key names to Go identifiers.
package sanitize

import (
	"sort"
	"strings"

	kerrors "github.com/PolarWolf314/sskeys/internal/errors"
)

// reserved holds names a generated accessor may not take verbatim: Go
// keywords, predeclared identifiers, init, and the packages imported by
// generated files.
var reserved = map[string]bool{
	// Keywords.
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,

	// Predeclared types.
	"any": true, "bool": true, "byte": true, "comparable": true, "complex64": true,
	"complex128": true, "error": true, "float32": true, "float64": true, "int": true,
	"int8": true, "int16": true, "int32": true, "int64": true, "rune": true,
	"string": true, "uint": true, "uint8": true, "uint16": true, "uint32": true,
	"uint64": true, "uintptr": true,

	// Predeclared constants and zero value.
	"true": true, "false": true, "iota": true, "nil": true,

	// Predeclared functions.
	"append": true, "cap": true, "clear": true, "close": true, "complex": true,
	"copy": true, "delete": true, "imag": true, "len": true, "make": true,
	"max": true, "min": true, "new": true, "panic": true, "print": true,
	"println": true, "real": true, "recover": true,

	// Special function and packages imported by generated code.
	"init": true, "aes": true, "cipher": true, "chacha20poly1305": true,
}

// Sanitize maps every name to a valid, unique Go identifier.
//
// Duplicate names in the input count once. If two or more distinct names
// sanitize to the same identifier, all of them are reported together.
func Sanitize(names []string) (map[string]string, error) {
	result := make(map[string]string, len(names))
	for _, original := range names {
		if _, done := result[original]; done {
			continue
		}
		sanitized, err := Identifier(original)
		if err != nil {
			return nil, err
		}
		result[original] = sanitized
	}

	groups := make(map[string][]string)
	for original, sanitized := range result {
		groups[sanitized] = append(groups[sanitized], original)
	}

	var collisions []string
	for sanitized, originals := range groups {
		if len(originals) > 1 {
			collisions = append(collisions, sanitized)
		}
	}
	if len(collisions) > 0 {
		sort.Strings(collisions)
		first := collisions[0]
		colliders := groups[first]
		sort.Strings(colliders)
		return nil, &kerrors.KeyNameCollisionError{Names: colliders, Sanitized: first}
	}

	return result, nil
}

// Identifier sanitizes a single name.
func Identifier(original string) (string, error) {
	var b strings.Builder
	lastUnderscore := false
	for _, r := range original {
		if !isIdentChar(r) {
			r = '_'
		}
		// Collapse runs of underscores while building.
		if r == '_' {
			if lastUnderscore {
				continue
			}
			lastUnderscore = true
		} else {
			lastUnderscore = false
		}
		b.WriteRune(r)
	}

	sanitized := strings.Trim(b.String(), "_")

	if sanitized != "" && sanitized[0] >= '0' && sanitized[0] <= '9' {
		sanitized = "key_" + sanitized
	}

	if sanitized == "" {
		return "", &kerrors.InvalidKeyNameError{Original: original}
	}

	if reserved[sanitized] {
		sanitized += "_"
	}

	return sanitized, nil
}

func isIdentChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}
