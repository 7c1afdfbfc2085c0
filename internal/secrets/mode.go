package secrets

import (
	kerrors "github.com/PolarWolf314/sskeys/internal/errors"
)

// Mode selects how values are embedded in the generated source.
type Mode string

const (
	ModeXOR      Mode = "xor"
	ModeAESGCM   Mode = "aes-gcm"
	ModeChaCha20 Mode = "chacha20"
)

// Modes lists the recognized cipher modes.
var Modes = []Mode{ModeXOR, ModeAESGCM, ModeChaCha20}

// ParseMode converts a config value to a Mode. An empty value selects xor.
func ParseMode(value string) (Mode, error) {
	if value == "" {
		return ModeXOR, nil
	}
	for _, m := range Modes {
		if string(m) == value {
			return m, nil
		}
	}
	return "", &kerrors.InvalidCipherError{Value: value}
}

// Label returns the human readable algorithm name.
func (m Mode) Label() string {
	switch m {
	case ModeAESGCM:
		return "AES-256-GCM"
	case ModeChaCha20:
		return "ChaCha20-Poly1305"
	default:
		return "XOR"
	}
}

// IsAEAD reports whether the mode seals values with an authenticated cipher.
func (m Mode) IsAEAD() bool {
	return m == ModeAESGCM || m == ModeChaCha20
}
