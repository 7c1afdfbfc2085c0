package errors

import (
	"fmt"
	"strings"
)

// InvalidConfigError carries the decoder or schema reason behind ErrInvalidConfig.
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return "Invalid configuration: " + e.Reason
}

func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// EnvironmentNotFoundError reports the requested environment and the sorted declared names.
type EnvironmentNotFoundError struct {
	Requested string
	Available []string
}

func (e *EnvironmentNotFoundError) Error() string {
	return fmt.Sprintf("Environment '%s' not found. Available environments: %s.",
		e.Requested, strings.Join(e.Available, ", "))
}

func (e *EnvironmentNotFoundError) Unwrap() error { return ErrEnvironmentNotFound }

// EnvVarUnresolvedError names the first placeholder that could not be resolved.
type EnvVarUnresolvedError struct {
	Name string
}

func (e *EnvVarUnresolvedError) Error() string {
	return fmt.Sprintf("Environment variable '%s' is not set.", e.Name)
}

func (e *EnvVarUnresolvedError) Unwrap() error { return ErrEnvVarUnresolved }

// InvalidCipherError carries the rejected cipher value.
type InvalidCipherError struct {
	Value string
}

func (e *InvalidCipherError) Error() string {
	return fmt.Sprintf("Unknown cipher '%s'. Supported values: 'xor', 'aes-gcm', 'chacha20'.", e.Value)
}

func (e *InvalidCipherError) Unwrap() error { return ErrInvalidCipher }

// InvalidKeyNameError carries the key name that sanitized to an empty identifier.
type InvalidKeyNameError struct {
	Original string
}

func (e *InvalidKeyNameError) Error() string {
	return fmt.Sprintf("Key name '%s' cannot be converted to a valid Go identifier.", e.Original)
}

func (e *InvalidKeyNameError) Unwrap() error { return ErrInvalidKeyName }

// KeyNameCollisionError lists every original name that sanitizes to Sanitized.
type KeyNameCollisionError struct {
	Names     []string
	Sanitized string
}

func (e *KeyNameCollisionError) Error() string {
	quoted := make([]string, len(e.Names))
	for i, n := range e.Names {
		quoted[i] = "'" + n + "'"
	}
	return fmt.Sprintf("Key names [%s] all sanitize to '%s'. Rename one to avoid collision.",
		strings.Join(quoted, ", "), e.Sanitized)
}

func (e *KeyNameCollisionError) Unwrap() error { return ErrKeyNameCollision }

// OutputDirectoryNotFoundError carries the resolved directory that does not exist.
type OutputDirectoryNotFoundError struct {
	Path string
}

func (e *OutputDirectoryNotFoundError) Error() string {
	return fmt.Sprintf("Output directory not found at '%s'.", e.Path)
}

func (e *OutputDirectoryNotFoundError) Unwrap() error { return ErrOutputDirectoryNotFound }

// EncryptionFailureError carries the reason key material or sealing failed.
type EncryptionFailureError struct {
	Reason string
}

func (e *EncryptionFailureError) Error() string {
	return "Encryption failed: " + e.Reason
}

func (e *EncryptionFailureError) Unwrap() error { return ErrEncryptionFailure }

// EnvironmentError labels a failure found while checking one declared environment.
// Unwrap returns the underlying error so errors.As still reaches it.
type EnvironmentError struct {
	Environment string
	Err         error
}

func (e *EnvironmentError) Error() string {
	return fmt.Sprintf("Environment '%s': %v", e.Environment, e.Err)
}

func (e *EnvironmentError) Unwrap() error { return e.Err }
