package errors

import "errors"

// Config errors indicate the configuration text is malformed or inconsistent.
var (
	// ErrInvalidConfig indicates the configuration could not be decoded or violates the schema.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrMutualExclusivity indicates both 'keys' and 'environments' were declared.
	ErrMutualExclusivity = errors.New("cannot use both 'keys' and 'environments' in the same config")

	// ErrMissingKeys indicates the active key set is empty.
	ErrMissingKeys = errors.New("configuration must contain a 'keys' dictionary with at least one entry")

	// ErrInvalidCipher indicates the cipher value is not recognized.
	ErrInvalidCipher = errors.New("unknown cipher")
)

// Environment errors indicate environment selection or placeholder resolution failed.
var (
	// ErrEnvironmentRequired indicates an environments config was loaded without selecting one.
	ErrEnvironmentRequired = errors.New("config uses 'environments' but no environment was selected")

	// ErrEnvironmentNotFound indicates the selected environment is not declared.
	ErrEnvironmentNotFound = errors.New("environment not found")

	// ErrEnvVarUnresolved indicates a ${NAME} placeholder has no value.
	ErrEnvVarUnresolved = errors.New("environment variable is not set")
)

// Key name errors indicate a key name cannot be used as a generated identifier.
var (
	// ErrInvalidKeyName indicates a key name sanitizes to nothing.
	ErrInvalidKeyName = errors.New("key name cannot be converted to a valid identifier")

	// ErrKeyNameCollision indicates distinct key names sanitize to the same identifier.
	ErrKeyNameCollision = errors.New("key names collide after sanitization")
)

// Output errors indicate the artifact could not be produced or written.
var (
	// ErrOutputDirectoryNotFound indicates the resolved output directory does not exist.
	ErrOutputDirectoryNotFound = errors.New("output directory not found")

	// ErrEncryptionFailure indicates key material could not be drawn or a value could not be sealed.
	ErrEncryptionFailure = errors.New("encryption failed")

	// ErrDecryptFailed indicates combined AEAD bytes are malformed or failed authentication.
	ErrDecryptFailed = errors.New("failed to open sealed value")
)

// File errors indicate inputs supplied by the CLI layer are missing.
var (
	// ErrConfigFileNotFound indicates the configuration file does not exist.
	ErrConfigFileNotFound = errors.New("configuration file not found")

	// ErrDotEnvNotFound indicates the .env file passed with --env-file does not exist.
	ErrDotEnvNotFound = errors.New(".env file not found")

	// ErrNoConfigMatches indicates a config glob matched no files.
	ErrNoConfigMatches = errors.New("no configuration files matched")
)
