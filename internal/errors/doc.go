// Package errors provides typed error values for sskeys.
//
// Every failure of the generation pipeline has a sentinel error so callers
// can branch with errors.Is() instead of string matching. Failures that need
// context for an actionable message (the offending key name, the list of
// declared environments, ...) are returned as struct types that unwrap to
// their sentinel, so both styles work:
//
//	if errors.Is(err, kerrors.ErrEnvironmentNotFound) {
//	    // category check
//	}
//
//	var notFound *kerrors.EnvironmentNotFoundError
//	if errors.As(err, &notFound) {
//	    fmt.Println(notFound.Available)
//	}
//
// # Error Categories
//
//   - Config errors: the input text is malformed or inconsistent
//     (ErrInvalidConfig, ErrMutualExclusivity, ErrMissingKeys, ErrInvalidCipher)
//   - Environment errors: environment selection or placeholder resolution
//     failed (ErrEnvironmentRequired, ErrEnvironmentNotFound, ErrEnvVarUnresolved)
//   - Key name errors: a key cannot become a Go identifier
//     (ErrInvalidKeyName, ErrKeyNameCollision)
//   - Output errors: the artifact cannot be produced or written
//     (ErrOutputDirectoryNotFound, ErrEncryptionFailure)
//   - File errors: collaborator inputs are missing
//     (ErrConfigFileNotFound, ErrDotEnvNotFound, ErrNoConfigMatches)
package errors
