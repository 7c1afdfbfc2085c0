// Package configs loads the sskeys configuration.
//
// A configuration is YAML (sskeys.yml) or TOML (sskeys.toml) text with
// this schema:
//
//	keys:          map of key name -> value      (flat mode)
//	environments:  map of env name -> key map     (multi-environment mode)
//	output:        output directory, relative to the caller's base directory
//	cipher:        "xor" (default), "aes-gcm" or "chacha20"
//	package:       Go package name of the generated file (default "secretkeys")
//
// Exactly one of keys and environments may be non-empty. Decoding is strict:
// unknown fields and type mismatches fail with ErrInvalidConfig and the
// decoder's line and field detail.
//
// # Environments
//
// In multi-environment mode the caller selects one environment by name.
// Every declared environment's key names are sanitized at load time, so a
// collision in an unselected environment still fails. In flat mode an
// environment argument is ignored, which keeps automation that always
// passes --environment working.
//
// # Placeholders
//
// Values may reference ${NAME}. Names are resolved through the injected
// LookupFunc (usually os.LookupEnv, optionally preceded by a .env file).
// The first unresolved name, in sorted key order and left to right within a
// value, fails the load.
//
// The package reads no files and no process state; the caller supplies the
// text and the lookup.
package configs
