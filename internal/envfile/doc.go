// Package envfile loads .env files into a placeholder lookup.
//
// Values from a file are never exported into the process environment. The
// CLI layers them over os.LookupEnv with Chain instead:
//
//	vars, err := envfile.Load(".env")
//	lookup := envfile.Chain(envfile.MapLookup(vars), os.LookupEnv)
package envfile
