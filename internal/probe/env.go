package probe

import "os"

// Env looks up named process-environment values.
type Env interface {
	Lookup(name string) (string, bool)
}

// OSEnv reads the real process environment.
type OSEnv struct{}

// Lookup returns the variable and whether it is set. Set-but-empty counts as set.
func (OSEnv) Lookup(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapEnv is a fixed environment, used by tests and callers that want isolation.
type MapEnv map[string]string

// Lookup returns the entry for name.
func (m MapEnv) Lookup(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
