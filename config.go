package regrep

import "fmt"

// Config controls the optional literal prefilter used by Pattern.Test and
// Pattern.Run to skip input positions that cannot possibly start a match,
// mirroring meta.Config's role in the teacher's engine at the much
// smaller scale this engine needs (one prefilter, not a strategy choice
// between DFA/NFA/Aho-Corasick).
type Config struct {
	// EnablePrefilter enables literal-based prefiltering when the pattern
	// has a qualifying required prefix or pure-literal alternation.
	// Default: true.
	EnablePrefilter bool

	// MinPrefixLen is the minimum literal length for the prefilter to be
	// used; shorter literals see too many false-positive candidates to be
	// worth the Aho-Corasick overhead. Default: 1.
	MinPrefixLen int
}

// DefaultConfig returns a Config with the prefilter enabled and no
// minimum-length restriction beyond a single byte.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		MinPrefixLen:    1,
	}
}

// Validate reports whether c's fields are in range.
func (c Config) Validate() error {
	if c.EnablePrefilter && (c.MinPrefixLen < 1 || c.MinPrefixLen > 64) {
		return &ConfigError{Field: "MinPrefixLen", Message: "must be between 1 and 64"}
	}
	return nil
}

// ConfigError represents an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("regrep: invalid config: %s: %s", e.Field, e.Message)
}
