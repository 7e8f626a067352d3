package subst

import (
	"errors"
	"os"
	"regexp"
	"sync"
)

// DefaultDelimiter is the key path segment separator used unless configured
// otherwise.
const DefaultDelimiter = "."

// Config contains all configuration options for the subst engine
type Config struct {
	// Delimiter separates the segments of a placeholder key path.
	// Empty means DefaultDelimiter.
	Delimiter string
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Delimiter: DefaultDelimiter,
		LogLevel:  "info",
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// SUBST_DELIMITER
	if val := os.Getenv("SUBST_DELIMITER"); val != "" {
		if validateDelimiter(val) == nil {
			config.Delimiter = val
		}
	}

	// SUBST_LOG_LEVEL
	if val := os.Getenv("SUBST_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	return config
}

// NewConfigWithDefaults creates a new configuration with defaults applied to unset fields
func NewConfigWithDefaults(overrides *Config) *Config {
	defaults := DefaultConfig()

	if overrides == nil {
		return defaults
	}

	// Create a copy of the overrides
	config := *overrides

	// Apply defaults for zero values
	if config.Delimiter == "" {
		config.Delimiter = defaults.Delimiter
	}

	if config.LogLevel == "" {
		config.LogLevel = defaults.LogLevel
	}

	return &config
}

// wordCharRegex matches the characters the placeholder grammar treats as part
// of an identifier. A delimiter overlapping this class would make key paths
// ambiguous, so such delimiters are rejected.
var wordCharRegex = regexp.MustCompile(`\w`)

func validateDelimiter(d string) error {
	if d == "" {
		return errors.New("delimiter cannot be empty")
	}
	if wordCharRegex.MatchString(d) {
		return errors.New("delimiter cannot contain word characters: " + d)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Delimiter != "" {
		if err := validateDelimiter(c.Delimiter); err != nil {
			return err
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if c.LogLevel != "" && !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// Delimiter returns the process-wide key path delimiter.
func Delimiter() string {
	config := GetGlobalConfig()
	if config.Delimiter == "" {
		return DefaultDelimiter
	}
	return config.Delimiter
}

// SetDelimiter sets the process-wide key path delimiter used by the
// package-level Render and Resolve functions. It affects all subsequent
// calls until changed back; engines created with NewWithConfig are not
// affected. Concurrent renders racing a SetDelimiter call see either the
// old or the new delimiter with no further guarantee.
func SetDelimiter(d string) error {
	if err := validateDelimiter(d); err != nil {
		return err
	}

	globalConfigMutex.Lock()
	defer globalConfigMutex.Unlock()

	if globalConfig == nil {
		globalConfig = DefaultConfig()
	}
	globalConfig.Delimiter = d
	return nil
}
