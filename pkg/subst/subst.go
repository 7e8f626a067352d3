package subst

import (
	"strings"
)

// Data represents the data context for rendering templates.
// It is an alias for map[string]interface{} and can contain nested maps,
// slices, and any value types:
//
//	data := Data{
//	    "name": "Ada",
//	    "address": Data{
//	        "city": "London",
//	    },
//	    "tags": []string{"alpha", "beta"},
//	}
type Data map[string]interface{}

// Engine renders templates against a fixed configuration.
// Use New() to create a new engine instance.
type Engine struct {
	config   *Config
	patterns *patternCache
}

// New creates a new engine with the process-wide configuration as of the
// time of the call.
func New() *Engine {
	return &Engine{
		config:   GetGlobalConfig(),
		patterns: defaultPatterns,
	}
}

// NewWithConfig creates a new engine with custom configuration. The engine's
// delimiter is fixed at construction, making it safe to share across
// goroutines regardless of later SetDelimiter calls.
func NewWithConfig(config *Config) *Engine {
	return &Engine{
		config:   NewConfigWithDefaults(config),
		patterns: newPatternCache(),
	}
}

// Render substitutes every placeholder in template with the value its key
// path resolves to against data, using the engine's delimiter.
func (e *Engine) Render(data interface{}, template string) (string, error) {
	return renderTemplate(data, template, e.delimiter(), e.patterns)
}

// Resolve runs the engine's path resolver directly, without token scanning.
func (e *Engine) Resolve(root interface{}, path string, fallback interface{}) (interface{}, error) {
	return resolvePath(root, path, fallback, e.delimiter())
}

func (e *Engine) delimiter() string {
	if e.config == nil || e.config.Delimiter == "" {
		return Delimiter()
	}
	return e.config.Delimiter
}

// Render substitutes every placeholder of the form {key.path} in template
// with the value the path resolves to against data. Placeholders whose path
// cannot be found are left in the output verbatim. A path that tries to
// drill into a non-traversable value fails the whole call with a
// *TraversalError.
//
// The key path delimiter is the process-wide setting, read at call time.
// Replacement is a single pass: substituted text is never re-scanned for
// further placeholders.
func Render(data interface{}, template string) (string, error) {
	return renderTemplate(data, template, Delimiter(), defaultPatterns)
}

func renderTemplate(data interface{}, template string, delimiter string, patterns *patternCache) (string, error) {
	// Empty templates render to themselves without consulting the resolver
	if template == "" {
		return template, nil
	}

	logger := GetLogger()
	if logger.IsDebugMode() {
		logger.WithField("template_length", len(template)).Debug("Starting render")
	}

	re := patterns.tokenPattern(delimiter)
	matches := re.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template, nil
	}

	var result strings.Builder
	lastEnd := 0

	for _, match := range matches {
		// Text before this token passes through untouched
		result.WriteString(template[lastEnd:match[0]])

		token := template[match[0]:match[1]]
		path := template[match[2]:match[3]]

		if logger.IsDebugMode() {
			logger.WithFields(Fields{
				"token": token,
				"path":  path,
			}).Debug("Found token")
		}

		// The original token text, braces included, is the fallback
		value, err := resolvePath(data, path, token, delimiter)
		if err != nil {
			return "", err
		}
		result.WriteString(FormatValue(value))

		lastEnd = match[1]
	}

	// Any remaining text after the last token
	result.WriteString(template[lastEnd:])

	return result.String(), nil
}
