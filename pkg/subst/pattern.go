package subst

import (
	"regexp"
	"sync"
)

// patternCache holds compiled placeholder patterns keyed by delimiter.
// The set of delimiters a process uses is tiny, so entries are never evicted.
type patternCache struct {
	mu       sync.RWMutex
	patterns map[string]*regexp.Regexp
}

var defaultPatterns = newPatternCache()

func newPatternCache() *patternCache {
	return &patternCache{
		patterns: make(map[string]*regexp.Regexp),
	}
}

// tokenPattern returns the placeholder pattern for the given delimiter,
// compiling and caching it on first use.
func (pc *patternCache) tokenPattern(delimiter string) *regexp.Regexp {
	pc.mu.RLock()
	re, ok := pc.patterns[delimiter]
	pc.mu.RUnlock()
	if ok {
		return re
	}

	pc.mu.Lock()
	defer pc.mu.Unlock()

	// Another goroutine may have compiled it while we waited for the lock
	if re, ok := pc.patterns[delimiter]; ok {
		return re
	}

	re = regexp.MustCompile(buildTokenPattern(delimiter))
	pc.patterns[delimiter] = re
	return re
}

// buildTokenPattern constructs the placeholder grammar for a delimiter: a
// brace-enclosed path starting with a word character, followed by word
// characters or literal delimiter occurrences. QuoteMeta keeps multi-rune
// delimiters such as "::" expressible.
func buildTokenPattern(delimiter string) string {
	return `\{(\w(?:\w|` + regexp.QuoteMeta(delimiter) + `)*)\}`
}
