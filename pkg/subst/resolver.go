package subst

import (
	"fmt"
	"strconv"
	"strings"
)

// The three traversable capabilities, checked in this order at every path
// segment. Object wins over Mapping and Sequence when a value implements
// more than one.

// Object is implemented by values exposing named zero-argument accessors.
// A missing accessor is a normal not-found outcome, reported via ok=false.
// An accessor that panics during invocation propagates out of the render
// untouched; Property is not guarded.
type Object interface {
	Property(name string) (interface{}, bool)
}

// Mapping is implemented by values supporting existence check and lookup by
// string key.
type Mapping interface {
	Lookup(key string) (interface{}, bool)
}

// Sequence is implemented by ordered values indexable by non-negative
// integer. Index is only called with i in [0, Len()).
type Sequence interface {
	Len() int
	Index(i int) interface{}
}

// Resolve walks path through root one delimiter-separated segment at a time
// and returns the value found at the end. If any segment is absent (missing
// key or accessor, index malformed or out of range), fallback is returned.
// Walking a remaining segment into a value with no traversable capability
// returns a *TraversalError.
//
// The result is whatever value the walk ends on; no coercion to string
// happens here. The process-wide delimiter is read at call time.
func Resolve(root interface{}, path string, fallback interface{}) (interface{}, error) {
	return resolvePath(root, path, fallback, Delimiter())
}

func resolvePath(root interface{}, path string, fallback interface{}, delimiter string) (interface{}, error) {
	logger := GetLogger()
	if logger.IsDebugMode() {
		logger.DebugResolve(path, root)
	}

	segments := strings.Split(path, delimiter)

	// Walk the segments, keeping a current value
	current := root

	for _, segment := range segments {
		switch v := current.(type) {
		case Object:
			val, ok := v.Property(segment)
			if !ok {
				return fallback, nil
			}
			current = val
		case Mapping:
			val, ok := v.Lookup(segment)
			if !ok {
				return fallback, nil
			}
			current = val
		case Sequence:
			idx, ok := parseIndex(segment, v.Len())
			if !ok {
				return fallback, nil
			}
			current = v.Index(idx)
		default:
			val, outcome := lookupBuiltin(current, segment)
			if outcome == lookupMissing {
				return fallback, nil
			}
			if outcome == lookupUnsupported {
				// A segment remains but the current value cannot be
				// drilled into: misuse, not a miss
				return nil, NewTraversalError(root, path)
			}
			current = val
		}
	}

	if logger.IsDebugMode() {
		logger.WithField("result", current).Debug("Path resolution complete")
	}

	return current, nil
}

type lookupOutcome int

const (
	lookupFound lookupOutcome = iota
	lookupMissing
	lookupUnsupported
)

// lookupBuiltin resolves one segment against the builtin map and slice
// shapes. Shapes not listed here are not traversable.
func lookupBuiltin(current interface{}, segment string) (interface{}, lookupOutcome) {
	switch v := current.(type) {
	case Data:
		return lookupKey(v, segment)
	case map[string]interface{}:
		return lookupKey(v, segment)
	case map[string]string:
		val, ok := v[segment]
		if !ok {
			return nil, lookupMissing
		}
		return val, lookupFound
	case map[string]int:
		val, ok := v[segment]
		if !ok {
			return nil, lookupMissing
		}
		return val, lookupFound
	case map[string]float64:
		val, ok := v[segment]
		if !ok {
			return nil, lookupMissing
		}
		return val, lookupFound
	case map[string]bool:
		val, ok := v[segment]
		if !ok {
			return nil, lookupMissing
		}
		return val, lookupFound
	case []interface{}:
		idx, ok := parseIndex(segment, len(v))
		if !ok {
			return nil, lookupMissing
		}
		return v[idx], lookupFound
	case []string:
		idx, ok := parseIndex(segment, len(v))
		if !ok {
			return nil, lookupMissing
		}
		return v[idx], lookupFound
	case []int:
		idx, ok := parseIndex(segment, len(v))
		if !ok {
			return nil, lookupMissing
		}
		return v[idx], lookupFound
	case []float64:
		idx, ok := parseIndex(segment, len(v))
		if !ok {
			return nil, lookupMissing
		}
		return v[idx], lookupFound
	case []bool:
		idx, ok := parseIndex(segment, len(v))
		if !ok {
			return nil, lookupMissing
		}
		return v[idx], lookupFound
	case []map[string]interface{}:
		idx, ok := parseIndex(segment, len(v))
		if !ok {
			return nil, lookupMissing
		}
		return v[idx], lookupFound
	default:
		return nil, lookupUnsupported
	}
}

func lookupKey(m map[string]interface{}, key string) (interface{}, lookupOutcome) {
	val, ok := m[key]
	if !ok {
		return nil, lookupMissing
	}
	return val, lookupFound
}

// parseIndex interprets a segment as a sequence index. Only plain decimal
// numerals qualify: "03", "-1" and "abc" are invalid indexes, as is anything
// out of bounds.
func parseIndex(segment string, length int) (int, bool) {
	if segment == "" {
		return 0, false
	}
	for _, r := range segment {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	if len(segment) > 1 && segment[0] == '0' {
		return 0, false
	}
	idx, err := strconv.Atoi(segment)
	if err != nil || idx >= length {
		return 0, false
	}
	return idx, true
}

// FormatValue converts a resolved value to its string representation
func FormatValue(value interface{}) string {
	if value == nil {
		return ""
	}

	switch v := value.(type) {
	case string:
		return v
	case int, int8, int16, int32, int64:
		return fmt.Sprintf("%d", v)
	case uint, uint8, uint16, uint32, uint64:
		return fmt.Sprintf("%d", v)
	case float32:
		// Use strconv.FormatFloat with 'g' format and precision 10 for cleaner representation
		return strconv.FormatFloat(float64(v), 'g', 10, 32)
	case float64:
		// Use strconv.FormatFloat with 'g' format and precision 15 for cleaner representation
		// This removes unnecessary trailing zeros and handles precision issues
		return strconv.FormatFloat(v, 'g', 15, 64)
	case bool:
		return fmt.Sprintf("%v", v)
	default:
		// For complex types, use fmt.Sprintf
		return fmt.Sprintf("%v", v)
	}
}
