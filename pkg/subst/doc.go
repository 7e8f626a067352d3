// Package subst provides path-based placeholder substitution for strings.
//
// Go-subst replaces placeholders of the form {key.path} in a template string
// with values looked up from a data structure. Each placeholder's key path is
// split on a configurable delimiter (default ".") and walked one segment at a
// time through maps, slices, and values implementing the Object, Mapping, or
// Sequence capability interfaces.
//
// # Quick Start
//
// The simplest way to use go-subst is through the package-level Render
// function:
//
//	data := subst.Data{
//	    "customer": subst.Data{"name": "Ada"},
//	    "items":    []string{"keyboard", "mouse"},
//	}
//
//	out, err := subst.Render(data, "Hello {customer.name}, first item: {items.0}")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out) // Hello Ada, first item: keyboard
//
// # Placeholder Syntax
//
// A placeholder is a single pair of braces around a key path:
//
//	{name}            - Top-level key
//	{customer.name}   - Nested lookup
//	{items.2}         - Sequence index
//	{a.b.c}           - Arbitrary depth
//
// The path must start with a word character (letter, digit, or underscore);
// anything that does not match the grammar, such as {} or { spaced }, passes
// through the output untouched.
//
// # Resolution and Fallback
//
// A placeholder whose path cannot be found resolves to itself: the original
// token text, braces included, is emitted verbatim. Attempting to walk a
// remaining path segment into a plain scalar is a misuse rather than a miss
// and fails the whole render with a *TraversalError.
//
// # Delimiter
//
// The segment delimiter is process-wide configuration read at render time;
// SetDelimiter changes it for all subsequent package-level calls. For
// concurrent use, prefer a dedicated engine whose delimiter is fixed at
// construction:
//
//	eng := subst.NewWithConfig(&subst.Config{Delimiter: "::"})
//	out, err := eng.Render(data, "{customer::name}")
package subst
