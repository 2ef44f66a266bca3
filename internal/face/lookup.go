// Package face holds the fixed attribute tables of a playing card face:
// suit colours and glyphs, rank labels, pip layouts and pip scales.
package face

import "fmt"

// ConfigError reports a key that is missing from a lookup table. Suits and
// ranks are closed enumerations, so this is a programming error.
type ConfigError struct {
	Table   string
	KeyKind string
	Key     any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("cannot retrieve %s with invalid %s: %v", e.Table, e.KeyKind, e.Key)
}

// Table maps every value of an enumeration to one rendering attribute
type Table[K comparable, V any] struct {
	name    string
	keyKind string
	values  map[K]V
}

// NewTable creates a table named after the attribute it resolves
// (e.g., "color") for keys of the given kind (e.g., "suit").
func NewTable[K comparable, V any](keyKind, name string, values map[K]V) Table[K, V] {
	return Table[K, V]{name: name, keyKind: keyKind, values: values}
}

// Lookup returns the value stored for key or a *ConfigError
func (t Table[K, V]) Lookup(key K) (V, error) {
	v, ok := t.values[key]
	if !ok {
		var zero V
		return zero, &ConfigError{Table: t.name, KeyKind: t.keyKind, Key: key}
	}
	return v, nil
}

// MustLookup is like Lookup but panics with the *ConfigError
func (t Table[K, V]) MustLookup(key K) V {
	v, err := t.Lookup(key)
	if err != nil {
		panic(err)
	}
	return v
}
