// Package theme holds the built-in theme registry.
//
// The registry is initialized once with the package and never changes
// afterwards, so it can be read from any number of goroutines without
// synchronization. Records are values; callers always get copies.
package theme

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// Theme names.
const (
	Default = "default"
	Dark    = "dark"
)

// ErrNotFound is returned by Find for names not in the registry.
var ErrNotFound = errors.New("theme not found")

var themes = map[string]Theme{
	Default: {
		PrimaryColor:     "74, 144,226",
		PrimaryTextColor: "74, 144,226",
	},
	Dark: {
		PrimaryColor:     "0,0,0",
		PrimaryTextColor: "0,0,0",
	},
}

// Get returns the theme registered under name. Unknown names yield the zero
// Theme.
func Get(name string) Theme {
	return themes[name]
}

// Lookup returns the theme registered under name and whether it exists.
func Lookup(name string) (Theme, bool) {
	t, ok := themes[name]
	return t, ok
}

// Find is like Lookup but reports unknown names as an error wrapping
// ErrNotFound.
func Find(name string) (Theme, error) {
	t, ok := themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return t, nil
}

// OrDefault returns the theme registered under name, or the default theme
// when there is none.
func OrDefault(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes[Default]
}

// Names returns the registered theme names, default first and the rest
// sorted.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		if name != Default {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	if _, ok := themes[Default]; ok {
		names = append([]string{Default}, names...)
	}
	return names
}

// All returns a copy of the registry.
func All() map[string]Theme {
	return maps.Clone(themes)
}

// Len returns the number of registered themes.
func Len() int {
	return len(themes)
}
