// Package model defines the data structures shared by the resolver, the
// discovery scheduler and the scanner.
package model

import "strings"

// Path represents a file system path.
type Path string

// DottedName is a package or module identifier in `segment(.segment)*` form.
type DottedName string

const nameSeparator = "."

// Valid reports whether every segment of the name is non-empty.
func (n DottedName) Valid() bool {
	if n == "" {
		return false
	}

	for _, segment := range strings.Split(string(n), nameSeparator) {
		if segment == "" {
			return false
		}
	}

	return true
}

// Split returns the parent name and the leaf segment. The parent is empty for
// top-level names.
func (n DottedName) Split() (DottedName, string) {
	idx := strings.LastIndex(string(n), nameSeparator)
	if idx < 0 {
		return "", string(n)
	}

	return n[:idx], string(n[idx+1:])
}

// Top returns the top-level segment.
func (n DottedName) Top() DottedName {
	top, _, _ := strings.Cut(string(n), nameSeparator)
	return DottedName(top)
}

// Segments returns all segments of the name in order.
func (n DottedName) Segments() []string {
	return strings.Split(string(n), nameSeparator)
}

// Child qualifies a child segment with this name.
func (n DottedName) Child(segment string) DottedName {
	return n + nameSeparator + DottedName(segment)
}

// Depth is the number of segments.
func (n DottedName) Depth() int {
	return strings.Count(string(n), nameSeparator) + 1
}
