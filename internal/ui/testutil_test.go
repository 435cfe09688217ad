package ui

import "regexp"

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[mK]`)

// stripANSI removes color and erase sequences so tests can assert on text.
func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}
