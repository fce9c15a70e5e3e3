package cfmodels

import (
	"regexp"
	"runtime"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var unallowed = regexp.MustCompile(`[^A-Za-z0-9_]`)

// FormatClassName turns a display name or field id into an identifier made
// of ASCII letters, digits and underscores with an upper-case first letter.
// Applying it twice gives the same result as once.
func FormatClassName(s string) string {
	s = unallowed.ReplaceAllString(s, "")
	if s == "" {
		return s
	}
	return cases.Upper(language.Und).String(s[:1]) + s[1:]
}

// FormatFileName drops characters the host file system rejects and then
// formats the rest like a class name.
func FormatFileName(s string) string {
	return FormatClassName(strings.Map(func(r rune) rune {
		if isInvalidFileNameChar(r) {
			return -1
		}
		return r
	}, s))
}

func isInvalidFileNameChar(r rune) bool {
	if r == '/' || r == 0 {
		return true
	}
	if runtime.GOOS != "windows" {
		return false
	}
	return r < 32 || strings.ContainsRune(`<>:"\|?*`, r)
}
