// Package naming provides shared string case conversion utilities.
package naming

import "unicode"

// ToTitleCase converts the first letter to uppercase.
// Example: "activity" -> "Activity"
func ToTitleCase(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
