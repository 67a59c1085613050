// This file converts Swagger identifiers (operationIds, kebab-case path
// parameters, camelCase query parameters, tags) into valid Go identifiers.

package generator

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/lizlecrone/fitbit-api/internal/naming"
	"github.com/lizlecrone/fitbit-api/swagger"
)

// commentWidth is the column at which generated doc comments wrap.
const commentWidth = 77

// titleCaser title-cases tag words for file headers and group names.
var titleCaser = cases.Title(language.English)

// goReservedWords contains Go keywords that cannot be used as identifiers.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// importCollisions contains identifiers that would shadow a package imported
// by generated files.
var importCollisions = map[string]bool{
	"context": true, "json": true, "strconv": true,
	"strings": true, "time": true, "url": true,
}

// initialisms are name fragments spelled in full caps in Go identifiers.
var initialisms = map[string]string{
	"id": "ID", "url": "URL", "api": "API", "tcx": "TCX",
}

// escapeName appends an underscore to names that are Go keywords or would
// shadow an imported package.
func escapeName(name string) string {
	if goReservedWords[name] || importCollisions[name] {
		return name + "_"
	}
	return name
}

// splitWords splits a Swagger identifier (kebab-case, snake_case, camelCase,
// or space separated) into lowercase words.
func splitWords(s string) []string {
	var words []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			words = append(words, strings.ToLower(cur.String()))
			cur.Reset()
		}
	}
	for _, r := range s {
		switch {
		case r == '-' || r == '_' || r == '.' || r == '/' || r == ' ':
			flush()
		case unicode.IsUpper(r):
			flush()
			cur.WriteRune(r)
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return words
}

// fieldName converts a Swagger identifier to an exported Go name.
// Example: "activity-log-id" -> "ActivityLogID"
func fieldName(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return "Param"
	}
	var b strings.Builder
	for _, w := range words {
		if up, ok := initialisms[w]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(naming.ToTitleCase(w))
	}
	return b.String()
}

// paramName converts a Swagger parameter name to a Go argument name.
// Example: "foodId" -> "foodID", "type" -> "type_", "time" -> "time_"
func paramName(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return "param"
	}
	var b strings.Builder
	for i, w := range words {
		if i == 0 {
			b.WriteString(w)
			continue
		}
		if up, ok := initialisms[w]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(naming.ToTitleCase(w))
	}
	return escapeName(b.String())
}

// methodName derives the Go method name from an operationId, dropping a
// leading "get" since every method on the client is a remote call anyway.
// Operations without an operationId are skipped before this is called.
func methodName(op *swagger.Operation) string {
	name := fieldName(op.OperationID)
	if len(name) > 3 && strings.HasPrefix(name, "Get") && unicode.IsUpper(rune(name[3])) {
		name = name[3:]
	}
	return name
}

// tagGroup converts an operation tag into the display name used in file
// headers and the slug used in file names.
// Example: "Heart Rate Time Series" -> ("HeartRateTimeSeries", "heartratetimeseries")
func tagGroup(tag string) (display, slug string) {
	words := splitWords(tag)
	if len(words) == 0 {
		return "API", "api"
	}
	display = strings.ReplaceAll(titleCaser.String(strings.Join(words, " ")), " ", "")
	slug = strings.Join(words, "")
	return display, slug
}

// lowerFirst lowercases the first rune of s.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

// cleanDescription prepares a Swagger description for use in a Go comment:
// newlines become spaces and surrounding whitespace is trimmed.
func cleanDescription(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if s != "" && !strings.HasSuffix(s, ".") {
		s += "."
	}
	return s
}

// writeWrappedComment writes text as "// " comment lines wrapped at
// commentWidth columns. indent is prepended to every line ("" or "\t").
func writeWrappedComment(b *strings.Builder, text, indent string) {
	prefix := indent + "//"
	line := prefix
	for _, word := range strings.Fields(text) {
		if len(line)+1+len(word) > commentWidth && line != prefix {
			b.WriteString(line)
			b.WriteString("\n")
			line = prefix
		}
		line += " " + word
	}
	if line != prefix {
		b.WriteString(line)
		b.WriteString("\n")
	}
}
