package survey

import (
	"strings"
	"unicode"
)

// Sentinel names that must never be redacted.
var namePlaceholders = []string{"Anonymous", "N/A"}

// FormatNamePrivate reduces a full name to its "First L." display form.
// Placeholder and empty values are returned verbatim, as are single-token
// names; middle tokens are discarded. It must be applied to every displayed
// or exported name, never to the raw stored value used for filter matching.
func FormatNamePrivate(fullName string) string {
	if fullName == "" {
		return fullName
	}
	for _, p := range namePlaceholders {
		if fullName == p {
			return fullName
		}
	}

	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return fullName
	case 1:
		return parts[0]
	}
	initial := unicode.ToUpper([]rune(parts[len(parts)-1])[0])
	return parts[0] + " " + string(initial) + "."
}

// NormalizeName title-cases each whitespace-separated token. It is used only
// for manager filter-option deduplication and comparison, on the raw
// un-redacted name; it is not a privacy device.
func NormalizeName(name string) string {
	parts := strings.Fields(name)
	for i, part := range parts {
		runes := []rune(strings.ToLower(part))
		runes[0] = unicode.ToUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}
