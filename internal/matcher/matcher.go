// Package matcher checks file lines for containing the query - exactly or ignoring case
package matcher

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoMatchesFound is returned as the only line by SearchCaseInsensitive when nothing matched
const NoMatchesFound = "No matches found."

// Lines splits contents on "\n" (a preceding "\r" is dropped as part of the terminator).
// A trailing terminator does not produce an empty last line. Returned lines share memory with contents.
func Lines(contents string) []string {
	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for contents != "" {
		var line string
		i := strings.IndexByte(contents, '\n')
		if i < 0 {
			line, contents = contents, ""
		} else {
			line, contents = contents[:i], contents[i+1:]
			line = strings.TrimSuffix(line, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}

func Search(query, contents string) []string {
	return FilterLines(Lines(contents), query, true)
}

func SearchCaseInsensitive(query, contents string) []string {
	return OrNoMatches(FilterLines(Lines(contents), query, false))
}

// FilterLines keeps lines containing query, in order. Unlike SearchCaseInsensitive it never adds the sentinel.
func FilterLines(lines []string, query string, caseSensitive bool) []string {
	result := []string{}

	if caseSensitive {
		for _, line := range lines {
			if strings.Contains(line, query) {
				result = append(result, line)
			}
		}
		return result
	}

	// Caser хранит состояние - отдельный экземпляр на каждый вызов
	lower := cases.Lower(language.Und)
	query = lower.String(query)
	for _, line := range lines {
		if strings.Contains(lower.String(line), query) {
			result = append(result, line) // в результат идет исходная строка, не приведенная к нижнему регистру
		}
	}
	return result
}

// OrNoMatches replaces an empty result with the single NoMatchesFound line
func OrNoMatches(result []string) []string {
	if len(result) == 0 {
		return []string{NoMatchesFound}
	}
	return result
}
