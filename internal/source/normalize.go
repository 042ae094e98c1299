package source

import "strings"

// Normalize drops every line that is empty once delimiters and surrounding
// whitespace are removed. Spreadsheet exports are full of rows like ",,,,,,"
// which carry no data. Kept lines are not modified and keep their order.
//
// Normalize is total and idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0:0]
	for _, line := range lines {
		if isBlankRow(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// isBlankRow reports whether a row holds nothing but delimiters and whitespace.
func isBlankRow(line string) bool {
	return strings.TrimSpace(strings.ReplaceAll(line, ",", "")) == ""
}
