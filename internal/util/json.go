package util

import "strings"

// CleanJSONFence strips a leading ```json and a trailing ``` from model
// output, trimming whitespace around both.
func CleanJSONFence(input string) string {
	clean := strings.TrimSpace(input)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
