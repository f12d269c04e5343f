package search

import "strings"

// Lines splits contents into lines. A line ends at "\n", and a "\r" right before
// the "\n" is dropped. A final newline does not produce a trailing empty line.
// The returned lines share memory with contents.
func Lines(contents string) []string {
	lines := make([]string, 0, strings.Count(contents, "\n")+1)
	for line := range strings.Lines(contents) {
		if trimmed, ok := strings.CutSuffix(line, "\n"); ok {
			line = strings.TrimSuffix(trimmed, "\r")
		}
		lines = append(lines, line)
	}
	return lines
}
