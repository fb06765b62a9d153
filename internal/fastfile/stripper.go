package fastfile

import "strings"

// StripComment returns the code-bearing prefix of line with any trailing
// comment removed. A comment starts at the first '#' that is not inside a
// single- or double-quoted string. While inside a string, a quote character
// preceded by a backslash does not terminate it; escape handling is tracked
// only for the currently active quote character. Multi-line string literals
// are not supported.
func StripComment(line string) string {
	var quote byte
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case quote != 0:
			if ch == quote && line[i-1] != '\\' {
				quote = 0
			}
		case ch == '"' || ch == '\'':
			quote = ch
		case ch == '#':
			return strings.TrimRight(line[:i], " \t")
		}
	}
	return line
}

// StripComments applies StripComment to every line of source. Full-line
// comments reduce to empty lines, so line indices are preserved.
func StripComments(source string) string {
	lines := strings.Split(source, "\n")
	for i, line := range lines {
		lines[i] = StripComment(line)
	}
	return strings.Join(lines, "\n")
}
