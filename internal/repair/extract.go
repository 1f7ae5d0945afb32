package repair

import (
	"regexp"
	"strings"
)

// fencedRE captures the innermost content of a triple-backtick block with an
// optional language tag.
var fencedRE = regexp.MustCompile("(?s)```[a-zA-Z0-9_-]*[ \t]*\r?\n?(.*?)```")

// ExtractFenced strips a surrounding fenced code block from raw generator
// output. Absence of a fence is not a fault: the text is returned verbatim,
// trimmed either way.
func ExtractFenced(text string) string {
	t := strings.TrimSpace(text)
	if !strings.Contains(t, "```") {
		return t
	}
	if m := fencedRE.FindStringSubmatch(t); m != nil {
		return strings.TrimSpace(m[1])
	}
	// Unterminated fence: drop the opening marker line and keep the rest.
	if idx := strings.Index(t, "\n"); idx >= 0 && strings.HasPrefix(t, "```") {
		return strings.TrimSpace(t[idx+1:])
	}
	return strings.TrimSpace(strings.ReplaceAll(t, "```", ""))
}
