package repair

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// classAttrRE matches stray class="..." style attribute fragments that
	// survive outside their tag.
	classAttrRE = regexp.MustCompile(`(?i)\s*class\s*=\s*"[^"]*"`)
	// tagRE matches HTML/XML tags, malformed variants with internal
	// whitespace included.
	tagRE = regexp.MustCompile(`<[^<>]*>`)
	// entityRE matches named and numeric HTML entity references.
	entityRE = regexp.MustCompile(`&[a-zA-Z][a-zA-Z0-9]*;|&#[0-9]+;`)
)

// SanitizeMarkup removes HTML artifacts from generator output line by line,
// preserving line order. Runs of field separators are collapsed down to two
// only on lines where a removed fragment itself contained a separator; that
// is the one case where removal can misalign columns. Tag-free lines keep
// their separator runs, which also makes the whole pass idempotent.
func SanitizeMarkup(text string, opts Options) string {
	runLen := opts.SeparatorRun
	if runLen < 2 {
		runLen = defaultSeparatorRun
	}
	collapseRE := regexp.MustCompile(`,{` + strconv.Itoa(runLen) + `,}`)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		removedSeparator := false
		strip := func(re *regexp.Regexp, s string) string {
			return re.ReplaceAllStringFunc(s, func(m string) string {
				if strings.Contains(m, ",") {
					removedSeparator = true
				}
				return ""
			})
		}
		line = strip(classAttrRE, line)
		line = strip(tagRE, line)
		line = strip(entityRE, line)
		if removedSeparator {
			line = collapseRE.ReplaceAllString(line, ",,")
		}
		lines[i] = line
	}
	return strings.Join(lines, "\n")
}
