package repair

import (
	"log/slog"
	"strings"
	"unicode"
)

// punctuation a routing document legitimately carries
const cleanPunct = `,.:-$/()'"`

// CleanFraction returns the fraction of characters in a line that are
// alphanumeric, whitespace, or whitelisted punctuation.
func CleanFraction(line string) float64 {
	if line == "" {
		return 1
	}
	total, clean := 0, 0
	for _, r := range line {
		total++
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) || strings.ContainsRune(cleanPunct, r) {
			clean++
		}
	}
	return float64(clean) / float64(total)
}

// FilterRows drops lines that are mostly symbolic noise (stray code
// fragments and the like). Blank lines are always retained: they carry
// layout meaning, e.g. the spacing before totals. This is a heuristic
// filter over adversarially unstructured model output, not a CSV validator.
func FilterRows(text string, opts Options, logger *slog.Logger) string {
	if logger == nil {
		logger = slog.Default()
	}
	threshold := opts.CleanFraction
	if threshold <= 0 {
		threshold = defaultCleanFraction
	}

	lines := strings.Split(text, "\n")
	kept := lines[:0]
	dropped := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			kept = append(kept, line)
			continue
		}
		if frac := CleanFraction(line); frac < threshold {
			dropped++
			logger.Warn("repair.filter.row_dropped",
				"clean_fraction", frac,
				"threshold", threshold,
				"len", len(line),
			)
			continue
		}
		kept = append(kept, line)
	}
	if dropped > 0 {
		logger.Info("repair.filter.done", "dropped", dropped, "kept", len(kept))
	}
	return strings.Join(kept, "\n")
}
