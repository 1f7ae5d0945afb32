package repair

import (
	"log/slog"

	"github.com/macproducts/routergen/internal/router"
)

// Empirically tuned defaults, overridable via configuration. These carry no
// formal justification; they were calibrated against observed model output.
const (
	defaultCleanFraction     = 0.70
	defaultSeparatorRun      = 3
	defaultArtifactTolerance = 1
)

// Options carries the tuning constants of the cleanup pipeline.
type Options struct {
	// CleanFraction is the minimum fraction of clean characters a row needs
	// to survive the noise filter.
	CleanFraction float64
	// SeparatorRun is the run length at which consecutive separators are
	// collapsed after a separator-bearing tag removal.
	SeparatorRun int
	// ArtifactTolerance is the number of markup/code-operator hits a row may
	// carry before it is dropped instead of scrubbed.
	ArtifactTolerance int
}

// DefaultOptions returns the tuned defaults.
func DefaultOptions() Options {
	return Options{
		CleanFraction:     defaultCleanFraction,
		SeparatorRun:      defaultSeparatorRun,
		ArtifactTolerance: defaultArtifactTolerance,
	}
}

// Pipeline coordinates the ordered cleanup stages that turn raw generator
// output into a well-formed routing document: fence extraction, markup
// sanitization, row filtering, then structural repair. It is best-effort by
// design and never returns an error; irreparably empty input yields an empty
// document for the caller to surface as a generation failure.
type Pipeline struct {
	opts   Options
	logger *slog.Logger
}

func NewPipeline(opts Options, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if opts == (Options{}) {
		opts = DefaultOptions()
	}
	return &Pipeline{opts: opts, logger: logger}
}

// Run executes the full pipeline on raw generator output.
func (p *Pipeline) Run(raw string) *router.Document {
	text := ExtractFenced(raw)
	text = SanitizeMarkup(text, p.opts)
	text = FilterRows(text, p.opts, p.logger)
	doc := router.Parse(text)
	RepairStructure(doc, p.opts, p.logger)

	p.logger.Debug("repair.pipeline.done",
		"raw_len", len(raw),
		"rows", len(doc.Rows),
		"operations", doc.Count(router.KindOperationData),
	)
	return doc
}
