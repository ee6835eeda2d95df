package slog

import (
	"log/slog"
	"time"

	"github.com/mwierzba/wikiread"
)

// Ensure SectionParser implements wikiread.SectionParser.
var _ wikiread.SectionParser = (*SectionParser)(nil)

// SectionParser wraps a SectionParser with debug logging for extraction.
type SectionParser struct {
	next   wikiread.SectionParser
	logger *slog.Logger
}

// NewSectionParser creates a new logging SectionParser.
func NewSectionParser(next wikiread.SectionParser, logger *slog.Logger) *SectionParser {
	return &SectionParser{next: next, logger: logger}
}

// ParseSections delegates to the wrapped parser and logs the shape of the
// result, including whether a sentinel was emitted.
func (p *SectionParser) ParseSections(html string) []wikiread.Section {
	begin := time.Now()
	sections := p.next.ParseSections(html)

	sentinel := len(sections) == 1 && sections[0].Title == "Error"
	p.logger.Info("sections extracted",
		"input_bytes", len(html),
		"sections", len(sections),
		"sentinel", sentinel,
		"duration", time.Since(begin),
	)
	return sections
}
