package mock

import "github.com/mwierzba/wikiread"

var _ wikiread.SectionParser = (*SectionParser)(nil)

// SectionParser is a mock implementation of wikiread.SectionParser.
type SectionParser struct {
	ParseSectionsFn func(html string) []wikiread.Section
}

func (p *SectionParser) ParseSections(html string) []wikiread.Section {
	return p.ParseSectionsFn(html)
}

var _ wikiread.ContentExtractor = (*ContentExtractor)(nil)

// ContentExtractor is a mock implementation of wikiread.ContentExtractor.
type ContentExtractor struct {
	ExtractContentHTMLFn func(html string) (string, error)
}

func (e *ContentExtractor) ExtractContentHTML(html string) (string, error) {
	return e.ExtractContentHTMLFn(html)
}
