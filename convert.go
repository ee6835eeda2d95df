package wikiread

// ContentExtractor returns the filtered content root of raw parse HTML as
// clean HTML, with boilerplate removed but structure preserved. Used by the
// markdown exporter, which needs markup rather than the flattened section
// list.
type ContentExtractor interface {
	ExtractContentHTML(html string) (string, error)
}

// Converter converts clean content HTML to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}
