package wikiread

import (
	"context"
	"time"
)

// Summary holds the metadata returned by the wiki's summary endpoint.
type Summary struct {
	PageID       int64
	Title        string
	Extract      string
	ThumbnailURL string
	PageURL      string
	Timestamp    time.Time
}

// SummaryService fetches article summaries from the remote wiki.
// A summary is the minimum required to present an article; its failure
// fails the whole fetch.
type SummaryService interface {
	FetchSummary(ctx context.Context, title string) (*Summary, error)
}

// PageService fetches the rendered parse HTML for an article.
// Implementations return EUNAVAILABLE when the response carries no
// rendered text; callers degrade to a summary-only article on any error.
type PageService interface {
	FetchPageHTML(ctx context.Context, title string) (string, error)
}
