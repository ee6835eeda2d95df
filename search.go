package wikiread

import "context"

// SearchResult is one title suggestion returned by the wiki's opensearch
// endpoint.
type SearchResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// SearchService searches the remote wiki for article titles.
type SearchService interface {
	Search(ctx context.Context, query string, limit int) ([]SearchResult, error)
}
