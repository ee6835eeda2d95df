package mock

import (
	"context"

	"github.com/mwierzba/wikiread"
)

var _ wikiread.SearchService = (*SearchService)(nil)

// SearchService is a mock implementation of wikiread.SearchService.
type SearchService struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]wikiread.SearchResult, error)
}

func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]wikiread.SearchResult, error) {
	return s.SearchFn(ctx, query, limit)
}
