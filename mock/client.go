package mock

import (
	"context"

	"github.com/mwierzba/wikiread"
)

var _ wikiread.SummaryService = (*SummaryService)(nil)

// SummaryService is a mock implementation of wikiread.SummaryService.
type SummaryService struct {
	FetchSummaryFn func(ctx context.Context, title string) (*wikiread.Summary, error)
}

func (s *SummaryService) FetchSummary(ctx context.Context, title string) (*wikiread.Summary, error) {
	return s.FetchSummaryFn(ctx, title)
}

var _ wikiread.PageService = (*PageService)(nil)

// PageService is a mock implementation of wikiread.PageService.
type PageService struct {
	FetchPageHTMLFn func(ctx context.Context, title string) (string, error)
}

func (s *PageService) FetchPageHTML(ctx context.Context, title string) (string, error) {
	return s.FetchPageHTMLFn(ctx, title)
}
