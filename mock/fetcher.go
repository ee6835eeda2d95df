package mock

import (
	"context"

	"github.com/mwierzba/wikiread"
)

var _ wikiread.ArticleFetcher = (*ArticleFetcher)(nil)

// ArticleFetcher is a mock implementation of wikiread.ArticleFetcher.
type ArticleFetcher struct {
	FetchArticleFn func(ctx context.Context, title string) (*wikiread.Article, error)
}

func (f *ArticleFetcher) FetchArticle(ctx context.Context, title string) (*wikiread.Article, error) {
	return f.FetchArticleFn(ctx, title)
}
