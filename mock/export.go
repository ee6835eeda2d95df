package mock

import (
	"context"

	"github.com/mwierzba/wikiread"
)

var _ wikiread.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of wikiread.ArticleWriter.
type ArticleWriter struct {
	WriteArticleFn func(ctx context.Context, article *wikiread.Article, markdown string) error
}

func (w *ArticleWriter) WriteArticle(ctx context.Context, article *wikiread.Article, markdown string) error {
	return w.WriteArticleFn(ctx, article, markdown)
}
