package mock

import (
	"context"

	"github.com/mwierzba/wikiread"
)

var _ wikiread.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of wikiread.ArticleService.
type ArticleService struct {
	SaveArticleFn        func(ctx context.Context, article *wikiread.Article) error
	FindArticleByTitleFn func(ctx context.Context, title string) (*wikiread.Article, error)
	FindArticlesFn       func(ctx context.Context, filter wikiread.ArticleFilter) ([]*wikiread.Article, error)
	DeleteArticleFn      func(ctx context.Context, title string) error
}

func (s *ArticleService) SaveArticle(ctx context.Context, article *wikiread.Article) error {
	return s.SaveArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByTitle(ctx context.Context, title string) (*wikiread.Article, error) {
	return s.FindArticleByTitleFn(ctx, title)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter wikiread.ArticleFilter) ([]*wikiread.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, title string) error {
	return s.DeleteArticleFn(ctx, title)
}
