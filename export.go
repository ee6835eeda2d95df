package wikiread

import "context"

// ArticleWriter persists a rendered article to an external destination,
// such as a markdown file on disk.
type ArticleWriter interface {
	WriteArticle(ctx context.Context, article *Article, markdown string) error
}
