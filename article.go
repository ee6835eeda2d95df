package wikiread

import (
	"context"
	"time"
)

// Article represents a fetched Wikipedia article. An article is assembled
// once per fetch and is immutable afterwards; re-fetching or re-saving
// produces a new instance rather than mutating fields in place.
type Article struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Extract      string    `json:"extract"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	SourceURL    string    `json:"sourceUrl"`
	LastModified time.Time `json:"lastModified,omitempty"`
	ContentHash  string    `json:"contentHash,omitempty"`
	FetchedAt    time.Time `json:"fetchedAt"`

	// Sections holds the extracted body in document order. The content of
	// each section is plain text interleaved with inline table markers; see
	// DecodeContent.
	Sections []Section `json:"sections"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.SourceURL == "" {
		return Errorf(EINVALID, "article source URL required")
	}
	return nil
}

// ArticleService represents a service for managing saved articles.
type ArticleService interface {
	// SaveArticle stores an article and its sections, replacing any
	// previously saved article with the same title.
	SaveArticle(ctx context.Context, article *Article) error

	// FindArticleByTitle retrieves a saved article with its sections.
	// Returns ENOTFOUND if no article with the title exists.
	FindArticleByTitle(ctx context.Context, title string) (*Article, error)

	// FindArticles retrieves saved articles matching the filter, without
	// their sections.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article and its sections.
	// Returns ENOTFOUND if no article with the title exists.
	DeleteArticle(ctx context.Context, title string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID    *string `json:"id"`
	Title *string `json:"title"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// ArticleFetcher assembles a complete article from the remote wiki.
type ArticleFetcher interface {
	// FetchArticle fetches the summary and the rendered page HTML for a
	// title and assembles them into an article. A summary failure fails the
	// fetch; a page HTML failure degrades to a summary-only article.
	FetchArticle(ctx context.Context, title string) (*Article, error)
}
