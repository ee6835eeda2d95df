package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mwierzba/wikiread"
)

// Compile-time interface verification.
var _ wikiread.ArticleService = (*ArticleService)(nil)

// ArticleService implements wikiread.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashSections computes an xxHash over all section content in order and
// returns it as a hex string. Used to tell whether a re-saved article
// actually changed.
func hashSections(sections []wikiread.Section) string {
	h := xxhash.New()
	for _, s := range sections {
		_, _ = h.WriteString(s.Title)
		_, _ = h.WriteString("\x00")
		_, _ = h.WriteString(s.Content)
		_, _ = h.WriteString("\x00")
	}
	sum := h.Sum64()
	b := []byte{
		byte(sum >> 56), byte(sum >> 48), byte(sum >> 40), byte(sum >> 32),
		byte(sum >> 24), byte(sum >> 16), byte(sum >> 8), byte(sum),
	}
	return hex.EncodeToString(b)
}

// SaveArticle stores an article and its sections, replacing any previously
// saved article with the same title. Saved articles are immutable; a save
// always writes a fresh row set.
func (s *ArticleService) SaveArticle(ctx context.Context, article *wikiread.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.ContentHash = hashSections(article.Sections)
	if article.FetchedAt.IsZero() {
		article.FetchedAt = time.Now().UTC()
	}

	// Replace wholesale: the cascade drops the old sections with the old
	// article row.
	if _, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE title = ?`, article.Title); err != nil {
		return err
	}

	lastModified := ""
	if !article.LastModified.IsZero() {
		lastModified = article.LastModified.Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, title, extract, thumbnail_url, source_url, last_modified, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Title, article.Extract, article.ThumbnailURL, article.SourceURL,
		lastModified, article.ContentHash, article.FetchedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, section := range article.Sections {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO sections (article_id, position, title, level, content)
			VALUES (?, ?, ?, ?, ?)
		`, article.ID, i, section.Title, section.Level, section.Content)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindArticleByTitle retrieves a saved article with its sections in
// document order.
func (s *ArticleService) FindArticleByTitle(ctx context.Context, title string) (*wikiread.Article, error) {
	var article wikiread.Article
	var lastModified, fetchedAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, title, extract, thumbnail_url, source_url, last_modified, content_hash, fetched_at
		FROM articles
		WHERE title = ?
	`, title).Scan(&article.ID, &article.Title, &article.Extract, &article.ThumbnailURL,
		&article.SourceURL, &lastModified, &article.ContentHash, &fetchedAt)

	if err == sql.ErrNoRows {
		return nil, wikiread.Errorf(wikiread.ENOTFOUND, "article %q not found", title)
	}
	if err != nil {
		return nil, err
	}

	if lastModified != "" {
		article.LastModified, err = parseRFC3339(lastModified, "last_modified")
		if err != nil {
			return nil, err
		}
	}
	article.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT title, level, content
		FROM sections
		WHERE article_id = ?
		ORDER BY position ASC
	`, article.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var section wikiread.Section
		if err := rows.Scan(&section.Title, &section.Level, &section.Content); err != nil {
			return nil, err
		}
		article.Sections = append(article.Sections, section)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &article, nil
}

// FindArticles retrieves saved articles matching the filter, most recently
// fetched first, without their sections.
func (s *ArticleService) FindArticles(ctx context.Context, filter wikiread.ArticleFilter) ([]*wikiread.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, title, extract, thumbnail_url, source_url, last_modified, content_hash, fetched_at FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Title != nil {
		query.WriteString(" AND title = ?")
		args = append(args, *filter.Title)
	}

	query.WriteString(" ORDER BY fetched_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*wikiread.Article
	for rows.Next() {
		var article wikiread.Article
		var lastModified, fetchedAt string

		if err := rows.Scan(&article.ID, &article.Title, &article.Extract, &article.ThumbnailURL,
			&article.SourceURL, &lastModified, &article.ContentHash, &fetchedAt); err != nil {
			return nil, err
		}

		if lastModified != "" {
			article.LastModified, err = parseRFC3339(lastModified, "last_modified")
			if err != nil {
				return nil, err
			}
		}
		article.FetchedAt, err = parseRFC3339(fetchedAt, "fetched_at")
		if err != nil {
			return nil, err
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article and its sections.
func (s *ArticleService) DeleteArticle(ctx context.Context, title string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM articles WHERE title = ?`, title)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return wikiread.Errorf(wikiread.ENOTFOUND, "article %q not found", title)
	}
	return nil
}
