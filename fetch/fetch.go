// Package fetch provides article fetch orchestration. It coordinates the
// summary and parse endpoints and assembles their results into a complete
// article, degrading to a summary-only article when the full content is
// unavailable.
package fetch

import (
	"context"
	"time"

	"github.com/mwierzba/wikiread"
	"golang.org/x/sync/errgroup"
)

// DefaultTimeout bounds one whole fetch-and-parse attempt.
const DefaultTimeout = 30 * time.Second

// Ensure Assembler implements wikiread.ArticleFetcher at compile time.
var _ wikiread.ArticleFetcher = (*Assembler)(nil)

// Assembler fetches and assembles articles. The summary fetch is
// authoritative: its failure fails the fetch. The page HTML fetch and the
// section extraction degrade: any failure there produces a one-section
// article built from the summary extract.
type Assembler struct {
	Summaries wikiread.SummaryService
	Pages     wikiread.PageService
	Parser    wikiread.SectionParser
	Timeout   time.Duration
}

// FetchArticle fetches both endpoints concurrently and assembles the
// article. The full-content attempt always resolves, success or failure,
// before the fallback decision is made.
func (a *Assembler) FetchArticle(ctx context.Context, title string) (*wikiread.Article, error) {
	if title == "" {
		return nil, wikiread.Errorf(wikiread.EINVALID, "article title required")
	}

	timeout := a.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var (
		summary *wikiread.Summary
		html    string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s, err := a.Summaries.FetchSummary(gctx, title)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	g.Go(func() error {
		h, err := a.Pages.FetchPageHTML(gctx, title)
		if err != nil {
			// Degrades to a summary-only article; never fails the group.
			return nil
		}
		html = h
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var sections []wikiread.Section
	if html != "" {
		sections = a.Parser.ParseSections(html)
	}
	if len(sections) == 0 {
		sections = []wikiread.Section{{Content: summary.Extract}}
	}

	articleTitle := summary.Title
	if articleTitle == "" {
		articleTitle = title
	}

	return &wikiread.Article{
		Title:        articleTitle,
		Extract:      summary.Extract,
		ThumbnailURL: summary.ThumbnailURL,
		SourceURL:    summary.PageURL,
		LastModified: summary.Timestamp,
		FetchedAt:    time.Now().UTC(),
		Sections:     sections,
	}, nil
}
