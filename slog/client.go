// Package slog provides logging decorators for wikiread services using the
// standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/mwierzba/wikiread"
)

// Compile-time interface verification.
var (
	_ wikiread.SummaryService = (*SummaryService)(nil)
	_ wikiread.PageService    = (*PageService)(nil)
)

// SummaryService wraps a SummaryService with request logging.
type SummaryService struct {
	next   wikiread.SummaryService
	logger *slog.Logger
}

// NewSummaryService creates a new logging SummaryService.
func NewSummaryService(next wikiread.SummaryService, logger *slog.Logger) *SummaryService {
	return &SummaryService{next: next, logger: logger}
}

// FetchSummary delegates to the wrapped service and logs the outcome.
func (s *SummaryService) FetchSummary(ctx context.Context, title string) (*wikiread.Summary, error) {
	begin := time.Now()
	summary, err := s.next.FetchSummary(ctx, title)
	if err != nil {
		s.logger.Error("summary fetch failed",
			"title", title,
			"code", wikiread.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	s.logger.Info("summary fetched",
		"title", title,
		"extract_length", len(summary.Extract),
		"duration", time.Since(begin),
	)
	return summary, nil
}

// PageService wraps a PageService with request logging.
type PageService struct {
	next   wikiread.PageService
	logger *slog.Logger
}

// NewPageService creates a new logging PageService.
func NewPageService(next wikiread.PageService, logger *slog.Logger) *PageService {
	return &PageService{next: next, logger: logger}
}

// FetchPageHTML delegates to the wrapped service and logs the outcome.
// Failures are logged at warn level: the caller degrades to a summary-only
// article, so this is not an error condition for the fetch as a whole.
func (s *PageService) FetchPageHTML(ctx context.Context, title string) (string, error) {
	begin := time.Now()
	html, err := s.next.FetchPageHTML(ctx, title)
	if err != nil {
		s.logger.Warn("page HTML unavailable",
			"title", title,
			"code", wikiread.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return "", err
	}
	s.logger.Info("page HTML fetched",
		"title", title,
		"bytes", len(html),
		"duration", time.Since(begin),
	)
	return html, nil
}
