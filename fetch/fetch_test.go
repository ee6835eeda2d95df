package fetch_test

import (
	"context"
	"testing"
	"time"

	"github.com/mwierzba/wikiread"
	"github.com/mwierzba/wikiread/fetch"
	"github.com/mwierzba/wikiread/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okSummary(title string) *mock.SummaryService {
	return &mock.SummaryService{
		FetchSummaryFn: func(_ context.Context, _ string) (*wikiread.Summary, error) {
			return &wikiread.Summary{
				Title:     title,
				Extract:   "A short extract.",
				PageURL:   "https://en.wikipedia.org/wiki/" + title,
				Timestamp: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			}, nil
		},
	}
}

func TestAssembler_FetchArticle(t *testing.T) {
	t.Parallel()

	t.Run("assembles sections from parsed page HTML", func(t *testing.T) {
		t.Parallel()

		a := &fetch.Assembler{
			Summaries: okSummary("Go"),
			Pages: &mock.PageService{
				FetchPageHTMLFn: func(_ context.Context, _ string) (string, error) {
					return `<div class="mw-parser-output"><p>Intro.</p></div>`, nil
				},
			},
			Parser: &mock.SectionParser{
				ParseSectionsFn: func(_ string) []wikiread.Section {
					return []wikiread.Section{
						{Content: "Intro."},
						{Title: "History", Level: 2, Content: "Old."},
					}
				},
			},
		}

		article, err := a.FetchArticle(context.Background(), "Go")

		require.NoError(t, err)
		assert.Equal(t, "Go", article.Title)
		assert.Equal(t, "A short extract.", article.Extract)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Go", article.SourceURL)
		require.Len(t, article.Sections, 2)
		assert.Equal(t, "History", article.Sections[1].Title)
		assert.False(t, article.FetchedAt.IsZero())
	})

	t.Run("propagates a summary failure", func(t *testing.T) {
		t.Parallel()

		a := &fetch.Assembler{
			Summaries: &mock.SummaryService{
				FetchSummaryFn: func(_ context.Context, _ string) (*wikiread.Summary, error) {
					return nil, wikiread.Errorf(wikiread.ENOTFOUND, "page not found")
				},
			},
			Pages: &mock.PageService{
				FetchPageHTMLFn: func(_ context.Context, _ string) (string, error) {
					return "<p>ignored</p>", nil
				},
			},
			Parser: &mock.SectionParser{
				ParseSectionsFn: func(_ string) []wikiread.Section { return nil },
			},
		}

		_, err := a.FetchArticle(context.Background(), "Missing")

		assert.Equal(t, wikiread.ENOTFOUND, wikiread.ErrorCode(err))
	})

	t.Run("falls back to the extract when page HTML fails", func(t *testing.T) {
		t.Parallel()

		a := &fetch.Assembler{
			Summaries: okSummary("Go"),
			Pages: &mock.PageService{
				FetchPageHTMLFn: func(_ context.Context, _ string) (string, error) {
					return "", wikiread.Errorf(wikiread.EUNAVAILABLE, "no rendered text")
				},
			},
			Parser: &mock.SectionParser{
				ParseSectionsFn: func(_ string) []wikiread.Section {
					t.Fatal("parser must not run without HTML")
					return nil
				},
			},
		}

		article, err := a.FetchArticle(context.Background(), "Go")

		require.NoError(t, err)
		require.Len(t, article.Sections, 1)
		assert.True(t, article.Sections[0].IsIntro())
		assert.Equal(t, "A short extract.", article.Sections[0].Content)
	})

	t.Run("falls back to the extract when the parser yields nothing", func(t *testing.T) {
		t.Parallel()

		a := &fetch.Assembler{
			Summaries: okSummary("Go"),
			Pages: &mock.PageService{
				FetchPageHTMLFn: func(_ context.Context, _ string) (string, error) {
					return `<div class="mw-parser-output"></div>`, nil
				},
			},
			Parser: &mock.SectionParser{
				ParseSectionsFn: func(_ string) []wikiread.Section { return nil },
			},
		}

		article, err := a.FetchArticle(context.Background(), "Go")

		require.NoError(t, err)
		require.Len(t, article.Sections, 1)
		assert.Equal(t, "A short extract.", article.Sections[0].Content)
	})

	t.Run("passes sentinel sections through unchanged", func(t *testing.T) {
		t.Parallel()

		sentinel := wikiread.Section{Title: "Error", Content: "Could not parse article content."}
		a := &fetch.Assembler{
			Summaries: okSummary("Go"),
			Pages: &mock.PageService{
				FetchPageHTMLFn: func(_ context.Context, _ string) (string, error) {
					return "garbage", nil
				},
			},
			Parser: &mock.SectionParser{
				ParseSectionsFn: func(_ string) []wikiread.Section {
					return []wikiread.Section{sentinel}
				},
			},
		}

		article, err := a.FetchArticle(context.Background(), "Go")

		require.NoError(t, err)
		require.Len(t, article.Sections, 1)
		assert.Equal(t, sentinel, article.Sections[0])
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		t.Parallel()

		a := &fetch.Assembler{}

		_, err := a.FetchArticle(context.Background(), "")

		assert.Equal(t, wikiread.EINVALID, wikiread.ErrorCode(err))
	})
}
