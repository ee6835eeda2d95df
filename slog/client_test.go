package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/mwierzba/wikiread"
	"github.com/mwierzba/wikiread/mock"
	wikislog "github.com/mwierzba/wikiread/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func TestPageService_FetchPageHTML(t *testing.T) {
	t.Parallel()

	t.Run("logs successful fetches and passes the result through", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		pages := &mock.PageService{
			FetchPageHTMLFn: func(_ context.Context, _ string) (string, error) {
				return "<p>hi</p>", nil
			},
		}

		svc := wikislog.NewPageService(pages, logger)

		html, err := svc.FetchPageHTML(context.Background(), "Go")

		require.NoError(t, err)
		assert.Equal(t, "<p>hi</p>", html)
		assert.Contains(t, buf.String(), "page HTML fetched")
		assert.Contains(t, buf.String(), "title=Go")
	})

	t.Run("logs failures at warn level and propagates the error", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		pages := &mock.PageService{
			FetchPageHTMLFn: func(_ context.Context, _ string) (string, error) {
				return "", wikiread.Errorf(wikiread.EUNAVAILABLE, "no rendered text")
			},
		}

		svc := wikislog.NewPageService(pages, logger)

		_, err := svc.FetchPageHTML(context.Background(), "Go")

		assert.Equal(t, wikiread.EUNAVAILABLE, wikiread.ErrorCode(err))
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "page HTML unavailable")
	})
}

func TestSectionParser_ParseSections(t *testing.T) {
	t.Parallel()

	t.Run("logs section counts", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		parser := &mock.SectionParser{
			ParseSectionsFn: func(_ string) []wikiread.Section {
				return []wikiread.Section{{Content: "intro"}, {Title: "History", Level: 2}}
			},
		}

		svc := wikislog.NewSectionParser(parser, logger)

		sections := svc.ParseSections("<div></div>")

		assert.Len(t, sections, 2)
		assert.Contains(t, buf.String(), "sections=2")
		assert.Contains(t, buf.String(), "sentinel=false")
	})

	t.Run("flags sentinel results", func(t *testing.T) {
		t.Parallel()

		logger, buf := newTestLogger()
		parser := &mock.SectionParser{
			ParseSectionsFn: func(_ string) []wikiread.Section {
				return []wikiread.Section{{Title: "Error", Content: "Could not parse article content."}}
			},
		}

		svc := wikislog.NewSectionParser(parser, logger)

		svc.ParseSections("garbage")

		assert.Contains(t, buf.String(), "sentinel=true")
	})
}
