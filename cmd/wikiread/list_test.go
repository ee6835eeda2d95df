package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mwierzba/wikiread"
	main "github.com/mwierzba/wikiread/cmd/wikiread"
	"github.com/mwierzba/wikiread/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists saved articles with date, title, and URL", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ wikiread.ArticleFilter) ([]*wikiread.Article, error) {
				return []*wikiread.Article{
					{
						Title:     "Warsaw",
						SourceURL: "https://en.wikipedia.org/wiki/Warsaw",
						FetchedAt: time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC),
					},
					{
						Title:     "Kraków",
						SourceURL: "https://en.wikipedia.org/wiki/Krak%C3%B3w",
						FetchedAt: time.Date(2026, 2, 9, 8, 0, 0, 0, time.UTC),
					},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Articles: articles,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)

		output := stdout.String()
		assert.Contains(t, output, "2026-02-10")
		assert.Contains(t, output, "Warsaw")
		assert.Contains(t, output, "Kraków")
		assert.Contains(t, output, "https://en.wikipedia.org/wiki/Warsaw")
	})

	t.Run("shows helpful message when no articles saved", func(t *testing.T) {
		t.Parallel()

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ wikiread.ArticleFilter) ([]*wikiread.Article, error) {
				return []*wikiread.Article{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Articles: articles,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No saved articles")
	})

	t.Run("returns error when FindArticles fails", func(t *testing.T) {
		t.Parallel()

		dbErr := errors.New("database connection failed")

		articles := &mock.ArticleService{
			FindArticlesFn: func(_ context.Context, _ wikiread.ArticleFilter) ([]*wikiread.Article, error) {
				return nil, dbErr
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		deps := &main.Dependencies{
			Ctx:      context.Background(),
			Stdout:   stdout,
			Stderr:   stderr,
			Articles: articles,
		}

		cmd := &main.ListCmd{}

		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, dbErr, err)
		assert.Contains(t, stderr.String(), "error:")
	})
}
