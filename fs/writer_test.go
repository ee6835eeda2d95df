package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mwierzba/wikiread"
	"github.com/mwierzba/wikiread/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTitleToFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  string
	}{
		{
			name:  "simple title",
			title: "Warsaw",
			want:  "warsaw.md",
		},
		{
			name:  "spaces become dashes",
			title: "History of Poland",
			want:  "history-of-poland.md",
		},
		{
			name:  "parenthetical disambiguation",
			title: "Go (programming language)",
			want:  "go-programming-language.md",
		},
		{
			name:  "punctuation collapses to single dash",
			title: "AC/DC: Back in Black",
			want:  "ac-dc-back-in-black.md",
		},
		{
			name:  "unicode letters preserved",
			title: "Kraków",
			want:  "kraków.md",
		},
		{
			name:  "empty title falls back",
			title: "???",
			want:  "article.md",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, fs.TitleToFilename(tt.title))
		})
	}
}

func TestFormatArticle(t *testing.T) {
	t.Parallel()

	article := &wikiread.Article{
		Title:     "Warsaw",
		SourceURL: "https://en.wikipedia.org/wiki/Warsaw",
		FetchedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	got := fs.FormatArticle(article, "# Warsaw\n\nThe capital of Poland.")

	assert.Contains(t, got, "---\n")
	assert.Contains(t, got, "source: https://en.wikipedia.org/wiki/Warsaw\n")
	assert.Contains(t, got, "title: Warsaw\n")
	assert.Contains(t, got, "fetched: 2026-03-14\n")
	assert.Contains(t, got, "The capital of Poland.")
	assert.True(t, got[len(got)-1] == '\n')
}

func TestWriter_WriteArticle(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown file named after title", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		article := &wikiread.Article{
			Title:     "History of Poland",
			SourceURL: "https://en.wikipedia.org/wiki/History_of_Poland",
			FetchedAt: time.Now().UTC(),
		}

		err := w.WriteArticle(context.Background(), article, "Some content.")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "history-of-poland.md"))
		require.NoError(t, err)
		assert.Contains(t, string(data), "title: History of Poland")
		assert.Contains(t, string(data), "Some content.")
	})

	t.Run("creates base directory if missing", func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(t.TempDir(), "exports", "wiki")
		w := fs.NewWriter(dir)

		article := &wikiread.Article{
			Title:     "Warsaw",
			SourceURL: "https://en.wikipedia.org/wiki/Warsaw",
			FetchedAt: time.Now().UTC(),
		}

		err := w.WriteArticle(context.Background(), article, "Body.")
		require.NoError(t, err)

		_, err = os.Stat(filepath.Join(dir, "warsaw.md"))
		require.NoError(t, err)
	})

	t.Run("rejects invalid article", func(t *testing.T) {
		t.Parallel()

		w := fs.NewWriter(t.TempDir())

		err := w.WriteArticle(context.Background(), &wikiread.Article{}, "Body.")
		require.Error(t, err)
		assert.Equal(t, wikiread.EINVALID, wikiread.ErrorCode(err))
	})
}
