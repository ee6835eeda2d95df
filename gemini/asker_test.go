package gemini_test

import (
	"context"
	"testing"

	"github.com/mwierzba/wikiread"
	"github.com/mwierzba/wikiread/gemini"
	"github.com/mwierzba/wikiread/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsker_Ask_ReturnsErrorWhenArticleMissing(t *testing.T) {
	t.Parallel()

	articles := &mock.ArticleService{
		FindArticleByTitleFn: func(context.Context, string) (*wikiread.Article, error) {
			return nil, wikiread.Errorf(wikiread.ENOTFOUND, "article %q not saved", "Warsaw")
		},
	}

	asker := gemini.NewAsker(nil, articles) // nil client ok for this test

	_, err := asker.Ask(context.Background(), "Warsaw", "when was it founded?")

	require.Error(t, err)
	assert.Equal(t, wikiread.ENOTFOUND, wikiread.ErrorCode(err))
}

func TestAsker_Ask_PropagatesArticleServiceError(t *testing.T) {
	t.Parallel()

	expectedErr := wikiread.Errorf(wikiread.EINTERNAL, "database error")
	articles := &mock.ArticleService{
		FindArticleByTitleFn: func(context.Context, string) (*wikiread.Article, error) {
			return nil, expectedErr
		},
	}

	asker := gemini.NewAsker(nil, articles)

	_, err := asker.Ask(context.Background(), "Warsaw", "when was it founded?")

	require.Error(t, err)
	assert.Equal(t, wikiread.EINTERNAL, wikiread.ErrorCode(err))
	assert.Contains(t, wikiread.ErrorMessage(err), "database error")
}

func TestAsker_Ask_ReturnsErrorWhenTitleEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, nil)

	_, err := asker.Ask(context.Background(), "", "what is this?")

	require.Error(t, err)
	assert.Equal(t, wikiread.EINVALID, wikiread.ErrorCode(err))
	assert.Contains(t, wikiread.ErrorMessage(err), "title required")
}

func TestAsker_Ask_ReturnsErrorWhenQuestionEmpty(t *testing.T) {
	t.Parallel()

	asker := gemini.NewAsker(nil, nil)

	_, err := asker.Ask(context.Background(), "Warsaw", "")

	require.Error(t, err)
	assert.Equal(t, wikiread.EINVALID, wikiread.ErrorCode(err))
	assert.Contains(t, wikiread.ErrorMessage(err), "question required")
}

func TestBuildConfig_SetsSystemInstruction(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.SystemInstruction)
	require.Len(t, config.SystemInstruction.Parts, 1)
	assert.Contains(t, config.SystemInstruction.Parts[0].Text, "encyclopedia article")
}

func TestBuildConfig_SetsTemperature(t *testing.T) {
	t.Parallel()

	config := gemini.BuildConfig()

	require.NotNil(t, config.Temperature)
	assert.InDelta(t, 0.4, *config.Temperature, 0.001)
}

func TestBuildUserPrompt_ContainsArticleText(t *testing.T) {
	t.Parallel()

	article := &wikiread.Article{
		Title:     "Warsaw",
		SourceURL: "https://en.wikipedia.org/wiki/Warsaw",
		Sections: []wikiread.Section{
			{Content: "Warsaw is the capital of Poland."},
			{Title: "History", Level: 2, Content: "The city was founded in the 13th century."},
		},
	}

	prompt := gemini.BuildUserPrompt(article, "When was Warsaw founded?")

	assert.Contains(t, prompt, "<article>")
	assert.Contains(t, prompt, "<title>Warsaw</title>")
	assert.Contains(t, prompt, "https://en.wikipedia.org/wiki/Warsaw")
	assert.Contains(t, prompt, "Warsaw is the capital of Poland.")
	assert.Contains(t, prompt, "founded in the 13th century")
	assert.Contains(t, prompt, "</article>")
	assert.Contains(t, prompt, "Question: When was Warsaw founded?")
}
