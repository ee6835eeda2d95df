// Package gemini answers questions about saved articles using Google Gemini.
package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwierzba/wikiread"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Asker implements wikiread.Asker at compile time.
var _ wikiread.Asker = (*Asker)(nil)

// Asker implements wikiread.Asker using Google Gemini.
type Asker struct {
	client   *genai.Client
	articles wikiread.ArticleService
}

// NewAsker creates a new Asker.
func NewAsker(client *genai.Client, articles wikiread.ArticleService) *Asker {
	return &Asker{client: client, articles: articles}
}

// Ask answers a natural language question about a saved article.
func (a *Asker) Ask(ctx context.Context, title, question string) (string, error) {
	if title == "" {
		return "", wikiread.Errorf(wikiread.EINVALID, "article title required")
	}
	if question == "" {
		return "", wikiread.Errorf(wikiread.EINVALID, "question required")
	}

	article, err := a.articles.FindArticleByTitle(ctx, title)
	if err != nil {
		return "", err
	}

	prompt := BuildUserPrompt(article, question)
	config := BuildConfig()

	result, err := a.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", wikiread.Errorf(wikiread.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a helpful assistant answering questions about an encyclopedia article. Answer based only on the article provided. If the answer is not in the article, say so.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildUserPrompt builds the user prompt containing the article text and
// the question.
func BuildUserPrompt(article *wikiread.Article, question string) string {
	var sb strings.Builder
	sb.WriteString("<article>\n")
	fmt.Fprintf(&sb, "<title>%s</title>\n", article.Title)
	fmt.Fprintf(&sb, "<source>%s</source>\n", article.SourceURL)
	fmt.Fprintf(&sb, "<content>%s</content>\n", wikiread.FormatSections(article.Sections))
	sb.WriteString("</article>\n\n")
	fmt.Fprintf(&sb, "Question: %s", question)
	return sb.String()
}
