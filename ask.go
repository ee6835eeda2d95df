package wikiread

import "context"

// Asker answers natural language questions about a saved article.
type Asker interface {
	// Ask answers a question using the saved article's text as context.
	// Returns ENOTFOUND if no article with the title has been saved.
	Ask(ctx context.Context, title, question string) (string, error)
}
