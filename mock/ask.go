package mock

import (
	"context"

	"github.com/mwierzba/wikiread"
)

var _ wikiread.Asker = (*Asker)(nil)

// Asker is a mock implementation of wikiread.Asker.
type Asker struct {
	AskFn func(ctx context.Context, title, question string) (string, error)
}

func (a *Asker) Ask(ctx context.Context, title, question string) (string, error) {
	return a.AskFn(ctx, title, question)
}
