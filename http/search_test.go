package http_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/mwierzba/wikiread"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const opensearchXML = `<?xml version="1.0"?>
<SearchSuggestion version="2.0" xmlns="http://opensearch.org/searchsuggest2">
  <Query>go</Query>
  <Section>
    <Item>
      <Text>Go (programming language)</Text>
      <Description>Programming language by Google</Description>
      <Url>https://en.wikipedia.org/wiki/Go_(programming_language)</Url>
    </Item>
    <Item>
      <Text>Go (game)</Text>
      <Url>https://en.wikipedia.org/wiki/Go_(game)</Url>
    </Item>
  </Section>
</SearchSuggestion>`

func TestClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("parses opensearch items", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "opensearch", r.URL.Query().Get("action"))
			assert.Equal(t, "go", r.URL.Query().Get("search"))
			assert.Equal(t, "xml", r.URL.Query().Get("format"))

			w.Write([]byte(opensearchXML))
		})

		results, err := client.Search(context.Background(), "go", 5)

		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Go (programming language)", results[0].Title)
		assert.Equal(t, "Programming language by Google", results[0].Description)
		assert.Equal(t, "https://en.wikipedia.org/wiki/Go_(programming_language)", results[0].URL)
		assert.Equal(t, "Go (game)", results[1].Title)
		assert.Empty(t, results[1].Description)
	})

	t.Run("returns an empty slice when nothing matches", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<?xml version="1.0"?><SearchSuggestion><Query>zzz</Query><Section/></SearchSuggestion>`))
		})

		results, err := client.Search(context.Background(), "zzz", 5)

		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("rejects an empty query", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})

		_, err := client.Search(context.Background(), "", 5)

		assert.Equal(t, wikiread.EINVALID, wikiread.ErrorCode(err))
	})
}
