package http

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/beevik/etree"
	"github.com/mwierzba/wikiread"
)

// Search queries the opensearch endpoint for title suggestions. The
// endpoint's XML form carries title, description and URL per item.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]wikiread.SearchResult, error) {
	if query == "" {
		return nil, wikiread.Errorf(wikiread.EINVALID, "search query required")
	}
	if limit <= 0 {
		limit = 10
	}

	q := url.Values{}
	q.Set("action", "opensearch")
	q.Set("search", query)
	q.Set("limit", strconv.Itoa(limit))
	q.Set("format", "xml")
	endpoint := c.baseURL + "/w/api.php?" + q.Encode()

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("decode opensearch response: %w", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, wikiread.Errorf(wikiread.EINTERNAL, "empty opensearch response")
	}

	// Results live under SearchSuggestion/Section/Item.
	results := []wikiread.SearchResult{}
	for _, item := range root.FindElements("//Item") {
		var r wikiread.SearchResult
		if el := item.FindElement("Text"); el != nil {
			r.Title = el.Text()
		}
		if el := item.FindElement("Description"); el != nil {
			r.Description = el.Text()
		}
		if el := item.FindElement("Url"); el != nil {
			r.URL = el.Text()
		}
		if r.Title == "" {
			continue
		}
		results = append(results, r)
	}
	return results, nil
}
