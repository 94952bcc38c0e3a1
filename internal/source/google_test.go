package source

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telespotter/telespotter/internal/model"
)

func testPhoneInfo() model.PhoneInfo {
	return model.PhoneInfo{
		Valid:          true,
		CountryCode:    "1",
		NationalNumber: "4155551234",
		Formatted:      "+1 (415) 555-1234",
	}
}

func TestGoogleParse(t *testing.T) {
	g := NewGoogle(NewClient(time.Second))

	body := `<html><body>
		<div class="g">
			<a href="https://example.net/result"><h3>Who called from 415-555-1234</h3></a>
			<div class="VwiC3b">Reported as telemarketer, owner unknown</div>
		</div>
		<div class="g">
			<a href="https://example.net/other"><h3>Unrelated hit</h3></a>
		</div>
	</body></html>`

	results := g.parse(body, "+1 (415) 555-1234")
	require.Len(t, results, 2)
	assert.Equal(t, "Who called from 415-555-1234", results[0].Title)
	assert.Equal(t, "https://example.net/result", results[0].URL)
	assert.Equal(t, "Reported as telemarketer, owner unknown", results[0].Snippet)
	assert.Equal(t, "google", results[0].Source)
	assert.Greater(t, results[0].Relevance, results[1].Relevance)
}

func TestGoogleDegradesToPreviewOnFetchFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewGoogle(NewClient(time.Second))
	g.baseURL = srv.URL

	res, err := g.Query(context.Background(), testPhoneInfo(), model.DefaultOptions())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Len(t, res.Engine, 5)
	for _, r := range res.Engine {
		assert.Equal(t, "google", r.Source)
		assert.Contains(t, r.Title, "(415) 555-1234")
	}
}

func TestGoogleEmptyParseFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>no results markup</p></body></html>"))
	}))
	defer srv.Close()

	g := NewGoogle(NewClient(time.Second))
	g.baseURL = srv.URL

	res, err := g.Query(context.Background(), testPhoneInfo(), model.DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, res.Engine, 5)
}

func TestGoogleRespectsMaxResults(t *testing.T) {
	page := `<html><body>
		<div class="g"><a href="https://a.example"><h3>one</h3></a></div>
		<div class="g"><a href="https://b.example"><h3>two</h3></a></div>
		<div class="g"><a href="https://c.example"><h3>three</h3></a></div>
	</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	g := NewGoogle(NewClient(time.Second))
	g.baseURL = srv.URL

	opts := model.DefaultOptions()
	opts.MaxResults = 2

	res, err := g.Query(context.Background(), testPhoneInfo(), opts)
	require.NoError(t, err)
	assert.Len(t, res.Engine, 2)
}
