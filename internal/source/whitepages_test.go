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

func TestWhitepagesParse(t *testing.T) {
	page := `<html><body>
		<div class="person-card">
			<a class="name" href="/person/john-smith">John Smith</a>
			<span class="age">Age 42</span>
			<span class="address">123 Main St, Springfield, IL</span>
		</div>
		<div class="result-card">
			<span class="name">Jane Doe</span>
		</div>
		<div class="person-card">
			<span class="age">Age 99</span>
		</div>
	</body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer srv.Close()

	wp := NewWhitepages(NewClient(time.Second))
	wp.baseURL = srv.URL

	res, err := wp.Query(context.Background(), testPhoneInfo(), model.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.People, 2)

	first := res.People[0]
	assert.Equal(t, "John Smith", first.Name)
	require.NotNil(t, first.Age)
	assert.Equal(t, 42, *first.Age)
	assert.Equal(t, "123 Main St, Springfield, IL", first.Address)
	assert.Equal(t, srv.URL+"/person/john-smith", first.URL)
	assert.Equal(t, 75, first.Confidence)
	assert.Equal(t, "whitepages", first.Source)

	second := res.People[1]
	assert.Equal(t, "Jane Doe", second.Name)
	assert.Nil(t, second.Age)
}

func TestWhitepagesDegradesToPreviewOnBlock(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	wp := NewWhitepages(NewClient(time.Second))
	wp.baseURL = srv.URL

	res, err := wp.Query(context.Background(), testPhoneInfo(), model.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, res.People, 1)

	record := res.People[0]
	assert.Equal(t, "Potential Owner Found", record.Name)
	assert.Equal(t, "+1 (415) 555-1234", record.Phone)
	assert.Equal(t, 60, record.Confidence)
	assert.Contains(t, record.URL, "4155551234")
	assert.NotNil(t, record.Relatives)
	assert.NotNil(t, record.AssociatedPhones)
}
