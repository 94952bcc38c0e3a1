package source

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/telespotter/telespotter/internal/model"
)

func TestBuildQuery(t *testing.T) {
	q := BuildQuery("+1 (415) 555-1234")
	assert.Equal(t, `"+1 (415) 555-1234" OR "415-555-1234" OR "(415) 555-1234"`, q)
}

func TestBuildQueryShortNumber(t *testing.T) {
	assert.Equal(t, `"5551234"`, BuildQuery("5551234"))
}

func TestLastTenDigits(t *testing.T) {
	assert.Equal(t, "4155551234", lastTenDigits("+1 (415) 555-1234"))
	assert.Equal(t, "5551234", lastTenDigits("555-1234"))
}

func TestDisplayFormat(t *testing.T) {
	assert.Equal(t, "(415) 555-1234", displayFormat("+14155551234"))
	assert.Equal(t, "555-1234", displayFormat("555-1234"))
}

func TestScoreRelevance(t *testing.T) {
	phone := "(415) 555-1234"

	exact := model.EngineResult{Title: "Lookup 415-555-1234", Snippet: "owner details"}
	// +50 exact digits, +10 area code, +5 "owner", +5 "name"? no
	assert.Equal(t, 65, scoreRelevance(exact, phone))

	bare := model.EngineResult{Title: "unrelated page", Snippet: "nothing here"}
	assert.Equal(t, 0, scoreRelevance(bare, phone))

	people := model.EngineResult{
		Title:   "People result",
		Snippet: "records",
		URL:     "https://www.whitepages.com/phone/1-415-555-1234",
	}
	assert.Equal(t, 20, scoreRelevance(people, phone))
}

func TestScoreRelevanceCapped(t *testing.T) {
	phone := "(415) 555-1234"
	loaded := model.EngineResult{
		Title:   "415-555-1234 owner name address location carrier caller spam scam review report",
		Snippet: "who called reverse lookup phone lookup belongs to registered to",
		URL:     "https://whitepages.com/x https://spokeo.com/y",
	}
	assert.Equal(t, 100, scoreRelevance(loaded, phone))
}
