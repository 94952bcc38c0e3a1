package source

import (
	"context"
	"fmt"

	"github.com/telespotter/telespotter/internal/model"
)

// BeenVerified is a paid service with no scrapeable preview, so this
// adapter always returns the canned pointer record.
type BeenVerified struct{}

// NewBeenVerified creates the BeenVerified people adapter.
func NewBeenVerified() *BeenVerified {
	return &BeenVerified{}
}

func (b *BeenVerified) Name() string       { return "beenverified" }
func (b *BeenVerified) Category() Category { return People }

// Query returns the subscription pointer record.
func (b *BeenVerified) Query(_ context.Context, number model.PhoneInfo, _ model.Options) (*QueryResult, error) {
	phone := number.Formatted
	digits := lastTenDigits(phone)

	record := newPersonRecord(b.Name())
	record.Name = "Report Available"
	record.Address = "Full report includes address history"
	record.Phone = phone
	record.Confidence = 45
	record.URL = fmt.Sprintf("https://www.beenverified.com/phone/%s", digits)
	record.Note = "BeenVerified subscription required for full access"

	return &QueryResult{People: []model.PersonRecord{record}}, nil
}
