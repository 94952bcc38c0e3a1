package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/telespotter/telespotter/internal/model"
)

func sampleState() model.SessionState {
	return model.SessionState{
		ID:          "search_abc",
		PhoneNumber: "+14155551234",
		Options:     model.DefaultOptions(),
		Phase:       model.PhaseComplete,
		Progress:    100,
		StartTime:   time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Errors:      []string{},
		Results: model.Results{
			PhoneInfo: model.PhoneInfo{
				Valid:     true,
				Country:   "United States",
				Location:  "California",
				LineType:  "Unknown (Landline/Mobile/VoIP)",
				Formatted: "+1 (415) 555-1234",
			},
			Engines: []model.EngineResult{
				{Title: "Who called", URL: "https://example.net/a", Snippet: "owner john", Source: "google", Relevance: 70},
			},
			People: []model.PersonRecord{
				{Name: "John Smith", Address: "123 Main St", City: "Springfield", State: "IL", Source: "whitepages", Confidence: 75},
			},
			Patterns: model.Patterns{
				Names: []model.Record{
					{Kind: model.KindName, Value: "John Smith", Source: "labeled_match", Confidence: 85},
				},
				Emails: []model.Record{
					{Kind: model.KindEmail, Value: "jane@gmail.com", Source: "regex_match", Confidence: 75, Domain: "gmail.com"},
				},
				Addresses: []model.Record{},
				Usernames: []model.Record{
					{Kind: model.KindUsername, Value: "jsmith42", Source: "mention", Confidence: 70},
				},
				SocialProfiles: []model.Record{
					{Kind: model.KindSocialProfile, Platform: "facebook", URL: "https://facebook.com/jsmith", Confidence: 85},
				},
			},
			Summary: model.Summary{TotalNames: 1, TotalEmails: 1, TotalUsernames: 1, TotalSocialProfiles: 1},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":     FormatJSON,
		"json": FormatJSON,
		"csv":  FormatCSV,
		"txt":  FormatText,
		"xlsx": FormatXLSX,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "pdf"`)
}

func TestFilenameAndContentType(t *testing.T) {
	assert.Equal(t, "telespotter_search_abc.csv", FormatCSV.Filename("search_abc"))
	assert.Equal(t, "telespotter_x.json", FormatJSON.Filename("x"))
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, "text/plain", FormatText.ContentType())
	assert.Equal(t, "application/json", FormatJSON.ContentType())
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", FormatXLSX.ContentType())
}

func TestJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, sampleState()))

	assert.True(t, strings.HasPrefix(buf.String(), "{\n  "))

	var decoded model.SessionState
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "search_abc", decoded.ID)
	assert.Equal(t, model.PhaseComplete, decoded.Phase)
	assert.Equal(t, "John Smith", decoded.Results.Patterns.Names[0].Value)
}

func TestCSVRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV(&buf, sampleState()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Type,Value,Source,Confidence", lines[0])
	assert.Equal(t, "Name,John Smith,labeled_match,85", lines[1])
	assert.Equal(t, "Email,jane@gmail.com,regex_match,75", lines[2])
	assert.Equal(t, "Username,jsmith42,mention,70", lines[3])
}

func TestTextReport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Text(&buf, sampleState()))
	out := buf.String()

	assert.Contains(t, out, "TELESPOTTER OSINT REPORT")
	assert.Contains(t, out, "Phone Number: +14155551234")
	assert.Contains(t, out, "Search Date: 2026-03-14 09:26:53")
	assert.Contains(t, out, "Country: United States")
	assert.Contains(t, out, "Carrier: Unknown")
	assert.Contains(t, out, "  - John Smith (confidence: 85%)")
	assert.Contains(t, out, "  - jane@gmail.com")
	assert.Contains(t, out, "  - facebook: https://facebook.com/jsmith")
	assert.Contains(t, out, "END OF REPORT")
	assert.True(t, strings.HasSuffix(out, ruleHeavy+"\n"))
}

func TestXLSXSheets(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSX(&buf, sampleState()))

	f, err := xlsx.OpenBinary(buf.Bytes())
	require.NoError(t, err)

	var names []string
	for _, s := range f.Sheets {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Summary", "Patterns", "Search Results", "People Records"}, names)

	patterns := f.Sheets[1]
	require.NotEmpty(t, patterns.Rows)
	header := patterns.Rows[0]
	require.Len(t, header.Cells, 4)
	assert.Equal(t, "Type", header.Cells[0].String())
	assert.Equal(t, "Name", patterns.Rows[1].Cells[0].String())
	assert.Equal(t, "John Smith", patterns.Rows[1].Cells[1].String())
}

func TestWriteDispatch(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatText, sampleState()))
	assert.Contains(t, buf.String(), "END OF REPORT")

	err := Write(&buf, Format("pdf"), sampleState())
	require.Error(t, err)
}
