// Package export renders a finished search session as JSON, CSV, a
// plain-text report, or an XLSX workbook.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/rotisserie/eris"

	"github.com/telespotter/telespotter/internal/model"
)

// Format identifies an export encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatText Format = "txt"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a format query parameter. Empty defaults to JSON.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "json":
		return FormatJSON, nil
	case "csv":
		return FormatCSV, nil
	case "txt":
		return FormatText, nil
	case "xlsx":
		return FormatXLSX, nil
	default:
		return "", eris.Errorf("export: invalid format %q (valid: json, csv, txt, xlsx)", s)
	}
}

// ContentType returns the MIME type for a format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv"
	case FormatText:
		return "text/plain"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Filename returns the attachment filename for a session export.
func (f Format) Filename(sessionID string) string {
	return "telespotter_" + sessionID + "." + string(f)
}

// Write renders the session in the requested format.
func Write(w io.Writer, f Format, state model.SessionState) error {
	switch f {
	case FormatJSON:
		return JSON(w, state)
	case FormatCSV:
		return CSV(w, state)
	case FormatText:
		return Text(w, state)
	case FormatXLSX:
		return XLSX(w, state)
	default:
		return eris.Errorf("export: invalid format %q", string(f))
	}
}

// JSON writes the full session state as indented JSON.
func JSON(w io.Writer, state model.SessionState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return eris.Wrap(enc.Encode(state), "export: encode json")
}

// csvHeader matches the columns of patternRows.
var csvHeader = []string{"Type", "Value", "Source", "Confidence"}

// CSV writes the extracted patterns as Type,Value,Source,Confidence rows.
func CSV(w io.Writer, state model.SessionState) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, row := range patternRows(state.Results.Patterns) {
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}

	cw.Flush()
	return eris.Wrap(cw.Error(), "export: flush csv")
}

func patternRows(p model.Patterns) [][]string {
	var rows [][]string
	add := func(kind string, recs []model.Record) {
		for _, r := range recs {
			rows = append(rows, []string{kind, r.Value, r.Source, strconv.Itoa(r.Confidence)})
		}
	}
	add("Name", p.Names)
	add("Email", p.Emails)
	add("Address", p.Addresses)
	add("Username", p.Usernames)
	return rows
}
