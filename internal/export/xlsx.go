package export

import (
	"io"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"

	"github.com/telespotter/telespotter/internal/model"
)

// XLSX writes the session as a workbook with summary, pattern, and raw
// result sheets.
func XLSX(w io.Writer, state model.SessionState) error {
	f := xlsx.NewFile()

	if err := addSummarySheet(f, state); err != nil {
		return err
	}
	if err := addPatternSheet(f, state.Results.Patterns); err != nil {
		return err
	}
	if err := addResultSheets(f, state.Results); err != nil {
		return err
	}

	return eris.Wrap(f.Write(w), "export: write xlsx")
}

func addSummarySheet(f *xlsx.File, state model.SessionState) error {
	sheet, err := f.AddSheet("Summary")
	if err != nil {
		return eris.Wrap(err, "export: add summary sheet")
	}

	info := state.Results.PhoneInfo
	addPair := func(label, value string) {
		row := sheet.AddRow()
		row.AddCell().Value = label
		row.AddCell().Value = value
	}
	addPair("Phone Number", state.PhoneNumber)
	addPair("Search Date", state.StartTime.Format("2006-01-02 15:04:05"))
	addPair("Status", string(state.Phase))
	addPair("Country", orUnknown(info.Country))
	addPair("Location", orUnknown(info.Location))
	addPair("Line Type", orUnknown(info.LineType))
	addPair("Carrier", orUnknown(info.Carrier))

	sum := state.Results.Summary
	addCount := func(label string, n int) {
		row := sheet.AddRow()
		row.AddCell().Value = label
		row.AddCell().SetInt(n)
	}
	sheet.AddRow()
	addCount("Names Found", sum.TotalNames)
	addCount("Emails Found", sum.TotalEmails)
	addCount("Addresses Found", sum.TotalAddresses)
	addCount("Usernames Found", sum.TotalUsernames)
	addCount("Social Profiles Found", sum.TotalSocialProfiles)
	addCount("Associated Phones Found", sum.TotalAssociatedPhones)
	return nil
}

func addPatternSheet(f *xlsx.File, p model.Patterns) error {
	sheet, err := f.AddSheet("Patterns")
	if err != nil {
		return eris.Wrap(err, "export: add patterns sheet")
	}

	header := sheet.AddRow()
	for _, h := range csvHeader {
		header.AddCell().Value = h
	}
	for _, row := range patternRows(p) {
		r := sheet.AddRow()
		r.AddCell().Value = row[0]
		r.AddCell().Value = row[1]
		r.AddCell().Value = row[2]
		r.AddCell().Value = row[3]
	}
	return nil
}

func addResultSheets(f *xlsx.File, res model.Results) error {
	engines, err := f.AddSheet("Search Results")
	if err != nil {
		return eris.Wrap(err, "export: add search results sheet")
	}
	header := engines.AddRow()
	for _, h := range []string{"Source", "Title", "URL", "Snippet", "Relevance"} {
		header.AddCell().Value = h
	}
	for _, r := range res.Engines {
		row := engines.AddRow()
		row.AddCell().Value = r.Source
		row.AddCell().Value = r.Title
		row.AddCell().Value = r.URL
		row.AddCell().Value = r.Snippet
		row.AddCell().SetInt(r.Relevance)
	}

	people, err := f.AddSheet("People Records")
	if err != nil {
		return eris.Wrap(err, "export: add people records sheet")
	}
	header = people.AddRow()
	for _, h := range []string{"Source", "Name", "Address", "City", "State", "Phone", "Confidence"} {
		header.AddCell().Value = h
	}
	for _, p := range res.People {
		row := people.AddRow()
		row.AddCell().Value = p.Source
		row.AddCell().Value = p.Name
		row.AddCell().Value = p.Address
		row.AddCell().Value = p.City
		row.AddCell().Value = p.State
		row.AddCell().Value = p.Phone
		row.AddCell().SetInt(p.Confidence)
	}
	return nil
}
