package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/telespotter/telespotter/internal/model"
)

const (
	ruleHeavy = "============================================================"
	ruleLight = "----------------------------------------"
)

// Text writes the session as a plain-text investigation report.
func Text(w io.Writer, state model.SessionState) error {
	lines := []string{
		ruleHeavy,
		"TELESPOTTER OSINT REPORT",
		ruleHeavy,
		"Phone Number: " + state.PhoneNumber,
		"Search Date: " + state.StartTime.Format("2006-01-02 15:04:05"),
		ruleHeavy,
		"",
		"PHONE INFORMATION",
		ruleLight,
	}

	info := state.Results.PhoneInfo
	lines = append(lines,
		"Country: "+orUnknown(info.Country),
		"Carrier: "+orUnknown(info.Carrier),
		"Line Type: "+orUnknown(info.LineType),
		"Location: "+orUnknown(info.Location),
	)

	p := state.Results.Patterns

	lines = append(lines, "", "EXTRACTED NAMES", ruleLight)
	for _, r := range p.Names {
		lines = append(lines, fmt.Sprintf("  - %s (confidence: %d%%)", r.Value, r.Confidence))
	}

	lines = append(lines, "", "EXTRACTED EMAILS", ruleLight)
	for _, r := range p.Emails {
		lines = append(lines, "  - "+r.Value)
	}

	lines = append(lines, "", "EXTRACTED ADDRESSES", ruleLight)
	for _, r := range p.Addresses {
		lines = append(lines, "  - "+r.Value)
	}

	lines = append(lines, "", "EXTRACTED USERNAMES", ruleLight)
	for _, r := range p.Usernames {
		lines = append(lines, "  - "+r.Value)
	}

	lines = append(lines, "", "SOCIAL PROFILES", ruleLight)
	for _, r := range p.SocialProfiles {
		lines = append(lines, "  - "+r.Platform+": "+r.URL)
	}

	lines = append(lines, "", ruleHeavy, "END OF REPORT", ruleHeavy)

	_, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return eris.Wrap(err, "export: write text report")
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}
