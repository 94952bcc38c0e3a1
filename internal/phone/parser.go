package phone

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/telespotter/telespotter/internal/model"
	"github.com/telespotter/telespotter/internal/refdata"
)

var nonDigitRe = regexp.MustCompile(`[^\d]`)

// Area codes commonly assigned to VoIP providers. Advisory only; this is
// not a carrier classification.
var voipAreaCodes = map[string]bool{
	"424": true, "442": true, "559": true,
	"657": true, "669": true, "747": true,
}

// Parser canonicalizes raw phone-number strings. Parse never fails:
// unusable input yields Valid=false with a reason in Error.
type Parser struct {
	countryCodes map[string]refdata.CountryInfo
	usAreaCodes  map[string]string
}

// NewParser creates a Parser over the compiled-in reference tables.
func NewParser() *Parser {
	return &Parser{
		countryCodes: refdata.CountryCodes,
		usAreaCodes:  refdata.USAreaCodes,
	}
}

// Clean strips all non-digit characters, preserving a leading +.
func (p *Parser) Clean(raw string) string {
	hasPlus := strings.HasPrefix(strings.TrimSpace(raw), "+")
	digits := nonDigitRe.ReplaceAllString(raw, "")
	if hasPlus {
		return "+" + digits
	}
	return digits
}

// Parse canonicalizes a raw phone number.
func (p *Parser) Parse(raw string) model.PhoneInfo {
	cleaned := p.Clean(raw)
	digits := strings.TrimPrefix(cleaned, "+")

	info := model.PhoneInfo{
		Original:        raw,
		Cleaned:         cleaned,
		DigitsOnly:      digits,
		Country:         "Unknown",
		LineType:        "Unknown",
		Carrier:         "Unknown",
		PossibleFormats: []string{},
	}

	if len(digits) < 7 {
		info.Error = "Phone number too short"
		return info
	}
	if len(digits) > 15 {
		info.Error = "Phone number too long"
		return info
	}

	if p.identifyCountry(&info, digits, strings.HasPrefix(cleaned, "+")) {
		info.Valid = true
		if info.CountryCode == "1" {
			p.parseNANP(&info)
		}
	} else {
		info.Error = "Could not identify country"
	}

	info.PossibleFormats = generateFormats(digits, info.CountryCode)
	info.LineType = guessLineType(digits)

	return info
}

// identifyCountry resolves the dialing prefix. Explicit + (or more than 10
// digits) triggers a prefix-table match trying lengths 1, 2, then 3; the
// first known code wins, shortest first. Downstream behavior depends on
// this try order.
func (p *Parser) identifyCountry(info *model.PhoneInfo, digits string, hasPlus bool) bool {
	if hasPlus || len(digits) > 10 {
		for _, length := range []int{1, 2, 3} {
			if len(digits) < length {
				continue
			}
			code := digits[:length]
			if cc, ok := p.countryCodes[code]; ok {
				info.CountryCode = code
				info.Country = cc.Name
				info.NationalNumber = digits[length:]
				info.Formatted = fmt.Sprintf("+%s %s", code, digits[length:])
				return true
			}
		}
	}

	// Bare 10-digit numbers are assumed NANP.
	if len(digits) == 10 {
		info.CountryCode = "1"
		info.Country = "United States/Canada"
		info.NationalNumber = digits
		info.Formatted = fmt.Sprintf("+1 (%s) %s-%s", digits[:3], digits[3:6], digits[6:])
		return true
	}

	// 11 digits with a leading 1: the 1 is the NANP country code.
	if len(digits) == 11 && strings.HasPrefix(digits, "1") {
		national := digits[1:]
		info.CountryCode = "1"
		info.Country = "United States/Canada"
		info.NationalNumber = national
		info.Formatted = fmt.Sprintf("+1 (%s) %s-%s", national[:3], national[3:6], national[6:])
		return true
	}

	return false
}

// parseNANP adds the area-code region hint for +1 numbers.
func (p *Parser) parseNANP(info *model.PhoneInfo) {
	if len(info.NationalNumber) < 3 {
		return
	}
	areaCode := info.NationalNumber[:3]
	if region, ok := p.usAreaCodes[areaCode]; ok {
		info.Location = region
		info.AreaCode = areaCode
	}
}

// generateFormats produces common textual renderings of the number.
// These are generated variants, not validated formats; duplicates are
// removed, first occurrence kept.
func generateFormats(digits, countryCode string) []string {
	var formats []string

	if countryCode == "1" || (len(digits) == 10 && countryCode == "") {
		d := digits
		if len(digits) >= 10 {
			d = digits[len(digits)-10:]
		}
		if len(d) == 10 {
			formats = append(formats,
				"+1"+d,
				"+1 "+d,
				fmt.Sprintf("+1-%s-%s-%s", d[:3], d[3:6], d[6:]),
				fmt.Sprintf("+1 (%s) %s-%s", d[:3], d[3:6], d[6:]),
				"1"+d,
				fmt.Sprintf("1-%s-%s-%s", d[:3], d[3:6], d[6:]),
				fmt.Sprintf("(%s) %s-%s", d[:3], d[3:6], d[6:]),
				fmt.Sprintf("%s-%s-%s", d[:3], d[3:6], d[6:]),
				fmt.Sprintf("%s.%s.%s", d[:3], d[3:6], d[6:]),
				fmt.Sprintf("%s %s %s", d[:3], d[3:6], d[6:]),
				d,
			)
		}
	} else {
		formats = append(formats, "+"+digits, digits)
		if countryCode != "" {
			formats = append(formats, fmt.Sprintf("+%s %s", countryCode, digits[len(countryCode):]))
		}
	}

	return dedupe(formats)
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// guessLineType makes a coarse line-type guess from the area code.
// Advisory text only; it never affects validity.
func guessLineType(digits string) string {
	if len(digits) >= 10 {
		prefix := digits[len(digits)-10 : len(digits)-7]
		if voipAreaCodes[prefix] {
			return "Possibly VoIP"
		}
	}
	return "Unknown (Landline/Mobile/VoIP)"
}
