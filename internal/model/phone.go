package model

// PhoneInfo is the canonical representation of a parsed phone number.
// It is constructed once by the phone parser and never mutated.
type PhoneInfo struct {
	Original        string   `json:"original"`
	Cleaned         string   `json:"cleaned"`
	DigitsOnly      string   `json:"digits_only"`
	Valid           bool     `json:"valid"`
	Country         string   `json:"country"`
	CountryCode     string   `json:"country_code"`
	NationalNumber  string   `json:"national_number"`
	Formatted       string   `json:"formatted"`
	Location        string   `json:"location,omitempty"`
	AreaCode        string   `json:"area_code,omitempty"`
	LineType        string   `json:"line_type"`
	Carrier         string   `json:"carrier"`
	PossibleFormats []string `json:"possible_formats"`
	Error           string   `json:"error,omitempty"`
}

// E164 returns the number in +<country><national> form, or the cleaned
// input if the number never resolved to a country.
func (p PhoneInfo) E164() string {
	if !p.Valid {
		return p.Cleaned
	}
	return "+" + p.CountryCode + p.NationalNumber
}
