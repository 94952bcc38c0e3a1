package phone

// FormatKind selects a rendering of a parsed number.
type FormatKind string

const (
	FormatInternational FormatKind = "international"
	FormatNational      FormatKind = "national"
	FormatE164          FormatKind = "e164"
)

// Format renders a raw number in the requested format. Numbers that don't
// parse are returned unchanged.
func Format(raw string, kind FormatKind) string {
	info := NewParser().Parse(raw)
	if !info.Valid {
		return raw
	}

	switch kind {
	case FormatNational:
		return info.NationalNumber
	case FormatE164:
		return "+" + info.CountryCode + info.NationalNumber
	default:
		return info.Formatted
	}
}
