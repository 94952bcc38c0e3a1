package model

// Kind identifies what sort of entity an extraction record holds.
type Kind string

const (
	KindName            Kind = "name"
	KindEmail           Kind = "email"
	KindAddress         Kind = "address"
	KindUsername        Kind = "username"
	KindAssociatedPhone Kind = "associated_phone"
	KindSocialProfile   Kind = "social_profile"
)

// Record is one mined entity with its confidence score. Kind-specific
// fields are left zero for kinds that don't use them. Records are
// immutable once produced; fusion filters and re-sorts but never edits.
type Record struct {
	Kind       Kind   `json:"kind"`
	Value      string `json:"value"`
	Source     string `json:"source"`
	Confidence int    `json:"confidence"`

	// Email
	Domain string `json:"domain,omitempty"`

	// Address
	Street string `json:"street,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`

	// Username / social profile
	Username string `json:"username,omitempty"`
	Platform string `json:"platform,omitempty"`
	URL      string `json:"url,omitempty"`

	// Associated phone
	Digits       string `json:"digits,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

// Patterns groups extraction records by kind, in ranked order.
type Patterns struct {
	Names            []Record `json:"names"`
	Emails           []Record `json:"emails"`
	Addresses        []Record `json:"addresses"`
	Usernames        []Record `json:"usernames"`
	AssociatedPhones []Record `json:"associated_phones"`
	SocialProfiles   []Record `json:"social_profiles"`
}

// Summary holds per-kind counts computed at finalize.
type Summary struct {
	TotalNames            int `json:"total_names"`
	TotalEmails           int `json:"total_emails"`
	TotalAddresses        int `json:"total_addresses"`
	TotalUsernames        int `json:"total_usernames"`
	TotalSocialProfiles   int `json:"total_social_profiles"`
	TotalAssociatedPhones int `json:"total_associated_phones"`
	SearchEngineResults   int `json:"search_engine_results"`
	PeopleSearchResults   int `json:"people_search_results"`
}
