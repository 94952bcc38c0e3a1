package model

import "encoding/json"

// Options toggles which sources a search queries. Every source is on by
// default; JSON decoding starts from the defaults so omitted keys stay on.
type Options struct {
	SearchEngines    bool `json:"search_engines"`
	Google           bool `json:"google"`
	Bing             bool `json:"bing"`
	DuckDuckGo       bool `json:"duckduckgo"`
	PeopleSearch     bool `json:"people_search"`
	Whitepages       bool `json:"whitepages"`
	TruePeopleSearch bool `json:"truepeoplesearch"`
	FastPeopleSearch bool `json:"fastpeoplesearch"`
	Spokeo           bool `json:"spokeo"`
	BeenVerified     bool `json:"beenverified"`
	MaxResults       int  `json:"max_results"`
	IncludeSocial    bool `json:"include_social"`
}

// DefaultOptions enables every source with a 20-result cap per source.
func DefaultOptions() Options {
	return Options{
		SearchEngines:    true,
		Google:           true,
		Bing:             true,
		DuckDuckGo:       true,
		PeopleSearch:     true,
		Whitepages:       true,
		TruePeopleSearch: true,
		FastPeopleSearch: true,
		Spokeo:           true,
		BeenVerified:     true,
		MaxResults:       20,
		IncludeSocial:    true,
	}
}

// UnmarshalJSON decodes on top of DefaultOptions.
func (o *Options) UnmarshalJSON(b []byte) error {
	type plain Options
	p := plain(DefaultOptions())
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	*o = Options(p)
	return nil
}

// Enabled reports whether the named source is toggled on.
func (o Options) Enabled(source string) bool {
	switch source {
	case "google":
		return o.Google
	case "bing":
		return o.Bing
	case "duckduckgo":
		return o.DuckDuckGo
	case "whitepages":
		return o.Whitepages
	case "truepeoplesearch":
		return o.TruePeopleSearch
	case "fastpeoplesearch":
		return o.FastPeopleSearch
	case "spokeo":
		return o.Spokeo
	case "beenverified":
		return o.BeenVerified
	default:
		return false
	}
}
