package extract

import (
	"regexp"
	"strings"

	"github.com/telespotter/telespotter/internal/model"
)

// platformPattern binds a platform name to its profile-URL regexes.
// Slice order fixes the extraction order across runs.
type platformPattern struct {
	name     string
	patterns []*regexp.Regexp
}

var socialPlatforms = []platformPattern{
	{"facebook", []*regexp.Regexp{
		regexp.MustCompile(`(?i)facebook\.com/([a-zA-Z0-9_.]+)`),
		regexp.MustCompile(`(?i)fb\.com/([a-zA-Z0-9_.]+)`),
	}},
	{"twitter", []*regexp.Regexp{
		regexp.MustCompile(`(?i)twitter\.com/([a-zA-Z0-9_]+)`),
		regexp.MustCompile(`(?i)x\.com/([a-zA-Z0-9_]+)`),
	}},
	{"instagram", []*regexp.Regexp{regexp.MustCompile(`(?i)instagram\.com/([a-zA-Z0-9_.]+)`)}},
	{"linkedin", []*regexp.Regexp{regexp.MustCompile(`(?i)linkedin\.com/in/([a-zA-Z0-9_-]+)`)}},
	{"tiktok", []*regexp.Regexp{regexp.MustCompile(`(?i)tiktok\.com/@([a-zA-Z0-9_.]+)`)}},
	{"youtube", []*regexp.Regexp{regexp.MustCompile(`(?i)youtube\.com/(?:user|channel|c)/([a-zA-Z0-9_-]+)`)}},
	{"pinterest", []*regexp.Regexp{regexp.MustCompile(`(?i)pinterest\.com/([a-zA-Z0-9_]+)`)}},
	{"reddit", []*regexp.Regexp{regexp.MustCompile(`(?i)reddit\.com/u(?:ser)?/([a-zA-Z0-9_-]+)`)}},
	{"snapchat", []*regexp.Regexp{regexp.MustCompile(`(?i)snapchat\.com/add/([a-zA-Z0-9_.]+)`)}},
	{"github", []*regexp.Regexp{regexp.MustCompile(`(?i)github\.com/([a-zA-Z0-9_-]+)`)}},
	{"telegram", []*regexp.Regexp{regexp.MustCompile(`(?i)t\.me/([a-zA-Z0-9_]+)`)}},
}

// SocialProfiles extracts social-media profile URLs. Fixed confidence 85;
// deduplicated by platform plus lowercase handle; scheme-less URLs are
// normalized to https.
func (a *Analyzer) SocialProfiles(text string) []model.Record {
	seen := make(map[string]bool)
	var profiles []model.Record

	for _, platform := range socialPlatforms {
		for _, pattern := range platform.patterns {
			for _, m := range pattern.FindAllStringSubmatch(text, -1) {
				username := m[1]
				url := m[0]
				key := platform.name + ":" + strings.ToLower(username)
				if seen[key] {
					continue
				}
				seen[key] = true

				if !strings.HasPrefix(url, "http") {
					url = "https://" + url
				}
				profiles = append(profiles, model.Record{
					Kind:       model.KindSocialProfile,
					Value:      url,
					Platform:   platform.name,
					Username:   username,
					URL:        url,
					Source:     "url_match",
					Confidence: 85,
				})
			}
		}
	}

	sortByConfidence(profiles)
	return capRecords(profiles, maxProfiles)
}
