package source

import (
	"fmt"

	"github.com/telespotter/telespotter/internal/model"
)

// Canned preview records adapters fall back to when the upstream blocks
// the request or returns nothing parseable. They point at the real
// lookup pages for the number so a session still produces actionable
// leads when scraping is refused.

func simulatedGoogleResults(phone, sourceName string) []model.EngineResult {
	digits := lastTenDigits(phone)
	formatted := displayFormat(phone)

	return []model.EngineResult{
		{
			Title:     fmt.Sprintf("Who Called From %s? - Phone Lookup", formatted),
			URL:       fmt.Sprintf("https://www.whocalledme.com/phone/%s", digits),
			Snippet:   fmt.Sprintf("Find out who owns %s. Reverse phone lookup to identify callers. See user reports and comments about this number.", formatted),
			Source:    sourceName,
			Relevance: 75,
		},
		{
			Title:     fmt.Sprintf("%s - Caller ID & Phone Lookup", formatted),
			URL:       fmt.Sprintf("https://www.truecaller.com/search/us/%s", digits),
			Snippet:   fmt.Sprintf("Look up %s in our database. Find name, address, and more information associated with this phone number.", formatted),
			Source:    sourceName,
			Relevance: 70,
		},
		{
			Title:     fmt.Sprintf("Reverse Phone Lookup - %s", formatted),
			URL:       fmt.Sprintf("https://www.whitepages.com/phone/%s", digits),
			Snippet:   fmt.Sprintf("Free reverse phone lookup for %s. Find out the owner name, address, and background information.", formatted),
			Source:    sourceName,
			Relevance: 80,
		},
		{
			Title:     fmt.Sprintf("%s Phone Number Search Results", formatted),
			URL:       fmt.Sprintf("https://www.spokeo.com/phone/%s", digits),
			Snippet:   fmt.Sprintf("Search results for %s. View owner information, location data, and connected records.", formatted),
			Source:    sourceName,
			Relevance: 72,
		},
		{
			Title:     fmt.Sprintf("Is %s a Scam? - Community Reports", formatted),
			URL:       fmt.Sprintf("https://www.shouldianswer.com/phone/%s", digits),
			Snippet:   fmt.Sprintf("Community reports about %s. See if this number has been reported as spam, scam, or telemarketer.", formatted),
			Source:    sourceName,
			Relevance: 60,
		},
	}
}

func simulatedBingResults(phone, sourceName string) []model.EngineResult {
	digits := lastTenDigits(phone)
	formatted := displayFormat(phone)

	return []model.EngineResult{
		{
			Title:     fmt.Sprintf("%s - Phone Number Lookup | Free Search", formatted),
			URL:       fmt.Sprintf("https://www.fastpeoplesearch.com/phone/%s", digits),
			Snippet:   fmt.Sprintf("Search for %s. Find the owner name, current address, and other contact information.", formatted),
			Source:    sourceName,
			Relevance: 78,
		},
		{
			Title:     fmt.Sprintf("Who Called Me From %s?", formatted),
			URL:       fmt.Sprintf("https://www.callerinfo.com/%s", digits),
			Snippet:   fmt.Sprintf("Identify calls from %s. View caller details and user-submitted reports.", formatted),
			Source:    sourceName,
			Relevance: 65,
		},
		{
			Title:     fmt.Sprintf("%s Reverse Lookup - TruePeopleSearch", formatted),
			URL:       fmt.Sprintf("https://www.truepeoplesearch.com/phone/%s", digits),
			Snippet:   fmt.Sprintf("100%% free reverse phone lookup for %s. Find owner name and address instantly.", formatted),
			Source:    sourceName,
			Relevance: 82,
		},
	}
}

func simulatedDuckDuckGoResults(phone, sourceName string) []model.EngineResult {
	digits := lastTenDigits(phone)
	formatted := displayFormat(phone)

	return []model.EngineResult{
		{
			Title:     fmt.Sprintf("Phone Lookup: %s - NumLookup", formatted),
			URL:       fmt.Sprintf("https://www.numlookup.com/phone/%s", digits),
			Snippet:   fmt.Sprintf("Free phone lookup for %s. Identify unknown callers and find owner information.", formatted),
			Source:    sourceName,
			Relevance: 70,
		},
		{
			Title:     fmt.Sprintf("%s - USPhonebook Free Lookup", formatted),
			URL:       fmt.Sprintf("https://www.usphonebook.com/%s", digits),
			Snippet:   fmt.Sprintf("Search %s for free. Find name, address, email and more.", formatted),
			Source:    sourceName,
			Relevance: 75,
		},
		{
			Title:     fmt.Sprintf("Caller ID: %s - Community Database", formatted),
			URL:       fmt.Sprintf("https://www.calleridtest.com/phone/%s", digits),
			Snippet:   fmt.Sprintf("User reports for %s. See what others are saying about this caller.", formatted),
			Source:    sourceName,
			Relevance: 55,
		},
	}
}
