package model

// EngineResult is one raw search-engine hit.
type EngineResult struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Snippet   string `json:"snippet"`
	Source    string `json:"source"`
	Relevance int    `json:"relevance"`
}

// PersonRecord is one raw person-shaped record from a people-search site.
type PersonRecord struct {
	Name              string   `json:"name"`
	Age               *int     `json:"age"`
	Address           string   `json:"address"`
	City              string   `json:"city"`
	State             string   `json:"state"`
	ZipCode           string   `json:"zip_code"`
	Phone             string   `json:"phone"`
	AssociatedPhones  []string `json:"associated_phones"`
	Relatives         []string `json:"relatives"`
	PreviousAddresses []string `json:"previous_addresses"`
	Email             string   `json:"email"`
	Source            string   `json:"source"`
	Confidence        int      `json:"confidence"`
	URL               string   `json:"url"`
	Note              string   `json:"note,omitempty"`
}
