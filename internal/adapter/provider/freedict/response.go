package freedict

// apiEntry represents a single entry from the FreeDictionary API response.
// The API returns an array of entries (one per etymology).
type apiEntry struct {
	Meanings []apiMeaning `json:"meanings"`
}

// apiMeaning represents a group of definitions sharing a part of speech.
type apiMeaning struct {
	PartOfSpeech string          `json:"partOfSpeech"`
	Definitions  []apiDefinition `json:"definitions"`
}

// apiDefinition represents a single definition with an optional example.
type apiDefinition struct {
	Definition string `json:"definition"`
	Example    string `json:"example"`
}
