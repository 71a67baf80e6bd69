package provider

// Definition is the single dictionary sense the lookup flow displays:
// the first definition of the first meaning of the first entry.
type Definition struct {
	Text         string
	PartOfSpeech string
	Example      string
}
