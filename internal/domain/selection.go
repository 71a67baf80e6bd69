package domain

import "strings"

// Selection is the trimmed text highlighted by the user. ID grows
// monotonically with every new selection; a higher ID supersedes all
// lower ones.
type Selection struct {
	ID   uint64
	Text string
}

// NewSelection trims raw and rejects empty text.
func NewSelection(id uint64, raw string) (Selection, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Selection{}, NewValidationError("text", "selection is empty")
	}
	return Selection{ID: id, Text: text}, nil
}

// IsSingleWord reports whether the selection has no internal whitespace.
func (s Selection) IsSingleWord() bool {
	return IsSingleWord(s.Text)
}

// IsSingleWord is the syntactic word/phrase classification used everywhere
// a lookup decides between dictionary and phrase handling.
func IsSingleWord(text string) bool {
	return len(strings.Fields(text)) == 1
}

// Supersedes reports whether s replaces other as the live selection.
func (s Selection) Supersedes(other Selection) bool {
	return s.ID > other.ID
}
