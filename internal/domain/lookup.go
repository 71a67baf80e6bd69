package domain

// ResultKind tags the LookupResult variant.
type ResultKind string

const (
	ResultDefinition  ResultKind = "definition"
	ResultExplanation ResultKind = "explanation"
	ResultNotFound    ResultKind = "not_found"
	ResultError       ResultKind = "error"
)

func (k ResultKind) String() string { return string(k) }

// ResultSource names the backend that produced a result.
type ResultSource string

const (
	SourceDictionary ResultSource = "dictionary"
	SourceAI         ResultSource = "ai"
)

// LookupResult is the outcome of one resolution. Only the fields relevant
// to Kind are populated.
type LookupResult struct {
	Kind         ResultKind
	Text         string
	PartOfSpeech string
	Example      string
	Source       ResultSource
	Message      string
}

func NewDefinition(text, partOfSpeech string) LookupResult {
	return LookupResult{Kind: ResultDefinition, Text: text, PartOfSpeech: partOfSpeech, Source: SourceDictionary}
}

func NewExplanation(text string) LookupResult {
	return LookupResult{Kind: ResultExplanation, Text: text, Source: SourceAI}
}

func NewNotFound() LookupResult {
	return LookupResult{Kind: ResultNotFound, Message: "No definition found"}
}

func NewErrorResult(message string) LookupResult {
	return LookupResult{Kind: ResultError, Message: message}
}

// IsError reports whether the result is the Error variant.
func (r LookupResult) IsError() bool { return r.Kind == ResultError }

// Phase is the LookupState tag.
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseLoading  Phase = "loading"
	PhaseResolved Phase = "resolved"
)

func (p Phase) String() string { return string(p) }

// LookupState is one step of a resolution as seen by a presentation surface.
// Escalated marks the intermediate loading signal emitted when the dictionary
// gave up and the AI explanation is being fetched.
type LookupState struct {
	Phase       Phase
	SelectionID uint64
	Message     string
	Escalated   bool
	Result      *LookupResult
}

func Idle() LookupState {
	return LookupState{Phase: PhaseIdle}
}

func Loading(selectionID uint64, message string) LookupState {
	return LookupState{Phase: PhaseLoading, SelectionID: selectionID, Message: message}
}

func Escalating(selectionID uint64, message string) LookupState {
	return LookupState{Phase: PhaseLoading, SelectionID: selectionID, Message: message, Escalated: true}
}

func Resolved(selectionID uint64, result LookupResult) LookupState {
	return LookupState{Phase: PhaseResolved, SelectionID: selectionID, Result: &result}
}

// IsTerminal reports whether the state ends a resolution.
func (s LookupState) IsTerminal() bool { return s.Phase == PhaseResolved }
