package coordinator

// Action tags a Message.
type Action string

const (
	// ActionTextSelected reports a new selection from a capture surface.
	ActionTextSelected Action = "textSelected"
	// ActionGetState asks for a State snapshot. Request/response.
	ActionGetState Action = "getState"
	// ActionSetState merges a StatePatch into the shared state.
	ActionSetState Action = "setState"
	// ActionToggleHighlight switches highlight mode on capture surfaces.
	ActionToggleHighlight Action = "toggleHighlight"
	// ActionTabActivated reports that the user switched to another page.
	ActionTabActivated Action = "tabActivated"
	// ActionUpdateSelection is broadcast after a selection was recorded.
	ActionUpdateSelection Action = "updateSelection"
)

func (a Action) String() string { return string(a) }

// Message is the envelope exchanged over the Bus. Only the fields relevant
// to Action are set.
type Message struct {
	Action      Action
	Text        string
	SelectionID uint64
	Enable      bool
	URL         string
	Patch       *StatePatch
	State       *State
}

// State is the shared selection state owned by the Coordinator.
type State struct {
	HighlightMode bool
	SelectedText  string
	SelectionID   uint64
}

// StatePatch lists the fields a setState message overrides; nil fields
// keep their current value.
type StatePatch struct {
	HighlightMode *bool
	SelectedText  *string
}

func (s State) merge(p *StatePatch) State {
	if p == nil {
		return s
	}
	if p.HighlightMode != nil {
		s.HighlightMode = *p.HighlightMode
	}
	if p.SelectedText != nil {
		s.SelectedText = *p.SelectedText
	}
	return s
}
