package presentation

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/heartmarshall/textscanner/internal/domain"
)

var (
	// ErrStaleSelection is returned by Begin for a selection that does not
	// supersede the live one.
	ErrStaleSelection = errors.New("presentation: stale selection")
	// ErrInvalidTransition is returned by Apply for a state that would skip
	// or reverse a phase.
	ErrInvalidTransition = errors.New("presentation: invalid state transition")
)

// Renderer draws one LookupState for a selection.
type Renderer interface {
	Render(sel domain.Selection, state domain.LookupState) error
}

// Surface owns the single LookupState of a presentation surface. Only
// states of the live selection are rendered; anything older is dropped.
type Surface struct {
	renderer Renderer
	log      *slog.Logger

	mu      sync.Mutex
	current domain.Selection
	state   domain.LookupState
	dropped int
}

// NewSurface creates an idle Surface.
func NewSurface(renderer Renderer, logger *slog.Logger) *Surface {
	return &Surface{
		renderer: renderer,
		log:      logger.With("component", "surface"),
		state:    domain.Idle(),
	}
}

// Begin makes sel the live selection and resets the surface to Idle for it.
// Any later state carrying a lower selection id is discarded on arrival.
func (s *Surface) Begin(sel domain.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.ID != 0 && !sel.Supersedes(s.current) {
		return fmt.Errorf("%w: %d is not newer than %d", ErrStaleSelection, sel.ID, s.current.ID)
	}
	if s.state.Phase == domain.PhaseLoading {
		s.log.Debug("selection superseded in flight",
			slog.Uint64("previous_id", s.current.ID),
			slog.Uint64("selection_id", sel.ID),
		)
	}

	s.current = sel
	s.state = domain.Idle()
	return nil
}

// Apply advances the state machine and renders the new state. It reports
// false without error when the state belongs to a superseded selection.
func (s *Surface) Apply(state domain.LookupState) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if state.SelectionID != s.current.ID {
		s.dropped++
		s.log.Debug("stale state dropped",
			slog.Uint64("selection_id", state.SelectionID),
			slog.Uint64("current_id", s.current.ID),
			slog.String("phase", state.Phase.String()),
		)
		return false, nil
	}

	if s.state.IsTerminal() {
		s.log.Debug("state after resolution dropped",
			slog.Uint64("selection_id", state.SelectionID),
			slog.String("phase", state.Phase.String()),
		)
		return false, nil
	}

	if !validTransition(s.state.Phase, state.Phase) {
		return false, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state.Phase, state.Phase)
	}

	s.state = state
	if err := s.renderer.Render(s.current, state); err != nil {
		return true, fmt.Errorf("presentation: render: %w", err)
	}
	return true, nil
}

// Follow applies every state from a resolution stream until it closes.
// Errors are logged, never returned: a broken render must not stall the
// resolver feeding the channel.
func (s *Surface) Follow(states <-chan domain.LookupState) {
	for state := range states {
		if _, err := s.Apply(state); err != nil {
			s.log.Warn("state not applied",
				slog.Uint64("selection_id", state.SelectionID),
				slog.String("error", err.Error()),
			)
		}
	}
}

// State returns the current selection and its state.
func (s *Surface) State() (domain.Selection, domain.LookupState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current, s.state
}

// Dropped returns how many stale states have been discarded.
func (s *Surface) Dropped() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dropped
}

// validTransition allows Idle -> Loading, Loading -> Loading and
// Loading -> Resolved. Resolved is terminal until the next Begin.
func validTransition(from, to domain.Phase) bool {
	switch from {
	case domain.PhaseIdle:
		return to == domain.PhaseLoading
	case domain.PhaseLoading:
		return to == domain.PhaseLoading || to == domain.PhaseResolved
	}
	return false
}
