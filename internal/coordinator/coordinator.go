package coordinator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// internalPagePrefix marks browser-internal pages that never host a capture
// surface, so switching to them leaves highlight mode alone.
const internalPagePrefix = "chrome://"

// TabResetsHighlight reports whether activating the page at url turns
// highlight mode off.
func TabResetsHighlight(url string) bool {
	return !strings.HasPrefix(url, internalPagePrefix)
}

type command struct {
	msg   Message
	reply chan State
}

// Coordinator owns the shared State. All mutations happen on the Run
// goroutine; other goroutines reach it only through the Bus.
type Coordinator struct {
	bus   *Bus
	log   *slog.Logger
	inbox chan command

	state  State
	nextID uint64
}

// New creates a Coordinator and registers its actions on bus.
func New(bus *Bus, logger *slog.Logger) (*Coordinator, error) {
	c := &Coordinator{
		bus:   bus,
		log:   logger.With("component", "coordinator"),
		inbox: make(chan command, 16),
	}

	for _, action := range []Action{ActionTextSelected, ActionSetState, ActionToggleHighlight, ActionTabActivated} {
		if err := bus.Handle(action, c.enqueue); err != nil {
			return nil, err
		}
	}
	if err := bus.Handle(ActionGetState, c.snapshot); err != nil {
		return nil, err
	}
	return c, nil
}

// Run processes messages until ctx is cancelled.
func (c *Coordinator) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-c.inbox:
			c.apply(cmd)
		}
	}
}

// enqueue hands a fire-and-forget message to the Run loop.
func (c *Coordinator) enqueue(ctx context.Context, msg Message) (Message, error) {
	select {
	case c.inbox <- command{msg: msg}:
		return Message{}, nil
	case <-ctx.Done():
		return Message{}, fmt.Errorf("coordinator: %s: %w", msg.Action, ctx.Err())
	}
}

// snapshot waits for the Run loop to report the current State.
func (c *Coordinator) snapshot(ctx context.Context, msg Message) (Message, error) {
	reply := make(chan State, 1)
	select {
	case c.inbox <- command{msg: msg, reply: reply}:
	case <-ctx.Done():
		return Message{}, fmt.Errorf("coordinator: %s: %w", msg.Action, ctx.Err())
	}

	select {
	case st := <-reply:
		return Message{Action: ActionGetState, State: &st}, nil
	case <-ctx.Done():
		return Message{}, fmt.Errorf("coordinator: %s: %w", msg.Action, ctx.Err())
	}
}

func (c *Coordinator) apply(cmd command) {
	msg := cmd.msg

	switch msg.Action {
	case ActionGetState:
		cmd.reply <- c.state

	case ActionTextSelected:
		c.nextID++
		c.state.SelectedText = msg.Text
		c.state.SelectionID = c.nextID
		c.log.Debug("text selected", slog.Uint64("selection_id", c.nextID))
		c.bus.Notify(Message{
			Action:      ActionUpdateSelection,
			Text:        msg.Text,
			SelectionID: c.nextID,
		})

	case ActionSetState:
		c.state = c.state.merge(msg.Patch)

	case ActionToggleHighlight:
		c.setHighlight(msg.Enable)

	case ActionTabActivated:
		if !TabResetsHighlight(msg.URL) {
			return
		}
		c.setHighlight(false)
	}
}

func (c *Coordinator) setHighlight(enable bool) {
	c.state.HighlightMode = enable
	c.log.Debug("highlight mode changed", slog.Bool("enabled", enable))
	c.bus.Notify(Message{Action: ActionToggleHighlight, Enable: enable})
}
