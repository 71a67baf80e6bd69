package coordinator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/samber/lo"
)

var (
	// ErrHandlerExists is returned when a second responder registers for an action.
	ErrHandlerExists = errors.New("coordinator: handler already registered")
	// ErrNoHandler is returned when nobody answers an action.
	ErrNoHandler = errors.New("coordinator: no handler registered")
)

// HandlerFunc answers a message. Fire-and-forget actions return a zero Message.
type HandlerFunc func(ctx context.Context, msg Message) (Message, error)

// Bus routes action-tagged messages. Each action has at most one responder;
// notifications are broadcast to every subscriber of the action.
type Bus struct {
	log     *slog.Logger
	bufSize int

	mu       sync.RWMutex
	handlers map[Action]HandlerFunc
	subs     map[Action][]chan Message
}

// NewBus creates a Bus whose subscriber channels hold bufSize messages.
func NewBus(logger *slog.Logger, bufSize int) *Bus {
	if bufSize <= 0 {
		bufSize = 16
	}
	return &Bus{
		log:      logger.With("component", "bus"),
		bufSize:  bufSize,
		handlers: make(map[Action]HandlerFunc),
		subs:     make(map[Action][]chan Message),
	}
}

// Handle registers the single responder for action.
func (b *Bus) Handle(action Action, h HandlerFunc) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.handlers[action]; ok {
		return fmt.Errorf("%w: %s", ErrHandlerExists, action)
	}
	b.handlers[action] = h
	return nil
}

// Request delivers msg to its responder and returns the reply.
func (b *Bus) Request(ctx context.Context, msg Message) (Message, error) {
	b.mu.RLock()
	h, ok := b.handlers[msg.Action]
	b.mu.RUnlock()

	if !ok {
		return Message{}, fmt.Errorf("%w: %s", ErrNoHandler, msg.Action)
	}
	return h(ctx, msg)
}

// Send delivers a fire-and-forget message and discards the reply.
func (b *Bus) Send(ctx context.Context, msg Message) error {
	_, err := b.Request(ctx, msg)
	return err
}

// Subscribe returns a channel receiving every notification for action and
// a function that cancels the subscription and closes the channel.
func (b *Bus) Subscribe(action Action) (<-chan Message, func()) {
	ch := make(chan Message, b.bufSize)

	b.mu.Lock()
	b.subs[action] = append(b.subs[action], ch)
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			b.subs[action] = lo.Without(b.subs[action], ch)
			close(ch)
		})
	}
	return ch, cancel
}

// Notify broadcasts msg without blocking. A subscriber whose buffer is full
// misses the message. It returns the number of subscribers reached.
func (b *Bus) Notify(msg Message) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	delivered := 0
	for _, ch := range b.subs[msg.Action] {
		select {
		case ch <- msg:
			delivered++
		default:
			b.log.Warn("notification dropped", slog.String("action", msg.Action.String()))
		}
	}
	return delivered
}
