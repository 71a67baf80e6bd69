package capture

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/heartmarshall/textscanner/internal/coordinator"
)

// bus is the part of coordinator.Bus a capture surface talks to.
type bus interface {
	Send(ctx context.Context, msg coordinator.Message) error
	Subscribe(action coordinator.Action) (<-chan coordinator.Message, func())
}

// Options configures a Capturer.
type Options struct {
	// Highlight starts the capturer with highlight mode on.
	Highlight bool
}

// commandPrefix starts a control line instead of a selection:
//
//	!highlight on|off   toggle highlight mode for every capture surface
//	!tab <url>          report that another page became active
const commandPrefix = "!"

// Capturer turns raw selections into textSelected messages. It only
// captures while highlight mode is on, and skips empty text and repeats of
// the previous selection. Control lines are forwarded regardless of mode.
type Capturer struct {
	bus       bus
	log       *slog.Logger
	highlight atomic.Bool
	last      string
	sent      atomic.Int64

	// echoes holds the modes this capturer announced whose broadcast has
	// not come back yet, oldest first. Only the Run goroutine touches it.
	echoes []bool
}

// New creates a Capturer.
func New(b bus, logger *slog.Logger, opts Options) *Capturer {
	c := &Capturer{
		bus: b,
		log: logger.With("component", "capture"),
	}
	c.highlight.Store(opts.Highlight)
	return c
}

// Highlighting reports whether selections are currently captured.
func (c *Capturer) Highlighting() bool { return c.highlight.Load() }

// Sent returns how many selections were forwarded.
func (c *Capturer) Sent() int64 { return c.sent.Load() }

// Run reads one selection per line from r until EOF or ctx is cancelled,
// following toggleHighlight notifications in between.
func (c *Capturer) Run(ctx context.Context, r io.Reader) error {
	toggles, unsubscribe := c.bus.Subscribe(coordinator.ActionToggleHighlight)
	defer unsubscribe()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-toggles:
			if !ok {
				toggles = nil
				continue
			}
			c.followToggle(msg.Enable)

		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					if err != nil {
						return fmt.Errorf("capture: read: %w", err)
					}
				default:
				}
				return nil
			}
			if err := c.capture(ctx, line); err != nil {
				return err
			}
		}
	}
}

func (c *Capturer) capture(ctx context.Context, raw string) error {
	if strings.HasPrefix(raw, commandPrefix) {
		return c.command(ctx, strings.TrimPrefix(raw, commandPrefix))
	}

	if !c.highlight.Load() {
		return nil
	}

	text := strings.TrimSpace(raw)
	if text == "" || text == c.last {
		return nil
	}
	c.last = text

	if err := c.bus.Send(ctx, coordinator.Message{Action: coordinator.ActionTextSelected, Text: text}); err != nil {
		return fmt.Errorf("capture: send: %w", err)
	}
	c.sent.Add(1)
	return nil
}

func (c *Capturer) command(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		c.log.Warn("unknown command", slog.String("line", line))
		return nil
	}

	var msg coordinator.Message
	switch {
	case fields[0] == "highlight" && (fields[1] == "on" || fields[1] == "off"):
		enable := fields[1] == "on"
		msg = coordinator.Message{Action: coordinator.ActionToggleHighlight, Enable: enable}
		// The next line must already see the new mode; the broadcast that
		// follows is skipped as an echo.
		c.setHighlight(enable)
		c.echoes = append(c.echoes, enable)
	case fields[0] == "tab":
		msg = coordinator.Message{Action: coordinator.ActionTabActivated, URL: fields[1]}
		if coordinator.TabResetsHighlight(fields[1]) {
			c.setHighlight(false)
			c.echoes = append(c.echoes, false)
		}
	default:
		c.log.Warn("unknown command", slog.String("line", line))
		return nil
	}

	if err := c.bus.Send(ctx, msg); err != nil {
		return fmt.Errorf("capture: send %s: %w", msg.Action, err)
	}
	return nil
}

// followToggle applies a toggleHighlight broadcast. The coordinator
// broadcasts in the order it applies toggles, so while one of our own is
// still pending anything ahead of its echo is overridden by it anyway.
func (c *Capturer) followToggle(enable bool) {
	if len(c.echoes) > 0 {
		if c.echoes[0] == enable {
			c.echoes = c.echoes[1:]
		}
		if len(c.echoes) > 0 {
			return
		}
	}
	c.setHighlight(enable)
}

// setHighlight switches the mode and forgets the last selection, so the same
// text can be captured again once highlighting resumes.
func (c *Capturer) setHighlight(enable bool) {
	if c.highlight.Load() == enable {
		return
	}
	c.highlight.Store(enable)
	c.last = ""
	c.log.Debug("highlight mode", slog.Bool("enabled", enable))
}
