package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/textscanner/internal/capture"
	"github.com/heartmarshall/textscanner/internal/coordinator"
	"github.com/heartmarshall/textscanner/internal/domain"
)

var highlightFlag bool

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Resolve selections read line by line from stdin",
	Long: `Reads one selection per line from stdin and resolves each while highlight
mode is on. A newer selection replaces the one on screen; late results for
older selections are discarded.

Control lines:
  !highlight on|off   toggle highlight mode
  !tab <url>          report a page switch (turns highlight mode off)`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&highlightFlag, "highlight", false, "start with highlight mode on")
	rootCmd.AddCommand(watchCmd)
}

const busBuffer = 64

func runWatch(cmd *cobra.Command, _ []string) error {
	rt, err := setup(os.Stdout)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	bus := coordinator.NewBus(rt.logger, busBuffer)
	coord, err := coordinator.New(bus, rt.logger)
	if err != nil {
		return err
	}

	coordCtx, stopCoord := context.WithCancel(ctx)
	coordDone := make(chan struct{})
	go func() {
		defer close(coordDone)
		coord.Run(coordCtx)
	}()
	defer func() {
		stopCoord()
		<-coordDone
	}()

	if highlightFlag {
		if err := bus.Send(ctx, coordinator.Message{Action: coordinator.ActionToggleHighlight, Enable: true}); err != nil {
			return fmt.Errorf("enable highlight: %w", err)
		}
	}

	updates, unsubscribe := bus.Subscribe(coordinator.ActionUpdateSelection)

	var inflight sync.WaitGroup
	dispatchDone := make(chan struct{})
	go func() {
		defer close(dispatchDone)
		for msg := range updates {
			sel, err := domain.NewSelection(msg.SelectionID, msg.Text)
			if err != nil {
				continue
			}
			if err := rt.surface.Begin(sel); err != nil {
				rt.logger.Debug("selection skipped",
					slog.Uint64("selection_id", sel.ID),
					slog.String("error", err.Error()),
				)
				continue
			}
			states := rt.service.Resolve(ctx, sel)
			inflight.Add(1)
			go func() {
				defer inflight.Done()
				rt.surface.Follow(states)
			}()
		}
	}()

	capturer := capture.New(bus, rt.logger, capture.Options{Highlight: highlightFlag})
	runErr := capturer.Run(ctx, os.Stdin)

	// getState is answered after every queued selection is applied, so all
	// updateSelection notifications have been published once it returns.
	if runErr == nil {
		if _, err := bus.Request(ctx, coordinator.Message{Action: coordinator.ActionGetState}); err != nil {
			rt.logger.Warn("drain coordinator", slog.String("error", err.Error()))
		}
	}

	unsubscribe()
	<-dispatchDone
	inflight.Wait()

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	rt.logger.Debug("watch finished", slog.Int64("captured", capturer.Sent()))
	return nil
}
