// Command lookup resolves selected text from the terminal. A single word is
// looked up in the dictionary and escalated to the language model when no
// definition exists; phrases go straight to the model.
//
//	lookup define serendipity
//	lookup watch --highlight < selections.txt
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/textscanner/internal/app"
	"github.com/heartmarshall/textscanner/internal/config"
	"github.com/heartmarshall/textscanner/internal/presentation"
	"github.com/heartmarshall/textscanner/internal/service/lookup"
)

var (
	surfaceFlag string
	noAIFlag    bool
	relayFlag   string
	debugFlag   bool
)

var rootCmd = &cobra.Command{
	Use:           "lookup",
	Short:         "Define words and explain phrases from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&surfaceFlag, "surface", "", "presentation surface: panel or popup (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noAIFlag, "no-ai", false, "dictionary only, never ask the language model")
	rootCmd.PersistentFlags().StringVar(&relayFlag, "relay", "", "explanation relay base URL (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "show backend details on failed lookups")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		if !errors.Is(err, errLookupFailed) {
			pterm.Error.Println(err)
		}
		os.Exit(1)
	}
}

// runtime is everything a subcommand needs after configuration is applied.
type runtime struct {
	cfg     *config.Config
	logger  *slog.Logger
	service *lookup.Service
	surface *presentation.Surface
}

func setup(out io.Writer) (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if surfaceFlag != "" {
		cfg.Lookup.Surface = strings.ToLower(surfaceFlag)
	}
	if relayFlag != "" {
		cfg.Lookup.RelayURL = relayFlag
	}
	if debugFlag {
		cfg.Lookup.Debug = true
	}

	logger := app.NewLogger(cfg.Log)

	svc, err := app.NewLookupService(cfg, logger, !noAIFlag)
	if err != nil {
		return nil, err
	}

	renderer, err := newRenderer(cfg, out)
	if err != nil {
		return nil, err
	}

	return &runtime{
		cfg:     cfg,
		logger:  logger,
		service: svc,
		surface: presentation.NewSurface(renderer, logger),
	}, nil
}

// popupWidth caps the inline card; narrower terminals shrink it.
const popupWidth = 60

func newRenderer(cfg *config.Config, out io.Writer) (presentation.Renderer, error) {
	var opts []presentation.Option
	if cfg.Lookup.Debug {
		info := presentation.DebugInfo{
			AIConfigured: !noAIFlag && (cfg.Lookup.UsesRelay() || cfg.Explanation.APIKey != ""),
			Model:        cfg.Explanation.Model,
		}
		if cfg.Lookup.UsesRelay() {
			info.Model = "relay " + cfg.Lookup.RelayURL
		}
		opts = append(opts, presentation.WithDebug(info))
	}

	switch cfg.Lookup.Surface {
	case config.SurfacePopup:
		if w := pterm.GetTerminalWidth() - 2; w > 0 && w < popupWidth {
			opts = append(opts, presentation.WithWidth(w))
		}
		return presentation.NewPopupRenderer(out, opts...), nil
	case config.SurfacePanel:
		return presentation.NewPanelRenderer(out, opts...), nil
	default:
		return nil, fmt.Errorf("unknown surface %q (want %s or %s)", cfg.Lookup.Surface, config.SurfacePanel, config.SurfacePopup)
	}
}
