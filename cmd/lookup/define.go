package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/textscanner/internal/domain"
)

var defineOutput string

// errLookupFailed ends define with exit code 1 after the surface has already
// shown the error.
var errLookupFailed = errors.New("lookup failed")

var defineCmd = &cobra.Command{
	Use:   "define <text...>",
	Short: "Look up one word or explain a phrase",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDefine,
}

func init() {
	defineCmd.Flags().StringVarP(&defineOutput, "output", "o", "", "output format: json")
	rootCmd.AddCommand(defineCmd)
}

// defineResult is the JSON shape of `define -o json`.
type defineResult struct {
	Text         string `json:"text"`
	Kind         string `json:"kind"`
	Source       string `json:"source,omitempty"`
	PartOfSpeech string `json:"part_of_speech,omitempty"`
	Result       string `json:"result,omitempty"`
	Message      string `json:"message,omitempty"`
}

func runDefine(cmd *cobra.Command, args []string) error {
	if defineOutput != "" && defineOutput != "json" {
		return fmt.Errorf("unsupported output format %q", defineOutput)
	}

	rt, err := setup(os.Stdout)
	if err != nil {
		return err
	}

	sel, err := domain.NewSelection(1, strings.Join(args, " "))
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	if defineOutput == "json" {
		res := rt.service.Lookup(ctx, sel)
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(defineResult{
			Text:         sel.Text,
			Kind:         res.Kind.String(),
			Source:       string(res.Source),
			PartOfSpeech: res.PartOfSpeech,
			Result:       res.Text,
			Message:      res.Message,
		})
	}

	if err := rt.surface.Begin(sel); err != nil {
		return err
	}
	rt.surface.Follow(rt.service.Resolve(ctx, sel))

	if _, state := rt.surface.State(); state.Result != nil && state.Result.IsError() {
		return errLookupFailed
	}
	return nil
}
