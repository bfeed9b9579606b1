package main

import (
	"errors"
	"fmt"
	"io"

	wordsalad "github.com/Veraticus/word-salad"
	"github.com/Veraticus/word-salad/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func replCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Classify lines interactively",
		Long: `Read lines from the terminal and classify each one as it is entered.

Special input:
  :explain     toggle the per-line score breakdown
  :low, :medium, :high   switch sensitivity
  exit, quit   leave the session (Ctrl-C and Ctrl-D work too)`,
		RunE: runRepl,
	}

	cmd.Flags().StringP("sensitivity", "s", "medium", "detection sensitivity (low, medium, high)")
	cmd.Flags().Bool("basic", false, "skip the model even when one is configured")
	cmd.Flags().String("model-path", "", "model directory for enhanced detection")

	_ = viper.BindPFlag("repl.sensitivity", cmd.Flags().Lookup("sensitivity"))
	_ = viper.BindPFlag("repl.basic", cmd.Flags().Lookup("basic"))
	_ = viper.BindPFlag("repl.model_path", cmd.Flags().Lookup("model-path"))

	return cmd
}

func runRepl(cmd *cobra.Command, _ []string) error {
	sensitivity, err := wordsalad.ParseSensitivity(viper.GetString("repl.sensitivity"))
	if err != nil {
		return err
	}

	detector := wordsalad.NewDetector()
	if !viper.GetBool("repl.basic") {
		detector = newDetectorFor("repl.model_path")
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("word-salad interactive session"))
	if detector.HasEnhancedDetection() {
		fmt.Fprintln(out, cli.FormatInfo("enhanced detection enabled"))
	} else {
		fmt.Fprintln(out, cli.SubtleStyle.Render("basic detection (no model)"))
	}

	handler := cli.NewInterruptHandler(out)
	ctx := handler.HandleInterrupts(cmd.Context())
	reader := cli.NewNonBlockingReader(cmd.InOrStdin())
	explain := false

	for {
		fmt.Fprint(out, cli.FormatPrompt(sensitivity.String()))

		line, readErr := reader.ReadLine(ctx)
		if readErr != nil {
			if errors.Is(readErr, cli.ErrInputCancelled) || errors.Is(readErr, io.EOF) {
				fmt.Fprintln(out)
				return nil
			}
			return fmt.Errorf("failed to read input: %w", readErr)
		}

		switch line {
		case "":
			continue
		case "exit", "quit":
			fmt.Fprintln(out, cli.FormatInfo("bye!"))
			return nil
		case ":explain":
			explain = !explain
			fmt.Fprintln(out, cli.SubtleStyle.Render(fmt.Sprintf("explain: %v", explain)))
			continue
		case ":low", ":medium", ":high":
			sensitivity, _ = wordsalad.ParseSensitivity(line[1:])
			fmt.Fprintln(out, cli.SubtleStyle.Render("sensitivity: "+sensitivity.String()))
			continue
		}

		fmt.Fprintln(out, cli.Verdict(detector.IsGibberish(line, sensitivity)))
		if explain {
			fmt.Fprint(out, cli.BreakdownTable(detector.Score(line, sensitivity)))
		}
	}
}
