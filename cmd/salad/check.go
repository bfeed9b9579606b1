package main

import (
	"fmt"
	"io"
	"strings"

	wordsalad "github.com/Veraticus/word-salad"
	"github.com/Veraticus/word-salad/internal/cli"
	"github.com/Veraticus/word-salad/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [text...]",
		Short: "Classify text as English or gibberish",
		Long: `Classify text as natural-language English or gibberish.

Text is taken from the arguments, or from stdin when no arguments are given.
By default only the statistical checks run; point --model-path at a downloaded
model to get a neural second opinion on borderline text.

Examples:
  salad check "The quick brown fox jumps over the lazy dog"
  salad check --sensitivity high "asdf jkl qwerty"
  salad check --explain "not sure about this one"
  echo "piped text" | salad check`,
		RunE: runCheck,
	}

	// Flags
	cmd.Flags().StringP("sensitivity", "s", "medium", "detection sensitivity (low, medium, high)")
	cmd.Flags().Bool("explain", false, "show the component scores behind the verdict")
	cmd.Flags().String("model-path", "", "model directory for enhanced detection")

	// Bind to viper (errors are rare and can be ignored in practice)
	_ = viper.BindPFlag("check.sensitivity", cmd.Flags().Lookup("sensitivity"))
	_ = viper.BindPFlag("check.explain", cmd.Flags().Lookup("explain"))
	_ = viper.BindPFlag("check.model_path", cmd.Flags().Lookup("model-path"))

	return cmd
}

func runCheck(cmd *cobra.Command, args []string) error {
	sensitivity, err := wordsalad.ParseSensitivity(viper.GetString("check.sensitivity"))
	if err != nil {
		return err
	}

	text, err := gatherText(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	detector := newDetectorFor("check.model_path")
	verdict := detector.IsGibberish(text, sensitivity)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.Verdict(verdict))

	if viper.GetBool("check.explain") {
		fmt.Fprintln(out)
		fmt.Fprint(out, cli.BreakdownTable(detector.Score(text, sensitivity)))
		if detector.HasEnhancedDetection() {
			fmt.Fprintln(out, cli.FormatInfo("model consulted for the final verdict"))
		}
	}

	return nil
}

// gatherText joins the arguments, falling back to stdin so the command
// composes with pipes.
func gatherText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// newDetectorFor builds a detector honoring the model path configured under
// key. An empty path means basic detection only.
func newDetectorFor(key string) *wordsalad.Detector {
	path := viper.GetString(key)
	if path == "" {
		return wordsalad.NewDetector()
	}
	return wordsalad.NewDetectorWithModel(config.ExpandPath(path))
}
