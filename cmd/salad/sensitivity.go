package main

import (
	"fmt"
	"strings"

	wordsalad "github.com/Veraticus/word-salad"
	"github.com/Veraticus/word-salad/internal/cli"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// sensitivitySamples covers the spectrum from clean English to pure mash;
// borderline entries are the interesting rows.
var sensitivitySamples = []string{
	"The quick brown fox jumps over the lazy dog",
	"Hello world, this is a normal sentence.",
	"the cat sat on the mat qzxv",
	"buy now click here xrtz qwkp",
	"asdf jkl qwerty",
	"xkcd zzzz qqqq",
}

func sensitivityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sensitivity [text...]",
		Short: "Compare verdicts across all sensitivity levels",
		Long: `Classify text at low, medium and high sensitivity side by side.

Low flags the most text as gibberish, high the least; a verdict that flips
between levels marks borderline text. With no arguments a built-in sample set
is shown.

Examples:
  salad sensitivity
  salad sensitivity "maybe this is fine"`,
		RunE: runSensitivity,
	}
}

func runSensitivity(cmd *cobra.Command, args []string) error {
	texts := sensitivitySamples
	if len(args) > 0 {
		texts = []string{strings.Join(args, " ")}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle("Sensitivity comparison"))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Text", "Low", "Medium", "High"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, text := range texts {
		table.Append([]string{
			truncate(text, 48),
			verdictCell(text, wordsalad.Low),
			verdictCell(text, wordsalad.Medium),
			verdictCell(text, wordsalad.High),
		})
	}
	table.Render()

	return nil
}

func verdictCell(text string, sensitivity wordsalad.Sensitivity) string {
	if wordsalad.IsGibberish(text, sensitivity) {
		return cli.ErrorIcon + " gibberish"
	}
	return cli.SuccessIcon + " english"
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit-1]) + "…"
}
