package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/word-salad/internal/classify"
	"github.com/olekukonko/tablewriter"
)

// Verdict formats a classification verdict for terminal display.
func Verdict(gibberish bool) string {
	if gibberish {
		return FormatError("gibberish")
	}
	return FormatSuccess("looks like English")
}

// BreakdownTable renders the component scores behind one classification as
// an aligned table.
func BreakdownTable(b classify.ScoreBreakdown) string {
	var sb strings.Builder

	table := tablewriter.NewWriter(&sb)
	table.SetHeader([]string{"Signal", "Value"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	table.Append([]string{"letters", fmt.Sprintf("%d", b.Length)})
	table.Append([]string{"dictionary words", fmt.Sprintf("%d / %d", b.WordMatches, b.TotalWords)})
	table.Append([]string{"word ratio", formatScore(b.WordRatio)})
	table.Append([]string{"bigram score", formatScore(b.Bigram)})
	table.Append([]string{"trigram score", formatScore(b.Trigram)})
	table.Append([]string{"quadgram score", formatScore(b.Quadgram)})
	table.Append([]string{"letter frequency", formatScore(b.LetterFrequency)})
	table.Append([]string{"vowel ratio", formatScore(b.VowelRatio)})
	if b.Rule == classify.RuleComposite {
		table.Append([]string{"composite", formatScore(b.Composite)})
		table.Append([]string{"threshold", formatScore(b.Threshold)})
	}
	table.Append([]string{"decided by", string(b.Rule)})
	table.Render()

	return sb.String()
}

func formatScore(value float64) string {
	return fmt.Sprintf("%.3f", value)
}
