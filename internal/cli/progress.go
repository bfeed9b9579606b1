package cli

import (
	"fmt"
	"io"

	"github.com/schollz/progressbar/v3"
)

// progressSteps is the bar resolution; download progress arrives as a
// fraction and gets quantized onto this many ticks.
const progressSteps = 1000

// DownloadProgress returns a fraction callback that renders a terminal
// progress bar to writer. Fractions are expected to be monotonically
// increasing in [0, 1].
func DownloadProgress(writer io.Writer, description string) func(fraction float64) {
	bar := progressbar.NewOptions(progressSteps,
		progressbar.OptionSetWriter(writer),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]"+description+"[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(writer)
		}),
	)

	return func(fraction float64) {
		if fraction < 0 {
			fraction = 0
		}
		if fraction > 1 {
			fraction = 1
		}
		_ = bar.Set(int(fraction * progressSteps))
	}
}
