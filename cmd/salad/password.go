package main

import (
	"fmt"

	wordsalad "github.com/Veraticus/word-salad"
	"github.com/Veraticus/word-salad/internal/cli"
	"github.com/spf13/cobra"
)

func passwordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "password <candidate>",
		Short: "Check a password against the list of well-known weak ones",
		Long: `Check whether a password appears verbatim on the bundled list of
commonly used passwords. Matching is exact, never fuzzy: a password is either
on the list or it is not.

Examples:
  salad password 123456
  salad password "correct horse battery staple"`,
		Args: cobra.ExactArgs(1),
		RunE: runPassword,
	}
}

func runPassword(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if wordsalad.IsPassword(args[0]) {
		fmt.Fprintln(out, cli.FormatWarning("found on the common password list - do not use it"))
		return nil
	}

	fmt.Fprintln(out, cli.FormatSuccess("not on the common password list"))
	fmt.Fprintln(out, cli.SubtleStyle.Render("absence from the list is not a strength guarantee"))
	return nil
}
