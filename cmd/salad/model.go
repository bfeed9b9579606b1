package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	wordsalad "github.com/Veraticus/word-salad"
	"github.com/Veraticus/word-salad/internal/cli"
	"github.com/Veraticus/word-salad/internal/common"
	"github.com/Veraticus/word-salad/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func modelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "model",
		Short: "Manage the enhanced detection model",
	}

	cmd.PersistentFlags().String("path", "", "model directory (default: the user cache directory)")
	_ = viper.BindPFlag("model.path", cmd.PersistentFlags().Lookup("path"))

	cmd.AddCommand(modelDownloadCmd())
	cmd.AddCommand(modelStatusCmd())
	return cmd
}

// modelPath resolves the configured model directory, defaulting to the
// conventional cache location.
func modelPath() string {
	if path := viper.GetString("model.path"); path != "" {
		return config.ExpandPath(path)
	}
	return wordsalad.DefaultModelPath()
}

func modelDownloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download",
		Short: "Download the model files from HuggingFace",
		Long: `Download the model files needed for enhanced detection.

The download requires a HuggingFace token, either via --token or the
HUGGING_FACE_HUB_TOKEN environment variable. Files already present are kept,
so an interrupted download can simply be run again.`,
		RunE: runModelDownload,
	}

	cmd.Flags().String("token", "", "HuggingFace token (default: $HUGGING_FACE_HUB_TOKEN)")
	_ = viper.BindPFlag("model.token", cmd.Flags().Lookup("token"))

	return cmd
}

func runModelDownload(cmd *cobra.Command, _ []string) error {
	path := modelPath()
	out := cmd.OutOrStdout()

	if wordsalad.ModelExists(path) {
		fmt.Fprintln(out, cli.FormatSuccess("model already present at "+path))
		return nil
	}

	fmt.Fprintln(out, cli.FormatTitle("Downloading enhanced detection model"))
	fmt.Fprintln(out, cli.SubtleStyle.Render("target: "+path))

	progress := cli.DownloadProgress(os.Stderr, "Downloading model files...")
	err := wordsalad.DownloadModel(cmd.Context(), path, progress, viper.GetString("model.token"))
	if err != nil {
		if errors.Is(err, common.ErrTokenRequired) {
			fmt.Fprintln(out, cli.FormatWarning("a HuggingFace token is required"))
			fmt.Fprintln(out, cli.FormatInfo("get one at https://huggingface.co/settings/tokens, then"))
			fmt.Fprintln(out, cli.FormatInfo("re-run with --token or set HUGGING_FACE_HUB_TOKEN"))
		}
		return fmt.Errorf("model download failed: %w", err)
	}

	fmt.Fprintln(out, cli.FormatSuccess("model downloaded to "+path))
	fmt.Fprintln(out, cli.FormatInfo("enhanced detection is now available"))
	return nil
}

func modelStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether the model is downloaded and usable",
		RunE:  runModelStatus,
	}
}

func runModelStatus(cmd *cobra.Command, _ []string) error {
	path := modelPath()

	lines := []string{cli.SubtleStyle.Render("path: " + path)}

	if wordsalad.ModelExists(path) {
		lines = append(lines, cli.FormatSuccess("model files present - enhanced detection available"))
	} else {
		lines = append(lines, cli.FormatWarning("model files missing - detection runs in basic mode"))

		switch wordsalad.CheckTokenStatus(path) {
		case wordsalad.TokenAvailable:
			lines = append(lines, cli.KeyIcon+" "+cli.InfoStyle.Render("HuggingFace token found; run: salad model download"))
		case wordsalad.TokenRequired:
			lines = append(lines, cli.KeyIcon+" "+cli.InfoStyle.Render("set HUGGING_FACE_HUB_TOKEN, then run: salad model download"))
		case wordsalad.TokenNotRequired:
			// Unreachable when the model is missing; covered for completeness.
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox(cli.ModelIcon+" Model status", strings.Join(lines, "\n")))
	return nil
}
