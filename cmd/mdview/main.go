// Package main is the entry point for the mdview CLI, the surrounding
// application for the reconstruction engine. It converts pre-extracted
// glyph-run dumps to Markdown; byte-level decoding of source documents is
// the job of the extraction tool that produces the dumps.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the mdview CLI.
var rootCmd = &cobra.Command{
	Use:   "mdview",
	Short: "Reconstruct Markdown from extracted glyph runs",
	Long: `mdview reconstructs logical Markdown documents (paragraphs, bold emphasis,
bullet and numbered lists) from flat streams of positioned glyph runs, the
form in which page-description formats expose their text.

The convert subcommand reads JSON glyph-run dumps produced by an extraction
layer and writes the reconstructed Markdown alongside each input.`,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mdview version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("mdview", version)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
