package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/thezuck/mdview"
	"github.com/thezuck/mdview/glyph"
)

var convertCmd = &cobra.Command{
	Use:   "convert [runs.json...]",
	Short: "Convert glyph-run dumps to Markdown",
	Long: `Convert reads JSON glyph-run dumps (an array of pages, each an array of
{text, x, y, fontSize, fontName} objects) and writes the reconstructed
Markdown next to each input, extension swapped to .md.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		outDir, _ := cmd.Flags().GetString("out-dir")
		raw, _ := cmd.Flags().GetBool("raw")

		for _, path := range args {
			if err := convertOne(cmd, path, title, outDir, raw); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	convertCmd.Flags().String("title", "", "override the filename-derived document heading")
	convertCmd.Flags().String("out-dir", "", "directory for output files (default: alongside input)")
	convertCmd.Flags().Bool("raw", false, "skip post-normalization passes")

	rootCmd.AddCommand(convertCmd)
}

func convertOne(cmd *cobra.Command, path, title, outDir string, raw bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var pages [][]glyph.Run
	if err := sonic.Unmarshal(data, &pages); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	conv := mdview.FromPages(pages, filepath.Base(path))
	if title != "" {
		conv = conv.Title(title)
	}
	if raw {
		conv = conv.WithoutNormalization()
	}

	result, warnings, err := conv.Convert(cmd.Context())
	if err != nil {
		return fmt.Errorf("convert %s: %w", path, err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, w)
	}

	dir := outDir
	if dir == "" {
		dir = filepath.Dir(path)
	}
	out := filepath.Join(dir, result.Filename)
	if err := os.WriteFile(out, []byte(result.Markdown+"\n"), 0o644); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d pages)\n", path, out, result.PageCount)
	return nil
}
