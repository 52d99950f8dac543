package cmd

import (
	"fmt"
	"io"

	"appcolors/internal/cli"
	"appcolors/internal/color"
	"appcolors/internal/palette"

	"github.com/spf13/cobra"
)

var (
	paletteOutput string
	paletteJSON   bool
)

var paletteCmd = &cobra.Command{
	Use:   "palette <image>",
	Short: "Show the color palette of an image",
	Long: `Quantizes an image (PNG, JPEG, GIF or WebP) the same way launcher icons are
processed and prints the categorized swatches and the color that would be
picked for the application.`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func runPalette(cmd *cobra.Command, args []string) error {
	printer, err := newPrinter(cmd, paletteOutput, paletteJSON)
	if err != nil {
		return err
	}

	application, err := newApplication()
	if err != nil {
		return err
	}

	p, err := application.ExtractPalette(args[0])
	if err != nil {
		return err
	}

	summary := palette.Summarize(p)
	switch {
	case printer.Structured():
		return printer.PrintStructured(summary)
	case printer.Format() == cli.OutputFormatTable:
		printer.PrintTable([]string{"slot", "swatch", "color", "population"}, paletteRows(p))
		return nil
	default:
		printPalette(cmd.OutOrStdout(), p, summary)
		return nil
	}
}

func paletteRows(p *palette.Palette) [][]interface{} {
	var rows [][]interface{}
	for _, t := range palette.AllTargets() {
		if s, ok := p.Swatch(t); ok {
			rows = append(rows, []interface{}{t.String(), color.Swatch(s.RGB, 4), s.RGB.Hex(), s.Population})
		}
	}
	return rows
}

func printPalette(out io.Writer, p *palette.Palette, summary palette.Summary) {
	for _, t := range palette.AllTargets() {
		s, ok := p.Swatch(t)
		if !ok {
			fmt.Fprintf(out, "%-14s -\n", t)
			continue
		}
		fmt.Fprintf(out, "%-14s %s %s %d\n", t, color.Swatch(s.RGB, 4), s.RGB.Hex(), s.Population)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "swatches: %d\n", len(summary.Swatches))
	if summary.Best.IsValid() {
		fmt.Fprintf(out, "best: %s\n", color.Label(summary.Best))
	} else {
		fmt.Fprintf(out, "best: %s (reserved, not usable)\n", summary.Best.Hex())
	}
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	paletteCmd.Flags().StringVarP(&paletteOutput, "output", "o", "text", "Output format: text, table, json or yaml")
	paletteCmd.Flags().BoolVar(&paletteJSON, "json", false, "Shorthand for --output json")
}
