package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"dashkit/internal/tokens"
)

type tokensOptions struct {
	css bool
}

func newTokensCmd() *cobra.Command {
	opts := &tokensOptions{}

	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Show the colour palette or print the token stylesheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.css {
				_, err := io.WriteString(cmd.OutOrStdout(), tokens.Stylesheet())
				return err
			}
			return renderSwatches(cmd.OutOrStdout(), tokens.Palette())
		},
	}

	cmd.Flags().BoolVar(&opts.css, "css", false, "Print the generated CSS instead of swatches")

	return cmd
}

var (
	scaleNameStyle = lipgloss.NewStyle().Bold(true).Width(12)
	stepStyle      = lipgloss.NewStyle().Width(9).Align(lipgloss.Center)
)

// renderSwatches prints one row per colour scale. Each step is a block filled with its
// colour and labelled with the step number.
func renderSwatches(w io.Writer, palette []tokens.Swatch) error {
	rows := lo.PartitionBy(palette, func(s tokens.Swatch) string { return s.Scale })
	for _, row := range rows {
		cells := make([]string, 0, len(row)+1)
		cells = append(cells, scaleNameStyle.Render(row[0].Scale))
		for _, swatch := range row {
			fg := lipgloss.Color("#111827")
			if isDarkStep(swatch.Step) {
				fg = lipgloss.Color("#ffffff")
			}
			cells = append(cells, stepStyle.
				Background(lipgloss.Color(swatch.Hex)).
				Foreground(fg).
				Render(swatch.Step))
		}
		if _, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cells...)); err != nil {
			return err
		}
	}
	return nil
}

func isDarkStep(step string) bool {
	return len(step) == 3 && strings.Compare(step, "500") >= 0
}
