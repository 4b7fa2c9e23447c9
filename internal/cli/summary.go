package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilereport/pkg/pipeline"
	"github.com/matzehuels/tilereport/pkg/tileset"
)

// summaryCommand creates the summary command.
func (c *CLI) summaryCommand() *cobra.Command {
	var flags designFlags

	cmd := &cobra.Command{
		Use:   "summary <design.json>",
		Short: "Print the image counts of a design",
		Long: `Print the image counts of a design without writing any files.

Images are listed in summary order, most used first. Ramp point and
evacuation tiles are not counted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSummary(cmd.Context(), flags.options(args[0]))
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runSummary(ctx context.Context, opts pipeline.Options) error {
	opts, err := c.resolveOptions(opts)
	if err != nil {
		return err
	}
	opts.Logger = loggerFromContext(ctx)

	result, err := c.newRunner().Analyze(ctx, opts)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(opts.Input))
	fmt.Println(runStats(result.Stats))
	fmt.Println(groupStats(result.Stats.Groups))
	fmt.Println(countsTable(result.Counts))
	return nil
}

// groupStats formats the number of tiles per category.
func groupStats(groups map[tileset.Category]int) string {
	parts := make([]string, 0, len(tileset.Categories))
	for _, c := range tileset.Categories {
		parts = append(parts, fmt.Sprintf("%s %d", c, groups[c]))
	}
	return statsLine(parts...)
}

// countsTable renders image counts as a table. Images without a design
// image file are dimmed.
func countsTable(counts []tileset.ImageCount) string {
	rows := make([][]string, len(counts))
	for i, c := range counts {
		thumb := iconSuccess
		if c.Path == "" {
			thumb = iconError
		}
		rows[i] = []string{strconv.Itoa(i + 1), c.Image, strconv.Itoa(c.Amount), thumb}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Image", "Amount", "Thumbnail").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			base := lipgloss.NewStyle().Padding(0, 1)
			if row < len(counts) && counts[row].Path == "" {
				return base.Foreground(colorDim)
			}
			if col == 2 {
				return base.Foreground(colorCyan)
			}
			return base
		}).
		Render()
}
