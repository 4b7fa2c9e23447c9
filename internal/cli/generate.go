package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/tilereport/pkg/errors"
	"github.com/matzehuels/tilereport/pkg/pipeline"
)

// designFlags are the flags shared by commands that read a design.
type designFlags struct {
	tilesDir   string
	evacuation string
}

func (f *designFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.tilesDir, "tiles-dir", "", "directory holding the design images (default \""+pipeline.DefaultTilesDir+"\")")
	cmd.Flags().StringVar(&f.evacuation, "evacuation", "", "evacuation images (comma-separated, default ev1.png,ev2.png,ev3.png)")
}

func (f *designFlags) options(input string) pipeline.Options {
	return pipeline.Options{
		Input:            input,
		TilesDir:         f.tilesDir,
		EvacuationImages: parseList(f.evacuation),
	}
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		flags      designFlags
		outputDir  string
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "generate [design.json]",
		Short: "Write the tile list and tile summary reports for a design",
		Long: `Write the tile list and tile summary reports for a design.

The tile list holds one row per tile, grouped as other, ramp point,
under-ramp and evacuation tiles. The summary shows each counted image with
its thumbnail and number of uses.

Without an argument, a design is picked interactively from the JSON files
in the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			} else {
				picked, err := pickDesign(".")
				if err != nil {
					return err
				}
				if picked == "" {
					printInfo("No design selected")
					return nil
				}
				input = picked
			}

			opts := flags.options(input)
			opts.OutputDir = outputDir
			opts.Formats = parseList(formatsStr)
			return c.runGenerate(cmd.Context(), opts)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", "", "directory for the reports (default current directory)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): xlsx (default), json, sqlite (comma-separated)")

	return cmd
}

// runGenerate runs the full pipeline and prints the written files.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options) error {
	opts, err := c.resolveOptions(opts)
	if err != nil {
		return err
	}
	logger := loggerFromContext(ctx)
	opts.Logger = logger
	prog := newProgress(logger)

	spinner := newSpinner(ctx, "Generating reports...")
	spinner.Start()

	result, err := c.newRunner().Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return err
	}
	spinner.Stop()

	printSuccess("Generated %s for %s", plural(len(result.Outputs), "report"), opts.Input)
	fmt.Println(runStats(result.Stats))
	for _, out := range result.Outputs {
		printFile(out.Path)
	}
	if missing := result.Stats.ImageCount - result.Stats.ResolvedCount; missing > 0 {
		printWarning("%s without a design image in %s", plural(missing, "image"), opts.TilesDir)
	}
	if result.Stats.SummaryPages > 1 {
		printWarning("summary continues on %d extra sheets", result.Stats.SummaryPages-1)
	}
	prog.done("Generated " + plural(len(result.Outputs), "report"))
	return nil
}

// runStats formats the statistics of a pipeline run.
func runStats(s pipeline.Stats) string {
	placeholders := ""
	if s.PlaceholderCount > 0 {
		placeholders = plural(s.PlaceholderCount, "placeholder")
	}
	return statsLine(
		plural(s.TileCount, "tile"),
		placeholders,
		plural(s.ImageCount, "image"),
		fmt.Sprintf("%d resolved", s.ResolvedCount),
	)
}
