package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/glean/internal/engine/pipeline"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [data-file]",
		Short: "Analyze a data file and print the report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := runOptionsFromFlags(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				opts.DataFile = args[0]
			}
			if opts.DataFile == "" && opts.TextFile == "" {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			report, err := c.app.Run(opts)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), report)
			return nil
		},
	}
	addRunFlags(cmd)
	return cmd
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("data-file", "d", "", "Tabular input file (csv, json or xlsx)")
	cmd.Flags().StringP("text-column", "t", "", "Table column to extract the text corpus from")
	cmd.Flags().String("text-file", "", "Plain text file to load the corpus from")
	cmd.Flags().BoolP("clean", "c", false, "Clean data before analysis using the configured strategy")
	cmd.Flags().String("correlate", "", "Numeric column to correlate with text length and polarity")
	cmd.Flags().StringP("report", "o", "", "Write the report to this path")
	cmd.Flags().String("export", "", "Export the annotated table: csv, json or xlsx")
	cmd.Flags().String("export-dir", "", "Directory for exported files")
}

func runOptionsFromFlags(cmd *cobra.Command) (pipeline.RunOptions, error) {
	dataFile, err := cmd.Flags().GetString("data-file")
	if err != nil {
		return pipeline.RunOptions{}, err
	}
	textColumn, _ := cmd.Flags().GetString("text-column")
	textFile, _ := cmd.Flags().GetString("text-file")
	clean, _ := cmd.Flags().GetBool("clean")
	correlate, _ := cmd.Flags().GetString("correlate")
	report, _ := cmd.Flags().GetString("report")
	export, _ := cmd.Flags().GetString("export")
	exportDir, _ := cmd.Flags().GetString("export-dir")

	return pipeline.RunOptions{
		DataFile:     dataFile,
		TextColumn:   textColumn,
		TextFile:     textFile,
		Clean:        clean,
		Correlate:    correlate,
		ReportPath:   report,
		ExportFormat: export,
		ExportDir:    exportDir,
	}, nil
}
