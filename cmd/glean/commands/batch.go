package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch [data-files...]",
		Short: "Analyze multiple data files, each with its own report",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}
			opts, err := runOptionsFromFlags(cmd)
			if err != nil {
				return err
			}

			results, err := c.app.RunBatch(cmd.Context(), args, opts)
			out := cmd.OutOrStdout()
			for _, res := range results {
				if res.Err != nil {
					_, _ = fmt.Fprintf(out, "FAIL %s: %s\n", res.File, res.Err)
					continue
				}
				_, _ = fmt.Fprintf(out, "OK   %s: %d rows, %d texts, %d stages\n",
					res.File, res.Summary.DataRows, res.Summary.TextEntries, len(res.Summary.Stages))
			}
			return err
		},
	}
	addRunFlags(cmd)
	return cmd
}
