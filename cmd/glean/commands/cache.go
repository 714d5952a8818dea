package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Inspect and manage the analysis cache",
	}
	cmd.AddCommand(c.newCacheClearCmd())
	cmd.AddCommand(c.newCacheSizeCmd())
	return cmd
}

func (c *CLI) newCacheClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear [categories...]",
		Short: "Remove cached entries, all categories by default",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := make([]domain.Category, 0, len(args))
			for _, arg := range args {
				cat := domain.Category(arg)
				if !domain.ValidCategory(cat) {
					return zerr.With(domain.ErrInvalidCategory, "category", arg)
				}
				categories = append(categories, cat)
			}
			return c.app.ClearCache(categories...)
		},
	}
}

func (c *CLI) newCacheSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Print entry counts and byte totals per cache category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := c.app.CacheSize()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var entries int
			var bytes int64
			for _, cat := range domain.Categories() {
				usage := report[cat]
				_, _ = fmt.Fprintf(out, "%-10s %6d entries %10d bytes\n", cat, usage.EntryCount, usage.TotalBytes)
				entries += usage.EntryCount
				bytes += usage.TotalBytes
			}
			_, _ = fmt.Fprintf(out, "%-10s %6d entries %10d bytes\n", "total", entries, bytes)
			return nil
		},
	}
}
