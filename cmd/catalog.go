package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/huecode/catalog"
	"github.com/mmuldo/huecode/internal/logger"
	"github.com/mmuldo/huecode/palette"
	"github.com/mmuldo/huecode/report"
)

var summaryOnly bool

// catalogCmd represents the catalog command
var catalogCmd = &cobra.Command{
	Use:   "catalog FILE",
	Short: "Label every item of a YAML catalog",
	Long: `Catalog reads a YAML file of the form

  items:
    - name: Nero Marquina
      color: "#0a0a0a"

and labels each item. Items without a usable color are reported and skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, e := catalog.Load(args[0])
		if e != nil {
			return e
		}

		workers := viper.GetInt("workers")
		ls, e := catalog.ClassifyAll(cmd.Context(), c.Items, workers)
		if e != nil {
			return e
		}

		counts := catalog.Summary(ls)
		logger.L().Info("catalog.done", "path", args[0], "items", len(ls), "labeled", total(counts), "workers", workers)

		format := viper.GetString("format")
		if summaryOnly {
			return report.RenderSummary(cmd.OutOrStdout(), format, counts)
		}

		lookup := viper.GetString("lookup_url")
		entries := make([]report.Entry, len(ls))
		for i, l := range ls {
			entries[i] = report.Entry{
				Label:  l.Item.Name,
				RGB:    l.RGB,
				Result: l.Result,
				Err:    l.Err,
			}
			if l.Err == nil {
				entries[i].URL = palette.LookupURL(lookup, l.RGB.Hex())
			}
		}

		return report.Render(cmd.OutOrStdout(), format, entries, renderOptions())
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().IntP("workers", "n", 8, "number of concurrent classifiers")
	catalogCmd.Flags().BoolVarP(&summaryOnly, "summary", "s", false, "only print counts per reference color")

	_ = viper.BindPFlag("workers", catalogCmd.Flags().Lookup("workers"))
}

func total(counts map[string]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}
