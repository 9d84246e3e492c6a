package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/huecode/internal/errs"
	"github.com/mmuldo/huecode/internal/logger"
	"github.com/mmuldo/huecode/palette"
	"github.com/mmuldo/huecode/report"
)

var showDistances bool

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify HEX...",
	Short: "Classify swatches against the reference palette",
	Long: `Classify prints the nearest reference color for each "#RRGGBB" swatch.
The leading '#' is optional and case does not matter.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries := make([]report.Entry, 0, len(args))
		for _, a := range args {
			rgb, e := palette.ParseHex(a)
			if e != nil {
				return errs.New("cmd.classify", errs.KindInvalidInput, e)
			}
			entries = append(entries, classifyEntry(a, rgb))
		}

		return report.Render(cmd.OutOrStdout(), viper.GetString("format"), entries, renderOptions())
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	classifyCmd.Flags().BoolVarP(&showDistances, "distances", "d", false, "show the distance to every reference")
}

func classifyEntry(label string, rgb palette.RGB) report.Entry {
	r := palette.Classify(rgb)
	logger.L().Debug("classify.result", "color", rgb.Hex(), "code", r.Reference.Code, "distance", r.Distance)

	e := report.Entry{
		Label:  label,
		RGB:    rgb,
		Result: r,
		URL:    palette.LookupURL(viper.GetString("lookup_url"), rgb.Hex()),
	}
	if showDistances {
		e.Distances = palette.DefaultPalette().Distances(rgb)
	}
	return e
}
