package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/huecode/internal/errs"
	"github.com/mmuldo/huecode/palette"
	"github.com/mmuldo/huecode/report"
)

var compareWeight float64

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare SAMPLE REFERENCE",
	Short: "Show the distance between two swatches",
	Long: `Compare prints the weighted distance used for classification next to
the published CIEDE2000 difference. The weighted distance is not
symmetric: SAMPLE plays the role of the swatch being classified.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		sample, e := palette.ParseHex(args[0])
		if e != nil {
			return errs.New("cmd.compare", errs.KindInvalidInput, e)
		}
		ref, e := palette.ParseHex(args[1])
		if e != nil {
			return errs.New("cmd.compare", errs.KindInvalidInput, e)
		}

		s, r := palette.ToLab(sample), palette.ToLab(ref)
		c := report.Comparison{
			Sample:    sample,
			Reference: ref,
			Weight:    compareWeight,
			Weighted:  palette.Distance(s, r, compareWeight),
			Standard:  palette.Standard(s, r),
		}

		return report.RenderComparison(cmd.OutOrStdout(), viper.GetString("format"), c)
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().Float64VarP(&compareWeight, "weight", "w", 1, "weight applied to the distance")
}
