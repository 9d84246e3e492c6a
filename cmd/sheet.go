package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/huecode/image"
	"github.com/mmuldo/huecode/internal/errs"
	"github.com/mmuldo/huecode/internal/logger"
	"github.com/mmuldo/huecode/palette"
)

var (
	sheetOut     string
	sheetColumns int
)

// sheetCmd represents the sheet command
var sheetCmd = &cobra.Command{
	Use:   "sheet HEX...",
	Short: "Render swatches and their reference colors to a PNG",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ss := make([]image.Swatch, 0, len(args))
		for _, a := range args {
			rgb, e := palette.ParseHex(a)
			if e != nil {
				return errs.New("cmd.sheet", errs.KindInvalidInput, e)
			}
			ss = append(ss, image.Swatch{Color: rgb, Reference: palette.Classify(rgb).Reference})
		}

		img := image.Sheet(ss, viper.GetInt("sheet.cell"), sheetColumns)
		if e := image.Save(sheetOut, img); e != nil {
			return e
		}

		logger.L().Info("sheet.saved", "path", sheetOut, "swatches", len(ss))
		fmt.Fprintln(cmd.OutOrStdout(), sheetOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sheetCmd)

	sheetCmd.Flags().StringVarP(&sheetOut, "output", "o", "swatches.png", "output PNG path")
	sheetCmd.Flags().IntVar(&sheetColumns, "columns", 6, "swatches per row")
	sheetCmd.Flags().Int("cell", 64, "cell size in pixels")

	_ = viper.BindPFlag("sheet.cell", sheetCmd.Flags().Lookup("cell"))
}
