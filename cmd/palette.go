package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/huecode/palette"
	"github.com/mmuldo/huecode/report"
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the reference colors",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report.RenderPalette(cmd.OutOrStdout(), viper.GetString("format"), palette.DefaultPalette())
	},
}

func init() {
	rootCmd.AddCommand(paletteCmd)
}
