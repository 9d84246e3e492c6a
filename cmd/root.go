package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmuldo/huecode/internal/logger"
	"github.com/mmuldo/huecode/palette"
	"github.com/mmuldo/huecode/report"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "huecode",
	Short: "Label catalog color swatches with a reference hue",
	Long: `huecode assigns each "#RRGGBB" swatch the nearest of six reference
colors (Red, Green, Blue, Yellow, Black, White) using a weighted
perceptual distance in L*a*b* space.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if e := rootCmd.ExecuteContext(ctx); e != nil {
		stop()
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	viper.SetDefault("format", report.FormatText)
	viper.SetDefault("lookup_url", palette.DefaultLookupURL)
	viper.SetDefault("workers", 8)
	viper.SetDefault("sheet.cell", 64)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.huecode.yaml)")
	pf.Bool("debug", false, "enable debug logging")
	pf.StringP("format", "f", report.FormatText, "output format: text, json or yaml")
	pf.String("lookup-url", palette.DefaultLookupURL, "color reference link, {hex} is replaced by the swatch")
	pf.String("template", "", "pongo2 template for text output")

	_ = viper.BindPFlag("debug", pf.Lookup("debug"))
	_ = viper.BindPFlag("format", pf.Lookup("format"))
	_ = viper.BindPFlag("lookup_url", pf.Lookup("lookup-url"))
	_ = viper.BindPFlag("template", pf.Lookup("template"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, e := homedir.Dir()
		if e == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".huecode")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("huecode")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	e := viper.ReadInConfig()

	logger.Setup(logger.Config{Debug: viper.GetBool("debug")})
	if e == nil {
		logger.L().Debug("config.loaded", "path", viper.ConfigFileUsed())
	} else {
		logger.L().Debug("config.skipped", "err", e)
	}
}

func renderOptions() report.Options {
	return report.Options{Template: viper.GetString("template")}
}
