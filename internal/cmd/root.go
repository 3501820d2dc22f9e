package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"classfeed/internal/config"
	appLog "classfeed/internal/log"
)

var (
	cfgPath string
	verbose bool

	// cfg is loaded once before any subcommand runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "classfeed",
	Short: "Publish a class-schedule spreadsheet as an iCalendar feed",
	Long: `classfeed converts tabular class-schedule data (course, title,
dates, times, location) into a subscribable iCalendar feed.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cfgPath == "" {
			// .env / environment fallback for the config location.
			cfgPath = os.Getenv("CLASSFEED_CONFIG")
		}
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if verbose {
			cfg.LogLevel = "debug"
		}
		appLog.SetLevel(appLog.ParseLevel(cfg.LogLevel))
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to YAML config file (optional)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log per-row skip diagnostics")
}
