package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"classfeed/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the feed over HTTP, regenerating on a cron schedule",
	RunE: func(cmd *cobra.Command, args []string) error {
		xlsxPath, _ := cmd.Flags().GetString("xlsx")
		sheet, _ := cmd.Flags().GetString("sheet")
		listen, _ := cmd.Flags().GetString("listen")

		if sheet != "" {
			cfg.Sheet = sheet
		}
		if listen != "" {
			cfg.Listen = listen
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		err := web.Run(ctx, cfg, xlsxPath)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("xlsx", "x", "", "path to the schedule workbook (required)")
	serveCmd.Flags().StringP("sheet", "s", "", "worksheet name (defaults to the first sheet)")
	serveCmd.Flags().StringP("listen", "l", "", "HTTP listen address (overrides config)")

	serveCmd.MarkFlagRequired("xlsx")
}
