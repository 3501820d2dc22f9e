package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"classfeed/internal/ics"
	"classfeed/internal/source"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an .ics feed from a schedule workbook",
	RunE: func(cmd *cobra.Command, args []string) error {
		xlsxPath, _ := cmd.Flags().GetString("xlsx")
		sheet, _ := cmd.Flags().GetString("sheet")
		out, _ := cmd.Flags().GetString("out")

		if sheet != "" {
			cfg.Sheet = sheet
		}
		if out != "" {
			cfg.Output = out
		}

		table, err := source.LoadWorkbook(xlsxPath, cfg.Sheet)
		if err != nil {
			return err
		}

		b := ics.NewBuilder(ics.Options{
			Timezone:  cfg.Timezone,
			ProdID:    cfg.ProdID,
			UIDDomain: cfg.UIDDomain,
		})
		res := b.Build(table)

		if dir := filepath.Dir(cfg.Output); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return err
			}
		}
		if err := os.WriteFile(cfg.Output, []byte(res.Feed), 0o644); err != nil {
			return err
		}

		fmt.Printf("Wrote %s with %d events\n", cfg.Output, res.Events)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringP("xlsx", "x", "", "path to the schedule workbook (required)")
	generateCmd.Flags().StringP("sheet", "s", "", "worksheet name (defaults to the first sheet)")
	generateCmd.Flags().StringP("out", "o", "", "output .ics path (defaults to config output)")

	generateCmd.MarkFlagRequired("xlsx")
}
