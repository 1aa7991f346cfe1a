package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/akyairhashvil/deliverydesk/internal/tui"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate a PDF progress report for the project",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		p, err := openPortal(ctx)
		if err != nil {
			return err
		}
		defer p.close()

		outDir, _ := cmd.Flags().GetString("out")
		if outDir == "" {
			outDir = p.cfg.ReportsOutput
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}

		path, err := tui.GeneratePDFReport(ctx, p.svc, p.project, outDir, time.Now())
		if err != nil {
			return err
		}
		fmt.Printf("Report generated: %s\n", path)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringP("out", "o", "", "Output directory (defaults to the configured reports directory)")
}
