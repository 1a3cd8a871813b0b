package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/noah-isme/campus-desk-api/internal/models"
)

func reportCmd() *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "report <report-id>",
		Short: "Render a report from the seed data without starting the server",
		Long:  `Renders one of user-report, lecturer-report, building-report or student-report as CSV or PDF.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp()
			if err != nil {
				return err
			}
			defer a.close()

			reportFormat := models.ReportFormat(strings.ToLower(format))
			if !reportFormat.Valid() {
				return fmt.Errorf("unsupported format %q", format)
			}

			data, err := a.exporter.Render(cmd.Context(), args[0], reportFormat)
			if err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.logger.Info("report written", zap.String("report_id", args[0]), zap.String("path", out), zap.Int("bytes", len(data)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format (csv or pdf)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file, stdout when empty")
	return cmd
}
