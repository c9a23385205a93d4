package growthcli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/uyouii/growth-percentiles/export"
	"github.com/uyouii/growth-percentiles/growth"
	"github.com/uyouii/growth-percentiles/records"
	"github.com/uyouii/growth-percentiles/series"
	"github.com/uyouii/growth-percentiles/utils"
	"go.uber.org/zap"
)

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Evaluate a child's growth records and export a report",
		Long: `Reads a JSON dataset (child profile and growth records), computes the age at
each measurement from the birth date, classifies every record carrying the
metric, detects band shifts between consecutive measurements, and writes the
report as json, csv or xlsx.`,
		Example: "  growthcli report --input baby.json --metric weight --format xlsx --output weight.xlsx",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := utils.GetLogger(ctx)

			metric, err := metricFlag(cmd)
			if err != nil {
				return err
			}
			formatFlag, _ := cmd.Flags().GetString("format")
			format, err := export.ParseFormat(formatFlag)
			if err != nil {
				return err
			}
			input, _ := cmd.Flags().GetString("input")
			output, _ := cmd.Flags().GetString("output")

			dataset, err := records.NewFileSource(input).Load(ctx)
			if err != nil {
				return err
			}

			s, err := series.Build(ctx, growth.Default(), dataset.Child, dataset.Records, metric, cfg.Curves.Step)
			if err != nil {
				return err
			}
			if s.IsEmpty() {
				logger.Warn("no measurements for metric", zap.Stringer("metric", metric))
			}
			report := export.NewReport(s, time.Now())

			out := cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			} else if format == export.FormatExcel {
				return fmt.Errorf("--output is required for %s reports", format)
			}

			if err := export.Write(out, format, report); err != nil {
				return err
			}
			logger.Info("report written", zap.String("format", string(format)),
				zap.Int("rows", len(report.Rows)), zap.Int("shifts", len(report.Shifts)))
			return nil
		},
	}
	cmd.Flags().String("input", "", "dataset JSON file")
	cmd.Flags().String("metric", "", "metric: height, weight or head_circumference")
	cmd.Flags().String("format", "json", "report format: json, csv or xlsx")
	cmd.Flags().String("output", "", "output file (stdout when empty)")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("metric")
	return cmd
}
