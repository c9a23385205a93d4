package growthcli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/uyouii/growth-percentiles/growth"
	"github.com/uyouii/growth-percentiles/model"
)

func newCurvesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curves",
		Short: "Print the reference curves sampled for plotting",
		Long: `Samples the five percentile curves from 0 to 24 months at the configured
resolution (curves.step, default 0.5 months) for charting.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sex, metric, err := sexMetricFlags(cmd)
			if err != nil {
				return err
			}
			step := cfg.Curves.Step
			if cmd.Flags().Changed("step") {
				step, _ = cmd.Flags().GetFloat64("step")
			}

			set, err := growth.Default().CurveSet(sex, metric)
			if err != nil {
				return err
			}
			points, err := growth.SampleCurves(set, step)
			if err != nil {
				return err
			}
			format, _ := cmd.Flags().GetString("format")
			return printCurves(cmd, points, format)
		},
	}
	addSexMetricFlags(cmd)
	cmd.Flags().Float64("step", growth.DefaultCurveStep, "sampling step in months")
	cmd.Flags().String("format", "csv", "output format: csv or json")
	return cmd
}

func printCurves(cmd *cobra.Command, points []growth.CurvePoint, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(points)
	case "csv":
		writer := csv.NewWriter(out)
		header := []string{"age_months"}
		for _, p := range model.Percentiles {
			header = append(header, p.String())
		}
		writer.Write(header)
		for _, point := range points {
			row := []string{strconv.FormatFloat(point.AgeMonths, 'f', 2, 64)}
			for _, v := range point.Thresholds.Values() {
				row = append(row, strconv.FormatFloat(v, 'f', 3, 64))
			}
			writer.Write(row)
		}
		writer.Flush()
		return writer.Error()
	}
	return fmt.Errorf("unknown output format %q", format)
}
