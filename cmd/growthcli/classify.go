package growthcli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/uyouii/growth-percentiles/config"
	"github.com/uyouii/growth-percentiles/growth"
	"github.com/uyouii/growth-percentiles/model"
	"github.com/uyouii/growth-percentiles/utils"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify one measurement against the percentile curves",
		Long: `Interpolates the five WHO percentile curves at the given age and reports which
band the measured value falls in, with the thresholds and an estimated z-score.`,
		Example: "  growthcli classify --sex male --metric weight --age 4.5 --value 6.8",
		RunE: func(cmd *cobra.Command, args []string) error {
			sex, metric, err := sexMetricFlags(cmd)
			if err != nil {
				return err
			}
			age, _ := cmd.Flags().GetFloat64("age")
			value, _ := cmd.Flags().GetFloat64("value")

			classification, err := growth.Classify(sex, metric, age, value)
			if err != nil {
				return err
			}
			return printClassification(cmd, classification, viper.GetString(config.KeyOutputFormat))
		},
	}
	addSexMetricFlags(cmd)
	cmd.Flags().Float64("age", 0, "age at measurement in months")
	cmd.Flags().Float64("value", 0, "measured value (cm or kg)")
	cmd.Flags().String("format", "table", "output format: table or json")
	cmd.MarkFlagRequired("age")
	cmd.MarkFlagRequired("value")
	viper.BindPFlag(config.KeyOutputFormat, cmd.Flags().Lookup("format"))
	return cmd
}

func printClassification(cmd *cobra.Command, c model.GrowthClassification, format string) error {
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(c)
	case "table", "":
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	unit := c.Metric.Unit()
	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("%v %v at %.2f months: %v %s",
		c.Sex, c.Metric, c.Point.AgeMonths, utils.FormatFloat(c.Point.Value, 2), unit)))

	t := newTable("percentile", "value ("+unit+")")
	values := c.Thresholds.Values()
	for i, p := range model.Percentiles {
		t.Row(p.String(), fmt.Sprintf("%.2f", values[i]))
	}
	fmt.Fprintln(out, t.String())
	fmt.Fprintf(out, "band: %s\n", renderBand(c.Band))
	fmt.Fprintf(out, "z-score: %.2f (about P%.1f)\n", c.ZScore, c.Percentile)
	return nil
}
