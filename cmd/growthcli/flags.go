package growthcli

import (
	"github.com/spf13/cobra"
	"github.com/uyouii/growth-percentiles/model"
)

func addSexMetricFlags(cmd *cobra.Command) {
	cmd.Flags().String("sex", "", "child sex: male or female")
	cmd.Flags().String("metric", "", "metric: height, weight or head_circumference")
	cmd.MarkFlagRequired("sex")
	cmd.MarkFlagRequired("metric")
}

func sexMetricFlags(cmd *cobra.Command) (model.Sex, model.Metric, error) {
	sexFlag, _ := cmd.Flags().GetString("sex")
	metricFlag, _ := cmd.Flags().GetString("metric")
	sex, err := model.ParseSex(sexFlag)
	if err != nil {
		return 0, 0, err
	}
	metric, err := model.ParseMetric(metricFlag)
	if err != nil {
		return 0, 0, err
	}
	return sex, metric, nil
}

func metricFlag(cmd *cobra.Command) (model.Metric, error) {
	metricFlag, _ := cmd.Flags().GetString("metric")
	return model.ParseMetric(metricFlag)
}
