package growthcli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uyouii/growth-percentiles/reference"
	"go.uber.org/multierr"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the integrity of the reference tables",
		Long: `Checks every compiled-in curve set: strictly increasing ages, positive values,
a shared age grid and p3 <= p15 <= p50 <= p85 <= p97 at every age.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := reference.CheckWHO()
			if err != nil {
				for _, e := range multierr.Errors(err) {
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %v\n", e)
				}
				return err
			}
			for _, set := range store.Sets() {
				fmt.Fprintf(cmd.OutOrStdout(), "ok  %-6v %-18v %d ages\n",
					set.Sex, set.Metric, len(set.Curves[0].Samples))
			}
			return nil
		},
	}
}
