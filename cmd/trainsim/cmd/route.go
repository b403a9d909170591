package cmd

import (
	"github.com/spf13/cobra"

	"github.com/railtoy/track/internal/config"
)

func newRouteCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "route",
		Short: "Print the segments of the selected track",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := buildRoute(cfg)
			if err != nil {
				return err
			}
			renderRoute(cmd.OutOrStdout(), r)
			return nil
		},
	}
}
