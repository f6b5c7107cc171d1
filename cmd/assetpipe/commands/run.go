package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/assetpipe/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [tasks...]",
		Short: "Run the named tasks once",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				// Display command usage help without returning an error
				_ = cmd.Help()
				return nil
			}

			mode := domain.ModeDistribution
			if dev, _ := cmd.Flags().GetBool("dev"); dev {
				mode = domain.ModeDevelopment
			}
			return c.app.Run(cmd.Context(), args, mode)
		},
	}
	cmd.Flags().BoolP("dev", "d", false, "Write development output instead of distribution output")
	return cmd
}
