package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/assetpipe/internal/core/domain"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Build for distribution, then serve and rebuild on change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Build(cmd.Context(), domain.ModeDistribution)
		},
	}
}
