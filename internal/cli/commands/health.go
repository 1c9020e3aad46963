package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shindakun/ethicstraining/internal/cli/ui"
)

func newHealthCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "check that the API is up",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := root.client()
			if err != nil {
				return err
			}

			ctx, cancel := root.requestContext(cmd)
			defer cancel()

			h, err := c.Health(ctx)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			ui.PrintSuccess(w, "%s is %s", c.BaseURL(), h.Status)
			fmt.Fprintf(w, "  version:      %s\n", h.Version)
			fmt.Fprintf(w, "  environment:  %s\n", h.Environment)
			fmt.Fprintf(w, "  uptime:       %s\n", (time.Duration(h.Uptime * float64(time.Second))).Round(time.Second))
			fmt.Fprintf(w, "  instance:     %s\n", h.Instance)
			return nil
		},
	}
}
