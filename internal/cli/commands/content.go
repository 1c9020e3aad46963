package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shindakun/ethicstraining/internal/cli/ui"
	"github.com/shindakun/ethicstraining/internal/models"
)

func newContentCmd(root *rootOptions) *cobra.Command {
	kinds := make([]string, len(models.ContentKinds))
	for i, k := range models.ContentKinds {
		kinds[i] = string(k)
	}

	return &cobra.Command{
		Use:   "content <kind>",
		Short: "print a static training collection",
		Long: fmt.Sprintf(`Fetch one of the static content collections and print it as JSON.

Kinds: %s`, strings.Join(kinds, ", ")),
		Example: `  $ ethicsctl content modules
  $ ethicsctl content glossary`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: kinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := models.ParseContentKind(args[0])
			if !ok {
				return fmt.Errorf("unknown content kind %q (valid: %s)", args[0], strings.Join(kinds, ", "))
			}

			c, err := root.client()
			if err != nil {
				return err
			}

			ctx, cancel := root.requestContext(cmd)
			defer cancel()

			items, err := c.Content(ctx, kind)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			ui.PrintSuccess(w, "%d %s", len(items), kind)
			for _, item := range items {
				var buf bytes.Buffer
				if err := json.Indent(&buf, item, "", "  "); err != nil {
					return fmt.Errorf("failed to format item: %w", err)
				}
				fmt.Fprintln(w, buf.String())
			}
			return nil
		},
	}
}
