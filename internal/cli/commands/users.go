package commands

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/shindakun/ethicstraining/internal/cli/ui"
	"github.com/shindakun/ethicstraining/internal/client"
	"github.com/shindakun/ethicstraining/internal/exporter"
	"github.com/shindakun/ethicstraining/internal/models"
)

// tokenEnv supplies --token when the flag is not given
const tokenEnv = "ETHICS_TOKEN"

func newUsersCmd(root *rootOptions) *cobra.Command {
	var (
		token  string
		output string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "users",
		Short: "list the admin portal's users",
		Long: fmt.Sprintf(`List the users shown in the admin portal. Requires the bearer token
returned by login, via --token or $%s.`, tokenEnv),
		Example: `  $ ethicsctl users --token demo-jwt-token-epa-ethics-training

  # Export for a spreadsheet
  $ ethicsctl users --token $ETHICS_TOKEN -o csv --file users.csv`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = os.Getenv(tokenEnv)
			}
			if token == "" {
				return fmt.Errorf("a token is required, pass --token or set $%s", tokenEnv)
			}

			var format exporter.Format
			if output != "table" {
				f, err := exporter.ParseFormat(output)
				if err != nil {
					return err
				}
				format = f
			} else if file != "" {
				return errors.New("--file needs --output csv or json")
			}

			c, err := root.client()
			if err != nil {
				return err
			}

			ctx, cancel := root.requestContext(cmd)
			defer cancel()

			users, err := c.AdminUsers(ctx, token)
			if errors.Is(err, client.ErrUnauthorized) {
				return fmt.Errorf("token rejected: %w", err)
			}
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch {
			case format == "":
				fmt.Fprintln(w, usersTable(users))
			case file != "":
				if err := exporter.ExportUsersToFile(users, format, file); err != nil {
					return err
				}
				ui.PrintSuccess(w, "Exported %d users to %s", len(users), file)
			default:
				return exporter.ExportUsers(w, users, format)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "bearer token from login")
	cmd.Flags().StringVarP(&output, "output", "o", "table", "output format: table, csv, json")
	cmd.Flags().StringVar(&file, "file", "", "write the export to a file instead of stdout")
	return cmd
}

func usersTable(users []models.AdminUser) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "USERNAME", "NAME", "EMAIL", "ROLE", "STATUS", "MODULES", "LAST LOGIN")
	for _, u := range users {
		t.Row(u.ID, u.Username, u.Name, u.Email, u.Role, u.Status, strconv.Itoa(u.Completed), u.LastLogin)
	}
	return t.String()
}
