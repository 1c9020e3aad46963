// Package commands implements the ethicsctl command tree.
package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shindakun/ethicstraining/internal/cli/ui"
	"github.com/shindakun/ethicstraining/internal/client"
	"github.com/shindakun/ethicstraining/internal/version"
)

const defaultAPI = "http://localhost:3001"

// rootOptions are the flags shared by every subcommand
type rootOptions struct {
	api     string
	timeout time.Duration
}

// NewRootCmd builds the ethicsctl command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "ethicsctl",
		Short:   "EPA ethics training API client",
		Version: version.GetVersion(),
		Long: `A command-line client for the EPA ethics training mock API. Signs in
through the same two-step form the training app uses (credentials, then an
MFA code) and reads the static training content.`,
		Example: `  # Sign in interactively
  $ ethicsctl login

  # Sign in without prompts
  $ ethicsctl login -u admin -p demo123 --mfa-code 123456

  # List the training modules
  $ ethicsctl content modules

  # Show the admin user table
  $ ethicsctl users --token demo-jwt-token-epa-ethics-training`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.api, "api", defaultAPI, "API base URL")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "timeout for content, health and users requests; login calls are not bounded")

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetVersionTemplate(fmt.Sprintf("ethicsctl version %s\n", version.GetFullVersion()))

	rootCmd.AddCommand(newLoginCmd(opts))
	rootCmd.AddCommand(newContentCmd(opts))
	rootCmd.AddCommand(newHealthCmd(opts))
	rootCmd.AddCommand(newUsersCmd(opts))

	return rootCmd
}

// Execute runs the command tree and reports any error on stderr
func Execute() error {
	cmd := NewRootCmd()
	err := cmd.Execute()
	if err != nil {
		ui.PrintError(cmd.ErrOrStderr(), "%v", err)
	}
	return err
}

func (o *rootOptions) client() (*client.Client, error) {
	return client.New(o.api)
}

// requestContext bounds a single read-only API call
func (o *rootOptions) requestContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), o.timeout)
}
