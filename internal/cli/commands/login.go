package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shindakun/ethicstraining/internal/cli/ui"
	"github.com/shindakun/ethicstraining/internal/formctl"
	"github.com/shindakun/ethicstraining/internal/tui"
)

var (
	errLoginFailed   = errors.New("authentication failed")
	errMFACodeNeeded = errors.New("MFA code required, rerun with --mfa-code")
	errLoginAborted  = errors.New("login cancelled")
)

type loginOptions struct {
	username string
	password string
	mfaCode  string
	latency  time.Duration
}

func newLoginCmd(root *rootOptions) *cobra.Command {
	opts := &loginOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "sign in to the training API",
		Long: `Sign in with a username and password. When the server asks for a second
factor, the MFA code is requested next.

Without --password and on a terminal, an interactive form is shown.
Otherwise the flags are submitted as-is; pass --mfa-code to complete the
second step.`,
		Example: `  # Interactive form
  $ ethicsctl login

  # Pre-fill the username
  $ ethicsctl login -u admin

  # Non-interactive
  $ ethicsctl login -u admin -p demo123 --mfa-code 123456

  # Simulate a slow network
  $ ethicsctl login --latency 1s`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&opts.password, "password", "p", "", "password (skips the interactive form)")
	cmd.Flags().StringVar(&opts.mfaCode, "mfa-code", "", "6-digit MFA code")
	cmd.Flags().DurationVar(&opts.latency, "latency", 0, "artificial delay added to each login request")

	return cmd
}

func runLogin(cmd *cobra.Command, root *rootOptions, opts *loginOptions) error {
	c, err := root.client()
	if err != nil {
		return err
	}
	submitter := formctl.WithLatency(c, opts.latency)

	var session *formctl.Session
	if opts.password == "" && ui.IsTTY() {
		session, err = loginInteractive(cmd, submitter, opts)
	} else {
		ui.PrintInfo(cmd.OutOrStdout(), "Connecting to %s...", c.BaseURL())
		session, err = loginWithFlags(cmd.Context(), cmd.OutOrStdout(), submitter, opts)
	}
	if err != nil {
		return err
	}

	printSession(cmd.OutOrStdout(), session)
	return nil
}

func loginInteractive(cmd *cobra.Command, submitter formctl.Submitter, opts *loginOptions) (*formctl.Session, error) {
	model := tui.NewLoginModel(cmd.Context(), submitter, opts.username)
	p := tea.NewProgram(model,
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("login form: %w", err)
	}

	session := final.(tui.LoginModel).Session()
	if session == nil {
		return nil, errLoginAborted
	}
	return session, nil
}

// loginWithFlags drives the same form controller the interactive form
// uses, filling it from flags instead of keystrokes
func loginWithFlags(ctx context.Context, w io.Writer, submitter formctl.Submitter, opts *loginOptions) (*formctl.Session, error) {
	ctl := formctl.New()
	if err := ctl.SetUsername(opts.username); err != nil {
		return nil, err
	}
	if err := ctl.SetPassword(opts.password); err != nil {
		return nil, err
	}

	res, err := submit(ctx, w, ctl, submitter)
	if err != nil {
		return nil, err
	}

	if res.Action == formctl.ActionShowMFA {
		if opts.mfaCode == "" {
			return nil, errMFACodeNeeded
		}
		if err := ctl.SetMFACode(opts.mfaCode); err != nil {
			return nil, err
		}
		if res, err = submit(ctx, w, ctl, submitter); err != nil {
			return nil, err
		}
	}

	if res.Action != formctl.ActionNavigate {
		ui.PrintErrorBox(w, "✗ Login Failed", formatFieldErrors(res.Errors))
		return nil, errLoginFailed
	}
	return res.Session, nil
}

func submit(ctx context.Context, w io.Writer, ctl *formctl.Controller, submitter formctl.Submitter) (formctl.Result, error) {
	res, err := ctl.Submit(ctx, submitter)
	var verr *formctl.ValidationError
	if errors.As(err, &verr) {
		for _, line := range strings.Split(formatFieldErrors(verr.Fields), "\n") {
			ui.PrintWarning(w, "%s", line)
		}
		return res, fmt.Errorf("invalid input")
	}
	return res, err
}

func formatFieldErrors(fe formctl.FieldErrors) string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == formctl.FieldGeneral {
			lines = append(lines, fe[k])
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", k, fe[k]))
	}
	return strings.Join(lines, "\n")
}

func printSession(w io.Writer, s *formctl.Session) {
	var b strings.Builder
	if s.User != nil {
		fmt.Fprintf(&b, "Username:  %s\n", s.User.Username)
		fmt.Fprintf(&b, "Name:      %s\n", s.User.Name)
		fmt.Fprintf(&b, "Email:     %s\n", s.User.Email)
		fmt.Fprintf(&b, "Role:      %s\n", s.User.Role)
	}
	fmt.Fprintf(&b, "Token:     %s", s.Token)

	ui.PrintSuccessBox(w, "✓ Login Successful", b.String())
	fmt.Fprintln(w)
	ui.PrintInfo(w, "Use the token with:")
	ui.PrintBold(w, "  ethicsctl users --token %s", s.Token)
}
