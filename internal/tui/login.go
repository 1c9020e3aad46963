// Package tui renders the login form in the terminal.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shindakun/ethicstraining/internal/auth"
	"github.com/shindakun/ethicstraining/internal/formctl"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2E7D32")).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Bold(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#D32F2F"))
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#D32F2F")).Padding(0, 1)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#757575")).Italic(true)
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1565C0"))
)

type field int

const (
	fieldUsername field = iota
	fieldPassword
	fieldMFA
)

// submittedMsg carries the settled submission back into the update loop
type submittedMsg struct {
	outcome auth.Outcome
	err     error
}

// LoginModel is the bubbletea model for the two-phase login form
type LoginModel struct {
	ctx       context.Context
	ctl       *formctl.Controller
	submitter formctl.Submitter

	username textinput.Model
	password textinput.Model
	mfa      textinput.Model
	focus    field

	session *formctl.Session
	quit    bool
}

// NewLoginModel creates the form. prefill sets the username field.
func NewLoginModel(ctx context.Context, submitter formctl.Submitter, prefill string) LoginModel {
	username := textinput.New()
	username.Placeholder = "username"
	username.Prompt = "> "
	username.CharLimit = 128
	username.SetValue(prefill)

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = "> "
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	mfa := textinput.New()
	mfa.Placeholder = "6-digit code"
	mfa.Prompt = "> "
	mfa.CharLimit = 6

	m := LoginModel{
		ctx:       ctx,
		ctl:       formctl.New(),
		submitter: submitter,
		username:  username,
		password:  password,
		mfa:       mfa,
	}
	_ = m.ctl.SetUsername(prefill) // a new controller accepts every edit
	if prefill != "" {
		m.focus = fieldPassword
	}
	m.applyFocus()
	return m
}

// Session returns the authenticated session, nil if the user quit
func (m LoginModel) Session() *formctl.Session {
	return m.session
}

// Init implements tea.Model
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case submittedMsg:
		res := m.ctl.Complete(msg.outcome, msg.err)
		switch res.Action {
		case formctl.ActionNavigate:
			m.session = res.Session
			return m, tea.Quit
		case formctl.ActionShowMFA:
			m.mfa.SetValue("")
			m.focus = fieldMFA
		default:
			if m.ctl.Phase() == formctl.AwaitingMfa {
				m.focus = fieldMFA
			}
		}
		m.applyFocus()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quit = true
			return m, tea.Quit
		case "esc":
			if m.ctl.Cancel() {
				m.password.SetValue("")
				m.mfa.SetValue("")
				m.focus = fieldPassword
				m.applyFocus()
				return m, nil
			}
			if m.ctl.Phase() != formctl.Submitting {
				m.quit = true
				return m, tea.Quit
			}
			return m, nil
		case "tab", "down":
			m.cycleFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.cycleFocus(-1)
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	// keystrokes are dropped while a submission is in flight; other
	// messages such as cursor blinks still reach the focused input
	_, isKey := msg.(tea.KeyMsg)
	if isKey && m.ctl.Phase() == formctl.Submitting {
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldUsername:
		m.username, cmd = m.username.Update(msg)
	case fieldPassword:
		m.password, cmd = m.password.Update(msg)
	case fieldMFA:
		m.mfa, cmd = m.mfa.Update(msg)
	}
	if isKey {
		m.syncFocused()
	}

	// editing the credentials during the MFA round drops back to phase 1
	if m.focus == fieldMFA && !m.ctl.MFAVisible() {
		m.focus = fieldPassword
		m.applyFocus()
	}
	return m, cmd
}

// syncFocused copies the focused input into the controller. An edit the
// controller rejects is undone so the input keeps showing the form state.
func (m *LoginModel) syncFocused() {
	username, password, mfaCode := m.ctl.Values()
	switch m.focus {
	case fieldUsername:
		if err := m.ctl.SetUsername(m.username.Value()); err != nil {
			m.username.SetValue(username)
		}
	case fieldPassword:
		if err := m.ctl.SetPassword(m.password.Value()); err != nil {
			m.password.SetValue(password)
		}
	case fieldMFA:
		if err := m.ctl.SetMFACode(m.mfa.Value()); err != nil {
			m.mfa.SetValue(mfaCode)
		}
	}
}

func (m LoginModel) submit() (tea.Model, tea.Cmd) {
	req, err := m.ctl.Begin()
	if err != nil {
		// validation errors are already on the controller
		return m, nil
	}

	ctx, submitter := m.ctx, m.submitter
	return m, func() tea.Msg {
		outcome, err := submitter.Login(ctx, req)
		return submittedMsg{outcome: outcome, err: err}
	}
}

func (m *LoginModel) fields() []field {
	if m.ctl.MFAVisible() {
		return []field{fieldUsername, fieldPassword, fieldMFA}
	}
	return []field{fieldUsername, fieldPassword}
}

func (m *LoginModel) cycleFocus(delta int) {
	fields := m.fields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	m.focus = fields[idx]
	m.applyFocus()
}

func (m *LoginModel) applyFocus() {
	m.username.Blur()
	m.password.Blur()
	m.mfa.Blur()
	switch m.focus {
	case fieldUsername:
		m.username.Focus()
	case fieldPassword:
		m.password.Focus()
	case fieldMFA:
		m.mfa.Focus()
	}
}

// View implements tea.Model
func (m LoginModel) View() string {
	if m.session != nil || m.quit {
		return ""
	}

	errs := m.ctl.Errors()
	var b strings.Builder

	b.WriteString(titleStyle.Render("EPA Ethics Training · Sign in"))
	b.WriteString("\n")

	if msg, ok := errs[formctl.FieldGeneral]; ok {
		b.WriteString(bannerStyle.Render(msg))
		b.WriteString("\n\n")
	}

	writeField(&b, "Username", m.username.View(), errs[formctl.FieldUsername])
	writeField(&b, "Password", m.password.View(), errs[formctl.FieldPassword])

	if m.ctl.MFAVisible() {
		b.WriteString(infoStyle.Render("A verification code is required to finish signing in."))
		b.WriteString("\n")
		writeField(&b, "MFA code", m.mfa.View(), errs[formctl.FieldMFACode])
	}

	switch m.ctl.Phase() {
	case formctl.Submitting:
		b.WriteString(hintStyle.Render("Signing in..."))
	case formctl.AwaitingMfa:
		b.WriteString(hintStyle.Render("enter: verify • esc: back • ctrl+c: quit"))
	default:
		b.WriteString(hintStyle.Render("enter: sign in • tab: next field • esc: quit"))
	}
	b.WriteString("\n")

	return b.String()
}

func writeField(b *strings.Builder, label, input, errMsg string) {
	b.WriteString(labelStyle.Render(label))
	b.WriteString("\n")
	b.WriteString(input)
	b.WriteString("\n")
	if errMsg != "" {
		b.WriteString(errorStyle.Render(errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n")
}
