// Package ui holds the terminal output helpers shared by the CLI commands.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	// Color definitions for terminal output
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	boldColor    = color.New(color.Bold)
)

var (
	successBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("42")).
			Padding(0, 2)

	errorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(0, 2)
)

// IsTTY reports whether stdin is a terminal, i.e. whether an interactive
// form can be shown
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// PrintSuccess prints a success message
func PrintSuccess(w io.Writer, format string, args ...interface{}) {
	successColor.Fprintf(w, "✓ %s\n", fmt.Sprintf(format, args...))
}

// PrintError prints an error message
func PrintError(w io.Writer, format string, args ...interface{}) {
	errorColor.Fprintf(w, "✗ %s\n", fmt.Sprintf(format, args...))
}

// PrintWarning prints a warning message
func PrintWarning(w io.Writer, format string, args ...interface{}) {
	warningColor.Fprintf(w, "⚠ %s\n", fmt.Sprintf(format, args...))
}

// PrintInfo prints an info message
func PrintInfo(w io.Writer, format string, args ...interface{}) {
	infoColor.Fprintf(w, "ℹ %s\n", fmt.Sprintf(format, args...))
}

// PrintBold prints a bold line
func PrintBold(w io.Writer, format string, args ...interface{}) {
	boldColor.Fprintln(w, fmt.Sprintf(format, args...))
}

// PrintSuccessBox prints a titled success message in a box
func PrintSuccessBox(w io.Writer, title, content string) {
	fmt.Fprintln(w, successBox.Render(fmt.Sprintf("%s\n\n%s", successColor.Sprint(title), content)))
}

// PrintErrorBox prints a titled error message in a box
func PrintErrorBox(w io.Writer, title, content string) {
	fmt.Fprintln(w, errorBox.Render(fmt.Sprintf("%s\n\n%s", errorColor.Sprint(title), content)))
}
