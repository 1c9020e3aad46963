// Package exporter writes the admin user table to CSV or JSON for use
// outside the admin portal.
package exporter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shindakun/ethicstraining/internal/models"
)

// Format is an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat validates a user-supplied format name
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatCSV:
		return FormatCSV, nil
	case FormatJSON:
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unsupported export format %q (valid: csv, json)", s)
}

// ExportUsers writes users to w in the given format
func ExportUsers(w io.Writer, users []models.AdminUser, format Format) error {
	switch format {
	case FormatCSV:
		return WriteUsersCSV(w, users)
	case FormatJSON:
		return WriteJSON(w, users)
	}
	return fmt.Errorf("unsupported export format %q", format)
}

// ExportUsersToFile creates outputPath and writes users to it
func ExportUsersToFile(users []models.AdminUser, format Format, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}

	if err := ExportUsers(file, users, format); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close export file: %w", err)
	}
	return nil
}
