package exporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shindakun/ethicstraining/internal/models"
)

// utf8BOM lets Excel detect the encoding
const utf8BOM = "\xEF\xBB\xBF"

var userCSVHeader = []string{
	"ID",
	"Username",
	"Name",
	"Email",
	"Role",
	"Status",
	"ModulesCompleted",
	"LastLogin",
}

// WriteUsersCSV writes users as RFC 4180 CSV preceded by a UTF-8 BOM
func WriteUsersCSV(w io.Writer, users []models.AdminUser) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(userCSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, u := range users {
		if err := writer.Write(userToCSVRow(u)); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", u.Username, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("CSV writer error: %w", err)
	}
	return nil
}

func userToCSVRow(u models.AdminUser) []string {
	return []string{
		u.ID,
		u.Username,
		u.Name,
		u.Email,
		u.Role,
		u.Status,
		strconv.Itoa(u.Completed),
		u.LastLogin, // empty for users who never signed in
	}
}
