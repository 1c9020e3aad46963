// Package render writes the JSON envelopes shared by handlers and middleware.
package render

import (
	"encoding/json"
	"net/http"

	"github.com/shindakun/ethicstraining/internal/models"
)

// JSON writes v with the given status code
func JSON(w http.ResponseWriter, status int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// List writes a successful {success: true, data: [...]} envelope
func List(w http.ResponseWriter, data interface{}) error {
	return JSON(w, http.StatusOK, models.ListResponse{Success: true, Data: data})
}

// Error writes a {success: false, message} envelope
func Error(w http.ResponseWriter, status int, message string) error {
	return JSON(w, status, models.ErrorResponse{Success: false, Message: message})
}
