package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-config-sets/models"
)

// WriteJSON serializes data to JSON and writes it with statusCode and an
// "application/json" content type. When marshaling fails the response is a
// plain 500 and the wrapped error is returned.
//
//	WriteJSON(w, sets, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteResponse writes the {"success": ..., "msg": ...} envelope. Success
// is derived from statusCode.
func WriteResponse(w http.ResponseWriter, msg string, statusCode int) (int, error) {
	return WriteJSON(w, models.APIResponse{
		Success: statusCode < http.StatusBadRequest,
		Msg:     msg,
	}, statusCode)
}
