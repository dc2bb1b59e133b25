package helpers

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the success body for signup and unregister.
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// DetailResponse is the error body for every failed request.
// swagger:model DetailResponse
type DetailResponse struct {
	Detail string `json:"detail"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes v as the whole response body.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteMessage writes a MessageResponse body with the given status code.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, MessageResponse{Message: message})
}

// WriteDetail writes a DetailResponse body with the given status code.
func WriteDetail(w http.ResponseWriter, statusCode int, detail string) {
	WriteJSON(w, statusCode, DetailResponse{Detail: detail})
}
