package common

import (
	"encoding/json"
	"net/http"
	"time"

	"raidcrew/raidtracker/internal/constants"
	"raidcrew/raidtracker/internal/logging"
	"raidcrew/raidtracker/internal/models/dtos/responses"
)

// RespondSuccess sends a standardized JSON success response.
func RespondSuccess[T any](w http.ResponseWriter, data *T, statusCode ...int) {
	code := http.StatusOK
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	writeJSON(w, code, responses.APIResponse[T]{
		Status:    string(constants.APIStatusOk),
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}

// RespondError sends a standardized JSON error response.
func RespondError(w http.ResponseWriter, err error, message string, statusCode ...int) {
	code := http.StatusInternalServerError
	if len(statusCode) > 0 {
		code = statusCode[0]
	}

	resp := responses.APIResponse[any]{
		Status:    string(constants.APIStatusError),
		Timestamp: time.Now().UTC(),
		Error:     message,
	}
	// Internal details stay in the log for 5xx answers.
	if err != nil {
		if code >= http.StatusInternalServerError {
			logging.Error(message, "error", err.Error(), "status_code", code)
		} else {
			resp.Message = err.Error()
		}
	}

	writeJSON(w, code, resp)
}

// RespondPermissionDenied answers a request whose identity lacks the required role.
func RespondPermissionDenied(w http.ResponseWriter, message string) {
	RespondError(w, nil, message, http.StatusForbidden)
}

// writeJSON marshals data and writes it to the HTTP response.
func writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logging.Error("JSON encode failed", "error", err.Error())
	}
}
