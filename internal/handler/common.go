package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/tounesna/internal/domain"
	chmw "github.com/go-chi/chi/v5/middleware"
)

type ErrorResponse struct { // TypeGen: ErrorResponse
	BaseResponse
	Error   string    `json:"error"`
	Details *[]string `json:"details,omitempty"`
	Code    *string   `json:"error_code,omitempty"`
	Link    *string   `json:"error_link,omitempty"`
}

type BaseResponse struct { // TypeGen: DefaultResponse
	Ok bool `json:"ok"`
}

// Error codes returned in ErrorResponse.Code
const (
	CodeInvalidInput      = "invalid_input"
	CodeOutOfRange        = "out_of_range"
	CodeNotFound          = "not_found"
	CodeAlreadyExists     = "already_exists"
	CodeUnauthorized      = "unauthorized"
	CodeNotApproved       = "not_approved"
	CodeInvalidTransition = "invalid_transition"
	CodePartialFailure    = "partial_failure"
	CodePostNotCreated    = "post_not_created"
	CodeTimeout           = "timeout"
	CodeInternal          = "internal"
)

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithErrorCode(w http.ResponseWriter, status int, message, code string) {
	respondWithJSON(w, status, ErrorResponse{Error: message, Code: &code})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		// If encoding fails, logs the error and sends a plain text response
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// decode reads a JSON body into dst, answering 400 itself on failure.
func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondWithErrorCode(w, http.StatusBadRequest, "Invalid request payload", CodeInvalidInput)
		return false
	}
	return true
}

// handleError logs err and maps the domain error set to a status code.
func handleError(w http.ResponseWriter, r *http.Request, err error, action string) {
	slog.ErrorContext(r.Context(), action, "error", err, "requestID", chmw.GetReqID(r.Context()))

	switch {
	case errors.Is(err, domain.ErrTimeout):
		respondWithErrorCode(w, http.StatusGatewayTimeout, "The data store did not answer in time", CodeTimeout)
	case errors.Is(err, domain.ErrPostNotCreated):
		respondWithErrorCode(w, http.StatusInternalServerError, domain.ErrPostNotCreated.Error(), CodePostNotCreated)
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithErrorCode(w, http.StatusUnauthorized, "Invalid email or password", CodeUnauthorized)
	case errors.Is(err, domain.ErrNotApproved):
		respondWithErrorCode(w, http.StatusForbidden, "Organization is awaiting approval", CodeNotApproved)
	case errors.Is(err, domain.ErrUnauthorized):
		respondWithErrorCode(w, http.StatusForbidden, "Not allowed", CodeUnauthorized)
	case errors.Is(err, domain.ErrNotFound):
		respondWithErrorCode(w, http.StatusNotFound, err.Error(), CodeNotFound)
	case errors.Is(err, domain.ErrAlreadyExists):
		respondWithErrorCode(w, http.StatusConflict, err.Error(), CodeAlreadyExists)
	case errors.Is(err, domain.ErrInvalidTransition):
		respondWithErrorCode(w, http.StatusConflict, err.Error(), CodeInvalidTransition)
	case errors.Is(err, domain.ErrOutOfRange):
		respondWithErrorCode(w, http.StatusBadRequest, err.Error(), CodeOutOfRange)
	case errors.Is(err, domain.ErrInvalidInput):
		respondWithErrorCode(w, http.StatusBadRequest, err.Error(), CodeInvalidInput)
	default:
		respondWithErrorCode(w, http.StatusInternalServerError, "Internal server error", CodeInternal)
	}
}

func queryInt(r *http.Request, key string, fallback int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
