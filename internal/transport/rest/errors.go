package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/heartmarshall/xapi-statements/internal/domain"
	"github.com/heartmarshall/xapi-statements/internal/service/statement"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-checkable kind and the human message.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// writeError maps service and domain errors onto HTTP statuses. Validation
// failures are client errors; unknown errors stay opaque 500s.
func writeError(w http.ResponseWriter, err error) {
	var (
		de *domain.Error
		ve *domain.ValidationError
		pe *domain.DurationError
	)

	switch {
	case errors.As(err, &de):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Kind: string(de.Kind), Field: de.Field, Message: de.Message,
		}})
	case errors.As(err, &ve):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Kind: "validation", Message: ve.Error(),
		}})
	case errors.As(err, &pe):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Kind: "duration", Message: pe.Error(),
		}})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
			Kind: "validation", Message: err.Error(),
		}})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: ErrorBody{
			Kind: "not_found", Message: "not found",
		}})
	case errors.Is(err, statement.ErrNoQueue):
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: ErrorBody{
			Kind: "unavailable", Message: "asynchronous recording is not available",
		}})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: ErrorBody{
			Kind: "internal", Message: "internal server error",
		}})
	}
}
