package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/temporary-accommodation/tasklist/internal/form"
	"github.com/temporary-accommodation/tasklist/internal/store"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]string `json:"errors,omitempty"`
	Body   form.Body         `json:"body,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(data)
}

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("request body is empty")
		}
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// writeError maps engine and store errors to HTTP responses. Only faults
// are logged at error level.
func writeError(w http.ResponseWriter, log logrus.FieldLogger, err error) {
	var verr *form.ValidationError
	var serr *form.SessionDataError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Errors: verr.Errors,
			Body:   verr.Body,
		})
	case errors.As(err, &serr):
		log.WithError(err).Warn("session data missing")
		writeJSON(w, http.StatusConflict, errorResponse{Error: serr.Message})
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, form.ErrUnknownTask),
		errors.Is(err, form.ErrUnknownPage):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		log.WithError(err).Error("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func badRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
}
