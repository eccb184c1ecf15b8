package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"rehab-roi/repository"
	"rehab-roi/service"
)

// maxRequestBodyBytes bounds every JSON body before it is decoded.
const maxRequestBodyBytes = 1 << 20

// decodeJSON requires a JSON body of at most maxRequestBodyBytes and decodes
// it into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	// Validar Content-Type
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		respondError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("error decoding request body")

		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		respondError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// respondJSON writes a JSON response. The body is encoded into a buffer
// first so an encoding failure can still produce a 500.
func respondJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	logger := zerolog.Ctx(r.Context())

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		logger.Error().Err(err).Msg("error encoding response")
		respondError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.Warn().Err(err).Msg("error writing response")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}

// respondServiceError maps service errors onto HTTP statuses.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var invalidInput *service.InvalidInputError
	switch {
	case errors.As(err, &invalidInput):
		respondError(w, http.StatusBadRequest, invalidInput.Error())
	case errors.Is(err, repository.ErrProjectNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
