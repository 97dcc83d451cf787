package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	swerr "github.com/amterp/swatch/internal/errors"
)

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// errorStatus maps domain errors to HTTP status codes.
func errorStatus(err error) int {
	var notFound *swerr.NotFoundError
	var notInit *swerr.NotInitializedError
	var alreadyExists *swerr.AlreadyExistsError
	var validation *swerr.ValidationError
	var invalidColor *swerr.InvalidColorError
	var storage *swerr.StorageError

	switch {
	case errors.As(err, &invalidColor), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notFound), errors.As(err, &notInit):
		return http.StatusNotFound
	case errors.As(err, &alreadyExists):
		return http.StatusConflict
	case errors.As(err, &storage):
		return http.StatusInsufficientStorage
	default:
		return http.StatusInternalServerError
	}
}

// Error writes an error response, mapping domain errors to HTTP status codes.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	if status >= http.StatusInternalServerError {
		log.Ctx(r.Context()).Error().Err(err).Int("status", status).Msg("Request failed")
	}
	JSON(w, status, map[string]string{"error": err.Error()})
}

// BadRequest writes a 400 error with the given message.
func BadRequest(w http.ResponseWriter, message string) {
	JSON(w, http.StatusBadRequest, map[string]string{"error": message})
}
