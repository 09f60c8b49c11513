package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/pkg/httputil"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

var serviceErrors = []errorMapping{
	{errorvalues.ErrValidation, http.StatusBadRequest, "invalid request"},
	{errorvalues.ErrInvalidCategory, http.StatusBadRequest, "unknown category"},
	{errorvalues.ErrInvalidMethod, http.StatusBadRequest, "unknown practice method"},
	{errorvalues.ErrInvalidPeriod, http.StatusBadRequest, "unknown practice period"},
	{errorvalues.ErrOrderOutOfRange, http.StatusUnprocessableEntity, "task order is out of range"},
	{errorvalues.ErrNotLoggedIn, http.StatusUnauthorized, "not logged in"},
	{errorvalues.ErrInvalidToken, http.StatusUnauthorized, "invalid session"},
	{errorvalues.ErrTokenRevoked, http.StatusUnauthorized, "session was revoked"},
	{errorvalues.ErrWrongCredentials, http.StatusForbidden, "wrong email or password"},
	{errorvalues.ErrWrongOwner, http.StatusForbidden, "resource belongs to another user"},
	{errorvalues.ErrUserNotFound, http.StatusNotFound, "user not found"},
	{errorvalues.ErrAffirmationNotFound, http.StatusNotFound, "affirmation not found"},
	{errorvalues.ErrTaskNotFound, http.StatusNotFound, "task not found"},
	{errorvalues.ErrUserExists, http.StatusConflict, "user with such email already exists"},
	{errorvalues.ErrPeriodCompleted, http.StatusConflict, "all repetitions of the period are done"},
	{errorvalues.ErrRepetitionExists, http.StatusConflict, "repetition already recorded"},
}

func statusOf(err error) (int, string) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, "internal error, please retry"
}

// writeServiceError answers with the status mapped from err. Details are
// only exposed for client errors.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	status, message := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, status, message, nil)
		return
	}
	logger.Warn(op+" error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, status, message, err)
}

func writeBodyError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	logger.Warn(op+" error: invalid body", slog.String("error", err.Error()))
	if errors.Is(err, httputil.ErrEmptyBody) {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "request body is empty", nil)
		return
	}
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
}
