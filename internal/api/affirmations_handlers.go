package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/limbo/manifest/internal/service"
	"github.com/limbo/manifest/pkg/httputil"
)

var errInvalidID = errors.New("invalid id")

func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.UUID{}, errInvalidID
	}
	return id, nil
}

func (s *Server) AddAffirmation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	var req service.AffirmationRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBodyError(w, logger, "adding affirmation", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	a, err := s.affirmationsService.AddAffirmation(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "adding affirmation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, a)
	logger.Info("affirmation added", slog.String("affirmation_id", a.ID.String()))
}

func (s *Server) ListAffirmations(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := s.requestContext(r)
	defer cancel()
	list, err := s.affirmationsService.ListAffirmations(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing affirmations", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":          uid.String(),
		"affirmations": list,
	})
}

func (s *Server) GetAffirmation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	id, err := idParam(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid affirmation id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	a, err := s.affirmationsService.GetAffirmationByID(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "getting affirmation", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, a)
}

func (s *Server) DeleteAffirmation(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	id, err := idParam(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid affirmation id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.affirmationsService.DeleteAffirmation(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "deleting affirmation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("affirmation deleted", slog.String("affirmation_id", id.String()))
}
