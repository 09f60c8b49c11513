package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/manifest/internal/service"
	"github.com/limbo/manifest/pkg/httputil"
)

const dayLayout = time.DateOnly

func (s *Server) RecordRepetition(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	var req service.RepetitionRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBodyError(w, logger, "recording repetition", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	session, err := s.practiceService.RecordRepetition(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "recording repetition", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, session)
}

// GetProgress reports today's progress unless date=YYYY-MM-DD is given.
func (s *Server) GetProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	id, err := uuid.Parse(r.URL.Query().Get("affirmation_id"))
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid affirmation id", nil)
		return
	}
	var day time.Time
	if raw := r.URL.Query().Get("date"); raw != "" {
		day, err = time.Parse(dayLayout, raw)
		if err != nil {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	progress, err := s.practiceService.Progress(ctx, uid, id, day)
	if err != nil {
		writeServiceError(w, logger, "getting progress", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"affirmation_id": id.String(),
		"progress":       progress,
	})
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := s.requestContext(r)
	defer cancel()
	stats, err := s.practiceService.Stats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetFeed(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		var err error
		limit, err = strconv.Atoi(raw)
		if err != nil {
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid limit", nil)
			return
		}
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	items, err := s.feedService.Recent(ctx, limit)
	if err != nil {
		writeServiceError(w, logger, "getting feed", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"items": items,
	})
}
