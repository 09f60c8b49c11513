package api

import (
	"errors"
	"log/slog"
	"net/http"

	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/internal/service"
	"github.com/limbo/manifest/pkg/entity"
	"github.com/limbo/manifest/pkg/httputil"
)

type MoveTaskRequest struct {
	Order int `json:"order"`
}

type SetMethodRequest struct {
	Method entity.PracticeMethod `json:"method"`
}

// NextTaskResponse carries a nil task once every task of the day is done.
type NextTaskResponse struct {
	Task *service.NextTask `json:"task"`
	Done bool              `json:"done"`
}

func (s *Server) ListTasks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := s.requestContext(r)
	defer cancel()
	tasks, err := s.tasksService.ListTasks(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "listing tasks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   uid.String(),
		"tasks": tasks,
	})
}

func (s *Server) AddTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	var req service.AddTaskRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBodyError(w, logger, "adding task", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	task, created, err := s.tasksService.AddTask(ctx, uid, &req)
	if err != nil {
		writeServiceError(w, logger, "adding task", err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
		logger.Info("task added", slog.String("task_id", task.ID.String()))
	}
	httputil.WriteJSONResponse(w, status, task)
}

func (s *Server) RemoveTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	id, err := idParam(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	tasks, err := s.tasksService.RemoveTask(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "removing task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"tasks": tasks,
	})
	logger.Info("task removed", slog.String("task_id", id.String()))
}

func (s *Server) MoveTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	id, err := idParam(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	var req MoveTaskRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBodyError(w, logger, "moving task", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	tasks, err := s.tasksService.MoveTask(ctx, uid, id, req.Order)
	if err != nil {
		writeServiceError(w, logger, "moving task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"tasks": tasks,
	})
}

func (s *Server) SetMethod(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	id, err := idParam(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	var req SetMethodRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBodyError(w, logger, "setting method", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	task, err := s.tasksService.SetMethod(ctx, uid, id, req.Method)
	if err != nil {
		writeServiceError(w, logger, "setting method", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
}

func (s *Server) CompleteTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	id, err := idParam(r)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid task id", nil)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	task, err := s.tasksService.CompleteTask(ctx, uid, id)
	if err != nil {
		writeServiceError(w, logger, "completing task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, task)
	logger.Info("task completed", slog.String("task_id", id.String()))
}

func (s *Server) NextTask(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	resp, err := s.nextTask(r)
	if err != nil {
		writeServiceError(w, logger, "getting next task", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

// nextTask renders a task whose affirmation is gone as the terminal empty
// state rather than an error.
func (s *Server) nextTask(r *http.Request) (*NextTaskResponse, error) {
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := s.requestContext(r)
	defer cancel()
	next, err := s.tasksService.NextTask(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAffirmationNotFound) {
			GetLoggerFromCtx(r.Context()).Warn("next task points to a missing affirmation")
			return &NextTaskResponse{Done: true}, nil
		}
		return nil, err
	}
	return &NextTaskResponse{
		Task: next,
		Done: next == nil,
	}, nil
}
