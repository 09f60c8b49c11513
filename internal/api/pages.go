package api

import (
	"net/http"

	"github.com/limbo/manifest/internal/gate"
	"github.com/limbo/manifest/internal/service"
	"github.com/limbo/manifest/pkg/entity"
	"github.com/limbo/manifest/pkg/httputil"
)

// Page routes answer with the data a client needs to render the page.

type PageView struct {
	Page  string `json:"page"`
	State string `json:"state"`
	Data  any    `json:"data,omitempty"`
}

type periodView struct {
	Period entity.PracticePeriod `json:"period"`
	Target int                   `json:"target"`
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, page string, data any) {
	httputil.WriteJSONResponse(w, http.StatusOK, PageView{
		Page:  page,
		State: GetFlagsFromContext(r).State().String(),
		Data:  data,
	})
}

func (s *Server) HomePage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := s.requestContext(r)
	defer cancel()
	tasks, err := s.tasksService.ListTasks(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "rendering home", err)
		return
	}
	var name string
	if claims := GetClaimsFromContext(r); claims != nil {
		name = claims.Username
	}
	s.writePage(w, r, "home", map[string]any{
		"name":  name,
		"tasks": tasks,
	})
}

func (s *Server) OnboardingPage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, "onboarding", map[string]any{
		"categories": entity.Categories,
		"complete":   "/api/session/onboarding",
	})
}

func (s *Server) PaywallPage(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, "paywall", map[string]any{
		"complete": "/api/session/paywall",
	})
}

func (s *Server) PracticePage(w http.ResponseWriter, r *http.Request) {
	periods := make([]periodView, 0, len(entity.Periods))
	for _, p := range entity.Periods {
		periods = append(periods, periodView{Period: p, Target: p.Target()})
	}
	s.writePage(w, r, "practice", map[string]any{
		"periods": periods,
		"methods": []entity.PracticeMethod{entity.MethodHandwriting, entity.MethodTyping, entity.MethodVoice},
	})
}

func (s *Server) NextTaskPage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	next, err := s.nextTask(r)
	if err != nil {
		writeServiceError(w, logger, "rendering next task", err)
		return
	}
	s.writePage(w, r, "next-task", next)
}

func (s *Server) WishesPage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := s.requestContext(r)
	defer cancel()
	list, err := s.affirmationsService.ListAffirmations(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "rendering wishes", err)
		return
	}
	s.writePage(w, r, "wishes", map[string]any{
		"affirmations": list,
		"categories":   entity.Categories,
	})
}

func (s *Server) ProfilePage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "rendering profile", err)
		return
	}
	stats, err := s.practiceService.Stats(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "rendering profile", err)
		return
	}
	s.writePage(w, r, "profile", map[string]any{
		"user":  user,
		"stats": stats,
	})
}

func (s *Server) CommunityPage(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	items, err := s.feedService.Recent(ctx, service.DefaultFeedLimit)
	if err != nil {
		writeServiceError(w, logger, "rendering community", err)
		return
	}
	s.writePage(w, r, "community", map[string]any{
		"items": items,
	})
}

// AuthPage serves the public auth pages. The callback is sanitized here so
// the client can use it as is.
func (s *Server) AuthPage(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := map[string]any{
			"callback_url": gate.SafeCallback(r.URL.Query().Get("callbackUrl")),
		}
		if reason := r.URL.Query().Get("error"); reason != "" {
			data["error"] = reason
		}
		if s.opts.DevMode && page == "signin" {
			data["test_accounts"] = "/api/auth/test-accounts"
		}
		s.writePage(w, r, page, data)
	}
}
