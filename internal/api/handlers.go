package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/limbo/manifest/internal/service"
	"github.com/limbo/manifest/pkg/entity"
	"github.com/limbo/manifest/pkg/httputil"
	jwtservice "github.com/limbo/manifest/pkg/jwt_service"
)

type SignInRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	CallbackURL string `json:"callback_url"`
}

type SessionResponse struct {
	User      *entity.User `json:"user"`
	State     string       `json:"state"`
	ExpiresAt time.Time    `json:"expires_at"`
	Redirect  string       `json:"redirect"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

func (s *Server) setSessionCookie(w http.ResponseWriter, session *service.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.opts.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func sessionResponse(session *service.Session, redirect string) SessionResponse {
	return SessionResponse{
		User:      session.User,
		State:     session.Flags.State().String(),
		ExpiresAt: session.ExpiresAt,
		Redirect:  redirect,
	}
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req service.RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBodyError(w, logger, "registering", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.Register(ctx, &req)
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration", slog.String("uid", user.ID.String()))
}

func (s *Server) SignIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SignInRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBodyError(w, logger, "signing in", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	session, err := s.sessionService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(w, logger, "signing in", err)
		return
	}
	s.setSessionCookie(w, session)
	httputil.WriteJSONResponse(w, http.StatusOK, sessionResponse(session, service.SignInRedirect(session.Flags, req.CallbackURL)))
	logger.Info("successful sign in", slog.String("uid", session.User.ID.String()))
}

func (s *Server) SignOut(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	s.clearSessionCookie(w)
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.sessionService.SignOut(ctx, GetClaimsFromContext(r)); err != nil {
		writeServiceError(w, logger, "signing out", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"redirect": s.rules.SignInPath,
	})
	logger.Info("successful sign out")
}

// AuthStatus describes the caller's session without requiring one.
func (s *Server) AuthStatus(w http.ResponseWriter, r *http.Request) {
	flags := GetFlagsFromContext(r)
	resp := map[string]any{
		"authenticated": flags.Authenticated,
		"state":         flags.State().String(),
	}
	if claims := GetClaimsFromContext(r); claims != nil {
		resp["uid"] = claims.UserID
		resp["name"] = claims.Username
		if claims.ExpiresAt != nil {
			resp["expires_at"] = claims.ExpiresAt.Time
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) TestAccounts(w http.ResponseWriter, r *http.Request) {
	if !s.opts.DevMode {
		httputil.WriteErrorResponse(w, http.StatusNotFound, "not found", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"accounts": service.DevAccounts,
	})
}

func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	ctx, cancel := s.requestContext(r)
	defer cancel()
	user, err := s.userService.GetByID(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "getting session", err)
		return
	}
	flags := GetFlagsFromContext(r)
	resp := SessionResponse{
		User:     user,
		State:    flags.State().String(),
		Redirect: service.SignInRedirect(flags, r.URL.Query().Get("callbackUrl")),
	}
	if claims := GetClaimsFromContext(r); claims != nil && claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	httputil.WriteJSONResponse(w, http.StatusOK, resp)
}

func (s *Server) CompleteOnboarding(w http.ResponseWriter, r *http.Request) {
	s.advanceSession(w, r, "completing onboarding", s.sessionService.CompleteOnboarding)
}

func (s *Server) CompletePaywall(w http.ResponseWriter, r *http.Request) {
	s.advanceSession(w, r, "completing paywall", s.sessionService.CompletePaywall)
}

func (s *Server) advanceSession(w http.ResponseWriter, r *http.Request, op string, advance func(context.Context, *jwtservice.Claims) (*service.Session, error)) {
	logger := GetLoggerFromCtx(r.Context())
	ctx, cancel := s.requestContext(r)
	defer cancel()
	session, err := advance(ctx, GetClaimsFromContext(r))
	if err != nil {
		writeServiceError(w, logger, op, err)
		return
	}
	s.setSessionCookie(w, session)
	httputil.WriteJSONResponse(w, http.StatusOK, sessionResponse(session, service.SignInRedirect(session.Flags, r.URL.Query().Get("callbackUrl"))))
	logger.Info(op+": session advanced", slog.String("state", session.Flags.State().String()))
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, _ := GetUIDFromContext(r)
	var req DeleteAccountRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		writeBodyError(w, logger, "deleting account", err)
		return
	}
	ctx, cancel := s.requestContext(r)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, logger, "deleting account", err)
		return
	}
	if err := s.sessionService.SignOut(ctx, GetClaimsFromContext(r)); err != nil {
		logger.Error("deleting account: revoking session error", slog.String("error", err.Error()))
	}
	s.clearSessionCookie(w)
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}
