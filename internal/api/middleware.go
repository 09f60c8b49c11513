package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/internal/gate"
	"github.com/limbo/manifest/pkg/httputil"
	jwtservice "github.com/limbo/manifest/pkg/jwt_service"
)

type contextKey string

var (
	requestIDKContextKey = contextKey("Request-ID")
	loggerContextKey     = contextKey("Logger")
	uidContextKey        = contextKey("User-ID")
	claimsContextKey     = contextKey("Claims")
	flagsContextKey      = contextKey("Flags")
)

const SessionCookieName = "auth.session"

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		r = r.WithContext(ctx)
		w.Header().Set("X-Request-ID", reqID.String())
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr), slog.String("path", r.URL.Path))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		userID, ok := r.Context().Value(uidContextKey).(uuid.UUID)
		if ok {
			logger = logger.With(slog.String("uid", userID.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// GateMiddleware resolves the session of every request and applies the
// gate. Pages are redirected; API calls get 401 with the target in details.
func (s *Server) GateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		claims, flags, err := s.sessionService.Resolve(r.Context(), GetSessionToken(r))
		if err != nil {
			// fail closed: the request continues as a visitor
			logger.Error("resolving session error", slog.String("error", err.Error()))
		}
		decision := s.rules.Decide(r.URL.Path, flags)
		if decision.Action == gate.Redirect {
			location := decision.Location()
			logger.Debug("gate redirect",
				slog.String("state", flags.State().String()),
				slog.String("location", location),
			)
			if isAPIPath(r.URL.Path) {
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "session required: "+flags.State().String(), errors.New(location))
				return
			}
			http.Redirect(w, r, location, http.StatusFound)
			return
		}
		ctx := context.WithValue(r.Context(), flagsContextKey, flags)
		if claims != nil {
			ctx = context.WithValue(ctx, claimsContextKey, claims)
			if uid, err := claims.UID(); err == nil {
				ctx = context.WithValue(ctx, uidContextKey, uid)
			}
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware guards routes that need a session even where the gate lets
// visitors through.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := GetUIDFromContext(r); err != nil {
			GetLoggerFromCtx(r.Context()).Warn("auth failed: no session")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: not logged in", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isAPIPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

// GetSessionToken prefers the Authorization header and falls back to the
// session cookie. Empty when neither is present.
func GetSessionToken(r *http.Request) string {
	if token, err := GetTokenFromHeader(r); err == nil {
		return token
	}
	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		return cookie.Value
	}
	return ""
}

func GetUIDFromContext(r *http.Request) (uuid.UUID, error) {
	uid, ok := r.Context().Value(uidContextKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}, errorvalues.ErrNotLoggedIn
	}
	return uid, nil
}

// GetClaimsFromContext returns nil for visitors.
func GetClaimsFromContext(r *http.Request) *jwtservice.Claims {
	claims, _ := r.Context().Value(claimsContextKey).(*jwtservice.Claims)
	return claims
}

func GetFlagsFromContext(r *http.Request) gate.Flags {
	flags, _ := r.Context().Value(flagsContextKey).(gate.Flags)
	return flags
}
