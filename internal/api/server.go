package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/manifest/internal/gate"
	"github.com/limbo/manifest/internal/service"
)

const (
	defaultRequestTimeout  = time.Second * 10
	defaultShutdownTimeout = time.Second * 10
)

type Server struct {
	mx                  *chi.Mux
	userService         service.UserServiceI
	sessionService      service.SessionServiceI
	affirmationsService service.AffirmationsServiceI
	tasksService        service.DailyTasksServiceI
	practiceService     service.PracticeServiceI
	feedService         service.FeedServiceI
	rules               gate.Rules
	opts                Options
}

type ServicesList struct {
	UserService         service.UserServiceI
	SessionService      service.SessionServiceI
	AffirmationsService service.AffirmationsServiceI
	DailyTasksService   service.DailyTasksServiceI
	PracticeService     service.PracticeServiceI
	FeedService         service.FeedServiceI
}

type Options struct {
	// Exposes the development accounts endpoint
	DevMode bool
	// Marks the session cookie Secure
	SecureCookie   bool
	RequestTimeout time.Duration
	Rules          *gate.Rules
}

func New(servicesOptions *ServicesList, opts Options) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	rules := gate.DefaultRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	s := &Server{
		mx:                  chi.NewMux(),
		userService:         servicesOptions.UserService,
		sessionService:      servicesOptions.SessionService,
		affirmationsService: servicesOptions.AffirmationsService,
		tasksService:        servicesOptions.DailyTasksService,
		practiceService:     servicesOptions.PracticeService,
		feedService:         servicesOptions.FeedService,
		rules:               rules,
		opts:                opts,
	}
	s.MountHandlers()
	return s
}

func (s *Server) MountHandlers() {
	s.mx.Use(middleware.RealIP, middleware.Recoverer)
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware, s.GateMiddleware, s.LoggerExtensionMiddleware)

	s.mx.Get("/", s.HomePage)
	s.mx.Get("/onboarding", s.OnboardingPage)
	s.mx.Get("/paywall", s.PaywallPage)
	s.mx.Get("/practice", s.PracticePage)
	s.mx.Get("/practice/next-task", s.NextTaskPage)
	s.mx.Get("/wishes", s.WishesPage)
	s.mx.Get("/profile", s.ProfilePage)
	s.mx.Get("/community", s.CommunityPage)
	s.mx.Route("/auth", func(r chi.Router) {
		r.Get("/signin", s.AuthPage("signin"))
		r.Get("/signup", s.AuthPage("signup"))
		r.Get("/verify-request", s.AuthPage("verify-request"))
		r.Get("/error", s.AuthPage("error"))
	})

	s.mx.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Get("/", s.AuthStatus)
			r.Post("/register", s.Register)
			r.Post("/signin", s.SignIn)
			r.Post("/signout", s.SignOut)
			r.Get("/test-accounts", s.TestAccounts)
		})
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Get("/session", s.GetSession)
			r.Post("/session/onboarding", s.CompleteOnboarding)
			r.Post("/session/paywall", s.CompletePaywall)
			r.Delete("/account", s.DeleteAccount)

			r.Route("/affirmations", func(r chi.Router) {
				r.Get("/", s.ListAffirmations)
				r.Post("/", s.AddAffirmation)
				r.Get("/{id}", s.GetAffirmation)
				r.Delete("/{id}", s.DeleteAffirmation)
			})
			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", s.ListTasks)
				r.Post("/", s.AddTask)
				r.Get("/next", s.NextTask)
				r.Delete("/{id}", s.RemoveTask)
				r.Patch("/{id}/order", s.MoveTask)
				r.Patch("/{id}/method", s.SetMethod)
				r.Post("/{id}/complete", s.CompleteTask)
			})
			r.Post("/practice", s.RecordRepetition)
			r.Get("/practice/progress", s.GetProgress)
			r.Get("/stats", s.GetStats)
			r.Get("/community/feed", s.GetFeed)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves until SIGINT or SIGTERM, then drains in-flight requests.
func (s *Server) Run(addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: time.Second * 5,
		ReadTimeout:       time.Second * 15,
		WriteTimeout:      time.Second * 30,
		IdleTimeout:       time.Minute,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}
	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	return nil
}

func (s *Server) requestContext(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), s.opts.RequestTimeout)
}
