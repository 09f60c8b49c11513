package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/limbo/manifest/internal/api"
	"github.com/limbo/manifest/internal/repository"
	"github.com/limbo/manifest/internal/service"
	"github.com/limbo/manifest/pkg/cleanup"
	"github.com/limbo/manifest/pkg/config"
	"github.com/limbo/manifest/pkg/denylist"
	jwtservice "github.com/limbo/manifest/pkg/jwt_service"
	"github.com/limbo/manifest/pkg/logger"
	"github.com/limbo/manifest/pkg/migrator"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	logger.Init(cfg.GetStringOr("LOG_LEVEL", "info"))
	slog.Info("config loaded", slog.String("source", cfg.Source()), slog.Bool("development", cfg.IsDevelopment()))

	secret := cfg.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is not set")
	}

	dbCfg := repository.NewPGCfg(cfg)
	if cfg.GetBool("MIGRATE_ON_START", false) {
		err := migrator.Up(dbCfg.ConnString(), cfg.GetStringOr("MIGRATIONS_DIR", migrator.DefaultDir))
		if err != nil {
			log.Fatal("migrations error: " + err.Error())
		}
	}
	pool := repository.NewPool(dbCfg)
	usersRepo := repository.NewUsersRepoWithConn(pool)
	affirmationsRepo := repository.NewAffirmationsRepoWithConn(pool)
	tasksRepo := repository.NewDailyTasksRepoWithConn(pool)
	practiceRepo := repository.NewPracticeRepoWithConn(pool)

	revoked := newDenylist(cfg)
	tokens := jwtservice.New(secret, cfg.GetDuration("SESSION_TTL", jwtservice.DefaultTokenTTL))

	userService := service.NewUserService(usersRepo)
	if cfg.IsDevelopment() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
		created, err := userService.SeedDevAccounts(ctx)
		cancel()
		if err != nil {
			slog.Error("seeding dev accounts error", slog.String("error", err.Error()))
		} else {
			slog.Info("dev accounts seeded", slog.Int("created", len(created)))
		}
	}
	serv := api.New(&api.ServicesList{
		UserService:         userService,
		SessionService:      service.NewSessionService(userService, usersRepo, tokens, revoked),
		AffirmationsService: service.NewAffirmationsService(affirmationsRepo, tasksRepo),
		DailyTasksService:   service.NewDailyTasksService(tasksRepo, affirmationsRepo),
		PracticeService:     service.NewPracticeService(practiceRepo, affirmationsRepo),
		FeedService:         service.NewFeedService(practiceRepo),
	}, api.Options{
		DevMode:      cfg.IsDevelopment(),
		SecureCookie: !cfg.IsDevelopment(),
	})
	err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	if failed := cleanup.CleanUp(); failed > 0 || err != nil {
		os.Exit(1)
	}
}

// newDenylist uses redis when REDIS_URL is set and falls back to memory,
// which forgets revocations on restart.
func newDenylist(cfg *config.Config) denylist.Denylist {
	url := cfg.GetString("REDIS_URL")
	if url == "" {
		slog.Warn("REDIS_URL is not set, keeping revoked sessions in memory")
		return denylist.NewMemory()
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()
	r, err := denylist.NewRedis(ctx, denylist.RedisConfig{
		URL:      url,
		Password: cfg.GetString("REDIS_PASSWORD"),
	})
	if err != nil {
		log.Fatal("connecting to redis error: " + err.Error())
	}
	return r
}
