package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/internal/gate"
	"github.com/limbo/manifest/internal/repository"
	"github.com/limbo/manifest/pkg/denylist"
	"github.com/limbo/manifest/pkg/entity"
	jwtservice "github.com/limbo/manifest/pkg/jwt_service"
	"golang.org/x/sync/singleflight"
)

type SessionService struct {
	users    UserServiceI
	repo     repository.UsersRepositoryI
	tokens   *jwtservice.JWTService
	revoked  denylist.Denylist
	inflight singleflight.Group
}

func NewSessionService(users UserServiceI, usersRepo repository.UsersRepositoryI, tokens *jwtservice.JWTService, revoked denylist.Denylist) *SessionService {
	if users == nil || usersRepo == nil || tokens == nil || revoked == nil {
		log.Fatal("on session service provided nil dependencies")
	}
	return &SessionService{
		users:   users,
		repo:    usersRepo,
		tokens:  tokens,
		revoked: revoked,
	}
}

// signInTimeout bounds a shared sign-in independently of the caller that started it.
const signInTimeout = 10 * time.Second

// SignIn checks credentials and issues a session. Identical submissions that
// arrive while one is being processed share its result.
func (ss *SessionService) SignIn(ctx context.Context, email, password string) (*Session, error) {
	sum := sha256.Sum256([]byte(password))
	key := normalizeEmail(email) + ":" + hex.EncodeToString(sum[:])
	ch := ss.inflight.DoChan(key, func() (any, error) {
		// other callers may be waiting on this flight after the first one leaves
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), signInTimeout)
		defer cancel()
		user, err := ss.users.Login(ctx, email, password)
		if err != nil {
			return nil, err
		}
		return ss.issue(user)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*Session), nil
	}
}

func (ss *SessionService) issue(user *entity.User) (*Session, error) {
	token, claims, err := ss.tokens.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("issuing session: %w", err)
	}
	return &Session{
		Token:     token,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
		Flags:     flagsOf(claims),
	}, nil
}

func flagsOf(claims *jwtservice.Claims) gate.Flags {
	return gate.Flags{
		Authenticated:       true,
		OnboardingCompleted: claims.OnboardingCompleted,
		PaywallCompleted:    claims.PaywallCompleted,
	}
}

func (ss *SessionService) Resolve(ctx context.Context, token string) (*jwtservice.Claims, gate.Flags, error) {
	if token == "" {
		return nil, gate.Flags{}, nil
	}
	claims, err := ss.tokens.ParseToken(token)
	if err != nil {
		return nil, gate.Flags{}, nil
	}
	revoked, err := ss.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		return nil, gate.Flags{}, fmt.Errorf("checking session: %w", err)
	}
	if revoked {
		return nil, gate.Flags{}, nil
	}
	return claims, flagsOf(claims), nil
}

func (ss *SessionService) CompleteOnboarding(ctx context.Context, claims *jwtservice.Claims) (*Session, error) {
	return ss.advance(ctx, claims, ss.repo.SetOnboardingCompleted)
}

func (ss *SessionService) CompletePaywall(ctx context.Context, claims *jwtservice.Claims) (*Session, error) {
	return ss.advance(ctx, claims, ss.repo.SetPaywallCompleted)
}

// advance persists a flag and swaps the caller's token for one carrying it.
func (ss *SessionService) advance(ctx context.Context, claims *jwtservice.Claims, set func(context.Context, uuid.UUID) error) (*Session, error) {
	if claims == nil {
		return nil, errorvalues.ErrNotLoggedIn
	}
	uid, err := claims.UID()
	if err != nil {
		return nil, errorvalues.ErrNotLoggedIn
	}
	if err := set(ctx, uid); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrNotLoggedIn
		}
		return nil, fmt.Errorf("updating session flags: %w", err)
	}
	user, err := ss.users.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	session, err := ss.issue(user)
	if err != nil {
		return nil, err
	}
	if err := ss.revoke(ctx, claims); err != nil {
		return nil, err
	}
	return session, nil
}

func (ss *SessionService) SignOut(ctx context.Context, claims *jwtservice.Claims) error {
	if claims == nil {
		return errorvalues.ErrNotLoggedIn
	}
	return ss.revoke(ctx, claims)
}

func (ss *SessionService) revoke(ctx context.Context, claims *jwtservice.Claims) error {
	if claims.ExpiresAt == nil {
		return nil
	}
	if err := ss.revoked.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("revoking session: %w", err)
	}
	return nil
}

// SignInRedirect is where a user lands after signing in: onboarding and the
// paywall come before the requested callback.
func SignInRedirect(flags gate.Flags, callback string) string {
	switch flags.State() {
	case gate.StateOnboardingPending:
		return "/onboarding"
	case gate.StatePaywallPending:
		return "/paywall"
	}
	return gate.SafeCallback(callback)
}
