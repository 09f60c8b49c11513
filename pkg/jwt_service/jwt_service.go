package jwtservice

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/pkg/entity"
)

const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims carry the session gate flags so the gate can decide without a
// database round trip. The signature is what makes the flags trustworthy.
type Claims struct {
	jwt.RegisteredClaims
	UserID              string `json:"user_id"`
	Username            string `json:"username"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
	PaywallCompleted    bool   `json:"paywall_completed"`
}

func (c *Claims) UID() (uuid.UUID, error) {
	uid, err := uuid.Parse(c.UserID)
	if err != nil {
		return uuid.UUID{}, errorvalues.ErrInvalidToken
	}
	return uid, nil
}

type JWTService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func New(secret string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &JWTService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// WithClock replaces the time source, used by tests.
func (s *JWTService) WithClock(now func() time.Time) *JWTService {
	s.now = now
	return s
}

func (s *JWTService) TTL() time.Duration {
	return s.ttl
}

func (s *JWTService) GenerateToken(user *entity.User) (string, *Claims, error) {
	now := s.now()
	claims := &Claims{
		UserID:              user.ID.String(),
		Username:            user.Name,
		OnboardingCompleted: user.OnboardingCompleted,
		PaywallCompleted:    user.PaywallCompleted,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("signing token: %w", err)
	}
	return signed, claims, nil
}

func (s *JWTService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errorvalues.ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errorvalues.ErrInvalidToken
	}
	return claims, nil
}
