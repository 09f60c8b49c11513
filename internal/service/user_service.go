package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/manifest/internal/error_values"
	"github.com/limbo/manifest/internal/repository"
	"github.com/limbo/manifest/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

// DevAccount is a fixed account created for local development.
type DevAccount struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Description string `json:"description"`
	Onboarded   bool   `json:"onboarded"`
}

var DevAccounts = []DevAccount{
	{
		Name:        "Test User",
		Email:       "test@example.com",
		Password:    "password123",
		Description: "onboarding and paywall completed",
		Onboarded:   true,
	},
	{
		Name:        "Admin User",
		Email:       "admin@example.com",
		Password:    "admin123",
		Description: "fresh account, starts at onboarding",
	},
}

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	if usersRepo == nil {
		log.Fatal("provided nil usersRepo")
	}
	return &UserService{
		repo: usersRepo,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	norm := *req
	norm.Name = strings.TrimSpace(req.Name)
	norm.Email = normalizeEmail(req.Email)
	if err := validateStruct(&norm); err != nil {
		return nil, err
	}
	return us.create(ctx, &entity.User{
		Name:  norm.Name,
		Email: norm.Email,
	}, norm.Password)
}

func (us *UserService) create(ctx context.Context, user *entity.User, password string) (*entity.User, error) {
	passwordHash, err := Hash(password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user.PasswordHash = passwordHash
	id, err := us.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	created, err := us.repo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return created, nil
}

func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) DeleteAccount(ctx context.Context, id uuid.UUID, password string) error {
	user, err := us.GetByID(ctx, id)
	if err != nil {
		return err
	}
	err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password))
	if err != nil {
		return errorvalues.ErrWrongCredentials
	}
	err = us.repo.Delete(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

func (us *UserService) SeedDevAccounts(ctx context.Context) ([]DevAccount, error) {
	created := make([]DevAccount, 0, len(DevAccounts))
	for _, acc := range DevAccounts {
		_, err := us.create(ctx, &entity.User{
			Name:                acc.Name,
			Email:               acc.Email,
			OnboardingCompleted: acc.Onboarded,
			PaywallCompleted:    acc.Onboarded,
		}, acc.Password)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserExists) {
				continue
			}
			return created, fmt.Errorf("seeding %s: %w", acc.Email, err)
		}
		created = append(created, acc)
	}
	return created, nil
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
