package service

import (
	"context"
	"errors"
	"log"

	"github.com/limbo/manifest/internal/repository"
	"github.com/limbo/manifest/pkg/entity"
)

const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 50
)

type FeedService struct {
	repo repository.PracticeRepositoryI
}

func NewFeedService(practiceRepo repository.PracticeRepositoryI) *FeedService {
	if practiceRepo == nil {
		log.Fatal("on feed service provided nil repo")
	}
	return &FeedService{
		repo: practiceRepo,
	}
}

func (fs *FeedService) Recent(ctx context.Context, limit int) ([]entity.FeedItem, error) {
	switch {
	case limit <= 0:
		limit = DefaultFeedLimit
	case limit > MaxFeedLimit:
		limit = MaxFeedLimit
	}
	items, err := fs.repo.Feed(ctx, limit)
	if err != nil {
		return nil, errors.New("practice repository error: " + err.Error())
	}
	return items, nil
}
