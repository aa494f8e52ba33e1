package services

import (
	"context"
	"log"

	"github.com/Tony-ArtZ/git-peek/internal/core/domain"
	"github.com/Tony-ArtZ/git-peek/internal/core/ports"
)

type DefaultViewService struct {
	Views ports.ViewStatRepository
	Cache ports.CacheRepository
}

func NewViewService(views ports.ViewStatRepository, cache ports.CacheRepository) ports.ViewService {
	return &DefaultViewService{Views: views, Cache: cache}
}

// TrackView records one visit. The store's upsert is atomic, so concurrent
// visits never lose increments; the redis counter is a running tally only.
func (s *DefaultViewService) TrackView(ctx context.Context, redirectID string) {
	_ = s.Cache.IncrementCounter(ctx, "views:"+redirectID)

	if err := s.Views.IncrementView(ctx, redirectID); err != nil {
		log.Printf("failed to increment views for redirect %s: %v", redirectID, err)
	}
}

func (s *DefaultViewService) GetViewStats(ctx context.Context, redirectID string) (domain.ViewStat, error) {
	return s.Views.GetViewStats(ctx, redirectID)
}
