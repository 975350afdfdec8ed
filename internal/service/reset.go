package service

import (
	"context"
	"log/slog"

	"afisha/internal/store"
)

type ResetService struct {
	db *store.Store
}

func NewResetService(db *store.Store) *ResetService {
	return &ResetService{db: db}
}

// ResetStore drops every cinema, show and booking. Test and ops helper.
func (s *ResetService) ResetStore(ctx context.Context) {
	s.db.Reset()
	slog.Info("Store reset completed")
}
