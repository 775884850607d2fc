package repository

import (
	"context"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// UnlockSnapshot persists the last unlock state a user was notified about
type UnlockSnapshot interface {
	// GetUnlockSnapshot returns nil without error when the user has none yet
	GetUnlockSnapshot(ctx context.Context, userID string) (*domain.UnlockSnapshot, error)
	SaveUnlockSnapshot(ctx context.Context, userID string, snapshot domain.UnlockSnapshot) error
}
