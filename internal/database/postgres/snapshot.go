package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// SnapshotRepository implements repository.UnlockSnapshot
type SnapshotRepository struct {
	db *pgxpool.Pool
}

// NewSnapshotRepository creates a new unlock snapshot repository
func NewSnapshotRepository(db *pgxpool.Pool) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// GetUnlockSnapshot returns nil without error when the user has none yet
func (r *SnapshotRepository) GetUnlockSnapshot(ctx context.Context, userID string) (*domain.UnlockSnapshot, error) {
	query := `
		SELECT badge_ids, achievement_ids, level
		FROM unlock_snapshots
		WHERE user_id = $1
	`
	var snapshot domain.UnlockSnapshot
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&snapshot.BadgeIDs,
		&snapshot.AchievementIDs,
		&snapshot.Level,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetSnapshot, err)
	}
	return &snapshot, nil
}

// SaveUnlockSnapshot replaces the user's snapshot
func (r *SnapshotRepository) SaveUnlockSnapshot(ctx context.Context, userID string, snapshot domain.UnlockSnapshot) error {
	query := `
		INSERT INTO unlock_snapshots (user_id, badge_ids, achievement_ids, level, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET badge_ids = EXCLUDED.badge_ids,
		    achievement_ids = EXCLUDED.achievement_ids,
		    level = EXCLUDED.level,
		    updated_at = NOW()
	`
	_, err := r.db.Exec(ctx, query,
		userID,
		nonNil(snapshot.BadgeIDs),
		nonNil(snapshot.AchievementIDs),
		snapshot.Level,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveSnapshot, err)
	}
	return nil
}
