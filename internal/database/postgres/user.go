package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// UserRepository implements repository.User
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userSelect = `
	SELECT u.user_id::text, u.display_name, u.is_guest, COALESCE(u.guest_code, ''), u.created_at
	FROM users u`

func scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID,
		&user.DisplayName,
		&user.IsGuest,
		&user.GuestCode,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser inserts a new user
func (r *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (user_id, display_name, is_guest, guest_code, created_at, updated_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $5)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID,
		user.DisplayName,
		user.IsGuest,
		user.GuestCode,
		user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToInsertUser, err)
	}
	return nil
}

// GetUserByID retrieves a user without links
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := scanUser(r.db.QueryRow(ctx, userSelect+` WHERE u.user_id = $1`, userID))
	if err != nil {
		return nil, notFoundOr(err, domain.ErrUserNotFound, ErrMsgFailedToGetUser)
	}
	return user, nil
}

// GetUserByLink finds the owner of a provider account
func (r *UserRepository) GetUserByLink(ctx context.Context, provider, providerAccountID string) (*domain.User, error) {
	query := userSelect + `
		JOIN account_links l ON l.user_id = u.user_id
		WHERE l.provider = $1 AND l.provider_account_id = $2
	`
	user, err := scanUser(r.db.QueryRow(ctx, query, provider, providerAccountID))
	if err != nil {
		return nil, notFoundOr(err, domain.ErrUserNotFound, ErrMsgFailedToGetUser)
	}
	return user, nil
}

// CreateLink stores the link and clears the guest flag in one transaction.
// A provider account owned by someone else reports ErrAccountAlreadyLinked.
func (r *UserRepository) CreateLink(ctx context.Context, link *domain.AccountLink) error {
	return withTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO account_links (user_id, provider, provider_account_id, linked_at)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, provider) DO UPDATE
			SET provider_account_id = EXCLUDED.provider_account_id,
			    linked_at = EXCLUDED.linked_at
		`
		_, err := tx.Exec(ctx, query,
			link.UserID,
			link.Provider,
			link.ProviderAccountID,
			link.LinkedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrAccountAlreadyLinked
			}
			return notFoundOr(err, domain.ErrUserNotFound, ErrMsgFailedToInsertLink)
		}

		if _, err := tx.Exec(ctx,
			`UPDATE users SET is_guest = FALSE, updated_at = NOW() WHERE user_id = $1`,
			link.UserID,
		); err != nil {
			return fmt.Errorf("%s: %w", ErrMsgFailedToClearGuest, err)
		}
		return nil
	})
}

// ListLinks returns the user's provider links ordered by provider
func (r *UserRepository) ListLinks(ctx context.Context, userID string) ([]domain.AccountLink, error) {
	query := `
		SELECT user_id::text, provider, provider_account_id, linked_at
		FROM account_links
		WHERE user_id = $1
		ORDER BY provider
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		if isMissingRow(err) {
			return []domain.AccountLink{}, nil
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserLinks, err)
	}
	defer rows.Close()

	links := []domain.AccountLink{}
	for rows.Next() {
		var link domain.AccountLink
		if err := rows.Scan(&link.UserID, &link.Provider, &link.ProviderAccountID, &link.LinkedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserLinks, err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetUserLinks, err)
	}
	return links, nil
}

// DeleteLink removes one provider link. The user keeps its non-guest status.
func (r *UserRepository) DeleteLink(ctx context.Context, userID, provider string) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM account_links WHERE user_id = $1 AND provider = $2`,
		userID, provider,
	)
	if err != nil {
		return notFoundOr(err, domain.ErrLinkNotFound, ErrMsgFailedToDeleteLink)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrLinkNotFound
	}
	return nil
}
