package repository

import (
	"context"

	"github.com/osse101/MonoCollector_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByLink(ctx context.Context, provider, providerAccountID string) (*domain.User, error)

	// CreateLink stores the link and clears the guest flag in one transaction
	CreateLink(ctx context.Context, link *domain.AccountLink) error
	ListLinks(ctx context.Context, userID string) ([]domain.AccountLink, error)
	DeleteLink(ctx context.Context, userID, provider string) error
}
