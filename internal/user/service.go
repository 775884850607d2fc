package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/event"
	"github.com/osse101/MonoCollector_Go/internal/logger"
	"github.com/osse101/MonoCollector_Go/internal/repository"
)

// Service defines the interface for user operations
type Service interface {
	CreateGuest(ctx context.Context, displayName string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	LinkAccount(ctx context.Context, userID, provider, providerAccountID string) (*domain.AccountLink, error)
	ListLinks(ctx context.Context, userID string) ([]domain.AccountLink, error)
	UnlinkAccount(ctx context.Context, userID, provider string) error
	GetCacheStats() CacheStats
}

type service struct {
	repo      repository.User
	publisher event.Bus
	userCache *userCache
	newCode   func() (string, error)
	now       func() time.Time
}

// NewService creates a user service
func NewService(repo repository.User, publisher event.Bus, cacheConfig CacheConfig) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		userCache: newUserCache(cacheConfig),
		newCode: func() (string, error) {
			return gonanoid.Generate(GuestCodeAlphabet, GuestCodeLength)
		},
		now: time.Now,
	}
}

// CreateGuest creates an anonymous user identified by a random guest code
func (s *service) CreateGuest(ctx context.Context, displayName string) (*domain.User, error) {
	code, err := s.newCode()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGuestCode, err)
	}

	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = GuestNamePrefix + code[:guestNameCodeChars]
	}
	if utf8.RuneCountInString(displayName) > MaxDisplayNameLength {
		return nil, fmt.Errorf("%w: display name exceeds %d characters", domain.ErrInvalidInput, MaxDisplayNameLength)
	}

	user := &domain.User{
		ID:          uuid.NewString(),
		DisplayName: displayName,
		IsGuest:     true,
		GuestCode:   code,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreateUser, err)
	}

	s.userCache.Set(user)
	logger.FromContext(ctx).Info(LogMsgGuestCreated, "user_id", user.ID)
	s.publish(ctx, event.NewAccountEvent(event.UserCreated, user.ID, "", true))
	return user, nil
}

// GetUser returns the user with their linked accounts
func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	if user, ok := s.userCache.Get(userID); ok {
		logger.FromContext(ctx).Debug(LogMsgUserCacheHit, "user_id", userID)
		return user, nil
	}

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextGetUser, err)
	}
	links, err := s.repo.ListLinks(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListLinks, err)
	}
	user.Links = links

	s.userCache.Set(user)
	return user, nil
}

// LinkAccount ties a provider account to the user and clears the guest flag.
// Linking the same account twice is a no-op; an account held by someone
// else is a conflict.
func (s *service) LinkAccount(ctx context.Context, userID, provider, providerAccountID string) (*domain.AccountLink, error) {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if !domain.ValidProviders[provider] {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidProvider, provider)
	}
	providerAccountID = strings.TrimSpace(providerAccountID)
	if providerAccountID == "" || len(providerAccountID) > MaxProviderAccountIDLength {
		return nil, fmt.Errorf("%w: provider account id", domain.ErrInvalidInput)
	}

	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	owner, err := s.repo.GetUserByLink(ctx, provider, providerAccountID)
	switch {
	case err == nil && owner.ID != userID:
		return nil, fmt.Errorf("%w: %s", domain.ErrAccountAlreadyLinked, provider)
	case err == nil:
		for _, link := range user.Links {
			if link.Provider == provider {
				return &link, nil
			}
		}
		return &domain.AccountLink{UserID: userID, Provider: provider, ProviderAccountID: providerAccountID}, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("%s: %w", ErrContextLookupLink, err)
	}

	link := &domain.AccountLink{
		UserID:            userID,
		Provider:          provider,
		ProviderAccountID: providerAccountID,
		LinkedAt:          s.now().UTC(),
	}
	if err := s.repo.CreateLink(ctx, link); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreateLink, err)
	}

	s.userCache.Invalidate(userID)
	logger.FromContext(ctx).Info(LogMsgAccountLinked, "user_id", userID, "provider", provider)
	s.publish(ctx, event.NewAccountEvent(event.AccountLinked, userID, provider, false))
	return link, nil
}

func (s *service) ListLinks(ctx context.Context, userID string) ([]domain.AccountLink, error) {
	user, err := s.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Links == nil {
		return []domain.AccountLink{}, nil
	}
	return user.Links, nil
}

func (s *service) UnlinkAccount(ctx context.Context, userID, provider string) error {
	provider = strings.ToLower(strings.TrimSpace(provider))
	if !domain.ValidProviders[provider] {
		return fmt.Errorf("%w: %s", domain.ErrInvalidProvider, provider)
	}
	if err := s.repo.DeleteLink(ctx, userID, provider); err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			return err
		}
		return fmt.Errorf("%s: %w", ErrContextDeleteLink, err)
	}

	s.userCache.Invalidate(userID)
	logger.FromContext(ctx).Info(LogMsgAccountUnlinked, "user_id", userID, "provider", provider)
	s.publish(ctx, event.NewAccountEvent(event.AccountUnlinked, userID, provider, false))
	return nil
}

func (s *service) GetCacheStats() CacheStats {
	return s.userCache.GetStats()
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}
