// Package mocks holds testify mocks of the repository interfaces and the event bus.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/event"
)

// ItemRepository mocks repository.Item
type ItemRepository struct {
	mock.Mock
}

func (m *ItemRepository) CreateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *ItemRepository) GetItem(ctx context.Context, userID, itemID string) (*domain.Item, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *ItemRepository) ListItems(ctx context.Context, userID string, filter domain.ItemFilter) ([]domain.Item, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *ItemRepository) UpdateItem(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *ItemRepository) DeleteItem(ctx context.Context, userID, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *ItemRepository) SaveImage(ctx context.Context, img *domain.ItemImage) error {
	args := m.Called(ctx, img)
	return args.Error(0)
}

func (m *ItemRepository) GetImage(ctx context.Context, userID, itemID string) (*domain.ItemImage, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemImage), args.Error(1)
}

func (m *ItemRepository) DeleteImage(ctx context.Context, userID, itemID string) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *ItemRepository) SetGeneratedIcon(ctx context.Context, userID, itemID, icon string, source domain.IconSource) error {
	args := m.Called(ctx, userID, itemID, icon, source)
	return args.Error(0)
}

// CategoryRepository mocks repository.Category
type CategoryRepository struct {
	mock.Mock
}

func (m *CategoryRepository) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *CategoryRepository) GetCategory(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *CategoryRepository) CreateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepository) UpdateCategory(ctx context.Context, category *domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *CategoryRepository) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	args := m.Called(ctx, userID, categoryID)
	return args.Error(0)
}

func (m *CategoryRepository) SyncDefaultCategories(ctx context.Context, defaults []domain.Category) (domain.CategorySyncResult, error) {
	args := m.Called(ctx, defaults)
	return args.Get(0).(domain.CategorySyncResult), args.Error(1)
}

// UnlockSnapshotRepository mocks repository.UnlockSnapshot
type UnlockSnapshotRepository struct {
	mock.Mock
}

func (m *UnlockSnapshotRepository) GetUnlockSnapshot(ctx context.Context, userID string) (*domain.UnlockSnapshot, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UnlockSnapshot), args.Error(1)
}

func (m *UnlockSnapshotRepository) SaveUnlockSnapshot(ctx context.Context, userID string, snapshot domain.UnlockSnapshot) error {
	args := m.Called(ctx, userID, snapshot)
	return args.Error(0)
}

// UserRepository mocks repository.User
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) GetUserByLink(ctx context.Context, provider, providerAccountID string) (*domain.User, error) {
	args := m.Called(ctx, provider, providerAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *UserRepository) CreateLink(ctx context.Context, link *domain.AccountLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *UserRepository) ListLinks(ctx context.Context, userID string) ([]domain.AccountLink, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountLink), args.Error(1)
}

func (m *UserRepository) DeleteLink(ctx context.Context, userID, provider string) error {
	args := m.Called(ctx, userID, provider)
	return args.Error(0)
}

// ReviewRepository mocks repository.Review
type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) UpsertReview(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *ReviewRepository) ListReviews(ctx context.Context, limit int) ([]domain.Review, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *ReviewRepository) GetReviewSummary(ctx context.Context) (domain.ReviewSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ReviewSummary), args.Error(1)
}

// StatsRepository mocks repository.Stats
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) ListAnalyticsItems(ctx context.Context) ([]domain.AnalyticsItemRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnalyticsItemRow), args.Error(1)
}

func (m *StatsRepository) ListAnalyticsUsers(ctx context.Context) ([]domain.AnalyticsUserRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AnalyticsUserRow), args.Error(1)
}

func (m *StatsRepository) ListCategoryNames(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *StatsRepository) GetReviewSummary(ctx context.Context) (domain.ReviewSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ReviewSummary), args.Error(1)
}

func (m *StatsRepository) GetLeaderboard(ctx context.Context, since time.Time, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, since, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

// Bus mocks event.Bus
type Bus struct {
	mock.Mock
}

func (m *Bus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *Bus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
