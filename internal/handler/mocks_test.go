package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/MonoCollector_Go/internal/category"
	"github.com/osse101/MonoCollector_Go/internal/collection"
	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/item"
	"github.com/osse101/MonoCollector_Go/internal/middleware"
	"github.com/osse101/MonoCollector_Go/internal/review"
	"github.com/osse101/MonoCollector_Go/internal/stats"
	"github.com/osse101/MonoCollector_Go/internal/user"
)

const testUserID = "0b6f9d0e-5d7a-4a43-9a55-5b8c7b1f2e10"

// newUserRequest builds a request as it looks after middleware.UserIdentity
// and chi routing have run.
func newUserRequest(method, target string, body io.Reader, params map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := middleware.WithUserID(req.Context(), testUserID)
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return req.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
}

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockItemService mocks item.Service
type MockItemService struct {
	mock.Mock
}

var _ item.Service = (*MockItemService)(nil)

func (m *MockItemService) itemResult(args mock.Arguments) (*domain.Item, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockItemService) CreateItem(ctx context.Context, userID string, input item.CreateInput) (*domain.Item, error) {
	return m.itemResult(m.Called(ctx, userID, input))
}

func (m *MockItemService) GetItem(ctx context.Context, userID, itemID string) (*domain.Item, error) {
	return m.itemResult(m.Called(ctx, userID, itemID))
}

func (m *MockItemService) ListItems(ctx context.Context, userID string, filter domain.ItemFilter) ([]domain.Item, error) {
	args := m.Called(ctx, userID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockItemService) UpdateItem(ctx context.Context, userID, itemID string, update domain.ItemUpdate) (*domain.Item, error) {
	return m.itemResult(m.Called(ctx, userID, itemID, update))
}

func (m *MockItemService) DeleteItem(ctx context.Context, userID, itemID string) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *MockItemService) SetCollected(ctx context.Context, userID, itemID string, collected bool) (*domain.Item, error) {
	return m.itemResult(m.Called(ctx, userID, itemID, collected))
}

func (m *MockItemService) UploadImage(ctx context.Context, userID, itemID string, data []byte) (*domain.ItemImage, error) {
	args := m.Called(ctx, userID, itemID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemImage), args.Error(1)
}

func (m *MockItemService) GetImage(ctx context.Context, userID, itemID string) (*domain.ItemImage, error) {
	args := m.Called(ctx, userID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ItemImage), args.Error(1)
}

func (m *MockItemService) DeleteImage(ctx context.Context, userID, itemID string) error {
	return m.Called(ctx, userID, itemID).Error(0)
}

func (m *MockItemService) GenerateIcon(ctx context.Context, userID, itemID string, source domain.IconSource) (*domain.Item, error) {
	return m.itemResult(m.Called(ctx, userID, itemID, source))
}

// MockCategoryService mocks category.Service
type MockCategoryService struct {
	mock.Mock
}

var _ category.Service = (*MockCategoryService)(nil)

func (m *MockCategoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, userID string, input category.CreateInput) (*domain.Category, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, userID, categoryID string, input category.UpdateInput) (*domain.Category, error) {
	args := m.Called(ctx, userID, categoryID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	return m.Called(ctx, userID, categoryID).Error(0)
}

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

var _ user.Service = (*MockUserService)(nil)

func (m *MockUserService) CreateGuest(ctx context.Context, displayName string) (*domain.User, error) {
	args := m.Called(ctx, displayName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) LinkAccount(ctx context.Context, userID, provider, providerAccountID string) (*domain.AccountLink, error) {
	args := m.Called(ctx, userID, provider, providerAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLink), args.Error(1)
}

func (m *MockUserService) ListLinks(ctx context.Context, userID string) ([]domain.AccountLink, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountLink), args.Error(1)
}

func (m *MockUserService) UnlinkAccount(ctx context.Context, userID, provider string) error {
	return m.Called(ctx, userID, provider).Error(0)
}

func (m *MockUserService) GetCacheStats() user.CacheStats {
	return m.Called().Get(0).(user.CacheStats)
}

// MockReviewService mocks review.Service
type MockReviewService struct {
	mock.Mock
}

var _ review.Service = (*MockReviewService)(nil)

func (m *MockReviewService) SubmitReview(ctx context.Context, userID string, rating int, comment string) (*domain.Review, error) {
	args := m.Called(ctx, userID, rating, comment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *MockReviewService) ListReviews(ctx context.Context, limit int) ([]domain.Review, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewService) GetSummary(ctx context.Context) (domain.ReviewSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.ReviewSummary), args.Error(1)
}

// MockStatsService mocks stats.Service
type MockStatsService struct {
	mock.Mock
}

var _ stats.Service = (*MockStatsService)(nil)

func (m *MockStatsService) GetAnalytics(ctx context.Context, days int) (*domain.Analytics, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analytics), args.Error(1)
}

func (m *MockStatsService) GetLeaderboard(ctx context.Context, days, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, days, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockStatsService) PurgeCache() {
	m.Called()
}

// MockCollectionService mocks collection.Service
type MockCollectionService struct {
	mock.Mock
}

var _ collection.Service = (*MockCollectionService)(nil)

func (m *MockCollectionService) GetStats(ctx context.Context, userID string) (*domain.CollectionStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CollectionStats), args.Error(1)
}

func (m *MockCollectionService) CheckUnlocks(ctx context.Context, userID string) (*domain.UnlockDiff, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UnlockDiff), args.Error(1)
}

func (m *MockCollectionService) Invalidate(userID string) {
	m.Called(userID)
}

func (m *MockCollectionService) GetTables() collection.Tables {
	return m.Called().Get(0).(collection.Tables)
}
