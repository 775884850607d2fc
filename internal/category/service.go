package category

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/event"
	"github.com/osse101/MonoCollector_Go/internal/logger"
	"github.com/osse101/MonoCollector_Go/internal/repository"
	"github.com/osse101/MonoCollector_Go/internal/utils"
)

var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// CreateInput carries the fields of a new custom category. An empty ID is
// derived from the name; an empty color is derived from the id.
type CreateInput struct {
	ID    string
	Name  string
	Icon  string
	Color string
}

// UpdateInput carries a partial update; nil fields are left untouched
type UpdateInput struct {
	Name  *string
	Icon  *string
	Color *string
}

// Service defines the interface for category management
type Service interface {
	ListCategories(ctx context.Context, userID string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, userID string, input CreateInput) (*domain.Category, error)
	UpdateCategory(ctx context.Context, userID, categoryID string, input UpdateInput) (*domain.Category, error)
	DeleteCategory(ctx context.Context, userID, categoryID string) error
}

type service struct {
	repo      repository.Category
	publisher event.Bus
}

// NewService creates a category service
func NewService(repo repository.Category, publisher event.Bus) Service {
	return &service{repo: repo, publisher: publisher}
}

// ListCategories returns the defaults followed by the user's custom categories
func (s *service) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListCategories, err)
	}
	return categories, nil
}

func (s *service) CreateCategory(ctx context.Context, userID string, input CreateInput) (*domain.Category, error) {
	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}

	id := strings.TrimSpace(input.ID)
	if id == "" {
		id = utils.Slugify(name)
	} else if id != utils.Slugify(id) {
		return nil, fmt.Errorf("%w: category id must be a lowercase slug", domain.ErrInvalidInput)
	}

	existing, err := s.repo.GetCategory(ctx, userID, id)
	if err != nil && !errors.Is(err, domain.ErrCategoryNotFound) {
		return nil, fmt.Errorf("%s: %w", ErrContextGetCategory, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryExists, id)
	}

	iconGlyph, err := validateIcon(input.Icon)
	if err != nil {
		return nil, err
	}
	color := input.Color
	if color == "" {
		color = DefaultColor(id)
	} else if !hexColorPattern.MatchString(color) {
		return nil, fmt.Errorf("%w: color must be #RRGGBB", domain.ErrInvalidInput)
	}

	owner := userID
	category := &domain.Category{
		ID:        id,
		UserID:    &owner,
		Name:      name,
		Icon:      iconGlyph,
		Color:     strings.ToUpper(color),
		SortOrder: DefaultSortOrder,
	}
	if err := s.repo.CreateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreateCategory, err)
	}

	logger.FromContext(ctx).Info(LogMsgCategoryCreated, "user_id", userID, "category_id", id)
	s.publish(ctx, event.NewCategoryEvent(event.CategoryCreated, userID, id))
	return category, nil
}

func (s *service) UpdateCategory(ctx context.Context, userID, categoryID string, input UpdateInput) (*domain.Category, error) {
	category, err := s.customCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if category.Name, err = validateName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Icon != nil {
		if category.Icon, err = validateIcon(*input.Icon); err != nil {
			return nil, err
		}
	}
	if input.Color != nil {
		if !hexColorPattern.MatchString(*input.Color) {
			return nil, fmt.Errorf("%w: color must be #RRGGBB", domain.ErrInvalidInput)
		}
		category.Color = strings.ToUpper(*input.Color)
	}

	if err := s.repo.UpdateCategory(ctx, category); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextUpdateCategory, err)
	}

	logger.FromContext(ctx).Info(LogMsgCategoryUpdated, "user_id", userID, "category_id", categoryID)
	s.publish(ctx, event.NewCategoryEvent(event.CategoryUpdated, userID, categoryID))
	return category, nil
}

// DeleteCategory removes a custom category; its items move to "other"
func (s *service) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	if _, err := s.customCategory(ctx, userID, categoryID); err != nil {
		return err
	}
	if err := s.repo.DeleteCategory(ctx, userID, categoryID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextDeleteCategory, err)
	}

	logger.FromContext(ctx).Info(LogMsgCategoryDeleted, "user_id", userID, "category_id", categoryID)
	s.publish(ctx, event.NewCategoryEvent(event.CategoryDeleted, userID, categoryID))
	return nil
}

func (s *service) customCategory(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	category, err := s.repo.GetCategory(ctx, userID, categoryID)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", ErrContextGetCategory, err)
	}
	if category.IsDefault {
		return nil, fmt.Errorf("%w: %s", domain.ErrDefaultCategory, categoryID)
	}
	return category, nil
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return "", fmt.Errorf("%w: name exceeds %d characters", domain.ErrInvalidInput, MaxNameLength)
	}
	return name, nil
}

func validateIcon(glyph string) (string, error) {
	glyph = strings.TrimSpace(glyph)
	if glyph == "" {
		return DefaultIcon, nil
	}
	if utf8.RuneCountInString(glyph) > MaxIconLength {
		return "", fmt.Errorf("%w: icon exceeds %d characters", domain.ErrInvalidInput, MaxIconLength)
	}
	return glyph, nil
}
