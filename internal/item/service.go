package item

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/MonoCollector_Go/internal/domain"
	"github.com/osse101/MonoCollector_Go/internal/event"
	"github.com/osse101/MonoCollector_Go/internal/icon"
	"github.com/osse101/MonoCollector_Go/internal/logger"
	"github.com/osse101/MonoCollector_Go/internal/repository"
)

// CreateInput carries the fields of a new item
type CreateInput struct {
	Name         string
	Category     string
	Location     string
	Tags         []string
	Notes        string
	IsCollected  bool
	GenerateIcon bool
}

// Service defines the interface for item management
type Service interface {
	CreateItem(ctx context.Context, userID string, input CreateInput) (*domain.Item, error)
	GetItem(ctx context.Context, userID, itemID string) (*domain.Item, error)
	ListItems(ctx context.Context, userID string, filter domain.ItemFilter) ([]domain.Item, error)
	UpdateItem(ctx context.Context, userID, itemID string, update domain.ItemUpdate) (*domain.Item, error)
	DeleteItem(ctx context.Context, userID, itemID string) error
	SetCollected(ctx context.Context, userID, itemID string, collected bool) (*domain.Item, error)
	UploadImage(ctx context.Context, userID, itemID string, data []byte) (*domain.ItemImage, error)
	GetImage(ctx context.Context, userID, itemID string) (*domain.ItemImage, error)
	DeleteImage(ctx context.Context, userID, itemID string) error
	GenerateIcon(ctx context.Context, userID, itemID string, source domain.IconSource) (*domain.Item, error)
}

type service struct {
	repo          repository.Item
	categories    repository.Category
	icons         *icon.Generator
	publisher     event.Bus
	maxImageBytes int
	now           func() time.Time
}

// NewService creates an item service. maxImageBytes <= 0 uses DefaultMaxImageBytes.
func NewService(repo repository.Item, categories repository.Category, icons *icon.Generator, publisher event.Bus, maxImageBytes int) Service {
	if maxImageBytes <= 0 {
		maxImageBytes = DefaultMaxImageBytes
	}
	if icons == nil {
		icons = icon.NewGenerator(0)
	}
	return &service{
		repo:          repo,
		categories:    categories,
		icons:         icons,
		publisher:     publisher,
		maxImageBytes: maxImageBytes,
		now:           time.Now,
	}
}

func (s *service) CreateItem(ctx context.Context, userID string, input CreateInput) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	name, err := validateName(input.Name)
	if err != nil {
		return nil, err
	}
	location, err := validateText("location", input.Location, MaxLocationLength)
	if err != nil {
		return nil, err
	}
	notes, err := validateText("notes", input.Notes, MaxNotesLength)
	if err != nil {
		return nil, err
	}
	tags, err := normalizeTags(input.Tags)
	if err != nil {
		return nil, err
	}

	categoryID := input.Category
	if categoryID == "" {
		categoryID = domain.CategoryOther
	}
	if err := s.ensureCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	item := &domain.Item{
		ID:          uuid.NewString(),
		UserID:      userID,
		Name:        name,
		Category:    categoryID,
		Location:    location,
		Tags:        tags,
		Notes:       notes,
		IsCollected: input.IsCollected,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.GenerateIcon {
		svg := s.icons.NameIcon(name)
		item.GeneratedIcon = &svg
		item.IconSource = domain.IconSourceName
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextCreateItem, err)
	}

	log.Info(LogMsgItemCreated, "user_id", userID, "item_id", item.ID, "category", item.Category)
	s.publish(ctx, event.NewItemEvent(event.ItemCreated, item))
	if item.IsCollected {
		s.publish(ctx, event.NewItemEvent(event.ItemCollected, item))
	}
	if item.GeneratedIcon != nil {
		s.publish(ctx, event.NewItemEvent(event.ItemIconGenerated, item))
	}
	return item, nil
}

func (s *service) GetItem(ctx context.Context, userID, itemID string) (*domain.Item, error) {
	item, err := s.repo.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetItem, err)
	}
	return item, nil
}

// ListItems returns the user's items newest first
func (s *service) ListItems(ctx context.Context, userID string, filter domain.ItemFilter) ([]domain.Item, error) {
	items, err := s.repo.ListItems(ctx, userID, normalizeFilter(filter))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextListItems, err)
	}
	return items, nil
}

// UpdateItem applies the non-nil fields of update
func (s *service) UpdateItem(ctx context.Context, userID, itemID string, update domain.ItemUpdate) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	item, err := s.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	wasCollected := item.IsCollected

	if update.Name != nil {
		if item.Name, err = validateName(*update.Name); err != nil {
			return nil, err
		}
	}
	if update.Category != nil && *update.Category != item.Category {
		if err := s.ensureCategory(ctx, userID, *update.Category); err != nil {
			return nil, err
		}
		item.Category = *update.Category
	}
	if update.Location != nil {
		if item.Location, err = validateText("location", *update.Location, MaxLocationLength); err != nil {
			return nil, err
		}
	}
	if update.Notes != nil {
		if item.Notes, err = validateText("notes", *update.Notes, MaxNotesLength); err != nil {
			return nil, err
		}
	}
	if update.Tags != nil {
		if item.Tags, err = normalizeTags(update.Tags); err != nil {
			return nil, err
		}
	}
	if update.IsCollected != nil {
		item.IsCollected = *update.IsCollected
	}
	item.UpdatedAt = s.now().UTC()

	if err := s.repo.UpdateItem(ctx, item); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextUpdateItem, err)
	}

	log.Info(LogMsgItemUpdated, "user_id", userID, "item_id", itemID)
	s.publish(ctx, event.NewItemEvent(event.ItemUpdated, item))
	if item.IsCollected && !wasCollected {
		s.publish(ctx, event.NewItemEvent(event.ItemCollected, item))
	}
	return item, nil
}

func (s *service) SetCollected(ctx context.Context, userID, itemID string, collected bool) (*domain.Item, error) {
	return s.UpdateItem(ctx, userID, itemID, domain.ItemUpdate{IsCollected: &collected})
}

func (s *service) DeleteItem(ctx context.Context, userID, itemID string) error {
	item, err := s.GetItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteItem(ctx, userID, itemID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextDeleteItem, err)
	}

	logger.FromContext(ctx).Info(LogMsgItemDeleted, "user_id", userID, "item_id", itemID)
	s.publish(ctx, event.NewItemEvent(event.ItemDeleted, item))
	return nil
}

// UploadImage validates and stores a photo. The content type is sniffed from
// the bytes; client supplied types are not trusted.
func (s *service) UploadImage(ctx context.Context, userID, itemID string, data []byte) (*domain.ItemImage, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty upload", domain.ErrInvalidImage)
	}
	if len(data) > s.maxImageBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds %d", domain.ErrImageTooLarge, len(data), s.maxImageBytes)
	}

	item, err := s.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	info, err := icon.Inspect(data)
	if errors.Is(err, domain.ErrImageTooLarge) {
		return nil, fmt.Errorf("%s: %w", ErrContextInspectImage, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidImage, ErrContextInspectImage, err)
	}
	hash, _, _, err := icon.BlurHash(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrInvalidImage, ErrContextInspectImage, err)
	}

	img := &domain.ItemImage{
		ItemID:      item.ID,
		ContentType: info.ContentType,
		Data:        data,
		BlurHash:    hash,
		Width:       info.Width,
		Height:      info.Height,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.repo.SaveImage(ctx, img); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSaveImage, err)
	}

	item.HasImage = true
	logger.FromContext(ctx).Info(LogMsgImageUploaded, "user_id", userID, "item_id", itemID,
		"content_type", img.ContentType, "bytes", len(data))
	s.publish(ctx, event.NewItemEvent(event.ItemImageUploaded, item))
	return img, nil
}

func (s *service) GetImage(ctx context.Context, userID, itemID string) (*domain.ItemImage, error) {
	img, err := s.repo.GetImage(ctx, userID, itemID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextGetImage, err)
	}
	return img, nil
}

func (s *service) DeleteImage(ctx context.Context, userID, itemID string) error {
	item, err := s.GetItem(ctx, userID, itemID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteImage(ctx, userID, itemID); err != nil {
		return fmt.Errorf("%s: %w", ErrContextDeleteImage, err)
	}
	item.HasImage = false
	s.publish(ctx, event.NewItemEvent(event.ItemUpdated, item))
	return nil
}

// GenerateIcon renders and stores an icon for the item from its name or its photo
func (s *service) GenerateIcon(ctx context.Context, userID, itemID string, source domain.IconSource) (*domain.Item, error) {
	if source != domain.IconSourceName && source != domain.IconSourcePhoto {
		return nil, fmt.Errorf("%w: unknown icon source %q", domain.ErrInvalidInput, source)
	}

	item, err := s.GetItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	var photo []byte
	if source == domain.IconSourcePhoto {
		img, err := s.GetImage(ctx, userID, itemID)
		if err != nil {
			return nil, err
		}
		photo = img.Data
	}

	svg, _ := s.icons.Generate(source, item.Name, photo)
	if err := s.repo.SetGeneratedIcon(ctx, userID, itemID, svg, source); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextSetIcon, err)
	}

	item.GeneratedIcon = &svg
	item.IconSource = source
	logger.FromContext(ctx).Info(LogMsgIconGenerated, "user_id", userID, "item_id", itemID, "source", source)
	s.publish(ctx, event.NewItemEvent(event.ItemIconGenerated, item))
	return item, nil
}

func (s *service) ensureCategory(ctx context.Context, userID, categoryID string) error {
	if _, err := s.categories.GetCategory(ctx, userID, categoryID); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, categoryID)
		}
		return fmt.Errorf("%s: %w", ErrContextGetCategory, err)
	}
	return nil
}

// publish never fails the caller; the write is already committed
func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgEventPublishFailed, "event_type", evt.Type, "error", err)
	}
}
