package services

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"time"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/KragoN96/berries-web-app/internal/repositories"
	"github.com/google/uuid"
)

// Error variables
var (
	ErrMissingItemFields = errors.New("missing required fields")
	ErrInvalidItemType   = errors.New("invalid item type")
	ErrInvalidCursor     = errors.New("invalid cursor")
	ErrItemNotFound      = errors.New("item not found")
	ErrCommentNotFound   = errors.New("comment not found")
	ErrCommentTooShort   = errors.New("comment too short")
	ErrNotCommentOwner   = errors.New("not the comment owner")
)

const (
	itemRetention = 30 * 24 * time.Hour // reports drop out of the feed after this
	maxPageSize   = 50
	defaultPage   = 20
	maxCommentLen = 400
	minCommentLen = 2
	anonymousName = "Anonymous"
)

// ItemReader defines read operations for item documents.
type ItemReader interface {
	GetByID(ctx context.Context, itemID uuid.UUID) (*models.ItemDB, error)
	List(ctx context.Context, filter repositories.ItemListFilter) ([]models.ItemDB, error)
}

// ItemWriter defines write operations for item documents.
type ItemWriter interface {
	Save(ctx context.Context, item *models.ItemDB) error
	AppendComment(ctx context.Context, itemID uuid.UUID, comment models.Comment) (bool, error)
	ReplaceComments(ctx context.Context, itemID uuid.UUID, comments models.CommentList) (bool, error)
}

// ItemCache caches item detail documents.
type ItemCache interface {
	Get(ctx context.Context, itemID uuid.UUID) (*models.ItemDB, error)
	Set(ctx context.Context, item *models.ItemDB) error
	Delete(ctx context.Context, itemID uuid.UUID) error
}

// CreateItemInput carries the fields of a new report.
type CreateItemInput struct {
	Title        string
	Description  string
	Type         string
	LocationText string
	WhereToClaim string
	DateHappened *time.Time
	Images       []models.ImageRef
}

// ItemService owns the item aggregate: reports, the paginated feed and the
// embedded comments.
type ItemService struct {
	items  ItemReader
	writer ItemWriter
	users  UserReader
	cache  ItemCache
}

// NewItemService creates a new ItemService instance.
func NewItemService(items ItemReader, writer ItemWriter, users UserReader, cache ItemCache) *ItemService {
	return &ItemService{
		items:  items,
		writer: writer,
		users:  users,
		cache:  cache,
	}
}

// resolveAuthorName resolves a display name for userID with an ordered
// fallback chain ending in a fixed placeholder.
func (svc *ItemService) resolveAuthorName(ctx context.Context, userID uuid.UUID) string {
	user, err := svc.users.GetByID(ctx, userID)
	if err != nil || user == nil {
		return anonymousName
	}
	if name := strings.TrimSpace(user.FullName); name != "" {
		return name
	}
	if user.Email != "" {
		return user.Email
	}
	return anonymousName
}

// CreateItem validates and persists a new report with an empty comment list.
func (svc *ItemService) CreateItem(ctx context.Context, userID uuid.UUID, in CreateItemInput) (*models.ItemDB, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	if title == "" || description == "" || in.Type == "" {
		return nil, ErrMissingItemFields
	}
	if in.Type != models.ItemTypeLost && in.Type != models.ItemTypeFound {
		return nil, ErrInvalidItemType
	}

	now := time.Now().UTC()
	item := &models.ItemDB{
		ItemID:       uuid.New(),
		Title:        title,
		Description:  description,
		Type:         in.Type,
		Images:       append(models.ImageRefList{}, in.Images...),
		LocationText: strings.TrimSpace(in.LocationText),
		WhereToClaim: strings.TrimSpace(in.WhereToClaim),
		DateHappened: in.DateHappened,
		CreatedBy:    userID,
		AuthorName:   svc.resolveAuthorName(ctx, userID),
		CreatedAt:    now,
		UpdatedAt:    now,
		ExpiresAt:    now.Add(itemRetention),
		Comments:     models.CommentList{},
	}

	if err := svc.writer.Save(ctx, item); err != nil {
		logger.Log.Errorw("failed to save item", "err", err)
		return nil, err
	}

	return item, nil
}

// GetItem returns one item plus its creator, when the account still exists.
// The creator's name is re-resolved at read time for the detail view; comment
// author names keep their write-time snapshots, backfilled when empty.
func (svc *ItemService) GetItem(ctx context.Context, itemID uuid.UUID) (*models.ItemDB, *models.UserDB, error) {
	item, err := svc.cache.Get(ctx, itemID)
	if err != nil {
		logger.Log.Errorw("item cache read failed", "item_id", itemID, "err", err)
	}
	if item == nil {
		item, err = svc.items.GetByID(ctx, itemID)
		if err != nil {
			return nil, nil, err
		}
		if item == nil {
			return nil, nil, ErrItemNotFound
		}
		if err := svc.cache.Set(ctx, item); err != nil {
			logger.Log.Errorw("item cache write failed", "item_id", itemID, "err", err)
		}
	}

	creator, err := svc.users.GetByID(ctx, item.CreatedBy)
	if err != nil {
		logger.Log.Errorw("failed to resolve item creator", "item_id", itemID, "err", err)
		creator = nil
	}
	if creator != nil {
		if name := strings.TrimSpace(creator.FullName); name != "" {
			item.AuthorName = name
		} else if creator.Email != "" {
			item.AuthorName = creator.Email
		}
	}
	if item.AuthorName == "" {
		item.AuthorName = anonymousName
	}

	for i := range item.Comments {
		if item.Comments[i].AuthorName == "" {
			item.Comments[i].AuthorName = anonymousName
		}
	}

	return item, creator, nil
}

// ListItems returns one feed page and, when the page is full, the cursor for
// the next one.
func (svc *ItemService) ListItems(ctx context.Context, itemType, location, cursor string, limit int) ([]models.ItemDB, string, error) {
	if itemType != "" && itemType != models.ItemTypeLost && itemType != models.ItemTypeFound {
		return nil, "", ErrInvalidItemType
	}
	if limit <= 0 {
		limit = defaultPage
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	filter := repositories.ItemListFilter{Limit: limit}
	if itemType != "" {
		filter.Type = &itemType
	}
	if location != "" {
		filter.Location = &location
	}
	if cursor != "" {
		cursorTime, cursorID, err := decodeCursor(cursor)
		if err != nil {
			return nil, "", ErrInvalidCursor
		}
		filter.CursorTime = &cursorTime
		filter.CursorID = &cursorID
	}

	items, err := svc.items.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list items", "err", err)
		return nil, "", err
	}

	nextCursor := ""
	if len(items) == limit {
		last := items[len(items)-1]
		nextCursor = encodeCursor(last.CreatedAt, last.ItemID)
	}

	return items, nextCursor, nil
}

// AddComment appends a comment to an item.
func (svc *ItemService) AddComment(ctx context.Context, itemID, userID uuid.UUID, text string) (*models.Comment, error) {
	text, err := normalizeCommentText(text)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		CommentID:  uuid.New(),
		UserID:     userID,
		AuthorName: svc.resolveAuthorName(ctx, userID),
		Text:       text,
		CreatedAt:  time.Now().UTC(),
	}

	matched, err := svc.writer.AppendComment(ctx, itemID, comment)
	if err != nil {
		logger.Log.Errorw("failed to append comment", "item_id", itemID, "err", err)
		return nil, err
	}
	if !matched {
		return nil, ErrItemNotFound
	}

	svc.invalidate(ctx, itemID)
	return &comment, nil
}

// EditComment replaces the text of a comment owned by userID.
func (svc *ItemService) EditComment(ctx context.Context, itemID, commentID, userID uuid.UUID, text string) error {
	text, err := normalizeCommentText(text)
	if err != nil {
		return err
	}

	item, err := svc.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}

	idx := findComment(item.Comments, commentID)
	if idx < 0 {
		return ErrCommentNotFound
	}
	if item.Comments[idx].UserID != userID {
		return ErrNotCommentOwner
	}

	now := time.Now().UTC()
	item.Comments[idx].Text = text
	item.Comments[idx].EditedAt = &now

	matched, err := svc.writer.ReplaceComments(ctx, itemID, item.Comments)
	if err != nil {
		logger.Log.Errorw("failed to edit comment", "item_id", itemID, "comment_id", commentID, "err", err)
		return err
	}
	if !matched {
		return ErrItemNotFound
	}

	svc.invalidate(ctx, itemID)
	return nil
}

// DeleteComment removes a comment owned by userID from an item.
func (svc *ItemService) DeleteComment(ctx context.Context, itemID, commentID, userID uuid.UUID) error {
	item, err := svc.items.GetByID(ctx, itemID)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrItemNotFound
	}

	idx := findComment(item.Comments, commentID)
	if idx < 0 {
		return ErrCommentNotFound
	}
	if item.Comments[idx].UserID != userID {
		return ErrNotCommentOwner
	}

	comments := append(item.Comments[:idx:idx], item.Comments[idx+1:]...)

	matched, err := svc.writer.ReplaceComments(ctx, itemID, comments)
	if err != nil {
		logger.Log.Errorw("failed to delete comment", "item_id", itemID, "comment_id", commentID, "err", err)
		return err
	}
	if !matched {
		return ErrItemNotFound
	}

	svc.invalidate(ctx, itemID)
	return nil
}

func (svc *ItemService) invalidate(ctx context.Context, itemID uuid.UUID) {
	if err := svc.cache.Delete(ctx, itemID); err != nil {
		logger.Log.Errorw("item cache invalidation failed", "item_id", itemID, "err", err)
	}
}

func findComment(comments models.CommentList, commentID uuid.UUID) int {
	for i := range comments {
		if comments[i].CommentID == commentID {
			return i
		}
	}
	return -1
}

func normalizeCommentText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if len([]rune(text)) < minCommentLen {
		return "", ErrCommentTooShort
	}
	if runes := []rune(text); len(runes) > maxCommentLen {
		text = string(runes[:maxCommentLen])
	}
	return text, nil
}

// The feed cursor is the strict (created_at, item_id) boundary of the last
// item on a page, serialized as "<RFC3339Nano>|<uuid>" and base64url-encoded
// so clients treat it as opaque.
func encodeCursor(createdAt time.Time, itemID uuid.UUID) string {
	raw := createdAt.UTC().Format(time.RFC3339Nano) + "|" + itemID.String()
	return base64.RawURLEncoding.EncodeToString([]byte(raw))
}

func decodeCursor(cursor string) (time.Time, uuid.UUID, error) {
	raw, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, uuid.Nil, errors.New("malformed cursor")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}
	itemID, err := uuid.Parse(parts[1])
	if err != nil {
		return time.Time{}, uuid.Nil, err
	}

	return createdAt, itemID, nil
}
