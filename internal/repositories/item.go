package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/KragoN96/berries-web-app/internal/logger"
	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const itemColumns = `item_id, title, description, type, images, location_text,
	where_to_claim, date_happened, created_by, author_name, created_at,
	updated_at, expires_at, comments`

// ItemListFilter narrows and pages the item feed.
type ItemListFilter struct {
	Type       *string    // Equality filter on lost|found
	Location   *string    // Case-insensitive substring on location_text
	CursorTime *time.Time // Keyset boundary: created_at of the last seen item
	CursorID   *uuid.UUID // Keyset boundary: item_id of the last seen item
	Limit      int
}

// ItemReadRepository reads item documents.
type ItemReadRepository struct {
	db *sqlx.DB
}

func NewItemReadRepository(db *sqlx.DB) *ItemReadRepository {
	return &ItemReadRepository{db: db}
}

// GetByID returns the item with the given id, or nil when absent.
func (r *ItemReadRepository) GetByID(ctx context.Context, itemID uuid.UUID) (*models.ItemDB, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE item_id = $1
		LIMIT 1
	`

	var item models.ItemDB
	err := r.db.GetContext(ctx, &item, query, itemID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &item, nil
}

// List returns one feed page: unexpired items matching the filter, in strict
// (created_at, item_id) descending order. The cursor boundary makes paging
// keyset-based, so concurrent inserts can neither duplicate nor skip rows.
func (r *ItemReadRepository) List(ctx context.Context, filter ItemListFilter) ([]models.ItemDB, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items
		WHERE expires_at > NOW()
		  AND ($1::VARCHAR IS NULL OR type = $1)
		  AND ($2::VARCHAR IS NULL OR location_text ILIKE '%' || $2 || '%')
		  AND ($3::TIMESTAMPTZ IS NULL
		       OR created_at < $3
		       OR (created_at = $3 AND item_id < $4))
		ORDER BY created_at DESC, item_id DESC
		LIMIT $5
	`
	args := []any{filter.Type, filter.Location, filter.CursorTime, filter.CursorID, filter.Limit}

	items := []models.ItemDB{}
	err := r.db.SelectContext(ctx, &items, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", len(items),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return items, nil
}

// ItemWriteRepository mutates item documents.
type ItemWriteRepository struct {
	db *sqlx.DB
}

func NewItemWriteRepository(db *sqlx.DB) *ItemWriteRepository {
	return &ItemWriteRepository{db: db}
}

// Save inserts a new item document.
func (r *ItemWriteRepository) Save(ctx context.Context, item *models.ItemDB) error {
	query := `
		INSERT INTO items (item_id, title, description, type, images, location_text,
		                   where_to_claim, date_happened, created_by, author_name,
		                   created_at, updated_at, expires_at, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	args := []any{
		item.ItemID, item.Title, item.Description, item.Type, item.Images,
		item.LocationText, item.WhereToClaim, item.DateHappened, item.CreatedBy,
		item.AuthorName, item.CreatedAt, item.UpdatedAt, item.ExpiresAt, item.Comments,
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{item.ItemID, item.Type, item.CreatedBy},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// AppendComment pushes a comment onto the item's embedded list in a single
// row update. Returns false when the item does not exist.
func (r *ItemWriteRepository) AppendComment(ctx context.Context, itemID uuid.UUID, comment models.Comment) (bool, error) {
	query := `
		UPDATE items
		SET comments = comments || $2::JSONB,
		    updated_at = NOW()
		WHERE item_id = $1
	`
	payload, err := models.CommentList{comment}.Value()
	if err != nil {
		return false, err
	}
	args := []any{itemID, payload}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, comment.CommentID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}

// ReplaceComments overwrites the item's embedded comment list. Returns false
// when the item does not exist.
func (r *ItemWriteRepository) ReplaceComments(ctx context.Context, itemID uuid.UUID, comments models.CommentList) (bool, error) {
	query := `
		UPDATE items
		SET comments = $2,
		    updated_at = NOW()
		WHERE item_id = $1
	`
	args := []any{itemID, comments}

	res, err := r.db.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{itemID, len(comments)},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}

	return rowsAffected > 0, nil
}
