package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Item report kinds.
const (
	ItemTypeLost  = "lost"
	ItemTypeFound = "found"
)

// ImageRef points at a stored item photo.
type ImageRef struct {
	URL string `json:"url"`           // Public URL
	Key string `json:"key,omitempty"` // Object storage key
}

// Comment is a comment embedded in an item document.
type Comment struct {
	CommentID  uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	AuthorName string     `json:"author_name"`
	Text       string     `json:"text"`
	CreatedAt  time.Time  `json:"created_at"`
	EditedAt   *time.Time `json:"edited_at,omitempty"`
}

// ImageRefList is stored as a JSONB column.
type ImageRefList []ImageRef

// Value implements driver.Valuer.
func (l ImageRefList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageRefList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *ImageRefList) Scan(src any) error {
	return scanJSON(src, l)
}

// CommentList is stored as a JSONB column, keeping comment mutations
// single-row atomic.
type CommentList []Comment

// Value implements driver.Valuer.
func (l CommentList) Value() (driver.Value, error) {
	if l == nil {
		l = CommentList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *CommentList) Scan(src any) error {
	return scanJSON(src, l)
}

func scanJSON(src, dst any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return errors.New("unsupported source type for JSONB column")
	}
}

// ItemDB represents a lost/found report in the database
type ItemDB struct {
	ItemID       uuid.UUID    `json:"id" db:"item_id"`                          // Primary key
	Title        string       `json:"title" db:"title"`                         // Short title
	Description  string       `json:"description" db:"description"`             // Free-form description
	Type         string       `json:"type" db:"type"`                           // lost | found
	Images       ImageRefList `json:"images" db:"images"`                       // Photo references
	LocationText string       `json:"location_text" db:"location_text"`         // Where it was lost/found
	WhereToClaim string       `json:"where_to_claim" db:"where_to_claim"`       // Where to pick it up
	DateHappened *time.Time   `json:"date_happened,omitempty" db:"date_happened"` // When it happened
	CreatedBy    uuid.UUID    `json:"created_by" db:"created_by"`               // Reporting user
	AuthorName   string       `json:"author_name" db:"author_name"`             // Display-name snapshot
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
	ExpiresAt    time.Time    `json:"expires_at" db:"expires_at"`               // createdAt + retention window
	Comments     CommentList  `json:"comments" db:"comments"`                   // Embedded comments
}
