package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupItemPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS items (
		item_id UUID PRIMARY KEY,
		title VARCHAR(120) NOT NULL,
		description VARCHAR(2000) NOT NULL,
		type VARCHAR(10) NOT NULL CHECK (type IN ('lost', 'found')),
		images JSONB NOT NULL DEFAULT '[]',
		location_text VARCHAR(200) NOT NULL DEFAULT '',
		where_to_claim VARCHAR(250) NOT NULL DEFAULT '',
		date_happened TIMESTAMPTZ,
		created_by UUID NOT NULL,
		author_name VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMPTZ NOT NULL,
		comments JSONB NOT NULL DEFAULT '[]'
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func newTestItem(itemType string, createdAt time.Time) *models.ItemDB {
	return &models.ItemDB{
		ItemID:       uuid.New(),
		Title:        "Black umbrella",
		Description:  "Left near the entrance",
		Type:         itemType,
		Images:       models.ImageRefList{},
		LocationText: "Main library",
		WhereToClaim: "Front desk",
		CreatedBy:    uuid.New(),
		AuthorName:   "Alice Johnson",
		CreatedAt:    createdAt,
		UpdatedAt:    createdAt,
		ExpiresAt:    createdAt.Add(30 * 24 * time.Hour),
		Comments:     models.CommentList{},
	}
}

func TestItemRepository_SaveAndGetByID(t *testing.T) {
	db, teardown := setupItemPostgresContainer(t)
	defer teardown()

	writeRepo := NewItemWriteRepository(db)
	readRepo := NewItemReadRepository(db)
	ctx := context.Background()

	happened := time.Now().Add(-2 * time.Hour).Truncate(time.Microsecond).UTC()
	item := newTestItem(models.ItemTypeLost, time.Now().Truncate(time.Microsecond).UTC())
	item.DateHappened = &happened
	item.Images = models.ImageRefList{{URL: "https://cdn.example.com/a.jpg", Key: "items/a.jpg"}}
	item.Comments = models.CommentList{{
		CommentID:  uuid.New(),
		UserID:     uuid.New(),
		AuthorName: "Bob",
		Text:       "I think I saw it",
		CreatedAt:  time.Now().Truncate(time.Microsecond).UTC(),
	}}

	err := writeRepo.Save(ctx, item)
	assert.NoError(t, err)

	got, err := readRepo.GetByID(ctx, item.ItemID)
	assert.NoError(t, err)
	assert.NotNil(t, got)

	assert.Equal(t, item.ItemID, got.ItemID)
	assert.Equal(t, item.Title, got.Title)
	assert.Equal(t, item.Type, got.Type)
	assert.Equal(t, item.Images, got.Images)
	assert.Equal(t, item.AuthorName, got.AuthorName)
	assert.True(t, item.CreatedAt.Equal(got.CreatedAt))
	assert.True(t, happened.Equal(*got.DateHappened))
	assert.Len(t, got.Comments, 1)
	assert.Equal(t, item.Comments[0].CommentID, got.Comments[0].CommentID)
	assert.Equal(t, "I think I saw it", got.Comments[0].Text)

	t.Run("NotFound", func(t *testing.T) {
		got, err := readRepo.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestItemReadRepository_List_Pagination(t *testing.T) {
	db, teardown := setupItemPostgresContainer(t)
	defer teardown()

	writeRepo := NewItemWriteRepository(db)
	readRepo := NewItemReadRepository(db)
	ctx := context.Background()

	base := time.Now().Truncate(time.Microsecond).UTC()
	inserted := make([]uuid.UUID, 0, 5)
	for i := 0; i < 5; i++ {
		// two items share a created_at to exercise the item_id tie-break
		createdAt := base.Add(-time.Duration(i/2) * time.Minute)
		item := newTestItem(models.ItemTypeLost, createdAt)
		err := writeRepo.Save(ctx, item)
		assert.NoError(t, err)
		inserted = append(inserted, item.ItemID)
	}

	seen := make(map[uuid.UUID]bool)
	var cursorTime *time.Time
	var cursorID *uuid.UUID
	pages := 0

	for {
		page, err := readRepo.List(ctx, ItemListFilter{
			CursorTime: cursorTime,
			CursorID:   cursorID,
			Limit:      2,
		})
		assert.NoError(t, err)
		if len(page) == 0 {
			break
		}
		pages++

		for _, item := range page {
			assert.False(t, seen[item.ItemID], "item returned twice across pages")
			seen[item.ItemID] = true
		}

		// pages come back in strict (created_at, item_id) descending order
		for i := 1; i < len(page); i++ {
			prev, cur := page[i-1], page[i]
			ordered := cur.CreatedAt.Before(prev.CreatedAt) ||
				(cur.CreatedAt.Equal(prev.CreatedAt) && cur.ItemID.String() < prev.ItemID.String())
			assert.True(t, ordered)
		}

		last := page[len(page)-1]
		cursorTime = &last.CreatedAt
		cursorID = &last.ItemID
	}

	assert.Equal(t, 3, pages)
	assert.Len(t, seen, len(inserted))
	for _, id := range inserted {
		assert.True(t, seen[id], "item skipped by pagination")
	}
}

func TestItemReadRepository_List_Filters(t *testing.T) {
	db, teardown := setupItemPostgresContainer(t)
	defer teardown()

	writeRepo := NewItemWriteRepository(db)
	readRepo := NewItemReadRepository(db)
	ctx := context.Background()

	now := time.Now().Truncate(time.Microsecond).UTC()

	lost := newTestItem(models.ItemTypeLost, now)
	lost.LocationText = "Main library, second floor"
	assert.NoError(t, writeRepo.Save(ctx, lost))

	found := newTestItem(models.ItemTypeFound, now.Add(-time.Minute))
	found.LocationText = "Gym locker room"
	assert.NoError(t, writeRepo.Save(ctx, found))

	expired := newTestItem(models.ItemTypeLost, now.Add(-31*24*time.Hour))
	expired.ExpiresAt = now.Add(-24 * time.Hour)
	assert.NoError(t, writeRepo.Save(ctx, expired))

	t.Run("NoFilter", func(t *testing.T) {
		items, err := readRepo.List(ctx, ItemListFilter{Limit: 20})
		assert.NoError(t, err)
		assert.Len(t, items, 2) // expired item excluded
	})

	t.Run("ByType", func(t *testing.T) {
		itemType := models.ItemTypeFound
		items, err := readRepo.List(ctx, ItemListFilter{Type: &itemType, Limit: 20})
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, found.ItemID, items[0].ItemID)
	})

	t.Run("ByLocationSubstring", func(t *testing.T) {
		location := "LIBRARY"
		items, err := readRepo.List(ctx, ItemListFilter{Location: &location, Limit: 20})
		assert.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Equal(t, lost.ItemID, items[0].ItemID)
	})

	t.Run("NoMatch", func(t *testing.T) {
		location := "cafeteria"
		items, err := readRepo.List(ctx, ItemListFilter{Location: &location, Limit: 20})
		assert.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestItemWriteRepository_AppendComment(t *testing.T) {
	db, teardown := setupItemPostgresContainer(t)
	defer teardown()

	writeRepo := NewItemWriteRepository(db)
	readRepo := NewItemReadRepository(db)
	ctx := context.Background()

	item := newTestItem(models.ItemTypeLost, time.Now().Truncate(time.Microsecond).UTC())
	assert.NoError(t, writeRepo.Save(ctx, item))

	first := models.Comment{
		CommentID:  uuid.New(),
		UserID:     uuid.New(),
		AuthorName: "Bob",
		Text:       "Is it still there?",
		CreatedAt:  time.Now().Truncate(time.Microsecond).UTC(),
	}
	second := models.Comment{
		CommentID:  uuid.New(),
		UserID:     uuid.New(),
		AuthorName: "Carol",
		Text:       "I handed it to the front desk",
		CreatedAt:  time.Now().Truncate(time.Microsecond).UTC(),
	}

	matched, err := writeRepo.AppendComment(ctx, item.ItemID, first)
	assert.NoError(t, err)
	assert.True(t, matched)

	matched, err = writeRepo.AppendComment(ctx, item.ItemID, second)
	assert.NoError(t, err)
	assert.True(t, matched)

	got, err := readRepo.GetByID(ctx, item.ItemID)
	assert.NoError(t, err)
	assert.Len(t, got.Comments, 2)
	assert.Equal(t, first.CommentID, got.Comments[0].CommentID)
	assert.Equal(t, second.CommentID, got.Comments[1].CommentID)

	t.Run("MissingItem", func(t *testing.T) {
		matched, err := writeRepo.AppendComment(ctx, uuid.New(), first)
		assert.NoError(t, err)
		assert.False(t, matched)
	})
}

func TestItemWriteRepository_ReplaceComments(t *testing.T) {
	db, teardown := setupItemPostgresContainer(t)
	defer teardown()

	writeRepo := NewItemWriteRepository(db)
	readRepo := NewItemReadRepository(db)
	ctx := context.Background()

	item := newTestItem(models.ItemTypeFound, time.Now().Truncate(time.Microsecond).UTC())
	item.Comments = models.CommentList{
		{CommentID: uuid.New(), UserID: uuid.New(), AuthorName: "Bob", Text: "one", CreatedAt: time.Now().UTC()},
		{CommentID: uuid.New(), UserID: uuid.New(), AuthorName: "Carol", Text: "two", CreatedAt: time.Now().UTC()},
	}
	assert.NoError(t, writeRepo.Save(ctx, item))

	remaining := models.CommentList{item.Comments[1]}
	matched, err := writeRepo.ReplaceComments(ctx, item.ItemID, remaining)
	assert.NoError(t, err)
	assert.True(t, matched)

	got, err := readRepo.GetByID(ctx, item.ItemID)
	assert.NoError(t, err)
	assert.Len(t, got.Comments, 1)
	assert.Equal(t, item.Comments[1].CommentID, got.Comments[0].CommentID)

	t.Run("EmptyList", func(t *testing.T) {
		matched, err := writeRepo.ReplaceComments(ctx, item.ItemID, models.CommentList{})
		assert.NoError(t, err)
		assert.True(t, matched)

		got, err := readRepo.GetByID(ctx, item.ItemID)
		assert.NoError(t, err)
		assert.Empty(t, got.Comments)
	})

	t.Run("MissingItem", func(t *testing.T) {
		matched, err := writeRepo.ReplaceComments(ctx, uuid.New(), models.CommentList{})
		assert.NoError(t, err)
		assert.False(t, matched)
	})
}
