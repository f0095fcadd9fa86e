package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/KragoN96/berries-web-app/internal/models"
	"github.com/KragoN96/berries-web-app/internal/repositories"
	"github.com/KragoN96/berries-web-app/internal/services"
)

func newItemService(ctrl *gomock.Controller) (*services.ItemService, *services.MockItemReader, *services.MockItemWriter, *services.MockUserReader, *services.MockItemCache) {
	items := services.NewMockItemReader(ctrl)
	writer := services.NewMockItemWriter(ctrl)
	users := services.NewMockUserReader(ctrl)
	cache := services.NewMockItemCache(ctrl)
	return services.NewItemService(items, writer, users, cache), items, writer, users, cache
}

func TestItemService_CreateItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	creator := &models.UserDB{UserID: userID, FullName: "Alice Johnson", Email: "alice@example.com"}

	t.Run("successful create", func(t *testing.T) {
		svc, _, writer, users, _ := newItemService(ctrl)

		users.EXPECT().GetByID(gomock.Any(), userID).Return(creator, nil)
		writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *models.ItemDB) error {
				assert.NotEqual(t, uuid.Nil, item.ItemID)
				assert.Equal(t, "Lost red backpack", item.Title)
				assert.Equal(t, models.ItemTypeLost, item.Type)
				assert.Equal(t, userID, item.CreatedBy)
				assert.Equal(t, "Alice Johnson", item.AuthorName)
				assert.NotNil(t, item.Comments)
				assert.Empty(t, item.Comments)
				// Retention window is 30 days from creation
				assert.WithinDuration(t, item.CreatedAt.Add(30*24*time.Hour), item.ExpiresAt, time.Second)
				return nil
			})

		item, err := svc.CreateItem(context.Background(), userID, services.CreateItemInput{
			Title:        "  Lost red backpack ",
			Description:  "Left it in the library reading room",
			Type:         models.ItemTypeLost,
			LocationText: "Main library",
		})
		assert.NoError(t, err)
		assert.NotNil(t, item)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _, _, _, _ := newItemService(ctrl)

		_, err := svc.CreateItem(context.Background(), userID, services.CreateItemInput{
			Title: "only a title",
			Type:  models.ItemTypeLost,
		})
		assert.ErrorIs(t, err, services.ErrMissingItemFields)
	})

	t.Run("invalid type", func(t *testing.T) {
		svc, _, _, _, _ := newItemService(ctrl)

		_, err := svc.CreateItem(context.Background(), userID, services.CreateItemInput{
			Title:       "Lost keys",
			Description: "Somewhere on campus",
			Type:        "stolen",
		})
		assert.ErrorIs(t, err, services.ErrInvalidItemType)
	})

	t.Run("unknown creator falls back to placeholder name", func(t *testing.T) {
		svc, _, writer, users, _ := newItemService(ctrl)

		users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
		writer.EXPECT().
			Save(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *models.ItemDB) error {
				assert.Equal(t, "Anonymous", item.AuthorName)
				return nil
			})

		_, err := svc.CreateItem(context.Background(), userID, services.CreateItemInput{
			Title:       "Found umbrella",
			Description: "Black, near the gym entrance",
			Type:        models.ItemTypeFound,
		})
		assert.NoError(t, err)
	})
}

func TestItemService_GetItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()
	creatorID := uuid.New()

	newItem := func() *models.ItemDB {
		return &models.ItemDB{
			ItemID:     itemID,
			Title:      "Lost red backpack",
			Type:       models.ItemTypeLost,
			CreatedBy:  creatorID,
			AuthorName: "Old Snapshot",
			Comments: models.CommentList{
				{CommentID: uuid.New(), UserID: uuid.New(), AuthorName: "", Text: "saw it"},
			},
		}
	}

	t.Run("cache miss reads db, refreshes creator name and backfills comments", func(t *testing.T) {
		svc, items, _, users, cache := newItemService(ctrl)

		cache.EXPECT().Get(gomock.Any(), itemID).Return(nil, nil)
		items.EXPECT().GetByID(gomock.Any(), itemID).Return(newItem(), nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(nil)
		users.EXPECT().GetByID(gomock.Any(), creatorID).
			Return(&models.UserDB{UserID: creatorID, FullName: "Alice Johnson"}, nil)

		item, creator, err := svc.GetItem(context.Background(), itemID)
		assert.NoError(t, err)
		assert.NotNil(t, creator)
		assert.Equal(t, "Alice Johnson", item.AuthorName)
		assert.Equal(t, "Anonymous", item.Comments[0].AuthorName)
	})

	t.Run("cache hit skips db read", func(t *testing.T) {
		svc, _, _, users, cache := newItemService(ctrl)

		cache.EXPECT().Get(gomock.Any(), itemID).Return(newItem(), nil)
		users.EXPECT().GetByID(gomock.Any(), creatorID).Return(nil, nil)

		item, creator, err := svc.GetItem(context.Background(), itemID)
		assert.NoError(t, err)
		assert.Nil(t, creator)
		// Deleted creator keeps the write-time snapshot
		assert.Equal(t, "Old Snapshot", item.AuthorName)
	})

	t.Run("not found", func(t *testing.T) {
		svc, items, _, _, cache := newItemService(ctrl)

		cache.EXPECT().Get(gomock.Any(), itemID).Return(nil, nil)
		items.EXPECT().GetByID(gomock.Any(), itemID).Return(nil, nil)

		_, _, err := svc.GetItem(context.Background(), itemID)
		assert.ErrorIs(t, err, services.ErrItemNotFound)
	})

	t.Run("cache errors degrade to db read", func(t *testing.T) {
		svc, items, _, users, cache := newItemService(ctrl)

		cache.EXPECT().Get(gomock.Any(), itemID).Return(nil, errors.New("redis down"))
		items.EXPECT().GetByID(gomock.Any(), itemID).Return(newItem(), nil)
		cache.EXPECT().Set(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
		users.EXPECT().GetByID(gomock.Any(), creatorID).Return(nil, nil)

		item, _, err := svc.GetItem(context.Background(), itemID)
		assert.NoError(t, err)
		assert.NotNil(t, item)
	})
}

func TestItemService_ListItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	makeItems := func(n int) []models.ItemDB {
		out := make([]models.ItemDB, n)
		base := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
		for i := range out {
			out[i] = models.ItemDB{
				ItemID:    uuid.New(),
				Title:     "item",
				Type:      models.ItemTypeLost,
				CreatedAt: base.Add(-time.Duration(i) * time.Minute),
			}
		}
		return out
	}

	t.Run("full page returns cursor for the next one", func(t *testing.T) {
		svc, items, _, _, _ := newItemService(ctrl)
		page := makeItems(3)

		items.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f repositories.ItemListFilter) ([]models.ItemDB, error) {
				assert.Equal(t, 3, f.Limit)
				assert.Nil(t, f.CursorTime)
				return page, nil
			})

		got, next, err := svc.ListItems(context.Background(), "", "", "", 3)
		assert.NoError(t, err)
		assert.Len(t, got, 3)
		assert.NotEmpty(t, next)

		// Feeding the cursor back targets the last item of the page
		last := page[len(page)-1]
		items.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f repositories.ItemListFilter) ([]models.ItemDB, error) {
				if assert.NotNil(t, f.CursorTime) {
					assert.True(t, f.CursorTime.Equal(last.CreatedAt))
				}
				if assert.NotNil(t, f.CursorID) {
					assert.Equal(t, last.ItemID, *f.CursorID)
				}
				return nil, nil
			})

		_, next2, err := svc.ListItems(context.Background(), "", "", next, 3)
		assert.NoError(t, err)
		assert.Empty(t, next2)
	})

	t.Run("short page has no cursor", func(t *testing.T) {
		svc, items, _, _, _ := newItemService(ctrl)

		items.EXPECT().List(gomock.Any(), gomock.Any()).Return(makeItems(2), nil)

		got, next, err := svc.ListItems(context.Background(), "", "", "", 20)
		assert.NoError(t, err)
		assert.Len(t, got, 2)
		assert.Empty(t, next)
	})

	t.Run("limit defaults and caps", func(t *testing.T) {
		svc, items, _, _, _ := newItemService(ctrl)

		items.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f repositories.ItemListFilter) ([]models.ItemDB, error) {
				assert.Equal(t, 20, f.Limit)
				return nil, nil
			})
		_, _, err := svc.ListItems(context.Background(), "", "", "", 0)
		assert.NoError(t, err)

		items.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f repositories.ItemListFilter) ([]models.ItemDB, error) {
				assert.Equal(t, 50, f.Limit)
				return nil, nil
			})
		_, _, err = svc.ListItems(context.Background(), "", "", "", 500)
		assert.NoError(t, err)
	})

	t.Run("type and location filters pass through", func(t *testing.T) {
		svc, items, _, _, _ := newItemService(ctrl)

		items.EXPECT().
			List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f repositories.ItemListFilter) ([]models.ItemDB, error) {
				if assert.NotNil(t, f.Type) {
					assert.Equal(t, models.ItemTypeFound, *f.Type)
				}
				if assert.NotNil(t, f.Location) {
					assert.Equal(t, "library", *f.Location)
				}
				return nil, nil
			})

		_, _, err := svc.ListItems(context.Background(), models.ItemTypeFound, "library", "", 10)
		assert.NoError(t, err)
	})

	t.Run("invalid type", func(t *testing.T) {
		svc, _, _, _, _ := newItemService(ctrl)

		_, _, err := svc.ListItems(context.Background(), "stolen", "", "", 10)
		assert.ErrorIs(t, err, services.ErrInvalidItemType)
	})

	t.Run("invalid cursor", func(t *testing.T) {
		svc, _, _, _, _ := newItemService(ctrl)

		_, _, err := svc.ListItems(context.Background(), "", "", "not-a-cursor!!!", 10)
		assert.ErrorIs(t, err, services.ErrInvalidCursor)
	})
}

func TestItemService_AddComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()
	userID := uuid.New()

	t.Run("successful add", func(t *testing.T) {
		svc, _, writer, users, cache := newItemService(ctrl)

		users.EXPECT().GetByID(gomock.Any(), userID).
			Return(&models.UserDB{UserID: userID, Email: "bob@example.com"}, nil)
		writer.EXPECT().
			AppendComment(gomock.Any(), itemID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, c models.Comment) (bool, error) {
				assert.Equal(t, "I think I saw this", c.Text)
				// Full name empty, falls back to email
				assert.Equal(t, "bob@example.com", c.AuthorName)
				assert.NotEqual(t, uuid.Nil, c.CommentID)
				return true, nil
			})
		cache.EXPECT().Delete(gomock.Any(), itemID).Return(nil)

		comment, err := svc.AddComment(context.Background(), itemID, userID, "  I think I saw this  ")
		assert.NoError(t, err)
		assert.NotNil(t, comment)
	})

	t.Run("long comment is truncated", func(t *testing.T) {
		svc, _, writer, users, cache := newItemService(ctrl)

		users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
		writer.EXPECT().
			AppendComment(gomock.Any(), itemID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, c models.Comment) (bool, error) {
				assert.Len(t, []rune(c.Text), 400)
				return true, nil
			})
		cache.EXPECT().Delete(gomock.Any(), itemID).Return(nil)

		_, err := svc.AddComment(context.Background(), itemID, userID, strings.Repeat("x", 500))
		assert.NoError(t, err)
	})

	t.Run("too short", func(t *testing.T) {
		svc, _, _, _, _ := newItemService(ctrl)

		_, err := svc.AddComment(context.Background(), itemID, userID, " a ")
		assert.ErrorIs(t, err, services.ErrCommentTooShort)
	})

	t.Run("item gone", func(t *testing.T) {
		svc, _, writer, users, _ := newItemService(ctrl)

		users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
		writer.EXPECT().AppendComment(gomock.Any(), itemID, gomock.Any()).Return(false, nil)

		_, err := svc.AddComment(context.Background(), itemID, userID, "hello there")
		assert.ErrorIs(t, err, services.ErrItemNotFound)
	})
}

func TestItemService_EditComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()
	ownerID := uuid.New()
	commentID := uuid.New()

	newItem := func() *models.ItemDB {
		return &models.ItemDB{
			ItemID: itemID,
			Comments: models.CommentList{
				{CommentID: commentID, UserID: ownerID, Text: "original"},
			},
		}
	}

	t.Run("owner edits", func(t *testing.T) {
		svc, items, writer, _, cache := newItemService(ctrl)

		items.EXPECT().GetByID(gomock.Any(), itemID).Return(newItem(), nil)
		writer.EXPECT().
			ReplaceComments(gomock.Any(), itemID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, comments models.CommentList) (bool, error) {
				assert.Equal(t, "updated text", comments[0].Text)
				assert.NotNil(t, comments[0].EditedAt)
				return true, nil
			})
		cache.EXPECT().Delete(gomock.Any(), itemID).Return(nil)

		err := svc.EditComment(context.Background(), itemID, commentID, ownerID, "updated text")
		assert.NoError(t, err)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, items, _, _, _ := newItemService(ctrl)

		items.EXPECT().GetByID(gomock.Any(), itemID).Return(newItem(), nil)

		err := svc.EditComment(context.Background(), itemID, commentID, uuid.New(), "updated text")
		assert.ErrorIs(t, err, services.ErrNotCommentOwner)
	})

	t.Run("comment not found", func(t *testing.T) {
		svc, items, _, _, _ := newItemService(ctrl)

		items.EXPECT().GetByID(gomock.Any(), itemID).Return(newItem(), nil)

		err := svc.EditComment(context.Background(), itemID, uuid.New(), ownerID, "updated text")
		assert.ErrorIs(t, err, services.ErrCommentNotFound)
	})

	t.Run("item not found", func(t *testing.T) {
		svc, items, _, _, _ := newItemService(ctrl)

		items.EXPECT().GetByID(gomock.Any(), itemID).Return(nil, nil)

		err := svc.EditComment(context.Background(), itemID, commentID, ownerID, "updated text")
		assert.ErrorIs(t, err, services.ErrItemNotFound)
	})
}

func TestItemService_DeleteComment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	itemID := uuid.New()
	ownerID := uuid.New()
	commentID := uuid.New()
	otherID := uuid.New()

	newItem := func() *models.ItemDB {
		return &models.ItemDB{
			ItemID: itemID,
			Comments: models.CommentList{
				{CommentID: commentID, UserID: ownerID, Text: "mine"},
				{CommentID: otherID, UserID: uuid.New(), Text: "someone else's"},
			},
		}
	}

	t.Run("owner deletes", func(t *testing.T) {
		svc, items, writer, _, cache := newItemService(ctrl)

		items.EXPECT().GetByID(gomock.Any(), itemID).Return(newItem(), nil)
		writer.EXPECT().
			ReplaceComments(gomock.Any(), itemID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, comments models.CommentList) (bool, error) {
				assert.Len(t, comments, 1)
				assert.Equal(t, otherID, comments[0].CommentID)
				return true, nil
			})
		cache.EXPECT().Delete(gomock.Any(), itemID).Return(nil)

		err := svc.DeleteComment(context.Background(), itemID, commentID, ownerID)
		assert.NoError(t, err)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, items, _, _, _ := newItemService(ctrl)

		items.EXPECT().GetByID(gomock.Any(), itemID).Return(newItem(), nil)

		err := svc.DeleteComment(context.Background(), itemID, commentID, uuid.New())
		assert.ErrorIs(t, err, services.ErrNotCommentOwner)
	})

	t.Run("comment not found", func(t *testing.T) {
		svc, items, _, _, _ := newItemService(ctrl)

		items.EXPECT().GetByID(gomock.Any(), itemID).Return(newItem(), nil)

		err := svc.DeleteComment(context.Background(), itemID, uuid.New(), ownerID)
		assert.ErrorIs(t, err, services.ErrCommentNotFound)
	})
}
