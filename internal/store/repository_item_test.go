package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/MKhiriev/lost-and-found/internal/logger"
	"github.com/MKhiriev/lost-and-found/models"
)

func newTestItemRepo(t *testing.T) (*itemRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &itemRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

var itemColumns = []string{"item_id", "user_id", "title", "kind", "status", "location", "description", "image_ref", "created_at"}

func TestCreateItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	item := models.Item{
		UserID:      7,
		Title:       "Black umbrella",
		Kind:        models.KindLost,
		Status:      models.StatusUnresolved,
		Location:    "main library",
		Description: "left near the entrance",
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows(itemColumns).
		AddRow(1, item.UserID, item.Title, item.Kind, item.Status, item.Location, item.Description, "", now)

	mock.ExpectQuery("INSERT INTO items").
		WithArgs(item.UserID, item.Title, item.Kind, item.Status, item.Location, item.Description, item.ImageRef, now).
		WillReturnRows(rows)

	created, err := repo.CreateItem(ctx, item)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ItemID != 1 {
		t.Errorf("expected ItemID=1, got %d", created.ItemID)
	}
	if created.Status != models.StatusUnresolved {
		t.Errorf("expected status unresolved, got %s", created.Status)
	}
}

func TestGetItemByID_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM items").
		WithArgs(int64(404)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetItemByID(ctx, 404)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestListItems_FilterByKindAndStatus(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()
	kind := models.KindLost
	status := models.StatusUnresolved

	rows := sqlmock.NewRows(itemColumns).
		AddRow(2, 7, "Black umbrella", kind, status, "main library", "", "", now).
		AddRow(1, 9, "Keys", kind, status, "cafeteria", "", "", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT (.+) FROM items").
		WithArgs(string(kind), string(status)).
		WillReturnRows(rows)

	items, err := repo.ListItems(ctx, models.ItemFilter{Kind: &kind, Status: &status})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ItemID != 2 {
		t.Errorf("expected newest item first, got ItemID=%d", items[0].ItemID)
	}
}

func TestListItems_Empty(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM items").
		WillReturnRows(sqlmock.NewRows(itemColumns))

	items, err := repo.ListItems(ctx, models.ItemFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty slice, got %d items", len(items))
	}
}

func TestCountItems_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	userID := int64(7)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountItems(ctx, models.ItemFilter{UserID: &userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected count=3, got %d", count)
	}
}

func TestUpdateItemStatus_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(itemColumns).
		AddRow(1, 7, "Black umbrella", models.KindLost, models.StatusResolved, "main library", "", "", now)

	mock.ExpectQuery("UPDATE items").
		WithArgs(string(models.StatusResolved), int64(1)).
		WillReturnRows(rows)

	updated, err := repo.UpdateItemStatus(ctx, 1, models.StatusResolved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Status != models.StatusResolved {
		t.Errorf("expected status resolved, got %s", updated.Status)
	}
}

func TestUpdateItemStatus_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("UPDATE items").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.UpdateItemStatus(ctx, 404, models.StatusResolved)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestDeleteItem_Success(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM items").
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteItem(ctx, 1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	repo, mock, db := newTestItemRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM items").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteItem(ctx, 404)
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}
