package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"

	"news-portal/internal/domain/entity"
	pg "news-portal/internal/infra/adapter/persistence/postgres"
)

var userCols = []string{"id", "email", "name", "role", "blocked", "created_at"}

/* ─────────────────────────── 1. Lookups ─────────────────────────── */

func TestUserRepo_Get(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	want := &entity.User{
		ID: 7, Email: "reader@example.com", Name: "Reader",
		Role: entity.RoleUser, CreatedAt: now,
	}
	mock.ExpectQuery("FROM users").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(want.ID, want.Email, want.Name, want.Role, want.Blocked, want.CreatedAt))

	repo := pg.NewUserRepo(db)
	got, err := repo.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestUserRepo_Get_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("FROM users").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows(userCols))

	repo := pg.NewUserRepo(db)
	got, err := repo.Get(context.Background(), 99)
	if err != nil || got != nil {
		t.Fatalf("want (nil, nil), got (%+v, %v)", got, err)
	}
}

func TestUserRepo_List(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery("ORDER BY created_at ASC").
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(int64(1), "admin@example.com", "Admin", entity.RoleAdmin, false, now).
			AddRow(int64(7), "reader@example.com", "Reader", entity.RoleUser, true, now))

	repo := pg.NewUserRepo(db)
	got, err := repo.List(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("List err=%v len=%d", err, len(got))
	}
	if !got[1].Blocked {
		t.Fatal("blocked flag not scanned")
	}
}

/* ─────────────────────────── 2. Writes ─────────────────────────── */

func TestUserRepo_UpdateRole(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE users SET role").
		WithArgs(entity.RoleAuthor, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewUserRepo(db)
	if err := repo.UpdateRole(context.Background(), 7, entity.RoleAuthor); err != nil {
		t.Fatalf("UpdateRole err=%v", err)
	}
}

func TestUserRepo_UpdateRole_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE users SET role").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewUserRepo(db)
	err := repo.UpdateRole(context.Background(), 99, entity.RoleAuthor)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}

func TestUserRepo_SetBlocked(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE users SET blocked").
		WithArgs(true, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := pg.NewUserRepo(db)
	if err := repo.SetBlocked(context.Background(), 7, true); err != nil {
		t.Fatalf("SetBlocked err=%v", err)
	}
}

func TestUserRepo_SetBlocked_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE users SET blocked").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewUserRepo(db)
	err := repo.SetBlocked(context.Background(), 99, true)
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("err=%v, want ErrNotFound", err)
	}
}
