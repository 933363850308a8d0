package user

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/auth"
	userUC "news-portal/internal/usecase/user"
)

var (
	adminActor  = entity.Actor{ID: 1, Role: entity.RoleAdmin}
	authorActor = entity.Actor{ID: 42, Role: entity.RoleAuthor}
)

type stubUserRepo struct {
	users map[int64]*entity.User
}

func newStubUserRepo(users ...*entity.User) *stubUserRepo {
	r := &stubUserRepo{users: make(map[int64]*entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *stubUserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *stubUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) UpdateRole(ctx context.Context, id int64, role entity.Role) error {
	if u, ok := r.users[id]; ok {
		u.Role = role
	}
	return nil
}

func (r *stubUserRepo) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	if u, ok := r.users[id]; ok {
		u.Blocked = blocked
	}
	return nil
}

func asActor(r *http.Request, actor entity.Actor) *http.Request {
	return r.WithContext(auth.WithActor(r.Context(), actor))
}

func TestListHandler(t *testing.T) {
	repo := newStubUserRepo(
		&entity.User{ID: 1, Role: entity.RoleAdmin},
		&entity.User{ID: 7, Role: entity.RoleUser},
	)

	t.Run("admin lists accounts", func(t *testing.T) {
		h := ListHandler{Svc: &userUC.Service{Repo: repo}}
		req := asActor(httptest.NewRequest(http.MethodGet, "/users", nil), adminActor)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
		}
		var dtos []DTO
		if err := json.NewDecoder(rec.Body).Decode(&dtos); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(dtos) != 2 {
			t.Errorf("len = %d, want 2", len(dtos))
		}
	})

	t.Run("author is forbidden", func(t *testing.T) {
		h := ListHandler{Svc: &userUC.Service{Repo: repo}}
		req := asActor(httptest.NewRequest(http.MethodGet, "/users", nil), authorActor)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})
}

func TestChangeRoleHandler(t *testing.T) {
	t.Run("promote reader to author", func(t *testing.T) {
		repo := newStubUserRepo(&entity.User{ID: 7, Role: entity.RoleUser})
		h := ChangeRoleHandler{Svc: &userUC.Service{Repo: repo}}

		req := asActor(httptest.NewRequest(http.MethodPut, "/users/7/role",
			strings.NewReader(`{"role":"author"}`)), adminActor)
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
		}
		var dto DTO
		if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if dto.Role != string(entity.RoleAuthor) {
			t.Errorf("Role = %q, want author", dto.Role)
		}
		if repo.users[7].Role != entity.RoleAuthor {
			t.Error("role change was not persisted")
		}
	})

	t.Run("cannot grant admin", func(t *testing.T) {
		h := ChangeRoleHandler{Svc: &userUC.Service{Repo: newStubUserRepo(&entity.User{ID: 7, Role: entity.RoleUser})}}
		req := asActor(httptest.NewRequest(http.MethodPut, "/users/7/role",
			strings.NewReader(`{"role":"admin"}`)), adminActor)
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		h := ChangeRoleHandler{Svc: &userUC.Service{Repo: newStubUserRepo()}}
		req := asActor(httptest.NewRequest(http.MethodPut, "/users/99/role",
			strings.NewReader(`{"role":"author"}`)), adminActor)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestBlockHandler(t *testing.T) {
	t.Run("admin blocks a user", func(t *testing.T) {
		repo := newStubUserRepo(&entity.User{ID: 7, Role: entity.RoleUser})
		h := BlockHandler{Svc: &userUC.Service{Repo: repo}}

		req := asActor(httptest.NewRequest(http.MethodPut, "/users/7/block",
			strings.NewReader(`{"blocked":true}`)), adminActor)
		req.SetPathValue("id", "7")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
		}
		var dto DTO
		if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if !dto.Blocked {
			t.Error("user should be blocked")
		}
	})

	t.Run("cannot block self", func(t *testing.T) {
		h := BlockHandler{Svc: &userUC.Service{Repo: newStubUserRepo(&entity.User{ID: adminActor.ID, Role: entity.RoleAdmin})}}
		req := asActor(httptest.NewRequest(http.MethodPut, "/users/1/block",
			strings.NewReader(`{"blocked":true}`)), adminActor)
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("bad id", func(t *testing.T) {
		h := BlockHandler{Svc: &userUC.Service{Repo: newStubUserRepo()}}
		req := asActor(httptest.NewRequest(http.MethodPut, "/users/abc/block",
			strings.NewReader(`{"blocked":true}`)), adminActor)
		req.SetPathValue("id", "abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}
