package comment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/auth"
	"news-portal/internal/repository"
	comUC "news-portal/internal/usecase/comment"
)

var (
	adminActor  = entity.Actor{ID: 1, Role: entity.RoleAdmin}
	readerActor = entity.Actor{ID: 7, Role: entity.RoleUser}
)

type stubCommentRepo struct {
	comments map[int64]*entity.Comment
	nextID   int64
}

func newStubCommentRepo(comments ...*entity.Comment) *stubCommentRepo {
	r := &stubCommentRepo{comments: make(map[int64]*entity.Comment), nextID: 100}
	for _, c := range comments {
		r.comments[c.ID] = c
	}
	return r
}

func (r *stubCommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (r *stubCommentRepo) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range r.comments {
		if c.ArticleID == articleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) ListByAuthor(ctx context.Context, authorID int64) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range r.comments {
		if c.AuthorID == authorID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *stubCommentRepo) ListAll(ctx context.Context) ([]*entity.Comment, error) {
	var out []*entity.Comment
	for _, c := range r.comments {
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	r.nextID++
	c.ID = r.nextID
	copied := *c
	r.comments[c.ID] = &copied
	return nil
}

func (r *stubCommentRepo) Update(ctx context.Context, c *entity.Comment) error {
	copied := *c
	r.comments[c.ID] = &copied
	return nil
}

func (r *stubCommentRepo) Delete(ctx context.Context, id int64) error {
	delete(r.comments, id)
	return nil
}

func (r *stubCommentRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.comments)), nil
}

type stubArticleGetter struct {
	repository.ArticleRepository
	article *entity.Article
}

func (r *stubArticleGetter) Get(ctx context.Context, id int64) (*entity.Article, error) {
	if r.article == nil || r.article.ID != id {
		return nil, nil
	}
	return r.article, nil
}

func newService(repo *stubCommentRepo, article *entity.Article) *comUC.Service {
	return &comUC.Service{
		Repo:     repo,
		Articles: &stubArticleGetter{article: article},
	}
}

func publishedArticle() *entity.Article {
	return &entity.Article{ID: 10, AuthorID: 42, Status: entity.StatusPublished}
}

func asActor(r *http.Request, actor entity.Actor) *http.Request {
	return r.WithContext(auth.WithActor(r.Context(), actor))
}

func TestCreateHandler(t *testing.T) {
	t.Run("reader comments on a published article", func(t *testing.T) {
		h := CreateHandler{Svc: newService(newStubCommentRepo(), publishedArticle())}

		req := asActor(httptest.NewRequest(http.MethodPost, "/articles/10/comments",
			strings.NewReader(`{"content":"well researched"}`)), readerActor)
		req.SetPathValue("id", "10")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusCreated {
			t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body)
		}
		var dto DTO
		if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if dto.AuthorID != readerActor.ID || dto.ArticleID != 10 {
			t.Errorf("dto = %+v", dto)
		}
	})

	t.Run("no actor in context", func(t *testing.T) {
		h := CreateHandler{Svc: newService(newStubCommentRepo(), publishedArticle())}
		req := httptest.NewRequest(http.MethodPost, "/articles/10/comments", strings.NewReader(`{"content":"x"}`))
		req.SetPathValue("id", "10")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want 401", rec.Code)
		}
	})

	t.Run("unpublished article", func(t *testing.T) {
		draft := publishedArticle()
		draft.Status = entity.StatusDraft
		h := CreateHandler{Svc: newService(newStubCommentRepo(), draft)}

		req := asActor(httptest.NewRequest(http.MethodPost, "/articles/10/comments",
			strings.NewReader(`{"content":"first!"}`)), readerActor)
		req.SetPathValue("id", "10")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		h := CreateHandler{Svc: newService(newStubCommentRepo(), publishedArticle())}
		req := asActor(httptest.NewRequest(http.MethodPost, "/articles/10/comments",
			strings.NewReader(`{"content":""}`)), readerActor)
		req.SetPathValue("id", "10")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestEditHandler(t *testing.T) {
	own := &entity.Comment{ID: 5, ArticleID: 10, AuthorID: readerActor.ID, Content: "original"}

	t.Run("author edits own comment", func(t *testing.T) {
		h := EditHandler{Svc: newService(newStubCommentRepo(own), publishedArticle())}

		req := asActor(httptest.NewRequest(http.MethodPut, "/comments/5",
			strings.NewReader(`{"content":"clarified"}`)), readerActor)
		req.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
		}
		var dto DTO
		if err := json.NewDecoder(rec.Body).Decode(&dto); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if dto.Content != "clarified" {
			t.Errorf("Content = %q", dto.Content)
		}
	})

	t.Run("admin cannot edit others' comments", func(t *testing.T) {
		h := EditHandler{Svc: newService(newStubCommentRepo(own), publishedArticle())}
		req := asActor(httptest.NewRequest(http.MethodPut, "/comments/5",
			strings.NewReader(`{"content":"reworded"}`)), adminActor)
		req.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("unknown comment", func(t *testing.T) {
		h := EditHandler{Svc: newService(newStubCommentRepo(), publishedArticle())}
		req := asActor(httptest.NewRequest(http.MethodPut, "/comments/5",
			strings.NewReader(`{"content":"hello"}`)), readerActor)
		req.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("status = %d, want 404", rec.Code)
		}
	})
}

func TestDeleteHandler(t *testing.T) {
	own := &entity.Comment{ID: 5, ArticleID: 10, AuthorID: readerActor.ID}

	t.Run("admin deletes any comment", func(t *testing.T) {
		repo := newStubCommentRepo(own)
		h := DeleteHandler{Svc: newService(repo, publishedArticle())}

		req := asActor(httptest.NewRequest(http.MethodDelete, "/comments/5", nil), adminActor)
		req.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Fatalf("status = %d, want 204: %s", rec.Code, rec.Body)
		}
		if _, ok := repo.comments[5]; ok {
			t.Error("comment should be gone")
		}
	})

	t.Run("other reader denied", func(t *testing.T) {
		h := DeleteHandler{Svc: newService(newStubCommentRepo(own), publishedArticle())}
		req := asActor(httptest.NewRequest(http.MethodDelete, "/comments/5", nil),
			entity.Actor{ID: 8, Role: entity.RoleUser})
		req.SetPathValue("id", "5")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})
}

func TestListHandler(t *testing.T) {
	now := time.Now()
	c := &entity.Comment{ID: 1, ArticleID: 10, AuthorID: readerActor.ID, Content: "c", CreatedAt: now, UpdatedAt: now}
	h := ListHandler{Svc: newService(newStubCommentRepo(c), publishedArticle())}

	// The thread is public: no actor on the request.
	req := httptest.NewRequest(http.MethodGet, "/articles/10/comments", nil)
	req.SetPathValue("id", "10")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body)
	}
	var dtos []DTO
	if err := json.NewDecoder(rec.Body).Decode(&dtos); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if len(dtos) != 1 {
		t.Errorf("len = %d, want 1", len(dtos))
	}
}

func TestMineHandler(t *testing.T) {
	mine := &entity.Comment{ID: 1, ArticleID: 10, AuthorID: readerActor.ID}
	theirs := &entity.Comment{ID: 2, ArticleID: 10, AuthorID: 8}
	h := MineHandler{Svc: newService(newStubCommentRepo(mine, theirs), publishedArticle())}

	t.Run("admin with scope=all sees everything", func(t *testing.T) {
		req := asActor(httptest.NewRequest(http.MethodGet, "/my/comments?scope=all", nil), adminActor)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		var dtos []DTO
		if err := json.NewDecoder(rec.Body).Decode(&dtos); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(dtos) != 2 {
			t.Errorf("len = %d, want 2", len(dtos))
		}
	})

	t.Run("reader with scope=all stays scoped to own", func(t *testing.T) {
		req := asActor(httptest.NewRequest(http.MethodGet, "/my/comments?scope=all", nil), readerActor)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		var dtos []DTO
		if err := json.NewDecoder(rec.Body).Decode(&dtos); err != nil {
			t.Fatalf("decoding response: %v", err)
		}
		if len(dtos) != 1 || dtos[0].AuthorID != readerActor.ID {
			t.Errorf("dtos = %+v", dtos)
		}
	})
}
