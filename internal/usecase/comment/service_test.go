package comment

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"news-portal/internal/domain/access"
	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

var (
	admin  = entity.Actor{ID: 1, Role: entity.RoleAdmin}
	reader = entity.Actor{ID: 7, Role: entity.RoleUser}
	other  = entity.Actor{ID: 8, Role: entity.RoleUser}
)

type stubCommentRepo struct {
	comments map[int64]*entity.Comment
	nextID   int64
	deleted  []int64
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
	r.deleted = append(r.deleted, id)
	return nil
}

func (r *stubCommentRepo) CountAll(ctx context.Context) (int64, error) {
	return int64(len(r.comments)), nil
}

// stubArticleGetter provides just enough of ArticleRepository for the
// comment service, which only calls Get.
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

func newCommentService(repo *stubCommentRepo, article *entity.Article) *Service {
	return &Service{
		Repo:     repo,
		Articles: &stubArticleGetter{article: article},
		Now:      func() time.Time { return fixedNow },
	}
}

func published() *entity.Article {
	return &entity.Article{ID: 10, AuthorID: 42, Status: entity.StatusPublished}
}

func TestCommentCreate(t *testing.T) {
	t.Run("reader comments on published article", func(t *testing.T) {
		repo := newStubCommentRepo()
		svc := newCommentService(repo, published())

		c, err := svc.Create(context.Background(), reader, 10, "well researched piece")
		if err != nil {
			t.Fatalf("Create returned error: %v", err)
		}
		if c.AuthorID != reader.ID || c.ArticleID != 10 {
			t.Errorf("comment = %+v", c)
		}
		if !c.CreatedAt.Equal(fixedNow) || !c.UpdatedAt.Equal(fixedNow) {
			t.Errorf("timestamps = %v / %v, want %v", c.CreatedAt, c.UpdatedAt, fixedNow)
		}
	})

	t.Run("draft article rejects comments", func(t *testing.T) {
		draft := published()
		draft.Status = entity.StatusDraft
		svc := newCommentService(newStubCommentRepo(), draft)

		_, err := svc.Create(context.Background(), reader, 10, "first!")
		if !errors.Is(err, ErrArticleNotFound) {
			t.Errorf("err = %v, want ErrArticleNotFound", err)
		}
	})

	t.Run("unknown article", func(t *testing.T) {
		svc := newCommentService(newStubCommentRepo(), nil)
		_, err := svc.Create(context.Background(), reader, 10, "hello there")
		if !errors.Is(err, ErrArticleNotFound) {
			t.Errorf("err = %v, want ErrArticleNotFound", err)
		}
	})

	t.Run("empty content", func(t *testing.T) {
		svc := newCommentService(newStubCommentRepo(), published())
		_, err := svc.Create(context.Background(), reader, 10, "")
		var ve *entity.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("content too long", func(t *testing.T) {
		svc := newCommentService(newStubCommentRepo(), published())
		_, err := svc.Create(context.Background(), reader, 10, strings.Repeat("x", 2001))
		var ve *entity.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("anonymous denied", func(t *testing.T) {
		svc := newCommentService(newStubCommentRepo(), published())
		_, err := svc.Create(context.Background(), entity.Actor{}, 10, "sneaky")
		var ae *access.AuthorizationError
		if !errors.As(err, &ae) {
			t.Fatalf("expected AuthorizationError, got %v", err)
		}
	})
}

func TestCommentEdit(t *testing.T) {
	own := &entity.Comment{ID: 5, ArticleID: 10, AuthorID: reader.ID, Content: "original"}

	t.Run("author edits own comment", func(t *testing.T) {
		repo := newStubCommentRepo(own)
		svc := newCommentService(repo, published())

		c, err := svc.Edit(context.Background(), reader, 5, "clarified")
		if err != nil {
			t.Fatalf("Edit returned error: %v", err)
		}
		if c.Content != "clarified" {
			t.Errorf("Content = %q", c.Content)
		}
		if !c.UpdatedAt.Equal(fixedNow) {
			t.Errorf("UpdatedAt = %v, want %v", c.UpdatedAt, fixedNow)
		}
		if repo.comments[5].Content != "clarified" {
			t.Error("edit was not persisted")
		}
	})

	t.Run("admin cannot edit others' comments", func(t *testing.T) {
		svc := newCommentService(newStubCommentRepo(own), published())
		_, err := svc.Edit(context.Background(), admin, 5, "reworded by admin")
		var ae *access.AuthorizationError
		if !errors.As(err, &ae) {
			t.Fatalf("expected AuthorizationError, got %v", err)
		}
	})

	t.Run("unknown comment", func(t *testing.T) {
		svc := newCommentService(newStubCommentRepo(), published())
		if _, err := svc.Edit(context.Background(), reader, 5, "hello"); !errors.Is(err, ErrCommentNotFound) {
			t.Errorf("err = %v, want ErrCommentNotFound", err)
		}
	})
}

func TestCommentDelete(t *testing.T) {
	own := &entity.Comment{ID: 5, ArticleID: 10, AuthorID: reader.ID}

	t.Run("author deletes own", func(t *testing.T) {
		repo := newStubCommentRepo(own)
		svc := newCommentService(repo, published())

		if err := svc.Delete(context.Background(), reader, 5); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
		if len(repo.deleted) != 1 || repo.deleted[0] != 5 {
			t.Errorf("deleted = %v", repo.deleted)
		}
	})

	t.Run("admin deletes any", func(t *testing.T) {
		repo := newStubCommentRepo(own)
		svc := newCommentService(repo, published())

		if err := svc.Delete(context.Background(), admin, 5); err != nil {
			t.Fatalf("Delete returned error: %v", err)
		}
	})

	t.Run("other reader denied", func(t *testing.T) {
		svc := newCommentService(newStubCommentRepo(own), published())
		err := svc.Delete(context.Background(), other, 5)
		var ae *access.AuthorizationError
		if !errors.As(err, &ae) {
			t.Fatalf("expected AuthorizationError, got %v", err)
		}
	})
}

func TestCommentListForActor(t *testing.T) {
	mine := &entity.Comment{ID: 1, ArticleID: 10, AuthorID: reader.ID}
	theirs := &entity.Comment{ID: 2, ArticleID: 10, AuthorID: other.ID}
	repo := newStubCommentRepo(mine, theirs)
	svc := newCommentService(repo, published())

	t.Run("admin may request all", func(t *testing.T) {
		all, err := svc.ListForActor(context.Background(), admin, access.ScopeAll)
		if err != nil {
			t.Fatalf("ListForActor returned error: %v", err)
		}
		if len(all) != 2 {
			t.Errorf("len = %d, want 2", len(all))
		}
	})

	t.Run("reader requesting all is scoped to own", func(t *testing.T) {
		own, err := svc.ListForActor(context.Background(), reader, access.ScopeAll)
		if err != nil {
			t.Fatalf("ListForActor returned error: %v", err)
		}
		if len(own) != 1 || own[0].AuthorID != reader.ID {
			t.Errorf("own = %+v", own)
		}
	})
}

func TestCommentListByArticle(t *testing.T) {
	c := &entity.Comment{ID: 1, ArticleID: 10, AuthorID: reader.ID}
	svc := newCommentService(newStubCommentRepo(c), published())

	got, err := svc.ListByArticle(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListByArticle returned error: %v", err)
	}
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}

	if _, err := svc.ListByArticle(context.Background(), 0); !errors.Is(err, ErrArticleNotFound) {
		t.Errorf("invalid id: err = %v, want ErrArticleNotFound", err)
	}
}
