package comment

import (
	"context"
	"fmt"
	"time"

	"news-portal/internal/domain/access"
	"news-portal/internal/domain/entity"
	"news-portal/internal/observability/metrics"
	"news-portal/internal/repository"
)

// maxCommentLength bounds comment bodies.
const maxCommentLength = 2000

// Service provides comment use cases. Creating and deleting a comment
// also maintains the owning article's comments_count counter, which is
// the repository's job, not the workflow engine's.
type Service struct {
	Repo     repository.CommentRepository
	Articles repository.ArticleRepository

	// Now supplies the clock for timestamps. Defaults to time.Now when nil.
	Now func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create attaches a new comment to a published article. Any
// authenticated actor may comment.
func (s *Service) Create(ctx context.Context, actor entity.Actor, articleID int64, content string) (*entity.Comment, error) {
	if !access.CanPerform(actor, access.ActionCreateComment, nil) {
		metrics.RecordAuthzDenial(string(access.ActionCreateComment))
		return nil, access.Denied(access.ActionCreateComment)
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	art, err := s.Articles.Get(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil || art.Status != entity.StatusPublished {
		return nil, ErrArticleNotFound
	}

	now := s.now()
	c := &entity.Comment{
		ArticleID: art.ID,
		AuthorID:  actor.ID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

// Edit updates a comment's content. Only the comment's author may edit
// it; admins moderate by deletion, never by editing others' words.
func (s *Service) Edit(ctx context.Context, actor entity.Actor, id int64, content string) (*entity.Comment, error) {
	if id <= 0 {
		return nil, ErrInvalidCommentID
	}
	if err := validateContent(content); err != nil {
		return nil, err
	}

	c, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.CanPerform(actor, access.ActionEditComment, c) {
		metrics.RecordAuthzDenial(string(access.ActionEditComment))
		return nil, access.Denied(access.ActionEditComment)
	}

	c.Content = content
	c.UpdatedAt = s.now()
	if err := s.Repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return c, nil
}

// Delete removes a comment. The author may delete their own; admins may
// delete any comment as a moderation action.
func (s *Service) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if id <= 0 {
		return ErrInvalidCommentID
	}

	c, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !access.CanPerform(actor, access.ActionDeleteComment, c) {
		metrics.RecordAuthzDenial(string(access.ActionDeleteComment))
		return access.Denied(access.ActionDeleteComment)
	}

	if err := s.Repo.Delete(ctx, c.ID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}

// ListByArticle retrieves an article's comments for the public page,
// oldest first.
func (s *Service) ListByArticle(ctx context.Context, articleID int64) ([]*entity.Comment, error) {
	if articleID <= 0 {
		return nil, ErrArticleNotFound
	}
	comments, err := s.Repo.ListByArticle(ctx, articleID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// ListForActor retrieves comments for a dashboard view. The "all"
// selector is honored for admins only; everyone else gets their own
// comments regardless of the requested scope.
func (s *Service) ListForActor(ctx context.Context, actor entity.Actor, requested access.Scope) ([]*entity.Comment, error) {
	var (
		comments []*entity.Comment
		err      error
	)
	if access.CommentScope(actor, requested) == access.ScopeAll {
		comments, err = s.Repo.ListAll(ctx)
	} else {
		comments, err = s.Repo.ListByAuthor(ctx, actor.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

func (s *Service) load(ctx context.Context, id int64) (*entity.Comment, error) {
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c == nil {
		return nil, ErrCommentNotFound
	}
	return c, nil
}

func validateContent(content string) error {
	if content == "" {
		return &entity.ValidationError{Field: "content", Message: "is required"}
	}
	if len([]rune(content)) > maxCommentLength {
		return &entity.ValidationError{
			Field:   "content",
			Message: fmt.Sprintf("must be at most %d characters", maxCommentLength),
		}
	}
	return nil
}
