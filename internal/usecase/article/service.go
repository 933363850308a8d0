package article

import (
	"context"
	"errors"
	"fmt"
	"time"

	"news-portal/internal/common/pagination"
	"news-portal/internal/domain/access"
	"news-portal/internal/domain/entity"
	"news-portal/internal/domain/workflow"
	"news-portal/internal/observability/metrics"
	"news-portal/internal/repository"
	"news-portal/internal/resilience/retry"
)

// CreateInput represents the input parameters for creating a new draft.
type CreateInput struct {
	Title    string
	Excerpt  string
	Content  string
	Category string
	Tags     []string
}

// EditInput represents the input parameters for editing an article.
// Fields with nil values will not be updated.
type EditInput struct {
	ID       int64
	Title    *string
	Excerpt  *string
	Content  *string
	Category *string
	Tags     []string
}

// Service provides article workflow use cases. It is the caller the
// workflow engine's contract talks about: it authorizes via the access
// predicate, asks the engine for a decision, and persists the outcome
// conditionally on the status it read. A conflicting concurrent
// transition is reloaded and re-decided once before surfacing.
type Service struct {
	Repo repository.ArticleRepository

	// Now supplies the clock for publication timestamps. Defaults to
	// time.Now when nil.
	Now func() time.Time
}

// PaginatedResult represents the result of a paginated query.
type PaginatedResult struct {
	Data       []*entity.Article
	Pagination pagination.Metadata
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create creates a new draft owned by the acting user.
// Only authors and admins may create articles. The slug is derived from
// the title, with a random suffix on collision. Full content validation
// happens at submission; creation only requires a title to slug from.
func (s *Service) Create(ctx context.Context, actor entity.Actor, in CreateInput) (*entity.Article, error) {
	if !access.CanPerform(actor, access.ActionCreateArticle, nil) {
		metrics.RecordAuthzDenial(string(access.ActionCreateArticle))
		return nil, access.Denied(access.ActionCreateArticle)
	}
	if in.Title == "" {
		return nil, &entity.ValidationError{Field: "title", Message: "is required"}
	}

	slug := entity.Slugify(in.Title)
	taken, err := s.Repo.ExistsBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if taken {
		slug = entity.UniqueSlug(slug)
	}

	art := &entity.Article{
		Slug:      slug,
		AuthorID:  actor.ID,
		Status:    entity.StatusDraft,
		Title:     in.Title,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Category:  in.Category,
		Tags:      in.Tags,
		CreatedAt: s.now(),
	}
	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Edit updates the content fields of an article. Authors may edit their
// own drafts and rejected articles; admins may additionally edit pending
// ones. The status does not change and a rejection reason is retained
// until the next submission. No edit path exists from published.
func (s *Service) Edit(ctx context.Context, actor entity.Actor, in EditInput) (*entity.Article, error) {
	if in.ID <= 0 {
		return nil, ErrInvalidArticleID
	}

	var out *entity.Article
	err := retry.WithBackoff(ctx, retry.ConflictConfig(), func() error {
		art, err := s.load(ctx, in.ID)
		if err != nil {
			return err
		}
		if err := s.authorizeTransition(actor, art, workflow.EventEdit, access.ActionEditArticle); err != nil {
			return err
		}
		d, err := workflow.Decide(art, workflow.EventEdit, s.now(), workflow.Payload{})
		if err != nil {
			return err
		}

		updated := workflow.Apply(art, d)
		if in.Title != nil {
			if *in.Title == "" {
				return &entity.ValidationError{Field: "title", Message: "cannot be empty"}
			}
			updated.Title = *in.Title
		}
		if in.Excerpt != nil {
			updated.Excerpt = *in.Excerpt
		}
		if in.Content != nil {
			updated.Content = *in.Content
		}
		if in.Category != nil {
			updated.Category = *in.Category
		}
		if in.Tags != nil {
			updated.Tags = in.Tags
		}

		if err := s.save(ctx, updated, art.Status, workflow.EventEdit); err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Submit moves a draft or rejected article into the moderation queue.
// Content must pass the publication constraints; a stale rejection
// reason is cleared.
func (s *Service) Submit(ctx context.Context, actor entity.Actor, id int64) (*entity.Article, error) {
	return s.transition(ctx, actor, id, workflow.EventSubmit, workflow.Payload{}, access.ActionSubmitArticle)
}

// Approve publishes a pending article. Admin only. The published
// timestamp is set on first publication and never changes afterwards.
func (s *Service) Approve(ctx context.Context, actor entity.Actor, id int64) (*entity.Article, error) {
	return s.transition(ctx, actor, id, workflow.EventApprove, workflow.Payload{}, access.ActionApproveArticle)
}

// Reject returns a pending article to its author with a reason. Admin
// only. The reason must be substantial enough for the author to act on.
func (s *Service) Reject(ctx context.Context, actor entity.Actor, id int64, reason string) (*entity.Article, error) {
	return s.transition(ctx, actor, id, workflow.EventReject, workflow.Payload{Reason: reason}, access.ActionRejectArticle)
}

// Delete removes an article. Published and pending articles cannot be
// deleted by anyone; an admin must reject first. Comments cascade at the
// persistence layer.
func (s *Service) Delete(ctx context.Context, actor entity.Actor, id int64) error {
	if id <= 0 {
		return ErrInvalidArticleID
	}
	return retry.WithBackoff(ctx, retry.ConflictConfig(), func() error {
		art, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		if err := s.authorizeTransition(actor, art, workflow.EventDelete, access.ActionDeleteArticle); err != nil {
			return err
		}
		if _, err := workflow.Decide(art, workflow.EventDelete, s.now(), workflow.Payload{}); err != nil {
			return err
		}
		if err := s.Repo.Delete(ctx, art.ID, art.Status); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				metrics.RecordSaveConflict()
				metrics.RecordTransition(string(workflow.EventDelete), string(art.Status), metrics.OutcomeConflict)
				return err
			}
			return fmt.Errorf("delete article: %w", err)
		}
		metrics.RecordTransition(string(workflow.EventDelete), string(art.Status), metrics.OutcomeApplied)
		return nil
	})
}

// GetPublic retrieves a published article by slug for the public site and
// bumps its view counter. Non-published articles are reported as not
// found rather than as forbidden, so their existence does not leak.
func (s *Service) GetPublic(ctx context.Context, slug string) (*entity.Article, error) {
	art, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("get article by slug: %w", err)
	}
	if art == nil || art.Status != entity.StatusPublished {
		return nil, ErrArticleNotFound
	}
	if err := s.Repo.IncrementViews(ctx, art.ID); err != nil {
		return nil, fmt.Errorf("increment views: %w", err)
	}
	art.Views++
	metrics.RecordArticleView()
	return art, nil
}

// GetForActor retrieves any article by ID for its owner or an admin.
func (s *Service) GetForActor(ctx context.Context, actor entity.Actor, id int64) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}
	art, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !access.OwnerOrRole(actor, art, entity.RoleAdmin) {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// ListPublished retrieves published articles for the public site with
// pagination and optional category/tag filters.
func (s *Service) ListPublished(ctx context.Context, params pagination.Params, filters repository.ArticleFilters) (*PaginatedResult, error) {
	offset := pagination.CalculateOffset(params.Page, params.Limit)

	total, err := s.Repo.CountPublished(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("count published articles: %w", err)
	}

	articles, err := s.Repo.ListPublished(ctx, filters, offset, params.Limit)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}

	return &PaginatedResult{
		Data: articles,
		Pagination: pagination.Metadata{
			Total:      total,
			Page:       params.Page,
			Limit:      params.Limit,
			TotalPages: pagination.CalculateTotalPages(total, params.Limit),
		},
	}, nil
}

// ListForActor retrieves articles for a dashboard view: admins see all
// articles, everyone else sees only their own.
func (s *Service) ListForActor(ctx context.Context, actor entity.Actor) ([]*entity.Article, error) {
	var (
		articles []*entity.Article
		err      error
	)
	if access.ArticleScope(actor) == access.ScopeAll {
		articles, err = s.Repo.ListAll(ctx)
	} else {
		articles, err = s.Repo.ListByAuthor(ctx, actor.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Queue retrieves the moderation queue, oldest submission first. Admin only.
func (s *Service) Queue(ctx context.Context, actor entity.Actor) ([]*entity.Article, error) {
	if !access.CanPerform(actor, access.ActionViewQueue, nil) {
		metrics.RecordAuthzDenial(string(access.ActionViewQueue))
		return nil, access.Denied(access.ActionViewQueue)
	}
	articles, err := s.Repo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending articles: %w", err)
	}
	return articles, nil
}

// transition runs the shared flow for status-changing events: load,
// check structural legality, authorize, decide, apply, save with the
// expected prior status. A conflicting write is retried once end to end.
func (s *Service) transition(ctx context.Context, actor entity.Actor, id int64, event workflow.Event, p workflow.Payload, action access.Action) (*entity.Article, error) {
	if id <= 0 {
		return nil, ErrInvalidArticleID
	}

	var out *entity.Article
	err := retry.WithBackoff(ctx, retry.ConflictConfig(), func() error {
		art, err := s.load(ctx, id)
		if err != nil {
			return err
		}
		if err := s.authorizeTransition(actor, art, event, action); err != nil {
			return err
		}
		d, err := workflow.Decide(art, event, s.now(), p)
		if err != nil {
			var verr *entity.ValidationError
			if errors.As(err, &verr) {
				metrics.RecordTransition(string(event), string(art.Status), metrics.OutcomeInvalid)
			}
			return err
		}

		updated := workflow.Apply(art, d)
		if err := s.save(ctx, updated, art.Status, event); err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// authorizeTransition reports an illegal transition before a permission
// failure: an event no role could perform from the current status is the
// same error for everyone.
func (s *Service) authorizeTransition(actor entity.Actor, art *entity.Article, event workflow.Event, action access.Action) error {
	if !workflow.Allowed(art.Status, event) {
		metrics.RecordTransition(string(event), string(art.Status), metrics.OutcomeIllegal)
		return &workflow.IllegalTransitionError{Status: art.Status, Event: event}
	}
	if !access.CanPerform(actor, action, art) {
		metrics.RecordAuthzDenial(string(action))
		return access.Denied(action)
	}
	return nil
}

func (s *Service) save(ctx context.Context, updated *entity.Article, expected entity.ArticleStatus, event workflow.Event) error {
	if err := s.Repo.Update(ctx, updated, expected); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			metrics.RecordSaveConflict()
			metrics.RecordTransition(string(event), string(expected), metrics.OutcomeConflict)
			return err
		}
		return fmt.Errorf("save article: %w", err)
	}
	metrics.RecordTransition(string(event), string(expected), metrics.OutcomeApplied)
	return nil
}

func (s *Service) load(ctx context.Context, id int64) (*entity.Article, error) {
	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}
