// Package article provides HTTP handlers for article endpoints.
// It includes the public read surface (published listings and detail
// pages) and the authenticated workflow surface (drafting, submission,
// moderation, deletion).
package article

import (
	"errors"
	"net/http"
	"time"

	"news-portal/internal/domain/access"
	"news-portal/internal/domain/entity"
	"news-portal/internal/domain/workflow"
	"news-portal/internal/repository"
	artUC "news-portal/internal/usecase/article"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID              int64      `json:"id" example:"1"`
	Slug            string     `json:"slug" example:"go-generics-in-practice"`
	AuthorID        int64      `json:"author_id" example:"7"`
	Status          string     `json:"status" example:"published"`
	Title           string     `json:"title" example:"Go Generics in Practice"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content,omitempty"`
	Category        string     `json:"category" example:"engineering"`
	Tags            []string   `json:"tags"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	Views           int64      `json:"views" example:"1042"`
	CommentsCount   int64      `json:"comments_count" example:"12"`
	CreatedAt       time.Time  `json:"created_at" example:"2026-08-01T12:00:00Z"`
	PublishedAt     *time.Time `json:"published_at,omitempty" example:"2026-08-02T09:30:00Z"`
}

func toDTO(a *entity.Article) DTO {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:              a.ID,
		Slug:            a.Slug,
		AuthorID:        a.AuthorID,
		Status:          string(a.Status),
		Title:           a.Title,
		Excerpt:         a.Excerpt,
		Content:         a.Content,
		Category:        a.Category,
		Tags:            tags,
		RejectionReason: a.RejectionReason,
		Views:           a.Views,
		CommentsCount:   a.CommentsCount,
		CreatedAt:       a.CreatedAt,
		PublishedAt:     a.PublishedAt,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	dtos := make([]DTO, 0, len(articles))
	for _, a := range articles {
		dtos = append(dtos, toDTO(a))
	}
	return dtos
}

// statusFor maps workflow and access errors to HTTP status codes:
// validation failures are 400, permission failures 403, illegal
// transitions and write conflicts 409, missing articles 404.
func statusFor(err error) int {
	var (
		verr *entity.ValidationError
		aerr *access.AuthorizationError
		terr *workflow.IllegalTransitionError
	)
	switch {
	case errors.Is(err, artUC.ErrInvalidArticleID):
		return http.StatusBadRequest
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &aerr):
		return http.StatusForbidden
	case errors.As(err, &terr):
		return http.StatusConflict
	case errors.Is(err, repository.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, artUC.ErrArticleNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
