// Package comment provides HTTP handlers for comment endpoints: the
// public thread under a published article and the authenticated
// create/edit/delete operations.
package comment

import (
	"errors"
	"net/http"
	"time"

	"news-portal/internal/domain/access"
	"news-portal/internal/domain/entity"
	comUC "news-portal/internal/usecase/comment"
)

// DTO represents the JSON structure for comment data transfer.
type DTO struct {
	ID        int64     `json:"id" example:"1"`
	ArticleID int64     `json:"article_id" example:"3"`
	AuthorID  int64     `json:"author_id" example:"7"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at" example:"2026-08-02T10:00:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2026-08-02T10:05:00Z"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		ID:        c.ID,
		ArticleID: c.ArticleID,
		AuthorID:  c.AuthorID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toDTOs(comments []*entity.Comment) []DTO {
	dtos := make([]DTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, toDTO(c))
	}
	return dtos
}

func statusFor(err error) int {
	var (
		verr *entity.ValidationError
		aerr *access.AuthorizationError
	)
	switch {
	case errors.Is(err, comUC.ErrInvalidCommentID):
		return http.StatusBadRequest
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &aerr):
		return http.StatusForbidden
	case errors.Is(err, comUC.ErrCommentNotFound), errors.Is(err, comUC.ErrArticleNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
