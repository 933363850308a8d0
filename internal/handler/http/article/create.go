package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-portal/internal/handler/http/auth"
	"news-portal/internal/handler/http/respond"
	artUC "news-portal/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates a new draft owned by the authenticated user.
// @Summary      Create draft
// @Description  Creates a new article draft. Authors and admins only.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body object true "Article fields"
// @Success      201 {object} DTO "Created draft"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - author or admin role required"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req struct {
		Title    string   `json:"title"`
		Excerpt  string   `json:"excerpt"`
		Content  string   `json:"content"`
		Category string   `json:"category"`
		Tags     []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Create(r.Context(), actor, artUC.CreateInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Content:  req.Content,
		Category: req.Category,
		Tags:     req.Tags,
	})
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(art))
}
