package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-portal/internal/handler/http/auth"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	artUC "news-portal/internal/usecase/article"
)

type EditHandler struct{ Svc *artUC.Service }

// ServeHTTP updates the content fields of an article. Absent fields are
// left untouched. The status never changes through this endpoint.
// @Summary      Edit article
// @Description  Updates article content. Authors may edit their own drafts and rejected articles; admins may additionally edit pending ones. Published articles cannot be edited.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Article ID"
// @Param        article body object true "Fields to update"
// @Success      200 {object} DTO "Updated article"
// @Failure      400 {string} string "Bad request - invalid input"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - not the owner"
// @Failure      404 {string} string "Not found - article not found"
// @Failure      409 {string} string "Conflict - article is published or was modified concurrently"
// @Router       /articles/{id} [put]
func (h EditHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Title    *string  `json:"title"`
		Excerpt  *string  `json:"excerpt"`
		Content  *string  `json:"content"`
		Category *string  `json:"category"`
		Tags     []string `json:"tags"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Edit(r.Context(), actor, artUC.EditInput{
		ID:       id,
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
	respond.JSON(w, http.StatusOK, toDTO(art))
}
