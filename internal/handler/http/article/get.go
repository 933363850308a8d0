package article

import (
	"net/http"

	"news-portal/internal/handler/http/respond"
	artUC "news-portal/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP serves the public detail page for a published article and
// bumps its view counter.
// @Summary      Get published article
// @Description  Returns a published article by slug. Drafts, pending and rejected articles are reported as not found.
// @Tags         articles
// @Produce      json
// @Param        slug path string true "Article slug"
// @Success      200 {object} DTO "Article detail"
// @Failure      404 {string} string "Not found - no published article under this slug"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{slug} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		respond.SafeError(w, http.StatusNotFound, artUC.ErrArticleNotFound)
		return
	}

	art, err := h.Svc.GetPublic(r.Context(), slug)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(art))
}
