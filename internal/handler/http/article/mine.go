package article

import (
	"errors"
	"net/http"

	"news-portal/internal/handler/http/auth"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	artUC "news-portal/internal/usecase/article"
)

type MineHandler struct{ Svc *artUC.Service }

// ServeHTTP lists the dashboard view of articles: authors see their own
// articles in every status, admins see all articles.
// @Summary      List own articles
// @Description  Returns the acting user's articles in every status. Admins see all articles.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO "Article list"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "Server error"
// @Router       /my/articles [get]
func (h MineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	articles, err := h.Svc.ListForActor(r.Context(), actor)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}

type GetMineHandler struct{ Svc *artUC.Service }

// ServeHTTP returns a single article by ID for its owner or an admin,
// regardless of status. Articles owned by others are reported as not
// found rather than forbidden.
// @Summary      Get own article
// @Description  Returns one of the acting user's articles by ID, in any status.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {object} DTO "Article detail"
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - article missing or owned by someone else"
// @Router       /my/articles/{id} [get]
func (h GetMineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	art, err := h.Svc.GetForActor(r.Context(), actor, id)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(art))
}
