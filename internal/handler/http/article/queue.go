package article

import (
	"errors"
	"net/http"

	"news-portal/internal/handler/http/auth"
	"news-portal/internal/handler/http/respond"
	artUC "news-portal/internal/usecase/article"
)

type QueueHandler struct{ Svc *artUC.Service }

// ServeHTTP lists the moderation queue, oldest submission first. Admin only.
// @Summary      Moderation queue
// @Description  Returns pending articles awaiting review, oldest first.
// @Tags         moderation
// @Security     BearerAuth
// @Produce      json
// @Success      200 {array} DTO "Pending articles"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      500 {string} string "Server error"
// @Router       /moderation/queue [get]
func (h QueueHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	articles, err := h.Svc.Queue(r.Context(), actor)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(articles))
}
