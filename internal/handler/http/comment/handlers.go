package comment

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-portal/internal/domain/access"
	"news-portal/internal/handler/http/auth"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	comUC "news-portal/internal/usecase/comment"
)

type ListHandler struct{ Svc *comUC.Service }

// ServeHTTP serves the public comment thread of an article, oldest first.
// @Summary      List article comments
// @Tags         comments
// @Produce      json
// @Param        id path int true "Article ID"
// @Success      200 {array} DTO "Comments, oldest first"
// @Failure      400 {string} string "Bad request - invalid article ID"
// @Failure      500 {string} string "Server error"
// @Router       /articles/{id}/comments [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	articleID, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	comments, err := h.Svc.ListByArticle(r.Context(), articleID)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(comments))
}

type CreateHandler struct{ Svc *comUC.Service }

// ServeHTTP attaches a comment to a published article.
// @Summary      Create comment
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Article ID"
// @Param        comment body object true "Comment content"
// @Success      201 {object} DTO "Created comment"
// @Failure      400 {string} string "Bad request - content missing or too long"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      404 {string} string "Not found - no published article under this ID"
// @Router       /articles/{id}/comments [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	articleID, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	var req struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Create(r.Context(), actor, articleID, req.Content)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(c))
}

type EditHandler struct{ Svc *comUC.Service }

// ServeHTTP updates a comment's content. Author only.
// @Summary      Edit comment
// @Tags         comments
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Comment ID"
// @Param        comment body object true "New content"
// @Success      200 {object} DTO "Updated comment"
// @Failure      400 {string} string "Bad request - content missing or too long"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - not the comment's author"
// @Failure      404 {string} string "Not found - comment not found"
// @Router       /comments/{id} [put]
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
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Edit(r.Context(), actor, id, req.Content)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(c))
}

type DeleteHandler struct{ Svc *comUC.Service }

// ServeHTTP deletes a comment. The author may delete their own; admins
// may delete any comment.
// @Summary      Delete comment
// @Tags         comments
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - not the author or an admin"
// @Failure      404 {string} string "Not found - comment not found"
// @Router       /comments/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Svc.Delete(r.Context(), actor, id); err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type MineHandler struct{ Svc *comUC.Service }

// ServeHTTP lists comments for a dashboard view. Admins may request
// every comment with ?scope=all; everyone else always gets their own.
// @Summary      List own comments
// @Tags         comments
// @Security     BearerAuth
// @Produce      json
// @Param        scope query string false "all (admin only) or own" default(own)
// @Success      200 {array} DTO "Comment list"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      500 {string} string "Server error"
// @Router       /my/comments [get]
func (h MineHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	requested := access.ScopeOwn
	if r.URL.Query().Get("scope") == "all" {
		requested = access.ScopeAll
	}

	comments, err := h.Svc.ListForActor(r.Context(), actor, requested)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTOs(comments))
}

// Register registers all comment-related HTTP handlers with the given mux.
// The thread listing is public; everything else requires authentication.
func Register(mux *http.ServeMux, svc *comUC.Service, authn *auth.Middleware) {
	mux.Handle("GET /articles/{id}/comments", ListHandler{svc})
	mux.Handle("POST /articles/{id}/comments", authn.Require(CreateHandler{svc}))
	mux.Handle("PUT /comments/{id}", authn.Require(EditHandler{svc}))
	mux.Handle("DELETE /comments/{id}", authn.Require(DeleteHandler{svc}))
	mux.Handle("GET /my/comments", authn.Require(MineHandler{svc}))
}
