// Package category provides HTTP handlers for category endpoints.
// Listing is public for navigation; create, rename and delete are
// admin-only management operations.
package category

import (
	"encoding/json"
	"errors"
	"net/http"

	"news-portal/internal/domain/access"
	"news-portal/internal/domain/entity"
	"news-portal/internal/handler/http/auth"
	"news-portal/internal/handler/http/pathutil"
	"news-portal/internal/handler/http/respond"
	catUC "news-portal/internal/usecase/category"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID   int64  `json:"id" example:"1"`
	Slug string `json:"slug" example:"engineering"`
	Name string `json:"name" example:"Engineering"`
}

func toDTO(c *entity.Category) DTO {
	return DTO{ID: c.ID, Slug: c.Slug, Name: c.Name}
}

func statusFor(err error) int {
	var (
		verr *entity.ValidationError
		aerr *access.AuthorizationError
	)
	switch {
	case errors.Is(err, catUC.ErrInvalidCategoryID):
		return http.StatusBadRequest
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.As(err, &aerr):
		return http.StatusForbidden
	case errors.Is(err, catUC.ErrDuplicateCategory):
		return http.StatusConflict
	case errors.Is(err, catUC.ErrCategoryNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type ListHandler struct{ Svc *catUC.Service }

// ServeHTTP lists all categories for navigation and filtering.
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200 {array} DTO "Categories sorted by name"
// @Failure      500 {string} string "Server error"
// @Router       /categories [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	dtos := make([]DTO, 0, len(categories))
	for _, c := range categories {
		dtos = append(dtos, toDTO(c))
	}
	respond.JSON(w, http.StatusOK, dtos)
}

type CreateHandler struct{ Svc *catUC.Service }

// ServeHTTP creates a category. Admin only.
// @Summary      Create category
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        category body object true "Category name and optional slug"
// @Success      201 {object} DTO "Created category"
// @Failure      400 {string} string "Bad request - name missing"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      409 {string} string "Conflict - slug already exists"
// @Router       /categories [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	var req struct {
		Name string `json:"name"`
		Slug string `json:"slug"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Create(r.Context(), actor, req.Name, req.Slug)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusCreated, toDTO(c))
}

type UpdateHandler struct{ Svc *catUC.Service }

// ServeHTTP renames a category. Admin only. The slug never changes.
// @Summary      Rename category
// @Tags         categories
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path int true "Category ID"
// @Param        category body object true "New name"
// @Success      200 {object} DTO "Updated category"
// @Failure      400 {string} string "Bad request - name missing"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - category not found"
// @Router       /categories/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	c, err := h.Svc.Update(r.Context(), actor, id, req.Name)
	if err != nil {
		respond.SafeError(w, statusFor(err), err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(c))
}

type DeleteHandler struct{ Svc *catUC.Service }

// ServeHTTP deletes a category. Admin only.
// @Summary      Delete category
// @Tags         categories
// @Security     BearerAuth
// @Param        id path int true "Category ID"
// @Success      204 "No Content"
// @Failure      400 {string} string "Bad request - invalid ID"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      404 {string} string "Not found - category not found"
// @Router       /categories/{id} [delete]
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

// Register registers all category-related HTTP handlers with the given mux.
func Register(mux *http.ServeMux, svc *catUC.Service, authn *auth.Middleware) {
	mux.Handle("GET /categories", ListHandler{svc})
	mux.Handle("POST /categories", authn.Require(CreateHandler{svc}))
	mux.Handle("PUT /categories/{id}", authn.Require(UpdateHandler{svc}))
	mux.Handle("DELETE /categories/{id}", authn.Require(DeleteHandler{svc}))
}
