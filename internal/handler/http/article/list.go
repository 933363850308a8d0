package article

import (
	"log/slog"
	"net/http"
	"time"

	"news-portal/internal/common/pagination"
	"news-portal/internal/handler/http/respond"
	"news-portal/internal/observability/logging"
	"news-portal/internal/repository"
	artUC "news-portal/internal/usecase/article"
)

type ListHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
	Logger        *slog.Logger
}

// listFilters reads the optional category and tag filters off the query.
func listFilters(r *http.Request) repository.ArticleFilters {
	var filters repository.ArticleFilters
	if category := r.URL.Query().Get("category"); category != "" {
		filters.Category = &category
	}
	if tag := r.URL.Query().Get("tag"); tag != "" {
		filters.Tag = &tag
	}
	return filters
}

// ServeHTTP serves the public listing of published articles.
// @Summary      List published articles
// @Description  Returns published articles, newest first, with optional category and tag filters.
// @Tags         articles
// @Produce      json
// @Param        page     query int    false "Page number (1-based)" default(1) minimum(1)
// @Param        limit    query int    false "Items per page" default(20) minimum(1) maximum(100)
// @Param        category query string false "Filter by category slug"
// @Param        tag      query string false "Filter by tag"
// @Success      200 {object} pagination.Response[DTO] "Paginated article list"
// @Failure      400 {string} string "Invalid query parameters"
// @Failure      500 {string} string "Server error"
// @Router       /articles [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	logger := logging.WithRequestID(ctx, h.Logger)

	params, err := pagination.ParseQueryParams(r, h.PaginationCfg)
	if err != nil {
		logger.Warn("rejected listing parameters", slog.Any("error", err))
		pagination.RecordError("validation")
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.Svc.ListPublished(ctx, params, listFilters(r))
	if err != nil {
		logger.Error("article listing failed",
			slog.Any("error", err),
			slog.Int("page", params.Page),
			slog.Int("limit", params.Limit))
		pagination.RecordError("database")
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	dtos := toDTOs(result.Data)
	// Public listings carry no article bodies
	for i := range dtos {
		dtos[i].Content = ""
		dtos[i].RejectionReason = ""
	}

	duration := time.Since(start)
	pagination.RecordRequest(http.StatusOK, params.Page)
	pagination.RecordDuration("handler", duration.Seconds())
	pagination.UpdateTotalCount(result.Pagination.Total)

	logger.Info("articles listed",
		slog.Int("page", params.Page),
		slog.Int("limit", params.Limit),
		slog.Int("returned", len(dtos)),
		slog.Int64("total", result.Pagination.Total),
		slog.Duration("duration", duration))

	respond.JSON(w, http.StatusOK, pagination.NewResponse(dtos, result.Pagination))
}
