package article

import (
	"log/slog"
	"net/http"

	"news-portal/internal/common/pagination"
	"news-portal/internal/handler/http/auth"
	artUC "news-portal/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// The published listing and detail pages are public; everything touching
// the workflow requires authentication via the auth middleware.
func Register(mux *http.ServeMux, svc *artUC.Service, authn *auth.Middleware, paginationCfg pagination.Config, logger *slog.Logger) {
	mux.Handle("GET /articles", ListHandler{
		Svc:           svc,
		PaginationCfg: paginationCfg,
		Logger:        logger,
	})
	mux.Handle("GET /articles/{slug}", GetHandler{svc})

	mux.Handle("POST /articles", authn.Require(CreateHandler{svc}))
	mux.Handle("PUT /articles/{id}", authn.Require(EditHandler{svc}))
	mux.Handle("DELETE /articles/{id}", authn.Require(DeleteHandler{svc}))

	mux.Handle("POST /articles/{id}/submit", authn.Require(SubmitHandler{svc}))
	mux.Handle("POST /articles/{id}/approve", authn.Require(ApproveHandler{svc}))
	mux.Handle("POST /articles/{id}/reject", authn.Require(RejectHandler{svc}))

	mux.Handle("GET /my/articles", authn.Require(MineHandler{svc}))
	mux.Handle("GET /my/articles/{id}", authn.Require(GetMineHandler{svc}))

	mux.Handle("GET /moderation/queue", authn.Require(QueueHandler{svc}))
}
