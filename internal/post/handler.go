package post

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"postgate/internal/common"
	"postgate/internal/logger"
	"postgate/internal/visibility"
)

type Handler struct {
	svc    Usecase
	logger *slog.Logger
}

func NewHandler(log *slog.Logger, svc Usecase) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{svc: svc, logger: log.With(slog.String("handler", "post"))}
}

// RegisterRoutes mounts the read endpoints. The viewer is taken from the
// request context, so OptionalViewer must wrap r.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	r.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/visibility/options", h.VisibilityOptions).Methods(http.MethodGet)
}

type listResponse struct {
	Success bool     `json:"success"`
	Data    listData `json:"data"`
}

type listData struct {
	Posts      interface{} `json:"posts"`
	Pagination pagination  `json:"pagination"`
}

type pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

type dataResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// log is the request-scoped logger when RequestLogger set one.
func (h *Handler) log(r *http.Request) *slog.Logger {
	return logger.FromContextOr(r.Context(), h.logger)
}

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	viewerID := common.ViewerFromContext(r.Context())
	page, limit := normalizePage(queryInt(r, "page", 1), queryInt(r, "limit", DefaultPageSize))

	posts, err := h.svc.ListPosts(r.Context(), viewerID, page, limit)
	if err != nil {
		h.log(r).Error("list posts failed", slog.Uint64("viewer_id", viewerID), slog.Any("error", err))
		common.WriteError(w, http.StatusInternalServerError, "failed to load posts")
		return
	}

	common.WriteJSON(w, http.StatusOK, listResponse{
		Success: true,
		Data:    listData{Posts: posts, Pagination: pagination{Page: page, Limit: limit}},
	})
}

// GetPost answers every denial with the same 404 so a hidden post cannot be
// told apart from a missing one.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.ParseUint(mux.Vars(r)["id"], 10, 64)
	if err != nil || postID == 0 {
		common.WriteError(w, http.StatusNotFound, "post not found")
		return
	}
	viewerID := common.ViewerFromContext(r.Context())

	view, decision, err := h.svc.GetPost(r.Context(), viewerID, postID)
	if err != nil || decision.Reason == visibility.ReasonError {
		h.log(r).Error("get post failed", slog.Uint64("post_id", postID), slog.Any("error", err))
		common.WriteError(w, http.StatusInternalServerError, "failed to load post")
		return
	}
	if !decision.HasAccess || view == nil {
		h.log(r).Debug("post hidden", slog.Uint64("post_id", postID), slog.String("reason", string(decision.Reason)))
		common.WriteError(w, http.StatusNotFound, "post not found")
		return
	}

	common.WriteJSON(w, http.StatusOK, dataResponse{Success: true, Data: view})
}

func (h *Handler) VisibilityOptions(w http.ResponseWriter, r *http.Request) {
	common.WriteJSON(w, http.StatusOK, dataResponse{Success: true, Data: visibility.Options})
}
