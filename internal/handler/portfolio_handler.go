package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shutterfolio/backend/internal/gallery"
	"github.com/shutterfolio/backend/internal/model"
	"github.com/shutterfolio/backend/internal/service"
)

// PortfolioHandler はギャラリー項目の公開 API と管理 API を扱う
type PortfolioHandler struct {
	portfolioService service.PortfolioService
}

// NewPortfolioHandler は PortfolioHandler を生成する
func NewPortfolioHandler(portfolioService service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

type portfolioListResponse struct {
	Items []*model.PortfolioItem `json:"items"`
}

// List は GET /api/portfolio を処理する。category と q はギャラリー画面と同じ条件で絞り込む
func (h *PortfolioHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolioService.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "list_failed")
		return
	}
	q := r.URL.Query()
	if cat, query := q.Get("category"), q.Get("q"); cat != "" || query != "" {
		items = gallery.Filter(items, model.Category(cat), query)
	}
	writeItems(w, items)
}

// Featured は GET /api/portfolio/featured を処理する（最大 6 件）
func (h *PortfolioHandler) Featured(w http.ResponseWriter, r *http.Request) {
	items, err := h.portfolioService.Featured(r.Context())
	if err != nil {
		writeServiceError(w, err, "list_failed")
		return
	}
	writeItems(w, items)
}

func writeItems(w http.ResponseWriter, items []*model.PortfolioItem) {
	if items == nil {
		items = []*model.PortfolioItem{}
	}
	writeJSON(w, http.StatusOK, portfolioListResponse{Items: items})
}

type createPortfolioRequest struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	Image       string `json:"image"`
	Link        string `json:"link"`
	Description string `json:"description"`
}

// Create は POST /api/admin/portfolio を処理する
func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPortfolioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	item := &model.PortfolioItem{
		Title:       req.Title,
		Category:    model.Category(req.Category),
		Image:       req.Image,
		Link:        req.Link,
		Description: req.Description,
	}
	if err := h.portfolioService.Create(r.Context(), item); err != nil {
		writeServiceError(w, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// Delete は DELETE /api/admin/portfolio/{id} を処理する
func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}
	if err := h.portfolioService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "delete_failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
