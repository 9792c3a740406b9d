package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shutterfolio/backend/internal/model"
	"github.com/shutterfolio/backend/internal/service"
)

// ReviewHandler はお客様の声の API を扱う
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler は ReviewHandler を生成する
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

type reviewListResponse struct {
	Reviews []*model.Review `json:"reviews"`
}

// List は GET /api/reviews と GET /api/admin/reviews を処理する
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewService.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "list_failed")
		return
	}
	if reviews == nil {
		reviews = []*model.Review{}
	}
	writeJSON(w, http.StatusOK, reviewListResponse{Reviews: reviews})
}

type createReviewRequest struct {
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Date   string `json:"date"`
	Text   string `json:"text"`
}

// Create は POST /api/admin/reviews を処理する
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	review := &model.Review{Name: req.Name, Rating: req.Rating, Date: req.Date, Text: req.Text}
	if err := h.reviewService.Create(r.Context(), review); err != nil {
		writeServiceError(w, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// Delete は DELETE /api/admin/reviews/{id} を処理する
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id_required")
		return
	}
	if err := h.reviewService.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "delete_failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
