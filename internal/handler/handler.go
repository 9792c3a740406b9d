package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shutterfolio/backend/internal/repository"
)

// Handler carries the pieces shared by every route: the store for health
// checks and the single origin allowed by CORS.
type Handler struct {
	db          repository.DB
	backend     string
	frontendURL string
}

// New creates a Handler. backend is the store backend name reported by Health.
func New(db repository.DB, backend, frontendURL string) *Handler {
	return &Handler{db: db, backend: backend, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON は Content-Type を付けて v をエンコードする
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError は {"error": code} 形式のエラーレスポンスを返す
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
