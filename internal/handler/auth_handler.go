package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/shutterfolio/backend/internal/service"
	"github.com/shutterfolio/backend/pkg/auth"
)

// AuthConfig は AuthHandler の設定
type AuthConfig struct {
	SessionSecret []byte
	// SecureCookie は本番環境（HTTPS）でのみ true にする
	SecureCookie bool
}

// AuthHandler はメールアドレス＋パスワードによる管理者サインインを扱う
type AuthHandler struct {
	authService service.AuthService
	cfg         AuthConfig
}

// NewAuthHandler は AuthHandler を生成する
func NewAuthHandler(authService service.AuthService, cfg AuthConfig) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// sessionResponse は GET /api/auth/session と POST /api/auth/login のレスポンス
type sessionResponse struct {
	Authenticated bool      `json:"authenticated"`
	Email         string    `json:"email,omitempty"`
	ExpiresAt     time.Time `json:"expires_at,omitzero"`
}

// Login は POST /api/auth/login を処理する。
// 失敗理由（アカウント無し／パスワード違い）は区別せず invalid_credentials を返す
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	admin, err := h.authService.SignIn(r.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		writeError(w, http.StatusUnauthorized, "invalid_credentials")
		return
	}
	if err != nil {
		slog.Error("sign in failed", "error", err)
		writeError(w, http.StatusBadGateway, "auth_provider_unavailable")
		return
	}

	session := auth.NewSession(admin.ID, admin.Email)
	token, err := auth.CreateSessionToken(session, h.cfg.SessionSecret)
	if err != nil {
		slog.Error("create session token failed", "error", err)
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(auth.SessionDuration / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.SecureCookie,
	})
	slog.Info("admin signed in", "admin_id", admin.ID)

	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Email: session.Email, ExpiresAt: session.ExpiresAt})
}

// Logout は POST /api/auth/logout を処理する（セッションクッキーを削除）
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.cfg.SecureCookie,
		Expires:  time.Unix(0, 0),
	})
	writeJSON(w, http.StatusOK, map[string]string{"ok": "true"})
}

// Session は GET /api/auth/session を処理する。未ログインでも 200 を返す
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(auth.SessionCookieName())
	if err != nil {
		writeJSON(w, http.StatusOK, sessionResponse{})
		return
	}
	s, err := auth.VerifySessionToken(cookie.Value, h.cfg.SessionSecret)
	if err != nil {
		writeJSON(w, http.StatusOK, sessionResponse{})
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Authenticated: true, Email: s.Email, ExpiresAt: s.ExpiresAt})
}
