package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
)

type contextKey string

const sessionKey contextKey = "session"

// SessionFromContext は context からセッションを取得する
func SessionFromContext(ctx context.Context) (*Session, bool) {
	v, ok := ctx.Value(sessionKey).(*Session)
	return v, ok && v != nil
}

// WithSession は context にセッションをセットする
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// RequireAuth は認証必須ミドルウェア。セッションを検証し context にセットする
func RequireAuth(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			s, err := VerifySessionToken(cookie.Value, sessionSecret)
			if err != nil {
				code := "invalid_session"
				if errors.Is(err, ErrSessionExpired) {
					code = "session_expired"
				}
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
				return
			}

			ctx := WithSession(r.Context(), s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DevEmail は開発用のダミー管理者（AUTH_REQUIRED=false 時に使用）
const DevEmail = "dev@localhost"

// DevAuth は開発用ミドルウェア。ダミーセッションを context にセットする
func DevAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s := NewSession("dev", DevEmail)
		ctx := WithSession(r.Context(), &s)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
