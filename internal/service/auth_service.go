package service

import (
	"context"

	"github.com/shutterfolio/backend/internal/model"
)

// Auth provider names accepted by AUTH_PROVIDER.
const (
	AuthProviderFirebase = "firebase"
	AuthProviderLocal    = "local"
)

// AuthService は管理者サインインのインターフェース。
// アカウントが無い場合もパスワード違いも ErrInvalidCredentials を返す
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*model.Admin, error)
}
