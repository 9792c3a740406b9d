package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/shutterfolio/backend/internal/model"
	"github.com/shutterfolio/backend/internal/repository"
	"github.com/shutterfolio/backend/pkg/identity"
	"golang.org/x/crypto/bcrypt"
)

// FirebaseAuthService は外部 ID プロバイダでサインインする AuthService
type FirebaseAuthService struct {
	client identity.Client
}

// NewFirebaseAuthService は FirebaseAuthService を生成する（DI: identity.Client を注入）
func NewFirebaseAuthService(client identity.Client) AuthService {
	return &FirebaseAuthService{client: client}
}

// SignIn はプロバイダの認証結果を Admin に変換する
func (s *FirebaseAuthService) SignIn(ctx context.Context, email, password string) (*model.Admin, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	acct, err := s.client.SignInWithPassword(ctx, email, password)
	if errors.Is(err, identity.ErrInvalidCredentials) {
		slog.Info("sign in rejected", "provider", AuthProviderFirebase)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return &model.Admin{ID: acct.UID, Email: acct.Email}, nil
}

// LocalAuthService は AdminRepository と bcrypt でサインインする AuthService
type LocalAuthService struct {
	admins repository.AdminRepository
}

// NewLocalAuthService は LocalAuthService を生成する（DI: AdminRepository を注入）
func NewLocalAuthService(admins repository.AdminRepository) AuthService {
	return &LocalAuthService{admins: admins}
}

// SignIn はメールアドレスで管理者を引き、パスワードハッシュを照合する
func (s *LocalAuthService) SignIn(ctx context.Context, email, password string) (*model.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}
	admin, err := s.admins.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		slog.Info("sign in rejected", "provider", AuthProviderLocal, "reason", "unknown account")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		slog.Info("sign in rejected", "provider", AuthProviderLocal, "reason", "password mismatch")
		return nil, ErrInvalidCredentials
	}
	return admin, nil
}

// MinPasswordLen is enforced when accounts are created.
const MinPasswordLen = 8

// CreateAdmin hashes password with bcrypt and stores a new account.
func CreateAdmin(ctx context.Context, admins repository.AdminRepository, email, password string) (*model.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, missing("email")
	}
	if len(password) < MinPasswordLen {
		return nil, fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	admin := &model.Admin{Email: email, PasswordHash: string(hash), CreatedAt: time.Now().UTC()}
	if err := admins.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}
