// Package identity is a small client for the Firebase Identity Toolkit REST API.
// Uses raw HTTP calls (no SDK); only email/password sign-in is needed.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultBaseURL は Identity Toolkit の v1 エンドポイント
const DefaultBaseURL = "https://identitytoolkit.googleapis.com/v1"

var (
	// ErrNotConfigured は API キーが未設定の場合のエラー
	ErrNotConfigured = errors.New("identity: not configured")
	// ErrInvalidCredentials はメールアドレスかパスワードが一致しない場合のエラー
	ErrInvalidCredentials = errors.New("identity: invalid credentials")
)

// Account はサインイン結果
type Account struct {
	UID       string
	Email     string
	IDToken   string
	ExpiresAt time.Time
}

// Client は認証プロバイダのインターフェース
type Client interface {
	// SignInWithPassword はメールアドレスとパスワードでサインインする
	SignInWithPassword(ctx context.Context, email, password string) (*Account, error)
}

// RealClient は Identity Toolkit への raw HTTP クライアント実装
type RealClient struct {
	APIKey     string
	BaseURL    string
	httpClient *http.Client
}

var _ Client = (*RealClient)(nil)

// NewClient は RealClient を生成する
func NewClient(apiKey string) *RealClient {
	return &RealClient{
		APIKey:     apiKey,
		BaseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// Provider error messages that mean the caller supplied bad credentials.
var credentialErrors = map[string]bool{
	"EMAIL_NOT_FOUND":           true,
	"INVALID_PASSWORD":          true,
	"INVALID_LOGIN_CREDENTIALS": true,
	"INVALID_EMAIL":             true,
	"USER_DISABLED":             true,
	"MISSING_PASSWORD":          true,
}

// SignInWithPassword は accounts:signInWithPassword を呼び出す
func (c *RealClient) SignInWithPassword(ctx context.Context, email, password string) (*Account, error) {
	if c.APIKey == "" {
		return nil, ErrNotConfigured
	}

	jsonBody, err := json.Marshal(map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	})
	if err != nil {
		return nil, err
	}

	endpoint := strings.TrimRight(c.BaseURL, "/") + "/accounts:signInWithPassword?key=" + url.QueryEscape(c.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result struct {
		LocalID string `json:"localId"`
		Email   string `json:"email"`
		IDToken string `json:"idToken"`
		Error   *struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("identity sign in: decode: %w", err)
	}
	if result.Error != nil {
		// メッセージは "INVALID_PASSWORD : ..." の形式のことがある
		code := strings.TrimSpace(strings.SplitN(result.Error.Message, ":", 2)[0])
		if credentialErrors[code] {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("identity sign in: %s", result.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("identity sign in: status %d", resp.StatusCode)
	}

	acct := &Account{UID: result.LocalID, Email: result.Email, IDToken: result.IDToken}
	if err := fillFromIDToken(acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// fillFromIDToken は ID トークンのクレームから uid / email / 有効期限を補う。
// トークンは TLS 越しにプロバイダから直接受け取ったものなので署名検証はしない
func fillFromIDToken(acct *Account) error {
	if acct.IDToken == "" {
		return errors.New("identity sign in: empty id token")
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(acct.IDToken, claims); err != nil {
		return fmt.Errorf("identity sign in: parse id token: %w", err)
	}
	if acct.UID == "" {
		if sub, err := claims.GetSubject(); err == nil {
			acct.UID = sub
		}
	}
	if acct.Email == "" {
		acct.Email, _ = claims["email"].(string)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		acct.ExpiresAt = exp.Time
	}
	return nil
}
