package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"
)

// ScopeCreateUsers はユーザー作成エンドポイントが要求するスコープ。
const ScopeCreateUsers = "create:users"

// AuthConfig はBearerトークン認証の設定を保持する。
// Tokenが空の場合、認証は無効でありすべてのリクエストを通過させる。
type AuthConfig struct {
	Token  string
	Scopes []string
}

// Enabled は認証が有効かどうかを返す。
func (c AuthConfig) Enabled() bool {
	return c.Token != ""
}

// HasScope はトークンに指定スコープが付与されているかを返す。
func (c AuthConfig) HasScope(scope string) bool {
	for _, s := range c.Scopes {
		if s == scope {
			return true
		}
	}
	return false
}

// NewAuthMiddleware はBearerトークン認証ミドルウェアを返す。
// トークンが欠落・不一致の場合は401、トークンは有効だが
// create:users スコープを欠く場合は403の固定レスポンスを返す。
func NewAuthMiddleware(cfg AuthConfig) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !cfg.Enabled() {
				next.ServeHTTP(w, r)
				return
			}

			token, ok := bearerToken(r)
			if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Token)) != 1 {
				WriteUnauthorizedResponse(w)
				return
			}

			if !cfg.HasScope(ScopeCreateUsers) {
				WriteForbiddenResponse(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken はAuthorizationヘッダーからBearerトークンを取り出す。
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return "", false
	}
	return token, true
}
