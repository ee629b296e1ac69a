package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/userhub/internal/metrics"
	"github.com/hitoshi/userhub/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// ミドルウェア依存
	CORSAllowedOrigin string
	AuthConfig        middleware.AuthConfig
	RateLimiter       *middleware.RateLimiter

	// 監視
	HealthChecker   HealthChecker
	Metrics         *metrics.Collector
	MetricsGatherer prometheus.Gatherer

	// ユーザー
	UserService UserServiceInterface
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → SecurityHeaders → CORS → Logging → Metrics
//
// ヘルスチェックとメトリクスは認証・レート制限の外に配置する。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewLoggingMiddleware(slog.Default()))
	if deps.Metrics != nil {
		r.Use(middleware.NewMetricsMiddleware(deps.Metrics))
	}

	userHandler := NewUserHandler(deps.UserService)

	// --- 認証不要のルート ---

	if deps.HealthChecker != nil {
		healthHandler := NewHealthHandler(deps.HealthChecker)
		r.Get("/health", healthHandler.Check)
	}

	if deps.MetricsGatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// --- 認証とレート制限がかかるルート ---
	// ミドルウェアスタック: Auth → RateLimit
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.AuthConfig))
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.Middleware())
		}

		r.Post("/create-user", userHandler.CreateUser)
	})

	return r
}
