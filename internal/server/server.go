package server

import (
	"database/sql"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"

	serverdb "github.com/notisum/notisum/internal/server/db"
	"github.com/notisum/notisum/internal/summary"
	"github.com/notisum/notisum/pkg/middleware"
)

// Server は通知要約サービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はSQLクエリの実行オブジェクト。
	queries *serverdb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// jwtSecret はJWT署名用の秘密鍵。
	jwtSecret string
	// summarizer は通知の要約サービス。構築時に注入される。
	summarizer *summary.Service
}

// NewServer は新しいサーバーを生成する。
// SQLiteデータベースの初期化とスキーマ作成を行う。
// summarizerは要約サービス。nilの場合は切り詰めによる簡易要約のみ行う。
func NewServer(port string, summarizer *summary.Service) (*Server, error) {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "/data/notisum.db?_journal_mode=WAL&_busy_timeout=5000"
	}

	sqlDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-key"
	}

	frontendURL := getEnvOr("FRONTEND_URL", "http://localhost:3000")

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS([]string{frontendURL}))

	s := &Server{
		router:     router,
		port:       port,
		queries:    serverdb.New(sqlDB),
		db:         sqlDB,
		jwtSecret:  jwtSecret,
		summarizer: summarizer,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// 認証エンドポイント（認証不要）
	auth := s.router.Group("/auth")
	{
		auth.POST("/register", s.handleRegister())
		auth.POST("/login", s.handleLogin())
	}

	// 認証必須のAPIエンドポイント
	api := s.router.Group("/api/v1")
	api.Use(middleware.JWTAuth(s.jwtSecret))
	{
		// ユーザー情報
		api.GET("/me", s.handleGetCurrentUser())
		api.GET("/users", s.handleListUsers())

		notifications := api.Group("/notifications")
		{
			// 通知の受信と要約
			notifications.POST("", s.handleReceiveNotification())
			// 通知一覧取得（新しい順）
			notifications.GET("", s.handleListNotifications())
		}

		// 要約の日付検索（クエリパラメータ: date, start_date, end_date, limit）
		api.GET("/summaries", s.handleListSummaries())
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "notisum"})
	})
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
