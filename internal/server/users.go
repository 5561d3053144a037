package server

import (
	"database/sql"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	serverdb "github.com/notisum/notisum/internal/server/db"
	"github.com/notisum/notisum/pkg/middleware"
)

// credentialsRequest はユーザー登録・ログインリクエストのJSON構造。
type credentialsRequest struct {
	// Email はユーザーのメールアドレス。
	Email string `json:"email" binding:"required"`
	// Password はユーザーのパスワード（平文）。
	Password string `json:"password" binding:"required"`
}

// handleRegister は新規ユーザーを登録するハンドラを返す。
// パスワードはbcryptでハッシュ化して保存し、JWTトークンを発行する。
func (s *Server) handleRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "メールアドレスとパスワードが必要です"})
			return
		}

		_, err := s.queries.GetUserByEmail(c.Request.Context(), req.Email)
		if err == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ユーザーは既に存在します"})
			return
		}
		if !errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザー取得に失敗しました"})
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		user, token, err := s.createUser(c, req.Email, req.Password)
		if err != nil {
			return // レスポンスはcreateUser内で送信済み
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":  "success",
			"message": "ユーザーを登録しました",
			"user_id": user.ID,
			"token":   token,
		})
	}
}

// handleLogin はログインを処理するハンドラを返す。
// 未登録のメールアドレスの場合はユーザーを自動作成してログインさせる。
func (s *Server) handleLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req credentialsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "メールアドレスとパスワードが必要です"})
			return
		}

		user, err := s.queries.GetUserByEmail(c.Request.Context(), req.Email)
		if errors.Is(err, sql.ErrNoRows) {
			// ユーザーが存在しなければ作成してログインさせる
			created, token, err := s.createUser(c, req.Email, req.Password)
			if err != nil {
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"status":  "success",
				"message": "ユーザーを作成してログインしました",
				"user_id": created.ID,
				"email":   created.Email,
				"token":   token,
			})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザー取得に失敗しました"})
			log.Printf("ユーザー取得エラー: %v", err)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "メールアドレスまたはパスワードが正しくありません"})
			return
		}

		token, err := middleware.GenerateJWT(s.jwtSecret, user.ID, user.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "トークン生成に失敗しました"})
			log.Printf("JWT生成エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "success",
			"message": "ログインしました",
			"user_id": user.ID,
			"email":   user.Email,
			"token":   token,
		})
	}
}

// createUser はユーザーを作成してJWTトークンを発行する共通処理。
// 失敗時はエラーレスポンスを送信した上でエラーを返す。
func (s *Server) createUser(c *gin.Context, email, password string) (serverdb.User, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "パスワードのハッシュ化に失敗しました"})
		log.Printf("パスワードハッシュ化エラー: %v", err)
		return serverdb.User{}, "", err
	}

	user := serverdb.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.queries.CreateUser(c.Request.Context(), serverdb.CreateUserParams{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
	}); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ユーザー作成に失敗しました"})
		log.Printf("ユーザー作成エラー: %v", err)
		return serverdb.User{}, "", err
	}

	token, err := middleware.GenerateJWT(s.jwtSecret, user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "トークン生成に失敗しました"})
		log.Printf("JWT生成エラー: %v", err)
		return serverdb.User{}, "", err
	}
	return user, token, nil
}

// handleListUsers は登録済みユーザーの一覧を返すハンドラを返す。
func (s *Server) handleListUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := s.queries.ListUsers(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "ユーザー一覧の取得に失敗しました"})
			log.Printf("ユーザー一覧取得エラー: %v", err)
			return
		}

		list := make([]gin.H, 0, len(users))
		for _, u := range users {
			list = append(list, gin.H{"id": u.ID, "email": u.Email})
		}

		c.JSON(http.StatusOK, gin.H{
			"users": list,
			"count": len(list),
		})
	}
}

// handleGetCurrentUser は認証済みユーザーの情報を返すハンドラを返す。
func (s *Server) handleGetCurrentUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		user, err := s.queries.GetUserByID(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "ユーザーが見つかりません"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"id":    user.ID,
			"email": user.Email,
		})
	}
}
