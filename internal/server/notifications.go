package server

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	serverdb "github.com/notisum/notisum/internal/server/db"
	"github.com/notisum/notisum/internal/summary"
	"github.com/notisum/notisum/pkg/middleware"
)

// defaultListLimit は一覧系エンドポイントのデフォルト取得件数。
const defaultListLimit = 50

// notificationRequest は通知受信リクエストのJSON構造。
// モバイル端末の通知リスナーが送信する。
type notificationRequest struct {
	// PackageName は通知元アプリのパッケージ名。
	PackageName string `json:"package_name" binding:"required"`
	// Title は通知のタイトル。
	Title string `json:"title"`
	// Content は通知の本文。
	Content string `json:"content"`
	// Timestamp は通知が端末で発生した日時（RFC3339形式）。
	Timestamp string `json:"timestamp"`
	// ID は端末側で採番された通知ID。
	ID string `json:"id"`
	// RawText は通知の生テキスト。
	RawText string `json:"raw_text"`
}

// summaryMetadata は要約結果のメタデータのJSON構造。
type summaryMetadata struct {
	// Strategy は結果を生成した要約戦略。
	Strategy summary.Strategy `json:"strategy"`
	// Confidence は要約の信頼度。
	Confidence summary.Confidence `json:"confidence"`
	// AppType は通知元アプリの分類。
	AppType summary.AppType `json:"app_type"`
	// Urgency は緊急度。sentiment戦略の場合のみ設定される。
	Urgency summary.Urgency `json:"urgency,omitempty"`
	// Sentiment は感情極性。sentiment戦略の場合のみ設定される。
	Sentiment summary.Sentiment `json:"sentiment,omitempty"`
	// Error はLLM呼び出しが失敗した場合のエラー内容。
	Error string `json:"error,omitempty"`
}

// handleReceiveNotification は通知を受信し、要約を付与して保存するハンドラを返す。
func (s *Server) handleReceiveNotification() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		var req notificationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "リクエストが不正です"})
			return
		}

		result := s.summarize(c.Request.Context(), summary.Input{
			AppID:   req.PackageName,
			Title:   req.Title,
			Content: req.Content,
			RawText: req.RawText,
		})

		notificationID := uuid.New().String()
		if err := s.queries.CreateNotification(c.Request.Context(), serverdb.CreateNotificationParams{
			ID:          notificationID,
			UserID:      userID,
			PackageName: req.PackageName,
			Title:       req.Title,
			Content:     req.Content,
			RawText:     req.RawText,
			ExternalID:  req.ID,
			Summary:     result.Summary,
			Timestamp:   parseTimestamp(req.Timestamp),
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "通知の保存に失敗しました"})
			log.Printf("通知保存エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"status":          "success",
			"message":         "通知を受信して保存しました",
			"notification_id": notificationID,
			"user_email":      middleware.GetEmail(c),
			"summary":         result.Summary,
			"summary_metadata": summaryMetadata{
				Strategy:   result.Strategy,
				Confidence: result.Confidence,
				AppType:    result.AppType,
				Urgency:    result.Urgency,
				Sentiment:  result.Sentiment,
				Error:      result.Err,
			},
			"received_at": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// summarize は要約サービスを呼び出す。サービスが注入されていない場合は
// 先頭100文字への切り詰めによる簡易要約を返す（strategy=fallback）。
func (s *Server) summarize(ctx context.Context, in summary.Input) summary.Result {
	if s.summarizer != nil {
		return s.summarizer.Summarize(ctx, in)
	}

	text := in.Content
	contentLen := utf8.RuneCountInString(text)
	if contentLen > 100 {
		text = string([]rune(text)[:100]) + "..."
	}
	if contentLen < 1 {
		contentLen = 1
	}
	return summary.Result{
		Summary:          text,
		Strategy:         summary.StrategyFallback,
		AppType:          summary.ClassifyAppType(in.AppID),
		Confidence:       summary.ConfidenceLow,
		OriginalLength:   utf8.RuneCountInString(in.Content),
		CompressionRatio: float64(utf8.RuneCountInString(text)) / float64(contentLen),
		ProcessedAt:      time.Now().UTC(),
	}
}

// parseTimestamp はRFC3339形式の日時文字列をパースする。
// パースできない場合は現在時刻を返す。
func parseTimestamp(value string) time.Time {
	ts, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Now().UTC()
	}
	return ts.UTC()
}

// notificationResponse は通知のJSONレスポンス構造。
type notificationResponse struct {
	// ID は保存レコードの一意識別子。
	ID string `json:"id"`
	// PackageName は通知元アプリのパッケージ名。
	PackageName string `json:"package_name"`
	// Title は通知のタイトル。
	Title string `json:"title"`
	// Content は通知の本文。
	Content string `json:"content"`
	// Summary は生成された要約。
	Summary string `json:"summary"`
	// Timestamp は通知が端末で発生した日時（RFC3339形式）。
	Timestamp string `json:"timestamp"`
	// CreatedAt はレコードの保存日時（RFC3339形式）。
	CreatedAt string `json:"created_at"`
}

// toNotificationResponses はDB行のスライスをJSONレスポンスのスライスに変換する。
func toNotificationResponses(notifications []serverdb.UserNotification) []notificationResponse {
	responses := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		responses = append(responses, notificationResponse{
			ID:          n.ID,
			PackageName: n.PackageName,
			Title:       n.Title,
			Content:     n.Content,
			Summary:     n.Summary,
			Timestamp:   n.Timestamp.Format(time.RFC3339),
			CreatedAt:   n.CreatedAt.Format(time.RFC3339),
		})
	}
	return responses
}

// handleListNotifications は認証済みユーザーの通知一覧を新しい順に返すハンドラを返す。
func (s *Server) handleListNotifications() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		limit := parseLimit(c.Query("limit"))
		notifications, err := s.queries.ListNotificationsByUser(c.Request.Context(), serverdb.ListNotificationsByUserParams{
			UserID: userID,
			Limit:  limit,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "通知一覧の取得に失敗しました"})
			log.Printf("通知一覧取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id":             userID,
			"total_notifications": len(notifications),
			"notifications":       toNotificationResponses(notifications),
		})
	}
}

// summaryItem は要約検索結果のJSONレスポンス構造。
type summaryItem struct {
	// ID は保存レコードの一意識別子。
	ID string `json:"id"`
	// PackageName は通知元アプリのパッケージ名。
	PackageName string `json:"package_name"`
	// Title は通知のタイトル。
	Title string `json:"title"`
	// Summary は生成された要約。
	Summary string `json:"summary"`
	// Date は通知発生日（YYYY-MM-DD形式）。
	Date string `json:"date"`
	// Time は通知発生時刻（HH:MM:SS形式）。
	Time string `json:"time"`
	// Timestamp は通知発生日時（RFC3339形式）。
	Timestamp string `json:"timestamp"`
}

// handleListSummaries は日付フィルタ付きで要約一覧を返すハンドラを返す。
//
// クエリパラメータ:
//   - date: 特定の1日分（YYYY-MM-DD形式）
//   - start_date / end_date: 期間指定（end_dateの日全体を含む）
//   - start_dateのみ: その1日分
//   - limit: 最大取得件数（デフォルト50）
func (s *Server) handleListSummaries() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.GetUserID(c)
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "ユーザーIDが取得できません"})
			return
		}

		limit := parseLimit(c.Query("limit"))
		date := c.Query("date")
		startDate := c.Query("start_date")
		endDate := c.Query("end_date")

		var notifications []serverdb.UserNotification
		var err error

		switch {
		case date != "":
			notifications, err = s.listByDateRange(c, userID, date, "", limit)
		case startDate != "":
			notifications, err = s.listByDateRange(c, userID, startDate, endDate, limit)
		default:
			notifications, err = s.queries.ListNotificationsByUser(c.Request.Context(), serverdb.ListNotificationsByUserParams{
				UserID: userID,
				Limit:  limit,
			})
		}
		if err != nil {
			var invalidDate *invalidDateError
			if errors.As(err, &invalidDate) {
				c.JSON(http.StatusBadRequest, gin.H{"error": invalidDate.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "要約一覧の取得に失敗しました"})
			log.Printf("要約一覧取得エラー: %v", err)
			return
		}

		items := make([]summaryItem, 0, len(notifications))
		for _, n := range notifications {
			items = append(items, summaryItem{
				ID:          n.ID,
				PackageName: n.PackageName,
				Title:       n.Title,
				Summary:     n.Summary,
				Date:        n.Timestamp.Format("2006-01-02"),
				Time:        n.Timestamp.Format("15:04:05"),
				Timestamp:   n.Timestamp.Format(time.RFC3339),
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"user_id":         userID,
			"total_summaries": len(items),
			"summaries":       items,
		})
	}
}

// invalidDateError は日付クエリパラメータの形式エラー。
type invalidDateError struct {
	value string
}

func (e *invalidDateError) Error() string {
	return "日付の形式が不正です（YYYY-MM-DD形式で指定してください）: " + e.value
}

// listByDateRange は日付文字列をパースして期間検索を実行する。
// endDateが空の場合はstartDateの1日分を対象にする。
// endDateが指定されている場合はその日全体を含む（翌日0時を排他的境界とする）。
func (s *Server) listByDateRange(c *gin.Context, userID, startDate, endDate string, limit int64) ([]serverdb.UserNotification, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return nil, &invalidDateError{value: startDate}
	}

	var end time.Time
	if endDate != "" {
		parsed, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, &invalidDateError{value: endDate}
		}
		end = parsed.AddDate(0, 0, 1)
	} else {
		end = start.AddDate(0, 0, 1)
	}

	return s.queries.ListNotificationsByDateRange(c.Request.Context(), serverdb.ListNotificationsByDateRangeParams{
		UserID: userID,
		Start:  start,
		End:    end,
		Limit:  limit,
	})
}

// parseLimit はlimitクエリパラメータをパースする。
// 未指定または不正な値の場合はデフォルト値を返す。
func parseLimit(value string) int64 {
	if value == "" {
		return defaultListLimit
	}
	limit, err := strconv.ParseInt(value, 10, 64)
	if err != nil || limit < 1 {
		return defaultListLimit
	}
	return limit
}
