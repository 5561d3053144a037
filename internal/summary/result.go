package summary

import "time"

// Confidence は要約結果の定性的な信頼度タグを表す。
// フォールバック経路を通った結果は常に low になる。
type Confidence string

const (
	// ConfidenceLow はフォールバック経路で生成された結果を表す。
	ConfidenceLow Confidence = "low"
	// ConfidenceMedium は基本要約の成功結果を表す。
	ConfidenceMedium Confidence = "medium"
	// ConfidenceHigh は文脈付き要約の成功または構造化パース成功を表す。
	ConfidenceHigh Confidence = "high"
)

// Input は要約対象の通知。リクエストごとに構築される不変の値。
type Input struct {
	// AppID は通知元アプリの識別子（パッケージ名）。
	AppID string
	// Title は通知のタイトル。
	Title string
	// Content は通知の本文。戦略選択と要約の主な入力。
	Content string
	// RawText は端末から受信した生テキスト。
	RawText string
}

// Result は1件の通知に対する要約結果。生成後は変更されない。
type Result struct {
	// Summary は生成された要約。常に空でない。
	Summary string `json:"summary"`
	// Strategy は結果を生成した要約戦略。
	Strategy Strategy `json:"strategy"`
	// AppType は通知元アプリの分類。
	AppType AppType `json:"app_type"`
	// Confidence は結果の信頼度。フォールバック時は low。
	Confidence Confidence `json:"confidence"`
	// Urgency は緊急度。sentiment 戦略の場合のみ設定される。
	Urgency Urgency `json:"urgency,omitempty"`
	// Sentiment は感情極性。sentiment 戦略の場合のみ設定される。
	Sentiment Sentiment `json:"sentiment,omitempty"`
	// OriginalLength は本文の文字数。
	OriginalLength int `json:"original_length"`
	// CompressionRatio は要約文字数 / max(本文文字数, 1)。
	CompressionRatio float64 `json:"compression_ratio"`
	// ProcessedAt は要約処理を実行した日時。
	ProcessedAt time.Time `json:"processed_at"`
	// Err はLLM呼び出しが失敗した場合のエラー内容。呼び出し元には伝播しない。
	Err string `json:"error,omitempty"`
}
