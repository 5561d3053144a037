package summary

import "strings"

// Urgency は通知の緊急度を表す。
type Urgency string

const (
	// UrgencyLow は緊急度が低いことを表す。
	UrgencyLow Urgency = "low"
	// UrgencyMedium は緊急度が中程度であることを表す。
	UrgencyMedium Urgency = "medium"
	// UrgencyHigh は緊急度が高いことを表す。
	UrgencyHigh Urgency = "high"
)

// Sentiment は通知の感情極性を表す。
type Sentiment string

const (
	// SentimentPositive は肯定的な感情を表す。
	SentimentPositive Sentiment = "positive"
	// SentimentNeutral は中立的な感情を表す。
	SentimentNeutral Sentiment = "neutral"
	// SentimentNegative は否定的な感情を表す。
	SentimentNegative Sentiment = "negative"
)

// sentimentResult は感情分析付き要約レスポンスのパース結果。
type sentimentResult struct {
	// Summary は要約本文。
	Summary string
	// Urgency は緊急度。フィールドが欠落している場合は medium。
	Urgency Urgency
	// Sentiment は感情極性。フィールドが欠落している場合は neutral。
	Sentiment Sentiment
	// Confidence は構造化パースに成功した場合のみ high。
	Confidence Confidence
}

// parseSentimentResponse はLLMの構造化レスポンスをパースする。
// 期待形式: "<summary> | Urgency: <level> | Sentiment: <value>"
// " | " 区切りで分割できない場合はレスポンス全体を要約として扱い、
// 信頼度を low に落とす。
func parseSentimentResponse(raw string) sentimentResult {
	parts := strings.Split(raw, " | ")
	if len(parts) < 2 {
		return sentimentResult{
			Summary:    raw,
			Urgency:    UrgencyMedium,
			Sentiment:  SentimentNeutral,
			Confidence: ConfidenceLow,
		}
	}

	result := sentimentResult{
		Summary:    parts[0],
		Urgency:    UrgencyMedium,
		Sentiment:  SentimentNeutral,
		Confidence: ConfidenceHigh,
	}

	for _, part := range parts[1:] {
		switch {
		case strings.HasPrefix(part, "Urgency:"):
			if v := extractFieldValue(part); v != "" {
				result.Urgency = Urgency(v)
			}
		case strings.HasPrefix(part, "Sentiment:"):
			if v := extractFieldValue(part); v != "" {
				result.Sentiment = Sentiment(v)
			}
		}
	}
	return result
}

// extractFieldValue は "Key: Value" 形式の文字列から値部分を取り出し、
// 小文字化・トリムして返す。値がなければ空文字を返す。
func extractFieldValue(part string) string {
	_, value, found := strings.Cut(part, ":")
	if !found {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(value))
}
