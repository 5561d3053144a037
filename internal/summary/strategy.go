package summary

import (
	"strings"
	"unicode/utf8"
)

// Strategy はどの要約経路で結果が生成されたかを表す。
type Strategy string

const (
	// StrategyContextual はアプリ種別に応じた文脈付き要約を表す。
	StrategyContextual Strategy = "contextual"
	// StrategySentiment は感情分析付き要約を表す。
	StrategySentiment Strategy = "sentiment"
	// StrategyBasic は単純な要約を表す。
	StrategyBasic Strategy = "basic"
	// StrategyFallback は要約サービス自体が利用できない場合の切り詰め要約を表す。
	StrategyFallback Strategy = "fallback"
)

// contextualLengthThreshold はこの文字数を超える本文に文脈付き要約を適用する閾値。
// 超過判定は厳密（> 200）であり、ちょうど200文字は対象外。
const contextualLengthThreshold = 200

// sentimentIndicators は感情分析付き要約を選択するためのキーワードテーブル。
var sentimentIndicators = []string{
	"urgent", "important", "critical", "warning", "error", "failed",
	"congratulations", "success", "completed", "approved", "rejected",
	"love", "hate", "angry", "happy", "sad", "excited",
}

// SelectStrategy は本文とアプリ種別から要約戦略を選択する。
// 判定順序が重要で、contextual が sentiment より優先される。
// 常に contextual / sentiment / basic のいずれか一つを返す。
func SelectStrategy(appType AppType, content string) Strategy {
	if utf8.RuneCountInString(content) > contextualLengthThreshold {
		return StrategyContextual
	}
	switch appType {
	case AppTypeEmail, AppTypeNews, AppTypeSocial:
		return StrategyContextual
	}

	if containsSentimentIndicators(content) {
		return StrategySentiment
	}
	return StrategyBasic
}

// containsSentimentIndicators は本文に感情を示すキーワードが含まれるかを判定する。
func containsSentimentIndicators(content string) bool {
	lower := strings.ToLower(content)
	for _, word := range sentimentIndicators {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}
