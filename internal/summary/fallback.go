package summary

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// fallbackMaxLen はフォールバック要約でそのまま返すテキストの最大文字数。
const fallbackMaxLen = 100

// importantWords はフォールバック要約で重要文を抽出するためのキーワード。
var importantWords = []string{"urgent", "important", "update", "new", "alert", "reminder"}

// FallbackSummarize はLLMを使わない決定的な抽出型要約を返す。
// LLMバックエンドが未設定または呼び出しに失敗した場合に使用する。
//
// アルゴリズム:
//  1. 100文字以下ならそのまま返す。
//  2. ". " 区切りで文に分割する。
//  3. 2文以下なら先頭100文字 + "..." を返す。
//  4. 重要キーワードを含む文があれば先頭文と連結して返し、
//     なければ先頭2文を連結して返す。
func FallbackSummarize(text string) string {
	if utf8.RuneCountInString(text) <= fallbackMaxLen {
		return text
	}

	sentences := strings.Split(text, ". ")
	if len(sentences) <= 2 {
		return truncateRunes(text, fallbackMaxLen) + "..."
	}

	for _, sentence := range sentences {
		lowerSentence := strings.ToLower(sentence)
		for _, word := range importantWords {
			if strings.Contains(lowerSentence, word) {
				return fmt.Sprintf("%s. %s.", sentences[0], sentence)
			}
		}
	}

	return fmt.Sprintf("%s. %s.", sentences[0], sentences[1])
}

// truncateRunes は文字列をrune単位で安全に切り詰める。
// バイト単位の切り詰めと違い、マルチバイト文字を壊さない。
func truncateRunes(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen])
}
