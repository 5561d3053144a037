package summary

import "strings"

// AppType は通知元アプリの粗い分類を表す。
type AppType string

const (
	// AppTypeMessaging はメッセージングアプリ（WhatsApp、Slack等）を表す。
	AppTypeMessaging AppType = "messaging"
	// AppTypeEmail はメールアプリを表す。
	AppTypeEmail AppType = "email"
	// AppTypeSocial はSNSアプリを表す。
	AppTypeSocial AppType = "social"
	// AppTypeNews はニュースアプリを表す。
	AppTypeNews AppType = "news"
	// AppTypeProductivity はカレンダー等の生産性アプリを表す。
	AppTypeProductivity AppType = "productivity"
	// AppTypeEntertainment は動画・音楽等のエンタメアプリを表す。
	AppTypeEntertainment AppType = "entertainment"
	// AppTypeSystem はOS・システム系の通知を表す。
	AppTypeSystem AppType = "system"
	// AppTypeOther はどの分類にも該当しないアプリを表す。
	AppTypeOther AppType = "other"
)

// appTypeKeywords はアプリ種別ごとのキーワードテーブル。
// 上から順に評価し、最初に一致した種別を採用する（優先順位あり）。
var appTypeKeywords = []struct {
	appType  AppType
	keywords []string
}{
	{AppTypeMessaging, []string{"whatsapp", "telegram", "messages", "sms", "messenger", "slack", "discord"}},
	{AppTypeEmail, []string{"gmail", "outlook", "mail", "email"}},
	{AppTypeSocial, []string{"facebook", "instagram", "twitter", "linkedin", "snapchat", "tiktok"}},
	{AppTypeNews, []string{"news", "bbc", "cnn", "reuters", "medium"}},
	{AppTypeProductivity, []string{"calendar", "reminder", "notes", "drive", "dropbox"}},
	{AppTypeEntertainment, []string{"youtube", "spotify", "netflix", "music"}},
	{AppTypeSystem, []string{"android", "system", "settings", "security"}},
}

// ClassifyAppType はアプリ識別子（パッケージ名）からアプリ種別を分類する。
// 識別子を小文字化し、キーワードの部分一致で判定する。
// どのキーワードにも一致しない場合は AppTypeOther を返す。
func ClassifyAppType(appID string) AppType {
	lower := strings.ToLower(appID)
	for _, entry := range appTypeKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(lower, keyword) {
				return entry.appType
			}
		}
	}
	return AppTypeOther
}
