package summary

import "testing"

// TestClassifyAppType はアプリ識別子からの種別分類を検証する。
func TestClassifyAppType(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		appID string
		want  AppType
	}{
		{"WhatsAppはmessaging", "com.whatsapp", AppTypeMessaging},
		{"Slackはmessaging", "com.slack.android", AppTypeMessaging},
		{"Outlookはemail", "com.microsoft.outlook", AppTypeEmail},
		{"Twitterはsocial", "com.twitter.android", AppTypeSocial},
		{"BBCはnews", "bbc.mobile.reader", AppTypeNews},
		{"Calendarはproductivity", "com.google.calendar", AppTypeProductivity},
		{"Spotifyはentertainment", "com.spotify.client", AppTypeEntertainment},
		{"設定アプリはsystem", "com.android.settings", AppTypeSystem},
		{"未知のアプリはother", "com.unknown.app", AppTypeOther},
		{"空文字はother", "", AppTypeOther},
		{"大文字でも分類できる", "COM.WHATSAPP", AppTypeMessaging},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifyAppType(tt.appID); got != tt.want {
				t.Errorf("ClassifyAppType(%q): got %v, want %v", tt.appID, got, tt.want)
			}
		})
	}
}

// TestClassifyAppTypePriority はキーワードテーブルの優先順位を検証する。
// 複数の種別に一致する識別子は先に評価された種別になる。
func TestClassifyAppTypePriority(t *testing.T) {
	t.Parallel()

	// "android" はsystemのキーワードだが、socialの "twitter" が先に一致する
	if got := ClassifyAppType("com.twitter.android"); got != AppTypeSocial {
		t.Errorf("ClassifyAppType: got %v, want %v", got, AppTypeSocial)
	}

	// "mail" はemailのキーワードで、systemより先に評価される
	if got := ClassifyAppType("com.android.mail"); got != AppTypeEmail {
		t.Errorf("ClassifyAppType: got %v, want %v", got, AppTypeEmail)
	}
}
