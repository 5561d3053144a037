package db

import "time"

// User は登録済みユーザーのDB行。
type User struct {
	// ID はユーザーの一意識別子（UUID）。
	ID string
	// Email はユーザーのメールアドレス。一意制約あり。
	Email string
	// PasswordHash はbcryptでハッシュ化されたパスワード。
	PasswordHash string
	// CreatedAt はユーザーの登録日時。
	CreatedAt time.Time
}

// UserNotification は受信した通知とその要約のDB行。
type UserNotification struct {
	// ID は保存レコードの一意識別子（UUID）。
	ID string
	// UserID は通知の所有ユーザーのID。
	UserID string
	// PackageName は通知元アプリのパッケージ名。
	PackageName string
	// Title は通知のタイトル。
	Title string
	// Content は通知の本文。
	Content string
	// RawText は端末から受信した生テキスト。
	RawText string
	// ExternalID は端末側で採番された通知ID。
	ExternalID string
	// Summary は生成された要約。
	Summary string
	// Timestamp は通知が端末で発生した日時。
	Timestamp time.Time
	// CreatedAt はレコードの保存日時。
	CreatedAt time.Time
}
