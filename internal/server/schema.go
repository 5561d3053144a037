package server

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。
const schema = `
CREATE TABLE IF NOT EXISTS users (
    -- ユーザーの一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- メールアドレス
    email TEXT NOT NULL UNIQUE,
    -- bcryptでハッシュ化されたパスワード
    password_hash TEXT NOT NULL,
    -- 登録日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS user_notifications (
    -- 保存レコードの一意識別子（UUID）
    id TEXT PRIMARY KEY,
    -- 通知の所有ユーザーのID
    user_id TEXT NOT NULL,
    -- 通知元アプリのパッケージ名
    package_name TEXT NOT NULL,
    -- 通知のタイトル
    title TEXT NOT NULL DEFAULT '',
    -- 通知の本文
    content TEXT NOT NULL DEFAULT '',
    -- 端末から受信した生テキスト
    raw_text TEXT NOT NULL DEFAULT '',
    -- 端末側で採番された通知ID
    external_id TEXT NOT NULL DEFAULT '',
    -- 生成された要約
    summary TEXT NOT NULL DEFAULT '',
    -- 通知が端末で発生した日時
    timestamp DATETIME NOT NULL,
    -- レコードの保存日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

-- ユーザーIDでの検索を高速化するインデックス。
CREATE INDEX IF NOT EXISTS idx_user_notifications_user_id
    ON user_notifications(user_id);

-- ユーザーごとの新着順・期間検索を高速化するインデックス。
CREATE INDEX IF NOT EXISTS idx_user_notifications_user_timestamp
    ON user_notifications(user_id, timestamp);
`

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
