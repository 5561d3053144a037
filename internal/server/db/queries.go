package db

import (
	"context"
	"database/sql"
	"time"
)

const createUser = `
INSERT INTO users (id, email, password_hash)
VALUES (?, ?, ?)
`

// CreateUserParams はCreateUserのパラメータ。
type CreateUserParams struct {
	ID           string
	Email        string
	PasswordHash string
}

// CreateUser は新しいユーザーを登録する。
func (q *Queries) CreateUser(ctx context.Context, arg CreateUserParams) error {
	_, err := q.db.ExecContext(ctx, createUser, arg.ID, arg.Email, arg.PasswordHash)
	return err
}

const getUserByEmail = `
SELECT id, email, password_hash, created_at
FROM users
WHERE email = ?
`

// GetUserByEmail はメールアドレスでユーザーを検索する。
// 存在しない場合はsql.ErrNoRowsを返す。
func (q *Queries) GetUserByEmail(ctx context.Context, email string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByEmail, email)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

const getUserByID = `
SELECT id, email, password_hash, created_at
FROM users
WHERE id = ?
`

// GetUserByID はIDでユーザーを検索する。
func (q *Queries) GetUserByID(ctx context.Context, id string) (User, error) {
	row := q.db.QueryRowContext(ctx, getUserByID, id)
	var u User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt)
	return u, err
}

const listUsers = `
SELECT id, email, password_hash, created_at
FROM users
ORDER BY created_at ASC
`

// ListUsers は登録済みユーザーの一覧を返す。
func (q *Queries) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := q.db.QueryContext(ctx, listUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []User{}
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

const createNotification = `
INSERT INTO user_notifications (id, user_id, package_name, title, content, raw_text, external_id, summary, timestamp)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
`

// CreateNotificationParams はCreateNotificationのパラメータ。
type CreateNotificationParams struct {
	ID          string
	UserID      string
	PackageName string
	Title       string
	Content     string
	RawText     string
	ExternalID  string
	Summary     string
	Timestamp   time.Time
}

// CreateNotification は要約付きの通知レコードを保存する。
func (q *Queries) CreateNotification(ctx context.Context, arg CreateNotificationParams) error {
	_, err := q.db.ExecContext(ctx, createNotification,
		arg.ID, arg.UserID, arg.PackageName, arg.Title, arg.Content,
		arg.RawText, arg.ExternalID, arg.Summary, arg.Timestamp,
	)
	return err
}

const listNotificationsByUser = `
SELECT id, user_id, package_name, title, content, raw_text, external_id, summary, timestamp, created_at
FROM user_notifications
WHERE user_id = ?
ORDER BY timestamp DESC
LIMIT ?
`

// ListNotificationsByUserParams はListNotificationsByUserのパラメータ。
type ListNotificationsByUserParams struct {
	UserID string
	Limit  int64
}

// ListNotificationsByUser はユーザーの通知を新しい順に返す。
func (q *Queries) ListNotificationsByUser(ctx context.Context, arg ListNotificationsByUserParams) ([]UserNotification, error) {
	rows, err := q.db.QueryContext(ctx, listNotificationsByUser, arg.UserID, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

const listNotificationsByDateRange = `
SELECT id, user_id, package_name, title, content, raw_text, external_id, summary, timestamp, created_at
FROM user_notifications
WHERE user_id = ? AND timestamp >= ? AND timestamp < ?
ORDER BY timestamp DESC
LIMIT ?
`

// ListNotificationsByDateRangeParams はListNotificationsByDateRangeのパラメータ。
// Endは排他的境界（End未満の通知が対象）。
type ListNotificationsByDateRangeParams struct {
	UserID string
	Start  time.Time
	End    time.Time
	Limit  int64
}

// ListNotificationsByDateRange は指定期間内のユーザーの通知を新しい順に返す。
func (q *Queries) ListNotificationsByDateRange(ctx context.Context, arg ListNotificationsByDateRangeParams) ([]UserNotification, error) {
	rows, err := q.db.QueryContext(ctx, listNotificationsByDateRange, arg.UserID, arg.Start, arg.End, arg.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanNotifications(rows)
}

// scanNotifications は通知クエリの結果行をスライスに読み取る共通処理。
func scanNotifications(rows *sql.Rows) ([]UserNotification, error) {
	notifications := []UserNotification{}
	for rows.Next() {
		var n UserNotification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.PackageName, &n.Title, &n.Content,
			&n.RawText, &n.ExternalID, &n.Summary, &n.Timestamp, &n.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
