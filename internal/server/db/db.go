// Package db は通知サービスのSQLiteクエリ層を提供する。
// sqlcの生成コードと同じ形（DBTX + Queries + Params 構造体）で手書きしている。
package db

import (
	"context"
	"database/sql"
)

// DBTX は*sql.DBと*sql.Txの両方を受け入れるためのインターフェース。
type DBTX interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
	QueryContext(context.Context, string, ...any) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...any) *sql.Row
}

// New は新しいクエリ実行オブジェクトを生成する。
func New(db DBTX) *Queries {
	return &Queries{db: db}
}

// Queries はSQLクエリの実行オブジェクト。
type Queries struct {
	db DBTX
}
