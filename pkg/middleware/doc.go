// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// JWT認証トークンの検証、リクエストログ、パニックリカバリ、
// CORS設定など、HTTPハンドラの前段で共通して使用するミドルウェアを含む。
package middleware
