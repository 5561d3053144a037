// Package server は通知要約サービスのHTTP層を提供する。
//
// モバイル端末から送られる通知イベントを受信し、要約を付与して
// ユーザーごとにSQLiteへ保存する。ユーザー登録・ログイン、
// 通知一覧や要約の日付検索APIも提供する。
package server
