// Package summary は通知テキストの要約コアを提供する。
//
// アプリ種別の分類、要約戦略の選択、LLMによる要約生成、
// LLMが利用できない場合の抽出型フォールバック要約を担当する。
// HTTP層やDB層には依存しない純粋なドメインパッケージ。
package summary
