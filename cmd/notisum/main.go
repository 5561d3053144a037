// 通知要約サービスのエントリポイント。
// モバイル端末の通知イベントを受信し、LLMによる要約を付与して
// ユーザーごとに保存するHTTP APIを提供する。
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/notisum/notisum/internal/server"
	"github.com/notisum/notisum/internal/summary"
)

func main() {
	// .envファイルは任意。存在しなくてもエラーにしない。
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Println("OPENAI_API_KEYが未設定のため、フォールバック要約のみで動作します")
	}

	summarizer := summary.NewService(summary.Config{
		APIKey:  apiKey,
		Model:   os.Getenv("SUMMARIZER_MODEL"),
		BaseURL: os.Getenv("OPENAI_BASE_URL"),
	})

	srv, err := server.NewServer(port, summarizer)
	if err != nil {
		log.Fatalf("サーバーの初期化に失敗: %v", err)
	}

	log.Printf("通知要約サービスを起動します: :%s", port)
	if err := srv.Run(); err != nil {
		log.Fatalf("サービスの起動に失敗: %v", err)
	}
}
