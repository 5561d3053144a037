package summary

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"
)

// ErrNotConfigured はAPIキー未設定のためLLMクライアントが存在しないことを表す。
// この状態はエラーではなく、常にフォールバック要約に切り替わる。
var ErrNotConfigured = errors.New("LLMクライアントが設定されていません")

// デフォルトの要約パラメータ。移行元との互換性のため値を変更しないこと。
const (
	defaultModel       = "gpt-3.5-turbo"
	defaultMaxTokens   = 150
	defaultTemperature = 0.3
	defaultHTTPTimeout = 60 * time.Second
)

// Config は要約サービスの設定。
type Config struct {
	// APIKey はLLMバックエンドのAPIキー。空の場合はフォールバック専用モードになる。
	APIKey string
	// Model は使用するモデル識別子。未指定の場合は gpt-3.5-turbo。
	Model string
	// BaseURL はOpenAI互換プロバイダのベースURL。未指定の場合は公式API。
	BaseURL string
	// MaxTokens は生成トークン数の上限。未指定の場合は150。
	MaxTokens int
	// Temperature はサンプリング温度。未指定の場合は0.3。
	Temperature float32
}

// Service は通知の要約を統括するサービス。
// LLMクライアントを一つ保持し、戦略選択・プロンプト構築・フォールバックを担当する。
// クライアントは構築後に変更されないため、並行アクセスに対する同期は不要。
type Service struct {
	// client はOpenAI互換のチャット補完クライアント。未設定時はnil。
	client *openai.Client
	// model は使用するモデル識別子。
	model string
	// maxTokens は生成トークン数の上限。
	maxTokens int
	// temperature はサンプリング温度。
	temperature float32
}

// NewService は新しい要約サービスを生成する。
// APIキーが空の場合、クライアントは生成せず全要約がフォールバック経路になる。
func NewService(cfg Config) *Service {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}

	s := &Service{
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}

	if cfg.APIKey != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			clientConfig.BaseURL = cfg.BaseURL
		}
		clientConfig.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
		s.client = openai.NewClientWithConfig(clientConfig)
	}
	return s
}

// Summarize は通知1件を要約し、メタデータ付きの結果を返す。
// LLM呼び出しの失敗は内部でフォールバック要約に切り替わるため、
// エラーは返さない。失敗内容は Result.Err に記録される。
func (s *Service) Summarize(ctx context.Context, in Input) Result {
	appType := ClassifyAppType(in.AppID)
	strategy := SelectStrategy(appType, in.Content)

	var result Result
	switch strategy {
	case StrategyContextual:
		result = s.summarizeContextual(ctx, in)
	case StrategySentiment:
		result = s.summarizeSentiment(ctx, in)
	default:
		result = s.summarizeBasic(ctx, in)
	}

	result.Strategy = strategy
	result.AppType = appType

	contentLen := utf8.RuneCountInString(in.Content)
	result.OriginalLength = contentLen
	if contentLen < 1 {
		contentLen = 1
	}
	result.CompressionRatio = float64(utf8.RuneCountInString(result.Summary)) / float64(contentLen)
	result.ProcessedAt = time.Now().UTC()

	return result
}

// summarizeContextual はアプリ種別に応じた文脈付き要約を生成する。
func (s *Service) summarizeContextual(ctx context.Context, in Input) Result {
	userPrompt := fmt.Sprintf("App: %s\nTitle: %s\nContent: %s", in.AppID, in.Title, in.Content)
	text, err := s.chat(ctx, contextualSystemPrompt, userPrompt)
	if err != nil {
		return s.fallbackResult(in.Content, err)
	}
	return Result{Summary: text, Confidence: ConfidenceHigh}
}

// summarizeSentiment は緊急度と感情極性付きの構造化要約を生成する。
func (s *Service) summarizeSentiment(ctx context.Context, in Input) Result {
	text, err := s.chat(ctx, sentimentSystemPrompt, "Notification: "+in.Content)
	if err != nil {
		result := s.fallbackResult(in.Content, err)
		result.Urgency = UrgencyMedium
		result.Sentiment = SentimentNeutral
		return result
	}

	parsed := parseSentimentResponse(text)
	return Result{
		Summary:    parsed.Summary,
		Urgency:    parsed.Urgency,
		Sentiment:  parsed.Sentiment,
		Confidence: parsed.Confidence,
	}
}

// summarizeBasic は単純なプロンプトによる要約を生成する。
func (s *Service) summarizeBasic(ctx context.Context, in Input) Result {
	text, err := s.chat(ctx, basicSystemPrompt, "Summarize this notification: "+in.Content)
	if err != nil {
		return s.fallbackResult(in.Content, err)
	}
	return Result{Summary: text, Confidence: ConfidenceMedium}
}

// fallbackResult は抽出型フォールバック要約による低信頼度の結果を組み立てる。
// クライアント未設定は想定内の状態なのでErrには記録せず、
// 呼び出し失敗のみErrに記録する。
func (s *Service) fallbackResult(content string, err error) Result {
	result := Result{
		Summary:    FallbackSummarize(content),
		Confidence: ConfidenceLow,
	}
	if !errors.Is(err, ErrNotConfigured) {
		result.Err = err.Error()
	}
	return result
}

// chat はシステム・ユーザープロンプトの組でチャット補完を1回呼び出す。
// リトライは行わない。失敗は即座に呼び出し元へ返す。
func (s *Service) chat(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if s.client == nil {
		return "", ErrNotConfigured
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		MaxTokens:   s.maxTokens,
		Temperature: s.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("チャット補完の呼び出しに失敗: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("チャット補完のレスポンスが空です")
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", errors.New("チャット補完が空のテキストを返しました")
	}
	return text, nil
}

// contextualSystemPrompt はアプリ種別ごとの観点を指示するシステムプロンプト。
const contextualSystemPrompt = `You are a smart notification summarizer. Based on the app type and content, create relevant summaries:
- For messaging apps: Who messaged and brief content
- For emails: Sender and subject/key points
- For social media: Platform and type of notification
- For system apps: What action or update occurred
- For news apps: Headline and key information

Keep summaries under 50 words and highlight important details.`

// sentimentSystemPrompt は緊急度・感情付きの構造化レスポンスを要求するシステムプロンプト。
const sentimentSystemPrompt = `You are a notification summarizer that includes sentiment analysis.
Create a summary that includes:
1. Main message (under 40 words)
2. Urgency level (Low/Medium/High)
3. Sentiment (Positive/Neutral/Negative)

Format: "Summary | Urgency: [level] | Sentiment: [sentiment]"`

// basicSystemPrompt は単純要約用のシステムプロンプト。
const basicSystemPrompt = `You are an expert at summarizing notifications concisely. Create brief, clear summaries that capture the essential information. Keep summaries under 50 words and focus on actionable information.`
