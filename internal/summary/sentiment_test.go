package summary

import "testing"

// TestParseSentimentResponse は構造化レスポンスのパースを検証する。
func TestParseSentimentResponse(t *testing.T) {
	t.Parallel()

	t.Run("完全な構造化レスポンスをパースできる", func(t *testing.T) {
		t.Parallel()

		got := parseSentimentResponse("Meeting at 5pm | Urgency: High | Sentiment: Positive")

		if got.Summary != "Meeting at 5pm" {
			t.Errorf("Summary: got %q, want %q", got.Summary, "Meeting at 5pm")
		}
		if got.Urgency != UrgencyHigh {
			t.Errorf("Urgency: got %v, want %v", got.Urgency, UrgencyHigh)
		}
		if got.Sentiment != SentimentPositive {
			t.Errorf("Sentiment: got %v, want %v", got.Sentiment, SentimentPositive)
		}
		if got.Confidence != ConfidenceHigh {
			t.Errorf("Confidence: got %v, want %v", got.Confidence, ConfidenceHigh)
		}
	})

	t.Run("区切りがない場合は全体を要約として低信頼度で返す", func(t *testing.T) {
		t.Parallel()

		raw := "Just a plain response without structure"
		got := parseSentimentResponse(raw)

		if got.Summary != raw {
			t.Errorf("Summary: got %q, want %q", got.Summary, raw)
		}
		if got.Urgency != UrgencyMedium {
			t.Errorf("Urgency: got %v, want %v", got.Urgency, UrgencyMedium)
		}
		if got.Sentiment != SentimentNeutral {
			t.Errorf("Sentiment: got %v, want %v", got.Sentiment, SentimentNeutral)
		}
		if got.Confidence != ConfidenceLow {
			t.Errorf("Confidence: got %v, want %v", got.Confidence, ConfidenceLow)
		}
	})

	t.Run("Urgencyフィールドが欠落している場合はmediumを補う", func(t *testing.T) {
		t.Parallel()

		got := parseSentimentResponse("Server restored | Sentiment: Negative")

		if got.Urgency != UrgencyMedium {
			t.Errorf("Urgency: got %v, want %v", got.Urgency, UrgencyMedium)
		}
		if got.Sentiment != SentimentNegative {
			t.Errorf("Sentiment: got %v, want %v", got.Sentiment, SentimentNegative)
		}
		if got.Confidence != ConfidenceHigh {
			t.Errorf("Confidence: got %v, want %v", got.Confidence, ConfidenceHigh)
		}
	})

	t.Run("値が空のフィールドはデフォルト値のまま", func(t *testing.T) {
		t.Parallel()

		got := parseSentimentResponse("Summary text | Urgency: | Sentiment:")

		if got.Urgency != UrgencyMedium {
			t.Errorf("Urgency: got %v, want %v", got.Urgency, UrgencyMedium)
		}
		if got.Sentiment != SentimentNeutral {
			t.Errorf("Sentiment: got %v, want %v", got.Sentiment, SentimentNeutral)
		}
	})

	t.Run("値は小文字化・トリムされる", func(t *testing.T) {
		t.Parallel()

		got := parseSentimentResponse("Alert resolved | Urgency:  LOW  | Sentiment:  NEUTRAL ")

		if got.Urgency != UrgencyLow {
			t.Errorf("Urgency: got %v, want %v", got.Urgency, UrgencyLow)
		}
		if got.Sentiment != SentimentNeutral {
			t.Errorf("Sentiment: got %v, want %v", got.Sentiment, SentimentNeutral)
		}
	})
}
