package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ielts_prep_backend/internal/config"
)

func newFakeAIServer(t *testing.T, content string, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := ChatCompletionResponse{}
		resp.Choices = []struct {
			Message AIChatMessage `json:"message"`
		}{
			{Message: AIChatMessage{Role: "assistant", Content: content}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestEvaluateWritingParsesFeedback(t *testing.T) {
	body := "```json\n" +
		`{"overallScore": 6.5, "taskAchievement": 6.0, "coherenceCohesion": 7.0, "lexicalResource": 6.5, "grammaticalAccuracy": 6.0, "strengths": ["clear position"], "improvements": ["use linking words"]}` +
		"\n```"
	srv := newFakeAIServer(t, body, http.StatusOK)
	defer srv.Close()

	svc := NewFeedbackService(config.AIConfig{BaseURL: srv.URL, APIKey: "test", Model: "test-model"})

	feedback := svc.EvaluateWriting("Describe the chart.", "The chart shows...", 1)
	if feedback.OverallScore != 6.5 {
		t.Errorf("overallScore = %v, want 6.5", feedback.OverallScore)
	}
	if feedback.CoherenceCohesion != 7.0 {
		t.Errorf("coherenceCohesion = %v, want 7.0", feedback.CoherenceCohesion)
	}
	if len(feedback.Strengths) != 1 || len(feedback.Improvements) != 1 {
		t.Errorf("strengths/improvements = %d/%d, want 1/1", len(feedback.Strengths), len(feedback.Improvements))
	}
}

func TestEvaluateWritingDegradesOnServerError(t *testing.T) {
	srv := newFakeAIServer(t, "", http.StatusBadGateway)
	defer srv.Close()

	svc := NewFeedbackService(config.AIConfig{BaseURL: srv.URL, APIKey: "test", Model: "test-model"})

	feedback := svc.EvaluateWriting("Prompt", "Essay text", 2)
	if feedback == nil {
		t.Fatal("degraded feedback must not be nil")
	}
	if feedback.OverallScore != 0 {
		t.Errorf("degraded overallScore = %v, want 0", feedback.OverallScore)
	}
	if feedback.Strengths == nil || feedback.Improvements == nil {
		t.Error("degraded feedback slices must be empty, not nil")
	}
}

func TestEvaluateSpeakingClampsOutOfRangeScores(t *testing.T) {
	body := `{"overallScore": 11, "fluencyCoherence": -2, "lexicalResource": 6.0, "grammaticalAccuracy": 6.0, "pronunciation": 6.5, "strengths": [], "improvements": []}`
	srv := newFakeAIServer(t, body, http.StatusOK)
	defer srv.Close()

	svc := NewFeedbackService(config.AIConfig{BaseURL: srv.URL, APIKey: "test", Model: "test-model"})

	feedback := svc.EvaluateSpeaking("Describe your hometown.", "I come from...", 1)
	if feedback.OverallScore != 9 {
		t.Errorf("overallScore clamped = %v, want 9", feedback.OverallScore)
	}
	if feedback.FluencyCoherence != 0 {
		t.Errorf("fluencyCoherence clamped = %v, want 0", feedback.FluencyCoherence)
	}
}

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain json", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  {\"a\":1}  ", `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripJSONFences(tt.in); got != tt.want {
				t.Errorf("stripJSONFences(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
