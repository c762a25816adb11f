package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{
		APIBase:    srv.URL,
		APIKey:     "test-key",
		ChatModel:  "test-chat",
		ImageModel: "test-image",
	}, zap.NewNop())
}

func TestAnswerSuccess(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Authorization = %q", got)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "test-chat" {
			t.Errorf("model = %q", req.Model)
		}
		if len(req.Messages) != 2 || req.Messages[0].Role != "system" {
			t.Fatalf("messages = %+v", req.Messages)
		}
		if req.Messages[1].Content != "What does ClickData do?" {
			t.Errorf("user message = %q", req.Messages[1].Content)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "  ClickData grows data literacy.  "}},
			},
		})
	})

	got, err := c.Answer(context.Background(), "What does ClickData do?")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if got != "ClickData grows data literacy." {
		t.Errorf("answer = %q", got)
	}
}

func TestAnswerNoChoices(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	})

	_, err := c.Answer(context.Background(), "hello")
	if !errors.Is(err, ErrNoAnswer) {
		t.Fatalf("err = %v, want ErrNoAnswer", err)
	}
}

func TestAnswerProviderError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"overloaded"}`, http.StatusServiceUnavailable)
	})

	_, err := c.Answer(context.Background(), "hello")
	if err == nil || !strings.Contains(err.Error(), "503") {
		t.Fatalf("err = %v, want status 503 error", err)
	}
}

func TestAnswerNotConfigured(t *testing.T) {
	c := New(Config{}, zap.NewNop())
	if _, err := c.Answer(context.Background(), "hello"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("err = %v, want ErrNotConfigured", err)
	}
	if c.Configured() {
		t.Error("Configured() = true without API key")
	}
}

func TestGenerateImageSuccess(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/images/generations" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req imageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Model != "test-image" || req.N != 1 || req.ResponseFormat != "b64_json" {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]string{{"b64_json": "aGVsbG8="}},
		})
	})

	got, err := c.GenerateImage(context.Background(), "a sunrise over Dar es Salaam")
	if err != nil {
		t.Fatalf("GenerateImage: %v", err)
	}
	if got != "data:image/png;base64,aGVsbG8=" {
		t.Errorf("image = %q", got)
	}
}

func TestGenerateImageNoMedia(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})

	_, err := c.GenerateImage(context.Background(), "anything")
	if !errors.Is(err, ErrNoMedia) {
		t.Fatalf("err = %v, want ErrNoMedia", err)
	}
}
