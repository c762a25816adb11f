package assistant_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kstargroup/kstarweb/internal/app/features/assistant"
	"github.com/kstargroup/kstarweb/internal/app/system/llm"
	"go.uber.org/zap"
)

type stubProvider struct {
	answer   string
	imageURL string
	err      error
}

func (s *stubProvider) Configured() bool { return true }

func (s *stubProvider) Answer(ctx context.Context, question string) (string, error) {
	return s.answer, s.err
}

func (s *stubProvider) GenerateImage(ctx context.Context, prompt string) (string, error) {
	return s.imageURL, s.err
}

func postJSON(t *testing.T, h *assistant.Handler, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	switch target {
	case "/assistant/chat":
		h.HandleChat(rec, req)
	case "/assistant/image":
		h.HandleImage(rec, req)
	default:
		t.Fatalf("unknown target %q", target)
	}
	return rec
}

func TestHandleChat(t *testing.T) {
	h := assistant.NewHandler(&stubProvider{answer: "Kstar Academy offers courses."}, zap.NewNop())

	rec := postJSON(t, h, "/assistant/chat", `{"question":"What courses do you offer?"}`)
	if rec.Code != 200 {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp struct {
		Answer string `json:"answer"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Answer != "Kstar Academy offers courses." {
		t.Errorf("answer: got %q", resp.Answer)
	}
}

func TestHandleChat_EmptyQuestion(t *testing.T) {
	h := assistant.NewHandler(&stubProvider{answer: "unused"}, zap.NewNop())

	rec := postJSON(t, h, "/assistant/chat", `{"question":"   "}`)
	if rec.Code != 400 {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("expected JSON error body, got %q", rec.Body.String())
	}
}

func TestHandleChat_NotConfigured(t *testing.T) {
	h := assistant.NewHandler(&stubProvider{err: llm.ErrNotConfigured}, zap.NewNop())

	rec := postJSON(t, h, "/assistant/chat", `{"question":"hello"}`)
	if rec.Code != 503 {
		t.Fatalf("status: got %d, want 503", rec.Code)
	}
}

func TestHandleChat_ProviderFailure(t *testing.T) {
	h := assistant.NewHandler(&stubProvider{err: llm.ErrNoAnswer}, zap.NewNop())

	rec := postJSON(t, h, "/assistant/chat", `{"question":"hello"}`)
	if rec.Code != 502 {
		t.Fatalf("status: got %d, want 502", rec.Code)
	}

	var resp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Error == "" {
		t.Error("provider failure produced no error message")
	}
}

func TestHandleImage(t *testing.T) {
	h := assistant.NewHandler(&stubProvider{imageURL: "data:image/png;base64,AAAA"}, zap.NewNop())

	rec := postJSON(t, h, "/assistant/image", `{"prompt":"a school courtyard"}`)
	if rec.Code != 200 {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var resp struct {
		ImageURL string `json:"imageUrl"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.ImageURL, "data:image/png;base64,") {
		t.Errorf("imageUrl: got %q", resp.ImageURL)
	}
}

func TestHandleImage_BadBody(t *testing.T) {
	h := assistant.NewHandler(&stubProvider{}, zap.NewNop())

	rec := postJSON(t, h, "/assistant/image", `{`)
	if rec.Code != 400 {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
}
