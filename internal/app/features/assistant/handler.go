// internal/app/features/assistant/handler.go
package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/kstargroup/kstarweb/internal/app/system/llm"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// maxQuestionLen caps the accepted question and prompt length.
const maxQuestionLen = 2000

// Provider is the subset of the llm client the assistant needs.
type Provider interface {
	Configured() bool
	Answer(ctx context.Context, question string) (string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Handler exposes the site assistant as two JSON endpoints.
type Handler struct {
	LLM Provider
	Log *zap.Logger
}

// NewHandler constructs an assistant Handler.
func NewHandler(client Provider, logger *zap.Logger) *Handler {
	return &Handler{LLM: client, Log: logger}
}

// Routes mounts the assistant endpoints (typically at "/assistant").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/chat", h.HandleChat)
	r.Post("/image", h.HandleImage)
	return r
}

type chatRequest struct {
	Question string `json:"question"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

type imageRequest struct {
	Prompt string `json:"prompt"`
}

type imageResponse struct {
	ImageURL string `json:"imageUrl"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// HandleChat answers a single question about the organization.
// POST /assistant/chat
func (h *Handler) HandleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" || len(question) > maxQuestionLen {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question is required and must be at most 2000 characters"})
		return
	}

	answer, err := h.LLM.Answer(r.Context(), question)
	if err != nil {
		h.writeProviderError(w, r, "chat", err)
		return
	}
	writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
}

// HandleImage generates one image from a prompt.
// POST /assistant/image
func (h *Handler) HandleImage(w http.ResponseWriter, r *http.Request) {
	var req imageRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" || len(prompt) > maxQuestionLen {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "prompt is required and must be at most 2000 characters"})
		return
	}

	imageURL, err := h.LLM.GenerateImage(r.Context(), prompt)
	if err != nil {
		h.writeProviderError(w, r, "image", err)
		return
	}
	writeJSON(w, http.StatusOK, imageResponse{ImageURL: imageURL})
}

// writeProviderError maps provider failures to explicit JSON errors. Failures
// are never silently swallowed or turned into canned answers.
func (h *Handler) writeProviderError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, llm.ErrNotConfigured):
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "the assistant is not available right now"})
	case errors.Is(err, llm.ErrNoAnswer), errors.Is(err, llm.ErrNoMedia):
		h.Log.Warn("assistant provider returned empty result",
			zap.String("op", op), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "the assistant could not produce a result, please try again"})
	default:
		h.Log.Error("assistant provider call failed",
			zap.String("op", op), zap.Error(err))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "the assistant is temporarily unavailable, please try again"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
