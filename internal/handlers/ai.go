package handlers

import (
	"encoding/json"
	"net/http"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sirupsen/logrus"
)

type aiProcessRequest struct {
	Text   string `json:"text"`
	Action string `json:"action"`
}

// AIProcessHandler runs a note's text through OpenAI. Supported
// actions: summarize (default), enhance, fix.
func AIProcessHandler(apiKey string, logger *logrus.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if apiKey == "" {
			respondError(w, http.StatusServiceUnavailable, "AI processing is not configured")
			return
		}

		var req aiProcessRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "Text is required")
			return
		}
		if req.Text == "" {
			respondError(w, http.StatusBadRequest, "Text is required")
			return
		}

		var prompt string
		switch req.Action {
		case "summarize", "":
			prompt = `Summarize the following note in a few short sentences, keeping the key facts:

` + req.Text

		case "enhance":
			prompt = `Rewrite the following note with clearer structure and wording while preserving its meaning:

` + req.Text

		case "fix":
			prompt = `Correct grammar and spelling in the following note without changing its structure:

` + req.Text

		default:
			respondError(w, http.StatusBadRequest, "Invalid action")
			return
		}

		client := openai.NewClient(apiKey)
		resp, err := client.CreateChatCompletion(r.Context(), openai.ChatCompletionRequest{
			Model: openai.GPT3Dot5Turbo,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.3,
			TopP:        0.9,
		})
		if err != nil {
			logger.WithError(err).Error("AI processing failed")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}
		if len(resp.Choices) == 0 {
			logger.Error("AI processing returned no choices")
			respondError(w, http.StatusInternalServerError, "Internal Server Error")
			return
		}

		respondJSON(w, http.StatusOK, envelope{
			"error":   false,
			"text":    resp.Choices[0].Message.Content,
			"message": "Text processed successfully",
		})
	}
}
