package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	GenerateProgressInsight(ctx context.Context, progressNotes []string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
}

func NewGptRepository(apiKey string) (GptRepository, error) {
	client, err := chatgpt.NewClient(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
	}, nil
}

const progressInsightPrompt = `
You are reviewing progress notes written by an entrepreneur on an investment
marketplace. Summarize the trajectory of the project in one sentence aimed at
a prospective investor. Be factual and avoid hype. If the notes are too thin
to judge, say the update history is too sparse to draw conclusions.

Notes:
`

func (h gptRepositoryHandler) GenerateProgressInsight(ctx context.Context, progressNotes []string) (string, error) {
	res, err := h.GptClient.SimpleSend(ctx, progressInsightPrompt+strings.Join(progressNotes, "\n"))
	if err != nil {
		return "", fmt.Errorf("failed to generate progress insight: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("gpt returned no choices")
	}

	return strings.TrimSpace(res.Choices[0].Message.Content), nil
}
