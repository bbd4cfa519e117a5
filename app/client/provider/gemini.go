package provider

import (
	"context"
	"fmt"

	"aidesk/app/config"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

type GeminiGateway struct {
	llm *googleai.GoogleAI
}

func NewGemini(ctx context.Context, cfg config.GeminiConfig) (*GeminiGateway, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.Token),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGateway{llm: llm}, nil
}

func (g *GeminiGateway) Complete(ctx context.Context, prompt string, attachments []Attachment) (string, error) {
	parts := []llms.ContentPart{
		llms.TextPart(prompt),
	}

	for _, att := range attachments {
		parts = append(parts, llms.BinaryPart(att.MimeType, att.Data))
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	resp, err := g.llm.GenerateContent(ctx, []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: parts,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion found")
	}

	return resp.Choices[0].Content, nil
}
