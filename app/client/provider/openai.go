package provider

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"aidesk/app/config"

	"github.com/sashabaranov/go-openai"
)

const requestTimeout = 30 * time.Second

type OpenAIGateway struct {
	client *openai.Client
	model  string
}

func NewOpenAI(cfg config.ModelConfig) *OpenAIGateway {
	clientConfig := openai.DefaultConfig(cfg.Token)

	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Timeout: requestTimeout,
	}

	return &OpenAIGateway{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.Model,
	}
}

func (g *OpenAIGateway) Complete(ctx context.Context, prompt string, attachments []Attachment) (string, error) {
	msg := openai.ChatCompletionMessage{
		Role: openai.ChatMessageRoleUser,
	}

	if len(attachments) == 0 {
		msg.Content = prompt
	} else {
		parts := []openai.ChatMessagePart{
			{
				Type: openai.ChatMessagePartTypeText,
				Text: prompt,
			},
		}

		for _, att := range attachments {
			dataURL := fmt.Sprintf("data:%s;base64,%s",
				att.MimeType, base64.StdEncoding.EncodeToString(att.Data))

			parts = append(parts, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: dataURL,
				},
			})
		}

		msg.MultiContent = parts
	}

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	aiResponse, err := g.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:    g.model,
			Messages: []openai.ChatCompletionMessage{msg},
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(aiResponse.Choices) == 0 {
		return "", fmt.Errorf("no chat completion found")
	}

	return aiResponse.Choices[0].Message.Content, nil
}
