// Package assistant orchestrates the AI features: assemble the prompt, call
// the provider, decode the contract, and for chat record the exchange.
// Provider and decode failures never escape as errors; every feature returns
// a best-effort result carrying the failure as data.
package assistant

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"aidesk/app/client/provider"
	"aidesk/app/service/contract"
	"aidesk/app/service/history"
	"aidesk/app/service/prompt"

	"github.com/elliotchance/pie/v2"
	"github.com/google/uuid"
	"github.com/samber/do"
)

const transcribeUnsupportedMessage = "Audio transcription is not yet supported. Feature coming soon."

type Service struct {
	gateway    provider.Gateway
	historySvc *history.Service
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		gateway:    do.MustInvoke[provider.Gateway](di),
		historySvc: do.MustInvoke[*history.Service](di),
	}, nil
}

// Chat runs one exchange within a session, generating a fresh session id
// when none is supplied. Failed exchanges are not recorded in history.
func (s *Service) Chat(ctx context.Context, message, sessionID string) ChatReply {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	turns := s.historySvc.Snapshot(sessionID)

	responseText, err := s.gateway.Complete(ctx, prompt.Chat(turns, message), nil)
	if err != nil {
		slog.Warn("Chat completion failed",
			"session_id", sessionID,
			"error", err,
		)

		return ChatReply{
			Response:  fmt.Sprintf("Error: %s", err),
			SessionID: sessionID,
		}
	}

	s.historySvc.Append(sessionID, history.Turn{
		UserText:  message,
		ModelText: responseText,
		CreatedAt: time.Now(),
	})

	return ChatReply{
		Response:  responseText,
		SessionID: sessionID,
	}
}

func (s *Service) AnalyzeSentiment(ctx context.Context, text string) SentimentResult {
	responseText, err := s.gateway.Complete(ctx, prompt.Sentiment(text), nil)
	if err != nil {
		slog.Warn("Sentiment analysis failed", "error", err)

		return SentimentResult{
			Text:            text,
			Sentiment:       contract.DefaultSentiment,
			ConfidenceScore: 0,
			Explanation:     fmt.Sprintf("Error: %s", err),
		}
	}

	payload, err := contract.DecodeSentiment(responseText)
	if err != nil {
		slog.Warn("Sentiment payload decode failed", "error", err)
	}

	return SentimentResult{
		Text:            text,
		Sentiment:       payload.Sentiment,
		ConfidenceScore: payload.Confidence,
		Explanation:     payload.Explanation,
	}
}

func (s *Service) SummarizeDocument(ctx context.Context, text string) DocumentSummary {
	originalLength := utf8.RuneCountInString(text)

	responseText, err := s.gateway.Complete(ctx, prompt.Summarize(text), nil)
	if err != nil {
		slog.Warn("Document summarization failed", "error", err)

		return DocumentSummary{
			OriginalText:   text,
			Summary:        fmt.Sprintf("Error: %s", err),
			OriginalLength: originalLength,
			SummaryLength:  0,
			KeyPoints:      []string{},
		}
	}

	payload, err := contract.DecodeSummary(responseText)
	if err != nil {
		slog.Warn("Summary payload decode failed", "error", err)

		return DocumentSummary{
			OriginalText:   text,
			Summary:        payload.Summary,
			OriginalLength: originalLength,
			SummaryLength:  0,
			KeyPoints:      payload.KeyPoints,
		}
	}

	return DocumentSummary{
		OriginalText:   text,
		Summary:        payload.Summary,
		OriginalLength: originalLength,
		SummaryLength:  utf8.RuneCountInString(payload.Summary),
		KeyPoints:      payload.KeyPoints,
	}
}

func (s *Service) AnalyzeImage(ctx context.Context, data []byte) ImageAnalysisResult {
	mimeType := prompt.DetectImageMime(data)

	attachments := []provider.Attachment{
		{MimeType: mimeType, Data: data},
	}

	responseText, err := s.gateway.Complete(ctx, prompt.ImageAnalysis(), attachments)
	if err != nil {
		slog.Warn("Image analysis failed", "mime_type", mimeType, "error", err)

		return ImageAnalysisResult{
			Description: fmt.Sprintf(
				"Error analyzing image: %s. Please ensure the image is in a supported format (JPEG, PNG, GIF, WebP) and try again.", err),
			Tags:    []string{"error"},
			Objects: []DetectedObject{},
		}
	}

	payload, err := contract.DecodeImage(responseText)
	if err != nil {
		slog.Warn("Image payload decode failed", "error", err)
	}

	return ImageAnalysisResult{
		Description: composeDescription(payload),
		Tags:        payload.Tags,
		Objects: pie.Map(payload.Objects, func(obj contract.DetectedObject) DetectedObject {
			return DetectedObject{
				Name:       obj.Name,
				Confidence: obj.Confidence,
			}
		}),
	}
}

// TranscribeAudio is a stub kept for interface completeness; it never calls
// the provider.
func (s *Service) TranscribeAudio(_ context.Context, _ []byte) string {
	return transcribeUnsupportedMessage
}

// composeDescription folds the optional enrichment fields onto the base
// description, each as its own labeled paragraph in a fixed order.
func composeDescription(payload contract.ImagePayload) string {
	description := payload.Description

	if payload.Scene != "" {
		description += fmt.Sprintf("\n\nScene: %s", payload.Scene)
	}
	if len(payload.Colors) > 0 {
		description += fmt.Sprintf("\n\nColor Palette: %s", strings.Join(payload.Colors, ", "))
	}
	if payload.Mood != "" {
		description += fmt.Sprintf("\n\nMood/Atmosphere: %s", payload.Mood)
	}
	if payload.Details != "" {
		description += fmt.Sprintf("\n\nNotable Details: %s", payload.Details)
	}

	return description
}
