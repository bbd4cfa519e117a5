// Package contract extracts the structured JSON payload embedded in
// free-form model output. Models routinely wrap the object in prose or
// markdown fences, and omit optional fields; decoding is tolerant of both.
// Syntactically invalid JSON is an error, but every decoder still returns
// the fully-defaulted payload so callers can degrade gracefully.
package contract

import (
	"encoding/json"
	"fmt"
	"strings"
)

const (
	defaultConfidence = 0.5

	DefaultSentiment        = "Neutral"
	DefaultExplanation      = "Unable to analyze"
	DefaultSummary          = "Unable to generate summary"
	DefaultImageDescription = "Unable to analyze image"
)

// extractJSON slices from the first '{' through the last '}' of the text.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")

	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object found in model response")
	}

	return text[start : end+1], nil
}

func DecodeSentiment(text string) (SentimentPayload, error) {
	result := SentimentPayload{
		Sentiment:   DefaultSentiment,
		Confidence:  defaultConfidence,
		Explanation: DefaultExplanation,
	}

	var raw struct {
		Sentiment   string   `json:"sentiment"`
		Confidence  *float64 `json:"confidence"`
		Explanation string   `json:"explanation"`
	}

	if err := decode(text, &raw); err != nil {
		return result, err
	}

	if raw.Sentiment != "" {
		result.Sentiment = raw.Sentiment
	}
	if raw.Confidence != nil {
		result.Confidence = *raw.Confidence
	}
	if raw.Explanation != "" {
		result.Explanation = raw.Explanation
	}

	return result, nil
}

func DecodeSummary(text string) (SummaryPayload, error) {
	result := SummaryPayload{
		Summary:   DefaultSummary,
		KeyPoints: []string{},
	}

	var raw struct {
		Summary   string   `json:"summary"`
		KeyPoints []string `json:"keyPoints"`
	}

	if err := decode(text, &raw); err != nil {
		return result, err
	}

	if raw.Summary != "" {
		result.Summary = raw.Summary
	}
	if raw.KeyPoints != nil {
		result.KeyPoints = raw.KeyPoints
	}

	return result, nil
}

func DecodeImage(text string) (ImagePayload, error) {
	result := ImagePayload{
		Description: DefaultImageDescription,
		Tags:        []string{},
		Objects:     []DetectedObject{},
	}

	var raw struct {
		Description string   `json:"description"`
		Tags        []string `json:"tags"`
		Objects     []struct {
			Name       string  `json:"name"`
			Confidence float64 `json:"confidence"`
		} `json:"objects"`
		Scene   string   `json:"scene"`
		Colors  []string `json:"colors"`
		Mood    string   `json:"mood"`
		Details string   `json:"details"`
	}

	if err := decode(text, &raw); err != nil {
		return result, err
	}

	if raw.Description != "" {
		result.Description = raw.Description
	}
	if raw.Tags != nil {
		result.Tags = raw.Tags
	}
	for _, obj := range raw.Objects {
		result.Objects = append(result.Objects, DetectedObject{
			Name:       obj.Name,
			Confidence: obj.Confidence,
		})
	}

	result.Scene = raw.Scene
	result.Colors = raw.Colors
	result.Mood = raw.Mood
	result.Details = raw.Details

	return result, nil
}

func decode(text string, target any) error {
	payload, err := extractJSON(text)
	if err != nil {
		return err
	}

	if err = json.Unmarshal([]byte(payload), target); err != nil {
		return fmt.Errorf("failed to unmarshal model response: %w", err)
	}

	return nil
}
