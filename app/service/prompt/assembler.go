package prompt

import (
	"fmt"
	"strings"

	_ "embed"

	"aidesk/app/service/history"
)

//go:embed chat_prompt_template.txt
var chatPromptTemplate string

//go:embed sentiment_prompt_template.txt
var sentimentPromptTemplate string

//go:embed summarize_prompt_template.txt
var summarizePromptTemplate string

//go:embed image_prompt_template.txt
var imagePromptTemplate string

// Chat renders the outbound chat prompt: system instruction, prior turns in
// chronological order, then the new user message.
func Chat(turns []history.Turn, message string) string {
	var builder strings.Builder

	for _, turn := range turns {
		builder.WriteString(fmt.Sprintf("User: %s\n", turn.UserText))
		builder.WriteString(fmt.Sprintf("Assistant: %s\n\n", turn.ModelText))
	}

	return render(chatPromptTemplate, map[string]any{
		"chat_history": builder.String(),
		"message":      message,
	})
}

// Sentiment demands a JSON object with sentiment, confidence and explanation.
// The input text is passed through unmodified.
func Sentiment(text string) string {
	return render(sentimentPromptTemplate, map[string]any{
		"text": text,
	})
}

// Summarize demands a JSON object with summary and ordered keyPoints.
func Summarize(document string) string {
	return render(summarizePromptTemplate, map[string]any{
		"document": document,
	})
}

// ImageAnalysis returns the fixed vision instruction; the image itself is
// attached out-of-band.
func ImageAnalysis() string {
	return imagePromptTemplate
}

func render(template string, values map[string]any) string {
	for key, value := range values {
		template = strings.ReplaceAll(template, "{"+key+"}", fmt.Sprint(value))
	}

	return template
}
