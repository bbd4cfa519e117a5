package assistant

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"aidesk/app/client/provider"
	"aidesk/app/service/history"

	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	response string
	err      error

	calls           int
	lastPrompt      string
	lastAttachments []provider.Attachment
}

func (g *fakeGateway) Complete(_ context.Context, prompt string, attachments []provider.Attachment) (string, error) {
	g.calls++
	g.lastPrompt = prompt
	g.lastAttachments = attachments

	if g.err != nil {
		return "", g.err
	}

	return g.response, nil
}

func newTestService(t *testing.T, gateway *fakeGateway) *Service {
	t.Helper()

	historySvc, err := history.New(nil)
	require.NoError(t, err)

	return &Service{
		gateway:    gateway,
		historySvc: historySvc,
	}
}

func TestChatGeneratesSessionID(t *testing.T) {
	gateway := &fakeGateway{response: "Hello!"}
	svc := newTestService(t, gateway)

	reply := svc.Chat(context.Background(), "Hi", "")

	require.Equal(t, "Hello!", reply.Response)
	require.NotEmpty(t, reply.SessionID)
}

func TestChatSecondCallIncludesFirstExchange(t *testing.T) {
	gateway := &fakeGateway{response: "Paris"}
	svc := newTestService(t, gateway)

	reply := svc.Chat(context.Background(), "Capital of France?", "")

	gateway.response = "About 2 million"
	svc.Chat(context.Background(), "How many people live there?", reply.SessionID)

	require.Contains(t, gateway.lastPrompt, "User: Capital of France?")
	require.Contains(t, gateway.lastPrompt, "Assistant: Paris")
	require.Contains(t, gateway.lastPrompt, "User: How many people live there?")
}

func TestChatProviderFailure(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("transport failure")}
	svc := newTestService(t, gateway)

	reply := svc.Chat(context.Background(), "Hi", "broken-session")

	require.Equal(t, "Error: transport failure", reply.Response)
	require.Equal(t, "broken-session", reply.SessionID)
	require.Empty(t, svc.historySvc.Snapshot("broken-session"))
}

func TestAnalyzeSentiment(t *testing.T) {
	gateway := &fakeGateway{
		response: `Here you go: {"sentiment":"Positive","confidence":0.93,"explanation":"positive language"}`,
	}
	svc := newTestService(t, gateway)

	result := svc.AnalyzeSentiment(context.Background(), "I love this!")

	require.Equal(t, "I love this!", result.Text)
	require.Equal(t, "Positive", result.Sentiment)
	require.InDelta(t, 0.93, result.ConfidenceScore, 1e-9)
	require.Equal(t, "positive language", result.Explanation)
}

func TestAnalyzeSentimentProviderFailure(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("quota exceeded")}
	svc := newTestService(t, gateway)

	result := svc.AnalyzeSentiment(context.Background(), "some text")

	require.Equal(t, "Neutral", result.Sentiment)
	require.Zero(t, result.ConfidenceScore)
	require.Equal(t, "Error: quota exceeded", result.Explanation)
}

func TestSummarizeDocument(t *testing.T) {
	gateway := &fakeGateway{
		response: `{"summary":"short","keyPoints":["one","two"]}`,
	}
	svc := newTestService(t, gateway)

	result := svc.SummarizeDocument(context.Background(), "a long document")

	require.Equal(t, "a long document", result.OriginalText)
	require.Equal(t, "short", result.Summary)
	require.Equal(t, utf8.RuneCountInString("a long document"), result.OriginalLength)
	require.Equal(t, 5, result.SummaryLength)
	require.Equal(t, []string{"one", "two"}, result.KeyPoints)
}

func TestSummarizeDocumentNoBracesInResponse(t *testing.T) {
	gateway := &fakeGateway{response: "I could not produce JSON, sorry"}
	svc := newTestService(t, gateway)

	result := svc.SummarizeDocument(context.Background(), "input document")

	require.Equal(t, "Unable to generate summary", result.Summary)
	require.Empty(t, result.KeyPoints)
	require.Zero(t, result.SummaryLength)
	require.Equal(t, utf8.RuneCountInString("input document"), result.OriginalLength)
}

func TestSummarizeDocumentProviderFailure(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("timeout")}
	svc := newTestService(t, gateway)

	result := svc.SummarizeDocument(context.Background(), "input document")

	require.Equal(t, "Error: timeout", result.Summary)
	require.Empty(t, result.KeyPoints)
	require.Zero(t, result.SummaryLength)
}

func TestAnalyzeImageTagsAttachmentMime(t *testing.T) {
	gateway := &fakeGateway{response: `{"description":"a picture"}`}
	svc := newTestService(t, gateway)

	svc.AnalyzeImage(context.Background(), []byte{0x89, 0x50, 0x4E, 0x47})

	require.Len(t, gateway.lastAttachments, 1)
	require.Equal(t, "image/png", gateway.lastAttachments[0].MimeType)

	svc.AnalyzeImage(context.Background(), []byte{0x00, 0x01, 0x02, 0x03})

	require.Equal(t, "image/jpeg", gateway.lastAttachments[0].MimeType)
}

func TestAnalyzeImageComposesEnrichedDescription(t *testing.T) {
	gateway := &fakeGateway{
		response: `{
			"description": "a dog on a beach",
			"tags": ["dog"],
			"objects": [{"name":"dog","confidence":0.97}],
			"scene": "outdoor",
			"colors": ["blue", "sand"],
			"mood": "joyful",
			"details": "red collar"
		}`,
	}
	svc := newTestService(t, gateway)

	result := svc.AnalyzeImage(context.Background(), []byte{0x89, 0x50})

	require.Equal(t,
		"a dog on a beach"+
			"\n\nScene: outdoor"+
			"\n\nColor Palette: blue, sand"+
			"\n\nMood/Atmosphere: joyful"+
			"\n\nNotable Details: red collar",
		result.Description)
	require.Equal(t, []string{"dog"}, result.Tags)
	require.Len(t, result.Objects, 1)
	require.Equal(t, "dog", result.Objects[0].Name)
}

func TestAnalyzeImageProviderFailure(t *testing.T) {
	gateway := &fakeGateway{err: errors.New("model overloaded")}
	svc := newTestService(t, gateway)

	result := svc.AnalyzeImage(context.Background(), []byte{0x89, 0x50})

	require.True(t, strings.HasPrefix(result.Description, "Error analyzing image: model overloaded."))
	require.Contains(t, result.Description, "supported format (JPEG, PNG, GIF, WebP)")
	require.Equal(t, []string{"error"}, result.Tags)
	require.Empty(t, result.Objects)
}

func TestTranscribeAudioNeverCallsProvider(t *testing.T) {
	gateway := &fakeGateway{}
	svc := newTestService(t, gateway)

	text := svc.TranscribeAudio(context.Background(), []byte{0x01})

	require.Equal(t, transcribeUnsupportedMessage, text)
	require.Zero(t, gateway.calls)
}
